// Package register implements the registration wizard screen.
package register

import (
	"context"
	"errors"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/mark3labs/signup/internal/form"
	"github.com/mark3labs/signup/internal/logger"
	"github.com/mark3labs/signup/internal/registration"
	"github.com/mark3labs/signup/internal/tui/theme"
	"github.com/mark3labs/signup/internal/tui/wizard"
)

// SubmittedMsg is sent after the backend accepted the registration.
type SubmittedMsg struct{}

// SubmitFailedMsg is sent when the submission failed. The form is left intact.
type SubmitFailedMsg struct {
	Err error
}

// submitDoneMsg carries the raw result of the submission command back to the model.
type submitDoneMsg struct {
	err error
}

var placeholders = map[form.Field]string{
	form.FieldEmail:       "name@example.com",
	form.FieldPassword:    "at least 8 characters",
	form.FieldFirstName:   "Jane",
	form.FieldLastName:    "Doe",
	form.FieldAddress:     "street, city, postal code",
	form.FieldPhoneNumber: "10 digit number",
}

// Model is the registration wizard. It owns the widgets and delegates state
// and validation to a registration.Session.
type Model struct {
	ctx       context.Context
	session   *registration.Session
	submitter registration.Submitter

	steps   [][]fieldWidget // index 0 holds step 1
	focus   int             // index into the current step's widgets; -1 while the buttons have focus
	buttons *wizard.ButtonBar

	width  int
	height int
}

// New builds the wizard for session. Submissions go through sub using ctx.
func New(ctx context.Context, session *registration.Session, sub registration.Submitter) *Model {
	m := &Model{
		ctx:       ctx,
		session:   session,
		submitter: sub,
		width:     80,
		height:    24,
	}

	v := session.Validator()
	m.steps = make([][]fieldWidget, v.Steps())
	for step := 1; step <= v.Steps(); step++ {
		for _, field := range v.StepFields(step) {
			w := newWidget(v, field)
			w.SetValue(session.Value(field))
			if w.Value() != session.Value(field) {
				// selects always hold one of their options
				session.Set(field, w.Value())
			}
			m.steps[step-1] = append(m.steps[step-1], w)
		}
	}

	m.buttons = wizard.NewButtonBar(nil)
	m.enterStep()
	return m
}

func newWidget(v *form.Validator, field form.Field) fieldWidget {
	rule, _ := v.Rule(field)
	switch {
	case rule.Truthy:
		return newCheckboxField(field, rule.Label)
	case len(rule.OneOf) > 0:
		return newSelectField(field, form.Countries())
	default:
		return newTextField(field, placeholders[field], rule.MaxLength, field == form.FieldPassword)
	}
}

// Session returns the underlying registration session.
func (m *Model) Session() *registration.Session {
	return m.session
}

// Init starts the cursor blink for the first field.
func (m *Model) Init() tea.Cmd {
	return m.focusField(0)
}

// SetSize updates the available area.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.buttons.SetWidth(wizard.ModalWidth(width) - 6)
	for _, step := range m.steps {
		for _, w := range step {
			w.SetWidth(wizard.ModalWidth(width) - 10)
		}
	}
}

// Update handles messages for the wizard.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return nil

	case submitDoneMsg:
		m.session.FinishSubmit(msg.err)
		if msg.err != nil {
			logger.Warn("registration submit failed: %v", msg.err)
			err := msg.err
			return func() tea.Msg { return SubmitFailedMsg{Err: err} }
		}
		logger.Info("registration submitted")
		return func() tea.Msg { return SubmittedMsg{} }

	case tea.KeyPressMsg:
		return m.handleKey(msg)
	}

	// Cursor blink and other widget-internal messages.
	if w := m.focusedWidget(); w != nil {
		_, cmd := w.Update(msg)
		return cmd
	}
	return nil
}

func (m *Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	switch k := msg.String(); k {
	case "esc":
		if m.session.State().IsFirst() {
			return tea.Quit
		}
		return m.back()
	case "tab":
		return m.focusNext()
	case "shift+tab":
		return m.focusPrev()
	case "enter":
		if btn, ok := m.buttons.FocusedButton(); ok {
			return m.press(btn.ID)
		}
		if m.session.State().IsLast() {
			return m.save()
		}
		return m.saveNext()
	default:
		if step, ok := altDigit(k); ok {
			return m.jumpTo(step)
		}
	}

	w := m.focusedWidget()
	if w == nil {
		return nil
	}
	changed, cmd := w.Update(msg)
	if changed {
		m.session.Set(w.Field(), w.Value())
	}
	return cmd
}

// altDigit parses "alt+N" into N.
func altDigit(k string) (int, bool) {
	d, ok := strings.CutPrefix(k, "alt+")
	if !ok || len(d) != 1 || d[0] < '1' || d[0] > '9' {
		return 0, false
	}
	return int(d[0] - '0'), true
}

func (m *Model) press(id wizard.ButtonID) tea.Cmd {
	switch id {
	case wizard.ButtonBack:
		return m.back()
	case wizard.ButtonSave:
		return m.save()
	case wizard.ButtonSaveNext:
		return m.saveNext()
	}
	return nil
}

func (m *Model) back() tea.Cmd {
	if err := m.session.Back(); err != nil {
		return nil
	}
	return m.enterStep()
}

func (m *Model) jumpTo(step int) tea.Cmd {
	if err := m.session.JumpTo(step); err != nil {
		logger.Debug("tab %d ignored: %v", step, err)
		return nil
	}
	return m.enterStep()
}

// save validates the current step, submitting from the last one.
func (m *Model) save() tea.Cmd {
	st := m.session.State()
	if st.IsLast() {
		return m.submit()
	}
	if err := m.session.ValidateStep(st.Current()); err != nil {
		return m.focusInvalid(err)
	}
	return nil
}

func (m *Model) saveNext() tea.Cmd {
	if m.session.State().IsLast() {
		return m.save()
	}
	if err := m.session.Next(); err != nil {
		return m.focusInvalid(err)
	}
	return m.enterStep()
}

func (m *Model) submit() tea.Cmd {
	payload, err := m.session.BeginSubmit()
	if err != nil {
		if errors.Is(err, registration.ErrSubmitInFlight) {
			return nil
		}
		return m.focusInvalid(err)
	}

	ctx, sub := m.ctx, m.submitter
	return func() tea.Msg {
		return submitDoneMsg{err: sub.Submit(ctx, payload)}
	}
}

// focusInvalid moves focus to the first invalid field. A submission can fail
// on an earlier step's field; the wizard then jumps back to that step.
func (m *Model) focusInvalid(err error) tea.Cmd {
	var verr *form.ValidationError
	if !errors.As(err, &verr) || len(verr.Errors) == 0 {
		return nil
	}
	first := verr.Errors[0].Field
	if rule, ok := m.session.Validator().Rule(first); ok && rule.Step != m.session.State().Current() {
		if err := m.session.JumpTo(rule.Step); err != nil {
			logger.Warn("cannot show invalid field %s: %v", first, err)
			return nil
		}
		m.enterStep()
	}
	for i, w := range m.currentWidgets() {
		if w.Field() == first {
			return m.focusField(i)
		}
	}
	return nil
}

// enterStep resets focus and buttons after the current step changed.
func (m *Model) enterStep() tea.Cmd {
	st := m.session.State()
	m.buttons.Blur()
	m.buttons.SetButtons(wizard.CreateStepButtons(st.IsFirst(), st.IsLast()))
	return m.focusField(0)
}

func (m *Model) currentWidgets() []fieldWidget {
	cur := m.session.State().Current()
	if cur < 1 || cur > len(m.steps) {
		return nil
	}
	return m.steps[cur-1]
}

func (m *Model) focusedWidget() fieldWidget {
	ws := m.currentWidgets()
	if m.focus < 0 || m.focus >= len(ws) {
		return nil
	}
	return ws[m.focus]
}

func (m *Model) blurAll() {
	for _, step := range m.steps {
		for _, w := range step {
			w.Blur()
		}
	}
}

func (m *Model) focusField(i int) tea.Cmd {
	m.blurAll()
	m.buttons.Blur()
	ws := m.currentWidgets()
	if i < 0 || i >= len(ws) {
		m.focus = -1
		return nil
	}
	m.focus = i
	return ws[i].Focus()
}

func (m *Model) focusButtons(forward bool) tea.Cmd {
	m.blurAll()
	m.focus = -1
	ok := m.buttons.FocusFirst()
	if !forward {
		ok = m.buttons.FocusLast()
	}
	if !ok {
		if forward {
			return m.focusField(0)
		}
		return m.focusField(len(m.currentWidgets()) - 1)
	}
	return nil
}

// focusNext cycles fields, then buttons, then wraps to the first field.
func (m *Model) focusNext() tea.Cmd {
	if m.buttons.Focused() {
		if m.buttons.FocusNext() {
			return nil
		}
		return m.focusField(0)
	}
	if m.focus+1 < len(m.currentWidgets()) {
		return m.focusField(m.focus + 1)
	}
	return m.focusButtons(true)
}

func (m *Model) focusPrev() tea.Cmd {
	if m.buttons.Focused() {
		if m.buttons.FocusPrev() {
			return nil
		}
		return m.focusField(len(m.currentWidgets()) - 1)
	}
	if m.focus > 0 {
		return m.focusField(m.focus - 1)
	}
	return m.focusButtons(false)
}

// View renders the wizard inside a centered modal.
func (m *Model) View() string {
	st := m.session.State()
	name := form.StepTitle(st.Current())
	s := theme.Current().S()

	var b strings.Builder
	b.WriteString(wizard.RenderTabs(st, form.StepTitle))
	b.WriteString("\n\n")

	v := m.session.Validator()
	for i, w := range m.currentWidgets() {
		rule, _ := v.Rule(w.Field())
		label := s.Label
		if i == m.focus {
			label = s.LabelFocused
		}
		if !rule.Truthy {
			b.WriteString(label.Render(rule.Label))
			if rule.Required {
				b.WriteString(s.Required.Render(" *"))
			}
			b.WriteString("\n")
		}
		b.WriteString(w.View())
		b.WriteString("\n")
		if fe := m.session.Error(w.Field()); fe != nil {
			b.WriteString(s.FieldError.Render(fe.Message))
		} else if w.Field() == form.FieldPhoneNumber && w.Value() != "" {
			b.WriteString(s.Muted.Render(form.FormatPhone(m.session.Value(form.FieldCountryCode), w.Value())))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.buttons.Render())
	b.WriteString("\n\n")
	if m.session.Submitting() {
		b.WriteString(s.Muted.Render("Submitting…"))
		b.WriteString("\n")
	}
	b.WriteString(wizard.RenderHintBar(
		"tab", "next",
		"enter", "save",
		"alt+1-3", "step",
		"esc", "back",
		"ctrl+c", "quit",
	))

	return wizard.RenderModal(wizard.StepTitle(st, name), b.String(), m.width, m.height)
}

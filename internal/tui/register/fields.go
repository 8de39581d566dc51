package register

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/mark3labs/signup/internal/form"
	"github.com/mark3labs/signup/internal/tui/theme"
)

// fieldWidget is one editable form control.
type fieldWidget interface {
	Field() form.Field
	Value() string
	SetValue(string)
	Focus() tea.Cmd
	Blur()
	// Update applies msg and reports whether the value changed.
	Update(msg tea.Msg) (bool, tea.Cmd)
	View() string
	SetWidth(int)
}

func inputStyles() textinput.Styles {
	th := theme.Current()
	return textinput.Styles{
		Focused: textinput.StyleState{
			Text:        lipgloss.NewStyle().Foreground(lipgloss.Color(th.FgBase)),
			Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color(th.FgMuted)),
			Prompt:      lipgloss.NewStyle().Foreground(lipgloss.Color(th.Secondary)),
		},
		Blurred: textinput.StyleState{
			Text:        lipgloss.NewStyle().Foreground(lipgloss.Color(th.FgSubtle)),
			Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color(th.FgMuted)),
			Prompt:      lipgloss.NewStyle().Foreground(lipgloss.Color(th.FgMuted)),
		},
		Cursor: textinput.CursorStyle{
			Color: lipgloss.Color(th.Primary),
			Shape: tea.CursorBar,
			Blink: true,
		},
	}
}

// textField wraps a single-line text input.
type textField struct {
	field form.Field
	input textinput.Model
}

func newTextField(field form.Field, placeholder string, maxLen int, secret bool) *textField {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = placeholder
	if maxLen > 0 {
		ti.CharLimit = maxLen
	}
	if secret {
		ti.EchoMode = textinput.EchoPassword
		ti.EchoCharacter = '•'
	}
	ti.SetStyles(inputStyles())
	ti.SetWidth(40)
	return &textField{field: field, input: ti}
}

func (f *textField) Field() form.Field { return f.field }
func (f *textField) Value() string     { return f.input.Value() }
func (f *textField) SetValue(v string) { f.input.SetValue(v) }
func (f *textField) Focus() tea.Cmd    { return f.input.Focus() }
func (f *textField) Blur()             { f.input.Blur() }
func (f *textField) View() string      { return f.input.View() }

func (f *textField) SetWidth(w int) {
	if w < 10 {
		w = 10
	}
	f.input.SetWidth(w)
}

func (f *textField) Update(msg tea.Msg) (bool, tea.Cmd) {
	before := f.input.Value()
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return f.input.Value() != before, cmd
}

// selectField cycles through a fixed list of options with left/right.
type selectField struct {
	field   form.Field
	options []form.Country
	index   int
	focused bool
}

func newSelectField(field form.Field, options []form.Country) *selectField {
	return &selectField{field: field, options: options}
}

func (f *selectField) Field() form.Field { return f.field }

func (f *selectField) Value() string {
	if len(f.options) == 0 {
		return ""
	}
	return f.options[f.index].Code
}

// SetValue selects the option whose code matches v. Unknown codes leave the
// selection unchanged.
func (f *selectField) SetValue(v string) {
	v = strings.TrimSpace(v)
	for i, o := range f.options {
		if o.Code == v {
			f.index = i
			return
		}
	}
}

func (f *selectField) Focus() tea.Cmd { f.focused = true; return nil }
func (f *selectField) Blur()          { f.focused = false }
func (f *selectField) SetWidth(int)   {}

func (f *selectField) Update(msg tea.Msg) (bool, tea.Cmd) {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok || !f.focused || len(f.options) == 0 {
		return false, nil
	}
	switch key.String() {
	case "left", "up", "h", "k":
		f.index = (f.index - 1 + len(f.options)) % len(f.options)
		return true, nil
	case "right", "down", "l", "j", "space":
		f.index = (f.index + 1) % len(f.options)
		return true, nil
	}
	return false, nil
}

func (f *selectField) View() string {
	s := theme.Current().S()
	if len(f.options) == 0 {
		return s.Muted.Render("(no options)")
	}
	label := f.options[f.index].Label()
	if f.focused {
		return s.LabelFocused.Render("‹ " + label + " ›")
	}
	return s.Subtitle.Render("  " + label)
}

// checkboxField is a boolean toggle.
type checkboxField struct {
	field   form.Field
	label   string
	checked bool
	focused bool
}

func newCheckboxField(field form.Field, label string) *checkboxField {
	return &checkboxField{field: field, label: label}
}

func (f *checkboxField) Field() form.Field { return f.field }

func (f *checkboxField) Value() string {
	if f.checked {
		return "true"
	}
	return ""
}

func (f *checkboxField) SetValue(v string) { f.checked = form.IsTruthy(v) }
func (f *checkboxField) Focus() tea.Cmd    { f.focused = true; return nil }
func (f *checkboxField) Blur()             { f.focused = false }
func (f *checkboxField) SetWidth(int)      {}

func (f *checkboxField) Update(msg tea.Msg) (bool, tea.Cmd) {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok || !f.focused {
		return false, nil
	}
	switch key.String() {
	case "space", "x":
		f.checked = !f.checked
		return true, nil
	}
	return false, nil
}

func (f *checkboxField) View() string {
	s := theme.Current().S()
	box := "[ ]"
	if f.checked {
		box = "[x]"
	}
	if f.focused {
		return s.LabelFocused.Render(box + " " + f.label)
	}
	return s.Label.Render(box + " " + f.label)
}

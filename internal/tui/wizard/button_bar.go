package wizard

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/mark3labs/signup/internal/tui/theme"
)

// ButtonState represents the visual state of a button.
type ButtonState int

const (
	ButtonNormal   ButtonState = iota // Normal state (enabled)
	ButtonDisabled                    // Disabled state (grayed out)
	ButtonFocused                     // Focused/highlighted state
)

// ButtonID identifies the action behind a button.
type ButtonID int

const (
	ButtonBack ButtonID = iota
	ButtonSave
	ButtonSaveNext
)

// Button represents a single button in the button bar.
type Button struct {
	ID    ButtonID
	Label string
	State ButtonState
}

// ButtonBar manages a row of buttons and which one, if any, has focus.
// Disabled buttons are skipped when cycling focus.
type ButtonBar struct {
	buttons []Button
	focused int // -1 when the bar does not have focus
	width   int
}

// NewButtonBar creates a new button bar with the given buttons.
func NewButtonBar(buttons []Button) *ButtonBar {
	return &ButtonBar{
		buttons: buttons,
		focused: -1,
		width:   60,
	}
}

// SetWidth updates the width for the button bar.
func (b *ButtonBar) SetWidth(width int) {
	b.width = width
}

// SetButtons replaces the buttons, keeping focus on the same ID when it is
// still present and enabled.
func (b *ButtonBar) SetButtons(buttons []Button) {
	var keep ButtonID
	hadFocus := b.focused >= 0
	if hadFocus {
		keep = b.buttons[b.focused].ID
	}
	b.buttons = buttons
	b.focused = -1
	if !hadFocus {
		return
	}
	for i, btn := range b.buttons {
		if btn.ID == keep && btn.State != ButtonDisabled {
			b.focused = i
			return
		}
	}
	b.FocusFirst()
}

// Focused reports whether any button has focus.
func (b *ButtonBar) Focused() bool {
	return b.focused >= 0
}

// FocusedButton returns the focused button.
func (b *ButtonBar) FocusedButton() (Button, bool) {
	if b.focused < 0 {
		return Button{}, false
	}
	return b.buttons[b.focused], true
}

// FocusFirst focuses the first enabled button. It returns false when every
// button is disabled.
func (b *ButtonBar) FocusFirst() bool {
	b.focused = b.nextEnabled(-1, 1)
	return b.focused >= 0
}

// FocusLast focuses the last enabled button.
func (b *ButtonBar) FocusLast() bool {
	b.focused = b.nextEnabled(len(b.buttons), -1)
	return b.focused >= 0
}

// FocusNext moves focus to the next enabled button. It returns false, leaving
// the bar unfocused, when focus runs off the end.
func (b *ButtonBar) FocusNext() bool {
	if b.focused < 0 {
		return b.FocusFirst()
	}
	b.focused = b.nextEnabled(b.focused, 1)
	return b.focused >= 0
}

// FocusPrev moves focus to the previous enabled button. It returns false,
// leaving the bar unfocused, when focus runs off the start.
func (b *ButtonBar) FocusPrev() bool {
	if b.focused < 0 {
		return b.FocusLast()
	}
	b.focused = b.nextEnabled(b.focused, -1)
	return b.focused >= 0
}

// Blur removes focus from the bar.
func (b *ButtonBar) Blur() {
	b.focused = -1
}

func (b *ButtonBar) nextEnabled(from, dir int) int {
	for i := from + dir; i >= 0 && i < len(b.buttons); i += dir {
		if b.buttons[i].State != ButtonDisabled {
			return i
		}
	}
	return -1
}

// Render renders the button bar with proper spacing and styling.
func (b *ButtonBar) Render() string {
	if len(b.buttons) == 0 {
		return ""
	}

	s := theme.Current().S()
	rendered := make([]string, 0, len(b.buttons))
	for i, btn := range b.buttons {
		state := btn.State
		if i == b.focused {
			state = ButtonFocused
		}
		switch state {
		case ButtonDisabled:
			rendered = append(rendered, s.ButtonDisabled.Render(btn.Label))
		case ButtonFocused:
			rendered = append(rendered, s.ButtonFocused.Render(btn.Label))
		default:
			rendered = append(rendered, s.Button.Render(btn.Label))
		}
	}

	return lipgloss.Place(b.width, 1, lipgloss.Center, lipgloss.Center, strings.Join(rendered, ""))
}

// CreateStepButtons creates the Back / Save / Save & Next set for a step.
// Back is disabled on the first step and Save & Next on the last.
func CreateStepButtons(first, last bool) []Button {
	state := func(enabled bool) ButtonState {
		if enabled {
			return ButtonNormal
		}
		return ButtonDisabled
	}
	return []Button{
		{ID: ButtonBack, Label: "← Back", State: state(!first)},
		{ID: ButtonSave, Label: "Save", State: ButtonNormal},
		{ID: ButtonSaveNext, Label: "Save & Next →", State: state(!last)},
	}
}

package tui

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/mark3labs/signup/internal/tui/theme"
)

// ToastDuration is how long a toast stays on screen.
const ToastDuration = 3 * time.Second

// ToastKind selects the toast colors.
type ToastKind int

const (
	ToastSuccess ToastKind = iota
	ToastError
)

// ToastDismissMsg is sent when a toast should be dismissed. Dismissals for a
// toast that was since replaced are ignored.
type ToastDismissMsg struct {
	ID int
}

// Toast is a minimal toast notification component.
// Shows a message in the bottom-right corner that auto-dismisses after ToastDuration.
type Toast struct {
	message   string
	kind      ToastKind
	visible   bool
	id        int
	dismissAt time.Time
}

// NewToast creates a new Toast component.
func NewToast() *Toast {
	return &Toast{}
}

// Success shows a success toast.
func (t *Toast) Success(msg string) tea.Cmd {
	return t.Show(ToastSuccess, msg)
}

// Error shows an error toast.
func (t *Toast) Error(msg string) tea.Cmd {
	return t.Show(ToastError, msg)
}

// Show displays a toast and returns the command that will dismiss it.
// A newer toast replaces the current one.
func (t *Toast) Show(kind ToastKind, msg string) tea.Cmd {
	t.id++
	t.message = msg
	t.kind = kind
	t.visible = true
	t.dismissAt = time.Now().Add(ToastDuration)
	return t.dismissCmd()
}

func (t *Toast) dismissCmd() tea.Cmd {
	remaining := time.Until(t.dismissAt)
	if remaining <= 0 {
		remaining = time.Millisecond
	}
	id := t.id
	return tea.Tick(remaining, func(time.Time) tea.Msg {
		return ToastDismissMsg{ID: id}
	})
}

// Update handles messages for the toast component.
func (t *Toast) Update(msg tea.Msg) tea.Cmd {
	if m, ok := msg.(ToastDismissMsg); ok && m.ID == t.id {
		t.visible = false
		t.message = ""
	}
	return nil
}

// View renders the toast box, capped to width. Returns empty string if the
// toast is not visible.
func (t *Toast) View(width int) string {
	if !t.visible || t.message == "" {
		return ""
	}

	s := theme.Current().S()
	style := s.ToastSuccess
	if t.kind == ToastError {
		style = s.ToastError
	}

	content := style.Render(t.message)
	if width > 2 && lipgloss.Width(content) > width-2 {
		content = style.Width(width - 2).Render(t.message)
	}
	return content
}

// Draw renders the toast in the bottom-right corner of area, one cell in
// from the edges.
func (t *Toast) Draw(scr uv.Screen, area uv.Rectangle) {
	content := t.View(area.Dx())
	if content == "" {
		return
	}

	w, h := lipgloss.Width(content), lipgloss.Height(content)
	x := max(area.Max.X-w-1, area.Min.X)
	y := max(area.Max.Y-h-1, area.Min.Y)
	uv.NewStyledString(content).Draw(scr, uv.Rectangle{
		Min: uv.Position{X: x, Y: y},
		Max: uv.Position{X: x + w, Y: y + h},
	})
}

// IsVisible returns whether the toast is currently visible.
func (t *Toast) IsVisible() bool {
	return t.visible
}

// Kind returns the variant of the current toast.
func (t *Toast) Kind() ToastKind {
	return t.kind
}

// GetMessage returns the current toast message (empty if not visible).
func (t *Toast) GetMessage() string {
	if !t.visible {
		return ""
	}
	return t.message
}

package wizard

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/mark3labs/signup/internal/state"
	"github.com/mark3labs/signup/internal/tui/theme"
)

// modal layout bounds
const (
	modalMinWidth = 50
	modalMaxWidth = 90
)

// RenderHintBar renders a hint bar with the given key-description pairs.
// Example: RenderHintBar("tab", "next field", "esc", "back")
// Returns: "tab next field • esc back"
func RenderHintBar(pairs ...string) string {
	if len(pairs) == 0 || len(pairs)%2 != 0 {
		return ""
	}

	s := theme.Current().S()
	var b strings.Builder
	for i := 0; i < len(pairs); i += 2 {
		if i > 0 {
			b.WriteString(" " + s.HintSeparator.Render("•") + " ")
		}
		b.WriteString(s.HintKey.Render(pairs[i]) + " " + s.HintDesc.Render(pairs[i+1]))
	}
	return b.String()
}

// RenderTabs renders one tab per step. The current step is highlighted,
// visited steps are selectable and the rest are dimmed.
func RenderTabs(w state.Wizard, title func(int) string) string {
	s := theme.Current().S()
	tabs := make([]string, 0, w.Total())
	for step := 1; step <= w.Total(); step++ {
		label := fmt.Sprintf("%d %s", step, title(step))
		switch {
		case step == w.Current():
			tabs = append(tabs, s.TabActive.Render(label))
		case w.Visited(step):
			tabs = append(tabs, s.TabVisited.Render(label))
		default:
			tabs = append(tabs, s.TabDisabled.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// StepTitle formats the heading shown above a step.
func StepTitle(w state.Wizard, name string) string {
	return fmt.Sprintf("Step %d of %d: %s", w.Current(), w.Total(), name)
}

// ModalWidth returns the container width used for a terminal of the given width.
func ModalWidth(termWidth int) int {
	width := termWidth - 10
	if width < modalMinWidth {
		width = modalMinWidth
	}
	if width > modalMaxWidth {
		width = modalMaxWidth
	}
	return width
}

// RenderModal wraps content in a bordered container under title and centers
// it in a width x height area.
func RenderModal(title, content string, width, height int) string {
	th := theme.Current()
	container := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(th.Secondary)).
		Padding(1, 2).
		Width(ModalWidth(width))

	body := th.S().Title.Render(title) + "\n\n" + content
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, container.Render(body))
}

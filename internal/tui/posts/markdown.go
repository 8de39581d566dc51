package posts

import (
	"strings"

	"charm.land/glamour/v2"
	"github.com/charmbracelet/x/ansi"
)

// markdownRenderer caches a glamour renderer for one wrap width.
type markdownRenderer struct {
	width int
	r     *glamour.TermRenderer
}

// render renders markdown content wrapped to width.
// Falls back to plain word wrapping if rendering fails.
func (m *markdownRenderer) render(content string, width int) string {
	if width < 10 {
		width = 10
	}
	if m.r == nil || m.width != width {
		r, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle("dark"),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return ansi.Wordwrap(content, width, "")
		}
		m.r, m.width = r, width
	}

	rendered, err := m.r.Render(content)
	if err != nil {
		return ansi.Wordwrap(content, width, "")
	}
	return strings.Trim(rendered, "\n")
}

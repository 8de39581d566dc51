package posts

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/mark3labs/signup/internal/api"
	"github.com/mark3labs/signup/internal/tui/theme"
)

// Column breakpoints, in terminal cells.
const (
	twoColumnWidth   = 80
	threeColumnWidth = 120
)

// Columns returns how many cards fit side by side in width.
func Columns(width int) int {
	switch {
	case width >= threeColumnWidth:
		return 3
	case width >= twoColumnWidth:
		return 2
	default:
		return 1
	}
}

// renderCard renders one post as a bordered card of the given outer width.
func renderCard(p api.Post, width int, md *markdownRenderer) string {
	s := theme.Current().S()
	inner := width - s.Card.GetHorizontalFrameSize()
	if inner < 10 {
		inner = 10
	}

	var b strings.Builder
	b.WriteString(s.CardAuthor.Render(p.Author()))
	if p.Avatar != "" {
		b.WriteString("\n" + s.Muted.Render("avatar ") + s.CardLink.Render(p.Avatar))
	}
	if p.Image != "" {
		b.WriteString("\n" + s.Muted.Render("image  ") + s.CardLink.Render(p.Image))
	}
	if p.Writeup != "" {
		b.WriteString("\n\n" + md.render(p.Writeup, inner))
	}

	return s.Card.Width(width).Render(b.String())
}

// renderGrid lays cards out in rows of Columns(width).
func renderGrid(posts []api.Post, width int, md *markdownRenderer) string {
	if len(posts) == 0 {
		return ""
	}
	cols := Columns(width)
	cardWidth := width / cols

	var rows []string
	for i := 0; i < len(posts); i += cols {
		end := min(i+cols, len(posts))
		cards := make([]string, 0, cols)
		for _, p := range posts[i:end] {
			cards = append(cards, renderCard(p, cardWidth, md))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// Plain renders posts as uncolored text for non-interactive output.
func Plain(posts []api.Post) string {
	var b strings.Builder
	b.WriteString("Showing all posts\n")
	for _, p := range posts {
		b.WriteString("\n" + p.Author() + "\n")
		if p.Avatar != "" {
			b.WriteString("  avatar: " + p.Avatar + "\n")
		}
		if p.Image != "" {
			b.WriteString("  image:  " + p.Image + "\n")
		}
		if p.Writeup != "" {
			for _, line := range strings.Split(strings.TrimSpace(p.Writeup), "\n") {
				b.WriteString("  " + line + "\n")
			}
		}
	}
	return b.String()
}

// Package posts implements the read-only post listing screen.
package posts

import (
	"context"
	"fmt"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"github.com/mark3labs/signup/internal/api"
	"github.com/mark3labs/signup/internal/logger"
	"github.com/mark3labs/signup/internal/tui/theme"
	"github.com/mark3labs/signup/internal/tui/wizard"
)

// Lister fetches the post listing.
type Lister interface {
	ListPosts(ctx context.Context) ([]api.Post, error)
}

// LoadedMsg carries the result of the listing request.
type LoadedMsg struct {
	Posts []api.Post
	Err   error
}

// header and footer rows around the viewport
const chromeHeight = 4

// Model shows the posts as a scrollable card grid.
type Model struct {
	ctx    context.Context
	lister Lister

	posts   []api.Post
	err     error
	loading bool

	viewport viewport.Model
	md       markdownRenderer
	width    int
	height   int
}

// New creates the listing screen. Posts are fetched by Init.
func New(ctx context.Context, lister Lister) *Model {
	m := &Model{
		ctx:      ctx,
		lister:   lister,
		loading:  true,
		viewport: viewport.New(viewport.WithWidth(80), viewport.WithHeight(20)),
		width:    80,
		height:   24,
	}
	m.refresh()
	return m
}

// Init fetches the listing once.
func (m *Model) Init() tea.Cmd {
	ctx, lister := m.ctx, m.lister
	return func() tea.Msg {
		posts, err := lister.ListPosts(ctx)
		return LoadedMsg{Posts: posts, Err: err}
	}
}

// Posts returns the loaded posts.
func (m *Model) Posts() []api.Post {
	return m.posts
}

// Err returns the load error, if any.
func (m *Model) Err() error {
	return m.err
}

// SetSize updates the available area and re-lays the grid.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.SetWidth(width)
	m.viewport.SetHeight(max(height-chromeHeight, 1))
	m.refresh()
}

// Update handles messages for the listing.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return nil

	case LoadedMsg:
		m.loading = false
		m.posts, m.err = msg.Posts, msg.Err
		if msg.Err != nil {
			logger.Warn("loading posts failed: %v", msg.Err)
		}
		m.refresh()
		return nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "q", "esc":
			return tea.Quit
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return cmd
}

func (m *Model) refresh() {
	s := theme.Current().S()
	switch {
	case m.loading:
		m.viewport.SetContent(s.Muted.Render("Loading posts…"))
	case m.err != nil:
		m.viewport.SetContent(s.FieldError.Render(fmt.Sprintf("Could not load posts: %v", m.err)))
	case len(m.posts) == 0:
		m.viewport.SetContent(s.Muted.Render("No posts yet."))
	default:
		m.viewport.SetContent(renderGrid(m.posts, m.width, &m.md))
	}
}

// View renders the header, the grid viewport and the hint bar.
func (m *Model) View() string {
	s := theme.Current().S()
	header := s.Title.Render("Showing all posts")
	if n := len(m.posts); n > 0 {
		header += s.Muted.Render(fmt.Sprintf("  %d posts", n))
	}
	hints := wizard.RenderHintBar("↑↓", "scroll", "pgup/pgdn", "page", "q", "quit")
	return header + "\n\n" + m.viewport.View() + "\n\n" + hints
}

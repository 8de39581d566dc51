// Package tui hosts the top-level Bubbletea program: it routes between the
// registration wizard and the post listing and draws toasts above both.
package tui

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/mark3labs/signup/internal/logger"
	"github.com/mark3labs/signup/internal/registration"
	"github.com/mark3labs/signup/internal/tui/posts"
	"github.com/mark3labs/signup/internal/tui/register"
)

// Toast texts shown after a submission.
const (
	SubmitSuccessText = "Form submitted successfully!"
	SubmitFailureText = "Failed to submit the form! Please try again later."
)

// Screen identifies the active view.
type Screen int

const (
	ScreenRegister Screen = iota
	ScreenPosts
)

func (s Screen) String() string {
	switch s {
	case ScreenRegister:
		return "register"
	case ScreenPosts:
		return "posts"
	}
	return fmt.Sprintf("screen(%d)", int(s))
}

// API is the backend used by both screens.
type API interface {
	registration.Submitter
	posts.Lister
}

// App is the root model.
type App struct {
	ctx    context.Context
	api    API
	screen Screen

	register *register.Model
	posts    *posts.Model
	toast    *Toast

	width    int
	height   int
	quitting bool
}

// NewRegisterApp starts on the registration wizard for session.
func NewRegisterApp(ctx context.Context, session *registration.Session, api API) *App {
	return &App{
		ctx:      ctx,
		api:      api,
		screen:   ScreenRegister,
		register: register.New(ctx, session, api),
		toast:    NewToast(),
		width:    80,
		height:   24,
	}
}

// NewPostsApp starts directly on the post listing.
func NewPostsApp(ctx context.Context, api API) *App {
	return &App{
		ctx:    ctx,
		api:    api,
		screen: ScreenPosts,
		posts:  posts.New(ctx, api),
		toast:  NewToast(),
		width:  80,
		height: 24,
	}
}

// Run runs the program until the user quits.
func Run(ctx context.Context, app *App) error {
	p := tea.NewProgram(app, tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running tui: %w", err)
	}
	return nil
}

// Screen returns the active screen.
func (a *App) Screen() Screen {
	return a.screen
}

// Toast returns the toast component.
func (a *App) Toast() *Toast {
	return a.toast
}

// Init initializes the active screen.
func (a *App) Init() tea.Cmd {
	switch a.screen {
	case ScreenPosts:
		return a.posts.Init()
	default:
		return a.register.Init()
	}
}

// Update routes messages to the active screen.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			a.quitting = true
			return a, tea.Quit
		}

	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		if a.register != nil {
			a.register.SetSize(msg.Width, msg.Height)
		}
		if a.posts != nil {
			a.posts.SetSize(msg.Width, msg.Height)
		}
		return a, nil

	case ToastDismissMsg:
		return a, a.toast.Update(msg)

	case register.SubmittedMsg:
		logger.Info("routing to posts after submission")
		a.screen = ScreenPosts
		a.posts = posts.New(a.ctx, a.api)
		a.posts.SetSize(a.width, a.height)
		return a, tea.Batch(a.toast.Success(SubmitSuccessText), a.posts.Init())

	case register.SubmitFailedMsg:
		return a, a.toast.Error(SubmitFailureText)

	case posts.LoadedMsg:
		if a.posts != nil {
			return a, a.posts.Update(msg)
		}
		return a, nil
	}

	var cmd tea.Cmd
	switch a.screen {
	case ScreenPosts:
		cmd = a.posts.Update(msg)
	default:
		cmd = a.register.Update(msg)
	}
	return a, cmd
}

// View renders the active screen with the toast on top.
func (a *App) View() tea.View {
	var view tea.View
	view.AltScreen = true

	if a.quitting {
		view.AltScreen = false
		view.Content = lipgloss.NewLayer("")
		return view
	}

	canvas := uv.NewScreenBuffer(a.width, a.height)
	a.Draw(canvas, canvas.Bounds())
	view.Content = lipgloss.NewLayer(canvas.Render())
	return view
}

// Draw renders the active screen and the toast to the screen buffer.
func (a *App) Draw(scr uv.Screen, area uv.Rectangle) {
	var content string
	switch a.screen {
	case ScreenPosts:
		content = a.posts.View()
	default:
		content = a.register.View()
	}
	uv.NewStyledString(content).Draw(scr, area)

	// Toast last so it appears on top of everything
	a.toast.Draw(scr, area)
}

package tui

import (
	"context"
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/mark3labs/signup/internal/api"
	"github.com/mark3labs/signup/internal/registration"
	"github.com/mark3labs/signup/internal/tui/posts"
	"github.com/mark3labs/signup/internal/tui/register"
	"github.com/mark3labs/signup/internal/tui/testfixtures"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRegisterApp(t *testing.T, mock *testfixtures.MockAPI) *App {
	t.Helper()
	sess, err := registration.New(registration.WithDefaults(testfixtures.ValidData()))
	require.NoError(t, err)
	app := NewRegisterApp(context.Background(), sess, mock)
	app.Update(tea.WindowSizeMsg{Width: testfixtures.TestTermWidth, Height: testfixtures.TestTermHeight})
	return app
}

func send(app *App, keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = app.Update(testfixtures.Key(k))
	}
	return cmd
}

// runCmd executes cmd and feeds its message back into app.
func runCmd(app *App, cmd tea.Cmd) tea.Cmd {
	if cmd == nil {
		return nil
	}
	_, next := app.Update(cmd())
	return next
}

func TestApp_SubmitRoutesToPosts(t *testing.T) {
	mock := testfixtures.NewMockAPI()
	app := newRegisterApp(t, mock)
	require.Equal(t, ScreenRegister, app.Screen())

	// Pre-filled with valid data: enter advances through every step.
	send(app, "enter", "enter")
	submit := send(app, "enter")
	require.NotNil(t, submit)

	// submitDoneMsg -> SubmittedMsg
	submitted := runCmd(app, submit)
	require.NotNil(t, submitted)
	_, batch := app.Update(submitted())
	require.NotNil(t, batch)

	assert.Equal(t, 1, mock.SubmitCalls())
	assert.Equal(t, ScreenPosts, app.Screen())
	assert.True(t, app.Toast().IsVisible())
	assert.Equal(t, ToastSuccess, app.Toast().Kind())
	assert.Equal(t, SubmitSuccessText, app.Toast().GetMessage())

	// Deliver the listing and check the rendered screen.
	app.Update(postsLoaded(testfixtures.FixturePosts()))

	canvas := uv.NewScreenBuffer(testfixtures.TestTermWidth, testfixtures.TestTermHeight)
	app.Draw(canvas, canvas.Bounds())
	view := testfixtures.Plain(canvas.Render())
	assert.Contains(t, view, "Showing all posts")
	assert.Contains(t, view, SubmitSuccessText)
}

func TestApp_SubmitFailureShowsErrorToast(t *testing.T) {
	mock := testfixtures.NewMockAPI()
	mock.SubmitError = errors.New("offline")
	app := newRegisterApp(t, mock)

	send(app, "enter", "enter")
	failed := runCmd(app, send(app, "enter"))
	require.NotNil(t, failed)
	app.Update(failed())

	assert.Equal(t, ScreenRegister, app.Screen())
	assert.Equal(t, ToastError, app.Toast().Kind())
	assert.Equal(t, SubmitFailureText, app.Toast().GetMessage())
	assert.Equal(t, 1, mock.SubmitCalls())
}

func TestApp_CtrlCQuits(t *testing.T) {
	app := newRegisterApp(t, testfixtures.NewMockAPI())
	cmd := send(app, "ctrl+c")
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.False(t, app.View().AltScreen)
}

func TestApp_ToastDismiss(t *testing.T) {
	app := newRegisterApp(t, testfixtures.NewMockAPI())
	app.Update(register.SubmitFailedMsg{Err: errors.New("x")})
	require.True(t, app.Toast().IsVisible())

	app.Update(ToastDismissMsg{ID: app.Toast().id})
	assert.False(t, app.Toast().IsVisible())
}

func TestApp_PostsDirect(t *testing.T) {
	mock := testfixtures.NewMockAPI()
	app := NewPostsApp(context.Background(), mock)
	app.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	require.Equal(t, ScreenPosts, app.Screen())

	load := app.Init()
	require.NotNil(t, load)
	app.Update(load())
	assert.Equal(t, 1, mock.ListCalls())
}

func TestScreen_String(t *testing.T) {
	assert.Equal(t, "register", ScreenRegister.String())
	assert.Equal(t, "posts", ScreenPosts.String())
	assert.Equal(t, "screen(7)", Screen(7).String())
}

func postsLoaded(p []api.Post) posts.LoadedMsg {
	return posts.LoadedMsg{Posts: p}
}

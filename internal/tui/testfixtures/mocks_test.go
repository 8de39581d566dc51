package testfixtures

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/mark3labs/signup/internal/form"
	"github.com/stretchr/testify/require"
)

func TestMockAPI_Submit(t *testing.T) {
	t.Parallel()

	m := NewMockAPI()
	p := form.Payload{Email: "a@b.com"}
	require.NoError(t, m.Submit(context.Background(), p))
	require.Equal(t, 1, m.SubmitCalls())
	require.Equal(t, []form.Payload{p}, m.Payloads())

	m.SubmitError = errors.New("offline")
	require.EqualError(t, m.Submit(context.Background(), p), "offline")
	require.Equal(t, 2, m.SubmitCalls())

	m.Reset()
	require.Zero(t, m.SubmitCalls())
	require.Empty(t, m.Payloads())
}

func TestMockAPI_SubmitCanceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	m := NewMockAPI()
	require.ErrorIs(t, m.Submit(ctx, form.Payload{}), context.Canceled)
}

func TestMockAPI_ListPosts(t *testing.T) {
	t.Parallel()

	m := NewMockAPI()
	posts, err := m.ListPosts(context.Background())
	require.NoError(t, err)
	require.Equal(t, FixturePosts(), posts)

	m.ListError = errors.New("boom")
	_, err = m.ListPosts(context.Background())
	require.Error(t, err)
	require.Equal(t, 2, m.ListCalls())
}

func TestMockAPI_Concurrent(t *testing.T) {
	t.Parallel()

	m := NewMockAPI()
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = m.Submit(context.Background(), form.Payload{})
		}()
	}
	wg.Wait()
	require.Equal(t, 10, m.SubmitCalls())
}

func TestKey(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"enter", "tab", "shift+tab", "esc", "space", "ctrl+c", "alt+2", "a"} {
		require.Equal(t, name, Key(name).String())
	}
	require.Len(t, Type("héllo"), 5)
}

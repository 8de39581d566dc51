// Package testfixtures provides mock implementations and test utilities for TUI testing.
//
// This file contains MockAPI, a controllable stand-in for the registration
// backend. It records submitted payloads and counts calls so tests can assert
// that exactly one network call was made.
//
// Example usage:
//
//	func TestMyComponent(t *testing.T) {
//	    api := testfixtures.NewMockAPI()
//	    api.SubmitError = errors.New("offline")
//
//	    // Use the mock in your test...
//	    require.Equal(t, 1, api.SubmitCalls())
//	}
package testfixtures

import (
	"context"
	"sync"

	"github.com/mark3labs/signup/internal/api"
	"github.com/mark3labs/signup/internal/form"
)

// MockAPI implements the submit and list operations of api.Client.
type MockAPI struct {
	mu sync.RWMutex

	// Error to return from Submit
	SubmitError error
	// Posts and error to return from ListPosts
	Posts     []api.Post
	ListError error

	payloads    []form.Payload
	submitCalls int
	listCalls   int
}

// NewMockAPI creates a MockAPI that accepts submissions and lists FixturePosts.
func NewMockAPI() *MockAPI {
	return &MockAPI{Posts: FixturePosts()}
}

// Submit records the payload and returns SubmitError.
func (m *MockAPI) Submit(ctx context.Context, payload form.Payload) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.submitCalls++
	m.payloads = append(m.payloads, payload)
	if err := ctx.Err(); err != nil {
		return err
	}
	return m.SubmitError
}

// ListPosts returns Posts or ListError.
func (m *MockAPI) ListPosts(ctx context.Context) ([]api.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listCalls++
	if m.ListError != nil {
		return nil, m.ListError
	}
	return m.Posts, nil
}

// SubmitCalls returns how many times Submit was called.
func (m *MockAPI) SubmitCalls() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.submitCalls
}

// ListCalls returns how many times ListPosts was called.
func (m *MockAPI) ListCalls() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.listCalls
}

// Payloads returns a copy of every submitted payload.
func (m *MockAPI) Payloads() []form.Payload {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]form.Payload, len(m.payloads))
	copy(out, m.payloads)
	return out
}

// Reset clears recorded calls.
func (m *MockAPI) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.payloads = nil
	m.submitCalls = 0
	m.listCalls = 0
}

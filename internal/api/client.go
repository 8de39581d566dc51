// Package api talks to the registration backend: one endpoint accepts the
// submitted form, another lists published posts.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/mark3labs/signup/internal/config"
	"github.com/mark3labs/signup/internal/form"
	"github.com/mark3labs/signup/internal/logger"
)

// RequestIDHeader carries a per-request identifier for server-side correlation.
const RequestIDHeader = "X-Request-ID"

// maxErrorBody bounds how much of a failed response is kept in StatusError.
const maxErrorBody = 4 << 10

// PostID identifies a post. The listing endpoint may send it as a JSON string
// or a number; both decode to the same textual form.
type PostID string

// UnmarshalJSON accepts a string, a number or null.
func (id *PostID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return fmt.Errorf("post id: %w", err)
		}
		*id = PostID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("post id: %w", err)
	}
	*id = PostID(n.String())
	return nil
}

// Post is one entry of the listing endpoint.
type Post struct {
	ID        PostID `json:"id"`
	Image     string `json:"image"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Avatar    string `json:"avatar"`
	Writeup   string `json:"writeup"`
}

// Author returns the post author's display name.
func (p Post) Author() string {
	if p.LastName == "" {
		return p.FirstName
	}
	return p.FirstName + " " + p.LastName
}

type postsEnvelope struct {
	Data struct {
		Posts []Post `json:"posts"`
	} `json:"data"`
}

// StatusError is returned when the server answers with a non-2xx status.
type StatusError struct {
	Method     string
	URL        string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	msg := fmt.Sprintf("%s %s: http %d", e.Method, e.URL, e.StatusCode)
	if e.Body != "" {
		msg += ": " + e.Body
	}
	return msg
}

// Client is the HTTP client for the submit and posts endpoints.
type Client struct {
	submitURL string
	postsURL  string
	http      *http.Client
	newID     func() string
}

// NewClient returns a client for the given endpoints. A zero timeout leaves
// requests bounded only by their context.
func NewClient(submitURL, postsURL string, timeout time.Duration) *Client {
	return &Client{
		submitURL: submitURL,
		postsURL:  postsURL,
		http:      &http.Client{Timeout: timeout},
		newID:     uuid.NewString,
	}
}

// FromConfig builds a client from the loaded configuration.
func FromConfig(cfg *config.Config) (*Client, error) {
	timeout, err := cfg.RequestTimeout()
	if err != nil {
		return nil, err
	}
	return NewClient(cfg.SubmitURL, cfg.PostsURL, timeout), nil
}

// Submit posts the registration payload as JSON. Transport failures and
// non-2xx responses are returned as errors.
func (c *Client) Submit(ctx context.Context, payload form.Payload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encoding payload: %w", err)
	}
	resp, err := c.do(ctx, http.MethodPost, c.submitURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

// ListPosts fetches the published posts.
func (c *Client) ListPosts(ctx context.Context) ([]Post, error) {
	resp, err := c.do(ctx, http.MethodGet, c.postsURL, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var env postsEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("decoding posts: %w", err)
	}
	logger.Debug("fetched %d posts", len(env.Data.Posts))
	return env.Data.Posts, nil
}

// do sends the request and returns the response only for 2xx statuses.
func (c *Client) do(ctx context.Context, method, url string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("building %s request: %w", method, err)
	}
	id := c.newID()
	req.Header.Set(RequestIDHeader, id)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		logger.Warn("%s %s [%s] failed: %v", method, url, id, err)
		return nil, fmt.Errorf("%s %s: %w", method, url, err)
	}
	logger.Debug("%s %s [%s] -> %d in %s", method, url, id, resp.StatusCode, time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &StatusError{
			Method:     method,
			URL:        url,
			StatusCode: resp.StatusCode,
			Body:       string(bytes.TrimSpace(raw)),
		}
	}
	return resp, nil
}

package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mark3labs/signup/internal/config"
	"github.com/mark3labs/signup/internal/form"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPayload() form.Payload {
	return form.Payload{
		Email:       "a@b.com",
		Password:    "Ab12Ab12!!",
		FirstName:   "Jo",
		Address:     "12 Main Street",
		CountryCode: "+91",
		PhoneNumber: "9876543210",
	}
}

func TestSubmit(t *testing.T) {
	var (
		calls  int
		gotReq map[string]any
		header http.Header
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		header = r.Header.Clone()
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/submit", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/submit", srv.URL+"/posts", time.Second)
	require.NoError(t, c.Submit(context.Background(), testPayload()))

	assert.Equal(t, 1, calls)
	assert.Equal(t, "application/json", header.Get("Content-Type"))
	_, err := uuid.Parse(header.Get(RequestIDHeader))
	assert.NoError(t, err, "request id should be a uuid")

	assert.Equal(t, "a@b.com", gotReq["email"])
	assert.Equal(t, "+91", gotReq["countryCode"])
	assert.Equal(t, "9876543210", gotReq["phoneNumber"])
	assert.NotContains(t, gotReq, "acceptTermsAndCondition")
	assert.Len(t, gotReq, 7)
}

func TestSubmit_StatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad form", http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, srv.URL, time.Second)
	err := c.Submit(context.Background(), testPayload())

	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusUnprocessableEntity, se.StatusCode)
	assert.Equal(t, "bad form", se.Body)
	assert.Contains(t, se.Error(), "http 422")
}

func TestSubmit_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := NewClient(url, url, time.Second)
	err := c.Submit(context.Background(), testPayload())
	require.Error(t, err)

	var se *StatusError
	assert.False(t, errors.As(err, &se))
}

func TestSubmit_ContextCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewClient(srv.URL, srv.URL, 0)
	err := c.Submit(ctx, testPayload())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestListPosts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.NotEmpty(t, r.Header.Get(RequestIDHeader))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"posts":[
			{"id":"1","image":"https://img/1.png","firstName":"Ada","lastName":"Lovelace","avatar":"https://a/1.png","writeup":"# Hello"},
			{"id":"2","image":"","firstName":"Alan","lastName":"","avatar":"","writeup":"plain"}
		]}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, srv.URL, time.Second)
	posts, err := c.ListPosts(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, 2)

	assert.Equal(t, PostID("1"), posts[0].ID)
	assert.Equal(t, "Ada Lovelace", posts[0].Author())
	assert.Equal(t, "# Hello", posts[0].Writeup)
	assert.Equal(t, "Alan", posts[1].Author())
}

func TestListPosts_NumericIDs(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":{"posts":[
			{"id":1,"firstName":"Ada","writeup":"a"},
			{"id":42.5,"firstName":"Alan","writeup":"b"},
			{"id":null,"firstName":"Grace","writeup":"c"}
		]}}`))
	}))
	defer srv.Close()

	posts, err := NewClient(srv.URL, srv.URL, time.Second).ListPosts(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, 3)
	assert.Equal(t, PostID("1"), posts[0].ID)
	assert.Equal(t, PostID("42.5"), posts[1].ID)
	assert.Equal(t, PostID(""), posts[2].ID)
}

func TestPostID_RejectsObjects(t *testing.T) {
	var id PostID
	assert.Error(t, json.Unmarshal([]byte(`{"n":1}`), &id))
}

func TestListPosts_BadBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, srv.URL, time.Second).ListPosts(context.Background())
	assert.ErrorContains(t, err, "decoding posts")
}

func TestFromConfig(t *testing.T) {
	cfg := config.Default()
	c, err := FromConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultSubmitURL, c.submitURL)
	assert.Equal(t, config.DefaultPostsURL, c.postsURL)
	assert.Equal(t, 30*time.Second, c.http.Timeout)

	cfg.Timeout = "soon"
	_, err = FromConfig(cfg)
	assert.Error(t, err)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-user-cards/internal/config"
	"github.com/MKhiriev/go-user-cards/internal/logger"
	"github.com/MKhiriev/go-user-cards/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const twoUsersBody = `{
	"results": [
		{"gender": "female", "name": {"title": "ms", "first": "alice", "last": "smith"},
		 "location": {"street": "1 high st", "city": "london", "state": "greater london"},
		 "email": "alice@example.com", "phone": "020 7946 0000",
		 "picture": {"large": "LA", "medium": "MA"}},
		{"gender": "male", "name": {"title": "mr", "first": "bob", "last": "jones"},
		 "location": {"street": "9 elm road", "city": "leeds", "state": "west yorkshire"},
		 "email": "bob@example.com", "phone": "0113 496 0000",
		 "picture": {"large": "LB", "medium": "MB"}}
	],
	"info": {"seed": "s", "results": 2, "page": 1, "version": "1.0"}
}`

// newTestAdapter builds an httpRandomUserAdapter pointed at the test server.
func newTestAdapter(t *testing.T, serverURL string) *httpRandomUserAdapter {
	t.Helper()
	a, err := NewHTTPRandomUserAdapter(config.Adapter{BaseURL: serverURL + "/1.0/"}, logger.Nop())
	require.NoError(t, err)
	return a.(*httpRandomUserAdapter)
}

var defaultQuery = models.UsersQuery{
	Results:       50,
	Nationalities: "gb,us",
	Fields:        "gender,name,location,email,phone,picture",
}

// ── FetchUsers ──────────────────────────────────────────────────────────────

func TestFetchUsers_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/1.0/", r.URL.Path)
		assert.Equal(t, "50", r.URL.Query().Get("results"))
		assert.Equal(t, "gb,us", r.URL.Query().Get("nat"))
		assert.Equal(t, "gender,name,location,email,phone,picture", r.URL.Query().Get("inc"))
		assert.Contains(t, r.URL.RawQuery, "nat=gb,us")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(twoUsersBody))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.FetchUsers(context.Background(), defaultQuery)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "alice", got[0].Name.First)
	assert.Equal(t, "bob", got[1].Name.First)
	assert.Equal(t, models.Street("9 elm road"), got[1].Location.Street)
	assert.Equal(t, "MB", got[1].Picture.Medium)
}

func TestFetchUsers_TooManyRequests(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.FetchUsers(context.Background(), defaultQuery)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRequestFailed)
	assert.NotErrorIs(t, err, ErrParseFailed)
	assert.EqualError(t, err, "Problem getting users (429)")

	status, ok := StatusCode(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusTooManyRequests, status)
}

func TestFetchUsers_InternalServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error": "boom"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.FetchUsers(context.Background(), defaultQuery)

	var reqErr *RequestFailedError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, http.StatusInternalServerError, reqErr.StatusCode)
	assert.Equal(t, usersErrorLabel, reqErr.Label)
}

func TestFetchUsers_InvalidJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html>maintenance</html>"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.FetchUsers(context.Background(), defaultQuery)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrParseFailed)
	assert.NotErrorIs(t, err, ErrRequestFailed)
	_, ok := StatusCode(err)
	assert.False(t, ok)
}

func TestFetchUsers_APIErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"error": "Uh oh, something has gone wrong."}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.FetchUsers(context.Background(), defaultQuery)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAPIError)
	assert.Contains(t, err.Error(), "Uh oh")
}

func TestFetchUsers_EmptyResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"results": []}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.FetchUsers(context.Background(), defaultQuery)

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFetchUsers_ServerUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	a := newTestAdapter(t, srv.URL)
	srv.Close()

	_, err := a.FetchUsers(context.Background(), defaultQuery)

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrRequestFailed)
	assert.NotErrorIs(t, err, ErrParseFailed)
	assert.Contains(t, err.Error(), "Problem getting users request")
}

// ── fetchJSON ───────────────────────────────────────────────────────────────

func TestFetchJSON_DefaultLabel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	var out map[string]any
	err := a.fetchJSON(context.Background(), srv.URL, "", &out)

	assert.EqualError(t, err, "Something went wrong (404)")
}

// ── constructor ─────────────────────────────────────────────────────────────

func TestNewHTTPRandomUserAdapter_InvalidBaseURL(t *testing.T) {
	for _, raw := range []string{"", "   ", "http://"} {
		_, err := NewHTTPRandomUserAdapter(config.Adapter{BaseURL: raw}, logger.Nop())
		assert.ErrorIs(t, err, ErrInvalidBaseURL, "base url %q", raw)
	}
}

func TestNewHTTPRandomUserAdapter_AddsScheme(t *testing.T) {
	a, err := NewHTTPRandomUserAdapter(config.Adapter{BaseURL: "api.randomuser.me/1.0/"}, logger.Nop())
	require.NoError(t, err)

	got := a.(*httpRandomUserAdapter).buildURL(map[string]string{"results": "2"})
	assert.Equal(t, "https://api.randomuser.me/1.0/?results=2", got)
}

func TestStatusCode_WrappedError(t *testing.T) {
	err := errors.Join(errors.New("outer"), &RequestFailedError{Label: "x", StatusCode: 503})

	status, ok := StatusCode(err)
	assert.True(t, ok)
	assert.Equal(t, 503, status)
}

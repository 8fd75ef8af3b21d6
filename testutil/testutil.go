// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielhkuo/movie-night/cliparse"
	"github.com/danielhkuo/movie-night/engine"
	"github.com/danielhkuo/movie-night/models"
)

// NewCoordinator returns a memory-backed coordinator for tests.
func NewCoordinator(t *testing.T) *engine.Coordinator {
	t.Helper()
	return engine.NewCoordinator(engine.NewStore(engine.NewMemoryBackend()))
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3319,
		DatabaseType: "memory",
		BaseURL:      "http://test.local",
	}
}

// CreateTestNight creates a night with the given limits and returns it.
// Pass nil for unlimited.
func CreateTestNight(t *testing.T, coord *engine.Coordinator, maxProposals, maxVotesPerUser *int) *models.Night {
	t.Helper()

	night, _, err := coord.CreateNight("Test Night", time.Now().Add(48*time.Hour), maxProposals, maxVotesPerUser, "")
	if err != nil {
		t.Fatalf("Failed to create test night: %v", err)
	}
	return night
}

// JoinTestUser joins a username into a night.
func JoinTestUser(t *testing.T, coord *engine.Coordinator, token, username string) {
	t.Helper()

	if _, _, err := coord.JoinNight(token, username); err != nil {
		t.Fatalf("Failed to join test user %q: %v", username, err)
	}
}

// ProposeTestMovie proposes a movie with minimal metadata.
func ProposeTestMovie(t *testing.T, coord *engine.Coordinator, token, username string, movieID int64, title string) {
	t.Helper()

	_, _, _, err := coord.ProposeMovie(token, username, models.MovieInput{
		TmdbID: movieID,
		Title:  title,
	})
	if err != nil {
		t.Fatalf("Failed to propose test movie %q: %v", title, err)
	}
}

// IntPtr returns a pointer to v, for optional limit fields.
func IntPtr(v int) *int {
	return &v
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}

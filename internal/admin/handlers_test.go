package admin

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/drishya/internal/kvstore"
	"github.com/dmitrijs2005/drishya/internal/logging"
	"github.com/dmitrijs2005/drishya/internal/models"
	"github.com/dmitrijs2005/drishya/internal/session"
	"github.com/dmitrijs2005/drishya/internal/users"
)

func discardLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newTestServer(t *testing.T) (*httptest.Server, *users.Service, *clockwork.FakeClock) {
	t.Helper()
	store := kvstore.NewMemoryStore()
	clock := clockwork.NewFakeClockAt(time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC))
	sess := session.NewManager(store, "test-secret", time.Hour)
	svc := users.NewService(store, sess, clock, discardLogger())

	mux := http.NewServeMux()
	NewHandlers(svc, discardLogger()).Register(mux)
	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)
	return ts, svc, clock
}

func getJSON(t *testing.T, url string, out any) int {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func TestHandleStats(t *testing.T) {
	ts, svc, clock := newTestServer(t)
	ctx := context.Background()

	_, err := svc.SignUp(ctx, "old@example.com", "Old", "secret1")
	require.NoError(t, err)
	clock.Advance(24 * time.Hour)
	_, err = svc.SignUp(ctx, "new@example.com", "New", "secret2")
	require.NoError(t, err)

	var stats users.Stats
	code := getJSON(t, ts.URL+"/api/stats", &stats)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 1, stats.Today)
	assert.Equal(t, 2, stats.Verified)
}

func TestHandleUsers(t *testing.T) {
	ts, svc, clock := newTestServer(t)
	ctx := context.Background()

	_, err := svc.SignUp(ctx, "a@example.com", "A", "secret1")
	require.NoError(t, err)
	clock.Advance(10 * 24 * time.Hour)
	_, err = svc.SignUp(ctx, "b@example.com", "B", "secret2")
	require.NoError(t, err)

	var all []models.User
	code := getJSON(t, ts.URL+"/api/users", &all)
	assert.Equal(t, http.StatusOK, code)
	assert.Len(t, all, 2)

	var recent []models.User
	code = getJSON(t, ts.URL+"/api/users?days=7", &recent)
	assert.Equal(t, http.StatusOK, code)
	require.Len(t, recent, 1)
	assert.Equal(t, "b@example.com", recent[0].Email)

	code = getJSON(t, ts.URL+"/api/users?days=nope", nil)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestHandleEmails(t *testing.T) {
	ts, svc, _ := newTestServer(t)
	ctx := context.Background()

	_, err := svc.SignUp(ctx, "a@example.com", "A", "secret1")
	require.NoError(t, err)
	_, err = svc.SignUp(ctx, "b@example.com", "B", "secret2")
	require.NoError(t, err)

	var out struct {
		Count  int      `json:"count"`
		Emails []string `json:"emails"`
	}
	code := getJSON(t, ts.URL+"/api/emails", &out)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, 2, out.Count)
	assert.ElementsMatch(t, []string{"a@example.com", "b@example.com"}, out.Emails)
}

func TestHandleTestimonials(t *testing.T) {
	ts, _, _ := newTestServer(t)

	var out []models.Testimonial
	code := getJSON(t, ts.URL+"/api/testimonials", &out)
	assert.Equal(t, http.StatusOK, code)
	assert.Len(t, out, 3)
}

func TestServerGracefulShutdown(t *testing.T) {
	store := kvstore.NewMemoryStore()
	clock := clockwork.NewFakeClock()
	sess := session.NewManager(store, "test-secret", time.Hour)
	svc := users.NewService(store, sess, clock, discardLogger())

	s := NewServer("127.0.0.1:0", NewHandlers(svc, discardLogger()), discardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	// give ListenAndServe a moment to start
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not shut down")
	}
}

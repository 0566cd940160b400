package googleauth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/RationSeva/ration_service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExchangeSession(t *testing.T) {
	t.Run("forwards the session id and decodes the profile", func(t *testing.T) {
		var gotSessionID string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotSessionID = r.Header.Get("X-Session-ID")
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"id": "google-123",
				"email": "priya@example.com",
				"name": "Priya Sharma",
				"picture": "https://example.com/p.jpg",
				"session_token": "sess-abc"
			}`))
		}))
		defer srv.Close()

		c := New(srv.URL)
		data, err := c.ExchangeSession(context.Background(), "session-1")
		require.NoError(t, err)

		assert.Equal(t, "session-1", gotSessionID)
		assert.Equal(t, "priya@example.com", data.Email)
		assert.Equal(t, "Priya Sharma", data.Name)
		assert.Equal(t, "sess-abc", data.SessionToken)
	})

	t.Run("non-200 is an invalid session", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "nope", http.StatusUnauthorized)
		}))
		defer srv.Close()

		c := New(srv.URL)
		_, err := c.ExchangeSession(context.Background(), "session-1")
		assert.ErrorIs(t, err, domain.ErrInvalidSession)
	})

	t.Run("malformed body is an invalid session", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("not json"))
		}))
		defer srv.Close()

		c := New(srv.URL)
		_, err := c.ExchangeSession(context.Background(), "session-1")
		assert.ErrorIs(t, err, domain.ErrInvalidSession)
	})

	t.Run("missing email is an invalid session", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"session_token":"sess-abc"}`))
		}))
		defer srv.Close()

		c := New(srv.URL)
		_, err := c.ExchangeSession(context.Background(), "session-1")
		assert.ErrorIs(t, err, domain.ErrInvalidSession)
	})

	t.Run("empty session id is rejected without a call", func(t *testing.T) {
		c := New("http://127.0.0.1:0")
		_, err := c.ExchangeSession(context.Background(), "")
		assert.ErrorIs(t, err, domain.ErrInvalidSession)
	})

	t.Run("unreachable endpoint is an invalid session", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close()

		c := New(srv.URL)
		_, err := c.ExchangeSession(context.Background(), "session-1")
		assert.ErrorIs(t, err, domain.ErrInvalidSession)
	})
}

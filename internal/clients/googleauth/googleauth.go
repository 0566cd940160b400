package googleauth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/RationSeva/ration_service/internal/domain"
)

// SessionData is the verified profile returned by the OAuth session-data
// endpoint.
type SessionData struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	Picture      string `json:"picture"`
	SessionToken string `json:"session_token"`
}

type Client struct {
	sessionURL string
	http       *http.Client
}

func New(sessionURL string) *Client {
	return &Client{
		sessionURL: sessionURL,
		http: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// ExchangeSession resolves an OAuth session id to profile data. Any non-200
// response or malformed body surfaces as an invalid session.
func (c *Client) ExchangeSession(ctx context.Context, sessionID string) (*SessionData, error) {
	if sessionID == "" {
		return nil, domain.ErrInvalidSession
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.sessionURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Session-ID", sessionID)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("session exchange: %w", domain.ErrInvalidSession)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return nil, domain.ErrInvalidSession
	}

	var data SessionData
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, domain.ErrInvalidSession
	}
	if data.Email == "" {
		return nil, domain.ErrInvalidSession
	}

	return &data, nil
}

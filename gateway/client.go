// Package gateway is the transport edge of the client: it talks to the
// real REST backend, attaches the bearer credential, and wipes the
// credential when the backend answers 401.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"restaurant-ordering/models"
)

// ErrUnauthorized is returned when the backend rejects the credential.
// The persisted session has already been cleared by then.
var ErrUnauthorized = errors.New("unauthorized")

// APIError is a non-2xx answer from the backend
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	sessions   SessionStore
}

func NewClient(baseURL string, sessions SessionStore) *Client {
	return &Client{
		baseURL:  baseURL,
		sessions: sessions,
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

// Get issues an authenticated GET and decodes the answer into out
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// Post issues an authenticated POST with a JSON body
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

// Put issues an authenticated PUT with a JSON body
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

// Delete issues an authenticated DELETE
func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodDelete, path, nil, out)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if session := c.sessions.Current(); session.IsAuthenticated {
		req.Header.Set("Authorization", "Bearer "+session.Token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		// Stale or revoked credential: drop it so the UI forces a
		// fresh login.
		_ = c.sessions.Clear()
		return ErrUnauthorized
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var payload struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&payload)
		return &APIError{Status: resp.StatusCode, Message: payload.Error}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// LoginResponse is the backend's answer to a successful login
type LoginResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// Login authenticates against the backend and persists the credential
// blob on success
func (c *Client) Login(ctx context.Context, email, password string) (models.Session, error) {
	var resp LoginResponse
	err := c.do(ctx, http.MethodPost, "/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, &resp)
	if err != nil {
		return models.Session{}, err
	}
	session := models.Session{
		User:            &resp.User,
		Token:           resp.Token,
		IsAuthenticated: true,
	}
	if err := c.sessions.Save(session); err != nil {
		return models.Session{}, fmt.Errorf("persist session: %w", err)
	}
	return session, nil
}

// Logout tells the backend goodbye and clears the credential either way
func (c *Client) Logout(ctx context.Context) error {
	err := c.do(ctx, http.MethodPost, "/auth/logout", nil, nil)
	if clearErr := c.sessions.Clear(); clearErr != nil && err == nil {
		err = clearErr
	}
	if errors.Is(err, ErrUnauthorized) {
		// Already logged out as far as the backend is concerned.
		return nil
	}
	return err
}

// Session exposes the current credential blob
func (c *Client) Session() models.Session {
	return c.sessions.Current()
}

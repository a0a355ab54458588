package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant-ordering/models"
)

func authedStore(token string) *MemorySessionStore {
	s := &MemorySessionStore{}
	_ = s.Save(models.Session{Token: token, IsAuthenticated: true})
	return s
}

func TestClientAttachesBearerToken(t *testing.T) {
	t.Parallel()

	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode(map[string]string{"ok": "yes"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, authedStore("tok-123"))
	var out map[string]string
	require.NoError(t, c.Get(context.Background(), "/anything", &out))
	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.Equal(t, "yes", out["ok"])
}

func TestClientSkipsAuthHeaderWhenLoggedOut(t *testing.T) {
	t.Parallel()

	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("{}"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, &MemorySessionStore{})
	require.NoError(t, c.Get(context.Background(), "/", nil))
	assert.Empty(t, gotAuth)
}

func TestUnauthorizedClearsSession(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	sessions := authedStore("stale")
	c := NewClient(srv.URL, sessions)

	err := c.Get(context.Background(), "/order/ongoing", nil)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.False(t, sessions.Current().IsAuthenticated)
}

func TestAPIErrorCarriesBackendMessage(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "Invalid state transition"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, &MemorySessionStore{})
	err := c.Put(context.Background(), "/order/1/status", map[string]string{"status": "READY"}, nil)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.Status)
	assert.Equal(t, "Invalid state transition", apiErr.Message)
}

func TestLoginPersistsSession(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/login", r.URL.Path)
		var creds map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		if creds["password"] != "demo123" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_ = json.NewEncoder(w).Encode(LoginResponse{
			Token: "tok-login",
			User:  models.User{ID: "user-demo", Email: creds["email"], Role: models.RoleCustomer},
		})
	}))
	defer srv.Close()

	sessions := &MemorySessionStore{}
	c := NewClient(srv.URL, sessions)

	session, err := c.Login(context.Background(), "dana@example.com", "demo123")
	require.NoError(t, err)
	assert.True(t, session.IsAuthenticated)
	assert.Equal(t, "tok-login", session.Token)
	require.NotNil(t, session.User)
	assert.Equal(t, "user-demo", session.User.ID)
	assert.True(t, sessions.Current().IsAuthenticated)

	_, err = c.Login(context.Background(), "dana@example.com", "wrong")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestLogoutClearsEvenWhenBackendRejects(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	sessions := authedStore("stale")
	c := NewClient(srv.URL, sessions)

	require.NoError(t, c.Logout(context.Background()))
	assert.False(t, sessions.Current().IsAuthenticated)
}

func TestFileSessionStoreRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "session.json")
	store, err := NewFileSessionStore(path)
	require.NoError(t, err)
	assert.False(t, store.Current().IsAuthenticated)

	session := models.Session{
		User:            &models.User{ID: "user-demo"},
		Token:           "tok",
		IsAuthenticated: true,
	}
	require.NoError(t, store.Save(session))

	// A fresh store reads the persisted blob back.
	reopened, err := NewFileSessionStore(path)
	require.NoError(t, err)
	assert.True(t, reopened.Current().IsAuthenticated)
	assert.Equal(t, "tok", reopened.Current().Token)

	require.NoError(t, store.Clear())
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestFileSessionStoreCorruptBlob(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	store, err := NewFileSessionStore(path)
	require.NoError(t, err)
	assert.False(t, store.Current().IsAuthenticated)
}

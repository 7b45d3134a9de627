package session

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaulthub/vaulthub-cli/internal/client/api"
	"github.com/vaulthub/vaulthub-cli/internal/client/storage"
	"github.com/vaulthub/vaulthub-cli/internal/common"
)

type memRepo struct {
	m map[string][]byte
}

func newMemRepo() *memRepo { return &memRepo{m: map[string][]byte{}} }

func (r *memRepo) Get(_ context.Context, key string) ([]byte, error) { return r.m[key], nil }
func (r *memRepo) Set(_ context.Context, key string, value []byte) error {
	r.m[key] = append([]byte(nil), value...)
	return nil
}
func (r *memRepo) Delete(_ context.Context, key string) error {
	delete(r.m, key)
	return nil
}
func (r *memRepo) Clear(_ context.Context) error {
	r.m = map[string][]byte{}
	return nil
}

type testEnv struct {
	store  *Store
	tokens *storage.TokenStore
	routes []string
}

func newTestEnv(t *testing.T, handler http.Handler) *testEnv {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	env := &testEnv{
		tokens: storage.NewTokenStore(newMemRepo()),
	}

	apiClient, err := api.New(srv.URL, api.WithTokenProvider(env.tokens.Token))
	require.NoError(t, err)

	env.store = NewStore(Options{
		API:      apiClient,
		Tokens:   env.tokens,
		Navigate: func(route string) { env.routes = append(env.routes, route) },
	})
	return env
}

// userHandler serves /api/user for the given token and rejects any other
// credential with a 401.
func userHandler(token string) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/user", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+token {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"email":"me@example.com"}`)
	})
	return mux
}

func TestInitialize_OneTimeTokenWinsAndURLIsStripped(t *testing.T) {
	env := newTestEnv(t, userHandler("fresh-token"))

	// A stale persisted token that must lose to the one-time delivery.
	require.NoError(t, env.tokens.SetToken(context.Background(), "stale-token"))

	clean := env.store.Initialize(context.Background(), "https://x/login#token=fresh-token&source=oidc")

	assert.Equal(t, StateAuthenticated, env.store.State())
	assert.Equal(t, "fresh-token", env.tokens.Token(context.Background()))
	assert.NotContains(t, clean, "fresh-token")
	assert.Equal(t, []string{RouteHome}, env.routes)
}

func TestInitialize_RejectedOneTimeTokenFallsThrough(t *testing.T) {
	env := newTestEnv(t, userHandler("some-other-token"))

	clean := env.store.Initialize(context.Background(), "https://x/login#token=bad-token&source=magic")

	assert.Equal(t, StateUnauthenticated, env.store.State())
	assert.Empty(t, env.tokens.Token(context.Background()), "rejected token must not persist")
	assert.NotContains(t, clean, "bad-token")
	assert.Empty(t, env.routes, "no navigation on failed bootstrap")
}

func TestInitialize_PersistedTokenRestoresSession(t *testing.T) {
	env := newTestEnv(t, userHandler("stored-token"))
	require.NoError(t, env.tokens.SetToken(context.Background(), "stored-token"))

	env.store.Initialize(context.Background(), "")

	assert.Equal(t, StateAuthenticated, env.store.State())
	assert.Equal(t, "me@example.com", env.store.User().Email)
	assert.True(t, env.store.IsAuthenticated())
}

func TestInitialize_InvalidPersistedTokenIsCleared(t *testing.T) {
	env := newTestEnv(t, userHandler("valid"))
	require.NoError(t, env.tokens.SetToken(context.Background(), "expired"))

	env.store.Initialize(context.Background(), "")

	assert.Equal(t, StateUnauthenticated, env.store.State())
	assert.Empty(t, env.tokens.Token(context.Background()))
}

func TestInitialize_NoCredentials(t *testing.T) {
	env := newTestEnv(t, userHandler("x"))

	assert.True(t, env.store.IsLoading(), "pre-initialize state counts as loading")
	env.store.Initialize(context.Background(), "")

	assert.Equal(t, StateUnauthenticated, env.store.State())
	assert.False(t, env.store.IsLoading())
	assert.Nil(t, env.store.User())
}

func TestLogin_EndToEnd(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"token":"jwt-login"}`)
	})
	mux.HandleFunc("GET /api/user", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer jwt-login" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"email":"me@example.com"}`)
	})
	env := newTestEnv(t, mux)

	require.NoError(t, env.store.Login(context.Background(), "me@example.com", "hunter2"))

	assert.Equal(t, StateAuthenticated, env.store.State())
	assert.Equal(t, "jwt-login", env.tokens.Token(context.Background()))
	assert.Equal(t, []string{RouteHome}, env.routes)
}

func TestLogin_EmptyTokenRejected(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"token":""}`)
	})
	env := newTestEnv(t, mux)

	err := env.store.Login(context.Background(), "me@example.com", "pw")
	require.ErrorIs(t, err, common.ErrInvalidToken)
	assert.NotEqual(t, StateAuthenticated, env.store.State())
}

func TestEnumerationSensitiveRequests_GenericOnTransportFailure(t *testing.T) {
	// Nothing listening: both flows must resolve with the same generic
	// message instead of leaking transport detail.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	tokens := storage.NewTokenStore(newMemRepo())
	apiClient, err := api.New(srv.URL, api.WithTokenProvider(tokens.Token))
	require.NoError(t, err)
	store := NewStore(Options{API: apiClient, Tokens: tokens})

	reset := store.RequestPasswordReset(context.Background(), "anyone@example.com")
	magic := store.RequestMagicLink(context.Background(), "anyone@example.com")

	assert.Equal(t, GenericRetryMessage, reset)
	assert.Equal(t, GenericRetryMessage, magic)
}

func TestEnumerationSensitiveRequests_ServerMessagePassedThrough(t *testing.T) {
	const msg = "If an account with that email exists, a reset link has been sent"
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/password/reset/request", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"message":"`+msg+`"}`)
	})
	env := newTestEnv(t, mux)

	// The message is identical whether or not the account exists; the
	// client shows exactly what the server said.
	assert.Equal(t, msg, env.store.RequestPasswordReset(context.Background(), "exists@example.com"))
	assert.Equal(t, msg, env.store.RequestPasswordReset(context.Background(), "nobody@example.com"))
}

func TestLogout_LocalTeardownSurvivesServerFailure(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/logout", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	env := newTestEnv(t, mux)
	require.NoError(t, env.tokens.SetToken(context.Background(), "jwt-abc"))

	env.store.Logout(context.Background())

	assert.Equal(t, StateUnauthenticated, env.store.State())
	assert.Empty(t, env.tokens.Token(context.Background()))
	assert.Equal(t, []string{RouteLogin}, env.routes)
}

func TestLogout_SkipsServerCallWithoutToken(t *testing.T) {
	var called bool
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/logout", func(w http.ResponseWriter, r *http.Request) {
		called = true
	})
	env := newTestEnv(t, mux)

	env.store.Logout(context.Background())

	assert.False(t, called)
	assert.Equal(t, []string{RouteLogin}, env.routes)
}

func TestHandleUnauthorized(t *testing.T) {
	env := newTestEnv(t, http.NewServeMux())
	require.NoError(t, env.tokens.SetToken(context.Background(), "dead-token"))

	env.store.HandleUnauthorized()

	assert.Equal(t, StateUnauthenticated, env.store.State())
	assert.Empty(t, env.tokens.Token(context.Background()))
	assert.Equal(t, []string{RouteLogin}, env.routes)
}

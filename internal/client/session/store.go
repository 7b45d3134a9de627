// Package session owns the client-side authentication lifecycle: token
// acquisition (password, OIDC redirect, magic link), token persistence,
// session bootstrap, and teardown. The Store is an explicit object
// constructed once at boot and handed to every consumer; there is no
// ambient global session.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/vaulthub/vaulthub-cli/internal/client/api"
	"github.com/vaulthub/vaulthub-cli/internal/client/storage"
	"github.com/vaulthub/vaulthub-cli/internal/common"
	"github.com/vaulthub/vaulthub-cli/internal/logging"
)

// Routes the store navigates to. The navigator is injected; in the
// terminal client it switches REPL screens, in tests it records calls.
const (
	RouteHome  = "/"
	RouteLogin = "/login"
)

// State is the session lifecycle. The only way back to Loading is a fresh
// process start.
type State int

const (
	StateUninitialized State = iota
	StateLoading
	StateAuthenticated
	StateUnauthenticated
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateAuthenticated:
		return "authenticated"
	case StateUnauthenticated:
		return "unauthenticated"
	default:
		return "uninitialized"
	}
}

// GenericRetryMessage is shown when an enumeration-sensitive request fails
// at the transport level. It deliberately carries no backend detail.
const GenericRetryMessage = "Something went wrong. Please try again."

// Store is the single source of truth for "who is logged in".
type Store struct {
	api      *api.Client
	tokens   *storage.TokenStore
	navigate func(route string)
	browse   func(url string) error
	log      logging.Logger

	mu    sync.Mutex
	state State
	user  *api.GetUserResponse
}

// Options configures a Store. Navigate and Browse are required seams:
// Navigate receives RouteHome/RouteLogin transitions, Browse performs the
// full browser navigation the OIDC flow needs.
type Options struct {
	API      *api.Client
	Tokens   *storage.TokenStore
	Navigate func(route string)
	Browse   func(url string) error
	Logger   logging.Logger
}

func NewStore(opts Options) *Store {
	log := opts.Logger
	if log == nil {
		log = logging.Discard()
	}
	nav := opts.Navigate
	if nav == nil {
		nav = func(string) {}
	}
	return &Store{
		api:      opts.API,
		tokens:   opts.Tokens,
		navigate: nav,
		browse:   opts.Browse,
		log:      log,
		state:    StateUninitialized,
	}
}

// State returns the current lifecycle state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// User returns the fetched profile, or nil when unauthenticated.
func (s *Store) User() *api.GetUserResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// IsAuthenticated reports whether a user profile is loaded. By invariant
// this is exactly user != nil.
func (s *Store) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user != nil
}

// IsLoading reports whether Initialize is still running. Route guards must
// treat this as a third state, never as unauthenticated.
func (s *Store) IsLoading() bool {
	st := s.State()
	return st == StateUninitialized || st == StateLoading
}

func (s *Store) setSession(state State, user *api.GetUserResponse) {
	s.mu.Lock()
	s.state = state
	s.user = user
	s.mu.Unlock()
}

// Initialize bootstraps the session. launchURL is the URL the process was
// started with (the OIDC/magic-link callback lands here); it may be empty.
//
// Precedence: a one-time token in the URL wins over the persisted token.
// On one-time success the credential is persisted, the profile fetched,
// and the user lands on the home route; on failure the token is discarded
// and the regular persisted-token check runs. Either way the returned URL
// has the credential stripped and is what replaces the visible URL — the
// token must not survive in history.
//
// Initialize always completes the loading phase; it never returns an error
// because an invalid token simply yields an unauthenticated session.
func (s *Store) Initialize(ctx context.Context, launchURL string) string {
	s.setSession(StateLoading, nil)

	cleanURL := launchURL
	if tok, stripped, ok := ExtractOneTimeToken(launchURL); ok {
		cleanURL = stripped
		if err := s.adoptToken(ctx, tok.Value); err == nil {
			s.log.Info(ctx, "session established from one-time token", "source", tok.Source)
			s.navigate(RouteHome)
			return cleanURL
		}
		s.log.Warn(ctx, "one-time token rejected, falling back to persisted token", "source", tok.Source)
		_ = s.tokens.ClearToken(ctx)
	}

	if token := s.tokens.Token(ctx); token != "" {
		user, err := s.api.GetCurrentUser(ctx)
		if err != nil {
			// Expired or revoked token: discard and start logged out.
			s.log.Info(ctx, "persisted token invalid, clearing", "error", err)
			_ = s.tokens.ClearToken(ctx)
			s.setSession(StateUnauthenticated, nil)
			return cleanURL
		}
		s.setSession(StateAuthenticated, user)
		return cleanURL
	}

	s.setSession(StateUnauthenticated, nil)
	return cleanURL
}

// adoptToken persists a freshly acquired token and loads the profile it
// belongs to. On any failure the session state is left untouched.
func (s *Store) adoptToken(ctx context.Context, token string) error {
	if err := s.tokens.SetToken(ctx, token); err != nil {
		return fmt.Errorf("failed to persist token: %w", err)
	}
	user, err := s.api.GetCurrentUser(ctx)
	if err != nil {
		return err
	}
	s.setSession(StateAuthenticated, user)
	return nil
}

// Login exchanges credentials for a session. On success the token is
// persisted, the profile loaded, and the user lands on the home route.
// Rejected credentials surface as the error message extracted from the
// HTTP layer.
func (s *Store) Login(ctx context.Context, email, password string) error {
	resp, err := s.api.Login(ctx, email, password)
	if err != nil {
		return err
	}
	if resp.Token == "" {
		return common.ErrInvalidToken
	}
	if err := s.adoptToken(ctx, resp.Token); err != nil {
		return err
	}
	s.navigate(RouteHome)
	return nil
}

// Signup creates an account. Same token-handling contract as Login.
func (s *Store) Signup(ctx context.Context, email, password, name string) error {
	resp, err := s.api.Signup(ctx, email, password, name)
	if err != nil {
		return err
	}
	if resp.Token == "" {
		return common.ErrInvalidToken
	}
	if err := s.adoptToken(ctx, resp.Token); err != nil {
		return err
	}
	s.navigate(RouteHome)
	return nil
}

// LoginWithOidc hands the user off to the server-side OIDC entry point in
// a full browser navigation. No client-side state changes until the
// browser returns with a fragment token consumed by Initialize.
func (s *Store) LoginWithOidc(ctx context.Context) error {
	if s.browse == nil {
		return errors.New("no browser available for OIDC login")
	}
	return s.browse(s.api.OidcLoginURL())
}

// RequestPasswordReset asks for a reset email. The returned message is
// always generic: the server answers identically whether or not the
// account exists, and transport failures map to a generic retry prompt.
// The error return is nil in both cases — enumeration-sensitive requests
// resolve, they do not fail.
func (s *Store) RequestPasswordReset(ctx context.Context, email string) string {
	resp, err := s.api.RequestPasswordReset(ctx, email)
	if err != nil {
		s.log.Warn(ctx, "password reset request failed", "error", err)
		return GenericRetryMessage
	}
	return resp.Message
}

// RequestMagicLink asks for a single-use login link. Same contract as
// RequestPasswordReset.
func (s *Store) RequestMagicLink(ctx context.Context, email string) string {
	resp, err := s.api.RequestMagicLink(ctx, email)
	if err != nil {
		s.log.Warn(ctx, "magic link request failed", "error", err)
		return GenericRetryMessage
	}
	return resp.Message
}

// ConfirmPasswordReset completes an emailed reset with the token it
// carried. Unlike the request step this is not enumeration-sensitive, so
// failures propagate.
func (s *Store) ConfirmPasswordReset(ctx context.Context, token, newPassword string) (string, error) {
	resp, err := s.api.ResetPassword(ctx, token, newPassword)
	if err != nil {
		return "", err
	}
	return resp.Message, nil
}

// Logout ends the session. The server call exists only so the logout is
// audited; its failure is logged and swallowed. The local teardown —
// clearing the persisted token, resetting state, navigating to the login
// route — happens unconditionally.
func (s *Store) Logout(ctx context.Context) {
	if s.tokens.Token(ctx) != "" {
		if err := s.api.Logout(ctx); err != nil {
			s.log.Warn(ctx, "server logout failed", "error", err)
		}
	}
	_ = s.tokens.ClearToken(ctx)
	s.setSession(StateUnauthenticated, nil)
	s.navigate(RouteLogin)
}

// HandleUnauthorized is the debounced 401 reaction wired into the API
// client's guard: tear the session down locally and send the user to the
// login route. No server call — the token is already dead.
func (s *Store) HandleUnauthorized() {
	ctx := context.Background()
	_ = s.tokens.ClearToken(ctx)
	s.setSession(StateUnauthenticated, nil)
	s.navigate(RouteLogin)
}

package sdk

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sync"
	"time"

	"go.uber.org/zap"
)

// SessionState is the lifecycle position of a Session as consumed by the
// route guard and the screens.
type SessionState int

const (
	// StateAnonymous means no token is held; every protected screen is denied.
	StateAnonymous SessionState = iota
	// StateResolving means a token is held but the identity behind it has
	// not been fetched yet. Consumers must treat this as indeterminate,
	// not as logged out.
	StateResolving
	// StateAuthenticated means both token and identity are present.
	StateAuthenticated
)

func (s SessionState) String() string {
	switch s {
	case StateResolving:
		return "resolving"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "anonymous"
	}
}

// Matches the mailbox check the login screen applies before any network
// call: something@something.something, no whitespace.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Session is the single source of truth for "who is logged in". It owns
// the bearer token, the identity resolved from it, and their persistence,
// and it is the only mutator of all three. Construct one per process and
// inject it; there is no ambient global.
type Session struct {
	client *Client
	store  CredentialStore
	logger *zap.Logger

	mu       sync.Mutex
	token    string
	identity *User

	// restoreOnce guarantees at most one identity resolution per process,
	// regardless of how many callers race into Restore.
	restoreOnce sync.Once
	restoreErr  error

	listenerMu sync.Mutex
	listeners  []func()
}

// SessionOptions configures Session construction.
type SessionOptions struct {
	Logger *zap.Logger
}

// SessionOption mutates SessionOptions.
type SessionOption func(*SessionOptions)

// WithSessionLogger installs a logger for session lifecycle events.
func WithSessionLogger(logger *zap.Logger) SessionOption {
	return func(opts *SessionOptions) {
		opts.Logger = logger
	}
}

// NewSession builds a Session on top of an SDK client and a credential
// store. The session registers itself as the client's unauthorized hook,
// so a 401 on any authenticated request collapses the session back to
// anonymous.
func NewSession(client *Client, store CredentialStore, optFns ...SessionOption) *Session {
	opts := SessionOptions{}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	s := &Session{
		client: client,
		store:  store,
		logger: opts.Logger,
	}
	client.OnUnauthorized(s.handleUnauthorized)
	return s
}

// Login authenticates with email and password. Both fields must be
// non-empty and the email must be mailbox-shaped; violations are rejected
// locally without a network call and without touching the session. On any
// server or network failure the session is likewise unchanged and a
// uniform ErrAuthentication is returned.
func (s *Session) Login(ctx context.Context, email, password string) (*User, error) {
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}
	if !emailPattern.MatchString(email) {
		return nil, fmt.Errorf("%w: malformed email address", ErrInvalidInput)
	}

	result, err := s.client.Login(ctx, LoginInput{Email: email, Password: password})
	if err != nil {
		s.logger.Debug("login failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrAuthentication, err)
	}

	creds := &Credentials{
		Token:      result.Token,
		TokenType:  "Bearer",
		ObtainedAt: time.Now(),
	}
	if err := s.store.SaveCredentials(creds); err != nil {
		return nil, fmt.Errorf("failed to persist credentials: %w", err)
	}

	identity := result.User
	s.mu.Lock()
	s.token = result.Token
	s.identity = &identity
	s.mu.Unlock()
	s.client.SetBearerToken(result.Token)

	// The identity came with the login response; a later Restore must not
	// spend a round trip re-resolving the same token.
	s.restoreOnce.Do(func() {})

	s.logger.Info("logged in", zap.String("user", identity.Email), zap.String("role", string(identity.Role)))
	return &identity, nil
}

// Restore reconciles the session with persisted storage. It runs its
// resolution at most once per process; later calls return the first
// outcome. With no persisted token the session stays anonymous and no
// network call is made. With a token, the identity is fetched from
// /users/me; any failure clears both the in-memory session and the
// persisted storage, exactly like Logout.
func (s *Session) Restore(ctx context.Context) error {
	s.restoreOnce.Do(func() {
		s.restoreErr = s.resolve(ctx)
	})
	return s.restoreErr
}

func (s *Session) resolve(ctx context.Context) error {
	creds, err := s.store.LoadCredentials()
	if errors.Is(err, ErrNoCredentials) {
		// Absent credentials mean logged out, which is a valid state.
		s.logger.Debug("no persisted session")
		return nil
	}
	if err != nil {
		// Unreadable credentials are treated like a rejected token: clear
		// the store so the next load starts clean.
		s.logger.Warn("failed to load persisted session", zap.Error(err))
		_ = s.store.DeleteCredentials()
		return fmt.Errorf("%w: %w", ErrAuthentication, err)
	}

	s.mu.Lock()
	s.token = creds.Token
	s.identity = nil
	s.mu.Unlock()
	s.client.SetBearerToken(creds.Token)

	user, err := s.client.Me(ctx)
	if err != nil {
		s.logger.Warn("session restoration rejected", zap.Error(err))
		s.invalidate()
		return fmt.Errorf("%w: %w", ErrAuthentication, err)
	}

	s.mu.Lock()
	s.identity = user
	s.mu.Unlock()
	s.logger.Info("session restored", zap.String("user", user.Email))
	return nil
}

// Logout clears the token, the identity and the persisted storage, then
// notifies invalidation listeners. It is idempotent: logging out while
// already anonymous is a no-op beyond the notification.
func (s *Session) Logout() error {
	if err := s.invalidate(); err != nil {
		return err
	}
	s.notifyInvalidated()
	return nil
}

// handleUnauthorized reacts to a 401 on any authenticated request: the
// token is expired or revoked, so the session collapses to anonymous.
func (s *Session) handleUnauthorized() {
	s.mu.Lock()
	hadToken := s.token != ""
	s.mu.Unlock()
	if !hadToken {
		return
	}
	s.logger.Warn("bearer token rejected by server; clearing session")
	if err := s.invalidate(); err != nil {
		s.logger.Error("failed to clear persisted credentials", zap.Error(err))
	}
	s.notifyInvalidated()
}

func (s *Session) invalidate() error {
	s.mu.Lock()
	s.token = ""
	s.identity = nil
	s.mu.Unlock()
	s.client.SetBearerToken("")
	return s.store.DeleteCredentials()
}

// OnInvalidate registers fn to run after the session has been cleared by
// Logout or by a server-side token rejection. The application shell
// observes this instead of relying on navigation side effects.
func (s *Session) OnInvalidate(fn func()) {
	s.listenerMu.Lock()
	defer s.listenerMu.Unlock()
	s.listeners = append(s.listeners, fn)
}

func (s *Session) notifyInvalidated() {
	s.listenerMu.Lock()
	listeners := make([]func(), len(s.listeners))
	copy(listeners, s.listeners)
	s.listenerMu.Unlock()
	for _, fn := range listeners {
		fn()
	}
}

// Token returns the current bearer token, if any.
func (s *Session) Token() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, s.token != ""
}

// Identity returns the resolved identity, if any. Callers must tolerate
// an absent identity while a held token is still resolving.
func (s *Session) Identity() (*User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.identity == nil {
		return nil, false
	}
	identity := *s.identity
	return &identity, true
}

// Role returns the resolved identity's role, if the identity is known.
func (s *Session) Role() (Role, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.identity == nil {
		return "", false
	}
	return s.identity.Role, true
}

// IsAuthenticated reports token presence. This is the guard's input: a
// held token is sufficient to pass, even before the identity resolves.
func (s *Session) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token != ""
}

// State derives the lifecycle state from token and identity presence.
func (s *Session) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch {
	case s.token == "":
		return StateAnonymous
	case s.identity == nil:
		return StateResolving
	default:
		return StateAuthenticated
	}
}

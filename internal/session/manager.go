package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/hirenest/admin-console/internal/types"
)

// DefaultLifetime is used when the token carries no exp claim.
const DefaultLifetime = 24 * time.Hour

// Authenticator exchanges credentials for a token.
type Authenticator interface {
	Login(ctx context.Context, req types.LoginRequest) (types.LoginResponse, error)
}

// State is a snapshot of the auth container.
type State struct {
	IsAuthenticated bool
	User            *types.AdminUser
	ExpiresAt       time.Time
	IsLoading       bool
	Restored        bool
	Error           string
}

// Manager is the single owner of the bearer token.
type Manager struct {
	mu       sync.RWMutex
	store    Store
	session  *Session
	restored bool
	loading  bool
	err      string
	now      func() time.Time
	logger   *zap.Logger
}

// ManagerOption customises a Manager.
type ManagerOption func(*Manager)

// WithClock overrides the time source.
func WithClock(now func() time.Time) ManagerOption {
	return func(m *Manager) { m.now = now }
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) ManagerOption {
	return func(m *Manager) {
		if l != nil {
			m.logger = l
		}
	}
}

// NewManager creates a Manager backed by store.
func NewManager(store Store, opts ...ManagerOption) *Manager {
	m := &Manager{
		store:  store,
		now:    time.Now,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Restore loads the persisted session. It runs once; later calls are no-ops.
// Expired or unreadable sessions are cleared.
func (m *Manager) Restore() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.restored {
		return nil
	}
	m.restored = true

	s, err := m.store.Load()
	if errors.Is(err, ErrNoSession) {
		return nil
	}
	if err != nil {
		m.logger.Warn("discarding unreadable session", zap.Error(err))
		return m.store.Clear()
	}
	if s.Expired(m.now()) {
		m.logger.Info("saved session expired", zap.Time("expires_at", s.ExpiresAt))
		return m.store.Clear()
	}
	m.session = &s
	return nil
}

// Login validates the credentials, authenticates and persists the new session.
func (m *Manager) Login(ctx context.Context, auth Authenticator, email, password string) (Session, error) {
	req := types.LoginRequest{Email: email, Password: password}
	if err := req.Validate(); err != nil {
		m.setError(err)
		return Session{}, err
	}

	m.mu.Lock()
	m.loading = true
	m.err = ""
	m.mu.Unlock()

	resp, err := auth.Login(ctx, req)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.loading = false
	if err != nil {
		m.err = err.Error()
		return Session{}, err
	}

	s := Session{
		Token:     resp.Token,
		User:      resp.User,
		ExpiresAt: m.expiry(resp.Token),
	}
	if err := m.store.Save(s); err != nil {
		m.err = err.Error()
		return Session{}, err
	}
	m.session = &s
	m.restored = true
	m.logger.Info("signed in", zap.String("email", s.User.Email))
	return s, nil
}

func (m *Manager) expiry(token string) time.Time {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err == nil {
		if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
			return exp.Time
		}
	}
	return m.now().Add(DefaultLifetime)
}

// Logout ends the session.
func (m *Manager) Logout() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session = nil
	m.err = ""
	return m.store.Clear()
}

// Invalidate drops the session after the backend rejected the token.
func (m *Manager) Invalidate() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.session != nil {
		m.logger.Warn("session rejected by backend", zap.String("email", m.session.User.Email))
	}
	m.session = nil
	m.err = "Unauthorized"
	if err := m.store.Clear(); err != nil {
		m.logger.Error("failed to clear session", zap.Error(err))
	}
}

// Token returns the bearer token, or "" when signed out or expired.
func (m *Manager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.session == nil || m.session.Expired(m.now()) {
		return ""
	}
	return m.session.Token
}

// State returns a snapshot of the auth state.
func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	st := State{
		IsLoading: m.loading,
		Restored:  m.restored,
		Error:     m.err,
	}
	if m.session != nil && !m.session.Expired(m.now()) {
		user := m.session.User
		st.IsAuthenticated = true
		st.User = &user
		st.ExpiresAt = m.session.ExpiresAt
	}
	return st
}

// ClearError dismisses the last error.
func (m *Manager) ClearError() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = ""
}

func (m *Manager) setError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err.Error()
}

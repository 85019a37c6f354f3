package session

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirenest/admin-console/internal/apiclient"
	"github.com/hirenest/admin-console/internal/types"
)

var admin = types.AdminUser{ID: "u1", Email: "admin@hirenest.com", FirstName: "Admin"}

type fakeAuth struct {
	token string
	err   error
	calls int
}

func (f *fakeAuth) Login(ctx context.Context, req types.LoginRequest) (types.LoginResponse, error) {
	f.calls++
	if f.err != nil {
		return types.LoginResponse{}, f.err
	}
	return types.LoginResponse{Message: "ok", Token: f.token, User: admin}, nil
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(exp)})
	s, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return s
}

func TestFileStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session.json")
	store := NewFileStore(path)

	_, err := store.Load()
	assert.ErrorIs(t, err, ErrNoSession)

	s := Session{Token: "abc", User: admin, ExpiresAt: time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)}
	require.NoError(t, store.Save(s))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, s.Token, loaded.Token)
	assert.Equal(t, s.User, loaded.User)
	assert.True(t, s.ExpiresAt.Equal(loaded.ExpiresAt))

	require.NoError(t, store.Clear())
	require.NoError(t, store.Clear())
	_, err = store.Load()
	assert.ErrorIs(t, err, ErrNoSession)
}

// Login then a fresh manager over the same store must come back authenticated.
func TestManager_LoginThenRestore(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "session.json"))
	exp := time.Now().Add(2 * time.Hour).Truncate(time.Second)
	auth := &fakeAuth{token: signedToken(t, exp)}

	m := NewManager(store)
	require.NoError(t, m.Restore())
	s, err := m.Login(context.Background(), auth, "admin@hirenest.com", "secret")
	require.NoError(t, err)
	assert.True(t, exp.Equal(s.ExpiresAt))
	assert.Equal(t, auth.token, m.Token())

	reloaded := NewManager(store)
	require.NoError(t, reloaded.Restore())
	st := reloaded.State()
	assert.True(t, st.IsAuthenticated)
	require.NotNil(t, st.User)
	assert.Equal(t, admin, *st.User)
	assert.Equal(t, auth.token, reloaded.Token())
}

func TestManager_LoginWithoutExpClaimUsesDefault(t *testing.T) {
	fixed := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	m := NewManager(&MemoryStore{}, WithClock(func() time.Time { return fixed }))

	s, err := m.Login(context.Background(), &fakeAuth{token: "opaque-token"}, "admin@hirenest.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, fixed.Add(DefaultLifetime), s.ExpiresAt)
}

func TestManager_LoginValidatesBeforeCalling(t *testing.T) {
	auth := &fakeAuth{token: "x"}
	m := NewManager(&MemoryStore{})

	_, err := m.Login(context.Background(), auth, "not-an-email", "secret")
	var verr *types.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, 0, auth.calls)
	assert.NotEmpty(t, m.State().Error)

	m.ClearError()
	assert.Empty(t, m.State().Error)
}

func TestManager_LoginFailureKeepsSignedOut(t *testing.T) {
	m := NewManager(&MemoryStore{})
	_, err := m.Login(context.Background(), &fakeAuth{err: errors.New("Invalid credentials")}, "admin@hirenest.com", "bad")
	require.Error(t, err)

	st := m.State()
	assert.False(t, st.IsAuthenticated)
	assert.False(t, st.IsLoading)
	assert.Equal(t, "Invalid credentials", st.Error)
}

func TestManager_RestoreClearsExpiredSession(t *testing.T) {
	store := &MemoryStore{}
	require.NoError(t, store.Save(Session{Token: "old", User: admin, ExpiresAt: time.Now().Add(-time.Minute)}))

	m := NewManager(store)
	require.NoError(t, m.Restore())
	assert.False(t, m.State().IsAuthenticated)
	assert.Empty(t, m.Token())

	_, err := store.Load()
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestManager_RestoreRunsOnce(t *testing.T) {
	store := &MemoryStore{}
	m := NewManager(store)
	require.NoError(t, m.Restore())

	require.NoError(t, store.Save(Session{Token: "late", User: admin}))
	require.NoError(t, m.Restore())
	assert.False(t, m.State().IsAuthenticated)
}

func TestManager_Logout(t *testing.T) {
	store := &MemoryStore{}
	m := NewManager(store)
	_, err := m.Login(context.Background(), &fakeAuth{token: "tok"}, "admin@hirenest.com", "pw")
	require.NoError(t, err)

	require.NoError(t, m.Logout())
	assert.False(t, m.State().IsAuthenticated)
	_, err = store.Load()
	assert.ErrorIs(t, err, ErrNoSession)
}

// A 401 from any call must leave the manager signed out with no token on disk.
func TestManager_UnauthorizedResponseInvalidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	store := NewFileStore(filepath.Join(t.TempDir(), "session.json"))
	m := NewManager(store)
	_, err := m.Login(context.Background(), &fakeAuth{token: "tok"}, "admin@hirenest.com", "pw")
	require.NoError(t, err)

	client, err := apiclient.New(srv.URL, apiclient.WithTokenSource(m), apiclient.WithUnauthorizedHandler(m.Invalidate))
	require.NoError(t, err)

	_, err = client.Request(context.Background(), "/admin/job-providers", apiclient.RequestOptions{})
	assert.ErrorIs(t, err, apiclient.ErrUnauthorized)

	st := m.State()
	assert.False(t, st.IsAuthenticated)
	assert.Equal(t, "Unauthorized", st.Error)
	assert.Empty(t, m.Token())
	_, err = store.Load()
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestGuard_Require(t *testing.T) {
	store := &MemoryStore{}
	m := NewManager(store)
	g := NewGuard(m)

	_, err := g.Require()
	assert.ErrorIs(t, err, ErrNotRestored)

	require.NoError(t, m.Restore())
	_, err = g.Require()
	assert.ErrorIs(t, err, ErrNotAuthenticated)

	_, err = m.Login(context.Background(), &fakeAuth{token: "tok"}, "admin@hirenest.com", "pw")
	require.NoError(t, err)
	user, err := g.Require()
	require.NoError(t, err)
	assert.Equal(t, admin, user)
}

package session

import (
	"errors"

	"github.com/hirenest/admin-console/internal/types"
)

var (
	// ErrNotAuthenticated means there is no valid session; the admin must sign in.
	ErrNotAuthenticated = errors.New("not signed in: run `hirenest login`")
	// ErrNotRestored means the guard ran before the persisted session was loaded.
	ErrNotRestored = errors.New("session not restored yet")
)

// Guard gates operations that require a signed-in admin. It only reads the state
// restored by Manager.Restore.
type Guard struct {
	manager *Manager
}

// NewGuard creates a Guard over m.
func NewGuard(m *Manager) *Guard {
	return &Guard{manager: m}
}

// Require returns the signed-in user or an error explaining why there is none.
func (g *Guard) Require() (types.AdminUser, error) {
	st := g.manager.State()
	if !st.Restored {
		return types.AdminUser{}, ErrNotRestored
	}
	if !st.IsAuthenticated || st.User == nil {
		return types.AdminUser{}, ErrNotAuthenticated
	}
	return *st.User, nil
}

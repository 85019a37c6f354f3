// Package team manages the local roster of console members and pending invitations.
// Invitations are validated locally; an invalid or duplicate address never reaches
// the network.
package team

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/hirenest/admin-console/internal/types"
)

// Role is a team member's access level.
type Role string

// Roles offered when inviting.
const (
	RoleFullAccess    Role = "Licensed Seat (Full Access)"
	RoleHiringManager Role = "Hiring Manager (Limited)"
	RoleViewer        Role = "Viewer"
)

// Roles lists every role in display order.
var Roles = []Role{RoleFullAccess, RoleHiringManager, RoleViewer}

// ParseRole accepts a role name or a short alias (full, hiring, viewer).
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "full", "full-access", strings.ToLower(string(RoleFullAccess)):
		return RoleFullAccess, nil
	case "hiring", "hiring-manager", strings.ToLower(string(RoleHiringManager)):
		return RoleHiringManager, nil
	case "viewer", strings.ToLower(string(RoleViewer)):
		return RoleViewer, nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// Invite validation failures. The messages are shown verbatim.
//
//nolint:staticcheck // capitalized messages are user-facing
var (
	ErrEmailRequired  = errors.New("Email is required")
	ErrInvalidEmail   = errors.New("Enter a valid email address")
	ErrAlreadyMember  = errors.New("Email already belongs to a team member")
	ErrAlreadyInvited = errors.New("An invitation has already been sent to this email")
)

// ErrCannotRemoveSelf is returned when removing the signed-in admin.
var ErrCannotRemoveSelf = errors.New("cannot remove yourself from the team")

// ErrMemberNotFound is returned for an unknown member id.
var ErrMemberNotFound = errors.New("team member not found")

var emailPattern = regexp.MustCompile(`^(?:[a-zA-Z0-9_'^&\-\+])+(?:\.(?:[a-zA-Z0-9_'^&\-\+])+)*@(?:[a-zA-Z0-9-]+\.)+[a-zA-Z]{2,}$`)

// Member is a person with console access.
type Member struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
	IsYou bool   `json:"isYou,omitempty"`
}

// Invitation is a pending invite.
type Invitation struct {
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	InvitedAt time.Time `json:"invitedAt"`
}

// Roster is the team and its pending invitations.
type Roster struct {
	Members []Member     `json:"members"`
	Pending []Invitation `json:"pending"`
}

// NewRoster starts a roster holding only the signed-in admin.
func NewRoster(adminEmail string) *Roster {
	if adminEmail == "" {
		adminEmail = "-"
	}
	return &Roster{
		Members: []Member{{
			ID:    "you",
			Name:  "Admin (You)",
			Email: adminEmail,
			Role:  RoleFullAccess,
			IsYou: true,
		}},
	}
}

// ValidateEmail checks an invite address against the format and duplicate rules.
func (r *Roster) ValidateEmail(email string) error {
	value := strings.TrimSpace(email)
	if value == "" {
		return ErrEmailRequired
	}
	if !emailPattern.MatchString(value) || types.ValidateVar(value, "email") != nil {
		return ErrInvalidEmail
	}
	for _, m := range r.Members {
		if strings.EqualFold(m.Email, value) {
			return ErrAlreadyMember
		}
	}
	for _, p := range r.Pending {
		if strings.EqualFold(p.Email, value) {
			return ErrAlreadyInvited
		}
	}
	return nil
}

// Invite validates the address and records a pending invitation, newest first.
func (r *Roster) Invite(email string, role Role, now time.Time) (Invitation, error) {
	if err := r.ValidateEmail(email); err != nil {
		return Invitation{}, err
	}
	inv := Invitation{Email: strings.TrimSpace(email), Role: role, InvitedAt: now}
	r.Pending = append([]Invitation{inv}, r.Pending...)
	return inv, nil
}

// CancelInvite drops a pending invitation. It reports whether one was removed.
func (r *Roster) CancelInvite(email string) bool {
	for i, p := range r.Pending {
		if strings.EqualFold(p.Email, strings.TrimSpace(email)) {
			r.Pending = append(r.Pending[:i], r.Pending[i+1:]...)
			return true
		}
	}
	return false
}

// SetRole changes a member's role.
func (r *Roster) SetRole(id string, role Role) error {
	for i := range r.Members {
		if r.Members[i].ID == id {
			r.Members[i].Role = role
			return nil
		}
	}
	return ErrMemberNotFound
}

// RemoveMember removes a member other than the signed-in admin.
func (r *Roster) RemoveMember(id string) error {
	for i, m := range r.Members {
		if m.ID != id {
			continue
		}
		if m.IsYou {
			return ErrCannotRemoveSelf
		}
		r.Members = append(r.Members[:i], r.Members[i+1:]...)
		return nil
	}
	return ErrMemberNotFound
}

// Filter returns members whose name or email contains query, case-insensitively.
func (r *Roster) Filter(query string) []Member {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return append([]Member(nil), r.Members...)
	}
	var out []Member
	for _, m := range r.Members {
		if strings.Contains(strings.ToLower(m.Name), q) || strings.Contains(strings.ToLower(m.Email), q) {
			out = append(out, m)
		}
	}
	return out
}

// Load reads a roster file. A missing file yields a fresh roster for adminEmail.
func Load(path, adminEmail string) (*Roster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return NewRoster(adminEmail), nil
		}
		return nil, fmt.Errorf("read roster: %w", err)
	}
	var r Roster
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("decode roster: %w", err)
	}
	return &r, nil
}

// Save writes the roster file.
func (r *Roster) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create roster dir: %w", err)
	}
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("encode roster: %w", err)
	}
	return os.WriteFile(path, data, 0o600)
}

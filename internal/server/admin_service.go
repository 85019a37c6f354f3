package server

import (
	"context"
	"fmt"
	"strings"

	"github.com/hirenest/admin-console/internal/config"
	"github.com/hirenest/admin-console/internal/types"
	"go.mongodb.org/mongo-driver/v2/bson"
)

const adminRole = "admin"

// AdminService authenticates the single console administrator.
type AdminService struct {
	admin          types.AdminUser
	passwordHash   string
	passwordConfig *config.PasswordConfig
}

// NewAdminService hashes the configured password once at startup.
func NewAdminService(email, password string, passwordConfig *config.PasswordConfig) (*AdminService, error) {
	hash, err := passwordConfig.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash admin password: %w", err)
	}
	return &AdminService{
		admin: types.AdminUser{
			ID:        bson.NewObjectID().Hex(),
			Email:     strings.ToLower(strings.TrimSpace(email)),
			FirstName: "Admin",
		},
		passwordHash:   hash,
		passwordConfig: passwordConfig,
	}, nil
}

// Admin returns the administrator record.
func (s *AdminService) Admin() types.AdminUser {
	return s.admin
}

// Login checks the credentials. Unknown email and wrong password fail the same way.
func (s *AdminService) Login(ctx context.Context, req *types.LoginRequest) (types.AdminUser, error) {
	if err := ctx.Err(); err != nil {
		return types.AdminUser{}, err
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))
	// The hash is compared even for unknown emails so both failures take the same time.
	ok := s.passwordConfig.VerifyPassword(req.Password, s.passwordHash)
	if email != s.admin.Email || !ok {
		return types.AdminUser{}, &ErrInvalidCredentials{}
	}
	return s.admin, nil
}

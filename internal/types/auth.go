// Package types provides the view models, wire models and request payloads shared
// by the HireNest admin console and its development backend.
package types

// LoginRequest represents the admin login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AdminUser is the cached user record returned by login.
type AdminUser struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
}

// LoginResponse represents the login response with the bearer token.
type LoginResponse struct {
	Message string    `json:"message"`
	Token   string    `json:"token"`
	User    AdminUser `json:"user"`
}

// Validate validates the LoginRequest using the validator.
func (r *LoginRequest) Validate() error {
	return Validate(r)
}

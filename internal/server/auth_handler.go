package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/hirenest/admin-console/internal/types"
	"go.uber.org/zap"
)

// AuthHandler handles authentication-related HTTP requests.
type AuthHandler struct {
	admins     *AdminService
	jwtService *JWTService
	metrics    *metrics
	logger     *zap.Logger
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(admins *AdminService, jwtService *JWTService, m *metrics, logger *zap.Logger) *AuthHandler {
	if m == nil {
		m = newMetrics()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthHandler{
		admins:     admins,
		jwtService: jwtService,
		metrics:    m,
		logger:     logger,
	}
}

func (h *AuthHandler) fail(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "error", "message": message})
}

// Login handles admin login requests.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req types.LoginRequest
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		h.fail(w, http.StatusBadRequest, err.Error())
		return
	}

	admin, err := h.admins.Login(r.Context(), &req)
	if err != nil {
		var creds *ErrInvalidCredentials
		if errors.As(err, &creds) {
			h.metrics.recordLogin(false)
			h.logger.Info("admin login rejected", zap.String("email", req.Email))
		}
		h.fail(w, HTTPStatus(err), err.Error())
		return
	}

	token, err := h.jwtService.GenerateToken(admin)
	if err != nil {
		h.logger.Error("failed to generate token", zap.Error(err))
		h.fail(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}
	h.metrics.recordLogin(true)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(types.LoginResponse{
		Message: "Login successful",
		Token:   token,
		User:    admin,
	})
}

package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/hirenest/admin-console/internal/config"
	"github.com/hirenest/admin-console/internal/server/middleware"
	"github.com/hirenest/admin-console/internal/server/ratelimit"
	"go.uber.org/zap"
)

// maxBodyBytes bounds request bodies.
const maxBodyBytes = 1 << 20

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	cfg         *config.ServerConfig
	store       *MemoryStore
	rateLimiter *ratelimit.Limiter
	jwtService  *JWTService
	authHandler *AuthHandler
	metrics     *metrics
	logger      *zap.Logger
}

// Option customizes a Server.
type Option func(*Server)

// WithStore serves the given data instead of the demo seed.
func WithStore(store *MemoryStore) Option {
	return func(s *Server) { s.store = store }
}

// WithRateLimiter replaces the limiter built from RATE_LIMIT_* variables.
func WithRateLimiter(l *ratelimit.Limiter) Option {
	return func(s *Server) { s.rateLimiter = l }
}

// New creates a new server instance
func New(cfg *config.ServerConfig, logger *zap.Logger, opts ...Option) (*Server, error) {
	if cfg == nil {
		return nil, fmt.Errorf("server config is nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Server{
		cfg:     cfg,
		logger:  logger,
		metrics: newMetrics(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.store == nil {
		s.store = NewMemoryStore(time.Now)
		s.store.Seed()
	}
	if s.rateLimiter == nil {
		s.rateLimiter = ratelimit.NewLimiter(ratelimit.LoadConfig())
	}

	admins, err := NewAdminService(cfg.AdminEmail, cfg.AdminPassword, cfg.Password)
	if err != nil {
		return nil, err
	}
	s.jwtService = NewJWTService(cfg.JWT)
	s.authHandler = NewAuthHandler(admins, s.jwtService, s.metrics, logger)

	s.httpServer = &http.Server{
		Addr:              cfg.Addr(),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	return s, nil
}

// Handler builds the routed handler with its middleware chain.
func (s *Server) Handler() http.Handler {
	api := http.NewServeMux()

	// Job providers
	api.HandleFunc("GET /admin/job-providers", s.handleListCompanies)
	api.HandleFunc("GET /admin/job-providers/{id}", s.handleGetCompany)
	api.HandleFunc("PATCH /admin/job-providers/{id}/toggle-status", s.handleToggleCompany)
	api.HandleFunc("PATCH /admin/job-providers/{id}/update-profile", s.handleUpdateCompany)
	api.HandleFunc("PATCH /admin/job-providers/{id}/verification", s.handleVerifyCompany)
	api.HandleFunc("DELETE /admin/job-providers/{id}", s.handleDeleteCompany)

	// Job seekers
	api.HandleFunc("GET /admin/job-seekers", s.handleListJobSeekers)
	api.HandleFunc("GET /admin/job-seekers/count", s.handleStats)
	api.HandleFunc("GET /admin/job-seekers/{id}", s.handleGetJobSeeker)
	api.HandleFunc("PATCH /admin/job-seekers/{id}/toggle-status", s.handleToggleJobSeeker)
	api.HandleFunc("PATCH /admin/job-seekers/{id}/update-profile", s.handleUpdateJobSeeker)
	api.HandleFunc("DELETE /admin/job-seekers/{id}", s.handleDeleteJobSeeker)

	// Job posts
	api.HandleFunc("GET /admin/job-posts", s.handleListJobPosts)
	api.HandleFunc("GET /admin/job-posts/active", s.handleActiveJobPosts)
	api.HandleFunc("GET /admin/job-posts/{id}", s.handleGetJobPost)
	api.HandleFunc("PATCH /admin/job-posts/{id}", s.handleUpdateJobPost)
	api.HandleFunc("DELETE /admin/job-posts/{id}", s.handleDeleteJobPost)

	// Catalog and settings
	api.HandleFunc("GET /admin/dashboard/stats", s.handleStats)
	api.HandleFunc("GET /admin/packages", s.handleListPackages)
	api.HandleFunc("POST /admin/packages", s.handleCreatePackage)
	api.HandleFunc("GET /admin/packages/{id}", s.handleGetPackage)
	api.HandleFunc("PUT /admin/packages/{id}", s.handleUpdatePackage)
	api.HandleFunc("DELETE /admin/packages/{id}", s.handleDeletePackage)
	api.HandleFunc("GET /admin/features", s.handleListFeatures)
	api.HandleFunc("POST /admin/features", s.handleCreateFeature)
	api.HandleFunc("PUT /admin/features/{id}", s.handleUpdateFeature)
	api.HandleFunc("DELETE /admin/features/{id}", s.handleDeleteFeature)
	api.HandleFunc("GET /admin/settings", s.handleGetSettings)
	api.HandleFunc("PUT /admin/settings", s.handleUpdateSettings)

	root := http.NewServeMux()
	root.HandleFunc("GET /health", s.handleHealth)
	root.Handle("GET /metrics", s.metrics.handler())
	root.HandleFunc("POST /admin/auth/login", s.authHandler.Login)
	root.Handle("/admin/", middleware.AuthMiddleware(s.jwtService.AsTokenValidator())(api))

	return s.withLogging(s.withRateLimit(s.withCORS(s.withLatency(root))))
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.httpServer.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	defer s.rateLimiter.Stop()

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("mock API listening",
			zap.String("addr", ln.Addr().String()),
			zap.Bool("ephemeral_secret", s.cfg.EphemeralSecret))
		errCh <- s.httpServer.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down mock API")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLatency delays every request by the configured latency to mimic a remote API.
func (s *Server) withLatency(next http.Handler) http.Handler {
	if s.cfg.Latency <= 0 {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		timer := time.NewTimer(s.cfg.Latency)
		defer timer.Stop()
		select {
		case <-timer.C:
			next.ServeHTTP(w, r)
		case <-r.Context().Done():
		}
	})
}

// withRateLimit adds rate limiting middleware
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowed, info := s.rateLimiter.Allow(s.extractClientID(r), r.URL.Path, r.Method)
		s.setRateLimitHeaders(w, info)
		if !allowed {
			s.metrics.recordRateLimitHit(info.Route)
			s.rateLimitResponse(w, info)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// statusRecorder captures the status and size of a response.
type statusRecorder struct {
	http.ResponseWriter
	status int
	size   int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.status = code
	sr.ResponseWriter.WriteHeader(code)
}

func (sr *statusRecorder) Write(b []byte) (int, error) {
	if sr.status == 0 {
		sr.status = http.StatusOK
	}
	n, err := sr.ResponseWriter.Write(b)
	sr.size += n
	return n, err
}

// withLogging logs each request and records its metrics.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w}
		next.ServeHTTP(rec, r)
		status := rec.status
		if status == 0 {
			status = http.StatusOK
		}
		dur := time.Since(start)
		route := routeLabel(r.URL.Path)
		s.metrics.recordRequest(r.Method, route, status, dur)
		s.logger.Debug("http request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("remote", r.RemoteAddr),
			zap.Int("status", status),
			zap.Float64("duration_ms", float64(dur.Microseconds())/1000.0),
			zap.Int("size", rec.size),
		)
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Warn("failed to encode JSON response", zap.Error(err))
	}
}

// dataResponse wraps data in the {status, data} envelope.
func (s *Server) dataResponse(w http.ResponseWriter, data any) {
	s.jsonResponse(w, http.StatusOK, map[string]any{"status": "success", "data": data})
}

// messageResponse writes {status, message}, used by deletes.
func (s *Server) messageResponse(w http.ResponseWriter, message string) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "success", "message": message})
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"status": "error", "message": message})
}

// writeError maps err to its status code.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := HTTPStatus(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", zap.Error(err))
		s.errorResponse(w, status, "Internal server error")
		return
	}
	s.errorResponse(w, status, err.Error())
}

// decodeJSON reads a bounded JSON body into v.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return &ErrValidation{Message: "Invalid request body"}
	}
	return nil
}

// extractClientID extracts the client identifier from the request.
// X-Forwarded-For is ignored since the mock never sits behind a trusted proxy.
func (s *Server) extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func (s *Server) setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(info.Limit))
		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(info.Remaining))
		w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(info.ResetTime.Unix(), 10))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response with rate limit information.
func (s *Server) rateLimitResponse(w http.ResponseWriter, info ratelimit.Info) {
	response := map[string]any{
		"status":    "error",
		"message":   "Rate limit exceeded. Please try again later.",
		"limit":     info.Limit,
		"remaining": info.Remaining,
	}
	if !info.ResetTime.IsZero() {
		response["reset_at"] = info.ResetTime.Format(time.RFC3339)
	}

	if info.RetryAfter > 0 {
		seconds := max(1, int(info.RetryAfter.Round(time.Second).Seconds()))
		response["retry_after"] = seconds
		w.Header().Set("Retry-After", strconv.Itoa(seconds))
	}

	s.logger.Warn("rate limit exceeded",
		zap.String("route", info.Route),
		zap.Int("limit", info.Limit))

	s.jsonResponse(w, http.StatusTooManyRequests, response)
}

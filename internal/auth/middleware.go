package auth

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/profilkantor/profile-api/internal/domain"
	"go.uber.org/zap"
)

const (
	msgAuthRequired = "Authentication required. Please login first."
	msgInvalidToken = "Invalid or expired token"
)

// TokenValidator resolves a bearer token to the user it was issued for
type TokenValidator interface {
	ValidateToken(token string) (*UserContext, error)
}

// Middleware handles authentication for HTTP requests
type Middleware struct {
	validator TokenValidator
	logger    *zap.Logger
}

// NewMiddleware creates a new authentication middleware
func NewMiddleware(validator TokenValidator, logger *zap.Logger) *Middleware {
	return &Middleware{
		validator: validator,
		logger:    logger,
	}
}

// Authenticate rejects requests without a valid bearer token and stores the
// token's identity in the request context
func (m *Middleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		token, ok := bearerToken(r)
		if !ok {
			writeUnauthorized(w, msgAuthRequired)
			return
		}

		userCtx, err := m.validator.ValidateToken(token)
		if err != nil {
			m.logger.Warn("token validation failed",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.String("remote_addr", r.RemoteAddr),
				zap.Error(err),
			)
			writeUnauthorized(w, msgInvalidToken)
			return
		}

		m.logger.Debug("request authenticated",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("user_id", userCtx.UserID.String()),
			zap.String("user_email", userCtx.Email),
			zap.Duration("auth_duration", time.Since(start)),
		)

		ctx := WithUserContext(r.Context(), userCtx)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func bearerToken(r *http.Request) (string, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}

	token := strings.TrimSpace(parts[1])
	return token, token != ""
}

func writeUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(domain.Response{
		Status:  domain.StatusError,
		Message: message,
	})
}

package middleware

import (
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/httprate"
	"github.com/profilkantor/profile-api/internal/auth"
	"github.com/profilkantor/profile-api/internal/config"
	"github.com/profilkantor/profile-api/internal/domain"
	"github.com/profilkantor/profile-api/internal/logger"
	"go.uber.org/zap"
)

const msgTooManyRequests = "Too many requests. Please try again later."

// RateLimiter applies the per-IP, per-user and login budgets from config.
// Whitelisted client addresses and paths are never limited.
type RateLimiter struct {
	cfg          *config.RateLimitConfig
	logger       *zap.Logger
	ipLimiter    func(http.Handler) http.Handler
	userLimiter  func(http.Handler) http.Handler
	loginLimiter func(http.Handler) http.Handler
	exemptIPs    map[string]struct{}
	exemptPaths  map[string]struct{}
	exemptPrefix []string
}

// NewRateLimiter builds the three limiters. Entries of WhitelistPaths ending
// in "/*" exempt every path below that prefix.
func NewRateLimiter(cfg *config.RateLimitConfig, logger *zap.Logger) *RateLimiter {
	rl := &RateLimiter{
		cfg:         cfg,
		logger:      logger,
		exemptIPs:   make(map[string]struct{}, len(cfg.WhitelistIPs)),
		exemptPaths: make(map[string]struct{}, len(cfg.WhitelistPaths)),
	}
	for _, ip := range cfg.WhitelistIPs {
		rl.exemptIPs[ip] = struct{}{}
	}
	for _, path := range cfg.WhitelistPaths {
		if prefix, ok := strings.CutSuffix(path, "/*"); ok {
			rl.exemptPrefix = append(rl.exemptPrefix, prefix+"/")
			continue
		}
		rl.exemptPaths[path] = struct{}{}
	}

	rl.ipLimiter = rl.newLimiter(cfg.RequestsPerMinute, rl.keyByClientIP)
	rl.userLimiter = rl.newLimiter(cfg.RequestsPerMinuteAuth, rl.keyByUserOrIP)
	rl.loginLimiter = rl.newLimiter(cfg.LoginPerMinute, rl.keyByClientIP)

	logger.Info("Rate limiter initialized",
		zap.Bool("enabled", cfg.Enabled),
		zap.Int("requests_per_minute", cfg.RequestsPerMinute),
		zap.Int("requests_per_minute_auth", cfg.RequestsPerMinuteAuth),
		zap.Int("login_per_minute", cfg.LoginPerMinute),
		zap.Strings("whitelist_ips", cfg.WhitelistIPs),
		zap.Strings("whitelist_paths", cfg.WhitelistPaths),
	)

	return rl
}

func (rl *RateLimiter) newLimiter(perMinute int, key httprate.KeyFunc) func(http.Handler) http.Handler {
	return httprate.Limit(
		perMinute,
		time.Minute,
		httprate.WithKeyFuncs(key),
		httprate.WithLimitHandler(rl.rateLimitExceededHandler),
	)
}

// Limit applies the per-user budget to authenticated requests and the per-IP
// budget otherwise. Mount it after authentication.
func (rl *RateLimiter) Limit(next http.Handler) http.Handler {
	if !rl.cfg.Enabled {
		return next
	}
	userLimited := rl.userLimiter(next)
	ipLimited := rl.ipLimiter(next)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if rl.exempt(r) {
			next.ServeHTTP(w, r)
			return
		}
		if _, ok := auth.FromContext(r.Context()); ok {
			userLimited.ServeHTTP(w, r)
			return
		}
		ipLimited.ServeHTTP(w, r)
	})
}

// LimitByIP returns IP-based rate limiting middleware (for use before auth)
func (rl *RateLimiter) LimitByIP(next http.Handler) http.Handler {
	return rl.wrap(next, rl.ipLimiter)
}

// LimitLogin applies the stricter per-IP budget for register and login
func (rl *RateLimiter) LimitLogin(next http.Handler) http.Handler {
	return rl.wrap(next, rl.loginLimiter)
}

func (rl *RateLimiter) wrap(next http.Handler, limiter func(http.Handler) http.Handler) http.Handler {
	if !rl.cfg.Enabled {
		return next
	}
	limited := limiter(next)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if rl.exempt(r) {
			next.ServeHTTP(w, r)
			return
		}
		limited.ServeHTTP(w, r)
	})
}

func (rl *RateLimiter) exempt(r *http.Request) bool {
	if rl.isPathWhitelisted(r.URL.Path) {
		return true
	}
	_, ok := rl.exemptIPs[rl.getClientIP(r)]
	return ok
}

func (rl *RateLimiter) keyByClientIP(r *http.Request) (string, error) {
	return "ip:" + rl.getClientIP(r), nil
}

func (rl *RateLimiter) keyByUserOrIP(r *http.Request) (string, error) {
	if userCtx, ok := auth.FromContext(r.Context()); ok {
		return "user:" + userCtx.UserID.String(), nil
	}
	return rl.keyByClientIP(r)
}

// getClientIP prefers the first X-Forwarded-For hop, then X-Real-IP, then
// the socket address
func (rl *RateLimiter) getClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}
	if xri := strings.TrimSpace(r.Header.Get("X-Real-IP")); xri != "" {
		return xri
	}

	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

func (rl *RateLimiter) isPathWhitelisted(path string) bool {
	if _, ok := rl.exemptPaths[path]; ok {
		return true
	}
	for _, prefix := range rl.exemptPrefix {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

func (rl *RateLimiter) rateLimitExceededHandler(w http.ResponseWriter, r *http.Request) {
	logger.ForRequest(rl.logger, r).Warn("rate limit exceeded",
		zap.String("client_ip", rl.getClientIP(r)),
	)

	w.Header().Set("Retry-After", "60")
	writeEnvelope(w, http.StatusTooManyRequests, domain.Response{
		Status:  domain.StatusError,
		Message: msgTooManyRequests,
	})
}

package logger

import (
	"fmt"
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/profilkantor/profile-api/internal/auth"
	"github.com/profilkantor/profile-api/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds the process logger. JSON is used in production or when
// logging.format is "json"; every other setup gets the console encoder.
// An unknown level falls back to info.
func NewLogger(cfg *config.LoggingConfig, appCfg *config.AppConfig) (*zap.Logger, error) {
	zapCfg := baseConfig(cfg.Format == "json" || appCfg.IsProduction())

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	zapCfg.InitialFields = map[string]interface{}{
		"app":         appCfg.Name,
		"environment": appCfg.Environment,
	}

	log, err := zapCfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return log, nil
}

func baseConfig(structured bool) zap.Config {
	if !structured {
		c := zap.NewDevelopmentConfig()
		c.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		c.OutputPaths = []string{"stdout"}
		return c
	}
	c := zap.NewProductionConfig()
	c.EncoderConfig.TimeKey = "timestamp"
	c.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	c.EncoderConfig.EncodeDuration = zapcore.MillisDurationEncoder
	c.OutputPaths = []string{"stdout"}
	return c
}

// ForRequest scopes log to one HTTP request: method, path, request id and
// client address, plus the caller when the request is authenticated.
func ForRequest(log *zap.Logger, r *http.Request) *zap.Logger {
	fields := []zap.Field{
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.String("remote_addr", r.RemoteAddr),
	}
	if id := chimw.GetReqID(r.Context()); id != "" {
		fields = append(fields, zap.String("request_id", id))
	}
	if user, ok := auth.FromContext(r.Context()); ok {
		fields = append(fields,
			zap.String("user_id", user.UserID.String()),
			zap.String("user_email", user.Email),
		)
	}
	return log.With(fields...)
}

package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
	"github.com/profilkantor/profile-api/internal/config"
	"go.uber.org/zap"
)

func isDevEnvironment(environment string) bool {
	return environment == "" || environment == "development" || environment == "local"
}

func allowAnyOrigin(r *http.Request, origin string) bool {
	return origin != ""
}

// CORS returns a CORS middleware configured from the application config.
// "*" in AllowedOrigins reflects any non-empty Origin. With no origins
// configured, development allows everything and other environments deny all.
func CORS(cfg *config.CORSConfig, environment string, logger *zap.Logger) func(http.Handler) http.Handler {
	options := cors.Options{
		AllowedMethods:   cfg.AllowedMethods,
		AllowedHeaders:   cfg.AllowedHeaders,
		ExposedHeaders:   cfg.ExposedHeaders,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}

	wildcard := false
	for _, origin := range cfg.AllowedOrigins {
		if origin == "*" {
			wildcard = true
			break
		}
	}

	switch {
	case wildcard:
		if !isDevEnvironment(environment) {
			logger.Warn("CORS configured with wildcard origin in non-development environment",
				zap.String("environment", environment))
		}
		options.AllowOriginFunc = allowAnyOrigin
	case len(cfg.AllowedOrigins) > 0:
		options.AllowedOrigins = cfg.AllowedOrigins
		logger.Info("CORS configured with explicit origins",
			zap.Strings("origins", cfg.AllowedOrigins))
	case isDevEnvironment(environment):
		options.AllowOriginFunc = allowAnyOrigin
		logger.Info("CORS configured to allow all origins in development mode")
	default:
		// empty AllowedOrigins means "*" to go-chi/cors
		options.AllowOriginFunc = func(r *http.Request, origin string) bool {
			return false
		}
		logger.Warn("CORS configured with no allowed origins - all cross-origin requests will be denied",
			zap.String("environment", environment))
	}

	return cors.Handler(options)
}

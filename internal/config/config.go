package config

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/profilkantor/profile-api/internal/secrets"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Config holds all application configuration
type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	JWT       JWTConfig
	Storage   StorageConfig
	Secrets   SecretsConfig
	Logging   LoggingConfig
	Server    ServerConfig
	CORS      CORSConfig
	Security  SecurityConfig
	RateLimit RateLimitConfig
	Jobs      JobsConfig
}

type AppConfig struct {
	Name        string
	Environment string
	Port        int
}

// IsProduction reports whether error details must be hidden from clients.
func (a *AppConfig) IsProduction() bool {
	return a.Environment == "production"
}

type DatabaseConfig struct {
	Host            string
	Port            int
	Name            string
	User            string
	Password        string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime int
	// AutoMigrate runs gorm AutoMigrate at startup; deployed databases use cmd/migrate
	AutoMigrate bool
}

// JWTConfig holds bearer token settings
type JWTConfig struct {
	Secret string
	// ExpiresIn is a Go duration string, e.g. "168h"
	ExpiresIn string
	Issuer    string
}

type StorageConfig struct {
	// Mode is "local" or "azure"
	Mode                  string
	LocalBasePath         string
	PublicPath            string
	CloudConnectionString string
	CloudContainer        string
	MaxFileSizeMB         int64
	MaxFilesPerRequest    int
}

type SecretsConfig struct {
	// Source determines where secrets are loaded from: "environment", "vault", or "auto"
	Source       string
	KeyVaultName string
	CacheEnabled bool
	CacheTTL     int // seconds
}

type LoggingConfig struct {
	Level  string
	Format string
}

type ServerConfig struct {
	ReadTimeout   int
	WriteTimeout  int
	EnableSwagger bool
	EnableMetrics bool
}

// CORSConfig holds CORS configuration
type CORSConfig struct {
	// AllowedOrigins is a list of allowed origins for CORS requests.
	// Use "*" to allow all origins.
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	ExposedHeaders   []string
	AllowCredentials bool
	MaxAge           int
}

// SecurityConfig holds security header configuration
type SecurityConfig struct {
	EnableHSTS            bool
	HSTSMaxAge            int
	HSTSIncludeSubdomains bool
	ContentSecurityPolicy string
	FrameOptions          string
	ContentTypeNosniff    bool
	ReferrerPolicy        string
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	Enabled               bool
	RequestsPerMinute     int
	RequestsPerMinuteAuth int
	LoginPerMinute        int
	WhitelistIPs          []string
	WhitelistPaths        []string
}

// JobsConfig holds background job configuration
type JobsConfig struct {
	OrphanSweepEnabled bool
	OrphanSweepCron    string
	// OrphanGracePeriod is in minutes; younger files are never swept
	OrphanGracePeriod int
}

// ConnectionString builds PostgreSQL connection string
func (d *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode,
	)
}

// ConnMaxLifetimeDuration returns connection max lifetime as duration
func (d *DatabaseConfig) ConnMaxLifetimeDuration() time.Duration {
	return time.Duration(d.ConnMaxLifetime) * time.Second
}

// ReadTimeoutDuration returns read timeout as duration
func (s *ServerConfig) ReadTimeoutDuration() time.Duration {
	return time.Duration(s.ReadTimeout) * time.Second
}

// WriteTimeoutDuration returns write timeout as duration
func (s *ServerConfig) WriteTimeoutDuration() time.Duration {
	return time.Duration(s.WriteTimeout) * time.Second
}

// ExpiresInDuration parses ExpiresIn, falling back to seven days.
func (j *JWTConfig) ExpiresInDuration() time.Duration {
	d, err := time.ParseDuration(j.ExpiresIn)
	if err != nil || d <= 0 {
		return 7 * 24 * time.Hour
	}
	return d
}

// MaxFileSizeBytes returns the per-file upload ceiling in bytes
func (s *StorageConfig) MaxFileSizeBytes() int64 {
	return s.MaxFileSizeMB * 1024 * 1024
}

// OrphanGracePeriodDuration returns the sweep grace period as duration
func (j *JobsConfig) OrphanGracePeriodDuration() time.Duration {
	return time.Duration(j.OrphanGracePeriod) * time.Minute
}

// Validate checks settings that cannot be defaulted safely.
func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return fmt.Errorf("jwt.secret is required")
	}
	if c.App.IsProduction() && c.JWT.Secret == defaultJWTSecret {
		return fmt.Errorf("jwt.secret must be overridden in production")
	}
	if c.Storage.MaxFileSizeMB <= 0 {
		return fmt.Errorf("storage.maxFileSizeMB must be positive")
	}
	if c.Storage.MaxFilesPerRequest <= 0 {
		return fmt.Errorf("storage.maxFilesPerRequest must be positive")
	}
	switch c.Storage.Mode {
	case "local", "azure", "cloud":
	default:
		return fmt.Errorf("unsupported storage mode: %s", c.Storage.Mode)
	}
	return nil
}

// Load loads configuration from file and environment variables.
// It does not fetch secrets from vault; use LoadWithSecrets for that.
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("json")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Environment variables override config file
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Conventional names used by existing deployments
	if secret := v.GetString("JWT_SECRET"); secret != "" {
		cfg.JWT.Secret = secret
	}
	if expires := v.GetString("JWT_EXPIRES_IN"); expires != "" {
		cfg.JWT.ExpiresIn = expires
	}
	if port := v.GetInt("PORT"); port != 0 {
		cfg.App.Port = port
	}
	if env := v.GetString("NODE_ENV"); env != "" && v.GetString("APP_ENVIRONMENT") == "" {
		cfg.App.Environment = env
	}
	if cfg.Secrets.KeyVaultName == "" {
		cfg.Secrets.KeyVaultName = v.GetString("AZURE_KEY_VAULT_NAME")
	}

	return &cfg, nil
}

// LoadWithSecrets loads configuration and resolves secrets from the configured source.
//
// Key Vault is used when USE_AZURE_KEY_VAULT=true and the environment is
// staging or production. Otherwise environment variables are used as-is.
func LoadWithSecrets(ctx context.Context, logger *zap.Logger) (*Config, error) {
	cfg, err := Load()
	if err != nil {
		return nil, err
	}

	useKeyVault := strings.ToLower(os.Getenv("USE_AZURE_KEY_VAULT")) == "true"
	isValidEnv := cfg.App.Environment == "staging" || cfg.App.Environment == "production"

	if !useKeyVault {
		logger.Info("USE_AZURE_KEY_VAULT not enabled, using environment variables for secrets",
			zap.String("environment", cfg.App.Environment),
		)
		return cfg, nil
	}

	if !isValidEnv {
		logger.Warn("USE_AZURE_KEY_VAULT is enabled but environment is not staging or production, using environment variables",
			zap.String("environment", cfg.App.Environment),
		)
		return cfg, nil
	}

	if cfg.Secrets.KeyVaultName == "" {
		return nil, fmt.Errorf("AZURE_KEY_VAULT_NAME is required when USE_AZURE_KEY_VAULT=true")
	}

	provider, err := secrets.NewProvider(&secrets.ProviderConfig{
		Source:       secrets.SourceVault,
		VaultName:    cfg.Secrets.KeyVaultName,
		Environment:  cfg.App.Environment,
		CacheEnabled: cfg.Secrets.CacheEnabled,
		CacheTTL:     time.Duration(cfg.Secrets.CacheTTL) * time.Second,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize secrets provider: %w", err)
	}

	if err := ApplySecrets(ctx, cfg, provider); err != nil {
		return nil, err
	}

	logger.Info("Secrets loaded from vault successfully",
		zap.String("key_vault_name", cfg.Secrets.KeyVaultName),
	)
	return cfg, nil
}

// SecretSource is the subset of secrets.Provider used to resolve config values.
type SecretSource interface {
	GetSecretOrEnv(ctx context.Context, secretName, envName string) (string, error)
}

// ApplySecrets overrides sensitive settings from the given source.
// The JWT secret is mandatory; the others keep their current value when absent.
func ApplySecrets(ctx context.Context, cfg *Config, src SecretSource) error {
	jwtSecret, err := src.GetSecretOrEnv(ctx, "JWT-SECRET", "JWT_SECRET")
	if err != nil {
		return fmt.Errorf("failed to resolve jwt secret: %w", err)
	}
	cfg.JWT.Secret = jwtSecret

	if host, err := src.GetSecretOrEnv(ctx, "POSTGRES-HOST", "DATABASE_HOST"); err == nil && host != "" {
		cfg.Database.Host = host
	}
	if user, err := src.GetSecretOrEnv(ctx, "POSTGRES-USER", "DATABASE_USER"); err == nil && user != "" {
		cfg.Database.User = user
	}
	if password, err := src.GetSecretOrEnv(ctx, "POSTGRES-PASSWORD", "DATABASE_PASSWORD"); err == nil && password != "" {
		cfg.Database.Password = password
	}
	if connStr, err := src.GetSecretOrEnv(ctx, "STORAGE-CONNECTION-STRING", "STORAGE_CLOUDCONNECTIONSTRING"); err == nil && connStr != "" {
		cfg.Storage.CloudConnectionString = connStr
	}
	return nil
}

const defaultJWTSecret = "change-me-in-production"

func setDefaults(v *viper.Viper) {
	// App defaults
	v.SetDefault("app.name", "Profile API")
	v.SetDefault("app.environment", "development")
	v.SetDefault("app.port", 3000)

	// Database defaults
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.name", "profile")
	v.SetDefault("database.user", "profile_user")
	v.SetDefault("database.password", "profile_password")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.maxOpenConns", 25)
	v.SetDefault("database.maxIdleConns", 5)
	v.SetDefault("database.autoMigrate", false)
	v.SetDefault("database.connMaxLifetime", 300)

	// JWT defaults
	v.SetDefault("jwt.secret", defaultJWTSecret)
	v.SetDefault("jwt.expiresIn", "168h")
	v.SetDefault("jwt.issuer", "profile-api")

	// Secrets defaults
	v.SetDefault("secrets.source", "auto")
	v.SetDefault("secrets.cacheEnabled", true)
	v.SetDefault("secrets.cacheTTL", 300)

	// Storage defaults
	v.SetDefault("storage.mode", "local")
	v.SetDefault("storage.localBasePath", "./uploads")
	v.SetDefault("storage.publicPath", "/uploads")
	v.SetDefault("storage.cloudContainer", "uploads")
	v.SetDefault("storage.maxFileSizeMB", 3)
	v.SetDefault("storage.maxFilesPerRequest", 10)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	// Server defaults
	v.SetDefault("server.readTimeout", 30)
	v.SetDefault("server.writeTimeout", 60)
	v.SetDefault("server.enableSwagger", true)
	v.SetDefault("server.enableMetrics", true)

	// CORS defaults
	v.SetDefault("cors.allowedOrigins", []string{"http://localhost:5173"})
	v.SetDefault("cors.allowedMethods", []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"})
	v.SetDefault("cors.allowedHeaders", []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"})
	v.SetDefault("cors.exposedHeaders", []string{"Location", "X-Request-ID"})
	v.SetDefault("cors.allowCredentials", true)
	v.SetDefault("cors.maxAge", 300)

	// Security header defaults
	v.SetDefault("security.enableHSTS", false)
	v.SetDefault("security.hstsMaxAge", 31536000)
	v.SetDefault("security.hstsIncludeSubdomains", true)
	v.SetDefault("security.contentSecurityPolicy", "default-src 'self'; img-src 'self' data:")
	v.SetDefault("security.frameOptions", "DENY")
	v.SetDefault("security.contentTypeNosniff", true)
	v.SetDefault("security.referrerPolicy", "strict-origin-when-cross-origin")

	// Rate limiting defaults
	v.SetDefault("rateLimit.enabled", true)
	v.SetDefault("rateLimit.requestsPerMinute", 120)
	v.SetDefault("rateLimit.requestsPerMinuteAuth", 300)
	v.SetDefault("rateLimit.loginPerMinute", 10)
	v.SetDefault("rateLimit.whitelistIPs", []string{"127.0.0.1", "::1"})
	v.SetDefault("rateLimit.whitelistPaths", []string{"/health", "/health/db", "/health/ready", "/metrics", "/uploads/*"})

	// Job defaults
	v.SetDefault("jobs.orphanSweepEnabled", true)
	v.SetDefault("jobs.orphanSweepCron", "@every 1h")
	v.SetDefault("jobs.orphanGracePeriod", 60)
}

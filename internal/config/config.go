package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App          AppConfig
	Realtime     RealtimeConfig
	CDN          CDNConfig
	JWT          JWTConfig
	Auth         AuthConfig
	OAuth2Google OAuth2GoogleConfig
	Storage      StorageConfig
	Payroll      PayrollConfig
	Notification NotificationConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Name           string
	Version        string
	Port           int
	Env            string
	LogLevel       string
	FrontendURL    string
	AllowedOrigins []string
}

// RealtimeConfig drives the connect handshake of the data bridge. The
// credentials are checked when a client connects, not at startup.
type RealtimeConfig struct {
	DatabaseURL    string
	HandshakeDelay time.Duration
	RefreshDelay   time.Duration
}

type CDNConfig struct {
	CloudName string
	APIKey    string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret            string
	RefreshExpiration string
	AccessExpiration  string
}

// AuthConfig controls the demo accounts and seed records loaded at startup.
type AuthConfig struct {
	DemoPassword string
	SeedDemoData bool
}

type OAuth2GoogleConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	Scopes       []string
}

// Enabled reports whether Google sign-in is configured.
func (o OAuth2GoogleConfig) Enabled() bool {
	return o.ClientID != "" && o.ClientSecret != "" && o.RedirectURL != ""
}

type StorageConfig struct {
	BasePath      string
	BaseURL       string
	MaxUploadSize int64
	// UseCDN makes stored file URLs point at the CDN cloud instead of BaseURL.
	UseCDN bool
}

// PayrollConfig controls the periodic batch job. A zero interval disables it.
type PayrollConfig struct {
	BatchInterval time.Duration
}

type NotificationConfig struct {
	WorkerCount   int
	BatchSize     int
	QueueSize     int
	FlushInterval time.Duration
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	config := &Config{}
	var err error

	// Application configuration
	appPort, err := getEnvInt("APP_PORT", 8080)
	if err != nil {
		return nil, err
	}
	config.App = AppConfig{
		Name:           getEnv("APP_NAME", "prms-backend"),
		Version:        getEnv("APP_VERSION", "dev"),
		Port:           appPort,
		Env:            getEnv("APP_ENV", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		FrontendURL:    getEnv("FRONTEND_URL", "http://localhost:5173"),
		AllowedOrigins: getEnvSlice("CORS_ALLOWED_ORIGINS", []string{"http://localhost:5173", "http://localhost:8080"}),
	}

	// Realtime bridge
	config.Realtime.DatabaseURL = getEnv("DATABASE_URL", "")
	if config.Realtime.HandshakeDelay, err = getEnvDuration("REALTIME_HANDSHAKE_DELAY", 1500*time.Millisecond); err != nil {
		return nil, err
	}
	if config.Realtime.RefreshDelay, err = getEnvDuration("REALTIME_REFRESH_DELAY", 800*time.Millisecond); err != nil {
		return nil, err
	}

	config.CDN = CDNConfig{
		CloudName: getEnv("CLOUDINARY_CLOUD_NAME", ""),
		APIKey:    getEnv("CLOUDINARY_API_KEY", ""),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:            getEnv("JWT_SECRET_KEY", ""),
		RefreshExpiration: getEnv("JWT_REFRESH_EXPIRATION_TIME", "168h"),
		AccessExpiration:  getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	config.Auth = AuthConfig{
		DemoPassword: getEnv("DEMO_PASSWORD", "password"),
		SeedDemoData: getEnv("SEED_DEMO_DATA", "true") == "true",
	}

	// OAuth2 Google Configuration
	config.OAuth2Google = OAuth2GoogleConfig{
		ClientID:     getEnv("CLIENT_ID", ""),
		ClientSecret: getEnv("CLIENT_SECRET", ""),
		RedirectURL:  getEnv("REDIRECT_URL", ""),
		Scopes:       getEnvSlice("SCOPES", []string{"https://www.googleapis.com/auth/userinfo.email"}),
	}

	maxUpload, err := getEnvInt("STORAGE_MAX_UPLOAD_MB", 10)
	if err != nil {
		return nil, err
	}
	config.Storage = StorageConfig{
		BasePath:      getEnv("STORAGE_BASE_PATH", "./uploads"),
		BaseURL:       getEnv("STORAGE_BASE_URL", "/uploads"),
		MaxUploadSize: int64(maxUpload) << 20,
		UseCDN:        getEnv("STORAGE_USE_CDN", "false") == "true",
	}

	if config.Payroll.BatchInterval, err = getEnvDuration("PAYROLL_BATCH_INTERVAL", 0); err != nil {
		return nil, err
	}

	workers, err := getEnvInt("NOTIFICATION_WORKERS", 2)
	if err != nil {
		return nil, err
	}
	batch, err := getEnvInt("NOTIFICATION_BATCH_SIZE", 100)
	if err != nil {
		return nil, err
	}
	queue, err := getEnvInt("NOTIFICATION_QUEUE_SIZE", 1000)
	if err != nil {
		return nil, err
	}
	flush, err := getEnvDuration("NOTIFICATION_FLUSH_INTERVAL", time.Second)
	if err != nil {
		return nil, err
	}
	config.Notification = NotificationConfig{WorkerCount: workers, BatchSize: batch, QueueSize: queue, FlushInterval: flush}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.App.Port <= 0 || c.App.Port > 65535 {
		return fmt.Errorf("APP_PORT must be between 1 and 65535")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if _, err := time.ParseDuration(c.JWT.AccessExpiration); err != nil {
		return fmt.Errorf("invalid JWT_ACCESS_EXPIRATION_TIME: %w", err)
	}
	if _, err := time.ParseDuration(c.JWT.RefreshExpiration); err != nil {
		return fmt.Errorf("invalid JWT_REFRESH_EXPIRATION_TIME: %w", err)
	}
	if c.Auth.DemoPassword != "" && len(c.Auth.DemoPassword) < 6 {
		return fmt.Errorf("DEMO_PASSWORD must be at least 6 characters")
	}
	if c.Payroll.BatchInterval < 0 {
		return fmt.Errorf("PAYROLL_BATCH_INTERVAL must not be negative")
	}
	return nil
}

// LogLevel maps LOG_LEVEL to a slog level, defaulting to info.
func (c *Config) LogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.App.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func getEnvDuration(key string, fallback time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func getEnvSlice(key string, fallback []string) []string {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}
	var result []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			result = append(result, part)
		}
	}
	return result
}

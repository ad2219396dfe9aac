package config

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

// Config holds application configuration.
type Config struct {
	AppName     string
	AppVersion  string
	Environment string
	LogLevel    string

	HTTPAddr         string
	AuthCookieSecure bool

	DBType            string
	DBHost            string
	DBPort            string
	DBName            string
	DBUser            string
	DBPassword        string
	DBSSLMode         string
	DBMaxIdleConn     int
	DBMaxOpenConn     int
	DBConnMaxLifetime int

	RedisAddr string

	StorageDir     string
	StorageBaseURL string

	// Provider identity snapshotted into each claim at submission time.
	// The brand name comes from site settings; the regulatory fields
	// live here because they never change at runtime.
	ProviderRUC      string
	ProviderAddress  string
	ProviderEstCode  string

	BootstrapAdminEmail    string
	BootstrapAdminPassword string
}

// Load reads configuration from environment variables and an optional
// .env file. Missing required values are reported as an error so the
// fx graph fails at startup rather than at request time.
func Load() (Config, error) {
	_ = godotenv.Load()

	environment := getenv("ENVIRONMENT", "development")
	authCookieSecure := environment == "production"
	if !authCookieSecure {
		authCookieSecure = getenvBool("AUTH_COOKIE_SECURE", false)
	}

	cfg := Config{
		AppName:     getenv("APP_SERVICE", "fogon"),
		AppVersion:  getenv("APP_VERSION", "0.1.0"),
		Environment: environment,
		LogLevel:    getenv("LOG_LEVEL", "info"),

		HTTPAddr:         getenv("HTTP_ADDR", ":8080"),
		AuthCookieSecure: authCookieSecure,

		DBType:            getenv("DATABASE_TYPE", "postgres"),
		DBHost:            getenv("DATABASE_HOST", "localhost"),
		DBPort:            getenv("DATABASE_PORT", "5432"),
		DBName:            getenv("DATABASE_NAME", "fogon"),
		DBUser:            getenv("DATABASE_USER", "postgres"),
		DBPassword:        getenv("DATABASE_PASSWORD", ""),
		DBSSLMode:         getenv("DATABASE_SSLMODE", "disable"),
		DBMaxIdleConn:     int(getenvInt64("DATABASE_MAX_IDLE_CONN", 2)),
		DBMaxOpenConn:     int(getenvInt64("DATABASE_MAX_OPEN_CONN", 10)),
		DBConnMaxLifetime: int(getenvInt64("DATABASE_CONN_MAX_LIFETIME", 3600)),

		RedisAddr: strings.TrimSpace(getenv("REDIS_ADDR", "")),

		StorageDir:     getenv("STORAGE_DIR", "./data/uploads"),
		StorageBaseURL: getenv("STORAGE_BASE_URL", "/uploads"),

		ProviderRUC:     getenv("CLAIMS_PROVIDER_RUC", "No especificado"),
		ProviderAddress: getenv("CLAIMS_PROVIDER_ADDRESS", "No especificado"),
		ProviderEstCode: getenv("CLAIMS_PROVIDER_EST_CODE", ""),

		BootstrapAdminEmail:    strings.TrimSpace(getenv("ADMIN_EMAIL", "")),
		BootstrapAdminPassword: getenv("ADMIN_PASSWORD", ""),
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Environment == "production" {
		if c.DBHost == "" || c.DBName == "" || c.DBUser == "" {
			return errors.New("config: DATABASE_HOST, DATABASE_NAME and DATABASE_USER are required in production")
		}
		if c.DBPassword == "" {
			return errors.New("config: DATABASE_PASSWORD is required in production")
		}
	}
	if c.StorageDir == "" {
		return errors.New("config: STORAGE_DIR cannot be empty")
	}
	return nil
}

// Module wires configuration into the fx graph.
var Module = fx.Module("config",
	fx.Provide(Load),
)

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvBool(key string, def bool) bool {
	value := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	if value == "" {
		return def
	}
	switch value {
	case "1", "true", "yes", "y", "on":
		return true
	case "0", "false", "no", "n", "off":
		return false
	default:
		return def
	}
}

func getenvInt64(key string, def int64) int64 {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return def
	}
	return parsed
}

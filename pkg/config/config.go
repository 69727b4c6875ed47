package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
)

type Config struct {
	App      AppConfig
	Server   ServerConfig
	Storage  StorageConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Seed     SeedConfig
	Breaker  BreakerConfig
}

type AppConfig struct {
	Name        string
	Version     string
	Environment string
	LogLevel    string
}

type ServerConfig struct {
	Port           string
	RequestTimeout time.Duration
	AllowOrigins   []string
}

// StorageConfig selects the session log backend. Catalog and profiles live
// in postgres when the driver is postgres and in memory otherwise.
type StorageConfig struct {
	Driver string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type RedisConfig struct {
	RedisURL      string
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
}

type SeedConfig struct {
	CatalogFile  string
	ProfilesFile string
	ScoringFile  string
}

type BreakerConfig struct {
	MaxFailures uint32
	OpenTimeout time.Duration
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, errors.New("invalid redis database")
	}

	maxFailures, err := strconv.ParseUint(getEnv("BREAKER_MAX_FAILURES", "5"), 10, 32)
	if err != nil {
		return nil, errors.New("invalid breaker max failures")
	}

	openTimeout, err := time.ParseDuration(getEnv("BREAKER_OPEN_TIMEOUT", "30s"))
	if err != nil {
		return nil, errors.New("invalid breaker open timeout")
	}

	requestTimeout, err := time.ParseDuration(getEnv("REQUEST_TIMEOUT", "10s"))
	if err != nil {
		return nil, errors.New("invalid request timeout")
	}

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Vestia Kiosk API"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Environment: getEnv("APP_ENV", "development"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
		},
		Server: ServerConfig{
			Port:           getEnv("PORT", "8080"),
			RequestTimeout: requestTimeout,
			AllowOrigins:   splitList(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:3000")),
		},
		Storage: StorageConfig{
			Driver: strings.ToLower(getEnv("STORAGE_DRIVER", DriverMemory)),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "vestia_kiosk"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
		Redis: RedisConfig{
			RedisURL:      getEnv("REDIS_URL", ""),
			RedisHost:     getEnv("REDIS_HOST", "localhost"),
			RedisPort:     getEnv("REDIS_PORT", "6379"),
			RedisPassword: getEnv("REDIS_PASSWORD", ""),
			RedisDB:       redisDB,
		},
		Seed: SeedConfig{
			CatalogFile:  getEnv("CATALOG_FILE", "configs/catalog.yaml"),
			ProfilesFile: getEnv("PROFILES_FILE", "configs/profiles.yaml"),
			ScoringFile:  getEnv("SCORING_FILE", ""),
		},
		Breaker: BreakerConfig{
			MaxFailures: uint32(maxFailures),
			OpenTimeout: openTimeout,
		},
	}

	switch cfg.Storage.Driver {
	case DriverMemory, DriverRedis:
	case DriverPostgres:
		if cfg.Database.Password == "" {
			return nil, errors.New("missing database password")
		}
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}

	if cfg.Breaker.MaxFailures == 0 {
		return nil, errors.New("breaker max failures must be positive")
	}

	return cfg, nil
}

// DSN is the postgres connection string.
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return defaultVal
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

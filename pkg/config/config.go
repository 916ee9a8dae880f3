package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Server    ServerConfig
	Database  DatabaseConfig
	JWT       JWTConfig
	Recommend RecommendConfig
}

type AppConfig struct {
	Name        string
	Version     string
	Environment string
}

type ServerConfig struct {
	Port           string
	RequestTimeout time.Duration
	AllowOrigins   []string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
	// run pending migrations when the server starts
	AutoMigrate bool
}

type JWTConfig struct {
	SecretKey string
	TTL       time.Duration
}

type RecommendConfig struct {
	// optional YAML file overriding the default scoring weights
	ScoringConfigPath string
	DefaultLimit      int
	MaxLimit          int
	// circuit breaker around the route store
	BreakerFailures uint32
	BreakerTimeout  time.Duration
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "runGuard"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Environment: getEnv("APP_ENV", "development"),
		},
		Server: ServerConfig{
			Port:           getEnv("PORT", "8080"),
			RequestTimeout: getEnvDuration("REQUEST_TIMEOUT", 10*time.Second),
			AllowOrigins:   []string{getEnv("CORS_ORIGIN", "http://localhost:3000")},
		},
		Database: DatabaseConfig{
			Host:        getEnv("DB_HOST", "localhost"),
			Port:        getEnv("DB_PORT", "5432"),
			User:        getEnv("DB_USER", "postgres"),
			Password:    getEnv("DB_PASSWORD", ""),
			Name:        getEnv("DB_NAME", "runguard"),
			SSLMode:     getEnv("DB_SSL_MODE", "disable"),
			AutoMigrate: getEnvBool("DB_AUTO_MIGRATE", false),
		},
		JWT: JWTConfig{
			SecretKey: getEnv("JWT_SECRET", ""),
			TTL:       getEnvDuration("JWT_TTL", 24*time.Hour),
		},
		Recommend: RecommendConfig{
			ScoringConfigPath: getEnv("SCORING_CONFIG", "config/scoring.yaml"),
			DefaultLimit:      getEnvInt("RECOMMEND_DEFAULT_LIMIT", 6),
			MaxLimit:          getEnvInt("RECOMMEND_MAX_LIMIT", 50),
			BreakerFailures:   uint32(getEnvInt("ROUTE_STORE_BREAKER_FAILURES", 5)),
			BreakerTimeout:    getEnvDuration("ROUTE_STORE_BREAKER_TIMEOUT", 30*time.Second),
		},
	}

	if cfg.JWT.SecretKey == "" {
		return nil, errors.New("missing jwt secret")
	}

	if cfg.Database.Password == "" {
		return nil, errors.New("missing database password")
	}

	if cfg.Recommend.DefaultLimit <= 0 || cfg.Recommend.MaxLimit < cfg.Recommend.DefaultLimit {
		return nil, errors.New("invalid recommendation limits")
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultVal
	}
	return v
}

func getEnvBool(key string, defaultVal bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultVal
	}
	return v
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultVal
	}
	return v
}

// Package config provides centralized configuration management.
//
// Configuration is loaded from a YAML file when one is given, with
// ${VAR} references expanded from the environment. Without a file,
// everything falls back to environment variables with defaults suitable
// for local development.
package config

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config represents the entire application configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Storage StorageConfig `yaml:"storage"`
	Cache   CacheConfig   `yaml:"cache"`
	Auth    AuthConfig    `yaml:"auth"`
	Logging LoggingConfig `yaml:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port           int      `yaml:"port"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// StorageConfig holds database settings.
type StorageConfig struct {
	DatabasePath string `yaml:"database_path"`
}

// CacheConfig holds settlement cache settings. An empty RedisAddr
// selects the in-memory cache.
type CacheConfig struct {
	RedisAddr string `yaml:"redis_addr"`
}

// AuthConfig holds token settings.
type AuthConfig struct {
	JWTSecret     string `yaml:"jwt_secret"`
	TokenTTLHours int    `yaml:"token_ttl_hours"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Load reads and parses the config file, expanding ${VAR} references
// from the environment before unmarshalling.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	expanded := os.ExpandEnv(string(data))

	cfg := defaults()
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromEnv loads configuration from environment variables only.
func LoadFromEnv() *Config {
	cfg := defaults()
	cfg.Server.Port = getEnvInt("PORT", cfg.Server.Port)
	cfg.Storage.DatabasePath = getEnv("DB_PATH", cfg.Storage.DatabasePath)
	cfg.Cache.RedisAddr = os.Getenv("REDIS_ADDR")
	cfg.Auth.JWTSecret = getEnv("JWT_SECRET", cfg.Auth.JWTSecret)
	cfg.Auth.TokenTTLHours = getEnvInt("TOKEN_TTL_HOURS", cfg.Auth.TokenTTLHours)
	cfg.Logging.Level = getEnv("LOG_LEVEL", cfg.Logging.Level)
	return cfg
}

// LoadOrEnv loads from the file at path when it exists, otherwise from
// the environment.
func LoadOrEnv(path string) (*Config, error) {
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			return Load(path)
		}
	}
	return LoadFromEnv(), nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			Port:           8080,
			AllowedOrigins: []string{"http://localhost:3000", "http://localhost:5173"},
		},
		Storage: StorageConfig{
			DatabasePath: "./data/settleup.db",
		},
		Auth: AuthConfig{
			// Development default; override in any real deployment.
			JWTSecret:     "dev-secret-change-me",
			TokenTTLHours: 24,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

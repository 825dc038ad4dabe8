package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	content := `
server:
  port: 9090
  allowed_origins:
    - https://settleup.example.com
storage:
  database_path: /var/lib/settleup/splits.db
cache:
  redis_addr: localhost:6379
auth:
  jwt_secret: ${TEST_JWT_SECRET}
  token_ttl_hours: 12
logging:
  level: debug
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	t.Setenv("TEST_JWT_SECRET", "from-env")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Storage.DatabasePath != "/var/lib/settleup/splits.db" {
		t.Errorf("db path = %q", cfg.Storage.DatabasePath)
	}
	if cfg.Cache.RedisAddr != "localhost:6379" {
		t.Errorf("redis addr = %q", cfg.Cache.RedisAddr)
	}
	if cfg.Auth.JWTSecret != "from-env" {
		t.Errorf("jwt secret = %q, want env expansion", cfg.Auth.JWTSecret)
	}
	if cfg.Auth.TokenTTLHours != 12 {
		t.Errorf("token ttl = %d, want 12", cfg.Auth.TokenTTLHours)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("log level = %q, want debug", cfg.Logging.Level)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/config.yaml"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadFromEnv_Defaults(t *testing.T) {
	cfg := LoadFromEnv()

	if cfg.Server.Port != 8080 {
		t.Errorf("default port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Storage.DatabasePath == "" {
		t.Error("expected default database path")
	}
	if cfg.Auth.TokenTTLHours != 24 {
		t.Errorf("default token ttl = %d, want 24", cfg.Auth.TokenTTLHours)
	}
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	t.Setenv("PORT", "7070")
	t.Setenv("DB_PATH", "/tmp/test.db")
	t.Setenv("REDIS_ADDR", "redis:6379")

	cfg := LoadFromEnv()

	if cfg.Server.Port != 7070 {
		t.Errorf("port = %d, want 7070", cfg.Server.Port)
	}
	if cfg.Storage.DatabasePath != "/tmp/test.db" {
		t.Errorf("db path = %q", cfg.Storage.DatabasePath)
	}
	if cfg.Cache.RedisAddr != "redis:6379" {
		t.Errorf("redis addr = %q", cfg.Cache.RedisAddr)
	}
}

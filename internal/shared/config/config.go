package config

import (
	"fmt"
	"os"
	"strings"
)

type Config struct {
	DatabaseURL    string
	Port           string
	RedisAddr      string
	KafkaBroker    string
	JWTSecret      string
	RBACModelPath  string
	RBACPolicyPath string
	MigrationsDir  string
}

// Load reads configuration from the environment. Only DATABASE_URL is
// mandatory; everything a one-shot script does not need has a default or
// may stay empty.
func Load() (*Config, error) {
	cfg := &Config{
		DatabaseURL:    strings.TrimSpace(os.Getenv("DATABASE_URL")),
		Port:           getEnvOrDefault("PORT", "3000"),
		RedisAddr:      os.Getenv("REDIS_ADDR"),
		KafkaBroker:    os.Getenv("KAFKA_BROKER"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		RBACModelPath:  getEnvOrDefault("RBAC_MODEL_PATH", "internal/rbac/infra/model.conf"),
		RBACPolicyPath: getEnvOrDefault("RBAC_POLICY_PATH", "internal/rbac/infra/policy.csv"),
		MigrationsDir:  getEnvOrDefault("MIGRATIONS_DIR", "migrations"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	return cfg, nil
}

func getEnvOrDefault(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

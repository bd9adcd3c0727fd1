package config

import (
	"fmt"

	pkgconfig "github.com/rdinit/hackathonService/pkg/config"
	"github.com/rdinit/hackathonService/pkg/logger"
)

// ServiceName is the viper config name and environment variable prefix.
const ServiceName = "hackathon"

type Config struct {
	Service   ServiceConfig   `mapstructure:"service"`
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Log       logger.Config   `mapstructure:"log"`
	Auth      AuthConfig      `mapstructure:"auth"`
	Hackathon HackathonConfig `mapstructure:"hackathon"`
	Demo      DemoConfig      `mapstructure:"demo"`
}

// LoadConfig reads configs/{APP_ENV}/hackathon.yaml (falling back to
// configs/example) and applies HACKATHON_* environment overrides.
func LoadConfig(opts ...pkgconfig.Option) (*Config, error) {
	opts = append([]pkgconfig.Option{pkgconfig.WithDefaults(defaults())}, opts...)

	raw, err := pkgconfig.Load(ServiceName, opts...)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := raw.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects combinations the server cannot start with.
func (c *Config) Validate() error {
	if c.Auth.VerifySignature && c.Auth.Secret == "" {
		return fmt.Errorf("auth.secret is required when auth.verify_signature is enabled")
	}
	if c.Server.HTTP.Port <= 0 {
		return fmt.Errorf("server.http.port must be positive")
	}
	return nil
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"service.name":        ServiceName,
		"service.environment": "development",
		"service.version":     "dev",

		"server.http.host":          "0.0.0.0",
		"server.http.port":          8080,
		"server.http.read_timeout":  "15s",
		"server.http.write_timeout": "15s",
		"server.http.cors_origins":  []string{"*"},
		"server.grpc.host":          "0.0.0.0",
		"server.grpc.port":          9090,
		"server.grpc.enabled":       true,
		"server.shutdown_timeout":   "10s",

		"database.host":               "localhost",
		"database.port":               5432,
		"database.name":               "hackathon",
		"database.user":               "postgres",
		"database.password":           "",
		"database.ssl_mode":           "disable",
		"database.max_open_conns":     25,
		"database.max_idle_conns":     5,
		"database.conn_max_lifetime":  "30m",
		"database.conn_max_idle_time": "5m",
		"database.slow_threshold":     "200ms",
		"database.log_level":          "warn",
		"database.health_interval":    "15s",

		"log.level":       "info",
		"log.format":      "json",
		"log.output":      "stdout",
		"log.development": false,

		"auth.verify_signature": true,
		"auth.secret":           "",

		"hackathon.validate_windows": false,

		"demo.enabled":       false,
		"demo.fixtures_path": "",
		"demo.seed":          42,
	}
}

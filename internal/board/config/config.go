// Package config loads the server configuration from YAML with
// environment-variable overrides for secrets.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type Database struct {
	Driver   string `yaml:"DRIVER"`
	Host     string `yaml:"HOST"`
	Port     int    `yaml:"PORT"`
	User     string `yaml:"USER"`
	Password string `yaml:"PASSWORD"`
	Name     string `yaml:"NAME"`
	SSLMode  string `yaml:"SSLMODE"`
	Path     string `yaml:"PATH"`
}

type Kafka struct {
	Brokers []string `yaml:"BROKERS"`
	Topic   string   `yaml:"TOPIC"`
	GroupID string   `yaml:"GROUP_ID"`
}

type Config struct {
	HTTPPort     int      `yaml:"HTTP_PORT"`
	AllowOrigins []string `yaml:"ALLOW_ORIGINS"`
	Database     Database `yaml:"DATABASE"`
	Kafka        Kafka    `yaml:"KAFKA"`
	JWTSecret    string   `yaml:"JWT_SECRET"`
	Seed         bool     `yaml:"SEED"`
}

// Load reads the YAML config at path and applies environment overrides
// (JWT_SECRET, DB_PASSWORD, KAFKA_BROKERS).
func Load(path string) (*Config, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(file, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		cfg.JWTSecret = secret
	}
	if password := os.Getenv("DB_PASSWORD"); password != "" {
		cfg.Database.Password = password
	}
	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		cfg.Kafka.Brokers = strings.Split(brokers, ",")
	}

	if cfg.HTTPPort == 0 {
		cfg.HTTPPort = 8080
	}
	if cfg.Database.Driver == "" {
		cfg.Database.Driver = "sqlite"
		if cfg.Database.Path == "" {
			cfg.Database.Path = ":memory:"
		}
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	return &cfg, nil
}

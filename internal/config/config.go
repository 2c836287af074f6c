package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	// Core
	ListenAddr  string `env:"LISTEN_ADDR" envDefault:":8080"`
	DatabaseURL string `env:"DATABASE_URL,required"`

	// Auth
	JWTSecret string `env:"JWT_SECRET,required"`

	// Object storage
	S3Bucket    string `env:"S3_BUCKET_NAME,required"`
	S3Region    string `env:"S3_BUCKET_REGION" envDefault:"us-east-1"`
	S3AccessKey string `env:"AWS_BUCKET_ACCESS_KEY"`
	S3SecretKey string `env:"AWS_BUCKET_SECRET_KEY"`
	CDNDomain   string `env:"CDN_DOMAIN,required"`

	// CORS
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000,http://localhost:8080"`

	// Server
	GinMode string `env:"GIN_MODE" envDefault:"release"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

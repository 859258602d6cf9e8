// Package config loads typed configuration from environment variables.
//
// It combines github.com/joho/godotenv for optional .env files with
// github.com/caarlos0/env/v11 for struct tags:
//
//	type Config struct {
//		Addr    string        `env:"HTTP_ADDR" envDefault:":8080"`
//		Timeout time.Duration `env:"GEO_TIMEOUT" envDefault:"2s"`
//	}
//
//	cfg, err := config.Load[Config]()
//
// Real environment variables always win over values from .env files.
package config

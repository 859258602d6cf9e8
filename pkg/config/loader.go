package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// DefaultEnvFile is read when present and no files are named.
const DefaultEnvFile = ".env"

// Load fills a T from the process environment. Values from the named .env
// files (or DefaultEnvFile when none are named and it exists) are added to
// the environment first; variables already set are never overridden.
//
//	cfg, err := config.Load[Config]()
func Load[T any](files ...string) (T, error) {
	var cfg T

	if len(files) == 0 {
		if _, err := os.Stat(DefaultEnvFile); err == nil {
			files = []string{DefaultEnvFile}
		}
	}
	if len(files) > 0 {
		if err := godotenv.Load(files...); err != nil {
			return cfg, errors.Join(ErrLoadingEnvFile, err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return cfg, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}

// MustLoad works like Load but panics on failure.
func MustLoad[T any](files ...string) T {
	cfg, err := Load[T](files...)
	if err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
	return cfg
}

package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var defaultEnvLoaded sync.Once

// LoadEnv loads the given .env files into the process environment. Variables
// that are already set win over file values. With no arguments it loads
// ./.env and ignores a missing file.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		defaultEnvLoaded.Do(func() {
			// the default file is optional
			_ = godotenv.Load()
		})
		return nil
	}
	if err := godotenv.Load(files...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// Load populates v from the environment after loading envFiles.
//
// Example:
//
//	type FormatConfig struct {
//		Locale string `env:"VALUEKIT_LOCALE" envDefault:"en-US"`
//		Symbol string `env:"VALUEKIT_CURRENCY_SYMBOL" envDefault:"$"`
//	}
//
//	var cfg FormatConfig
//	if err := config.Load(&cfg, "./config/.env"); err != nil {
//		// Handle error
//	}
func Load[T any](v *T, envFiles ...string) error {
	if v == nil {
		return ErrNilPointer
	}
	if err := LoadEnv(envFiles...); err != nil {
		return err
	}
	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T, envFiles ...string) {
	if err := Load(v, envFiles...); err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
}

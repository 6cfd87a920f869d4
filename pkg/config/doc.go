// Package config loads configuration from environment variables and
// optional .env files.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
//
//   - LoadEnv reads one or more .env files into the process environment. With
//     no arguments it tries ./.env and ignores a missing file; files named
//     explicitly must exist.
//   - Load parses the environment into any struct annotated with `env` tags.
//   - Settings describes the variables understood by valuekit itself.
//
// Values already present in the environment take precedence over .env files.
//
// # Usage
//
//	settings, err := config.LoadSettings()
//	if err != nil {
//	    log.Fatalf("loading settings: %v", err)
//	}
//	host, err := locale.New(
//	    locale.WithLocale(settings.Locale),
//	    locale.WithTimezone(settings.Timezone),
//	)
//
// # Variables
//
//   - VALUEKIT_LOCALE (default en-US)
//   - VALUEKIT_TIMEZONE (default host local zone)
//   - VALUEKIT_CURRENCY_SYMBOL (default $)
//   - VALUEKIT_CURRENCY_TRAILING (default true)
//   - LOG_LEVEL (default info)
//   - LOG_FORMAT (default text)
//
// # Error Handling
//
// The package defines sentinel errors that can be compared with `errors.Is`:
//
//   - `ErrParsingConfig`  – failed to parse env vars into struct.
//   - `ErrLoadingEnvFile` – an explicit .env file is missing or malformed.
//   - `ErrNilPointer`     – nil pointer passed to `Load`/`MustLoad`.
package config

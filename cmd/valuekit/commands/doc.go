// Package commands defines the valuekit CLI, a thin shell over the pkg/
// formatting and validation helpers.
//
// Commands
//
//   - size      Render a byte count as "n kb", "n mb" or "n gb"
//   - clock     Render a duration in seconds as "HH:MM:SS" or "MM:SS"
//   - utc       Convert a local "HH:MM" to UTC
//   - email     Validate an email address, optionally against allowed domains
//   - substr    Slice a string by grapheme offsets
//   - group     Render a number with digit grouping
//   - currency  Render a currency amount
//   - tomap     Read a JSON object on stdin and print it as YAML
//
// # Implementation
//
// The root command loads config.Settings (environment plus an optional
// --env-file), applies flag overrides, and builds the logger, locale host and
// formatters before any subcommand runs.
package commands

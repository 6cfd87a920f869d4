// Package logger provides a small factory around log/slog with functional
// options and helper attribute constructors.
//
// The valuekit helpers never fail loudly: when a formatter or parser falls
// back to a default it records why at DEBUG level on the logger it was given.
// Library constructors default to Nop, so nothing is written unless the
// caller passes a logger built here (or any other *slog.Logger).
//
// # Usage
//
//	import "github.com/dmitrymomot/valuekit/pkg/logger"
//
//	log := logger.New(
//	    logger.WithLevel(logger.ParseLevel("debug")),
//	    logger.WithFormat(logger.FormatJSON),
//	    logger.WithAttr(slog.String("app", "billing")),
//	)
//	f := numfmt.New(numfmt.WithLogger(log))
//
// Attribute helpers (Error, Component, Input, Locale, Fallback, ...) keep
// attribute names consistent across packages.
//
// # Defaults
//
// New writes text at INFO level to os.Stderr; stdout is left to the CLI's
// own output.
package logger

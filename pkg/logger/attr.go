package logger

import (
	"log/slog"
	"strconv"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the package or command name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Input records the raw value that was being processed under the key "input".
func Input(v any) slog.Attr {
	return slog.Any("input", v)
}

// Locale records a language tag under the key "locale".
// An empty tag means the formatter default and is recorded as "default".
func Locale(tag string) slog.Attr {
	if tag == "" {
		tag = "default"
	}
	return slog.String("locale", tag)
}

// Fallback records the value returned instead of a failed result.
func Fallback(v any) slog.Attr {
	return slog.Any("fallback", v)
}

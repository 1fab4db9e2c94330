// Package sl holds small slog attribute helpers.
package sl

import "log/slog"

// Err returns the error as an "error" attribute.
//
//	log.Error("convert failed", sl.Err(err))
func Err(err error) slog.Attr {
	return slog.Attr{
		Key:   "error",
		Value: slog.StringValue(err.Error()),
	}
}

// Issue attributes for one validation entry.
func Issue(path, code, message string) []any {
	return []any{
		slog.String("path", path),
		slog.String("code", code),
		slog.String("message", message),
	}
}

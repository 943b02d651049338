// Package sl carries small slog attribute helpers shared across the bot.
package sl

import "log/slog"

// Err wraps an error as a standard "error" attribute.
func Err(err error) slog.Attr {
	return slog.Attr{
		Key:   "error",
		Value: slog.StringValue(err.Error()),
	}
}

// Module tags a logger with the component it belongs to.
func Module(name string) slog.Attr {
	return slog.String("module", name)
}

// Secret logs a sensitive value in redacted form, keeping only enough
// of the tail to recognize which credential is in play.
func Secret(key, value string) slog.Attr {
	const visible = 4
	masked := "unset"
	if n := len(value); n > 0 {
		if n <= visible {
			masked = "****"
		} else {
			masked = "****" + value[n-visible:]
		}
	}
	return slog.String(key, masked)
}

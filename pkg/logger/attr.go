package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the originating component under the key "component",
// e.g. "session", "cart", "apiclient".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Key records the persistence key an operation touched.
func Key(key string) slog.Attr {
	return slog.String("key", key)
}

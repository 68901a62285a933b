package logger

import "log/slog"

// Error records err under "error". A nil error yields an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the emitting component under "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Bean records the bean type name under "bean".
func Bean(name string) slog.Attr {
	return slog.String("bean", name)
}

// File records an input path under "file".
func File(path string) slog.Attr {
	return slog.String("file", path)
}

// Count records a number of items under "count".
func Count(n int) slog.Attr {
	return slog.Int("count", n)
}

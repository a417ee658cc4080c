package logger

import (
	"log/slog"
	"time"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Duration records a duration under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// RunID records the benchmark run identifier under the key "run_id".
// If id is empty, it returns an empty Attr.
func RunID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("run_id", id)
}

// Range groups an inclusive [left, right] range under the key "range".
func Range(left, right int) slog.Attr {
	return slog.Group("range", slog.Int("left", left), slog.Int("right", right))
}

// Index records an element position under the key "index".
func Index(i int) slog.Attr {
	return slog.Int("index", i)
}

// Count records a cardinality under the given key.
func Count(key string, n int) slog.Attr {
	return slog.Int(key, n)
}

package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"
)

// Config selects the level and destination of the process logger.
type Config struct {
	Level  string
	Output io.Writer
}

var (
	mu     sync.RWMutex
	global = slog.New(slog.NewJSONHandler(io.Discard, nil))
)

// Setup installs a JSON logger as both this package's logger and the
// slog default.
func Setup(cfg Config) (*slog.Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}

	h := slog.NewJSONHandler(out, &slog.HandlerOptions{
		Level:     level,
		AddSource: level == slog.LevelDebug,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
				a.Value = slog.StringValue(a.Value.Time().UTC().Format(time.RFC3339Nano))
			}
			return a
		},
	})
	l := slog.New(h)

	mu.Lock()
	global = l
	mu.Unlock()
	slog.SetDefault(l)

	return l, nil
}

// L returns the process-wide logger installed by Setup.
func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

// ParseLevel maps a config level name to a slog.Level; empty means info.
func ParseLevel(s string) (slog.Level, error) {
	switch s {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
}

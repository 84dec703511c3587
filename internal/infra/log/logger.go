// Package logs builds the process-wide slog.Logger.
package logs

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"autohub/config"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type Params struct {
	fx.In

	Config *config.Config
}

func New(params Params) (*slog.Logger, error) {
	return newLogger(os.Stdout, params.Config)
}

// newLogger writes text when env.log.pretty is set and otherwise JSON shaped
// for Cloud Logging, which reads "severity" and "message".
func newLogger(w io.Writer, cfg *config.Config) (*slog.Logger, error) {
	level, err := parseLogLevel(cfg.Env.Log.Level)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: level, AddSource: cfg.Env.Debug}

	var handler slog.Handler
	if cfg.Env.Log.Pretty {
		handler = slog.NewTextHandler(w, opts)
	} else {
		opts.ReplaceAttr = cloudLoggingKeys
		handler = slog.NewJSONHandler(w, opts)
	}

	logger := slog.New(handler)
	if cfg.Env.ServiceName != "" {
		logger = logger.With(slog.String("service", cfg.Env.ServiceName))
	}

	return logger, nil
}

func cloudLoggingKeys(groups []string, a slog.Attr) slog.Attr {
	if len(groups) != 0 {
		return a
	}

	switch a.Key {
	case slog.LevelKey:
		a.Key = "severity"
		if level, ok := a.Value.Any().(slog.Level); ok && level == slog.LevelWarn {
			a.Value = slog.StringValue("WARNING")
		}
	case slog.MessageKey:
		a.Key = "message"
	}

	return a
}

// parseLogLevel accepts slog's own spellings (DEBUG, info, WARN+2) plus
// "warning". Empty means info.
func parseLogLevel(level string) (slog.Level, error) {
	level = strings.TrimSpace(level)
	switch strings.ToLower(level) {
	case "":
		return slog.LevelInfo, nil
	case "warning":
		return slog.LevelWarn, nil
	}

	var parsed slog.Level
	if err := parsed.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo, errors.Errorf("unknown log level: %s", level)
	}

	return parsed, nil
}

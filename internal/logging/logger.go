// Package logging builds the diagnostic zap logger from config.
// Logging is controlled by debug_mode in the config file - when false, no logs are written.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"regexadder/internal/config"
)

// ParseLevel maps a config level name to a zap level. Unknown names fall
// back to info.
func ParseLevel(name string) zapcore.Level {
	switch name {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// New returns a logger for cfg. With debug mode off and verbose unset it is a
// no-op logger. Verbose logs at debug level to stderr; debug mode logs to
// cfg.File.
func New(cfg config.LoggingConfig, verbose bool) (*zap.Logger, error) {
	if !cfg.Enabled() && !verbose {
		return zap.NewNop(), nil
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(ParseLevel(cfg.Level))
	zc.Sampling = nil
	if cfg.Format == "console" || cfg.Format == "text" {
		zc.Encoding = "console"
		zc.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	}
	zc.EncoderConfig.TimeKey = "ts"
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	zc.OutputPaths = nil
	zc.ErrorOutputPaths = []string{"stderr"}
	if cfg.Enabled() && cfg.File != "" {
		if dir := filepath.Dir(cfg.File); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create log directory: %w", err)
			}
		}
		zc.OutputPaths = append(zc.OutputPaths, cfg.File)
	}
	if verbose {
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		zc.OutputPaths = append(zc.OutputPaths, "stderr")
	}
	if len(zc.OutputPaths) == 0 {
		return zap.NewNop(), nil
	}

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

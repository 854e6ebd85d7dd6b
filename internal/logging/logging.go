// Package logging builds the zap logger used by the movegen command.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lgbarn/movegen-go/internal/config"
)

// New builds a logger from cfg. Output goes to stderr unless cfg.File is
// set. The returned close func releases the log file, if any.
func New(cfg config.LogConfig) (*zap.Logger, func() error, error) {
	var sink zapcore.WriteSyncer = zapcore.Lock(os.Stderr)
	closeFn := func() error { return nil }

	if path := strings.TrimSpace(cfg.File); path != "" {
		if err := ensureDir(filepath.Dir(path)); err != nil {
			return nil, nil, err
		}
		f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644) //nolint:gosec // G304: user-specified log file
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		sink = zapcore.AddSync(f)
		closeFn = f.Close
	}

	return NewWithSink(cfg, sink), closeFn, nil
}

// NewWithSink builds a logger writing to sink.
func NewWithSink(cfg config.LogConfig, sink zapcore.WriteSyncer) *zap.Logger {
	core := zapcore.NewCore(encoder(cfg.Format), sink, ParseLevel(cfg.Level))
	return zap.New(core, zap.AddStacktrace(zapcore.ErrorLevel))
}

func encoder(format string) zapcore.Encoder {
	if strings.EqualFold(format, "json") {
		return zapcore.NewJSONEncoder(jsonEncoderConfig())
	}
	return zapcore.NewConsoleEncoder(consoleEncoderConfig())
}

// ParseLevel maps a level name to a zap level; unknown names give info.
func ParseLevel(s string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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

func ensureDir(dir string) error {
	if strings.TrimSpace(dir) == "" || dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

func consoleEncoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	return cfg
}

func jsonEncoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncodeLevel = zapcore.LowercaseLevelEncoder
	return cfg
}

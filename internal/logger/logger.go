// Package logger builds the process-wide zap logger.
// All output goes to stderr: stdout is reserved for the MCP stdio
// transport, and a single stray line there corrupts the protocol stream.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/trafflux/ragflow-mcp-go/internal/core/domain"
)

// New builds a logger at the given level. Debug level switches to the
// human-readable development encoder; other levels log structured JSON.
func New(level domain.LogLevel) (*zap.Logger, error) {
	zapLevel, err := zapcore.ParseLevel(level.String())
	if err != nil {
		return nil, err
	}

	var cfg zap.Config
	if zapLevel == zapcore.DebugLevel {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}
	cfg.Level = zap.NewAtomicLevelAt(zapLevel)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	return cfg.Build()
}

// Must builds a logger at the given level and falls back to a no-op
// logger when construction fails. Intended for wiring paths where a
// broken logger must not abort startup.
func Must(level domain.LogLevel) *zap.Logger {
	log, err := New(level)
	if err != nil {
		return zap.NewNop()
	}
	return log
}

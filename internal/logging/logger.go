package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.Logger

// LogLevelEnvVar is the environment variable that controls logging verbosity.
// When unset or empty, logging is silent (no zap output).
// Valid values: "debug", "info", "warn", "error"
const LogLevelEnvVar = "JEEK_LOG_LEVEL"

// Initialize creates a new logger with the specified level writing to path.
// If level is empty, it checks JEEK_LOG_LEVEL environment variable.
// If neither is set, logging is disabled (silent mode).
//
// The dashboard runs in the alternate screen, so path must not be stdout
// while it is active. An empty path falls back to stderr, which is only
// appropriate for the non-interactive subcommands.
func Initialize(level, path string) error {
	if level == "" {
		level = os.Getenv(LogLevelEnvVar)
	}

	if level == "" {
		logger = zap.NewNop()
		return nil
	}

	zapLevel, err := parseLevel(level)
	if err != nil {
		return err
	}

	output := "stderr"
	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
		output = path
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{output},
		ErrorOutputPaths: []string{output},
	}

	// Plain level names: the log file is read with a pager, not a terminal.
	config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	logger, err = config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	return nil
}

func parseLevel(level string) (zapcore.Level, error) {
	switch level {
	case "debug":
		return zapcore.DebugLevel, nil
	case "info":
		return zapcore.InfoLevel, nil
	case "warn":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("unknown log level %q (want debug, info, warn or error)", level)
	}
}

// GetLogger returns the global logger instance
func GetLogger() *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return logger
}

// Info logs an info message
func Info(msg string, fields ...zap.Field) {
	GetLogger().Info(msg, fields...)
}

// Debug logs a debug message
func Debug(msg string, fields ...zap.Field) {
	GetLogger().Debug(msg, fields...)
}

// Warn logs a warning message
func Warn(msg string, fields ...zap.Field) {
	GetLogger().Warn(msg, fields...)
}

// Error logs an error message
func Error(msg string, fields ...zap.Field) {
	GetLogger().Error(msg, fields...)
}

// LogViewTransition records a dashboard view change.
func LogViewTransition(from, to string) {
	Debug("View transition",
		zap.String("from", from),
		zap.String("to", to),
	)
}

// LogTableLoad records the outcome of (re)loading a Markdown table.
func LogTableLoad(path string, rows int, loadErr error) {
	if loadErr != nil {
		Warn("Table source unavailable",
			zap.String("path", path),
			zap.Error(loadErr),
		)
		return
	}
	Debug("Table loaded",
		zap.String("path", path),
		zap.Int("rows", rows),
	)
}

// LogExternalCommand records a finished external process (editor,
// bill analyzer, bill exporter).
func LogExternalCommand(name string, args []string, exitCode int, duration time.Duration, err error) {
	fields := []zap.Field{
		zap.String("command", name),
		zap.Strings("args", args),
		zap.Int("exit_code", exitCode),
		zap.Duration("duration", duration),
	}
	if err != nil {
		fields = append(fields, zap.Error(err))
		Warn("External command failed", fields...)
		return
	}
	Info("External command finished", fields...)
}

// Sync flushes any buffered log entries
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}

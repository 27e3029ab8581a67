package logging

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/muurk/pokeselect/internal/combobox"
)

var logger *zap.Logger

// LogLevelEnvVar is the environment variable that controls logging verbosity.
// When unset or empty, logging is silent (no zap output).
// Valid values: "debug", "info", "warn", "error"
const LogLevelEnvVar = "POKESELECT_LOG_LEVEL"

// LogFileEnvVar names a file that receives log output instead of stderr.
const LogFileEnvVar = "POKESELECT_LOG_FILE"

// Initialize creates a new logger with the specified level.
// If level is empty, it checks POKESELECT_LOG_LEVEL environment variable.
// If neither is set, logging is disabled (silent mode).
func Initialize(level string) error {
	if level == "" {
		level = os.Getenv(LogLevelEnvVar)
	}

	if level == "" {
		logger = zap.NewNop()
		return nil
	}

	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		// Unknown level - use info as default when explicitly set to something
		zapLevel = zapcore.InfoLevel
	}

	output := "stderr"
	if path := os.Getenv(LogFileEnvVar); path != "" {
		output = path
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{output},
		ErrorOutputPaths: []string{"stderr"},
	}

	config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	if output == "stderr" {
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	var err error
	logger, err = config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	return nil
}

// InitializeFromEnv initializes the logger from the POKESELECT_LOG_LEVEL
// environment variable.
func InitializeFromEnv() error {
	return Initialize("")
}

// SetLogger replaces the global logger. Tests use it with zaptest/observer.
func SetLogger(l *zap.Logger) {
	logger = l
}

// GetLogger returns the global logger instance
func GetLogger() *zap.Logger {
	if logger == nil {
		// Fallback to silent logger if not initialized
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

// LogTransition logs a combobox state transition at debug level.
// It has the signature of combobox.TransitionFunc.
func LogTransition(ev combobox.Event, before, after combobox.State, effects []combobox.Effect) {
	if !GetLogger().Core().Enabled(zapcore.DebugLevel) {
		return
	}

	names := make([]string, len(effects))
	for i, e := range effects {
		names[i] = e.String()
	}

	Debug("Combobox transition",
		zap.Stringer("event", ev),
		zap.Object("before", stateMarshaler(before)),
		zap.Object("after", stateMarshaler(after)),
		zap.Strings("effects", names),
	)
}

// LogCatalog logs which option set was loaded
func LogCatalog(name, source string, options int) {
	Info("Catalog loaded",
		zap.String("catalog", name),
		zap.String("source", source),
		zap.Int("options", options),
	)
}

type stateMarshaler combobox.State

func (s stateMarshaler) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("value", s.Value)
	enc.AddInt("active", s.Active)
	enc.AddBool("open", s.Open)
	enc.AddBool("focused", s.Focused)
	return nil
}

// Sync flushes any buffered log entries
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}

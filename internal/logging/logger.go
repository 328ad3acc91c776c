package logging

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.Logger

// maxLoggedText caps user text copied into log entries.
const maxLoggedText = 256

// LogLevelEnvVar is the environment variable that controls logging verbosity.
// When unset or empty, logging is silent (no zap output).
// Valid values: "debug", "info", "warn", "error"
const LogLevelEnvVar = "NUMEDIT_LOG_LEVEL"

// LogFileEnvVar names a file to append log output to instead of stderr.
// The interactive editor owns the terminal, so this is the only way to watch
// its logs while it runs.
const LogFileEnvVar = "NUMEDIT_LOG_FILE"

// Initialize installs the global logger at level. An empty level falls back
// to NUMEDIT_LOG_LEVEL, and when that is empty too the logger stays silent.
func Initialize(level string) error {
	if level == "" {
		level = os.Getenv(LogLevelEnvVar)
	}
	if level == "" {
		logger = zap.NewNop()
		return nil
	}

	l, err := buildConfig(ParseLevel(level), os.Getenv(LogFileEnvVar)).Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger = l
	return nil
}

// buildConfig returns a console config writing to path, or to stderr when
// path is empty. Colour codes are only used on stderr.
func buildConfig(level zapcore.Level, path string) zap.Config {
	enc := zap.NewDevelopmentEncoderConfig()
	enc.EncodeTime = zapcore.ISO8601TimeEncoder
	enc.EncodeCaller = zapcore.ShortCallerEncoder
	enc.EncodeLevel = zapcore.CapitalColorLevelEncoder

	output := "stderr"
	if path != "" {
		output = path
		enc.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	return zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Encoding:         "console",
		EncoderConfig:    enc,
		OutputPaths:      []string{output},
		ErrorOutputPaths: []string{"stderr"},
	}
}

// InitializeFromEnv initializes the logger from the NUMEDIT_LOG_LEVEL
// environment variable. This is the recommended way to initialize logging
// for CLI commands that want silent mode by default.
func InitializeFromEnv() error {
	return Initialize("")
}

// ParseLevel maps a level name to a zap level.
// Unknown names fall back to info, since a level was explicitly requested.
func ParseLevel(level string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// GetLogger returns the global logger instance
func GetLogger() *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return logger
}

// SetLogger replaces the global logger and returns the previous one.
// A nil l installs a silent logger.
func SetLogger(l *zap.Logger) *zap.Logger {
	prev := GetLogger()
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
	return prev
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

// LogValueChange logs an accepted change of a control's value.
// source says what caused it: "assign", "commit", "step", "field-step" or "clear".
func LogValueChange(source, oldValue, newValue string) {
	Debug("Value changed",
		zap.String("source", source),
		zap.String("old", displayValue(oldValue)),
		zap.String("new", displayValue(newValue)),
	)
}

// LogRejectedEdit logs committed text that failed to decode.
func LogRejectedEdit(mode string, text string, err error) {
	Debug("Edit rejected",
		zap.String("mode", mode),
		zap.String("text", printable(text)),
		zap.Error(err),
	)
}

// LogRejectedStep logs a spinner step refused by a bound.
func LogRejectedStep(direction string, current string, outcome string) {
	Debug("Step rejected",
		zap.String("direction", direction),
		zap.String("current", displayValue(current)),
		zap.String("outcome", outcome),
	)
}

// LogSettingChange logs a change to how a control renders its value.
func LogSettingChange(setting string, oldValue, newValue string) {
	Debug("Setting changed",
		zap.String("setting", setting),
		zap.String("old", oldValue),
		zap.String("new", newValue),
	)
}

func displayValue(v string) string {
	if v == "" {
		return "<none>"
	}
	return v
}

// printable escapes control characters and keeps at most maxLoggedText
// bytes, cut on a rune boundary.
func printable(s string) string {
	if len(s) > maxLoggedText {
		cut := maxLoggedText
		for cut > 0 && !utf8.RuneStart(s[cut]) {
			cut--
		}
		s = s[:cut] + "..."
	}
	var b strings.Builder
	for _, r := range s {
		if r < 32 || r == 127 {
			fmt.Fprintf(&b, "\\x%02x", r)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Sync flushes any buffered log entries
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}

package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger wraps zerolog.Logger with additional context
type Logger struct {
	logger zerolog.Logger
}

// Config holds logger configuration
type Config struct {
	Level       string // debug, info, warn, error, fatal
	Format      string // json, console
	Output      io.Writer
	EnableColor bool
}

var globalLogger *Logger

// Initialize initializes the global logger with the given configuration
func Initialize(cfg Config) {
	zerolog.SetGlobalLevel(parseLogLevel(cfg.Level))

	var output io.Writer = os.Stdout
	if cfg.Output != nil {
		output = cfg.Output
	}

	if cfg.Format == "console" {
		output = zerolog.ConsoleWriter{
			Out:        output,
			TimeFormat: time.RFC3339,
			NoColor:    !cfg.EnableColor,
		}
	}

	logger := zerolog.New(output).With().Timestamp().Caller().Logger()

	globalLogger = &Logger{logger: logger}
	log.Logger = logger
}

func parseLogLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	default:
		return zerolog.InfoLevel
	}
}

// Get returns the global logger instance
func Get() *Logger {
	if globalLogger == nil {
		Initialize(Config{
			Level:       "info",
			Format:      "console",
			EnableColor: true,
		})
	}
	return globalLogger
}

// WithContext returns a logger with additional context fields
func (l *Logger) WithContext(fields map[string]interface{}) *Logger {
	ctx := l.logger.With()
	for k, v := range fields {
		ctx = ctx.Interface(k, v)
	}
	return &Logger{logger: ctx.Logger()}
}

func emit(event *zerolog.Event, msg string, fields []map[string]interface{}) {
	if len(fields) > 0 {
		for k, v := range fields[0] {
			event = event.Interface(k, v)
		}
	}
	event.Msg(msg)
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields ...map[string]interface{}) {
	emit(l.logger.Debug(), msg, fields)
}

// Info logs an info message
func (l *Logger) Info(msg string, fields ...map[string]interface{}) {
	emit(l.logger.Info(), msg, fields)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, fields ...map[string]interface{}) {
	emit(l.logger.Warn(), msg, fields)
}

// Error logs an error message
func (l *Logger) Error(msg string, err error, fields ...map[string]interface{}) {
	emit(l.logger.Error().Err(err), msg, fields)
}

// Fatal logs a fatal message and exits
func (l *Logger) Fatal(msg string, err error, fields ...map[string]interface{}) {
	emit(l.logger.Fatal().Err(err), msg, fields)
}

// Package-level convenience functions delegating to the global logger

func Debug(msg string, fields ...map[string]interface{}) {
	emit(Get().logger.Debug(), msg, fields)
}

func Info(msg string, fields ...map[string]interface{}) {
	emit(Get().logger.Info(), msg, fields)
}

func Warn(msg string, fields ...map[string]interface{}) {
	emit(Get().logger.Warn(), msg, fields)
}

func Error(msg string, err error, fields ...map[string]interface{}) {
	emit(Get().logger.Error().Err(err), msg, fields)
}

func Fatal(msg string, err error, fields ...map[string]interface{}) {
	emit(Get().logger.Fatal().Err(err), msg, fields)
}

// WithContext returns a logger with additional context fields
func WithContext(fields map[string]interface{}) *Logger {
	return Get().WithContext(fields)
}

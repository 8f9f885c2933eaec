// Package logging wraps zap with the structured-field conventions the rest
// of namelink relies on: a "service" field on every entry, stderr-only
// console output, and an optional lumberjack-rotated file sink.
package logging

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger wraps a configured zap.Logger.
type Logger struct {
	zap         *zap.Logger
	atomicLevel zap.AtomicLevel
}

// New builds a Logger from cfg: a console sink at stderr, plus a rotated
// file sink when cfg.FilePath is set.
func New(cfg *Config) (*Logger, error) {
	if cfg == nil {
		return nil, fmt.Errorf("logging: config cannot be nil")
	}

	level := ParseSeverity(cfg.Level).ToZapLevel()
	atomicLevel := zap.NewAtomicLevelAt(level)

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "severity",
		NameKey:        "logger",
		MessageKey:     "message",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    severityEncoder,
		EncodeTime:     zapcore.RFC3339NanoTimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), zapcore.Lock(zapcore.AddSync(os.Stderr)), atomicLevel),
	}

	if cfg.FilePath != nil {
		lumber := &lumberjack.Logger{
			Filename:   cfg.FilePath.Path,
			MaxSize:    cfg.FilePath.MaxSize,
			MaxAge:     cfg.FilePath.MaxAge,
			MaxBackups: cfg.FilePath.MaxBackups,
			Compress:   cfg.FilePath.Compress,
		}
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), zapcore.AddSync(lumber), atomicLevel))
	}

	opts := []zap.Option{zap.Fields(zap.String("service", cfg.Service))}
	if cfg.Environment != "" {
		opts = append(opts, zap.Fields(zap.String("environment", cfg.Environment)))
	}
	for k, v := range cfg.StaticFields {
		opts = append(opts, zap.Fields(zap.Any(k, v)))
	}

	return &Logger{
		zap:         zap.New(zapcore.NewTee(cores...), opts...),
		atomicLevel: atomicLevel,
	}, nil
}

// NewCLI builds a stderr-only logger at INFO level for the given service
// name, the default entry point for cmd/namelink.
func NewCLI(service string) (*Logger, error) {
	return New(DefaultConfig(service))
}

func severityEncoder(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	switch l {
	case zapcore.DebugLevel:
		enc.AppendString("DEBUG")
	case zapcore.InfoLevel:
		enc.AppendString("INFO")
	case zapcore.WarnLevel:
		enc.AppendString("WARN")
	case zapcore.ErrorLevel:
		enc.AppendString("ERROR")
	case zapcore.DPanicLevel, zapcore.PanicLevel, zapcore.FatalLevel:
		enc.AppendString("FATAL")
	default:
		enc.AppendString("INFO")
	}
}

func (l *Logger) Debug(msg string, fields ...zap.Field) { l.zap.Debug(msg, fields...) }
func (l *Logger) Info(msg string, fields ...zap.Field)  { l.zap.Info(msg, fields...) }
func (l *Logger) Warn(msg string, fields ...zap.Field)  { l.zap.Warn(msg, fields...) }
func (l *Logger) Error(msg string, fields ...zap.Field) { l.zap.Error(msg, fields...) }

// WithComponent returns a logger with a component field attached, the
// pattern used to scope log lines to "kernel", "link", or "cmd".
func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{zap: l.zap.With(zap.String("component", component)), atomicLevel: l.atomicLevel}
}

// WithFields returns a logger with additional structured fields attached.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	zapFields := make([]zap.Field, 0, len(fields))
	for k, v := range fields {
		zapFields = append(zapFields, zap.Any(k, v))
	}
	return &Logger{zap: l.zap.With(zapFields...), atomicLevel: l.atomicLevel}
}

// SetLevel dynamically adjusts the minimum logged severity.
func (l *Logger) SetLevel(severity Severity) {
	l.atomicLevel.SetLevel(severity.ToZapLevel())
}

// Sync flushes buffered log entries.
func (l *Logger) Sync() error {
	return l.zap.Sync()
}

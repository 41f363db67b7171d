package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/abhisek/quizzy/internal/config"
)

var (
	log      = zap.NewNop()
	closeLog = func() {}
)

// New builds a logger from cfg. Entries go to cfg.File when set, otherwise
// to fallback. With neither, the logger discards everything. The returned
// func closes the log file, if one was opened; call it once the logger is
// no longer used.
func New(cfg config.LoggerConfig, fallback zapcore.WriteSyncer) (*zap.Logger, func(), error) {
	sink, closeSink := fallback, func() {}
	if cfg.File != "" {
		ws, closeFile, err := zap.Open(cfg.File)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		sink, closeSink = ws, closeFile
	}
	if sink == nil {
		return zap.NewNop(), closeSink, nil
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	var encoder zapcore.Encoder
	if cfg.Env == "production" {
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	} else {
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	}

	core := zapcore.NewCore(encoder, sink, level)
	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel)), closeSink, nil
}

// Initialize replaces the global logger, flushing and closing the file of
// the one it replaces.
func Initialize(cfg config.LoggerConfig, fallback zapcore.WriteSyncer) error {
	l, closeNew, err := New(cfg, fallback)
	if err != nil {
		return err
	}
	prev, closePrev := log, closeLog
	log, closeLog = l, closeNew
	_ = prev.Sync()
	closePrev()
	return nil
}

// Get returns the global logger instance
func Get() *zap.Logger {
	return log
}

// Sync flushes any buffered log entries
func Sync() error {
	return log.Sync()
}

// Close flushes the global logger, closes its file and leaves a Nop
// logger in its place.
func Close() error {
	err := log.Sync()
	closeLog()
	log, closeLog = zap.NewNop(), func() {}
	return err
}

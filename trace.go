// Copyright (c) MaulingMonkey.
// Licensed under the MIT License.

package winstr

import (
	"os"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogEnv is the environment variable read by EnableTracing.
const LogEnv = "WINSTR_LOG"

var logger atomic.Pointer[zap.Logger]

func init() {
	logger.Store(zap.NewNop())
}

// Logger returns the package logger. It is a no-op logger until EnableTracing or SetLogger is called.
func Logger() *zap.Logger {
	return logger.Load()
}

// SetLogger replaces the package logger. A nil logger restores the no-op logger.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger.Store(l.Named("winstr"))
}

// EnableTracing enables winstr tracing to stderr.
// The level is controlled by the WINSTR_LOG environment variable (debug, info, warn, error) and defaults to info.
func EnableTracing() {
	level := zapcore.InfoLevel
	if v, ok := os.LookupEnv(LogEnv); ok {
		if parsed, err := zapcore.ParseLevel(v); err == nil {
			level = parsed
		}
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	l, err := cfg.Build()
	if err != nil {
		return
	}
	SetLogger(l)
}

package logger

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds the process logger. Anything but "production" gets the development encoder.
func New(env, level string) (*zap.Logger, error) {
	var cfg zap.Config
	if strings.EqualFold(env, "production") {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}

	if level != "" {
		lvl, err := zapcore.ParseLevel(level)
		if err != nil {
			return nil, err
		}
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}

	return cfg.Build()
}

// Must is New for main packages.
func Must(env, level string) *zap.Logger {
	l, err := New(env, level)
	if err != nil {
		return zap.NewNop()
	}
	return l
}

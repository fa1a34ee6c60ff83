// Package log wraps zap with the small set of constructors cmd/shaderc
// needs, the way k8s.io/kubernetes keeps a thin
// helper layer in front of its structured logger rather than importing
// zap directly everywhere.
package log

import "go.uber.org/zap"

// New returns a development logger (human-readable console output) at the
// given level name ("debug", "info", "warn", "error"); an unrecognized
// level falls back to "info".
func New(level string) (*zap.SugaredLogger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	var l zap.AtomicLevel
	if err := l.UnmarshalText([]byte(level)); err == nil {
		cfg.Level = l
	}
	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}

// Nop returns a logger that discards everything, for tests and callers
// that opt out of diagnostics.
func Nop() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}

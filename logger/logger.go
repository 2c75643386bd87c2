package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/iotaledger/linkedds/ierrors"
)

// Logger is the logger used throughout the module. It is a sugared zap logger.
type Logger = zap.SugaredLogger

// NewRootLogger creates a new root logger from the provided configuration. Missing settings fall back to DefaultCfg.
func NewRootLogger(cfg Config) (*Logger, error) {
	level := zap.NewAtomicLevel()
	if cfg.Level == "" {
		cfg.Level = DefaultCfg.Level
	}
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		return nil, ierrors.Wrapf(err, "invalid log level %q", cfg.Level)
	}

	if cfg.Encoding == "" {
		cfg.Encoding = DefaultCfg.Encoding
	}
	if len(cfg.OutputPaths) == 0 {
		cfg.OutputPaths = DefaultCfg.OutputPaths
	}

	zapCfg := zap.Config{
		Level:             level,
		Development:       false,
		DisableCaller:     cfg.DisableCaller,
		DisableStacktrace: cfg.DisableStacktrace,
		Encoding:          cfg.Encoding,
		EncoderConfig:     defaultEncoderConfig,
		OutputPaths:       cfg.OutputPaths,
		ErrorOutputPaths:  []string{"stderr"},
	}

	zapLogger, err := zapCfg.Build(zap.AddStacktrace(zapcore.ErrorLevel))
	if err != nil {
		return nil, ierrors.Wrap(err, "failed to build logger")
	}

	return zapLogger.Sugar(), nil
}

// NewNopLogger returns a logger that discards every message.
func NewNopLogger() *Logger {
	return zap.NewNop().Sugar()
}

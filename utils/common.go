package utils

import (
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

// Logger returns the process wide structured logger. With -verbose it is a
// development logger at debug level; otherwise only warnings and errors are
// reported.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		var cfg zap.Config
		if opts.verbose {
			cfg = zap.NewDevelopmentConfig()
		} else {
			cfg = zap.NewProductionConfig()
			cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
			cfg.Encoding = "console"
		}
		cfg.DisableStacktrace = !opts.verbose

		l, err := cfg.Build()
		if err != nil {
			l = zap.NewNop()
		}
		logger = l
	})
	return logger
}

// TimeTrack logs the time elapsed since start under the given name.
func TimeTrack(start time.Time, name string) {
	Logger().Info(name+" finished", zap.Duration("elapsed", time.Since(start)))
}

package logger

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the process-wide logger. It is a no-op logger until Init is called
// so packages can log from tests without setup.
var Log = zap.NewNop()

var initOnce sync.Once

// Config selects the level and encoding of the process logger.
type Config struct {
	Level       string `yaml:"level"`
	Format      string `yaml:"format"` // console or json
	Development bool   `yaml:"development"`
}

// DefaultConfig returns console output at info level.
func DefaultConfig() Config {
	return Config{
		Level:       "info",
		Format:      "console",
		Development: true,
	}
}

// Init builds the process logger. Only the first call has an effect.
func Init(cfg Config) {
	initOnce.Do(func() {
		l, err := New(cfg)
		if err != nil {
			l = zap.NewExample()
			l.Warn("Falling back to example logger", zap.Error(err))
		}
		Log = l
	})
}

// New builds a zap logger from cfg without touching Log.
func New(cfg Config) (*zap.Logger, error) {
	var zapConfig zap.Config
	if cfg.Development {
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		zapConfig = zap.NewProductionConfig()
	}

	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}
	zapConfig.Level = zap.NewAtomicLevelAt(level)

	if cfg.Format == "json" {
		zapConfig.Encoding = "json"
	} else {
		zapConfig.Encoding = "console"
	}

	return zapConfig.Build(zap.AddCaller())
}

// Sync flushes buffered log entries.
func Sync() {
	_ = Log.Sync()
}

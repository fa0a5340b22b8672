package env

import (
	"crash_backend/internal/config"
	"os"
)

const logLevelEnvName = "LOG_LEVEL"

type logConfig struct {
	level string
}

func NewLogConfig() config.LogConfig {
	level := os.Getenv(logLevelEnvName)
	if len(level) == 0 {
		level = "info"
	}
	return &logConfig{level: level}
}

func (cfg *logConfig) Level() string {
	return cfg.level
}

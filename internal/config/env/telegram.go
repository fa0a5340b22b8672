package env

import (
	"crash_backend/internal/config"
	"errors"
	"fmt"
	"os"
	"time"
)

const (
	botTokenEnvName       = "BOT_TOKEN"
	initDataMaxAgeEnvName = "INIT_DATA_MAX_AGE"
	webAppURLEnvName      = "WEB_APP_URL"

	defaultInitDataMaxAge = 24 * time.Hour
)

// ErrTelegramNotConfigured BOT_TOKEN не задан, бот не запускается
var ErrTelegramNotConfigured = errors.New("bot token not found")

type telegramConfig struct {
	botToken       string
	initDataMaxAge time.Duration
	webAppURL      string
}

func NewTelegramConfig() (config.TelegramConfig, error) {
	token := os.Getenv(botTokenEnvName)
	if len(token) == 0 {
		return nil, ErrTelegramNotConfigured
	}

	maxAge := defaultInitDataMaxAge
	if raw := os.Getenv(initDataMaxAgeEnvName); len(raw) != 0 {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid init data max age: %w", err)
		}
		maxAge = parsed
	}

	return &telegramConfig{
		botToken:       token,
		initDataMaxAge: maxAge,
		webAppURL:      os.Getenv(webAppURLEnvName),
	}, nil
}

func (cfg *telegramConfig) BotToken() string {
	return cfg.botToken
}

func (cfg *telegramConfig) InitDataMaxAge() time.Duration {
	return cfg.initDataMaxAge
}

func (cfg *telegramConfig) WebAppURL() string {
	return cfg.webAppURL
}

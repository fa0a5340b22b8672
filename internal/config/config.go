package config

import (
	"time"

	"github.com/joho/godotenv"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

// GameConfig Настройки игрового движка ракеты
type GameConfig interface {
	TickInterval() time.Duration
	NotifyTimeout() time.Duration
	MinBet() int64
	MaxBet() int64
	StartingBalance() int64
	HistoryCapacity() int
	HistoryWindow() int
	StatsWindow() int
	BetPresets() []int64
	TopUpPresets() []int64
}

type HTTPConfig interface {
	Address() string
}

type PGConfig interface {
	DSN() string
}

type JWTConfig interface {
	AccessTokenSecretKey() []byte
	AccessTokenDuration() time.Duration
}

type TelegramConfig interface {
	BotToken() string
	InitDataMaxAge() time.Duration
	WebAppURL() string
}

type LogConfig interface {
	Level() string
}

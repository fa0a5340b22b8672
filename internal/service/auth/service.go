package auth

import (
	"crash_backend/internal/config"
	"crash_backend/internal/service"
	"time"
)

type serv struct {
	ledger         service.LedgerService
	jwtConfig      config.JWTConfig
	botToken       string
	initDataMaxAge time.Duration
}

// NewAuthService Вход через Telegram WebApp. Пустой botToken отключает вход
func NewAuthService(
	ledger service.LedgerService,
	jwtConfig config.JWTConfig,
	botToken string,
	initDataMaxAge time.Duration,
) service.AuthService {
	return &serv{
		ledger:         ledger,
		jwtConfig:      jwtConfig,
		botToken:       botToken,
		initDataMaxAge: initDataMaxAge,
	}
}

package service

import (
	"crash_backend/internal/model"
	"context"
	"errors"
)

var (
	ErrInvalidBet          = errors.New("bet is out of allowed range")
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrNoActiveSession     = errors.New("no active session")
	ErrAlreadyResolved     = errors.New("round already finished")
	ErrSessionInProgress   = errors.New("round already in progress")
	ErrShuttingDown        = errors.New("game engine is shutting down")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrAuthUnavailable     = errors.New("telegram login is not configured")
)

type AuthService interface {
	LoginTelegram(ctx context.Context, initData string) (*model.AuthData, error)
}

type LedgerService interface {
	GetAccount(ctx context.Context, userID int64) (*model.Account, error)
	Debit(ctx context.Context, userID int64, amount int64) (bool, error)
	Credit(ctx context.Context, userID int64, amount int64) error
	CreditWin(ctx context.Context, userID int64, payout int64, multiplier float64) error
	TopUp(ctx context.Context, userID int64, amount int64) (int64, error)
	Balance(ctx context.Context, userID int64) (int64, error)
	Stats(ctx context.Context, userID int64) (model.Stats, error)
	AccountsCount(ctx context.Context) (int, error)
}

type GameService interface {
	PlaceBet(ctx context.Context, req model.PlaceBet) (*model.Session, error)
	CashOut(ctx context.Context, userID int64) (*model.CashOutResult, error)
	Cancel(ctx context.Context, userID int64) error
	Session(userID int64) (*model.Session, error)
	History(ctx context.Context) ([]float64, error)
	LiveCount() int
	HouseStats() model.HouseStats
	Shutdown(ctx context.Context) error
}

// GameNotifier Получатель уведомлений движка (фронтенд).
// Ошибка доставки не влияет на состояние раунда.
type GameNotifier interface {
	Tick(ctx context.Context, upd model.TickUpdate) error
	Resolved(ctx context.Context, res model.Resolution) error
}

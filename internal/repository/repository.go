package repository

import (
	"crash_backend/internal/model"
	"context"
)

// AccountRepository Хранилище счетов игроков.
// Debit обязан проверять достаточность баланса и списывать одной атомарной операцией.
type AccountRepository interface {
	GetOrCreate(ctx context.Context, userID int64) (*model.Account, error)
	Debit(ctx context.Context, userID int64, amount int64) (bool, error)
	Credit(ctx context.Context, userID int64, amount int64) error
	RecordWin(ctx context.Context, userID int64, payout int64, multiplier float64) error
	Count(ctx context.Context) (int, error)
}

// HistoryRepository Ограниченная история точек краша
type HistoryRepository interface {
	Record(ctx context.Context, crashPoint float64) error
	Recent(ctx context.Context, n int) ([]float64, error)
}

// HouseStatsRepository Статистика казино (RTP)
type HouseStatsRepository interface {
	Record(bet, payout int64)
	Snapshot() model.HouseStats
}

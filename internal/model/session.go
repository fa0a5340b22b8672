package model

import (
	"time"

	"github.com/google/uuid"
)

type SessionStatus string

const (
	StatusRunning   SessionStatus = "running"
	StatusCashedOut SessionStatus = "cashed_out"
	StatusCrashed   SessionStatus = "crashed"
	StatusCancelled SessionStatus = "cancelled"
)

// Terminal Раунд завершён и больше не меняется
func (s SessionStatus) Terminal() bool {
	return s != StatusRunning
}

// Session Снимок игрового раунда одного игрока
type Session struct {
	ID                uuid.UUID
	UserID            int64
	Bet               int64
	CrashPoint        float64
	CurrentMultiplier float64
	Status            SessionStatus
	Payout            int64
	StartedAt         time.Time
}

// PlaceBet Запрос на ставку
type PlaceBet struct {
	UserID int64
	Amount int64
}

// CashOutResult Результат успешного кэшаута
type CashOutResult struct {
	SessionID  uuid.UUID
	Multiplier float64
	Payout     int64
	Balance    int64
}

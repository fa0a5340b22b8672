package model

import "github.com/google/uuid"

// TickUpdate Уведомление о шаге множителя
type TickUpdate struct {
	SessionID       uuid.UUID
	UserID          int64
	Bet             int64
	Multiplier      float64
	PotentialPayout int64
}

// Resolution Уведомление о завершении раунда.
// Для crashed заполнен CrashPoint, для cashed_out заполнены Multiplier и Payout.
type Resolution struct {
	SessionID  uuid.UUID
	UserID     int64
	Bet        int64
	Status     SessionStatus
	CrashPoint float64
	Multiplier float64
	Payout     int64
}

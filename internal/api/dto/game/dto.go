package game

import "time"

type BetRequest struct {
	Amount int64 `json:"amount"` // Ставка (целое, min_bet..max_bet)
}

type SessionResponse struct {
	SessionID       string    `json:"session_id"`
	Bet             int64     `json:"bet"`
	Multiplier      float64   `json:"multiplier"`       // Текущий множитель
	PotentialPayout int64     `json:"potential_payout"` // floor(bet × multiplier)
	Status          string    `json:"status"`
	CrashPoint      *float64  `json:"crash_point,omitempty"` // Только для завершённого раунда
	StartedAt       time.Time `json:"started_at"`
}

type CashOutResponse struct {
	SessionID  string  `json:"session_id"`
	Multiplier float64 `json:"multiplier"`
	Payout     int64   `json:"payout"`
	Balance    int64   `json:"balance"` // Баланс после начисления
}

type HistoryResponse struct {
	Multipliers []float64 `json:"multipliers"` // От старых к новым
}

type OnlineResponse struct {
	Online  int `json:"online"`  // Живых раундов
	Players int `json:"players"` // Заведенных счетов
}

type HouseStatsResponse struct {
	Rounds      int64   `json:"rounds"`
	TotalBet    int64   `json:"total_bet"`
	TotalPayout int64   `json:"total_payout"`
	RTP         float64 `json:"rtp"`
	WindowRTP   float64 `json:"window_rtp"`
	WindowSize  int     `json:"window_size"`
}

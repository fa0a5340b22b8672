package user

type AccountResponse struct {
	UserID         int64   `json:"user_id"`
	Balance        int64   `json:"balance"`
	TotalBets      int64   `json:"total_bets"`
	TotalWins      int64   `json:"total_wins"`
	TotalWagered   int64   `json:"total_wagered"`
	TotalWon       int64   `json:"total_won"`
	BestMultiplier float64 `json:"best_multiplier"`
}

type TopUpRequest struct {
	Amount int64 `json:"amount"` // Сумма пополнения (> 0)
}

type TopUpResponse struct {
	Balance int64 `json:"balance"`
}

package model

// Account Счёт игрока в леджере
type Account struct {
	UserID         int64
	Balance        int64
	TotalBets      int64   // Количество принятых ставок
	TotalWins      int64   // Количество выигрышных кэшаутов
	TotalWagered   int64   // Сумма всех ставок
	TotalWon       int64   // Сумма всех выигрышей
	BestMultiplier float64 // Лучший множитель кэшаута, 0 пока побед не было
}

// Stats Агрегированная статистика игрока
type Stats struct {
	TotalBets      int64
	TotalWins      int64
	TotalWagered   int64
	TotalWon       int64
	BestMultiplier float64
}

func (a Account) Stats() Stats {
	return Stats{
		TotalBets:      a.TotalBets,
		TotalWins:      a.TotalWins,
		TotalWagered:   a.TotalWagered,
		TotalWon:       a.TotalWon,
		BestMultiplier: a.BestMultiplier,
	}
}

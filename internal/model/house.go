package model

// HouseStats Состояние казино по всем раундам
type HouseStats struct {
	Rounds      int64   // Сколько раундов завершено
	TotalBet    int64   // Сумма всех ставок
	TotalPayout int64   // Сумма всех выплат
	CurrentRTP  float64 // (TotalPayout/TotalBet)*100
	WindowRTP   float64 // RTP в окне последних раундов
	WindowSize  int
}

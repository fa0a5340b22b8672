package converter

import (
	"crash_backend/internal/api/dto/game"
	"crash_backend/internal/model"
	"crash_backend/internal/service/rocket"
)

func ToPlaceBet(userID int64, req game.BetRequest) model.PlaceBet {
	return model.PlaceBet{
		UserID: userID,
		Amount: req.Amount,
	}
}

// ToSessionResponse Точка краша раскрывается только после завершения раунда
func ToSessionResponse(s model.Session) game.SessionResponse {
	res := game.SessionResponse{
		SessionID:       s.ID.String(),
		Bet:             s.Bet,
		Multiplier:      s.CurrentMultiplier,
		PotentialPayout: rocket.Payout(s.Bet, s.CurrentMultiplier),
		Status:          string(s.Status),
		StartedAt:       s.StartedAt,
	}
	if s.Status.Terminal() {
		crash := s.CrashPoint
		res.CrashPoint = &crash
	}
	return res
}

func ToCashOutResponse(r model.CashOutResult) game.CashOutResponse {
	return game.CashOutResponse{
		SessionID:  r.SessionID.String(),
		Multiplier: r.Multiplier,
		Payout:     r.Payout,
		Balance:    r.Balance,
	}
}

func ToHistoryResponse(multipliers []float64) game.HistoryResponse {
	if multipliers == nil {
		multipliers = []float64{}
	}
	return game.HistoryResponse{Multipliers: multipliers}
}

func ToHouseStatsResponse(st model.HouseStats) game.HouseStatsResponse {
	return game.HouseStatsResponse{
		Rounds:      st.Rounds,
		TotalBet:    st.TotalBet,
		TotalPayout: st.TotalPayout,
		RTP:         st.CurrentRTP,
		WindowRTP:   st.WindowRTP,
		WindowSize:  st.WindowSize,
	}
}

package converter

import (
	"crash_backend/internal/api/dto/auth"
	"crash_backend/internal/api/dto/user"
	"crash_backend/internal/model"
)

func ToAccountResponse(acc model.Account) user.AccountResponse {
	return user.AccountResponse{
		UserID:         acc.UserID,
		Balance:        acc.Balance,
		TotalBets:      acc.TotalBets,
		TotalWins:      acc.TotalWins,
		TotalWagered:   acc.TotalWagered,
		TotalWon:       acc.TotalWon,
		BestMultiplier: acc.BestMultiplier,
	}
}

func ToTokenResponse(data model.AuthData) auth.TokenResponse {
	return auth.TokenResponse{
		AccessToken: data.AccessToken,
		ExpiresAt:   data.ExpiresAt,
		UserID:      data.User.ID,
		Username:    data.User.Username,
		FirstName:   data.User.FirstName,
		Balance:     data.Account.Balance,
	}
}

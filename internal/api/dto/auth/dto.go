package auth

import "time"

type TelegramRequest struct {
	InitData string `json:"init_data"` // window.Telegram.WebApp.initData
}

type TokenResponse struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
	UserID      int64     `json:"user_id"`
	Username    string    `json:"username,omitempty"`
	FirstName   string    `json:"first_name"`
	Balance     int64     `json:"balance"`
}

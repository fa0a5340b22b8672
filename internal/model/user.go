package model

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TelegramUser Пользователь из initData Telegram WebApp
type TelegramUser struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name,omitempty"`
	Username  string `json:"username,omitempty"`
}

type UserClaims struct {
	jwt.RegisteredClaims
}

// UserID Telegram ID игрока из subject токена
func (c UserClaims) UserID() (int64, error) {
	return strconv.ParseInt(c.Subject, 10, 64)
}

// AuthData Результат входа
type AuthData struct {
	AccessToken string
	ExpiresAt   time.Time
	User        TelegramUser
	Account     Account
}

package token

import (
	"crash_backend/internal/model"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"time"

	initdata "github.com/telegram-mini-apps/init-data-golang"
)

var (
	ErrInitDataHash    = errors.New("init data hash mismatch")
	ErrInitDataExpired = errors.New("init data expired")
	ErrInitDataUser    = errors.New("init data has no user")
)

// ValidateInitData Проверяет подпись initData Telegram WebApp и достаёт пользователя.
// maxAge <= 0 отключает проверку auth_date
func ValidateInitData(raw, botToken string, maxAge time.Duration) (*model.TelegramUser, error) {
	if err := initdata.Validate(raw, botToken, max(maxAge, 0)); err != nil {
		if errors.Is(err, initdata.ErrExpired) {
			return nil, ErrInitDataExpired
		}
		return nil, fmt.Errorf("%w: %w", ErrInitDataHash, err)
	}

	data, err := initdata.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInitDataUser, err)
	}
	if data.User.ID == 0 {
		return nil, ErrInitDataUser
	}

	return &model.TelegramUser{
		ID:        data.User.ID,
		FirstName: data.User.FirstName,
		LastName:  data.User.LastName,
		Username:  data.User.Username,
	}, nil
}

// SignInitData Подписывает параметры initData токеном бота так же, как Telegram
func SignInitData(values url.Values, botToken string) string {
	payload := make(map[string]string, len(values))
	for k := range values {
		if k == "hash" || k == "auth_date" {
			continue
		}
		payload[k] = values.Get(k)
	}

	authDate, _ := strconv.ParseInt(values.Get("auth_date"), 10, 64)
	return initdata.Sign(payload, botToken, time.Unix(authDate, 0))
}

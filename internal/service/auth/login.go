package auth

import (
	"crash_backend/internal/model"
	"crash_backend/internal/service"
	"crash_backend/pkg/token"
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

func (s *serv) LoginTelegram(ctx context.Context, initData string) (*model.AuthData, error) {
	if s.botToken == "" {
		return nil, service.ErrAuthUnavailable
	}

	// Проверка подписи initData
	user, err := token.ValidateInitData(initData, s.botToken, s.initDataMaxAge)
	if err != nil {
		logrus.WithError(err).Debug("init data rejected")
		return nil, fmt.Errorf("%w: %v", service.ErrUnauthorized, err)
	}

	// Счет создается при первом входе
	acc, err := s.ledger.GetAccount(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	// Создать access токен
	ttl := s.jwtConfig.AccessTokenDuration()
	accessToken, err := token.GenerateAccessToken(user.ID, s.jwtConfig.AccessTokenSecretKey(), ttl)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"user_id":  user.ID,
		"username": user.Username,
	}).Info("telegram login")

	return &model.AuthData{
		AccessToken: accessToken,
		ExpiresAt:   time.Now().Add(ttl),
		User:        *user,
		Account:     *acc,
	}, nil
}

package ledger

import (
	"crash_backend/internal/service"
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
)

// Credit Начисляет сумму на баланс без учета в статистике побед (возврат ставки)
func (s *serv) Credit(ctx context.Context, userID int64, amount int64) error {
	if amount < 0 {
		return service.ErrInvalidAmount
	}

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		return s.repo.Credit(txCtx, userID, amount)
	})
	if err != nil {
		return fmt.Errorf("credit %d to %d: %w", amount, userID, err)
	}

	logrus.WithFields(logrus.Fields{
		"user_id": userID,
		"amount":  amount,
	}).Debug("ledger credit")

	return nil
}

// CreditWin Начисляет выигрыш кэшаута и обновляет счетчики побед и лучший множитель
func (s *serv) CreditWin(ctx context.Context, userID int64, payout int64, multiplier float64) error {
	if payout < 0 {
		return service.ErrInvalidAmount
	}

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.repo.Credit(txCtx, userID, payout); err != nil {
			return err
		}
		return s.repo.RecordWin(txCtx, userID, payout, multiplier)
	})
	if err != nil {
		return fmt.Errorf("credit win %d to %d: %w", payout, userID, err)
	}

	logrus.WithFields(logrus.Fields{
		"user_id":    userID,
		"payout":     payout,
		"multiplier": multiplier,
	}).Debug("ledger win")

	return nil
}

// TopUp Пополнение баланса после подтвержденного платежа. Возвращает новый баланс
func (s *serv) TopUp(ctx context.Context, userID int64, amount int64) (int64, error) {
	if amount <= 0 {
		return 0, service.ErrInvalidAmount
	}

	var balance int64
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.repo.Credit(txCtx, userID, amount); err != nil {
			return err
		}
		acc, err := s.repo.GetOrCreate(txCtx, userID)
		if err != nil {
			return err
		}
		balance = acc.Balance
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("top up %d for %d: %w", amount, userID, err)
	}

	logrus.WithFields(logrus.Fields{
		"user_id": userID,
		"amount":  amount,
		"balance": balance,
	}).Info("balance topped up")

	return balance, nil
}

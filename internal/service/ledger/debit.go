package ledger

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
)

// Debit Списывает ставку, если хватает средств.
// Проверка и списание выполняются одной операцией хранилища внутри транзакции.
func (s *serv) Debit(ctx context.Context, userID int64, amount int64) (bool, error) {
	if amount <= 0 {
		return false, nil
	}

	var ok bool
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		var err error
		ok, err = s.repo.Debit(txCtx, userID, amount)
		return err
	})
	if err != nil {
		return false, fmt.Errorf("debit %d from %d: %w", amount, userID, err)
	}

	logrus.WithFields(logrus.Fields{
		"user_id": userID,
		"amount":  amount,
		"ok":      ok,
	}).Debug("ledger debit")

	return ok, nil
}

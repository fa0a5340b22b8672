package rocket

import (
	"crash_backend/internal/model"
	"crash_backend/internal/service"
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
)

func (s *serv) CashOut(ctx context.Context, userID int64) (*model.CashOutResult, error) {
	sess, last := s.lookup(userID)
	if sess == nil {
		if last != nil {
			return nil, service.ErrAlreadyResolved
		}
		return nil, service.ErrNoActiveSession
	}

	multiplier, ok := sess.resolve(model.StatusCashedOut)
	if !ok {
		return nil, service.ErrAlreadyResolved
	}
	s.release(sess)

	payout := Payout(sess.bet, multiplier)
	sess.setPayout(payout)

	// Раунд уже закрыт, начисление доводим даже при отмене запроса
	ctx = context.WithoutCancel(ctx)

	log := logrus.WithFields(logrus.Fields{
		"user_id":    userID,
		"session_id": sess.id,
		"multiplier": multiplier,
		"payout":     payout,
	})

	if err := s.ledger.CreditWin(ctx, userID, payout, multiplier); err != nil {
		log.WithError(err).Error("cash-out credit failed")
		return nil, fmt.Errorf("credit payout: %w", err)
	}
	s.stats.Record(sess.bet, payout)

	balance, err := s.ledger.Balance(ctx, userID)
	if err != nil {
		log.WithError(err).Warn("read balance after cash-out")
	}

	log.Info("cashed out")

	s.notifyResolved(ctx, model.Resolution{
		SessionID:  sess.id,
		UserID:     userID,
		Bet:        sess.bet,
		Status:     model.StatusCashedOut,
		CrashPoint: sess.crashPoint,
		Multiplier: multiplier,
		Payout:     payout,
	})

	return &model.CashOutResult{
		SessionID:  sess.id,
		Multiplier: multiplier,
		Payout:     payout,
		Balance:    balance,
	}, nil
}

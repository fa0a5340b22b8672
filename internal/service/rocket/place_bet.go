package rocket

import (
	"crash_backend/internal/model"
	"crash_backend/internal/service"
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
)

func (s *serv) PlaceBet(ctx context.Context, req model.PlaceBet) (*model.Session, error) {
	if req.Amount <= 0 || req.Amount < s.cfg.MinBet() || req.Amount > s.cfg.MaxBet() {
		return nil, service.ErrInvalidBet
	}

	if err := s.reserve(req.UserID); err != nil {
		return nil, err
	}

	ok, err := s.ledger.Debit(ctx, req.UserID, req.Amount)
	if err != nil {
		s.unreserve(req.UserID)
		return nil, fmt.Errorf("debit bet: %w", err)
	}
	if !ok {
		s.unreserve(req.UserID)
		return nil, service.ErrInsufficientBalance
	}

	sess := newSession(req.UserID, req.Amount, s.generator.Generate())

	if err := s.launch(sess); err != nil {
		// Движок остановлен между списанием и запуском, возвращаем ставку
		if cerr := s.ledger.Credit(context.WithoutCancel(ctx), req.UserID, req.Amount); cerr != nil {
			logrus.WithError(cerr).WithFields(logrus.Fields{
				"user_id": req.UserID,
				"amount":  req.Amount,
			}).Error("refund of rejected bet failed")
		}
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"user_id":    req.UserID,
		"session_id": sess.id,
		"bet":        req.Amount,
	}).Info("round started")

	return sess.snapshot(), nil
}

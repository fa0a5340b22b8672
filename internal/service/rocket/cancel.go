package rocket

import (
	"crash_backend/internal/model"
	"crash_backend/internal/service"
	"context"

	"github.com/sirupsen/logrus"
)

// Cancel Останавливает раунд без выплаты, ставка сгорает
func (s *serv) Cancel(ctx context.Context, userID int64) error {
	sess, _ := s.lookup(userID)
	if sess == nil {
		return service.ErrNoActiveSession
	}

	multiplier, ok := sess.resolve(model.StatusCancelled)
	if !ok {
		return service.ErrAlreadyResolved
	}
	s.release(sess)
	s.stats.Record(sess.bet, 0)

	logrus.WithFields(logrus.Fields{
		"user_id":    userID,
		"session_id": sess.id,
		"multiplier": multiplier,
	}).Info("round cancelled")

	s.notifyResolved(context.WithoutCancel(ctx), model.Resolution{
		SessionID:  sess.id,
		UserID:     userID,
		Bet:        sess.bet,
		Status:     model.StatusCancelled,
		CrashPoint: sess.crashPoint,
		Multiplier: multiplier,
	})
	return nil
}

package rocket

import (
	"crash_backend/internal/model"
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

// fly Часы раунда. Живут до краша, кэшаута, отмены или остановки движка
func (s *serv) fly(ctx context.Context, sess *session) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.cfg.TickInterval())
	defer ticker.Stop()

	for {
		res := sess.tick()
		if res.stopped {
			return
		}
		if res.crashed {
			s.finishCrash(sess)
			return
		}

		s.notifyTick(ctx, res.update)

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (s *serv) finishCrash(sess *session) {
	s.release(sess)

	ctx := context.WithoutCancel(s.ctx)
	if err := s.history.Record(ctx, sess.crashPoint); err != nil {
		logrus.WithError(err).WithField("session_id", sess.id).Error("record crash point")
	}
	s.stats.Record(sess.bet, 0)

	logrus.WithFields(logrus.Fields{
		"user_id":     sess.userID,
		"session_id":  sess.id,
		"crash_point": sess.crashPoint,
	}).Info("round crashed")

	s.notifyResolved(ctx, model.Resolution{
		SessionID:  sess.id,
		UserID:     sess.userID,
		Bet:        sess.bet,
		Status:     model.StatusCrashed,
		CrashPoint: sess.crashPoint,
		Multiplier: sess.crashPoint,
	})
}

func (s *serv) notifyTick(ctx context.Context, upd model.TickUpdate) {
	ctx, cancel := s.notifyContext(ctx)
	defer cancel()

	if err := s.notifier.Tick(ctx, upd); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"user_id":    upd.UserID,
			"session_id": upd.SessionID,
			"multiplier": upd.Multiplier,
		}).Warn("tick notification failed")
	}
}

func (s *serv) notifyResolved(ctx context.Context, res model.Resolution) {
	ctx, cancel := s.notifyContext(ctx)
	defer cancel()

	if err := s.notifier.Resolved(ctx, res); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"user_id":    res.UserID,
			"session_id": res.SessionID,
			"status":     res.Status,
		}).Warn("resolution notification failed")
	}
}

func (s *serv) notifyContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if timeout := s.cfg.NotifyTimeout(); timeout > 0 {
		return context.WithTimeout(ctx, timeout)
	}
	return context.WithCancel(ctx)
}

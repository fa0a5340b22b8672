package rocket

import (
	"crash_backend/internal/model"
	"context"

	"github.com/sirupsen/logrus"
)

// Shutdown Перестаёт принимать ставки, отменяет живые раунды и ждёт их горутины
func (s *serv) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	s.closed = true
	sessions := make([]*session, 0, len(s.live))
	for _, sess := range s.live {
		sessions = append(sessions, sess)
	}
	s.mu.Unlock()

	for _, sess := range sessions {
		if _, ok := sess.resolve(model.StatusCancelled); !ok {
			continue
		}
		s.release(sess)
		s.stats.Record(sess.bet, 0)

		logrus.WithFields(logrus.Fields{
			"user_id":    sess.userID,
			"session_id": sess.id,
			"bet":        sess.bet,
		}).Warn("round cancelled by shutdown")
	}

	s.stop()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		logrus.WithField("cancelled", len(sessions)).Info("game engine stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

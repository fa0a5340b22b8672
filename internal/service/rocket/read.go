package rocket

import (
	"crash_backend/internal/model"
	"crash_backend/internal/service"
	"context"
)

func (s *serv) Session(userID int64) (*model.Session, error) {
	sess, _ := s.lookup(userID)
	if sess == nil {
		return nil, service.ErrNoActiveSession
	}
	return sess.snapshot(), nil
}

func (s *serv) History(ctx context.Context) ([]float64, error) {
	return s.history.Recent(ctx, s.cfg.HistoryWindow())
}

func (s *serv) LiveCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.live)
}

func (s *serv) HouseStats() model.HouseStats {
	return s.stats.Snapshot()
}

package rocket

import (
	"crash_backend/internal/model"
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// session Живой раунд. Статус и множитель меняются только под mu
type session struct {
	id         uuid.UUID
	userID     int64
	bet        int64
	crashPoint float64
	startedAt  time.Time

	// Останавливает часы раунда
	cancel context.CancelFunc

	mu         sync.Mutex
	multiplier float64
	step       float64
	ticks      int
	status     model.SessionStatus
	payout     int64
}

func newSession(userID, bet int64, crashPoint float64) *session {
	return &session{
		id:         uuid.New(),
		userID:     userID,
		bet:        bet,
		crashPoint: crashPoint,
		startedAt:  time.Now(),
		cancel:     func() {},
		multiplier: startMultiplier,
		step:       baseStep,
		status:     model.StatusRunning,
	}
}

type tickResult struct {
	update  model.TickUpdate
	crashed bool
	stopped bool
}

// tick Один шаг часов: сдвигаем множитель и проверяем краш в одной критической секции
func (s *session) tick() tickResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != model.StatusRunning {
		return tickResult{stopped: true}
	}

	// Первый тик показывает 1.00
	if s.ticks > 0 {
		s.step = nextStep(s.multiplier, s.step)
		s.multiplier = advance(s.multiplier, s.step)
	}
	s.ticks++

	if s.multiplier >= s.crashPoint {
		s.status = model.StatusCrashed
		return tickResult{crashed: true}
	}

	return tickResult{
		update: model.TickUpdate{
			SessionID:       s.id,
			UserID:          s.userID,
			Bet:             s.bet,
			Multiplier:      s.multiplier,
			PotentialPayout: Payout(s.bet, s.multiplier),
		},
	}
}

// resolve Переводит running в терминальный статус. false, если раунд уже завершён
func (s *session) resolve(to model.SessionStatus) (float64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != model.StatusRunning {
		return 0, false
	}
	s.status = to
	return s.multiplier, true
}

func (s *session) setPayout(payout int64) {
	s.mu.Lock()
	s.payout = payout
	s.mu.Unlock()
}

func (s *session) snapshot() *model.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	return &model.Session{
		ID:                s.id,
		UserID:            s.userID,
		Bet:               s.bet,
		CrashPoint:        s.crashPoint,
		CurrentMultiplier: s.multiplier,
		Status:            s.status,
		Payout:            s.payout,
		StartedAt:         s.startedAt,
	}
}

package house_stats_repo

import (
	"crash_backend/internal/model"
	"crash_backend/internal/repository"
	"sync"
)

// roundResult Результат раунда для окна
type roundResult struct {
	bet    int64
	payout int64
}

// Реализация репозитория для хранения состояния казино
type StateRepo struct {
	mtx         sync.RWMutex
	rounds      int64
	totalBet    int64
	totalPayout int64

	window     []roundResult // Окно последних раундов для анализа
	windowSize int
}

// NewHouseStatsRepository Конструктор репозитория с пустым состоянием
func NewHouseStatsRepository(windowSize int) repository.HouseStatsRepository {
	if windowSize <= 0 {
		windowSize = 1
	}
	return &StateRepo{
		window:     make([]roundResult, 0, windowSize),
		windowSize: windowSize,
	}
}

// Record Обновление состояния казино после завершения раунда
func (r *StateRepo) Record(bet, payout int64) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.rounds++
	r.totalBet += bet
	r.totalPayout += payout

	// Поддерживаем размер окна
	if len(r.window) == r.windowSize {
		copy(r.window, r.window[1:])
		r.window = r.window[:len(r.window)-1]
	}
	r.window = append(r.window, roundResult{bet: bet, payout: payout})
}

// Snapshot Копия текущего состояния казино
func (r *StateRepo) Snapshot() model.HouseStats {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	st := model.HouseStats{
		Rounds:      r.rounds,
		TotalBet:    r.totalBet,
		TotalPayout: r.totalPayout,
		WindowSize:  r.windowSize,
	}
	if r.totalBet > 0 {
		st.CurrentRTP = float64(r.totalPayout) / float64(r.totalBet) * 100
	}

	var windowBet, windowPayout int64
	for _, rr := range r.window {
		windowBet += rr.bet
		windowPayout += rr.payout
	}
	if windowBet > 0 {
		st.WindowRTP = float64(windowPayout) / float64(windowBet) * 100
	}
	return st
}

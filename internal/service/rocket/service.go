package rocket

import (
	"crash_backend/internal/config"
	"crash_backend/internal/repository"
	"crash_backend/internal/service"
	"context"
	"sync"
	"time"
)

// resolvedRetention Сколько помним завершённый раунд для ответа на поздний кэшаут
const resolvedRetention = time.Minute

type serv struct {
	ledger    service.LedgerService
	history   repository.HistoryRepository
	stats     repository.HouseStatsRepository
	notifier  service.GameNotifier
	generator Generator
	cfg       config.GameConfig

	mu      sync.Mutex
	live    map[int64]*session
	pending map[int64]struct{}
	// Последний завершённый раунд игрока, для повторного кэшаута
	last          map[int64]*session
	lastRetention time.Duration
	closed        bool

	ctx  context.Context
	stop context.CancelFunc
	wg   sync.WaitGroup
}

// NewGameService Движок раундов ракеты. Каждый живой раунд крутится в своей горутине
func NewGameService(
	cfg config.GameConfig,
	ledger service.LedgerService,
	history repository.HistoryRepository,
	stats repository.HouseStatsRepository,
	notifier service.GameNotifier,
	generator Generator,
) service.GameService {
	if notifier == nil {
		notifier = NewLogNotifier()
	}
	if generator == nil {
		generator = NewGenerator(nil)
	}

	ctx, stop := context.WithCancel(context.Background())

	return &serv{
		ledger:    ledger,
		history:   history,
		stats:     stats,
		notifier:  notifier,
		generator: generator,
		cfg:       cfg,
		live:      make(map[int64]*session),
		pending:   make(map[int64]struct{}),
		last:          make(map[int64]*session),
		lastRetention: resolvedRetention,
		ctx:           ctx,
		stop:          stop,
	}
}

// reserve Занимает слот игрока на время списания ставки
func (s *serv) reserve(userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return service.ErrShuttingDown
	}
	if _, ok := s.live[userID]; ok {
		return service.ErrSessionInProgress
	}
	if _, ok := s.pending[userID]; ok {
		return service.ErrSessionInProgress
	}
	s.pending[userID] = struct{}{}
	return nil
}

func (s *serv) unreserve(userID int64) {
	s.mu.Lock()
	delete(s.pending, userID)
	s.mu.Unlock()
}

// launch Регистрирует раунд и запускает его часы
func (s *serv) launch(sess *session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.pending, sess.userID)
	if s.closed {
		return service.ErrShuttingDown
	}

	ctx, cancel := context.WithCancel(s.ctx)
	sess.cancel = cancel
	s.live[sess.userID] = sess
	delete(s.last, sess.userID)

	s.wg.Add(1)
	go s.fly(ctx, sess)
	return nil
}

// release Убирает завершённый раунд из живых и останавливает его часы
func (s *serv) release(sess *session) {
	s.mu.Lock()
	if s.live[sess.userID] == sess {
		delete(s.live, sess.userID)
	}
	s.last[sess.userID] = sess
	s.mu.Unlock()

	sess.cancel()
	time.AfterFunc(s.lastRetention, func() { s.forget(sess) })
}

// forget Раунд забывается, только если игрок с тех пор не сыграл новый
func (s *serv) forget(sess *session) {
	s.mu.Lock()
	if s.last[sess.userID] == sess {
		delete(s.last, sess.userID)
	}
	s.mu.Unlock()
}

func (s *serv) resolvedCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.last)
}

func (s *serv) lookup(userID int64) (live *session, last *session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.live[userID], s.last[userID]
}

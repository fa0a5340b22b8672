package history_repo

import (
	"crash_backend/internal/repository"
	"context"
	"sync"
)

// ring Кольцевой буфер точек краша фиксированной ёмкости
type ring struct {
	mu    sync.RWMutex
	buf   []float64
	start int // индекс самой старой записи
	size  int
}

func NewMemoryRepository(capacity int) repository.HistoryRepository {
	if capacity <= 0 {
		capacity = 1
	}
	return &ring{buf: make([]float64, capacity)}
}

// Record Добавляет точку краша, при переполнении вытесняет самую старую
func (r *ring) Record(_ context.Context, crashPoint float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.size < len(r.buf) {
		r.buf[(r.start+r.size)%len(r.buf)] = crashPoint
		r.size++
		return nil
	}
	r.buf[r.start] = crashPoint
	r.start = (r.start + 1) % len(r.buf)
	return nil
}

// Recent Последние n записей, от старой к новой. Возвращает копию
func (r *ring) Recent(_ context.Context, n int) ([]float64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if n > r.size {
		n = r.size
	}
	if n <= 0 {
		return []float64{}, nil
	}

	out := make([]float64, n)
	first := r.start + r.size - n
	for i := 0; i < n; i++ {
		out[i] = r.buf[(first+i)%len(r.buf)]
	}
	return out, nil
}

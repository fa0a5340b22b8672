package account_repo

import (
	"crash_backend/internal/model"
	"crash_backend/internal/repository"
	"context"
	"sync"
)

type memoryRepo struct {
	mu              sync.Mutex
	accounts        map[int64]*model.Account
	startingBalance int64
}

// NewMemoryRepository Счета в памяти процесса.
// Все операции выполняются под одним мьютексом карты, поэтому проверка и списание атомарны.
func NewMemoryRepository(startingBalance int64) repository.AccountRepository {
	return &memoryRepo{
		accounts:        make(map[int64]*model.Account),
		startingBalance: startingBalance,
	}
}

// account возвращает счёт, создавая его при первом обращении. Вызывать под r.mu
func (r *memoryRepo) account(userID int64) *model.Account {
	acc, ok := r.accounts[userID]
	if !ok {
		acc = &model.Account{UserID: userID, Balance: r.startingBalance}
		r.accounts[userID] = acc
	}
	return acc
}

func (r *memoryRepo) GetOrCreate(_ context.Context, userID int64) (*model.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	acc := *r.account(userID)
	return &acc, nil
}

func (r *memoryRepo) Debit(_ context.Context, userID int64, amount int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	acc := r.account(userID)
	if acc.Balance < amount {
		return false, nil
	}
	acc.Balance -= amount
	acc.TotalBets++
	acc.TotalWagered += amount
	return true, nil
}

func (r *memoryRepo) Credit(_ context.Context, userID int64, amount int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.account(userID).Balance += amount
	return nil
}

func (r *memoryRepo) RecordWin(_ context.Context, userID int64, payout int64, multiplier float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	acc := r.account(userID)
	acc.TotalWins++
	acc.TotalWon += payout
	acc.BestMultiplier = max(acc.BestMultiplier, multiplier)
	return nil
}

func (r *memoryRepo) Count(_ context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.accounts), nil
}

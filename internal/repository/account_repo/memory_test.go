package account_repo

import (
	"context"
	"sync"
	"testing"
)

func TestMemoryRepository_LazyCreate(t *testing.T) {
	repo := NewMemoryRepository(0)
	ctx := context.Background()

	acc, err := repo.GetOrCreate(ctx, 7)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if acc.UserID != 7 || acc.Balance != 0 || acc.TotalBets != 0 || acc.TotalWins != 0 {
		t.Fatalf("unexpected fresh account %+v", acc)
	}
	if n, _ := repo.Count(ctx); n != 1 {
		t.Fatalf("count = %d, want 1", n)
	}

	// Снимок не связан с хранимым счетом
	acc.Balance = 1000
	again, _ := repo.GetOrCreate(ctx, 7)
	if again.Balance != 0 {
		t.Fatalf("snapshot leaked into storage: balance %d", again.Balance)
	}
}

func TestMemoryRepository_DebitCredit(t *testing.T) {
	repo := NewMemoryRepository(0)
	ctx := context.Background()

	if ok, _ := repo.Debit(ctx, 1, 10); ok {
		t.Fatal("debit on empty account must fail")
	}
	_ = repo.Credit(ctx, 1, 100)
	if ok, _ := repo.Debit(ctx, 1, 60); !ok {
		t.Fatal("debit 60 of 100 must succeed")
	}
	if ok, _ := repo.Debit(ctx, 1, 60); ok {
		t.Fatal("second debit 60 of 40 must fail")
	}
	_ = repo.Credit(ctx, 1, 120)
	_ = repo.RecordWin(ctx, 1, 120, 2.0)
	_ = repo.RecordWin(ctx, 1, 0, 1.5)

	acc, _ := repo.GetOrCreate(ctx, 1)
	if acc.Balance != 160 {
		t.Errorf("balance = %d, want 160", acc.Balance)
	}
	if acc.TotalBets != 1 || acc.TotalWagered != 60 {
		t.Errorf("bets = %d/%d, want 1/60", acc.TotalBets, acc.TotalWagered)
	}
	if acc.TotalWins != 2 || acc.TotalWon != 120 {
		t.Errorf("wins = %d/%d, want 2/120", acc.TotalWins, acc.TotalWon)
	}
	if acc.BestMultiplier != 2.0 {
		t.Errorf("best multiplier = %v, want 2", acc.BestMultiplier)
	}
}

func TestMemoryRepository_ConcurrentDebitNoOverdraw(t *testing.T) {
	repo := NewMemoryRepository(0)
	ctx := context.Background()
	_ = repo.Credit(ctx, 1, 100)

	const workers = 64
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		success int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if ok, _ := repo.Debit(ctx, 1, 30); ok {
				mu.Lock()
				success++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if success != 3 {
		t.Fatalf("successful debits = %d, want 3", success)
	}
	acc, _ := repo.GetOrCreate(ctx, 1)
	if acc.Balance != 10 {
		t.Fatalf("balance = %d, want 10", acc.Balance)
	}
}

func TestMemoryRepository_StartingBalance(t *testing.T) {
	repo := NewMemoryRepository(100)
	acc, _ := repo.GetOrCreate(context.Background(), 5)
	if acc.Balance != 100 {
		t.Fatalf("balance = %d, want 100", acc.Balance)
	}
}

package ledger

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"crash_backend/internal/repository/account_repo"
	"crash_backend/internal/repository/memtx"
	"crash_backend/internal/service"
)

func newLedger() service.LedgerService {
	return NewLedgerService(account_repo.NewMemoryRepository(0), memtx.NewManager())
}

func TestLedger_TopUpDebitCredit(t *testing.T) {
	l := newLedger()
	ctx := context.Background()

	balance, err := l.TopUp(ctx, 1, 100)
	if err != nil || balance != 100 {
		t.Fatalf("top up = %d, %v; want 100", balance, err)
	}

	ok, err := l.Debit(ctx, 1, 50)
	if err != nil || !ok {
		t.Fatalf("debit 50: ok=%v err=%v", ok, err)
	}
	ok, _ = l.Debit(ctx, 1, 200)
	if ok {
		t.Fatal("debit 200 against 50 must fail")
	}

	if err := l.CreditWin(ctx, 1, 100, 2.0); err != nil {
		t.Fatalf("credit: %v", err)
	}

	if b, _ := l.Balance(ctx, 1); b != 150 {
		t.Errorf("balance = %d, want 150", b)
	}
	st, _ := l.Stats(ctx, 1)
	if st.TotalBets != 1 || st.TotalWins != 1 {
		t.Errorf("stats = %+v, want 1 bet and 1 win", st)
	}
	if st.TotalWagered != 50 || st.TotalWon != 100 {
		t.Errorf("amounts = %+v", st)
	}
	if st.BestMultiplier != 2.0 {
		t.Errorf("best multiplier = %v, want 2", st.BestMultiplier)
	}
}

func TestLedger_BestMultiplierOnlyGrows(t *testing.T) {
	l := newLedger()
	ctx := context.Background()

	for _, m := range []float64{1.5, 3.25, 2.0} {
		if err := l.CreditWin(ctx, 1, 10, m); err != nil {
			t.Fatalf("credit win x%.2f: %v", m, err)
		}
	}
	if err := l.Credit(ctx, 1, 50); err != nil {
		t.Fatalf("refund: %v", err)
	}

	st, _ := l.Stats(ctx, 1)
	if st.BestMultiplier != 3.25 {
		t.Errorf("best multiplier = %v, want 3.25", st.BestMultiplier)
	}
	if st.TotalWins != 3 || st.TotalWon != 30 {
		t.Errorf("refund counted as win: %+v", st)
	}
}

func TestLedger_TopUpIsNotAWin(t *testing.T) {
	l := newLedger()
	ctx := context.Background()
	_, _ = l.TopUp(ctx, 2, 500)

	st, _ := l.Stats(ctx, 2)
	if st.TotalWins != 0 {
		t.Fatalf("top up counted as win: %+v", st)
	}
}

func TestLedger_InvalidAmounts(t *testing.T) {
	l := newLedger()
	ctx := context.Background()

	if _, err := l.TopUp(ctx, 1, 0); !errors.Is(err, service.ErrInvalidAmount) {
		t.Errorf("top up 0: err = %v", err)
	}
	if err := l.Credit(ctx, 1, -5); !errors.Is(err, service.ErrInvalidAmount) {
		t.Errorf("credit -5: err = %v", err)
	}
	if ok, _ := l.Debit(ctx, 1, 0); ok {
		t.Error("debit 0 must not succeed")
	}
}

func TestLedger_ConcurrentDebitsNeverOverdraw(t *testing.T) {
	l := newLedger()
	ctx := context.Background()
	_, _ = l.TopUp(ctx, 1, 100)

	var (
		wg      sync.WaitGroup
		success atomic.Int64
	)
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if ok, _ := l.Debit(ctx, 1, 7); ok {
				success.Add(1)
			}
		}()
	}
	wg.Wait()

	if got := success.Load() * 7; got > 100 {
		t.Fatalf("debited %d out of starting 100", got)
	}
	if success.Load() != 14 {
		t.Errorf("successful debits = %d, want 14", success.Load())
	}
	if b, _ := l.Balance(ctx, 1); b != 2 {
		t.Errorf("balance = %d, want 2", b)
	}
}

func TestLedger_GetAccountNeverFailsForNewUser(t *testing.T) {
	l := newLedger()
	acc, err := l.GetAccount(context.Background(), 999)
	if err != nil {
		t.Fatalf("get account: %v", err)
	}
	if acc.Balance != 0 {
		t.Fatalf("new account balance = %d", acc.Balance)
	}
	if n, _ := l.AccountsCount(context.Background()); n != 1 {
		t.Fatalf("accounts = %d, want 1", n)
	}
}

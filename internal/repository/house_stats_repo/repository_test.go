package house_stats_repo

import (
	"math"
	"testing"
)

func TestStateRepo_RTP(t *testing.T) {
	repo := NewHouseStatsRepository(2)

	repo.Record(100, 0)
	repo.Record(100, 250)
	repo.Record(100, 50)

	st := repo.Snapshot()
	if st.Rounds != 3 || st.TotalBet != 300 || st.TotalPayout != 300 {
		t.Fatalf("totals = %+v", st)
	}
	if math.Abs(st.CurrentRTP-100) > 1e-9 {
		t.Errorf("current rtp = %v, want 100", st.CurrentRTP)
	}
	// в окне остались два последних раунда: 300 выплат на 200 ставок
	if math.Abs(st.WindowRTP-150) > 1e-9 {
		t.Errorf("window rtp = %v, want 150", st.WindowRTP)
	}
}

func TestStateRepo_Empty(t *testing.T) {
	st := NewHouseStatsRepository(10).Snapshot()
	if st.Rounds != 0 || st.CurrentRTP != 0 || st.WindowRTP != 0 || st.WindowSize != 10 {
		t.Fatalf("unexpected empty snapshot %+v", st)
	}
}

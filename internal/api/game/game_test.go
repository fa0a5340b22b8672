package game

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"crash_backend/internal/config"
	"crash_backend/internal/config/env"
	"crash_backend/internal/middleware"
	"crash_backend/internal/repository/account_repo"
	"crash_backend/internal/repository/history_repo"
	"crash_backend/internal/repository/house_stats_repo"
	"crash_backend/internal/repository/memtx"
	"crash_backend/internal/service"
	"crash_backend/internal/service/ledger"
	"crash_backend/internal/service/rocket"

	"github.com/go-chi/chi/v5"
)

// frozenClock Раунд стоит на 1.00 до кэшаута
type frozenClock struct {
	config.GameConfig
}

func (frozenClock) TickInterval() time.Duration { return time.Hour }

type fixedGenerator float64

func (g fixedGenerator) Generate() float64 { return float64(g) }

const testUserID = 31337

func newRouter(t *testing.T) (http.Handler, service.LedgerService) {
	t.Helper()

	cfg := frozenClock{GameConfig: env.NewDefaultGameConfig()}
	l := ledger.NewLedgerService(account_repo.NewMemoryRepository(0), memtx.NewManager())
	g := rocket.NewGameService(
		cfg,
		l,
		history_repo.NewMemoryRepository(cfg.HistoryCapacity()),
		house_stats_repo.NewHouseStatsRepository(cfg.StatsWindow()),
		rocket.NewLogNotifier(),
		fixedGenerator(5.00),
	)
	t.Cleanup(func() { _ = g.Shutdown(context.Background()) })

	h := NewHandler(HandlerDeps{Serv: g, Ledger: l})

	r := chi.NewRouter()
	r.Get("/history", h.History)
	r.Get("/online", h.Online)
	r.Group(func(rr chi.Router) {
		rr.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				next.ServeHTTP(w, r.WithContext(middleware.WithUserID(r.Context(), testUserID)))
			})
		})
		rr.Post("/bet", h.Bet)
		rr.Post("/cash-out", h.CashOut)
		rr.Post("/cancel", h.Cancel)
		rr.Get("/state", h.State)
	})

	return r, l
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, path, nil)
	} else {
		r = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	return w
}

func TestHandler_RoundFlow(t *testing.T) {
	h, l := newRouter(t)
	if _, err := l.TopUp(context.Background(), testUserID, 100); err != nil {
		t.Fatalf("top up: %v", err)
	}

	w := do(t, h, http.MethodPost, "/bet", `{"amount":50}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("bet: %d %s", w.Code, w.Body)
	}

	if w := do(t, h, http.MethodPost, "/bet", `{"amount":10}`); w.Code != http.StatusConflict {
		t.Errorf("second bet: %d, want 409", w.Code)
	}

	w = do(t, h, http.MethodGet, "/state", "")
	if w.Code != http.StatusOK {
		t.Fatalf("state: %d", w.Code)
	}
	var state map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &state)
	if state["status"] != "running" {
		t.Errorf("state = %v", state)
	}
	if _, leaked := state["crash_point"]; leaked {
		t.Error("crash point must stay hidden while running")
	}

	if w := do(t, h, http.MethodGet, "/online", ""); !strings.Contains(w.Body.String(), `"online":1,"players":1`) {
		t.Errorf("online = %s", w.Body)
	}

	w = do(t, h, http.MethodPost, "/cash-out", "")
	if w.Code != http.StatusOK {
		t.Fatalf("cash out: %d %s", w.Code, w.Body)
	}
	var out struct {
		Payout  int64 `json:"payout"`
		Balance int64 `json:"balance"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	if out.Payout != 50 || out.Balance != 100 {
		t.Errorf("cash out = %+v", out)
	}

	if w := do(t, h, http.MethodPost, "/cash-out", ""); w.Code != http.StatusConflict {
		t.Errorf("second cash out: %d, want 409", w.Code)
	}
	if w := do(t, h, http.MethodGet, "/state", ""); w.Code != http.StatusNotFound {
		t.Errorf("state after cash out: %d, want 404", w.Code)
	}
}

func TestHandler_Errors(t *testing.T) {
	h, l := newRouter(t)
	_, _ = l.TopUp(context.Background(), testUserID, 20)

	cases := []struct {
		name   string
		method string
		path   string
		body   string
		status int
	}{
		{"bad json", http.MethodPost, "/bet", `{"amount":`, http.StatusBadRequest},
		{"zero bet", http.MethodPost, "/bet", `{"amount":0}`, http.StatusBadRequest},
		{"insufficient", http.MethodPost, "/bet", `{"amount":500}`, http.StatusPaymentRequired},
		{"no session cash out", http.MethodPost, "/cash-out", "", http.StatusNotFound},
		{"no session cancel", http.MethodPost, "/cancel", "", http.StatusNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if w := do(t, h, tc.method, tc.path, tc.body); w.Code != tc.status {
				t.Errorf("status = %d, want %d (%s)", w.Code, tc.status, w.Body)
			}
		})
	}

	w := do(t, h, http.MethodGet, "/history", "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"multipliers":[]`) {
		t.Errorf("history = %d %s", w.Code, w.Body)
	}
}

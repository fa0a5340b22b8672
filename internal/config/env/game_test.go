package env

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestParseGameConfig_Overrides(t *testing.T) {
	data := []byte(`
game:
  tick_interval: 500ms
  min_bet: 10
  max_bet: 500
  starting_balance: 100
  history_capacity: 30
  bet_presets: [5, 15]
`)
	cfg, err := parseGameConfig(data)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.TickInterval() != 500*time.Millisecond {
		t.Errorf("tick interval = %v, want 500ms", cfg.TickInterval())
	}
	if cfg.MinBet() != 10 || cfg.MaxBet() != 500 {
		t.Errorf("bet limits = [%d, %d], want [10, 500]", cfg.MinBet(), cfg.MaxBet())
	}
	if cfg.StartingBalance() != 100 {
		t.Errorf("starting balance = %d, want 100", cfg.StartingBalance())
	}
	if cfg.HistoryCapacity() != 30 || cfg.HistoryWindow() != defaultHistoryWindow {
		t.Errorf("history = %d/%d", cfg.HistoryCapacity(), cfg.HistoryWindow())
	}
	if got := cfg.BetPresets(); len(got) != 2 || got[0] != 5 || got[1] != 15 {
		t.Errorf("bet presets = %v", got)
	}
	if got := cfg.TopUpPresets(); len(got) != len(defaultTopUpPresets) {
		t.Errorf("top-up presets = %v, want defaults", got)
	}
}

func TestParseGameConfig_Defaults(t *testing.T) {
	cfg, err := parseGameConfig([]byte("game: {}\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.TickInterval() != defaultTickInterval {
		t.Errorf("tick interval = %v, want %v", cfg.TickInterval(), defaultTickInterval)
	}
	if cfg.HistoryCapacity() != 20 || cfg.HistoryWindow() != 6 {
		t.Errorf("history = %d/%d, want 20/6", cfg.HistoryCapacity(), cfg.HistoryWindow())
	}
	if cfg.StartingBalance() != 0 {
		t.Errorf("starting balance = %d, want 0", cfg.StartingBalance())
	}
}

func TestParseGameConfig_Invalid(t *testing.T) {
	cases := map[string]string{
		"bad duration": "game:\n  tick_interval: soon\n",
		"limits":       "game:\n  min_bet: 100\n  max_bet: 10\n",
		"window":       "game:\n  history_capacity: 3\n  history_window: 6\n",
	}
	for name, raw := range cases {
		if _, err := parseGameConfig([]byte(raw)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestNewGameConfigFromYAML_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("game:\n  max_bet: 42\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := NewGameConfigFromYAML(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.MaxBet() != 42 {
		t.Errorf("max bet = %d, want 42", cfg.MaxBet())
	}
	if _, err := NewGameConfigFromYAML(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

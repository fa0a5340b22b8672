package env

import (
	"crash_backend/internal/config"
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	gameConfigEnvName = "GAME_CONFIG"
	defaultGamePath   = "config.yaml"
)

const (
	defaultTickInterval    = 800 * time.Millisecond
	defaultNotifyTimeout   = 3 * time.Second
	defaultMinBet          = 1
	defaultMaxBet          = 100000
	defaultHistoryCapacity = 20
	defaultHistoryWindow   = 6
	defaultStatsWindow     = 500
)

var (
	defaultBetPresets   = []int64{10, 25, 50, 100, 250, 500}
	defaultTopUpPresets = []int64{100, 250, 500, 1000}
)

// gameFile Структура секции game в config.yaml
type gameFile struct {
	Game struct {
		TickInterval    string  `yaml:"tick_interval"`
		NotifyTimeout   string  `yaml:"notify_timeout"`
		MinBet          int64   `yaml:"min_bet"`
		MaxBet          int64   `yaml:"max_bet"`
		StartingBalance int64   `yaml:"starting_balance"`
		HistoryCapacity int     `yaml:"history_capacity"`
		HistoryWindow   int     `yaml:"history_window"`
		StatsWindow     int     `yaml:"stats_window"`
		BetPresets      []int64 `yaml:"bet_presets"`
		TopUpPresets    []int64 `yaml:"top_up_presets"`
	} `yaml:"game"`
}

type gameConfig struct {
	tickInterval    time.Duration
	notifyTimeout   time.Duration
	minBet          int64
	maxBet          int64
	startingBalance int64
	historyCapacity int
	historyWindow   int
	statsWindow     int
	betPresets      []int64
	topUpPresets    []int64
}

// GameConfigPath Путь к yaml с настройками игры
func GameConfigPath() string {
	if p := os.Getenv(gameConfigEnvName); len(p) != 0 {
		return p
	}
	return defaultGamePath
}

// NewDefaultGameConfig Настройки по умолчанию, если config.yaml отсутствует
func NewDefaultGameConfig() config.GameConfig {
	return &gameConfig{
		tickInterval:    defaultTickInterval,
		notifyTimeout:   defaultNotifyTimeout,
		minBet:          defaultMinBet,
		maxBet:          defaultMaxBet,
		historyCapacity: defaultHistoryCapacity,
		historyWindow:   defaultHistoryWindow,
		statsWindow:     defaultStatsWindow,
		betPresets:      defaultBetPresets,
		topUpPresets:    defaultTopUpPresets,
	}
}

// NewGameConfigFromYAML Читает секцию game из yaml-файла.
// Незаданные поля получают значения по умолчанию.
func NewGameConfigFromYAML(path string) (config.GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parseGameConfig(data)
}

func parseGameConfig(data []byte) (config.GameConfig, error) {
	var f gameFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game config: %w", err)
	}

	cfg := NewDefaultGameConfig().(*gameConfig)

	if f.Game.TickInterval != "" {
		d, err := time.ParseDuration(f.Game.TickInterval)
		if err != nil {
			return nil, fmt.Errorf("invalid tick_interval: %w", err)
		}
		cfg.tickInterval = d
	}
	if f.Game.NotifyTimeout != "" {
		d, err := time.ParseDuration(f.Game.NotifyTimeout)
		if err != nil {
			return nil, fmt.Errorf("invalid notify_timeout: %w", err)
		}
		cfg.notifyTimeout = d
	}
	if f.Game.MinBet > 0 {
		cfg.minBet = f.Game.MinBet
	}
	if f.Game.MaxBet > 0 {
		cfg.maxBet = f.Game.MaxBet
	}
	if f.Game.StartingBalance > 0 {
		cfg.startingBalance = f.Game.StartingBalance
	}
	if f.Game.HistoryCapacity > 0 {
		cfg.historyCapacity = f.Game.HistoryCapacity
	}
	if f.Game.HistoryWindow > 0 {
		cfg.historyWindow = f.Game.HistoryWindow
	}
	if f.Game.StatsWindow > 0 {
		cfg.statsWindow = f.Game.StatsWindow
	}
	if len(f.Game.BetPresets) != 0 {
		cfg.betPresets = f.Game.BetPresets
	}
	if len(f.Game.TopUpPresets) != 0 {
		cfg.topUpPresets = f.Game.TopUpPresets
	}

	if cfg.tickInterval <= 0 {
		return nil, errors.New("tick_interval must be positive")
	}
	if cfg.minBet > cfg.maxBet {
		return nil, errors.New("min_bet is greater than max_bet")
	}
	if cfg.historyWindow > cfg.historyCapacity {
		return nil, errors.New("history_window is greater than history_capacity")
	}

	return cfg, nil
}

func (c *gameConfig) TickInterval() time.Duration  { return c.tickInterval }
func (c *gameConfig) NotifyTimeout() time.Duration { return c.notifyTimeout }
func (c *gameConfig) MinBet() int64                { return c.minBet }
func (c *gameConfig) MaxBet() int64                { return c.maxBet }
func (c *gameConfig) StartingBalance() int64       { return c.startingBalance }
func (c *gameConfig) HistoryCapacity() int         { return c.historyCapacity }
func (c *gameConfig) HistoryWindow() int           { return c.historyWindow }
func (c *gameConfig) StatsWindow() int             { return c.statsWindow }
func (c *gameConfig) BetPresets() []int64          { return c.betPresets }
func (c *gameConfig) TopUpPresets() []int64        { return c.topUpPresets }

package app

import (
	authAPI "crash_backend/internal/api/auth"
	gameAPI "crash_backend/internal/api/game"
	"crash_backend/internal/api/telegram"
	userAPI "crash_backend/internal/api/user"
	"crash_backend/internal/config"
	"crash_backend/internal/config/env"
	"crash_backend/internal/middleware"
	"crash_backend/internal/repository"
	"crash_backend/internal/repository/account_repo"
	"crash_backend/internal/repository/history_repo"
	"crash_backend/internal/repository/house_stats_repo"
	"crash_backend/internal/repository/memtx"
	"crash_backend/internal/service"
	"crash_backend/internal/service/auth"
	"crash_backend/internal/service/ledger"
	"crash_backend/internal/service/rocket"
	"context"
	"errors"
	"os"
	"time"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
)

type ServiceProvider struct {
	//TXManager
	txManager trm.Manager

	// Database. Без PG_DSN всё хранится в памяти
	pgConfig  config.PGConfig
	pgChecked bool
	dbClient  *pgxpool.Pool

	// Configs
	logCfg  config.LogConfig
	gameCfg config.GameConfig
	jwtCfg  config.JWTConfig
	httpCfg config.HTTPConfig

	// Telegram bits, nil если BOT_TOKEN не задан
	tgCfg     config.TelegramConfig
	tgChecked bool
	botAPI    *tgbotapi.BotAPI
	bot       *telegram.Bot

	// Ledger bits
	accountRepo repository.AccountRepository
	ledgerServ  service.LedgerService

	// Game bits
	historyRepo    repository.HistoryRepository
	houseStatsRepo repository.HouseStatsRepository
	notifier       service.GameNotifier
	gameServ       service.GameService

	// Auth bits
	authServ service.AuthService

	// Handlers
	authHand *authAPI.Handler
	userHand *userAPI.Handler
	gameHand *gameAPI.Handler

	// Router
	router chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) LogCfg() config.LogConfig {
	if sp.logCfg == nil {
		sp.logCfg = env.NewLogConfig()
	}
	return sp.logCfg
}

func (sp *ServiceProvider) GameCfg() config.GameConfig {
	if sp.gameCfg == nil {
		path := env.GameConfigPath()
		cfg, err := env.NewGameConfigFromYAML(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			logrus.WithField("path", path).Warn("game config not found, using defaults")
			cfg = env.NewDefaultGameConfig()
		case err != nil:
			panic("failed to get game config: " + err.Error())
		}
		sp.gameCfg = cfg
	}
	return sp.gameCfg
}

func (sp *ServiceProvider) JWTCfg() config.JWTConfig {
	if sp.jwtCfg == nil {
		cfg, err := env.NewJWTConfig()
		if err != nil {
			panic("failed to get jwt config: " + err.Error())
		}
		sp.jwtCfg = cfg
	}
	return sp.jwtCfg
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}

	return sp.httpCfg
}

// PgConfig nil, если PG_DSN не задан
func (sp *ServiceProvider) PgConfig() config.PGConfig {
	if !sp.pgChecked {
		cfg, err := env.NewPGConfig()
		switch {
		case errors.Is(err, env.ErrPGNotConfigured):
			logrus.Info("PG_DSN is not set, using in-memory storage")
		case err != nil:
			panic("failed to get database config: " + err.Error())
		}
		sp.pgConfig = cfg
		sp.pgChecked = true
	}
	return sp.pgConfig
}

func (sp *ServiceProvider) DBClient(ctx context.Context) *pgxpool.Pool {
	if sp.dbClient == nil {
		dbc, err := pgxpool.New(ctx, sp.PgConfig().DSN())
		if err != nil {
			panic("failed to create db pool: " + err.Error())
		}
		err = dbc.Ping(ctx)
		if err != nil {
			panic("failed to ping db: " + err.Error())
		}
		sp.dbClient = dbc
	}
	return sp.dbClient
}

func (sp *ServiceProvider) TXManager(ctx context.Context) trm.Manager {
	if sp.txManager == nil {
		if sp.PgConfig() == nil {
			sp.txManager = memtx.NewManager()
			return sp.txManager
		}

		m, err := manager.New(trmpgx.NewDefaultFactory(sp.DBClient(ctx)))
		if err != nil {
			panic("failed to create tx manager: " + err.Error())
		}

		sp.txManager = m
	}

	return sp.txManager
}

func (sp *ServiceProvider) AccountRepository(ctx context.Context) repository.AccountRepository {
	if sp.accountRepo == nil {
		if sp.PgConfig() == nil {
			sp.accountRepo = account_repo.NewMemoryRepository(sp.GameCfg().StartingBalance())
		} else {
			sp.accountRepo = account_repo.NewPGRepository(sp.DBClient(ctx), sp.GameCfg().StartingBalance())
		}
	}
	return sp.accountRepo
}

func (sp *ServiceProvider) HistoryRepository(ctx context.Context) repository.HistoryRepository {
	if sp.historyRepo == nil {
		capacity := sp.GameCfg().HistoryCapacity()
		if sp.PgConfig() == nil {
			sp.historyRepo = history_repo.NewMemoryRepository(capacity)
		} else {
			sp.historyRepo = history_repo.NewPGRepository(sp.DBClient(ctx), sp.TXManager(ctx), capacity)
		}
	}
	return sp.historyRepo
}

func (sp *ServiceProvider) HouseStatsRepository() repository.HouseStatsRepository {
	if sp.houseStatsRepo == nil {
		sp.houseStatsRepo = house_stats_repo.NewHouseStatsRepository(sp.GameCfg().StatsWindow())
	}
	return sp.houseStatsRepo
}

func (sp *ServiceProvider) LedgerService(ctx context.Context) service.LedgerService {
	if sp.ledgerServ == nil {
		sp.ledgerServ = ledger.NewLedgerService(sp.AccountRepository(ctx), sp.TXManager(ctx))
	}
	return sp.ledgerServ
}

// TelegramCfg nil, если BOT_TOKEN не задан
func (sp *ServiceProvider) TelegramCfg() config.TelegramConfig {
	if !sp.tgChecked {
		cfg, err := env.NewTelegramConfig()
		switch {
		case errors.Is(err, env.ErrTelegramNotConfigured):
			logrus.Info("BOT_TOKEN is not set, telegram bot and login are disabled")
		case err != nil:
			panic("failed to get telegram config: " + err.Error())
		}
		sp.tgCfg = cfg
		sp.tgChecked = true
	}
	return sp.tgCfg
}

func (sp *ServiceProvider) BotAPI() *tgbotapi.BotAPI {
	if sp.botAPI == nil && sp.TelegramCfg() != nil {
		api, err := telegram.NewBotAPI(sp.TelegramCfg().BotToken())
		if err != nil {
			panic("failed to create telegram bot: " + err.Error())
		}
		sp.botAPI = api
	}
	return sp.botAPI
}

func (sp *ServiceProvider) Notifier() service.GameNotifier {
	if sp.notifier == nil {
		if api := sp.BotAPI(); api != nil {
			sp.notifier = rocket.Notifiers{telegram.NewNotifier(api), rocket.NewLogNotifier()}
		} else {
			sp.notifier = rocket.NewLogNotifier()
		}
	}
	return sp.notifier
}

func (sp *ServiceProvider) GameService(ctx context.Context) service.GameService {
	if sp.gameServ == nil {
		sp.gameServ = rocket.NewGameService(
			sp.GameCfg(),
			sp.LedgerService(ctx),
			sp.HistoryRepository(ctx),
			sp.HouseStatsRepository(),
			sp.Notifier(),
			rocket.NewGenerator(nil),
		)
	}
	return sp.gameServ
}

func (sp *ServiceProvider) AuthService(ctx context.Context) service.AuthService {
	if sp.authServ == nil {
		var (
			botToken string
			maxAge   time.Duration
		)
		if cfg := sp.TelegramCfg(); cfg != nil {
			botToken = cfg.BotToken()
			maxAge = cfg.InitDataMaxAge()
		}
		sp.authServ = auth.NewAuthService(sp.LedgerService(ctx), sp.JWTCfg(), botToken, maxAge)
	}
	return sp.authServ
}

// Bot nil, если Telegram не настроен
func (sp *ServiceProvider) Bot(ctx context.Context) *telegram.Bot {
	if sp.bot == nil && sp.BotAPI() != nil {
		sp.bot = telegram.NewBot(telegram.BotDeps{
			API:       sp.BotAPI(),
			Game:      sp.GameService(ctx),
			Ledger:    sp.LedgerService(ctx),
			GameCfg:   sp.GameCfg(),
			WebAppURL: sp.TelegramCfg().WebAppURL(),
		})
	}
	return sp.bot
}

func (sp *ServiceProvider) AuthHandler(ctx context.Context) *authAPI.Handler {
	if sp.authHand == nil {
		sp.authHand = authAPI.NewHandler(authAPI.HandlerDeps{Serv: sp.AuthService(ctx)})
	}
	return sp.authHand
}

func (sp *ServiceProvider) UserHandler(ctx context.Context) *userAPI.Handler {
	if sp.userHand == nil {
		sp.userHand = userAPI.NewHandler(userAPI.HandlerDeps{Ledger: sp.LedgerService(ctx)})
	}
	return sp.userHand
}

func (sp *ServiceProvider) GameHandler(ctx context.Context) *gameAPI.Handler {
	if sp.gameHand == nil {
		sp.gameHand = gameAPI.NewHandler(gameAPI.HandlerDeps{
			Serv:   sp.GameService(ctx),
			Ledger: sp.LedgerService(ctx),
		})
	}
	return sp.gameHand
}

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		r.Use(chimw.RequestID)
		r.Use(chimw.RealIP)
		r.Use(middleware.Logger)
		r.Use(chimw.Recoverer)

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		gameHandler := sp.GameHandler(ctx)
		userHandler := sp.UserHandler(ctx)
		authHandler := sp.AuthHandler(ctx)

		r.Get("/health", gameHandler.Health)

		r.Route("/api", func(api chi.Router) {
			// Public endpoints
			api.Post("/auth/telegram", authHandler.Telegram)
			api.Get("/game/history", gameHandler.History)
			api.Get("/game/online", gameHandler.Online)
			api.Get("/house/stats", gameHandler.HouseStats)

			// Player endpoints
			api.Group(func(rr chi.Router) {
				rr.Use(middleware.Auth(sp.JWTCfg().AccessTokenSecretKey()))

				rr.Get("/user", userHandler.Account)
				rr.Post("/user/top-up", userHandler.TopUp)

				rr.Post("/game/bet", gameHandler.Bet)
				rr.Post("/game/cash-out", gameHandler.CashOut)
				rr.Post("/game/cancel", gameHandler.Cancel)
				rr.Get("/game/state", gameHandler.State)
			})
		})

		sp.router = r
	}

	return sp.router
}

// Close Освобождает пул соединений
func (sp *ServiceProvider) Close() {
	if sp.dbClient != nil {
		sp.dbClient.Close()
	}
}

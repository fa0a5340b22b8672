package app

import (
	"crash_backend/internal/config"
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	ServiceProvider *ServiceProvider
}

func NewApp() *App {
	return &App{}
}

func (s *App) initServiceProvider() {
	s.ServiceProvider = newServiceProvider()
}

func (s *App) initLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339Nano})
	logrus.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(s.ServiceProvider.LogCfg().Level())
	if err != nil {
		logrus.WithError(err).Warn("unknown log level, using info")
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}

// Run Поднимает HTTP сервер и бота, на SIGINT/SIGTERM останавливает всё по порядку
func (s *App) Run() error {
	err := config.Load(".env")
	s.initServiceProvider()
	s.initLogger()
	if err != nil {
		logrus.WithError(err).Debug(".env not loaded")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sp := s.ServiceProvider
	defer sp.Close()

	server := &http.Server{
		Addr:              sp.HTTPCfg().Address(),
		Handler:           sp.Router(ctx),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logrus.WithField("addr", server.Addr).Info("starting server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	if bot := sp.Bot(ctx); bot != nil {
		g.Go(func() error {
			return bot.Run(gctx)
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		logrus.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		// Сначала закрываем вход, потом гасим раунды
		httpErr := server.Shutdown(shutdownCtx)
		gameErr := sp.GameService(ctx).Shutdown(shutdownCtx)

		return errors.Join(httpErr, gameErr)
	})

	return g.Wait()
}

package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/nacbot/internal/config"
	"github.com/rocketscienceinc/nacbot/internal/engine"
	"github.com/rocketscienceinc/nacbot/internal/repository"
	"github.com/rocketscienceinc/nacbot/internal/repository/storage"
	"github.com/rocketscienceinc/nacbot/internal/service"
	"github.com/rocketscienceinc/nacbot/internal/usecase"
	"github.com/rocketscienceinc/nacbot/transport/rest"
	"github.com/rocketscienceinc/nacbot/transport/websocket"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the analysis API and the game socket until a signal arrives.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	redisAddrString := conf.Redis.GetRedisAddr()
	if conf.Redis.Host == "" {
		return ErrAddrNotFound
	}

	redisStorage, err := storage.New(ctx, redisAddrString)
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err = redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	moveEngine := engine.New(logger, engine.Options{
		Heuristics: conf.Engine.Heuristics,
		Workers:    conf.Engine.Workers,
	})

	gameRepo := repository.NewGameRepository(redisStorage, conf.Redis.SessionTTL)
	botService := service.NewBotService(logger, moveEngine)
	gameUseCase := usecase.NewGameManager(logger, gameRepo, botService)

	// run HTTP server
	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		httpErrCh <- rest.Start(ctx, conf.HTTPPort, rest.NewRouter(logger, moveEngine))
	}()

	// run Websocket server
	wsErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting WebSocket server", "port", conf.SocketPort)
		wsErrCh <- websocket.New(logger, gameUseCase, conf.AllowedOrigins).Start(ctx, conf.SocketPort)
	}()

	select {
	case err = <-httpErrCh:
		cancel()
		<-wsErrCh
		if err != nil {
			return fmt.Errorf("HTTP server error: %w", err)
		}
	case err = <-wsErrCh:
		cancel()
		<-httpErrCh
		if err != nil {
			return fmt.Errorf("WebSocket server error: %w", err)
		}
	}

	log.Info("Application stopped")

	return nil
}

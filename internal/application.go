package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/config"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/repository"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/service"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/transport/tui"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/usecase"
)

var ErrUnknownStorage = errors.New("unknown storage")

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	settings, err := conf.Game.Settings()
	if err != nil {
		return fmt.Errorf("invalid game config: %w", err)
	}

	sessionRepo, closeRepo, err := newSessionRepository(ctx, log, conf)
	if err != nil {
		return err
	}
	defer closeRepo()

	gameUseCase := usecase.NewGameManager(logger, sessionRepo, service.NewBotService())
	shell := tui.New(logger, gameUseCase, settings, conf.Game.ComputerDelay)

	log.Info("Starting terminal shell", "storage", conf.Storage, "humanMark", settings.HumanMark, "movesFirst", settings.MovesFirst)

	if err = shell.Run(ctx); err != nil {
		return fmt.Errorf("terminal shell error: %w", err)
	}

	log.Info("Terminal shell stopped")

	return nil
}

func newSessionRepository(ctx context.Context, log *slog.Logger, conf *config.Config) (repository.SessionRepository, func(), error) {
	switch conf.Storage {
	case config.StorageMemory:
		return repository.NewMemorySessionRepository(), func() {}, nil
	case config.StorageRedis:
		redisStorage, err := storage.NewRedisStorage(ctx, conf.Redis.GetRedisAddr())
		if err != nil {
			return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
		}

		closeRepo := func() {
			if err := redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}

		return repository.NewSessionRepository(redisStorage.Connection, conf.Redis.SessionTTL), closeRepo, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownStorage, conf.Storage)
	}
}

package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

type sessionRepoDep interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

type botServiceDep interface {
	MakeTurn(game *entity.Game) error
}

// GameManager owns the turn loop of every session. All operations on one
// session run under that session's lock, so a load-modify-store cycle is
// never interleaved with another move.
type GameManager struct {
	logger *slog.Logger

	sessionRepo sessionRepoDep
	botService  botServiceDep

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewGameManager(logger *slog.Logger, sessionRepo sessionRepoDep, botService botServiceDep) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),

		sessionRepo: sessionRepo,
		botService:  botService,

		locks: make(map[string]*sync.Mutex),
	}
}

// StartSession creates a session with an empty board. When the computer
// opens, the returned game is already pending.
func (that *GameManager) StartSession(ctx context.Context, settings entity.Settings) (*entity.Game, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	game := entity.NewGame(uuid.NewString(), settings)

	if err := that.updateGame(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	that.logger.Info("session started",
		"gameID", game.ID, "humanMark", settings.HumanMark.String(), "movesFirst", settings.MovesFirst)

	return game, nil
}

func (that *GameManager) GetGame(ctx context.Context, id string) (*entity.Game, error) {
	return that.getGameByID(ctx, id)
}

// MakeTurn places the human's mark. Rejected moves leave the session
// unchanged; the returned game is the stored state either way.
func (that *GameManager) MakeTurn(ctx context.Context, id string, cell int) (*entity.Game, error) {
	unlock := that.lock(id)
	defer unlock()

	log := that.logger.With("method", "MakeTurn", "gameID", id, "cell", cell)

	game, err := that.getGameByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if game.Pending {
		return game, apperror.ErrComputerThinking
	}

	if err = game.ConfirmOngoingState(); err != nil {
		return game, err
	}

	if game.SideToMove() != entity.SideHuman {
		return game, apperror.ErrNotYourTurn
	}

	if err = game.MakeTurn(game.Settings.HumanMark, cell); err != nil {
		log.Debug("turn rejected", "error", err)
		return game, fmt.Errorf("failed to make turn: %w", err)
	}

	if game.IsOngoing() {
		game.Pending = true
	}

	if err = that.updateGame(ctx, game); err != nil {
		return nil, err
	}

	that.logFinished(log, game)

	return game, nil
}

// ComputerTurn applies the computer's reply to a pending session.
func (that *GameManager) ComputerTurn(ctx context.Context, id string) (*entity.Game, error) {
	unlock := that.lock(id)
	defer unlock()

	log := that.logger.With("method", "ComputerTurn", "gameID", id)

	game, err := that.getGameByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !game.Pending {
		return game, apperror.ErrGameNotPending
	}

	if err = that.botService.MakeTurn(game); err != nil {
		return nil, fmt.Errorf("failed to make computer turn: %w", err)
	}

	game.Pending = false

	if err = that.updateGame(ctx, game); err != nil {
		return nil, err
	}

	that.logFinished(log, game)

	return game, nil
}

// NewGame clears the board and keeps settings and score.
func (that *GameManager) NewGame(ctx context.Context, id string) (*entity.Game, error) {
	return that.restart(ctx, id, func(*entity.Game) {})
}

// Configure changes the symbols or the move order and starts a new game.
func (that *GameManager) Configure(ctx context.Context, id string, settings entity.Settings) (*entity.Game, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	return that.restart(ctx, id, func(game *entity.Game) {
		game.Settings = settings
	})
}

// ResetScores zeroes the tally and starts a new game.
func (that *GameManager) ResetScores(ctx context.Context, id string) (*entity.Game, error) {
	return that.restart(ctx, id, func(game *entity.Game) {
		game.Score = entity.Score{}
	})
}

// EndSession removes the session from storage.
func (that *GameManager) EndSession(ctx context.Context, id string) error {
	unlock := that.lock(id)
	defer unlock()

	if err := that.sessionRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	that.mu.Lock()
	delete(that.locks, id)
	that.mu.Unlock()

	that.logger.Info("session ended", "gameID", id)

	return nil
}

func (that *GameManager) restart(ctx context.Context, id string, change func(*entity.Game)) (*entity.Game, error) {
	unlock := that.lock(id)
	defer unlock()

	game, err := that.getGameByID(ctx, id)
	if err != nil {
		return nil, err
	}

	change(game)
	game.Restart()

	if err = that.updateGame(ctx, game); err != nil {
		return nil, err
	}

	return game, nil
}

func (that *GameManager) lock(id string) func() {
	that.mu.Lock()
	sessionLock, ok := that.locks[id]
	if !ok {
		sessionLock = &sync.Mutex{}
		that.locks[id] = sessionLock
	}
	that.mu.Unlock()

	sessionLock.Lock()

	return sessionLock.Unlock
}

func (that *GameManager) logFinished(log *slog.Logger, game *entity.Game) {
	if !game.IsFinished() {
		return
	}

	log.Info("game finished",
		"winner", game.Winner,
		"playerScore", game.Score.Player,
		"computerScore", game.Score.Computer,
		"drawScore", game.Score.Draw,
	)
}

func (that *GameManager) getGameByID(ctx context.Context, id string) (*entity.Game, error) {
	game, err := that.sessionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

func (that *GameManager) updateGame(ctx context.Context, game *entity.Game) error {
	if err := that.sessionRepo.CreateOrUpdate(ctx, game); err != nil {
		return fmt.Errorf("failed to update game: %w", err)
	}

	return nil
}

// Package tui is the terminal front end: it renders a session and turns key
// presses into controller calls.
package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

type Shell struct {
	logger *slog.Logger

	games    gameUseCase
	settings entity.Settings
	delay    time.Duration

	options []tea.ProgramOption
}

// New creates a shell that starts sessions with settings and waits delay
// before asking the controller for the computer's reply.
func New(logger *slog.Logger, games gameUseCase, settings entity.Settings, delay time.Duration, options ...tea.ProgramOption) *Shell {
	return &Shell{
		logger:   logger.With("component", "tui"),
		games:    games,
		settings: settings,
		delay:    delay,
		options:  options,
	}
}

// Run plays one session until the user quits or ctx is cancelled.
func (that *Shell) Run(ctx context.Context) error {
	log := that.logger.With("method", "Run")

	game, err := that.games.StartSession(ctx, that.settings)
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}

	defer func() {
		// the session must be removed even when ctx is already cancelled
		if err := that.games.EndSession(context.WithoutCancel(ctx), game.ID); err != nil {
			log.Error("failed to end session", "gameID", game.ID, "error", err)
		}
	}()

	options := append([]tea.ProgramOption{tea.WithContext(ctx)}, that.options...)
	program := tea.NewProgram(newModel(ctx, that.logger, that.games, game, that.delay), options...)

	if _, err = program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			log.Info("shell stopped by context", "reason", ctx.Err())
			return nil
		}
		return fmt.Errorf("terminal program failed: %w", err)
	}

	return nil
}

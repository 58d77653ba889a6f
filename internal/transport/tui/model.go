package tui

import (
	"context"
	"errors"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

type gameUseCase interface {
	StartSession(ctx context.Context, settings entity.Settings) (*entity.Game, error)
	MakeTurn(ctx context.Context, id string, cell int) (*entity.Game, error)
	ComputerTurn(ctx context.Context, id string) (*entity.Game, error)
	NewGame(ctx context.Context, id string) (*entity.Game, error)
	Configure(ctx context.Context, id string, settings entity.Settings) (*entity.Game, error)
	ResetScores(ctx context.Context, id string) (*entity.Game, error)
	EndSession(ctx context.Context, id string) error
}

// gameMsg carries the result of a controller call back into the model.
type gameMsg struct {
	game *entity.Game
	err  error
}

// computerTurnMsg fires once the thinking delay has elapsed.
type computerTurnMsg struct{}

type model struct {
	ctx    context.Context
	logger *slog.Logger

	games gameUseCase
	delay time.Duration

	game     *entity.Game
	cursor   int
	thinking bool
	status   string
}

func newModel(ctx context.Context, logger *slog.Logger, games gameUseCase, game *entity.Game, delay time.Duration) model {
	return model{
		ctx:    ctx,
		logger: logger,
		games:  games,
		delay:  delay,
		game:   game,
		cursor: 4,

		thinking: game.Pending,
	}
}

func (m model) Init() tea.Cmd {
	if m.thinking {
		return m.thinkCmd()
	}
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case gameMsg:
		return m.handleGame(msg)
	case computerTurnMsg:
		m.thinking = false
		return m, m.call(func(ctx context.Context, id string) (*entity.Game, error) {
			return m.games.ComputerTurn(ctx, id)
		})
	}

	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key := msg.String(); key {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor >= 3 {
			m.cursor -= 3
		}
	case "down", "j":
		if m.cursor < 6 {
			m.cursor += 3
		}
	case "left", "h":
		if m.cursor%3 > 0 {
			m.cursor--
		}
	case "right", "l":
		if m.cursor%3 < 2 {
			m.cursor++
		}
	case "enter", " ":
		return m, m.place(m.cursor)
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		m.cursor = int(key[0] - '1')
		return m, m.place(m.cursor)
	case "n":
		return m, m.call(m.games.NewGame)
	case "r":
		return m, m.call(m.games.ResetScores)
	case "s":
		settings := m.game.Settings
		settings.HumanMark = settings.ComputerMark()
		return m, m.configure(settings)
	case "f":
		settings := m.game.Settings
		settings.MovesFirst = settings.MovesFirst.Opponent()
		return m, m.configure(settings)
	}

	return m, nil
}

func (m model) handleGame(msg gameMsg) (tea.Model, tea.Cmd) {
	if msg.game != nil {
		m.game = msg.game
	}

	if msg.err != nil {
		// clicks on taken cells or during the computer's turn are ignored
		if errors.Is(msg.err, apperror.ErrCellOccupied) ||
			errors.Is(msg.err, apperror.ErrComputerThinking) ||
			errors.Is(msg.err, apperror.ErrGameNotPending) {
			return m, nil
		}

		m.logger.Error("game action failed", "gameID", m.game.ID, "error", msg.err)
		m.status = msg.err.Error()

		return m, nil
	}

	m.status = ""

	if m.game.Pending && !m.thinking {
		m.thinking = true
		return m, m.thinkCmd()
	}

	return m, nil
}

func (m model) place(cell int) tea.Cmd {
	return m.call(func(ctx context.Context, id string) (*entity.Game, error) {
		return m.games.MakeTurn(ctx, id, cell)
	})
}

func (m model) configure(settings entity.Settings) tea.Cmd {
	return m.call(func(ctx context.Context, id string) (*entity.Game, error) {
		return m.games.Configure(ctx, id, settings)
	})
}

func (m model) call(action func(ctx context.Context, id string) (*entity.Game, error)) tea.Cmd {
	ctx, id := m.ctx, m.game.ID

	return func() tea.Msg {
		game, err := action(ctx, id)
		return gameMsg{game: game, err: err}
	}
}

func (m model) thinkCmd() tea.Cmd {
	return tea.Tick(m.delay, func(time.Time) tea.Msg {
		return computerTurnMsg{}
	})
}

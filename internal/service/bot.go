package service

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

type BotService interface {
	MakeTurn(game *entity.Game) error
}

type botService struct{}

func NewBotService() BotService {
	return &botService{}
}

// MakeTurn plays the computer's optimal move on game.
func (that *botService) MakeTurn(game *entity.Game) error {
	if err := game.Settings.Validate(); err != nil {
		return fmt.Errorf("bot cannot play this game: %w", err)
	}

	searcher := tictactoe.NewSearcher(game.Settings.HumanMark)

	decision := searcher.Search(game.Board, entity.SideComputer)
	if !decision.HasMove() {
		return apperror.ErrNoAvailableMoves
	}

	if err := game.MakeTurn(game.Settings.ComputerMark(), decision.Index); err != nil {
		return fmt.Errorf("bot failed to make turn: %w", err)
	}

	return nil
}

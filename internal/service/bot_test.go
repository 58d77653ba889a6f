package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

func TestBotService_MakeTurn(t *testing.T) {
	t.Run("Bot blocks the human's row", func(t *testing.T) {
		// Given: the human (X) threatens the top row and it is O's turn
		game := entity.NewGame("g1", entity.DefaultSettings())
		game.Board = entity.Board{
			entity.PlayerX, entity.PlayerX, entity.EmptyCell,
			entity.EmptyCell, entity.PlayerO, entity.EmptyCell,
		}
		game.Turn = entity.PlayerO

		// When: the bot moves
		err := NewBotService().MakeTurn(game)

		// Then: O takes cell 2 and the turn returns to the human
		require.NoError(t, err)
		assert.Equal(t, entity.PlayerO, game.Board[2])
		assert.Equal(t, entity.PlayerX, game.Turn)
		assert.Equal(t, entity.StatusOngoing, game.Status)
	})

	t.Run("Bot opens when it moves first", func(t *testing.T) {
		// Given: the computer plays X and opens the game
		game := entity.NewGame("g2", entity.Settings{HumanMark: entity.PlayerO, MovesFirst: entity.SideComputer})

		// When: the bot moves
		err := NewBotService().MakeTurn(game)

		// Then: X is placed in the first cell of equal value
		require.NoError(t, err)
		assert.Equal(t, entity.PlayerX, game.Board[0])
		assert.Equal(t, entity.PlayerO, game.Turn)
	})

	t.Run("Bot winning move finishes the game", func(t *testing.T) {
		// Given: O can complete the middle row
		game := entity.NewGame("g3", entity.DefaultSettings())
		game.Board = entity.Board{
			entity.PlayerX, entity.PlayerX, entity.EmptyCell,
			entity.PlayerO, entity.PlayerO, entity.EmptyCell,
			entity.PlayerX, entity.EmptyCell, entity.EmptyCell,
		}
		game.Turn = entity.PlayerO

		// When: the bot moves
		require.NoError(t, NewBotService().MakeTurn(game))

		// Then: the computer wins
		assert.Equal(t, entity.WinnerComputer, game.Winner)
		assert.Equal(t, entity.Score{Computer: 1}, game.Score)
	})

	t.Run("No available moves", func(t *testing.T) {
		// Given: a finished game
		game := entity.NewGame("g4", entity.DefaultSettings())
		game.Board = entity.Board{
			entity.PlayerX, entity.PlayerO, entity.PlayerX,
			entity.PlayerX, entity.PlayerO, entity.PlayerO,
			entity.PlayerO, entity.PlayerX, entity.PlayerX,
		}

		// When: the bot is asked to move
		err := NewBotService().MakeTurn(game)

		// Then: ErrNoAvailableMoves is returned
		assert.ErrorIs(t, err, apperror.ErrNoAvailableMoves)
	})

	t.Run("Game without a human mark is refused", func(t *testing.T) {
		// Given: a stored game whose settings lost the human mark
		game := entity.NewGame("g5", entity.Settings{MovesFirst: entity.SideComputer})

		// When: the bot is asked to move
		err := NewBotService().MakeTurn(game)

		// Then: ErrInvalidSettings is returned and the board is untouched
		require.ErrorIs(t, err, apperror.ErrInvalidSettings)
		assert.Equal(t, entity.Board{}, game.Board)
	})
}

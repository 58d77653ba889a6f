package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

const (
	x = entity.PlayerX
	o = entity.PlayerO
	e = entity.EmptyCell
)

func TestSearcher_Terminal(t *testing.T) {
	searcher := NewSearcher(entity.PlayerX)

	t.Run("Human win scores -10 without a move", func(t *testing.T) {
		board := entity.Board{x, x, x, o, o, e, e, e, e}

		decision := searcher.Search(board, entity.SideComputer)

		assert.Equal(t, Decision{Index: NoMove, Score: LossScore}, decision)
		assert.False(t, decision.HasMove())
	})

	t.Run("Computer win scores +10 without a move", func(t *testing.T) {
		board := entity.Board{o, o, o, x, x, e, x, e, e}

		decision := searcher.Search(board, entity.SideHuman)

		assert.Equal(t, Decision{Index: NoMove, Score: WinScore}, decision)
	})

	t.Run("Draw scores 0 without a move", func(t *testing.T) {
		board := entity.Board{x, o, x, x, o, o, o, x, x}

		decision := searcher.Search(board, entity.SideComputer)

		assert.Equal(t, Decision{Index: NoMove, Score: DrawScore}, decision)
	})

	t.Run("Sign follows the human's mark, not the symbol", func(t *testing.T) {
		// Given: the human plays O and X has the top row
		board := entity.Board{x, x, x, o, o, e, e, e, e}

		// When: searching with the marks swapped
		decision := NewSearcher(entity.PlayerO).Search(board, entity.SideHuman)

		// Then: the X line belongs to the computer
		assert.Equal(t, WinScore, decision.Score)
	})
}

func TestSearcher_Scenarios(t *testing.T) {
	t.Run("Empty board, computer opens as O", func(t *testing.T) {
		// Given: an empty board with the human playing X
		searcher := NewSearcher(entity.PlayerX)

		// When: the computer searches first
		decision := searcher.Search(entity.Board{}, entity.SideComputer)

		// Then: a corner or the center is chosen and the game is a draw under best play
		assert.Contains(t, []int{0, 2, 4, 6, 8}, decision.Index)
		assert.Equal(t, 0, decision.Index, "all openings draw, the lowest index wins the tie")
		assert.Equal(t, DrawScore, decision.Score)
	})

	t.Run("Blocks an immediate threat", func(t *testing.T) {
		// Given: X threatens the top row and O holds the center
		board := entity.Board{
			x, x, e,
			e, o, e,
			e, e, e,
		}

		// When: the computer (O) searches
		decision := NewSearcher(entity.PlayerX).Search(board, entity.SideComputer)

		// Then: it blocks at 2 and the game is held to a draw
		assert.Equal(t, 2, decision.Index)
		assert.GreaterOrEqual(t, decision.Score, DrawScore)
		assert.Equal(t, DrawScore, decision.Score)
	})

	t.Run("Takes a win over a block", func(t *testing.T) {
		// Given: both sides threaten a row and the computer is to move
		board := entity.Board{
			x, x, e,
			o, o, e,
			x, e, e,
		}

		// When: the computer (O) searches
		decision := NewSearcher(entity.PlayerX).Search(board, entity.SideComputer)

		// Then: it completes its own row
		assert.Equal(t, 5, decision.Index)
		assert.Equal(t, WinScore, decision.Score)
	})

	t.Run("Human side minimizes", func(t *testing.T) {
		// Given: O threatens the middle row and the human (X) is to move
		board := entity.Board{
			x, e, e,
			o, o, e,
			x, e, e,
		}

		// When: searching for the human
		decision := NewSearcher(entity.PlayerX).Search(board, entity.SideHuman)

		// Then: X blocks at 5 and the position is not lost
		assert.Equal(t, 5, decision.Index)
		assert.LessOrEqual(t, decision.Score, DrawScore)
	})

	t.Run("Full board without outcome degrades to no move", func(t *testing.T) {
		// a board the evaluation treats as a draw has no move to offer either
		decision := NewSearcher(entity.PlayerX).Search(entity.Board{x, o, x, x, o, o, o, x, x}, entity.SideHuman)

		assert.Equal(t, NoMove, decision.Index)
		assert.Equal(t, 0, decision.Score)
	})
}

func TestSearcher_WithoutPlayerMark(t *testing.T) {
	for _, side := range []entity.Side{entity.SideComputer, entity.SideHuman} {
		t.Run(string(side), func(t *testing.T) {
			// Given: a searcher whose human mark is the empty cell
			searcher := NewSearcher(entity.EmptyCell)

			// When: an open board is searched
			decision := searcher.Search(entity.Board{}, side)

			// Then: the search stops at once without a move
			assert.False(t, decision.HasMove())
			assert.Equal(t, DrawScore, decision.Score)
		})
	}
}

func TestSearcher_DoesNotMutateInput(t *testing.T) {
	board := entity.Board{x, e, e, e, o, e, e, e, e}
	before := board

	NewSearcher(entity.PlayerX).Search(board, entity.SideComputer)

	assert.Equal(t, before, board)
}

func TestSearcher_SelfPlayDraws(t *testing.T) {
	for _, first := range []entity.Side{entity.SideHuman, entity.SideComputer} {
		t.Run(string(first)+" opens", func(t *testing.T) {
			// Given: both sides choose their moves with the search
			settings := entity.Settings{HumanMark: entity.PlayerX, MovesFirst: first}
			searcher := NewSearcher(settings.HumanMark)
			board := entity.Board{}
			side := first

			// When: the game is played out
			for !board.Evaluate().IsTerminal() {
				decision := searcher.Search(board, side)
				require.True(t, decision.HasMove())

				var err error
				board, err = board.ApplyMove(decision.Index, settings.MarkOf(side))
				require.NoError(t, err)

				side = side.Opponent()
			}

			// Then: optimal against optimal is always a draw
			assert.Equal(t, entity.Draw, board.Evaluate().Result)
		})
	}
}

// TestSearcher_NeverLoses walks every possible human reply against the
// computer's choices and checks that the computer never loses or picks an
// occupied cell.
func TestSearcher_NeverLoses(t *testing.T) {
	for _, first := range []entity.Side{entity.SideHuman, entity.SideComputer} {
		for _, human := range []entity.Mark{entity.PlayerX, entity.PlayerO} {
			settings := entity.Settings{HumanMark: human, MovesFirst: first}

			t.Run(string(first)+" opens, human plays "+human.String(), func(t *testing.T) {
				searcher := NewSearcher(human)
				games := walk(t, searcher, settings, entity.Board{}, first)

				assert.Positive(t, games)
			})
		}
	}
}

func walk(t *testing.T, searcher *Searcher, settings entity.Settings, board entity.Board, side entity.Side) int {
	t.Helper()

	outcome := board.Evaluate()
	if outcome.IsTerminal() {
		require.NotEqual(t, settings.HumanMark, outcome.Winner, "computer lost on %v", board)
		return 1
	}

	if side == entity.SideComputer {
		decision := searcher.Search(board, side)
		require.True(t, decision.HasMove())
		require.Equal(t, entity.EmptyCell, board[decision.Index], "occupied index %d on %v", decision.Index, board)
		require.GreaterOrEqual(t, decision.Score, DrawScore)

		next, err := board.ApplyMove(decision.Index, settings.ComputerMark())
		require.NoError(t, err)

		return walk(t, searcher, settings, next, side.Opponent())
	}

	games := 0
	for _, index := range board.EmptyCells() {
		next, err := board.ApplyMove(index, settings.HumanMark)
		require.NoError(t, err)

		games += walk(t, searcher, settings, next, side.Opponent())
	}

	return games
}

// Package tictactoe implements the exhaustive minimax search used by the
// computer opponent.
package tictactoe

import (
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

const (
	WinScore  = 10
	LossScore = -10
	DrawScore = 0

	// NoMove is the Decision index for positions without a move to make.
	NoMove = -1
)

// Decision is the move chosen by Search and its game-theoretic value.
// Positive scores favor the computer, negative scores favor the human.
type Decision struct {
	Index int
	Score int
}

func (that Decision) HasMove() bool {
	return that.Index != NoMove
}

type candidate struct {
	index int
	score int
}

// Searcher scores positions from the computer's point of view. It only needs
// to know which mark the human plays; the side to move is passed per call.
type Searcher struct {
	settings entity.Settings
}

func NewSearcher(humanMark entity.Mark) *Searcher {
	return &Searcher{
		settings: entity.Settings{HumanMark: humanMark},
	}
}

// Search returns the optimal move for side assuming both sides play optimally
// afterwards. The full game tree is explored without pruning; among moves of
// equal value the lowest index wins. A searcher built without a player mark
// has nothing to place and returns NoMove.
func (that *Searcher) Search(board entity.Board, side entity.Side) Decision {
	switch outcome := board.Evaluate(); outcome.Result {
	case entity.Win:
		if outcome.Winner == that.settings.HumanMark {
			return Decision{Index: NoMove, Score: LossScore}
		}
		return Decision{Index: NoMove, Score: WinScore}
	case entity.Draw:
		return Decision{Index: NoMove, Score: DrawScore}
	case entity.InProgress:
	}

	mark := that.settings.MarkOf(side)
	if !mark.IsPlayer() {
		return Decision{Index: NoMove, Score: DrawScore}
	}

	cells := board.EmptyCells()
	if len(cells) == 0 {
		return Decision{Index: NoMove, Score: DrawScore}
	}

	candidates := make([]candidate, 0, len(cells))

	for _, index := range cells {
		board[index] = mark
		child := that.Search(board, side.Opponent())
		board[index] = entity.EmptyCell

		candidates = append(candidates, candidate{index: index, score: child.Score})
	}

	best := pickBest(candidates, side == entity.SideComputer)

	return Decision{Index: best.index, Score: best.score}
}

// pickBest keeps the first candidate reaching the extreme score.
func pickBest(candidates []candidate, maximize bool) candidate {
	best := candidates[0]
	for _, c := range candidates[1:] {
		if maximize && c.score > best.score || !maximize && c.score < best.score {
			best = c
		}
	}

	return best
}

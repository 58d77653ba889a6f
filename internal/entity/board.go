package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
)

// Mark is the content of a single board cell.
type Mark uint8

const (
	EmptyCell Mark = iota
	PlayerX
	PlayerO
)

// BoardSize is the number of cells on the 3x3 board.
const BoardSize = 9

// WinCombos lists every line of three cells: rows, columns, then diagonals.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// ParseMark converts "X" or "O" into a Mark.
func ParseMark(value string) (Mark, error) {
	switch value {
	case "X", "x":
		return PlayerX, nil
	case "O", "o":
		return PlayerO, nil
	case "":
		return EmptyCell, nil
	default:
		return EmptyCell, fmt.Errorf("%w: %q", apperror.ErrInvalidMark, value)
	}
}

func (that Mark) String() string {
	switch that {
	case PlayerX:
		return "X"
	case PlayerO:
		return "O"
	default:
		return ""
	}
}

// Opponent returns the other player's mark. The empty cell has no opponent.
func (that Mark) Opponent() Mark {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return EmptyCell
	}
}

func (that Mark) IsPlayer() bool {
	return that == PlayerX || that == PlayerO
}

func (that Mark) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

func (that *Mark) UnmarshalText(text []byte) error {
	mark, err := ParseMark(string(text))
	if err != nil {
		return err
	}

	*that = mark

	return nil
}

// Result classifies a board position.
type Result int

const (
	InProgress Result = iota
	Win
	Draw
)

// Outcome is the evaluation of a board. Winner is set only for Win.
type Outcome struct {
	Result Result
	Winner Mark
}

func (that Outcome) IsTerminal() bool {
	return that.Result != InProgress
}

// Board holds the 9 cells in row-major order: row = index/3, col = index%3.
type Board [BoardSize]Mark

// ApplyMove returns a copy of the board with mark placed at index.
// The receiver is never modified. Whose turn it is is not checked here.
func (that Board) ApplyMove(index int, mark Mark) (Board, error) {
	if index < 0 || index >= BoardSize {
		return that, fmt.Errorf("%w: cell %d", apperror.ErrIndexOutOfRange, index)
	}

	if !mark.IsPlayer() {
		return that, fmt.Errorf("%w: cannot place an empty cell", apperror.ErrInvalidMark)
	}

	if that[index] != EmptyCell {
		return that, apperror.ErrCellOccupied
	}

	that[index] = mark

	return that, nil
}

// Evaluate reports a win before it considers a draw, so a full board with a
// completed line is always a Win.
func (that Board) Evaluate() Outcome {
	for _, combo := range WinCombos {
		a, b, c := that[combo[0]], that[combo[1]], that[combo[2]]
		if a != EmptyCell && a == b && b == c {
			return Outcome{Result: Win, Winner: a}
		}
	}

	// the game will continue until all the squares are full
	for _, cell := range that {
		if cell == EmptyCell {
			return Outcome{Result: InProgress}
		}
	}

	return Outcome{Result: Draw}
}

// EmptyCells returns the indexes of free cells in ascending order.
func (that Board) EmptyCells() []int {
	cells := make([]int, 0, BoardSize)
	for i, cell := range that {
		if cell == EmptyCell {
			cells = append(cells, i)
		}
	}

	return cells
}

package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
)

const (
	StatusOngoing  = "ongoing"
	StatusFinished = "finished"

	WinnerPlayer   = "player"
	WinnerComputer = "computer"
	WinnerDraw     = "draw"
	WinnerNone     = ""
)

// Side identifies who controls a mark, independently of which mark it is.
type Side string

const (
	SideHuman    Side = "human"
	SideComputer Side = "computer"
)

func (that Side) Opponent() Side {
	if that == SideHuman {
		return SideComputer
	}
	return SideHuman
}

// Settings are fixed for the lifetime of one game and applied on reset.
type Settings struct {
	HumanMark  Mark `json:"human_mark"`
	MovesFirst Side `json:"moves_first"`
}

func DefaultSettings() Settings {
	return Settings{
		HumanMark:  PlayerX,
		MovesFirst: SideHuman,
	}
}

func (that Settings) ComputerMark() Mark {
	return that.HumanMark.Opponent()
}

func (that Settings) Validate() error {
	if !that.HumanMark.IsPlayer() {
		return fmt.Errorf("%w: human mark %q", apperror.ErrInvalidSettings, that.HumanMark)
	}

	if that.MovesFirst != SideHuman && that.MovesFirst != SideComputer {
		return fmt.Errorf("%w: moves first %q", apperror.ErrInvalidSettings, that.MovesFirst)
	}

	return nil
}

// MarkOf returns the mark played by side.
func (that Settings) MarkOf(side Side) Mark {
	if side == SideHuman {
		return that.HumanMark
	}
	return that.ComputerMark()
}

// Score is the tally of finished games within one session.
type Score struct {
	Player   int `json:"player"`
	Computer int `json:"computer"`
	Draw     int `json:"draw"`
}

// Game is the state of a session: the current board plus everything needed
// to continue it. Pending is raised after the human moves and stays up until
// the computer's reply has been applied.
type Game struct {
	ID       string   `json:"id"`
	Board    Board    `json:"board"`
	Turn     Mark     `json:"player_turn"`
	Status   string   `json:"status"`
	Winner   string   `json:"winner"`
	Settings Settings `json:"settings"`
	Pending  bool     `json:"pending"`
	Score    Score    `json:"score"`
}

func NewGame(id string, settings Settings) *Game {
	game := &Game{
		ID:       id,
		Settings: settings,
	}
	game.Restart()

	return game
}

// Restart clears the board for a new game. Settings and score are kept.
func (that *Game) Restart() {
	that.Board = Board{}
	that.Winner = WinnerNone
	that.Status = StatusOngoing
	that.Turn = that.Settings.MarkOf(that.Settings.MovesFirst)
	that.Pending = that.Settings.MovesFirst == SideComputer
}

// SideToMove returns who owns the mark whose turn it is.
func (that *Game) SideToMove() Side {
	if that.Turn == that.Settings.HumanMark {
		return SideHuman
	}
	return SideComputer
}

// MakeTurn places mark at cell, passes the turn and updates the game status.
// On error the game is left untouched.
func (that *Game) MakeTurn(mark Mark, cell int) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if that.Turn != mark {
		return apperror.ErrNotYourTurn
	}

	board, err := that.Board.ApplyMove(cell, mark)
	if err != nil {
		return err
	}

	that.Board = board
	that.Turn = mark.Opponent()

	that.UpdateGameState()

	return nil
}

// UpdateGameState finishes the game when the board is terminal and counts
// the result once.
func (that *Game) UpdateGameState() {
	if that.IsFinished() {
		return
	}

	outcome := that.Board.Evaluate()

	switch outcome.Result {
	case Win:
		if outcome.Winner == that.Settings.HumanMark {
			that.Winner = WinnerPlayer
			that.Score.Player++
		} else {
			that.Winner = WinnerComputer
			that.Score.Computer++
		}
	case Draw:
		that.Winner = WinnerDraw
		that.Score.Draw++
	case InProgress:
		that.Status = StatusOngoing
		return
	}

	that.Status = StatusFinished
	that.Turn = EmptyCell
	that.Pending = false
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", apperror.ErrUnknownGameStatus, that.Status)
	}
}

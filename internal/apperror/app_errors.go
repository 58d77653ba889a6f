package apperror

import "errors"

var (
	ErrGameFinished      = errors.New("game is already finished")
	ErrNotYourTurn       = errors.New("it's not your turn")
	ErrCellOccupied      = errors.New("cell is already occupied")
	ErrIndexOutOfRange   = errors.New("cell index out of range")
	ErrInvalidMark       = errors.New("invalid mark")
	ErrInvalidSettings   = errors.New("invalid game settings")
	ErrComputerThinking  = errors.New("computer is making its move")
	ErrGameNotPending    = errors.New("no computer move is pending")
	ErrNoAvailableMoves  = errors.New("no available moves")
	ErrUnknownGameStatus = errors.New("unknown game status")
)

package apperror

import "errors"

var (
	ErrGameFinished = errors.New("game is already finished")
	ErrNotYourTurn  = errors.New("it's not your turn")
	ErrCellOccupied = errors.New("cell is already occupied")
	ErrInvalidCell  = errors.New("invalid cell coordinate")
	ErrInvalidMark  = errors.New("invalid mark")
	ErrGameNotFound = errors.New("game not found")
)

package apperror

import "errors"

var (
	ErrInvalidMove  = errors.New("invalid move")
	ErrInvalidInput = errors.New("invalid input")
	ErrGameFinished = errors.New("game is already finished")
)

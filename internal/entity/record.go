package entity

import (
	"time"

	"github.com/google/uuid"
)

type Move struct {
	Player Mark `json:"player"`
	Cell   int  `json:"cell"`
}

// GameRecord is a finished game as it is stored.
type GameRecord struct {
	ID         string          `json:"id"`
	Board      [BoardSize]Mark `json:"board"`
	Winner     Mark            `json:"winner"`
	Moves      []Move          `json:"moves"`
	FinishedAt time.Time       `json:"finished_at"`
}

func NewGameRecord(board *Board, result Result, moves []Move, finishedAt time.Time) *GameRecord {
	return &GameRecord{
		ID:         uuid.NewString(),
		Board:      board.Cells,
		Winner:     result.Winner,
		Moves:      append([]Move(nil), moves...),
		FinishedAt: finishedAt,
	}
}

// IsDraw reports a cat's game.
func (that *GameRecord) IsDraw() bool {
	return that.Winner == Empty
}

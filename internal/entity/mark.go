package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

// Mark is the content of a single cell: one of the two players or Empty.
type Mark string

const (
	Empty   Mark = "*"
	PlayerX Mark = "X"
	PlayerO Mark = "O"
)

// IsPlayer reports whether the mark belongs to a player.
func (that Mark) IsPlayer() bool {
	return that == PlayerX || that == PlayerO
}

// Opponent - returns the other player. Empty has no opponent.
func (that Mark) Opponent() Mark {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return Empty
	}
}

func (that Mark) String() string {
	return string(that)
}

// ParseMark - converts user or config text into a player mark.
func ParseMark(s string) (Mark, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "X":
		return PlayerX, nil
	case "O":
		return PlayerO, nil
	default:
		return Empty, fmt.Errorf("%w: unknown player %q", apperror.ErrInvalidInput, s)
	}
}

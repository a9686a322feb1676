package entity

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

const BoardSize = 9

var (
	ErrInvalidCell   = fmt.Errorf("%w: invalid cell index", apperror.ErrInvalidMove)
	ErrCellOccupied  = fmt.Errorf("%w: cell is already occupied", apperror.ErrInvalidMove)
	ErrInvalidPlayer = errors.New("invalid player mark")

	// WinCombos holds the three rows, three columns and two diagonals in row-major indexes.
	WinCombos = [8][3]int{
		{0, 1, 2},
		{3, 4, 5},
		{6, 7, 8},
		{0, 3, 6},
		{1, 4, 7},
		{2, 5, 8},
		{0, 4, 8},
		{2, 4, 6},
	}
)

// Board is a 3x3 grid stored row-major. Any cell not held by a player counts as free,
// so a zero value Board behaves like an empty one until NewBoard or Clear fills it with Empty.
type Board struct {
	Cells [BoardSize]Mark `json:"cells"`
}

// Result describes how a finished board ended.
type Result struct {
	Winner Mark `json:"winner"`
	Draw   bool `json:"draw"`
}

func NewBoard() *Board {
	board := &Board{}
	board.Clear()

	return board
}

// ValidateMove - checks if player may put a mark on position.
func (that *Board) ValidateMove(player Mark, position int) error {
	if !player.IsPlayer() {
		return fmt.Errorf("%w: %q", ErrInvalidPlayer, player)
	}

	if position < 0 || position >= BoardSize {
		return fmt.Errorf("%w: cell %d", ErrInvalidCell, position)
	}

	if that.Cells[position].IsPlayer() {
		return fmt.Errorf("%w: cell %d", ErrCellOccupied, position)
	}

	return nil
}

// MakeMove places player on position. It returns false and leaves the board untouched
// when the move is not allowed.
func (that *Board) MakeMove(player Mark, position int) bool {
	if err := that.ValidateMove(player, position); err != nil {
		return false
	}

	that.Cells[position] = player

	return true
}

// HasWon reports whether player holds all three cells of any winning combo.
func (that *Board) HasWon(player Mark) bool {
	if !player.IsPlayer() {
		return false
	}

	for _, combo := range WinCombos {
		if that.Cells[combo[0]] == player && that.Cells[combo[1]] == player && that.Cells[combo[2]] == player {
			return true
		}
	}

	return false
}

// GameOver is true once either player has won or no empty cell is left.
// It does not reject a board where both players hold a line.
func (that *Board) GameOver() bool {
	return that.HasWon(PlayerX) || that.HasWon(PlayerO) || that.IsFull()
}

func (that *Board) IsFull() bool {
	for _, cell := range that.Cells {
		if !cell.IsPlayer() {
			return false
		}
	}

	return true
}

// AvailableCells - returns the indexes of empty cells in ascending order.
func (that *Board) AvailableCells() []int {
	cells := make([]int, 0, BoardSize)
	for i, cell := range that.Cells {
		if !cell.IsPlayer() {
			cells = append(cells, i)
		}
	}

	return cells
}

// Result returns the outcome and true when the game is over.
// X is checked first, matching GameOver.
func (that *Board) Result() (Result, bool) {
	switch {
	case that.HasWon(PlayerX):
		return Result{Winner: PlayerX}, true
	case that.HasWon(PlayerO):
		return Result{Winner: PlayerO}, true
	case that.IsFull():
		return Result{Winner: Empty, Draw: true}, true
	default:
		return Result{}, false
	}
}

// Clear resets every cell to Empty.
func (that *Board) Clear() {
	for i := range that.Cells {
		that.Cells[i] = Empty
	}
}

func (that *Board) String() string {
	rows := make([]string, 0, 3)
	for i := 0; i < BoardSize; i += 3 {
		rows = append(rows, fmt.Sprintf("%s %s %s", that.Cells[i], that.Cells[i+1], that.Cells[i+2]))
	}

	return strings.Join(rows, "\n")
}

package service

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const (
	DifficultyEasy = "easy"
	DifficultyHard = "hard"
)

var (
	ErrNoAvailableMoves = errors.New("no available moves")
	ErrUnknownLevel     = errors.New("unknown bot difficulty")

	corners = []int{0, 2, 6, 8}
	sides   = []int{1, 3, 5, 7}
)

const center = 4

type BotService interface {
	ChooseCell(board *entity.Board, mark entity.Mark) (int, error)
}

type botService struct {
	difficulty string
	rnd        *rand.Rand
}

func NewBotService(difficulty string, rnd *rand.Rand) (BotService, error) {
	switch difficulty {
	case DifficultyEasy, DifficultyHard:
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownLevel, difficulty)
	}

	return &botService{
		difficulty: difficulty,
		rnd:        rnd,
	}, nil
}

func (that *botService) ChooseCell(board *entity.Board, mark entity.Mark) (int, error) {
	availableCells := board.AvailableCells()
	if len(availableCells) == 0 {
		return 0, ErrNoAvailableMoves
	}

	if that.difficulty == DifficultyEasy {
		return that.pick(availableCells), nil
	}

	return that.strategicCell(board, mark, availableCells), nil
}

// strategicCell wins if it can, blocks if it must, then prefers center, corners and sides.
func (that *botService) strategicCell(board *entity.Board, mark entity.Mark, availableCells []int) int {
	if cell, ok := findWinningCell(board, mark); ok {
		return cell
	}

	if cell, ok := findWinningCell(board, mark.Opponent()); ok {
		return cell
	}

	if !board.Cells[center].IsPlayer() {
		return center
	}

	for _, group := range [][]int{corners, sides} {
		if free := emptyOf(board, group); len(free) > 0 {
			return that.pick(free)
		}
	}

	return that.pick(availableCells)
}

func (that *botService) pick(cells []int) int {
	if that.rnd == nil {
		return cells[rand.Intn(len(cells))] //nolint: gosec // it's ok
	}

	return cells[that.rnd.Intn(len(cells))]
}

// findWinningCell - returns the empty cell that completes a line of two marks.
func findWinningCell(board *entity.Board, mark entity.Mark) (int, bool) {
	for _, combo := range entity.WinCombos {
		owned, free := 0, -1
		for _, cell := range combo {
			switch current := board.Cells[cell]; {
			case current == mark:
				owned++
			case !current.IsPlayer():
				free = cell
			}
		}

		if owned == 2 && free != -1 {
			return free, true
		}
	}

	return -1, false
}

func emptyOf(board *entity.Board, cells []int) []int {
	free := make([]int, 0, len(cells))
	for _, cell := range cells {
		if !board.Cells[cell].IsPlayer() {
			free = append(free, cell)
		}
	}

	return free
}

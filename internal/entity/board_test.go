package entity

import (
	"strings"
	"testing"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func emptyCells() [BoardSize]Mark {
	return [BoardSize]Mark{Empty, Empty, Empty, Empty, Empty, Empty, Empty, Empty, Empty}
}

func TestNewBoard(t *testing.T) {
	// When: a new board is created
	board := NewBoard()

	// Then: every cell is empty and the game is not over
	require.Equal(t, emptyCells(), board.Cells)
	assert.False(t, board.GameOver())
}

func TestBoard_ZeroValue(t *testing.T) {
	// Given: a board that was never initialized
	board := &Board{}

	// Then: it behaves like an empty board
	assert.False(t, board.IsFull())
	assert.False(t, board.GameOver())
	assert.False(t, board.HasWon(PlayerX))
	assert.Len(t, board.AvailableCells(), BoardSize)

	_, over := board.Result()
	assert.False(t, over)

	// When: a player moves on it
	require.True(t, board.MakeMove(PlayerX, 4))

	// Then: the cell is taken and cannot be played again
	assert.False(t, board.MakeMove(PlayerO, 4))
	assert.Len(t, board.AvailableCells(), BoardSize-1)
}

func TestBoard_MakeMove(t *testing.T) {
	t.Run("Places the mark on an empty cell", func(t *testing.T) {
		// Given: a new board
		board := NewBoard()

		// When: player X moves to cell 4
		ok := board.MakeMove(PlayerX, 4)

		// Then: the move succeeds and only cell 4 changes
		require.True(t, ok)
		expected := emptyCells()
		expected[4] = PlayerX
		assert.Equal(t, expected, board.Cells)
	})

	t.Run("Rejects an occupied cell for every position", func(t *testing.T) {
		for position := 0; position < BoardSize; position++ {
			// Given: a board where position is taken by X
			board := NewBoard()
			require.True(t, board.MakeMove(PlayerX, position))
			before := board.Cells

			// When: either player moves to the same cell
			okX := board.MakeMove(PlayerX, position)
			okO := board.MakeMove(PlayerO, position)

			// Then: both moves fail and the board is unchanged
			assert.False(t, okX)
			assert.False(t, okO)
			assert.Equal(t, before, board.Cells)
		}
	})

	t.Run("Rejects positions outside the board", func(t *testing.T) {
		for _, position := range []int{-100, -1, 9, 10, 20} {
			// Given: a board with one move on it
			board := NewBoard()
			require.True(t, board.MakeMove(PlayerO, 0))
			before := board.Cells

			// When: a player moves outside of 0..8
			ok := board.MakeMove(PlayerX, position)

			// Then: the move fails and the board is unchanged
			assert.False(t, ok, "position %d", position)
			assert.Equal(t, before, board.Cells)
		}
	})

	t.Run("Rejects the empty mark as a player", func(t *testing.T) {
		// Given: a new board
		board := NewBoard()

		// When: Empty is used as the player
		ok := board.MakeMove(Empty, 0)

		// Then: the move fails
		assert.False(t, ok)
		assert.Equal(t, emptyCells(), board.Cells)
	})
}

func TestBoard_ValidateMove(t *testing.T) {
	t.Run("Invalid cell", func(t *testing.T) {
		board := NewBoard()

		err := board.ValidateMove(PlayerX, 9)

		require.ErrorIs(t, err, ErrInvalidCell)
		assert.ErrorIs(t, err, apperror.ErrInvalidMove)
	})

	t.Run("Occupied cell", func(t *testing.T) {
		board := NewBoard()
		require.True(t, board.MakeMove(PlayerX, 3))

		err := board.ValidateMove(PlayerO, 3)

		require.ErrorIs(t, err, ErrCellOccupied)
		assert.ErrorIs(t, err, apperror.ErrInvalidMove)
	})

	t.Run("Invalid player", func(t *testing.T) {
		board := NewBoard()

		err := board.ValidateMove(Mark("Z"), 3)

		assert.ErrorIs(t, err, ErrInvalidPlayer)
	})

	t.Run("Valid move", func(t *testing.T) {
		board := NewBoard()

		assert.NoError(t, board.ValidateMove(PlayerO, 8))
	})
}

func TestBoard_HasWon(t *testing.T) {
	t.Run("Every winning combo wins for both players", func(t *testing.T) {
		for _, player := range []Mark{PlayerX, PlayerO} {
			for _, combo := range WinCombos {
				// Given: a board where player holds one combo
				board := NewBoard()
				for _, cell := range combo {
					board.Cells[cell] = player
				}

				// Then: player has won and the opponent has not
				assert.True(t, board.HasWon(player), "combo %v", combo)
				assert.False(t, board.HasWon(player.Opponent()), "combo %v", combo)
			}
		}
	})

	t.Run("No line, no win", func(t *testing.T) {
		// Given: a full board without any line
		board := NewBoard()
		board.Cells = [BoardSize]Mark{
			PlayerX, PlayerO, PlayerX,
			PlayerX, PlayerO, PlayerO,
			PlayerO, PlayerX, PlayerX,
		}

		// Then: nobody has won
		assert.False(t, board.HasWon(PlayerX))
		assert.False(t, board.HasWon(PlayerO))
	})

	t.Run("Empty never wins", func(t *testing.T) {
		board := NewBoard()

		assert.False(t, board.HasWon(Empty))
	})

	t.Run("Two in a row with a gap is not a win", func(t *testing.T) {
		board := NewBoard()
		board.Cells[0] = PlayerX
		board.Cells[1] = PlayerX
		board.Cells[2] = PlayerO

		assert.False(t, board.HasWon(PlayerX))
	})
}

func TestBoard_Scenarios(t *testing.T) {
	t.Run("X wins on the right column", func(t *testing.T) {
		// Given: a new board
		board := NewBoard()

		// When: X@8, O@7, X@5, O@6, X@2
		moves := []Move{{PlayerX, 8}, {PlayerO, 7}, {PlayerX, 5}, {PlayerO, 6}, {PlayerX, 2}}
		for _, move := range moves {
			require.True(t, board.MakeMove(move.Player, move.Cell))
		}

		// Then: X has won through cells 2, 5, 8
		assert.True(t, board.HasWon(PlayerX))
		assert.False(t, board.HasWon(PlayerO))
		assert.True(t, board.GameOver())
	})

	t.Run("O wins on the middle row after clear", func(t *testing.T) {
		// Given: a used board that was cleared
		board := NewBoard()
		require.True(t, board.MakeMove(PlayerX, 8))
		require.True(t, board.MakeMove(PlayerO, 7))
		board.Clear()

		// When: O@3, O@4, O@5
		for _, cell := range []int{3, 4, 5} {
			require.True(t, board.MakeMove(PlayerO, cell))
		}

		// Then: O has won through the middle row
		assert.True(t, board.HasWon(PlayerO))
		assert.False(t, board.HasWon(PlayerX))
		assert.True(t, board.GameOver())
	})

	t.Run("Two moves do not end the game", func(t *testing.T) {
		board := NewBoard()
		require.True(t, board.MakeMove(PlayerX, 8))
		require.True(t, board.MakeMove(PlayerO, 7))

		assert.False(t, board.GameOver())
	})
}

func TestBoard_GameOver(t *testing.T) {
	t.Run("Full board without a winner is a cat's game", func(t *testing.T) {
		board := NewBoard()
		board.Cells = [BoardSize]Mark{
			PlayerO, PlayerX, PlayerO,
			PlayerO, PlayerX, PlayerX,
			PlayerX, PlayerO, PlayerX,
		}

		assert.True(t, board.GameOver())

		result, over := board.Result()
		require.True(t, over)
		assert.Equal(t, Result{Winner: Empty, Draw: true}, result)
	})

	t.Run("Both players holding a line is still over", func(t *testing.T) {
		// Given: a board that legitimate play cannot produce
		board := NewBoard()
		board.Cells = [BoardSize]Mark{
			PlayerX, PlayerX, PlayerX,
			PlayerO, PlayerO, PlayerO,
			Empty, Empty, Empty,
		}

		// Then: the query stays permissive
		assert.True(t, board.GameOver())
	})

	t.Run("Ongoing board has no result", func(t *testing.T) {
		board := NewBoard()
		require.True(t, board.MakeMove(PlayerX, 0))

		_, over := board.Result()
		assert.False(t, over)
	})
}

func TestBoard_Clear(t *testing.T) {
	// Given: a finished board
	board := NewBoard()
	for _, cell := range []int{0, 1, 2} {
		require.True(t, board.MakeMove(PlayerX, cell))
	}
	require.True(t, board.GameOver())

	// When: the board is cleared
	board.Clear()

	// Then: every cell is empty and the game is not over
	assert.Equal(t, emptyCells(), board.Cells)
	assert.False(t, board.GameOver())
	assert.Len(t, board.AvailableCells(), BoardSize)
}

func TestBoard_String(t *testing.T) {
	t.Run("Empty board", func(t *testing.T) {
		board := NewBoard()

		assert.Equal(t, "* * *\n* * *\n* * *", board.String())
	})

	t.Run("Rows follow the cells in row-major order", func(t *testing.T) {
		// Given: a board with a few moves
		board := NewBoard()
		require.True(t, board.MakeMove(PlayerX, 8))
		require.True(t, board.MakeMove(PlayerO, 7))
		require.True(t, board.MakeMove(PlayerX, 0))

		// When: the board is rendered
		lines := strings.Split(board.String(), "\n")

		// Then: there are 3 lines of 3 tokens matching the cells
		require.Len(t, lines, 3)
		for row, line := range lines {
			tokens := strings.Split(line, " ")
			require.Len(t, tokens, 3)
			for col, token := range tokens {
				assert.Equal(t, board.Cells[row*3+col].String(), token)
			}
		}
	})
}

func TestBoard_AvailableCells(t *testing.T) {
	board := NewBoard()
	require.True(t, board.MakeMove(PlayerX, 0))
	require.True(t, board.MakeMove(PlayerO, 4))

	assert.Equal(t, []int{1, 2, 3, 5, 6, 7, 8}, board.AvailableCells())
}

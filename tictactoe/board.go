// Package tictactoe: board representation, marks, moves, and sentinel errors.
package tictactoe

import (
	"errors"
	"strings"
)

// Sentinel errors for move application and search.
var (
	// ErrOutOfBounds is returned for moves outside the 3×3 grid.
	ErrOutOfBounds = errors.New("tictactoe: move out of bounds")

	// ErrCellOccupied is returned when the target cell already holds a mark.
	ErrCellOccupied = errors.New("tictactoe: cell occupied")

	// ErrGameOver is returned when applying a move to a settled game.
	ErrGameOver = errors.New("tictactoe: game is over")

	// ErrWrongTurn is returned by ApplyAs when the mark is not on turn.
	ErrWrongTurn = errors.New("tictactoe: not this mark's turn")

	// ErrNoMoves is returned by BestMove on a settled game.
	ErrNoMoves = errors.New("tictactoe: no legal moves")
)

// Size is the board edge length.
const Size = 3

// Mark is a cell state: Empty, X, or O.
type Mark uint8

const (
	Empty Mark = iota
	X
	O
)

// String renders the mark as a single character; Empty renders as a dot.
func (m Mark) String() string {
	switch m {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return "."
	}
}

// Other returns the opposing mark; Empty maps to Empty.
func (m Mark) Other() Mark {
	switch m {
	case X:
		return O
	case O:
		return X
	default:
		return Empty
	}
}

// Move addresses a cell by zero-based row and column.
type Move struct {
	Row int
	Col int
}

// inBounds reports whether the move addresses a real cell.
func (m Move) inBounds() bool {
	return m.Row >= 0 && m.Row < Size && m.Col >= 0 && m.Col < Size
}

// Board is the 3×3 grid. The zero value is an empty board.
type Board [Size][Size]Mark

// At returns the mark at the given cell.
// Returns ErrOutOfBounds for coordinates outside the grid.
func (b *Board) At(m Move) (Mark, error) {
	if !m.inBounds() {
		return Empty, ErrOutOfBounds
	}

	return b[m.Row][m.Col], nil
}

// Full reports whether every cell holds a mark.
func (b *Board) Full() bool {
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b[r][c] == Empty {
				return false
			}
		}
	}

	return true
}

// winner returns the mark completing any of the eight lines, or Empty.
func (b *Board) winner() Mark {
	for i := 0; i < Size; i++ {
		if m := b[i][0]; m != Empty && m == b[i][1] && m == b[i][2] {
			return m
		}
		if m := b[0][i]; m != Empty && m == b[1][i] && m == b[2][i] {
			return m
		}
	}
	if m := b[0][0]; m != Empty && m == b[1][1] && m == b[2][2] {
		return m
	}
	if m := b[0][2]; m != Empty && m == b[1][1] && m == b[2][0] {
		return m
	}

	return Empty
}

// String renders the board with row separators, e.g.
//
//	X | . | O
//	--+---+--
//	. | X | .
//	--+---+--
//	. | . | O
func (b *Board) String() string {
	var sb strings.Builder
	for r := 0; r < Size; r++ {
		if r > 0 {
			sb.WriteString("--+---+--\n")
		}
		for c := 0; c < Size; c++ {
			if c > 0 {
				sb.WriteString(" | ")
			}
			sb.WriteString(b[r][c].String())
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

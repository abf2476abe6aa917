package tictactoe

// Status is the settlement state of a Game.
type Status int

const (
	// InProgress means moves remain and nobody has won.
	InProgress Status = iota

	// Won means the last applied move completed a line.
	Won

	// Draw means the board filled without a winner.
	Draw
)

// String renders the status for logs.
func (s Status) String() string {
	switch s {
	case Won:
		return "won"
	case Draw:
		return "draw"
	default:
		return "in progress"
	}
}

// Game tracks a single Tic-Tac-Toe game. X always opens.
// Construct with NewGame.
type Game struct {
	board   Board
	turn    Mark
	status  Status
	winner  Mark
	history []Move
}

// NewGame returns a fresh game with an empty board and X to move.
func NewGame() *Game {
	return &Game{turn: X}
}

// Turn returns the mark to move next; Empty once the game settled.
func (g *Game) Turn() Mark {
	if g.status != InProgress {
		return Empty
	}

	return g.turn
}

// Board returns a copy of the current grid.
func (g *Game) Board() Board { return g.board }

// Status reports whether the game is in progress, won, or drawn.
func (g *Game) Status() Status { return g.status }

// Winner returns the winning mark, or Empty while in progress or drawn.
func (g *Game) Winner() Mark { return g.winner }

// History returns the applied moves in order, alternating X then O.
func (g *Game) History() []Move {
	out := make([]Move, len(g.history))
	copy(out, g.history)

	return out
}

// LegalMoves returns the empty cells in row-major order,
// or nil once the game settled.
func (g *Game) LegalMoves() []Move {
	if g.status != InProgress {
		return nil
	}
	var moves []Move
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if g.board[r][c] == Empty {
				moves = append(moves, Move{Row: r, Col: c})
			}
		}
	}

	return moves
}

// Apply plays m for the mark currently on turn.
// Returns ErrGameOver, ErrOutOfBounds, or ErrCellOccupied for rejects.
func (g *Game) Apply(m Move) error {
	if g.status != InProgress {
		return ErrGameOver
	}
	if !m.inBounds() {
		return ErrOutOfBounds
	}
	if g.board[m.Row][m.Col] != Empty {
		return ErrCellOccupied
	}

	g.board[m.Row][m.Col] = g.turn
	g.history = append(g.history, m)

	switch {
	case g.board.winner() == g.turn:
		g.status = Won
		g.winner = g.turn
	case g.board.Full():
		g.status = Draw
	default:
		g.turn = g.turn.Other()
	}

	return nil
}

// ApplyAs plays m for mk, rejecting out-of-turn play with ErrWrongTurn.
func (g *Game) ApplyAs(mk Mark, m Move) error {
	if g.status != InProgress {
		return ErrGameOver
	}
	if mk != g.turn {
		return ErrWrongTurn
	}

	return g.Apply(m)
}

package tictactoe

// scoreWin is the base value of a finished game; subtracting depth makes
// the search prefer the fastest win and the slowest loss.
const scoreWin = 10

// BestMove returns the optimal move for the mark currently on turn,
// found by negamax with alpha-beta pruning. Ties break toward the first
// candidate in row-major order, so the reply is deterministic.
// Returns ErrNoMoves on a settled game.
func BestMove(g *Game) (Move, error) {
	moves := g.LegalMoves()
	if len(moves) == 0 {
		return Move{}, ErrNoMoves
	}

	board := g.Board()
	me := g.Turn()
	best := moves[0]
	alpha, beta := -2*scoreWin, 2*scoreWin
	for _, m := range moves {
		board[m.Row][m.Col] = me
		v := -negamax(&board, me.Other(), 1, -beta, -alpha)
		board[m.Row][m.Col] = Empty
		if v > alpha {
			alpha = v
			best = m
		}
	}

	return best, nil
}

// negamax scores the position for turn: positive means turn can force a
// win, zero a draw, negative a forced loss. depth discounts the result.
func negamax(b *Board, turn Mark, depth, alpha, beta int) int {
	// the previous mover may have just completed a line
	if w := b.winner(); w != Empty {
		return depth - scoreWin // always the opponent of turn
	}
	if b.Full() {
		return 0
	}

	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b[r][c] != Empty {
				continue
			}
			b[r][c] = turn
			v := -negamax(b, turn.Other(), depth+1, -beta, -alpha)
			b[r][c] = Empty
			if v > alpha {
				alpha = v
			}
			if alpha >= beta {
				return alpha
			}
		}
	}

	return alpha
}

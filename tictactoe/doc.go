// Package tictactoe provides a complete Tic-Tac-Toe engine: board state,
// move legality, win/draw detection, and a perfect minimax opponent.
//
// What
//
//   - Board is the 3×3 grid of Marks; the zero value is an empty board.
//   - Game tracks whose turn it is (X always opens), applies moves, and
//     settles into a Status of Won or Draw.
//   - BestMove runs depth-rewarded minimax with alpha-beta pruning: it
//     prefers the fastest win and the slowest loss, and with both sides
//     playing it the game always ends drawn.
//   - Match wraps a Game with a unique ID and start time for bookkeeping
//     (session logs, replay files).
//
// Why
//
//   - The game tree is tiny (under 9! positions, ~5.5k after pruning), which
//     makes it the standard first encounter with adversarial search; the
//     perfect-play property is asserted in the tests rather than claimed.
//
// Usage
//
//	g := tictactoe.NewGame()
//	_ = g.Apply(tictactoe.Move{Row: 1, Col: 1}) // X center
//	reply, _ := tictactoe.BestMove(g)           // O's best answer
//	_ = g.Apply(reply)
//
// Errors
//
//   - ErrOutOfBounds  move coordinates outside the grid.
//   - ErrCellOccupied target cell already holds a mark.
//   - ErrGameOver     move after the game settled.
//   - ErrWrongTurn    ApplyAs with the mark not on turn.
//   - ErrNoMoves      BestMove on a settled game.
//
// Game and Match are not safe for concurrent use.
package tictactoe

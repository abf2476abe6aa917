package tictactoe_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krelore/strukt/tictactoe"
)

func TestBestMove_SettledGame(t *testing.T) {
	g := tictactoe.NewGame()
	play(t, g, mv(0, 0), mv(1, 0), mv(0, 1), mv(1, 1), mv(0, 2)) // X wins top row
	_, err := tictactoe.BestMove(g)
	assert.ErrorIs(t, err, tictactoe.ErrNoMoves)
}

func TestBestMove_TakesImmediateWin(t *testing.T) {
	g := tictactoe.NewGame()
	// X has 0,0 and 0,1; O has 1,0 and 1,1; X to move wins at 0,2
	play(t, g, mv(0, 0), mv(1, 0), mv(0, 1), mv(1, 1))
	m, err := tictactoe.BestMove(g)
	require.NoError(t, err)
	assert.Equal(t, mv(0, 2), m)
}

func TestBestMove_BlocksImmediateLoss(t *testing.T) {
	g := tictactoe.NewGame()
	// X threatens the top row; O must answer at 0,2
	play(t, g, mv(0, 0), mv(1, 1), mv(0, 1))
	m, err := tictactoe.BestMove(g)
	require.NoError(t, err)
	assert.Equal(t, mv(0, 2), m)
}

func TestBestMove_Deterministic(t *testing.T) {
	g := tictactoe.NewGame()
	require.NoError(t, g.Apply(mv(1, 1)))
	first, err := tictactoe.BestMove(g)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		m, berr := tictactoe.BestMove(g)
		require.NoError(t, berr)
		assert.Equal(t, first, m)
	}
}

// TestSelfPlay_AlwaysDraw is the perfect-play property: two minimax
// players can never beat each other.
func TestSelfPlay_AlwaysDraw(t *testing.T) {
	g := tictactoe.NewGame()
	for g.Status() == tictactoe.InProgress {
		m, err := tictactoe.BestMove(g)
		require.NoError(t, err)
		require.NoError(t, g.Apply(m))
	}
	assert.Equal(t, tictactoe.Draw, g.Status())
}

// TestVersusRandom_NeverLoses pits the AI against a seeded random player
// on both sides of the opening.
func TestVersusRandom_NeverLoses(t *testing.T) {
	for _, aiMark := range []tictactoe.Mark{tictactoe.X, tictactoe.O} {
		rng := rand.New(rand.NewSource(23))
		for round := 0; round < 40; round++ {
			g := tictactoe.NewGame()
			for g.Status() == tictactoe.InProgress {
				var m tictactoe.Move
				if g.Turn() == aiMark {
					var err error
					m, err = tictactoe.BestMove(g)
					require.NoError(t, err)
				} else {
					legal := g.LegalMoves()
					m = legal[rng.Intn(len(legal))]
				}
				require.NoError(t, g.Apply(m))
			}
			if g.Status() == tictactoe.Won {
				require.Equal(t, aiMark, g.Winner(),
					"ai as %v lost round %d:\n%s", aiMark, round, g.Board())
			}
		}
	}
}

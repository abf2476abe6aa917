package tictactoe

import (
	"time"

	"github.com/google/uuid"
)

// Match wraps a Game with identity and timing for session bookkeeping:
// the CLI logs matches by ID, and History makes them replayable.
type Match struct {
	*Game

	// ID uniquely identifies this match.
	ID string

	// StartedAt records when the match was created.
	StartedAt time.Time
}

// NewMatch starts a fresh identified game.
func NewMatch() *Match {
	return &Match{
		Game:      NewGame(),
		ID:        uuid.NewString(),
		StartedAt: time.Now(),
	}
}

// Replay reconstructs a finished or in-progress game from a move history.
// Each move is validated in order, so a corrupted history surfaces the
// same sentinel errors as live play.
func Replay(history []Move) (*Game, error) {
	g := NewGame()
	for _, m := range history {
		if err := g.Apply(m); err != nil {
			return nil, err
		}
	}

	return g, nil
}

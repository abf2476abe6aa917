package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/krelore/strukt/cmd/strukt/ui"
	"github.com/krelore/strukt/tictactoe"
)

var tttSecond bool

var tttCmd = &cobra.Command{
	Use:   "ttt",
	Short: "Play Tic-Tac-Toe against the minimax engine",
	Long: `Play interactively in the terminal. Arrow keys or hjkl move the
cursor, enter or space places your mark, q quits. You play X and open
unless --second hands the opening to the engine.`,
	Run: func(cmd *cobra.Command, args []string) {
		playerMark := tictactoe.X
		if tttSecond {
			playerMark = tictactoe.O
		}

		model := ui.NewGameModel(playerMark)
		logger.Debug("match started",
			zap.String("id", model.MatchID()),
			zap.String("player", playerMark.String()),
		)

		if _, err := tea.NewProgram(model).Run(); err != nil {
			fatal("ttt", err)
		}
	},
}

func init() {
	tttCmd.Flags().BoolVar(&tttSecond, "second", false, "Let the engine open the game")
	rootCmd.AddCommand(tttCmd)
}

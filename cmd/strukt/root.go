package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	verbose bool
	logger  *zap.Logger
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "strukt",
	Short: "Classic data structures and algorithms, runnable from the terminal",
	Long: `Strukt exposes the library's study material as commands:
sort numbers with a chosen algorithm and see the operation counts,
run the Caesar cipher forwards, backwards, or without the key,
and play Tic-Tac-Toe against the minimax engine.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = zap.NewNop()
		if verbose {
			if dev, err := zap.NewDevelopment(); err == nil {
				logger = dev
			}
		}
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
}

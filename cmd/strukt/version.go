package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/krelore/strukt"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of strukt",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("strukt version %s\n", strings.TrimSpace(strukt.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

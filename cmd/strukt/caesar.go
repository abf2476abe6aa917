package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/krelore/strukt/caesar"
)

var caesarShift int

var caesarCmd = &cobra.Command{
	Use:   "caesar",
	Short: "Caesar cipher: encrypt, decrypt, or crack without the key",
}

var caesarEncryptCmd = &cobra.Command{
	Use:   "encrypt [text...]",
	Short: "Shift letters forward by --shift",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(caesar.Encrypt(strings.Join(args, " "), caesarShift))
	},
}

var caesarDecryptCmd = &cobra.Command{
	Use:   "decrypt [text...]",
	Short: "Shift letters back by --shift",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(caesar.Decrypt(strings.Join(args, " "), caesarShift))
	},
}

var caesarCrackCmd = &cobra.Command{
	Use:   "crack [text...]",
	Short: "Recover the shift by letter-frequency analysis",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		shift, plain, err := caesar.Crack(strings.Join(args, " "))
		if err != nil {
			fatal("caesar crack", err)
		}
		logger.Debug("crack scored", zap.Int("shift", shift))
		fmt.Printf("shift=%d\n%s\n", shift, plain)
	},
}

func init() {
	caesarCmd.PersistentFlags().IntVarP(&caesarShift, "shift", "k", 3, "Shift amount (any integer)")
	caesarCmd.AddCommand(caesarEncryptCmd, caesarDecryptCmd, caesarCrackCmd)
	rootCmd.AddCommand(caesarCmd)
}

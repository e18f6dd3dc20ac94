package cmd

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root cobra command with all subcommands.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "anagrid",
		Short: "Terminal client for the anagrid daily word puzzle",
		Long:  "anagrid plays the daily letter-pool word puzzle in your terminal: type guesses from the scrambled tiles, or use /-commands for hints, shuffling and stats.",
	}

	rootCmd.AddCommand(
		newPlayCmd(),
		newLoginCmd(),
		newLogoutCmd(),
		newStatsCmd(),
		newVersionCmd(),
	)

	return rootCmd
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"anagrid/internal/config"
	"anagrid/internal/stats"
	"anagrid/internal/termstyle"
)

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show local play statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := config.ResolveDir()
			if err != nil {
				return err
			}
			st, err := stats.Load(dir)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %d\n", termstyle.Bold("puzzles played "), st.Played)
			fmt.Fprintf(out, "%s %d\n", termstyle.Bold("words found    "), st.WordsFound)
			fmt.Fprintf(out, "%s %d\n", termstyle.Bold("best score     "), st.BestScore)
			fmt.Fprintf(out, "%s %d (best %d)\n", termstyle.Bold("streak         "), st.CurrentStreak, st.BestStreak)
			if st.LastPlayed != "" {
				fmt.Fprintf(out, "%s %s\n", termstyle.Bold("last played    "), st.LastPlayed)
			}
			return nil
		},
	}
}

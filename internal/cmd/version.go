package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"anagrid/internal/config"
	"anagrid/internal/termstyle"
	"anagrid/internal/update"
	"anagrid/internal/version"
)

func newVersionCmd() *cobra.Command {
	var check bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the anagrid version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), version.Version)
			if !check {
				return nil
			}

			dir, err := config.ResolveDir()
			if err != nil {
				return err
			}
			cfg, err := config.Load(dir)
			if err != nil {
				return err
			}
			rel, err := update.CheckLatest(cmd.Context(), cfg.ServerURL)
			if err != nil {
				return err
			}
			if update.Newer(version.Version, rel.Version) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s available: %s\n", termstyle.Yellow("update"), rel.Version, rel.URL)
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), termstyle.Dim("up to date"))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&check, "check", false, "check the server for a newer release")
	return cmd
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"anagrid/internal/config"
)

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := config.ResolveDir()
			if err != nil {
				return err
			}
			if err := config.ClearCredentials(dir); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "logged out")
			return nil
		},
	}
}

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"anagrid/internal/api"
	"anagrid/internal/config"
	"anagrid/internal/game"
	"anagrid/internal/screen"
	"anagrid/internal/version"
)

func newPlayCmd() *cobra.Command {
	var serverURL string

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play today's puzzle",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := config.ResolveDir()
			if err != nil {
				return err
			}
			if err := config.EnsureDir(dir); err != nil {
				return err
			}
			cfg, err := config.Load(dir)
			if err != nil {
				return err
			}
			if serverURL != "" {
				cfg.ServerURL = serverURL
			}
			creds, err := config.LoadCredentials(dir)
			if err != nil {
				return err
			}

			fd := int(os.Stdin.Fd())
			if !term.IsTerminal(fd) {
				return fmt.Errorf("play needs an interactive terminal")
			}

			fmt.Fprintln(cmd.OutOrStdout(), screen.Home(creds.Username, version.Version))
			fmt.Fprintln(cmd.OutOrStdout())

			restore, err := term.MakeRaw(fd)
			if err != nil {
				return fmt.Errorf("set raw mode: %w", err)
			}
			defer func() {
				term.Restore(fd, restore)
				os.Stdout.WriteString("\033[?25h\033[0m\r\n")
			}()

			client := api.New(cfg.ServerURL, creds.Token)
			theme := screen.DetectTheme(cfg.Theme)
			sess := game.NewSession(client, dir, os.Stdin, os.Stdout, theme)
			return sess.Run(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&serverURL, "server", "", "override the configured server URL")
	return cmd
}

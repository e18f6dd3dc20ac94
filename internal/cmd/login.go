package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"anagrid/internal/api"
	"anagrid/internal/config"
	"anagrid/internal/termstyle"
)

func newLoginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Authenticate against the puzzle server",
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
			creds, err := config.LoadCredentials(dir)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), "username: ")
			reader := bufio.NewReader(cmd.InOrStdin())
			username, err := reader.ReadString('\n')
			if err != nil {
				return fmt.Errorf("read username: %w", err)
			}
			username = strings.TrimSpace(username)

			fmt.Fprint(cmd.OutOrStdout(), "password: ")
			password, err := term.ReadPassword(int(os.Stdin.Fd()))
			fmt.Fprintln(cmd.OutOrStdout())
			if err != nil {
				return fmt.Errorf("read password: %w", err)
			}

			client := api.New(cfg.ServerURL, "")
			token, err := client.Login(cmd.Context(), username, string(password), creds.DeviceID)
			if err != nil {
				return err
			}

			creds.Username = username
			creds.Token = token
			if err := config.SaveCredentials(dir, creds); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s logged in as %s\n", termstyle.GreenCheck(), username)
			return nil
		},
	}
}

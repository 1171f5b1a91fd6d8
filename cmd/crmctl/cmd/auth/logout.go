package auth

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/beatriciramos/CRM-Frontend/cmd/crmctl/internal/config"
	"github.com/beatriciramos/CRM-Frontend/cmd/crmctl/internal/ui"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out and clear the stored session",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())

		session, err := cfg.ClientProvider.Session(cmd.Context())
		if err != nil {
			return err
		}

		if session.IsAuthenticated() && !cfg.NonInteractive {
			confirmed, err := ui.Confirm("Do you really want to log out?", true)
			if err != nil {
				return err
			}
			if !confirmed {
				pterm.Info.Println("Logout cancelled")
				return nil
			}
		}

		if err := session.Logout(); err != nil {
			return fmt.Errorf("failed to clear credentials: %w", err)
		}

		pterm.Success.Println("Logged out successfully")
		return nil
	},
}

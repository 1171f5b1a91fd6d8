package auth

import (
	"errors"
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/beatriciramos/CRM-Frontend/cmd/crmctl/internal/config"
	"github.com/beatriciramos/CRM-Frontend/cmd/crmctl/internal/ui"
	"github.com/beatriciramos/CRM-Frontend/pkg/sdk"
)

var (
	loginEmail    string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate with the CRM server",
	Long: `Authenticates with email and password against the CRM server and stores
the session token under ~/.crm. The password can be supplied via the
CRM_PASSWORD environment variable or an interactive prompt; passing it as
a flag is supported but leaks into the shell history.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())

		email := loginEmail
		password := loginPassword
		if password == "" {
			password = os.Getenv("CRM_PASSWORD")
		}

		if (email == "" || password == "") && !cfg.NonInteractive {
			if err := ui.LoginForm(&email, &password); err != nil {
				return err
			}
		}

		session, err := cfg.ClientProvider.Session(cmd.Context())
		if err != nil {
			return err
		}

		identity, err := session.Login(cmd.Context(), email, password)
		if err != nil {
			if errors.Is(err, sdk.ErrInvalidInput) {
				return err
			}
			return fmt.Errorf("login failed: %w", err)
		}

		pterm.Success.Printf("Logged in as %s (%s)\n", identity.Name, identity.Email)
		pterm.Info.Printf("Role: %s\n", identity.Role)
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Account email")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "Account password (prefer CRM_PASSWORD or the prompt)")
}

package user

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/beatriciramos/CRM-Frontend/cmd/crmctl/internal/config"
	"github.com/beatriciramos/CRM-Frontend/cmd/crmctl/internal/ui"
	"github.com/beatriciramos/CRM-Frontend/pkg/sdk"
)

var (
	createName     string
	createEmail    string
	createPassword string
	createRole     string
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Register a new user account",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())

		if _, err := cfg.ClientProvider.RequireFeature(cmd.Context(), sdk.FeatureUserManagement); err != nil {
			return err
		}
		client, err := cfg.ClientProvider.SDKClient()
		if err != nil {
			return err
		}

		input := sdk.RegisterUserInput{
			Name:     createName,
			Email:    createEmail,
			Password: createPassword,
			Role:     sdk.Role(createRole),
		}

		if (input.Name == "" || input.Email == "" || input.Password == "") && !cfg.NonInteractive {
			if err := ui.UserForm(&input); err != nil {
				return err
			}
		}

		user, err := client.RegisterUser(cmd.Context(), input)
		if err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}

		pterm.Success.Printf("User created: %s (%s, %s)\n", user.Name, user.Email, user.Role)
		return nil
	},
}

func init() {
	createCmd.Flags().StringVar(&createName, "name", "", "User name")
	createCmd.Flags().StringVar(&createEmail, "email", "", "User email")
	createCmd.Flags().StringVar(&createPassword, "password", "", "Initial password")
	createCmd.Flags().StringVar(&createRole, "role", "", "Role (ATTENDANT, SELLER or ADMIN; defaults to ATTENDANT)")
}

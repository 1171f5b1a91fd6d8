package user

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/beatriciramos/CRM-Frontend/cmd/crmctl/internal/config"
	"github.com/beatriciramos/CRM-Frontend/pkg/sdk"
)

var (
	updateName     string
	updateEmail    string
	updatePassword string
	updateRole     string
)

var updateCmd = &cobra.Command{
	Use:   "update <user-id>",
	Short: "Edit a user account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())

		if _, err := cfg.ClientProvider.RequireFeature(cmd.Context(), sdk.FeatureUserManagement); err != nil {
			return err
		}
		client, err := cfg.ClientProvider.SDKClient()
		if err != nil {
			return err
		}

		input := sdk.UpdateUserInput{
			Name:     updateName,
			Email:    updateEmail,
			Password: updatePassword,
			Role:     sdk.Role(updateRole),
		}

		user, err := client.UpdateUser(cmd.Context(), args[0], input)
		if err != nil {
			return fmt.Errorf("failed to update user: %w", err)
		}

		pterm.Success.Printf("User updated: %s (%s)\n", user.Name, user.Role)
		return nil
	},
}

func init() {
	updateCmd.Flags().StringVar(&updateName, "name", "", "New name")
	updateCmd.Flags().StringVar(&updateEmail, "email", "", "New email")
	updateCmd.Flags().StringVar(&updatePassword, "password", "", "New password")
	updateCmd.Flags().StringVar(&updateRole, "role", "", "New role (ATTENDANT, SELLER or ADMIN)")
}

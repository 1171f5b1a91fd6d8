package user

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/beatriciramos/CRM-Frontend/cmd/crmctl/internal/config"
	"github.com/beatriciramos/CRM-Frontend/cmd/crmctl/internal/ui"
	"github.com/beatriciramos/CRM-Frontend/pkg/sdk"
)

var removeYes bool

var removeCmd = &cobra.Command{
	Use:     "remove <user-id>",
	Aliases: []string{"delete"},
	Short:   "Delete a user account",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())

		session, err := cfg.ClientProvider.RequireFeature(cmd.Context(), sdk.FeatureUserManagement)
		if err != nil {
			return err
		}
		client, err := cfg.ClientProvider.SDKClient()
		if err != nil {
			return err
		}

		if identity, ok := session.Identity(); ok && identity.ID == args[0] {
			return fmt.Errorf("refusing to delete the account you are logged in with")
		}

		if !removeYes && !cfg.NonInteractive {
			confirmed, err := ui.Confirm(fmt.Sprintf("Delete user %s?", args[0]), false)
			if err != nil {
				return err
			}
			if !confirmed {
				pterm.Info.Println("Deletion cancelled")
				return nil
			}
		}

		if err := client.DeleteUser(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("failed to delete user: %w", err)
		}

		pterm.Success.Println("User deleted")
		return nil
	},
}

func init() {
	removeCmd.Flags().BoolVarP(&removeYes, "yes", "y", false, "Skip the confirmation prompt")
}

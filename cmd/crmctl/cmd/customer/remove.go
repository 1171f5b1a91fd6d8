package customer

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/beatriciramos/CRM-Frontend/cmd/crmctl/internal/config"
	"github.com/beatriciramos/CRM-Frontend/cmd/crmctl/internal/ui"
)

var removeYes bool

var removeCmd = &cobra.Command{
	Use:     "remove <customer-id>",
	Aliases: []string{"delete"},
	Short:   "Delete a customer",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())

		if _, err := cfg.ClientProvider.RequireSession(cmd.Context()); err != nil {
			return err
		}
		client, err := cfg.ClientProvider.SDKClient()
		if err != nil {
			return err
		}

		if !removeYes && !cfg.NonInteractive {
			confirmed, err := ui.Confirm(fmt.Sprintf("Delete customer %s?", args[0]), false)
			if err != nil {
				return err
			}
			if !confirmed {
				pterm.Info.Println("Deletion cancelled")
				return nil
			}
		}

		if err := client.DeleteCustomer(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("failed to delete customer: %w", err)
		}

		pterm.Success.Println("Customer deleted")
		return nil
	},
}

func init() {
	removeCmd.Flags().BoolVarP(&removeYes, "yes", "y", false, "Skip the confirmation prompt")
}

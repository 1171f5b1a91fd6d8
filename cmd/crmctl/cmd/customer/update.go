package customer

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/beatriciramos/CRM-Frontend/cmd/crmctl/internal/config"
	"github.com/beatriciramos/CRM-Frontend/pkg/sdk"
)

var (
	updateName       string
	updateEmail      string
	updatePhone      string
	updateActivate   bool
	updateDeactivate bool
)

var updateCmd = &cobra.Command{
	Use:   "update <customer-id>",
	Short: "Edit a customer",
	Long: `Edits a customer. Only the fields passed as flags are changed;
--activate and --deactivate flip the active toggle.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())

		if updateActivate && updateDeactivate {
			return fmt.Errorf("--activate and --deactivate are mutually exclusive")
		}

		if _, err := cfg.ClientProvider.RequireSession(cmd.Context()); err != nil {
			return err
		}
		client, err := cfg.ClientProvider.SDKClient()
		if err != nil {
			return err
		}

		input := sdk.UpdateCustomerInput{
			Name:  updateName,
			Email: updateEmail,
			Phone: updatePhone,
		}
		if updateActivate {
			active := true
			input.Active = &active
		}
		if updateDeactivate {
			active := false
			input.Active = &active
		}

		customer, err := client.UpdateCustomer(cmd.Context(), args[0], input)
		if err != nil {
			return fmt.Errorf("failed to update customer: %w", err)
		}

		pterm.Success.Printf("Customer updated: %s\n", customer.Name)
		return nil
	},
}

func init() {
	updateCmd.Flags().StringVar(&updateName, "name", "", "New name")
	updateCmd.Flags().StringVar(&updateEmail, "email", "", "New email")
	updateCmd.Flags().StringVar(&updatePhone, "phone", "", "New phone")
	updateCmd.Flags().BoolVar(&updateActivate, "activate", false, "Mark the customer active")
	updateCmd.Flags().BoolVar(&updateDeactivate, "deactivate", false, "Mark the customer inactive")
}

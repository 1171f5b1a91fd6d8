package customer

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/beatriciramos/CRM-Frontend/cmd/crmctl/internal/config"
	"github.com/beatriciramos/CRM-Frontend/cmd/crmctl/internal/ui"
	"github.com/beatriciramos/CRM-Frontend/pkg/sdk"
)

var createInput sdk.CreateCustomerInput

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Register a new customer",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())

		if _, err := cfg.ClientProvider.RequireSession(cmd.Context()); err != nil {
			return err
		}
		client, err := cfg.ClientProvider.SDKClient()
		if err != nil {
			return err
		}

		input := createInput
		if (input.Name == "" || input.Email == "") && !cfg.NonInteractive {
			if err := ui.CustomerForm(&input); err != nil {
				return err
			}
		}

		customer, err := client.CreateCustomer(cmd.Context(), input)
		if err != nil {
			return fmt.Errorf("failed to create customer: %w", err)
		}

		pterm.Success.Printf("Customer created: %s (%s)\n", customer.Name, customer.ID)
		return nil
	},
}

func init() {
	createCmd.Flags().StringVar(&createInput.Name, "name", "", "Customer name")
	createCmd.Flags().StringVar(&createInput.Email, "email", "", "Customer email")
	createCmd.Flags().StringVar(&createInput.Phone, "phone", "", "Customer phone")
}

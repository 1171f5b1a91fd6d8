package customer

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/beatriciramos/CRM-Frontend/cmd/crmctl/internal/config"
	"github.com/beatriciramos/CRM-Frontend/pkg/sdk"
)

var getCmd = &cobra.Command{
	Use:   "get <customer-id>",
	Short: "Show one customer",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())

		if _, err := cfg.ClientProvider.RequireSession(cmd.Context()); err != nil {
			return err
		}
		client, err := cfg.ClientProvider.SDKClient()
		if err != nil {
			return err
		}

		customer, err := client.GetCustomer(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to get customer: %w", err)
		}
		return renderCustomers([]sdk.Customer{*customer})
	},
}

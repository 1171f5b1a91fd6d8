package customer

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/beatriciramos/CRM-Frontend/cmd/crmctl/internal/config"
	"github.com/beatriciramos/CRM-Frontend/pkg/sdk"
)

var (
	listSearch string
	listStatus string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List customers",
	Long: `Lists the customer directory. --search matches name, email or phone;
--status narrows to active or inactive customers.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())

		if _, err := cfg.ClientProvider.RequireSession(cmd.Context()); err != nil {
			return err
		}
		client, err := cfg.ClientProvider.SDKClient()
		if err != nil {
			return err
		}

		customers, err := client.ListCustomers(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list customers: %w", err)
		}

		filtered := filterCustomers(customers, listSearch, listStatus)
		if len(filtered) == 0 {
			pterm.Info.Println("No customers found")
			return nil
		}
		return renderCustomers(filtered)
	},
}

func filterCustomers(customers []sdk.Customer, search, status string) []sdk.Customer {
	search = strings.ToLower(search)
	result := make([]sdk.Customer, 0, len(customers))
	for _, c := range customers {
		if search != "" &&
			!strings.Contains(strings.ToLower(c.Name), search) &&
			!strings.Contains(strings.ToLower(c.Email), search) &&
			!strings.Contains(c.Phone, search) {
			continue
		}
		switch status {
		case "active":
			if !c.Active {
				continue
			}
		case "inactive":
			if c.Active {
				continue
			}
		}
		result = append(result, c)
	}
	return result
}

func init() {
	listCmd.Flags().StringVar(&listSearch, "search", "", "Filter by name, email or phone")
	listCmd.Flags().StringVar(&listStatus, "status", "all", "Filter by status: all, active or inactive")
}

package user

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
	listRole   string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List user accounts",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())

		if _, err := cfg.ClientProvider.RequireFeature(cmd.Context(), sdk.FeatureUserManagement); err != nil {
			return err
		}
		client, err := cfg.ClientProvider.SDKClient()
		if err != nil {
			return err
		}

		users, err := client.ListUsers(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list users: %w", err)
		}

		filtered := filterUsers(users, listSearch, listRole)
		if len(filtered) == 0 {
			pterm.Info.Println("No users found")
			return nil
		}
		return renderUsers(filtered)
	},
}

func filterUsers(users []sdk.User, search, role string) []sdk.User {
	search = strings.ToLower(search)
	result := make([]sdk.User, 0, len(users))
	for _, u := range users {
		if search != "" &&
			!strings.Contains(strings.ToLower(u.Name), search) &&
			!strings.Contains(strings.ToLower(u.Email), search) {
			continue
		}
		if role != "" && !strings.EqualFold(role, string(u.Role)) {
			continue
		}
		result = append(result, u)
	}
	return result
}

func init() {
	listCmd.Flags().StringVar(&listSearch, "search", "", "Filter by name or email")
	listCmd.Flags().StringVar(&listRole, "role", "", "Filter by role (ATTENDANT, SELLER, ADMIN)")
}

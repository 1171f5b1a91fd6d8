package user

import (
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/beatriciramos/CRM-Frontend/pkg/sdk"
)

// UserCmd is the parent command for the administration panel. Every
// subcommand requires the ADMIN role; the API enforces the same rule
// server-side.
var UserCmd = &cobra.Command{
	Use:     "user",
	Aliases: []string{"users"},
	Short:   "Manage user accounts (admin only)",
}

func init() {
	UserCmd.AddCommand(listCmd)
	UserCmd.AddCommand(createCmd)
	UserCmd.AddCommand(updateCmd)
	UserCmd.AddCommand(removeCmd)
}

func renderUsers(users []sdk.User) error {
	data := pterm.TableData{{"ID", "NAME", "EMAIL", "ROLE", "CREATED"}}
	for _, u := range users {
		created := ""
		if !u.CreatedAt.IsZero() {
			created = u.CreatedAt.Format(time.DateOnly)
		}
		data = append(data, []string{u.ID, u.Name, u.Email, string(u.Role), created})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

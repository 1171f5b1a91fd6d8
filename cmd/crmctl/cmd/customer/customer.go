package customer

import (
	"strconv"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/beatriciramos/CRM-Frontend/pkg/sdk"
)

// CustomerCmd is the parent command for the customer directory.
var CustomerCmd = &cobra.Command{
	Use:     "customer",
	Aliases: []string{"customers"},
	Short:   "Browse and manage the customer directory",
}

func init() {
	CustomerCmd.AddCommand(listCmd)
	CustomerCmd.AddCommand(getCmd)
	CustomerCmd.AddCommand(createCmd)
	CustomerCmd.AddCommand(updateCmd)
	CustomerCmd.AddCommand(removeCmd)
}

func renderCustomers(customers []sdk.Customer) error {
	data := pterm.TableData{{"ID", "NAME", "EMAIL", "PHONE", "ACTIVE", "ATTENDANCES", "CREATED"}}
	for _, c := range customers {
		active := "no"
		if c.Active {
			active = "yes"
		}
		created := ""
		if !c.CreatedAt.IsZero() {
			created = c.CreatedAt.Format(time.DateOnly)
		}
		data = append(data, []string{
			c.ID, c.Name, c.Email, c.Phone, active,
			formatCount(c.AttendanceCount), created,
		})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func formatCount(n int) string {
	if n == 0 {
		return "-"
	}
	return strconv.Itoa(n)
}

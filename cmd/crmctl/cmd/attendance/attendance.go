package attendance

import (
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/beatriciramos/CRM-Frontend/pkg/sdk"
)

// AttendanceCmd is the parent command for the attendance log.
var AttendanceCmd = &cobra.Command{
	Use:     "attendance",
	Aliases: []string{"attendances"},
	Short:   "Browse and manage the attendance log",
}

func init() {
	AttendanceCmd.AddCommand(listCmd)
	AttendanceCmd.AddCommand(createCmd)
	AttendanceCmd.AddCommand(updateCmd)
}

func renderAttendances(attendances []sdk.Attendance) error {
	data := pterm.TableData{{"ID", "CUSTOMER", "SUBJECT", "CHANNEL", "STATUS", "ATTENDANT", "CREATED"}}
	for _, a := range attendances {
		customer := a.CustomerID
		if a.Customer != nil {
			customer = a.Customer.Name
		}
		attendant := ""
		if a.User != nil {
			attendant = a.User.Name
		}
		created := ""
		if !a.CreatedAt.IsZero() {
			created = a.CreatedAt.Format(time.DateOnly)
		}
		data = append(data, []string{
			a.ID, customer, a.Subject, string(a.Channel), string(a.Status), attendant, created,
		})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

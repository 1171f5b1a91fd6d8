package attendance

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/beatriciramos/CRM-Frontend/cmd/crmctl/internal/config"
	"github.com/beatriciramos/CRM-Frontend/cmd/crmctl/internal/ui"
	"github.com/beatriciramos/CRM-Frontend/pkg/sdk"
)

var (
	createCustomerID string
	createSubject    string
	createNotes      string
	createChannel    string
	createStatus     string
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Open a new attendance",
	Long: `Opens a new attendance for a customer. Without flags an interactive form
offers the customer directory the way the panel's dropdown did.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())

		if _, err := cfg.ClientProvider.RequireSession(cmd.Context()); err != nil {
			return err
		}
		client, err := cfg.ClientProvider.SDKClient()
		if err != nil {
			return err
		}

		input := sdk.CreateAttendanceInput{
			CustomerID: createCustomerID,
			Subject:    createSubject,
			Notes:      createNotes,
			Channel:    sdk.Channel(createChannel),
			Status:     sdk.AttendanceStatus(createStatus),
		}

		if (input.CustomerID == "" || input.Subject == "") && !cfg.NonInteractive {
			customers, err := client.ListCustomers(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to load customers for the form: %w", err)
			}
			if err := ui.AttendanceForm(customers, &input); err != nil {
				return err
			}
		}

		attendance, err := client.CreateAttendance(cmd.Context(), input)
		if err != nil {
			return fmt.Errorf("failed to create attendance: %w", err)
		}

		pterm.Success.Printf("Attendance %s opened (%s, %s)\n", attendance.ID, attendance.Channel, attendance.Status)
		return nil
	},
}

func init() {
	createCmd.Flags().StringVar(&createCustomerID, "customer", "", "Customer id")
	createCmd.Flags().StringVar(&createSubject, "subject", "", "Subject")
	createCmd.Flags().StringVar(&createNotes, "notes", "", "Notes")
	createCmd.Flags().StringVar(&createChannel, "channel", "", "Channel (defaults to CALL)")
	createCmd.Flags().StringVar(&createStatus, "status", "", "Status (defaults to OPEN)")
}

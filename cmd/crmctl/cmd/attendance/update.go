package attendance

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/beatriciramos/CRM-Frontend/cmd/crmctl/internal/config"
	"github.com/beatriciramos/CRM-Frontend/pkg/sdk"
)

var (
	updateSubject string
	updateNotes   string
	updateChannel string
	updateStatus  string
)

var updateCmd = &cobra.Command{
	Use:   "update <attendance-id>",
	Short: "Edit an attendance",
	Long: `Edits an attendance. Only the fields passed as flags are changed;
use --status CLOSED to close it.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())

		if _, err := cfg.ClientProvider.RequireSession(cmd.Context()); err != nil {
			return err
		}
		client, err := cfg.ClientProvider.SDKClient()
		if err != nil {
			return err
		}

		input := sdk.UpdateAttendanceInput{
			Subject: updateSubject,
			Notes:   updateNotes,
			Channel: sdk.Channel(updateChannel),
			Status:  sdk.AttendanceStatus(updateStatus),
		}

		attendance, err := client.UpdateAttendance(cmd.Context(), args[0], input)
		if err != nil {
			return fmt.Errorf("failed to update attendance: %w", err)
		}

		pterm.Success.Printf("Attendance %s updated (%s)\n", attendance.ID, attendance.Status)
		return nil
	},
}

func init() {
	updateCmd.Flags().StringVar(&updateSubject, "subject", "", "New subject")
	updateCmd.Flags().StringVar(&updateNotes, "notes", "", "New notes")
	updateCmd.Flags().StringVar(&updateChannel, "channel", "", "New channel")
	updateCmd.Flags().StringVar(&updateStatus, "status", "", "New status (OPEN or CLOSED)")
}

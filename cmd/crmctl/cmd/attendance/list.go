package attendance

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/beatriciramos/CRM-Frontend/cmd/crmctl/internal/config"
	"github.com/beatriciramos/CRM-Frontend/pkg/sdk"
)

var (
	listStatus  string
	listChannel string
	listSearch  string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List attendances",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())

		if _, err := cfg.ClientProvider.RequireSession(cmd.Context()); err != nil {
			return err
		}
		client, err := cfg.ClientProvider.SDKClient()
		if err != nil {
			return err
		}

		attendances, err := client.ListAttendances(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list attendances: %w", err)
		}

		filtered := filterAttendances(attendances, listSearch, listStatus, listChannel)
		if len(filtered) == 0 {
			pterm.Info.Println("No attendances found")
			return nil
		}
		return renderAttendances(filtered)
	},
}

func filterAttendances(attendances []sdk.Attendance, search, status, channel string) []sdk.Attendance {
	search = strings.ToLower(search)
	result := make([]sdk.Attendance, 0, len(attendances))
	for _, a := range attendances {
		if search != "" {
			customer := ""
			if a.Customer != nil {
				customer = a.Customer.Name
			}
			if !strings.Contains(strings.ToLower(a.Subject), search) &&
				!strings.Contains(strings.ToLower(a.Notes), search) &&
				!strings.Contains(strings.ToLower(customer), search) {
				continue
			}
		}
		if status != "" && !strings.EqualFold(status, string(a.Status)) {
			continue
		}
		if channel != "" && !strings.EqualFold(channel, string(a.Channel)) {
			continue
		}
		result = append(result, a)
	}
	return result
}

func init() {
	listCmd.Flags().StringVar(&listSearch, "search", "", "Filter by subject, notes or customer name")
	listCmd.Flags().StringVar(&listStatus, "status", "", "Filter by status (OPEN or CLOSED)")
	listCmd.Flags().StringVar(&listChannel, "channel", "", "Filter by channel (CALL, EMAIL, WHATSAPP, MEETING, OTHER)")
}

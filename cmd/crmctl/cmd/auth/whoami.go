package auth

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/beatriciramos/CRM-Frontend/cmd/crmctl/internal/config"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Display the current session",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())

		session, err := cfg.ClientProvider.RequireSession(cmd.Context())
		if err != nil {
			return err
		}

		identity, ok := session.Identity()
		if !ok {
			return fmt.Errorf("session held but identity not resolved; try again")
		}

		pterm.DefaultSection.Println("Session")
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintf(w, "SERVER\t%s\n", cfg.ServerURL)
		fmt.Fprintf(w, "USER\t%s\n", identity.Name)
		fmt.Fprintf(w, "EMAIL\t%s\n", identity.Email)
		fmt.Fprintf(w, "ROLE\t%s\n", identity.Role)
		fmt.Fprintf(w, "STATE\t%s\n", session.State())
		w.Flush()
		return nil
	},
}

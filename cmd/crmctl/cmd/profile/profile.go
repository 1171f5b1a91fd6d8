package profile

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/beatriciramos/CRM-Frontend/cmd/crmctl/internal/config"
	"github.com/beatriciramos/CRM-Frontend/pkg/sdk"
)

// ProfileCmd shows the authenticated user's own profile.
var ProfileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show your profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())

		session, err := cfg.ClientProvider.RequireSession(cmd.Context())
		if err != nil {
			return err
		}

		identity, ok := session.Identity()
		if !ok {
			return fmt.Errorf("identity not resolved yet; try again")
		}

		pterm.DefaultSection.Println("My Profile")
		pterm.Info.Printf("Name:  %s\n", identity.Name)
		pterm.Info.Printf("Email: %s\n", identity.Email)
		pterm.Info.Printf("Role:  %s\n", identity.Role)

		if sdk.CanAccess(identity.Role, sdk.FeatureAdminPanel) {
			pterm.Info.Println("Administration panel available: `crmctl user list`")
		}
		return nil
	},
}

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/beatriciramos/CRM-Frontend/cmd/crmctl/cmd/attendance"
	"github.com/beatriciramos/CRM-Frontend/cmd/crmctl/cmd/auth"
	"github.com/beatriciramos/CRM-Frontend/cmd/crmctl/cmd/customer"
	"github.com/beatriciramos/CRM-Frontend/cmd/crmctl/cmd/profile"
	"github.com/beatriciramos/CRM-Frontend/cmd/crmctl/cmd/user"
	"github.com/beatriciramos/CRM-Frontend/cmd/crmctl/internal/client"
	"github.com/beatriciramos/CRM-Frontend/cmd/crmctl/internal/config"
)

var (
	serverURL      string
	nonInteractive bool
	verbose        bool
)

var rootCmd = &cobra.Command{
	Use:   "crmctl",
	Short: "Simplified CRM command-line client",
	Long: `crmctl is the command-line client for the Simplified CRM API. Use it to
log in, browse the customer directory, keep the attendance log and, as an
administrator, manage user accounts.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Check for CRM_NON_INTERACTIVE environment variable
		if os.Getenv("CRM_NON_INTERACTIVE") == "1" {
			nonInteractive = true
		}

		resolved := config.ResolveServerURL(serverURL, cmd.Flags().Changed("server"))

		logger := zap.NewNop()
		if verbose {
			var err error
			logger, err = zap.NewDevelopment()
			if err != nil {
				return fmt.Errorf("failed to build logger: %w", err)
			}
		}

		cfg := &config.GlobalConfig{
			ServerURL:      resolved,
			NonInteractive: nonInteractive,
			Verbose:        verbose,
			Logger:         logger,
			ClientProvider: client.NewProvider(resolved, logger),
		}
		cmd.SetContext(config.InjectConfig(cmd.Context(), cfg))
		return nil
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", config.DefaultServerURL, "CRM API server URL")
	rootCmd.PersistentFlags().BoolVar(&nonInteractive, "non-interactive", false, "Disable interactive prompts (also set via CRM_NON_INTERACTIVE=1)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.AddCommand(auth.AuthCmd)
	rootCmd.AddCommand(customer.CustomerCmd)
	rootCmd.AddCommand(attendance.AttendanceCmd)
	rootCmd.AddCommand(user.UserCmd)
	rootCmd.AddCommand(profile.ProfileCmd)
}

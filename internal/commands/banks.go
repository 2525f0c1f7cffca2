package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/edocuenta/edocuenta/internal/profile"
)

func newBanksCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "banks",
		Short: "List the supported bank statement formats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range profile.DefaultRegistry().Banks() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

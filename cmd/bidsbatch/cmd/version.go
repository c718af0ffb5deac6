package cmd

import (
	"github.com/spf13/cobra"

	"github.com/jbendavid/bidsbatch/internal/bidsbatch"
)

func versionCmd() *cobra.Command {
	a := bidsbatch.New()
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print client version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.Version()
		},
	}
	return cmd
}

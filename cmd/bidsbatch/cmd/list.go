package cmd

import (
	"github.com/spf13/cobra"

	"github.com/jbendavid/bidsbatch/internal/bidsbatch"
)

func listCmd() *cobra.Command {
	a := bidsbatch.New()
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the runs that would be submitted, without submitting anything",
		Args:  cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return initParams(cmd, a)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.List()
		},
	}
	return cmd
}

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/jbendavid/bidsbatch/internal/bidsbatch"
)

func validateCmd() *cobra.Command {
	a := bidsbatch.New()
	cmd := &cobra.Command{
		Use:   "validate ./path/to/manifest.yaml",
		Short: "Check that a work-item manifest parses and contains only valid items",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.ValidateManifest(args[0])
		},
	}
	return cmd
}

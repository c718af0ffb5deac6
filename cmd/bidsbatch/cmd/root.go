package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jbendavid/bidsbatch/internal/bidsbatch"
	"github.com/jbendavid/bidsbatch/pkg/bids"
	"github.com/jbendavid/bidsbatch/pkg/slurm"
)

var cfgFile string

// RootCmd is the root Cobra command that gets called from the main func.
// Invoked with no arguments it runs the submission driver itself; all
// other sub-commands are registered on it.
func RootCmd() *cobra.Command {
	a := bidsbatch.New()
	cmd := &cobra.Command{
		Use:   "bidsbatch",
		Short: "bidsbatch submits one decoding job per imaging run to the batch scheduler.",
		Long: `bidsbatch walks a BIDS dataset root (or reads a work-item manifest) and
submits one scheduler job per functional run, in enumeration order. The first
failed submission aborts the batch unless --keepGoing is set.

Persistent config can be saved in a config file so it doesn't have to be
specified every command. Example structure:

sbatchCommand: sbatch
decoder: ./decoder.py
bidsRoot: ../data/bids

The location of this file can be passed in using the --config argument.
If not provided, $HOME/.bidsbatch.yaml is used.`,
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return initParams(cmd, a)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// Create a context that is cancelled on SIGINT/SIGTERM so that
			// ctrl-C stops the driver between submissions.
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			stopSignal := make(chan os.Signal, 1)
			signal.Notify(stopSignal, syscall.SIGINT, syscall.SIGTERM)
			go func() {
				select {
				case <-ctx.Done():
					return
				case <-stopSignal:
					cancel()
				}
			}()

			return a.Submit(ctx)
		},
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.bidsbatch.yaml)")

	cmd.PersistentFlags().String("bidsRoot", "../data/bids", "specify dataset root directory")
	viper.BindPFlag("bidsRoot", cmd.PersistentFlags().Lookup("bidsRoot"))

	cmd.PersistentFlags().String("fromFile", "", "read work items from a YAML manifest instead of walking the dataset root")
	viper.BindPFlag("fromFile", cmd.PersistentFlags().Lookup("fromFile"))

	slurm.AddSubmitCommandlineArgs(cmd)

	cmd.Flags().Bool("dryRun", false, "print submission commands without running them")
	viper.BindPFlag("dryRun", cmd.Flags().Lookup("dryRun"))

	cmd.Flags().Bool("keepGoing", false, "attempt every submission and report failures at the end")
	viper.BindPFlag("keepGoing", cmd.Flags().Lookup("keepGoing"))

	cmd.Flags().Uint("retries", 0, "number of times to retry each failed submission")
	viper.BindPFlag("retries", cmd.Flags().Lookup("retries"))

	cmd.AddCommand(
		listCmd(),
		validateCmd(),
		versionCmd(),
	)

	return cmd
}

func Execute() {
	if err := RootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func initParams(cmd *cobra.Command, a *bidsbatch.App) error {
	if err := slurm.LoadCommandlineArgsFromConfigFile(cfgFile); err != nil {
		return err
	}

	a.Params.SubmitDetails = slurm.ExtractCommandlineSubmitDetails()
	a.Params.Scheduler = slurm.NewClient(a.Params.SubmitDetails)
	a.Params.DryRun = viper.GetBool("dryRun")
	a.Params.KeepGoing = viper.GetBool("keepGoing")
	a.Params.Retries = viper.GetUint("retries")

	if fromFile := viper.GetString("fromFile"); fromFile != "" {
		a.Params.Dataset = &bids.ManifestSource{Path: fromFile}
	} else {
		a.Params.Dataset = &bids.Dataset{Root: viper.GetString("bidsRoot")}
	}
	return nil
}

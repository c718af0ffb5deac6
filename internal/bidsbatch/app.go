package bidsbatch

import (
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/jbendavid/bidsbatch/pkg/bids"
	"github.com/jbendavid/bidsbatch/pkg/slurm"
)

type App struct {
	// Parameters passed to the CLI by the user.
	Params *Params
	// Out is used to write the output. Defaults to standard out,
	// but can be overridden in tests to make assertions on the application's output.
	Out io.Writer
}

// Params struct holds all user-customizable parameters.
// Using a single struct for all CLI commands ensures that all flags are distinct
// and that they can be provided either dynamically on a command line, or
// statically in a config file that's reused between command runs.
type Params struct {
	SubmitDetails *slurm.SubmitDetails
	Dataset       DatasetAPI
	Scheduler     slurm.Submitter
	// DryRun prints the submission command for each work item without running it.
	DryRun bool
	// KeepGoing attempts every submission and aggregates failures, instead of
	// aborting on the first failed submission.
	KeepGoing bool
	// Retries is the number of times each failed submission is retried
	// before counting as failed. Zero means a single attempt per item.
	Retries uint
}

// DatasetAPI produces the sequence of work items to submit.
type DatasetAPI interface {
	Runs() ([]bids.WorkItem, error)
}

// New instantiates an App with default parameters, including standard output.
func New() *App {
	return &App{
		Params: &Params{},
		Out:    os.Stdout,
	}
}

// validateParams validates the parameters every command needs.
func (a *App) validateParams() error {
	if a.Params.Dataset == nil {
		return errors.New("no dataset source configured")
	}
	return nil
}

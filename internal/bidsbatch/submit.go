package bidsbatch

import (
	"context"
	"fmt"
	"strings"

	"github.com/avast/retry-go"
	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/jbendavid/bidsbatch/pkg/bids"
	"github.com/jbendavid/bidsbatch/pkg/slurm"
)

// Submit enumerates work items from the configured dataset source and submits
// one scheduler job per item, strictly in enumeration order. By default the
// first failed submission aborts the run; items after the failure point are
// never attempted.
func (a *App) Submit(ctx context.Context) error {
	if err := a.validateParams(); err != nil {
		return err
	}
	if !a.Params.DryRun && a.Params.Scheduler == nil {
		return errors.New("no scheduler client configured")
	}
	if a.Params.SubmitDetails == nil {
		return errors.New("no submission details configured")
	}

	items, err := a.Params.Dataset.Runs()
	if err != nil {
		return errors.WithMessage(err, "error enumerating work items")
	}

	// Reject the whole batch before submitting anything if any item is
	// malformed.
	for i, item := range items {
		if err := item.Validate(); err != nil {
			return errors.WithMessagef(err, "invalid work item %d of %d", i+1, len(items))
		}
	}

	if len(items) == 0 {
		fmt.Fprintf(a.Out, "No runs found; nothing to submit\n")
		return nil
	}

	submissionSet := uuid.NewString()
	log.Infof("Submitting %d runs (submission set %s)", len(items), submissionSet)

	var result *multierror.Error
	for i, item := range items {
		if a.Params.DryRun {
			fmt.Fprintf(a.Out, "%s\n", strings.Join(slurm.CommandLine(a.Params.SubmitDetails, item), " "))
			continue
		}

		response, err := a.submitOne(ctx, item)
		if err != nil {
			err = errors.WithMessagef(err, "run %d of %d (submission set %s)", i+1, len(items), submissionSet)
			if !a.Params.KeepGoing {
				return err
			}
			log.Errorf("Submission failed: %s", err)
			result = multierror.Append(result, err)
			continue
		}
		fmt.Fprintf(a.Out, "Submitted %s task %s run %s: %s\n", item.Subject, item.Task, item.Run, response)
	}
	return result.ErrorOrNil()
}

func (a *App) submitOne(ctx context.Context, item bids.WorkItem) (string, error) {
	if a.Params.Retries == 0 {
		return a.Params.Scheduler.Submit(ctx, item)
	}
	var response string
	err := retry.Do(
		func() error {
			var err error
			response, err = a.Params.Scheduler.Submit(ctx, item)
			return err
		},
		retry.Attempts(a.Params.Retries+1),
		retry.LastErrorOnly(true),
	)
	return response, err
}

// Package slurm submits jobs to the Slurm batch scheduler by invoking its
// submission command for each work item.
package slurm

import (
	"context"
	"os/exec"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/jbendavid/bidsbatch/pkg/bids"
)

// SubmitDetails holds scheduler invocation configuration. Field names match
// the viper config keys they are populated from.
type SubmitDetails struct {
	SbatchCommand string
	Decoder       string
	SubmitTimeout time.Duration
}

// Submitter enqueues one job per work item with the batch scheduler.
type Submitter interface {
	// Submit enqueues a job for item and returns the scheduler's response
	// line, e.g. "Submitted batch job 123".
	Submit(ctx context.Context, item bids.WorkItem) (string, error)
}

// Client submits jobs by executing the scheduler submission command as a
// subprocess. The command is run with a plain argument vector; no shell is
// involved, so work-item fields are never subject to shell interpretation.
type Client struct {
	Details *SubmitDetails
}

func NewClient(details *SubmitDetails) *Client {
	return &Client{Details: details}
}

// CommandLine returns the argument vector used to submit item, starting with
// the submission command itself.
func CommandLine(details *SubmitDetails, item bids.WorkItem) []string {
	return []string{details.SbatchCommand, details.Decoder, item.Path, item.Subject, item.Task, item.Run}
}

// Submit runs the submission command and blocks until it returns. A
// SubmitTimeout of zero waits indefinitely.
func (c *Client) Submit(ctx context.Context, item bids.WorkItem) (string, error) {
	if c.Details.SubmitTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Details.SubmitTimeout)
		defer cancel()
	}

	argv := CommandLine(c.Details, item)
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		response := strings.TrimSpace(string(output))
		if response != "" {
			return "", errors.Wrapf(err, "error submitting job for %s: %s", item.Path, response)
		}
		return "", errors.Wrapf(err, "error submitting job for %s", item.Path)
	}
	return strings.TrimSpace(string(output)), nil
}

package slurm

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jbendavid/bidsbatch/pkg/bids"
)

var testItem = bids.WorkItem{
	Path:    "/data/bids/sub-01/func/run-1.nii",
	Subject: "sub-01",
	Task:    "rest",
	Run:     "1",
}

func TestCommandLine(t *testing.T) {
	details := &SubmitDetails{SbatchCommand: "sbatch", Decoder: "./decoder.py"}
	argv := CommandLine(details, testItem)
	assert.Equal(t, "sbatch ./decoder.py /data/bids/sub-01/func/run-1.nii sub-01 rest 1", strings.Join(argv, " "))
}

func TestSubmitEchoesArguments(t *testing.T) {
	// Substituting echo for sbatch shows exactly what the scheduler would be
	// invoked with, one argument per work-item field.
	client := NewClient(&SubmitDetails{SbatchCommand: "echo", Decoder: "./decoder.py"})
	response, err := client.Submit(context.Background(), testItem)
	require.NoError(t, err)
	assert.Equal(t, "./decoder.py /data/bids/sub-01/func/run-1.nii sub-01 rest 1", response)
}

func TestSubmitCommandFails(t *testing.T) {
	client := NewClient(&SubmitDetails{SbatchCommand: "false", Decoder: "./decoder.py"})
	_, err := client.Submit(context.Background(), testItem)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), testItem.Path)
}

func TestSubmitCommandMissing(t *testing.T) {
	client := NewClient(&SubmitDetails{SbatchCommand: "bidsbatch-test-no-such-command", Decoder: "./decoder.py"})
	_, err := client.Submit(context.Background(), testItem)
	assert.Error(t, err)
}

func TestSubmitCancelledContext(t *testing.T) {
	client := NewClient(&SubmitDetails{SbatchCommand: "echo", Decoder: "./decoder.py"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := client.Submit(ctx, testItem)
	assert.Error(t, err)
}

package bidsbatch

import (
	"fmt"
	"text/tabwriter"

	"github.com/pkg/errors"
)

// List prints the work items that would be submitted, without submitting
// anything.
func (a *App) List() error {
	if err := a.validateParams(); err != nil {
		return err
	}

	items, err := a.Params.Dataset.Runs()
	if err != nil {
		return errors.WithMessage(err, "error enumerating work items")
	}

	w := tabwriter.NewWriter(a.Out, 1, 1, 1, ' ', 0)
	fmt.Fprintf(w, "PATH\tSUBJECT\tTASK\tRUN\n")
	for _, item := range items {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", item.Path, item.Subject, item.Task, item.Run)
	}
	w.Flush()
	fmt.Fprintf(a.Out, "\nFound %d runs\n", len(items))
	return nil
}

package bids

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/jbendavid/bidsbatch/internal/common/batcherrors"
)

// WorkItem identifies a single functional imaging run to be processed.
// Items are produced by a dataset source, used once to format a scheduler
// submission, and discarded.
type WorkItem struct {
	Path    string `yaml:"path"`
	Subject string `yaml:"subject"`
	Task    string `yaml:"task"`
	Run     string `yaml:"run"`
}

// Characters that would change the meaning of the submission command line if
// a field were ever passed through a shell. Fields are handed to the
// scheduler as a plain argument vector, but items carrying these characters
// are rejected up front rather than submitted with surprising semantics.
const unsafeFieldChars = " \t\r\n`$&|;<>()'\"\\*?[]{}~#!"

// Validate returns an error if any field of the item is empty or contains
// whitespace or shell metacharacters.
func (item WorkItem) Validate() error {
	for _, field := range []struct {
		name  string
		value string
	}{
		{"path", item.Path},
		{"subject", item.Subject},
		{"task", item.Task},
		{"run", item.Run},
	} {
		if field.value == "" {
			return errors.WithStack(&batcherrors.ErrInvalidArgument{
				Name:    field.name,
				Value:   field.value,
				Message: "not provided",
			})
		}
		if strings.ContainsAny(field.value, unsafeFieldChars) {
			return errors.WithStack(&batcherrors.ErrInvalidArgument{
				Name:    field.name,
				Value:   field.value,
				Message: "contains whitespace or shell metacharacters",
			})
		}
	}
	return nil
}

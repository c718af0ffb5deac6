package bidsbatch

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/jbendavid/bidsbatch/pkg/bids"
)

// ValidateManifest checks that a manifest file parses and contains at least
// one valid work item, reporting every invalid item rather than only the
// first.
func (a *App) ValidateManifest(path string) error {
	manifest, err := bids.LoadManifest(path)
	if err != nil {
		return err
	}
	if len(manifest.Items) == 0 {
		return errors.Errorf("no work items found in %s", path)
	}

	var result *multierror.Error
	for i, item := range manifest.Items {
		if err := item.Validate(); err != nil {
			result = multierror.Append(result, errors.WithMessagef(err, "item %d", i+1))
		}
	}
	if err := result.ErrorOrNil(); err != nil {
		return err
	}

	fmt.Fprintf(a.Out, "Manifest %s is valid (%d runs)\n", path, len(manifest.Items))
	return nil
}

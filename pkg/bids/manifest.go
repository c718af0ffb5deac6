package bids

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Manifest is an explicit list of work items, read from a YAML file instead
// of discovered by walking a dataset root.
//
// Example manifest:
//
//	items:
//	  - path: /data/bids/sub-01/func/sub-01_task-rest_run-1_bold.nii
//	    subject: sub-01
//	    task: rest
//	    run: "1"
type Manifest struct {
	Items []WorkItem `yaml:"items"`
}

// ManifestSource enumerates work items from a manifest file.
type ManifestSource struct {
	Path string
}

func (m *ManifestSource) Runs() ([]WorkItem, error) {
	manifest, err := LoadManifest(m.Path)
	if err != nil {
		return nil, err
	}
	return manifest.Items, nil
}

func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "error opening manifest %s", path)
	}
	manifest := &Manifest{}
	if err := yaml.Unmarshal(data, manifest); err != nil {
		return nil, errors.Wrapf(err, "error parsing manifest %s", path)
	}
	return manifest, nil
}

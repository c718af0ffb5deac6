package bids

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadManifest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`items:
  - path: /data/bids/sub-01/func/sub-01_task-rest_run-1_bold.nii
    subject: sub-01
    task: rest
    run: "1"
  - path: /data/bids/sub-02/func/sub-02_task-lang_run-2_bold.nii
    subject: sub-02
    task: lang
    run: "2"
`), 0o644))

	manifest, err := LoadManifest(path)
	require.NoError(t, err)
	assert.Equal(t, []WorkItem{
		{Path: "/data/bids/sub-01/func/sub-01_task-rest_run-1_bold.nii", Subject: "sub-01", Task: "rest", Run: "1"},
		{Path: "/data/bids/sub-02/func/sub-02_task-lang_run-2_bold.nii", Subject: "sub-02", Task: "lang", Run: "2"},
	}, manifest.Items)

	source := &ManifestSource{Path: path}
	items, err := source.Runs()
	require.NoError(t, err)
	assert.Equal(t, manifest.Items, items)
}

func TestLoadManifestMissingFile(t *testing.T) {
	_, err := LoadManifest(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadManifestMalformedYaml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.yaml")
	require.NoError(t, os.WriteFile(path, []byte("items: [broken"), 0o644))
	_, err := LoadManifest(path)
	assert.Error(t, err)
}

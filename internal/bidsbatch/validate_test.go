package bidsbatch

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "items.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestValidateManifest(t *testing.T) {
	path := writeManifest(t, `items:
  - path: /data/bids/sub-01/func/sub-01_task-rest_run-1_bold.nii
    subject: sub-01
    task: rest
    run: "1"
`)
	buf := new(bytes.Buffer)
	app := New()
	app.Out = buf

	err := app.ValidateManifest(path)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "is valid (1 runs)")
}

func TestValidateManifestEmpty(t *testing.T) {
	path := writeManifest(t, "items: []\n")
	app := New()
	app.Out = new(bytes.Buffer)

	err := app.ValidateManifest(path)
	assert.Error(t, err)
}

func TestValidateManifestReportsEveryInvalidItem(t *testing.T) {
	path := writeManifest(t, `items:
  - path: /data/run-1.nii
    subject: sub-01
    task: rest
    run: "1"
  - path: /data/run-2.nii
    subject: ""
    task: rest
    run: "2"
  - path: /data/run 3.nii
    subject: sub-03
    task: rest
    run: "3"
`)
	app := New()
	app.Out = new(bytes.Buffer)

	err := app.ValidateManifest(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "item 2")
	assert.Contains(t, err.Error(), "item 3")
	assert.NotContains(t, err.Error(), "item 1")
}

func TestValidateManifestMissingFile(t *testing.T) {
	app := New()
	app.Out = new(bytes.Buffer)
	err := app.ValidateManifest(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

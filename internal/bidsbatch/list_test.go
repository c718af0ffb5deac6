package bidsbatch

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList(t *testing.T) {
	items := testItems(2)
	scheduler := &fakeScheduler{}
	app, buf := newTestApp(&fakeDataset{items: items}, scheduler)

	err := app.List()
	require.NoError(t, err)
	assert.Empty(t, scheduler.calls)

	out := buf.String()
	assert.Contains(t, out, "PATH")
	assert.Contains(t, out, "SUBJECT")
	for _, item := range items {
		assert.Contains(t, out, item.Path)
		assert.Contains(t, out, item.Subject)
	}
	assert.Contains(t, out, "Found 2 runs")
}

func TestListNoItems(t *testing.T) {
	app, buf := newTestApp(&fakeDataset{}, &fakeScheduler{})

	err := app.List()
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Found 0 runs")
}

func TestListWithoutDataset(t *testing.T) {
	app := New()
	app.Out = new(bytes.Buffer)
	err := app.List()
	assert.Error(t, err)
}

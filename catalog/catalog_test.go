package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const validYAML = `
entities:
  - id: alpha
    name: Alpha
    category: Core
    color: "#112233"
    slot: 1
  - id: beta
    name: Beta
    category: Edge
    color: "#445566"
    slot: 0
    radius: 4.5
`

func TestDefaultCatalog(t *testing.T) {
	c := Default()
	require.Equal(t, 12, c.Len())
	for i, e := range c.Entities {
		assert.Equal(t, i, e.SlotIndex(), "entity %s out of slot order", e.ID)
		assert.Greater(t, e.Radius, 0.0)
	}
	e, ok := c.Find("atlas")
	require.True(t, ok)
	assert.Equal(t, "ATLAS", e.Name)
	assert.Same(t, &c.Entities[c.Index("atlas")], e)
	assert.Equal(t, -1, c.Index("missing"))
}

func TestParseOrdersBySlot(t *testing.T) {
	c, err := Parse([]byte(validYAML), 3)
	require.NoError(t, err)
	require.Equal(t, 2, c.Len())
	assert.Equal(t, "beta", c.Entities[0].ID)
	assert.Equal(t, 4.5, c.Entities[0].Radius)
	assert.Equal(t, 3.0, c.Entities[1].Radius)
}

func TestParseRejectsSchemaViolations(t *testing.T) {
	cases := map[string]string{
		"missing color": `
entities:
  - id: alpha
    name: Alpha
    category: Core
`,
		"bad color": `
entities:
  - id: alpha
    name: Alpha
    category: Core
    color: red
`,
		"unknown field": `
entities:
  - id: alpha
    name: Alpha
    category: Core
    color: "#112233"
    orbit: 3
`,
		"empty list": `entities: []`,
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc), 3)
			require.ErrorIs(t, err, ErrSchema)
		})
	}
}

func TestNormalizeErrors(t *testing.T) {
	one, zero := 1, 0

	empty := &Catalog{}
	assert.ErrorIs(t, empty.Normalize(3), ErrEmpty)

	dup := &Catalog{Entities: []Entity{
		{ID: "a", Color: "#000000"},
		{ID: "a", Color: "#000000"},
	}}
	assert.ErrorIs(t, dup.Normalize(3), ErrDuplicateID)

	outOfRange := &Catalog{Entities: []Entity{{ID: "a", Color: "#000000", Slot: &one}}}
	assert.ErrorIs(t, outOfRange.Normalize(3), ErrSlot)

	shared := &Catalog{Entities: []Entity{
		{ID: "a", Color: "#000000", Slot: &zero},
		{ID: "b", Color: "#000000", Slot: &zero},
	}}
	assert.ErrorIs(t, shared.Normalize(3), ErrSlot)
}

func TestMarshalRoundTrip(t *testing.T) {
	raw, err := Marshal(Default())
	require.NoError(t, err)
	c, err := Parse(raw, 3)
	require.NoError(t, err)
	assert.Equal(t, Default().Entities, c.Entities)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), 3)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWatchAppliesValidEdits(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validYAML), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	applied := make(chan *Catalog, 4)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, 3, zap.NewNop(), func(c *Catalog) { applied <- c })
	}()

	// Give the watcher time to register before editing
	time.Sleep(100 * time.Millisecond)

	require.NoError(t, os.WriteFile(path, []byte("entities: [{id: bad}]"), 0o644))
	time.Sleep(2 * reloadDebounce)

	edited := validYAML + `  - id: gamma
    name: Gamma
    category: Edge
    color: "#778899"
`
	require.NoError(t, os.WriteFile(path, []byte(edited), 0o644))

	select {
	case c := <-applied:
		assert.Equal(t, 3, c.Len())
	case <-time.After(3 * time.Second):
		t.Fatal("watcher did not apply edit")
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("watcher did not stop on cancel")
	}
}

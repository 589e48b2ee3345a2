package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		configPath, catalogPath = "", ""
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestCatalogList(t *testing.T) {
	out, err := execute(t, "catalog", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "traceflow")
	assert.Contains(t, out, "CropXon Robotics")
}

func TestCatalogDefaultRoundTripsThroughValidate(t *testing.T) {
	out, err := execute(t, "catalog", "default")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(out), 0o644))

	out, err = execute(t, "catalog", "validate", path)
	require.NoError(t, err)
	assert.Contains(t, out, "ok, 12 platforms")
}

func TestCatalogValidateRejectsBadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("entities: []\n"), 0o644))
	_, err := execute(t, "catalog", "validate", path)
	assert.Error(t, err)
}

func TestSimulate(t *testing.T) {
	out, err := execute(t, "simulate", "--frames", "1000")
	require.NoError(t, err)
	assert.Contains(t, out, "frames       1,000")
	assert.Contains(t, out, "platforms    12")
}

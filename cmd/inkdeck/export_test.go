package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportCommandWritesPoster(t *testing.T) {
	flags := &rootFlags{configPath: writeShowcase(t, sampleShowcase)}
	out := filepath.Join(t.TempDir(), "poster.png")

	cmd := newExportCmd(flags)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--out", out, "--index", "1", "--mode", "light"})

	require.NoError(t, cmd.Execute())

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestExportCommandIndexOutOfRange(t *testing.T) {
	flags := &rootFlags{configPath: writeShowcase(t, sampleShowcase)}

	cmd := newExportCmd(flags)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--index", "7"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of range")
}

package video

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchURL(t *testing.T) {
	assert.Equal(t, "https://watch.inkmatch.app/v/dQw4w9WgXcQ", WatchURL("dQw4w9WgXcQ"))
}

func TestCopyLinkRejectsEmptyID(t *testing.T) {
	assert.Error(t, CopyLink(""))
}

func TestWriteQRRejectsEmptyID(t *testing.T) {
	assert.Error(t, WriteQR("", filepath.Join(t.TempDir(), "qr.png")))
}

func TestWriteQRProducesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "qr.png")
	require.NoError(t, WriteQR("dQw4w9WgXcQ", path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

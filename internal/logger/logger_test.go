package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type logEntry map[string]any

func TestLoggerInfoWithFields(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log := New(Options{Writer: buf})

	log = log.WithFields(map[string]any{"items": 4, "mode": "dark"})
	log.Info("launching showcase")

	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "launching showcase", entry["message"])
	require.Equal(t, "dark", entry["mode"])
	require.Equal(t, "info", entry["level"])
}

func TestLoggerDebugSuppressedWithoutVerbose(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log := New(Options{Writer: buf})

	log.Debug("this should not appear")
	require.Equal(t, "", strings.TrimSpace(buf.String()))
}

func TestLoggerVerboseEnablesDebug(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log := New(Options{Verbose: true, Writer: buf})

	log.Debug("content already up to date")

	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "content already up to date", entry["message"])
	require.Equal(t, "debug", entry["level"])
}

func TestLoggerErrorIncludesContext(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log := New(Options{Writer: buf})

	log = log.WithFields(map[string]any{"repo": "https://git.inkmatch.app/content"})
	log.Error(errors.New("clone failed"), "sync aborted")

	var entry logEntry
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(buf.String())), &entry))
	require.Equal(t, "sync aborted", entry["message"])
	require.Equal(t, "https://git.inkmatch.app/content", entry["repo"])
	require.Equal(t, "clone failed", entry["error"])
}

func TestNilLoggerIsSafe(t *testing.T) {
	t.Parallel()

	var log *Logger
	log.Info("ignored")
	log.Debug("ignored")
	log.Error(errors.New("x"), "ignored")
	require.Nil(t, log.WithFields(map[string]any{"a": 1}))
}

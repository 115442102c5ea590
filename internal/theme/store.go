package theme

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// stateFile is the on-disk shape of the persisted theme state.
type stateFile struct {
	Version string `json:"version"`
	Mode    Mode   `json:"mode"`
}

// Store persists the process-wide theme mode. Reads and writes are guarded;
// writes go through a temp file and an atomic rename.
type Store struct {
	path string
	mu   sync.RWMutex
	mode Mode
}

// NewStore loads the persisted mode from path, falling back to the supplied
// default (typically SystemMode()) when no valid state exists yet.
func NewStore(path string, fallback Mode) (*Store, error) {
	if !fallback.valid() {
		fallback = ModeLight
	}

	s := &Store{path: path, mode: fallback}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create state directory: %w", err)
	}

	if err := s.load(); err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
	}

	return s, nil
}

func (s *Store) load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return err
	}

	var file stateFile
	if err := json.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse theme state: %w", err)
	}

	if file.Mode.valid() {
		s.mode = file.Mode
	}
	return nil
}

// Mode returns the current mode.
func (s *Store) Mode() Mode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mode
}

// SetMode flips the persisted mode and writes it to disk atomically.
func (s *Store) SetMode(mode Mode) error {
	if !mode.valid() {
		return fmt.Errorf("invalid theme mode: %q", mode)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.mode = mode

	data, err := json.MarshalIndent(stateFile{Version: "1.0", Mode: mode}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal theme state: %w", err)
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write temporary file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}

	return nil
}

// Package progress persists the read cursor to a sidecar file.
package progress

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Record is the sidecar file contents: the number of story characters
// typed so far.
type Record struct {
	Chars int `toml:"chars"`
}

// DefaultPath returns the sidecar path for a story file.
func DefaultPath(storyPath string) string {
	ext := filepath.Ext(storyPath)
	return strings.TrimSuffix(storyPath, ext) + ".progress.toml"
}

// Load reads the progress record. A missing file is created with a zero
// record; an existing but malformed file is an error, never a reset.
func Load(path string) (int, error) {
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return 0, fmt.Errorf("failed to stat progress file: %w", err)
		}
		if err := Save(path, 0); err != nil {
			return 0, err
		}
		return 0, nil
	}
	var rec Record
	if _, err := toml.DecodeFile(path, &rec); err != nil {
		return 0, fmt.Errorf("failed to decode progress file: %w", err)
	}
	if rec.Chars < 0 {
		return 0, fmt.Errorf("progress file holds negative count %d", rec.Chars)
	}
	return rec.Chars, nil
}

// Save overwrites the record in full.
func Save(path string, chars int) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(Record{Chars: chars}); err != nil {
		return fmt.Errorf("failed to encode progress: %w", err)
	}
	dir := filepath.Dir(path)
	tmpFile, err := os.CreateTemp(dir, "progress-*.toml")
	if err != nil {
		return fmt.Errorf("failed to create temp progress file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
	}()
	if _, err := tmpFile.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write progress: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close progress file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to write progress: %w", err)
	}
	return nil
}

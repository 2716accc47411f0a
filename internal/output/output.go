// Package output writes command results to disk without leaving partial
// files behind.
package output

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteFile writes data to a uniquely named temp file next to path and
// renames it into place, so readers see either the old file or the complete
// new one. Concurrent writers to the same path never share a temp file.
func WriteFile(path string, data []byte) error {
	// Create parent directories
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("creating directories: %w", err)
	}

	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := f.Name()

	_, err = f.Write(data)
	if closeErr := f.Close(); closeErr != nil && err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("writing temp file: %w", err)
	}

	// Atomic rename
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}

	return nil
}

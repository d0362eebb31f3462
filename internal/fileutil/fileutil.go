// Package fileutil writes rendered check results to disk.
package fileutil

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// FileExists checks if a regular file exists at the given path
func FileExists(filePath string) bool {
	info, err := os.Stat(filePath)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// WriteFileWithOverwrite writes data to a file, respecting the overwrite flag.
// Returns true if the file was written, false if it was skipped.
func WriteFileWithOverwrite(filePath string, data []byte, perm os.FileMode, overwrite bool) (bool, error) {
	if FileExists(filePath) && !overwrite {
		slog.Info("Output file already exists, skipping", "filename", filePath, "overwrite", overwrite)
		return false, nil
	}

	if err := os.MkdirAll(filepath.Dir(filePath), 0o755); err != nil {
		return false, fmt.Errorf("failed to create directory: %w", err)
	}

	if err := os.WriteFile(filePath, data, perm); err != nil {
		return false, fmt.Errorf("failed to write %s: %w", filePath, err)
	}

	return true, nil
}

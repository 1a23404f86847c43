package localdb

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// readTable decodes one table file into its wire records. A missing file is
// an empty table, not an error.
func readTable[R any](path string) ([]R, error) {
	content, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not read table file %q: %w", path, err)
	}
	var rows []R
	if err := json.Unmarshal(content, &rows); err != nil {
		return nil, fmt.Errorf("could not decode table file %q: %w", path, err)
	}
	return rows, nil
}

// writeTable encodes the rows to a temporary file and renames it into place,
// so a crash mid-write never leaves a truncated table behind.
func writeTable[R any](path string, rows []R) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("could not create directory for table %q: %w", path, err)
	}
	content, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return fmt.Errorf("could not encode table %q: %w", path, err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, content, 0644); err != nil {
		return fmt.Errorf("could not write table file %q: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("could not replace table file %q: %w", path, err)
	}
	return nil
}

// nextID returns the auto-increment id for a new row: one past the highest
// id ever handed out within the slice.
func nextID[T any](rows []T, id func(T) int64) int64 {
	var max int64
	for _, row := range rows {
		if id(row) > max {
			max = id(row)
		}
	}
	return max + 1
}

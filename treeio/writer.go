package treeio

import (
	"encoding/json"
	"fmt"
	"os"
)

// WriteFile serializes matrix to path as JSON, creating or truncating
// the file with standard permissions.
func WriteFile(path string, matrix [][]float64) error {
	data, err := json.MarshalIndent(resultJSON{Matrix: matrix}, "", "  ")
	if err != nil {
		return fmt.Errorf("treeio: WriteFile: marshaling result: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("treeio: WriteFile: writing %s: %w", path, err)
	}

	return nil
}

package gen

import (
	"fmt"
	"os"
	"path/filepath"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFile writes the generated source to path.
// It creates the parent directory if it doesn't exist.
func WriteFile(path, content string) error {
	err := os.MkdirAll(filepath.Dir(path), dirPerm)
	if err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	err = os.WriteFile(path, []byte(content), filePerm)
	if err != nil {
		return fmt.Errorf("writing file %s: %w", path, err)
	}

	return nil
}

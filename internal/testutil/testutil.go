// Package testutil provides test utilities and mock implementations.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// CreateTestImages creates placeholder image files in dir and returns their paths.
// The contents are not decoded by anything under test.
func CreateTestImages(t *testing.T, dir string, names ...string) []string {
	paths := make([]string, 0, len(names))

	for _, name := range names {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte("not really an image"), 0o644); err != nil {
			t.Fatalf("Failed to create test file: %v", err)
		}

		paths = append(paths, path)
	}

	return paths
}

// Package testutil provides common test helpers for the smart-find lifecycle hooks.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/light-merlin-dark/smart-find/internal/layout"
)

// WrapperContent is a find wrapper as written by smart-find-setup.
const WrapperContent = "#!/bin/sh\n# Smart find wrapper\nexec smart-find \"$@\"\n"

// OriginalFindContent is a stand-in for the find displaced at setup time.
const OriginalFindContent = "#!/bin/sh\n# original find\n"

// TempHome creates a temporary home directory and returns its layout.
// The install directory is not created; use WriteFindScript or WriteBackup.
func TempHome(t *testing.T) layout.Layout {
	t.Helper()

	return layout.FromHome(t.TempDir())
}

// WriteFile writes content to path, creating parent directories.
func WriteFile(t *testing.T, path, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("WriteFile: mkdir failed: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0755); err != nil {
		t.Fatalf("WriteFile: write failed: %v", err)
	}
}

// WriteFindScript writes content to the layout's find path.
func WriteFindScript(t *testing.T, l layout.Layout, content string) {
	t.Helper()
	WriteFile(t, l.FindScript, content)
}

// WriteBackup writes content to the layout's find.backup path.
func WriteBackup(t *testing.T, l layout.Layout, content string) {
	t.Helper()
	WriteFile(t, l.BackupScript, content)
}

// ReadFile returns the content of path, failing the test if it cannot be read.
func ReadFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: read failed: %v", err)
	}
	return string(data)
}

// Exists reports whether path exists.
func Exists(t *testing.T, path string) bool {
	t.Helper()

	_, err := os.Stat(path)
	if err == nil {
		return true
	}
	if !os.IsNotExist(err) {
		t.Fatalf("Exists: stat failed: %v", err)
	}
	return false
}

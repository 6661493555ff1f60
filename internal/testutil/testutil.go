// Package testutil provides common test helpers for the rualdi project.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// AliasesFileName mirrors aliases.FileName without importing the package,
// so aliases tests can use these helpers too.
const AliasesFileName = "rualdi.toml"

// BaseHeader is the header the store writes at the top of every aliases file.
const BaseHeader = "# Rualdi aliases configuration file\n"

// TempAliasesDir creates a temporary aliases directory. When content is not
// empty it is written to the aliases file; otherwise the directory is left
// empty so the store creates the file itself.
func TempAliasesDir(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	if content == "" {
		return dir
	}

	path := filepath.Join(dir, AliasesFileName)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("TempAliasesDir: write failed: %v", err)
	}

	return dir
}

// ReadAliasesFile returns the raw content of the aliases file in dir.
func ReadAliasesFile(t *testing.T, dir string) string {
	t.Helper()

	data, err := os.ReadFile(filepath.Join(dir, AliasesFileName))
	if err != nil {
		t.Fatalf("ReadAliasesFile: read failed: %v", err)
	}

	return string(data)
}

// MkdirAll creates the given directories below root and returns root.
func MkdirAll(t *testing.T, root string, dirs ...string) string {
	t.Helper()

	for _, d := range dirs {
		if err := os.MkdirAll(filepath.Join(root, d), 0700); err != nil {
			t.Fatalf("MkdirAll: %s failed: %v", d, err)
		}
	}

	return root
}

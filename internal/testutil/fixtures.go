// Package testutil builds shortcut folder fixtures for tests.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// WriteShortcut drops a minimal launchable .desktop file into dir. The
// target is a tiny shell script created next to it, so the entry passes
// validation.
func WriteShortcut(t *testing.T, dir, name string) string {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}
	target := filepath.Join(dir, name+".sh")
	if err := os.WriteFile(target, []byte("#!/bin/sh\nexit 0\n"), 0o755); err != nil {
		t.Fatalf("write target: %v", err)
	}
	path := filepath.Join(dir, name+".desktop")
	body := fmt.Sprintf("[Desktop Entry]\nName=%s\nExec=%q\n", name, target)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write shortcut: %v", err)
	}
	return path
}

// ShortcutRoot creates a shortcut tree: names in the root folder plus one
// subfolder per key of folders with its own entries.
func ShortcutRoot(t *testing.T, names []string, folders map[string][]string) string {
	t.Helper()
	root := t.TempDir()
	for _, n := range names {
		WriteShortcut(t, root, n)
	}
	for folder, entries := range folders {
		for _, n := range entries {
			WriteShortcut(t, filepath.Join(root, folder), n)
		}
	}
	return root
}

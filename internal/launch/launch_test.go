package launch

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/visualleap/gamelauncher/internal/shortcut"
)

func TestStartSpawnsDetachedProcess(t *testing.T) {
	dir := t.TempDir()
	marker := filepath.Join(dir, "ran")
	script := filepath.Join(dir, "game.sh")
	if err := os.WriteFile(script, []byte("#!/bin/sh\ntouch \"$1\"\n"), 0o755); err != nil {
		t.Fatalf("write script: %v", err)
	}
	pid, err := Start(shortcut.Entry{
		DisplayName: "Test Game",
		Target:      script,
		Args:        []string{marker},
		WorkingDir:  dir,
	})
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if pid <= 0 {
		t.Fatalf("pid = %d", pid)
	}
	// The detached child should complete on its own.
	deadline := 50
	for ; deadline > 0; deadline-- {
		if _, err := os.Stat(marker); err == nil {
			return
		}
		time.Sleep(50 * time.Millisecond)
	}
	t.Fatalf("spawned process never ran")
}

func TestStartMissingTargetFails(t *testing.T) {
	_, err := Start(shortcut.Entry{DisplayName: "Ghost", Target: "/no/such/binary"})
	if err == nil {
		t.Fatalf("expected error for missing target")
	}
}

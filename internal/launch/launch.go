package launch

import (
	"fmt"
	"os/exec"
	"syscall"

	"github.com/visualleap/gamelauncher/internal/logging/events"
	"github.com/visualleap/gamelauncher/internal/shortcut"
)

// Start spawns the entry's target detached in its own session, so the
// launcher can hide (or quit) without tearing the game down. The child's
// pid is returned on success.
func Start(e shortcut.Entry) (int, error) {
	events.Launch.Attempt(e.DisplayName, e.Target)
	cmd := exec.Command(e.Target, e.Args...)
	cmd.Dir = e.WorkingDir
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
	if err := cmd.Start(); err != nil {
		events.Launch.Failure(e.DisplayName, err)
		return 0, fmt.Errorf("launch %s: %w", e.DisplayName, err)
	}
	pid := cmd.Process.Pid
	// The child is intentionally orphaned; releasing avoids keeping its
	// handle (and a zombie) around.
	if err := cmd.Process.Release(); err != nil {
		events.Launch.Failure(e.DisplayName, err)
		return pid, fmt.Errorf("release %s: %w", e.DisplayName, err)
	}
	events.Launch.Success(e.DisplayName, pid)
	return pid, nil
}

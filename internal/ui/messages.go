package ui

import (
	"github.com/visualleap/gamelauncher/internal/backend"
	"github.com/visualleap/gamelauncher/internal/instance"
)

// backendEventMsg wraps a folder-watch or controller event for Bubble Tea.
type backendEventMsg struct {
	event backend.Event
}

// backendDoneMsg signals that the backend watcher closed its channel.
type backendDoneMsg struct{}

// controlMsg carries a verb received on the single-instance socket.
type controlMsg struct {
	cmd instance.Command
}

// controlDoneMsg signals that the control socket closed.
type controlDoneMsg struct{}

package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/visualleap/gamelauncher/internal/backend"
	"github.com/visualleap/gamelauncher/internal/instance"
)

// waitForBackendEvent blocks on the watcher channel and resurfaces the next
// event as a message. The handler re-arms it after each delivery.
func waitForBackendEvent(w *backend.Watcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		evt, ok := <-w.Events()
		if !ok {
			return backendDoneMsg{}
		}
		return backendEventMsg{event: evt}
	}
}

// waitForControlCommand reads the next verb from the instance socket.
func waitForControlCommand(ch <-chan instance.Command) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		cmd, ok := <-ch
		if !ok {
			return controlDoneMsg{}
		}
		return controlMsg{cmd: cmd}
	}
}

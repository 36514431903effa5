package app

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/visualleap/gamelauncher/internal/backend"
	"github.com/visualleap/gamelauncher/internal/catalog"
	"github.com/visualleap/gamelauncher/internal/instance"
	"github.com/visualleap/gamelauncher/internal/logging/events"
	"github.com/visualleap/gamelauncher/internal/settings"
	"github.com/visualleap/gamelauncher/internal/ui"
)

// Config describes user-provided application options.
type Config struct {
	Root         string
	SettingsPath string
	PadDevice    string
	EnablePad    bool
}

// Run bootstraps and executes the Bubble Tea program. When another
// instance already holds the control socket it is told to show itself and
// this process exits cleanly.
func Run(cfg Config) error {
	sets, err := settings.Load(cfg.SettingsPath)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	lock, err := instance.Acquire(instance.SocketPath())
	if errors.Is(err, instance.ErrAlreadyRunning) {
		events.App.SecondInstance()
		return instance.Send(instance.SocketPath(), instance.CmdShow)
	}
	if err != nil {
		return err
	}
	defer lock.Close()

	cat, err := catalog.Scan(cfg.Root)
	if err != nil {
		return err
	}

	watcher := backend.NewWatcher(cfg.Root, cfg.PadDevice, sets.JoystickScrollSpeed, cfg.EnablePad)
	defer watcher.Stop()

	model := ui.NewModel(cfg.Root, cfg.SettingsPath, sets, cat, watcher, lock.Commands())
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err = program.Run()
	events.App.Shutdown()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

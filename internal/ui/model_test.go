package ui

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/visualleap/gamelauncher/internal/backend"
	"github.com/visualleap/gamelauncher/internal/catalog"
	"github.com/visualleap/gamelauncher/internal/input"
	"github.com/visualleap/gamelauncher/internal/instance"
	"github.com/visualleap/gamelauncher/internal/settings"
	"github.com/visualleap/gamelauncher/internal/testutil"
)

func newTestModel(t *testing.T, names []string, folders map[string][]string) *Model {
	t.Helper()
	root := testutil.ShortcutRoot(t, names, folders)
	cat, err := catalog.Scan(root)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	m := NewModel(root, filepath.Join(t.TempDir(), "launcher.ini"), settings.Default(), cat, nil, nil)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 38})
	return m
}

func keyMsg(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func runeMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestTabSwitchResetsSelection(t *testing.T) {
	m := newTestModel(t, []string{"alpha"}, map[string][]string{
		"Action": {"asteroids", "breakout"},
		"Puzzle": {"chess"},
	})
	if got := m.tabName(); got != "All" {
		t.Fatalf("initial tab = %q", got)
	}
	m.moveSelection(1, 0)
	if m.nav.Selected != 0 {
		t.Fatalf("selection = %d", m.nav.Selected)
	}
	m.Update(keyMsg(tea.KeyTab))
	if got := m.tabName(); got != "Action" {
		t.Fatalf("tab after switch = %q", got)
	}
	if m.nav.Selected != -1 || m.nav.LastSelected != -1 || m.nav.Scroll != 0 {
		t.Fatalf("selection state must reset on tab switch: %+v", m.nav)
	}
}

func TestTabSwitchWraps(t *testing.T) {
	m := newTestModel(t, []string{"alpha"}, map[string][]string{"Action": {"asteroids"}})
	m.Update(keyMsg(tea.KeyTab))
	m.Update(keyMsg(tea.KeyTab))
	if m.active != 0 {
		t.Fatalf("switching past the last tab must wrap, active = %d", m.active)
	}
	m.Update(keyMsg(tea.KeyShiftTab))
	if m.tabName() != "Action" {
		t.Fatalf("reverse wrap landed on %q", m.tabName())
	}
}

func TestFilterNarrowsEntries(t *testing.T) {
	m := newTestModel(t, []string{"asteroids", "breakout", "chess"}, nil)
	m.Update(runeMsg("ast"))
	vis := m.visibleEntries()
	if len(vis) != 1 || vis[0].DisplayName != "asteroids" {
		t.Fatalf("filter result = %+v", vis)
	}
	if m.nav.Scroll != 0 || m.nav.Selected != -1 {
		t.Fatalf("filter change must reset selection and scroll")
	}
	m.Update(keyMsg(tea.KeyBackspace))
	m.Update(keyMsg(tea.KeyBackspace))
	m.Update(keyMsg(tea.KeyBackspace))
	if m.filter != "" || len(m.visibleEntries()) != 3 {
		t.Fatalf("backspacing out the filter must restore everything")
	}
}

func TestEscapeClearsFilterBeforeHiding(t *testing.T) {
	m := newTestModel(t, []string{"asteroids"}, nil)
	m.Update(runeMsg("a"))
	m.Update(keyMsg(tea.KeyEsc))
	if m.hidden {
		t.Fatalf("first escape must only clear the filter")
	}
	if m.filter != "" {
		t.Fatalf("filter survived escape: %q", m.filter)
	}
	m.Update(keyMsg(tea.KeyEsc))
	if !m.hidden {
		t.Fatalf("second escape must hide")
	}
}

func TestHideClearsSelectionKeepsLast(t *testing.T) {
	m := newTestModel(t, []string{"asteroids", "breakout"}, nil)
	m.moveSelection(1, 0)
	m.moveSelection(1, 0)
	m.hide("test")
	if m.nav.Selected != -1 {
		t.Fatalf("hide must clear the live selection")
	}
	if m.nav.LastSelected != 1 {
		t.Fatalf("hide must keep the last selection, got %d", m.nav.LastSelected)
	}
	m.show()
	m.moveSelection(1, 0)
	if m.nav.Selected != 1 {
		t.Fatalf("movement after show must resume at the last selection, got %d", m.nav.Selected)
	}
}

func TestRefreshKeepsSelectionByPath(t *testing.T) {
	root := testutil.ShortcutRoot(t, []string{"breakout", "chess"}, nil)
	cat, err := catalog.Scan(root)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	m := NewModel(root, "", settings.Default(), cat, nil, nil)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 38})
	m.moveSelection(1, 0)
	m.moveSelection(1, 0)
	selected := m.visibleEntries()[m.nav.Selected].Path

	// A new entry sorting first shifts every index by one.
	testutil.WriteShortcut(t, root, "asteroids")
	m.refresh()

	vis := m.visibleEntries()
	if len(vis) != 3 {
		t.Fatalf("refresh missed the new entry: %d", len(vis))
	}
	if m.nav.Selected < 0 || vis[m.nav.Selected].Path != selected {
		t.Fatalf("selection must follow the entry path across a refresh")
	}
}

func TestRefreshClearsFilter(t *testing.T) {
	m := newTestModel(t, []string{"asteroids", "breakout"}, nil)
	m.Update(runeMsg("ast"))
	if len(m.visibleEntries()) != 1 {
		t.Fatalf("filter not applied")
	}
	m.refresh()
	if m.filter != "" {
		t.Fatalf("filter survived a refresh: %q", m.filter)
	}
	if got := len(m.visibleEntries()); got != 2 {
		t.Fatalf("full tab must return after a refresh, got %d entries", got)
	}
}

func TestRefreshDropsVanishedSelection(t *testing.T) {
	root := testutil.ShortcutRoot(t, []string{"breakout"}, nil)
	cat, err := catalog.Scan(root)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	m := NewModel(root, "", settings.Default(), cat, nil, nil)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 38})
	m.moveSelection(1, 0)
	path := m.visibleEntries()[0].Path
	if err := os.Remove(path); err != nil {
		t.Fatalf("remove: %v", err)
	}
	m.refresh()
	if m.nav.Selected != -1 {
		t.Fatalf("selection must clear when the entry is gone")
	}
}

func TestControlToggleAndQuit(t *testing.T) {
	m := newTestModel(t, []string{"asteroids"}, nil)
	m.Update(controlMsg{cmd: instance.CmdToggle})
	if !m.hidden {
		t.Fatalf("toggle must hide a visible launcher")
	}
	m.Update(controlMsg{cmd: instance.CmdToggle})
	if m.hidden {
		t.Fatalf("toggle must show a hidden launcher")
	}
	_, cmd := m.Update(controlMsg{cmd: instance.CmdQuit})
	if cmd == nil {
		t.Fatalf("quit must produce a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("quit command must stop the program")
	}
}

func TestPadEventsNavigate(t *testing.T) {
	m := newTestModel(t, []string{"asteroids", "breakout", "chess"}, nil)
	m.Update(backendEventMsg{event: backend.Event{Kind: backend.KindPadStatus, Connected: true}})
	if !m.padConnected {
		t.Fatalf("pad status not tracked")
	}
	m.Update(backendEventMsg{event: backend.Event{
		Kind: backend.KindPad,
		Pad:  input.Event{Kind: input.EvMove, DX: 1},
	}})
	if m.nav.Selected != 0 {
		t.Fatalf("first pad move must select the first item, got %d", m.nav.Selected)
	}
	m.Update(backendEventMsg{event: backend.Event{
		Kind: backend.KindPad,
		Pad:  input.Event{Kind: input.EvHide},
	}})
	if !m.hidden {
		t.Fatalf("pad hide button ignored")
	}
}

func TestLaunchFailureShowsModal(t *testing.T) {
	m := newTestModel(t, []string{"asteroids"}, nil)
	m.moveSelection(1, 0)
	// Break the target after the scan validated it.
	if err := os.Remove(m.visibleEntries()[0].Target); err != nil {
		t.Fatalf("remove target: %v", err)
	}
	m.Update(keyMsg(tea.KeyEnter))
	if m.errMsg == "" {
		t.Fatalf("launch failure must surface an error")
	}
	if m.hidden {
		t.Fatalf("launcher must stay visible after a failed launch")
	}
	m.Update(runeMsg("x"))
	if m.errMsg != "" {
		t.Fatalf("any key must dismiss the modal")
	}
}

func TestLaunchSuccessHides(t *testing.T) {
	m := newTestModel(t, []string{"asteroids"}, nil)
	m.moveSelection(1, 0)
	m.Update(keyMsg(tea.KeyEnter))
	if !m.hidden {
		t.Fatalf("successful launch must hide the launcher")
	}
}

func TestLastActiveTabPersistsAndRestores(t *testing.T) {
	root := testutil.ShortcutRoot(t, []string{"alpha"}, map[string][]string{"Action": {"asteroids"}})
	cat, err := catalog.Scan(root)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	iniPath := filepath.Join(t.TempDir(), "launcher.ini")
	m := NewModel(root, iniPath, settings.Default(), cat, nil, nil)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 38})
	m.Update(keyMsg(tea.KeyTab))

	saved, err := settings.Load(iniPath)
	if err != nil {
		t.Fatalf("load saved settings: %v", err)
	}
	if saved.LastActiveTab != 1 {
		t.Fatalf("tab switch must checkpoint the active tab, got %d", saved.LastActiveTab)
	}

	m2 := NewModel(root, iniPath, saved, cat, nil, nil)
	if m2.tabName() != "Action" {
		t.Fatalf("restored tab = %q", m2.tabName())
	}
}

func TestBackendDoneDetaches(t *testing.T) {
	m := newTestModel(t, []string{"asteroids"}, nil)
	m.Update(backendDoneMsg{})
	if m.backend != nil {
		t.Fatalf("backend must detach after its channel closes")
	}
}

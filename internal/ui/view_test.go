package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	tea "github.com/charmbracelet/bubbletea"
)

func TestViewHiddenRendersNothing(t *testing.T) {
	m := newTestModel(t, []string{"asteroids"}, nil)
	m.hide("test")
	if out := m.View(); out != "" {
		t.Fatalf("hidden view must be empty, got %d bytes", len(out))
	}
}

func TestViewFillsTheTerminal(t *testing.T) {
	m := newTestModel(t, []string{"asteroids"}, nil)
	out := m.View()
	lines := strings.Split(out, "\n")
	if len(lines) != m.height {
		t.Fatalf("view has %d lines, terminal has %d rows", len(lines), m.height)
	}
	if !strings.Contains(out, "▀") {
		t.Fatalf("frame must render halfblock cells")
	}
	footer := ansi.Strip(lines[len(lines)-1])
	if !strings.Contains(footer, "launch") {
		t.Fatalf("footer must show key help, got %q", footer)
	}
	if !strings.Contains(footer, "All") {
		t.Fatalf("footer must show the active tab, got %q", footer)
	}
}

func TestViewShowsFilterInFooter(t *testing.T) {
	m := newTestModel(t, []string{"asteroids"}, nil)
	m.Update(runeMsg("ast"))
	lines := strings.Split(m.View(), "\n")
	footer := ansi.Strip(lines[len(lines)-1])
	if !strings.Contains(footer, "filter: ast") {
		t.Fatalf("footer missing filter, got %q", footer)
	}
}

func TestViewModalReplacesFrame(t *testing.T) {
	m := newTestModel(t, []string{"asteroids"}, nil)
	m.errMsg = "exec format error"
	out := ansi.Strip(m.View())
	if !strings.Contains(out, "Launch failed") || !strings.Contains(out, "exec format error") {
		t.Fatalf("modal missing from view")
	}
}

func TestViewBeforeFirstResizeIsEmpty(t *testing.T) {
	m := newTestModel(t, []string{"asteroids"}, nil)
	m.Update(tea.WindowSizeMsg{Width: 0, Height: 0})
	if out := m.View(); out != "" {
		t.Fatalf("zero-size view must be empty")
	}
}

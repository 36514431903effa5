package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/visualleap/gamelauncher/internal/compose"
	"github.com/visualleap/gamelauncher/internal/input"
	"github.com/visualleap/gamelauncher/internal/logging/events"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	k := msg.(tea.KeyMsg)
	if key.Matches(k, m.km.Quit) {
		m.saveSettings()
		return tea.Quit
	}
	if m.hidden {
		return nil
	}
	if m.errMsg != "" {
		// Any key dismisses the error modal.
		m.errMsg = ""
		return nil
	}

	switch {
	case key.Matches(k, m.km.Hide):
		if m.filter != "" {
			m.clearFilter()
			m.nav.Clamp(m.grid())
			return nil
		}
		m.hide("escape")
	case key.Matches(k, m.km.Refresh):
		m.refresh()
	case key.Matches(k, m.km.NextTab):
		m.switchTab(m.active + 1)
	case key.Matches(k, m.km.PrevTab):
		m.switchTab(m.active - 1)
	case key.Matches(k, m.km.Launch):
		m.launchSelected()
	case key.Matches(k, m.km.PageUp):
		m.scrollBy(-m.grid().ViewHeight())
	case key.Matches(k, m.km.PageDown):
		m.scrollBy(m.grid().ViewHeight())
	case key.Matches(k, m.km.Up):
		m.moveSelection(0, -1)
	case key.Matches(k, m.km.Down):
		m.moveSelection(0, 1)
	case key.Matches(k, m.km.Left):
		m.moveSelection(-1, 0)
	case key.Matches(k, m.km.Right):
		m.moveSelection(1, 0)
	default:
		m.handleFilterKey(k)
	}
	return nil
}

// handleFilterKey feeds printable keys into the name filter. Any change
// resets the selection and scroll so the best match is in view.
func (m *Model) handleFilterKey(k tea.KeyMsg) {
	switch k.Type {
	case tea.KeyBackspace:
		if m.filter == "" {
			return
		}
		runes := []rune(m.filter)
		m.filter = string(runes[:len(runes)-1])
		if m.filter == "" {
			m.filtered = nil
			events.Filter.Cleared(m.tabName())
		} else {
			m.applyFilter()
			events.Filter.Backspace(m.tabName(), m.filter)
		}
	case tea.KeySpace:
		if m.filter == "" {
			return
		}
		m.filter += " "
		m.applyFilter()
		events.Filter.Append(m.tabName(), m.filter)
	case tea.KeyRunes:
		if k.Alt {
			return
		}
		m.filter += string(k.Runes)
		m.applyFilter()
		events.Filter.Append(m.tabName(), m.filter)
	default:
		return
	}
	m.nav.Selected = -1
	m.nav.LastSelected = -1
	m.nav.Scroll = 0
}

func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	ev := msg.(tea.MouseMsg)
	if m.hidden {
		return nil
	}
	if m.errMsg != "" {
		// The modal swallows mouse input; a button press dismisses it.
		// Wheel notches and motion do not.
		switch {
		case ev.Action != tea.MouseActionPress:
		case ev.Button == tea.MouseButtonLeft, ev.Button == tea.MouseButtonRight, ev.Button == tea.MouseButtonMiddle:
			m.errMsg = ""
		}
		return nil
	}
	px, py := compose.PointerToPixels(ev.X, ev.Y)

	switch {
	case ev.Button == tea.MouseButtonWheelUp:
		m.scrollBy(-m.sets.MouseScrollSpeed)
	case ev.Button == tea.MouseButtonWheelDown:
		m.scrollBy(m.sets.MouseScrollSpeed)
	case ev.Action == tea.MouseActionMotion:
		// The footer row and the tab strip are outside the grid; leaving
		// clears a pointer selection but never a directional one.
		if ev.Y >= m.frameRows() || py < m.grid().ContentTop() {
			m.nav.PointerLeave()
			return nil
		}
		if m.nav.Hover(m.grid(), px, py) && m.nav.Selected >= 0 {
			events.UI.Select(m.tabName(), m.nav.Selected, m.nav.Mode.String())
		}
	case ev.Action == tea.MouseActionPress && ev.Button == tea.MouseButtonLeft:
		frameW, _ := m.frameSize()
		for i, r := range compose.TabPlateRects(m.sets, m.cat.TabNames(), frameW) {
			if r.Contains(px, py) {
				m.switchTab(i)
				return nil
			}
		}
		if ev.Y >= m.frameRows() {
			return nil
		}
		if m.nav.Hover(m.grid(), px, py) && m.nav.Selected >= 0 {
			events.UI.Select(m.tabName(), m.nav.Selected, m.nav.Mode.String())
		}
		m.registerClick(m.nav.Selected)
	case ev.Action == tea.MouseActionPress && ev.Button == tea.MouseButtonRight:
		m.hide("mouse")
	}
	return nil
}

// doubleClickWindow is the longest gap between two clicks on the same
// item that still counts as a launch.
const doubleClickWindow = 400 * time.Millisecond

// registerClick launches on the second click of a double click; a single
// click only selects.
func (m *Model) registerClick(idx int) {
	now := time.Now()
	if idx >= 0 && idx == m.lastClickIdx && now.Sub(m.lastClickAt) <= doubleClickWindow {
		m.lastClickIdx = -1
		m.launchSelected()
		return
	}
	m.lastClickIdx = idx
	m.lastClickAt = now
}

func (m *Model) handlePad(ev input.Event) {
	if m.hidden {
		return
	}
	if m.errMsg != "" {
		if ev.Kind == input.EvLaunch || ev.Kind == input.EvHide {
			m.errMsg = ""
		}
		return
	}
	switch ev.Kind {
	case input.EvLaunch:
		events.Input.Button("launch")
		m.launchSelected()
	case input.EvHide:
		events.Input.Button("hide")
		m.hide("controller")
	case input.EvTabPrev:
		events.Input.Button("tab_prev")
		m.switchTab(m.active - 1)
	case input.EvTabNext:
		events.Input.Button("tab_next")
		m.switchTab(m.active + 1)
	case input.EvMove:
		events.Input.Direction("pad", ev.DX, ev.DY)
		m.moveSelection(ev.DX, ev.DY)
	case input.EvScroll:
		m.scrollBy(ev.ScrollPx)
	}
}

func (m *Model) moveSelection(dx, dy int) {
	if m.nav.Move(m.grid(), dx, dy) {
		events.UI.Select(m.tabName(), m.nav.Selected, m.nav.Mode.String())
	}
}

func (m *Model) scrollBy(px int) {
	if m.nav.ScrollBy(m.grid(), px) {
		events.UI.Scroll(m.tabName(), m.nav.Scroll)
	}
}

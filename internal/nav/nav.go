package nav

import "github.com/visualleap/gamelauncher/internal/layout"

// Mode tracks which input family owns the selection highlight.
type Mode int

const (
	// ModePointer selection follows the mouse cursor and clears when the
	// cursor leaves the grid.
	ModePointer Mode = iota
	// ModeDirectional selection was placed by keyboard or controller and
	// persists until pointer motion takes over.
	ModeDirectional
)

func (m Mode) String() string {
	if m == ModeDirectional {
		return "directional"
	}
	return "pointer"
}

// State is the per-tab selection and scroll state. All transitions keep
// two invariants: Selected is -1 or a valid index, and Scroll stays within
// [0, MaxScroll] of the current grid.
type State struct {
	Selected     int
	LastSelected int
	Scroll       int
	Mode         Mode
}

// New returns the state of a freshly opened tab.
func New() State {
	return State{Selected: -1, LastSelected: -1}
}

// Reset reverts to the fresh-tab state. Used on tab switches.
func (s *State) Reset() {
	*s = New()
}

// Hover moves the selection to the item under the pointer, if any.
// Returns true when the selection changed.
func (s *State) Hover(g layout.Grid, x, y int) bool {
	s.Mode = ModePointer
	idx := g.HitTest(x, y, s.Scroll)
	if idx == s.Selected {
		return false
	}
	s.Selected = idx
	if idx >= 0 {
		s.LastSelected = idx
	}
	return true
}

// PointerLeave clears a pointer-owned selection. A directional selection
// survives the cursor leaving the grid.
func (s *State) PointerLeave() bool {
	if s.Mode != ModePointer || s.Selected < 0 {
		return false
	}
	s.Selected = -1
	return true
}

// Move applies a directional step. With no current selection the last
// selection is resumed when still valid, otherwise the first item of the
// first fully visible row is picked. The selection is always scrolled
// fully into view afterwards.
func (s *State) Move(g layout.Grid, dx, dy int) bool {
	if g.Count == 0 {
		return false
	}
	s.Mode = ModeDirectional
	if s.Selected < 0 {
		if s.LastSelected >= 0 && s.LastSelected < g.Count {
			s.Selected = s.LastSelected
		} else {
			s.Selected = g.FirstFullyVisibleIndex(s.Scroll)
		}
		s.LastSelected = s.Selected
		s.Scroll = g.EnsureVisible(s.Scroll, s.Selected)
		return true
	}

	next := s.Selected
	cols := g.Cols
	switch {
	case dx < 0:
		if s.Selected%cols > 0 {
			next = s.Selected - 1
		}
	case dx > 0:
		if s.Selected%cols < cols-1 && s.Selected+1 < g.Count {
			next = s.Selected + 1
		}
	case dy < 0:
		if s.Selected >= cols {
			next = s.Selected - cols
		}
	case dy > 0:
		if s.Selected/cols < g.Rows-1 {
			next = min(s.Selected+cols, g.Count-1)
		}
	}
	if next == s.Selected {
		s.Scroll = g.EnsureVisible(s.Scroll, s.Selected)
		return false
	}
	s.Selected = next
	s.LastSelected = next
	s.Scroll = g.EnsureVisible(s.Scroll, next)
	return true
}

// ScrollBy shifts the viewport and clamps. Any actual scroll snaps the
// selection to the first fully visible item and switches to directional
// mode, so keyboard and controller navigation stay consistent with the
// new viewport.
func (s *State) ScrollBy(g layout.Grid, delta int) bool {
	before := s.Scroll
	s.Scroll = g.ClampScroll(s.Scroll + delta)
	if s.Scroll == before {
		return false
	}
	if g.Count > 0 {
		s.Mode = ModeDirectional
		s.Selected = g.FirstFullyVisibleIndex(s.Scroll)
		s.LastSelected = s.Selected
	}
	return true
}

// Clamp revalidates the state against a (possibly resized or refreshed)
// grid: out-of-range selections clear, the scroll offset re-clamps.
func (s *State) Clamp(g layout.Grid) {
	if s.Selected >= g.Count {
		s.Selected = -1
	}
	if s.LastSelected >= g.Count {
		s.LastSelected = -1
	}
	s.Scroll = g.ClampScroll(s.Scroll)
}

// Restore places the selection on idx after a refresh, or clears it when
// the previously selected entry is gone (idx < 0).
func (s *State) Restore(g layout.Grid, idx int) {
	if idx >= 0 && idx < g.Count {
		s.Selected = idx
		s.LastSelected = idx
		s.Scroll = g.EnsureVisible(s.Scroll, idx)
		return
	}
	s.Selected = -1
	s.Clamp(g)
}

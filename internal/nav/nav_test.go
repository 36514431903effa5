package nav

import (
	"testing"

	"github.com/visualleap/gamelauncher/internal/layout"
)

// threeColGrid lays out n items in three columns.
func threeColGrid(n, frameH int) layout.Grid {
	return layout.NewGrid(layout.Metrics{
		FrameW:          1040,
		FrameH:          frameH,
		TabHeight:       40,
		VerticalPadding: 4,
		IconSize:        256,
		SpacingX:        12,
		SpacingY:        12,
	}, n)
}

func TestMoveRightClampsAtRowEnd(t *testing.T) {
	g := threeColGrid(7, 2000)
	s := New()
	s.Selected = 2 // end of first row
	if s.Move(g, 1, 0) {
		t.Fatalf("right at row end must not move")
	}
	if s.Selected != 2 {
		t.Fatalf("selection drifted to %d", s.Selected)
	}
}

func TestMoveLeftClampsAtRowStart(t *testing.T) {
	g := threeColGrid(7, 2000)
	s := New()
	s.Selected = 3 // start of second row
	if s.Move(g, -1, 0) {
		t.Fatalf("left at row start must not move")
	}
}

func TestMoveUpRequiresFullRowAbove(t *testing.T) {
	g := threeColGrid(7, 2000)
	s := New()
	s.Selected = 1
	if s.Move(g, 0, -1) {
		t.Fatalf("up from the first row must not move")
	}
	s.Selected = 4
	if !s.Move(g, 0, -1) || s.Selected != 1 {
		t.Fatalf("up from 4 should land on 1, got %d", s.Selected)
	}
}

func TestMoveDownIntoShortLastRow(t *testing.T) {
	g := threeColGrid(7, 2000)
	s := New()
	s.Selected = 5 // row 1, col 2; last row holds only item 6
	if !s.Move(g, 0, 1) || s.Selected != 6 {
		t.Fatalf("down from 5 should clamp to 6, got %d", s.Selected)
	}
	// From the last row there is nowhere to go.
	if s.Move(g, 0, 1) {
		t.Fatalf("down from the last row must not move")
	}
}

func TestMoveResumesLastSelection(t *testing.T) {
	g := threeColGrid(7, 2000)
	s := New()
	s.LastSelected = 4
	if !s.Move(g, 0, 1) || s.Selected != 4 {
		t.Fatalf("first press should resume item 4, got %d", s.Selected)
	}
}

func TestMoveWithoutHistorySelectsFirstVisibleRow(t *testing.T) {
	g := threeColGrid(12, 500)
	s := New()
	s.Scroll = g.MaxScroll()
	if !s.Move(g, 0, 1) {
		t.Fatalf("press should create a selection")
	}
	want := g.FirstFullyVisibleIndex(g.MaxScroll())
	// Ensure-visible may pull the viewport back; the selection itself must
	// be the first item of the row that was fully visible.
	if s.Selected != want {
		t.Fatalf("selected %d, want %d", s.Selected, want)
	}
}

func TestMoveKeepsSelectionVisible(t *testing.T) {
	g := threeColGrid(12, 500)
	s := New()
	s.Selected = 0
	for i := 0; i < 3; i++ {
		s.Move(g, 0, 1)
	}
	if s.Selected != 9 {
		t.Fatalf("three downs from 0 should reach 9, got %d", s.Selected)
	}
	pad := layout.SelectionInflate + layout.SelectionExtension + layout.SelectionPadding
	r := g.IconRect(9).Inflate(pad)
	if r.Bottom()-s.Scroll > g.FrameH {
		t.Fatalf("selection not scrolled into view: bottom %d, frame %d", r.Bottom()-s.Scroll, g.FrameH)
	}
}

func TestHoverSelectsAndLeaveClears(t *testing.T) {
	g := threeColGrid(7, 2000)
	s := New()
	icon := g.IconRect(2)
	if !s.Hover(g, icon.X+5, icon.Y+5) || s.Selected != 2 {
		t.Fatalf("hover should select 2, got %d", s.Selected)
	}
	if !s.PointerLeave() || s.Selected != -1 {
		t.Fatalf("pointer leave should clear a pointer selection")
	}
}

func TestDirectionalSelectionSurvivesPointerLeave(t *testing.T) {
	g := threeColGrid(7, 2000)
	s := New()
	s.Move(g, 0, 1)
	if s.PointerLeave() {
		t.Fatalf("directional selection must survive the cursor leaving")
	}
	if s.Selected < 0 {
		t.Fatalf("selection cleared unexpectedly")
	}
}

func TestScrollBySnapsDirectionalSelection(t *testing.T) {
	g := threeColGrid(12, 500)
	s := New()
	s.Move(g, 0, 1) // directional selection on first row
	if !s.ScrollBy(g, g.ItemH) {
		t.Fatalf("scroll should move")
	}
	if s.Selected != g.FirstFullyVisibleIndex(s.Scroll) {
		t.Fatalf("directional selection did not snap: %d", s.Selected)
	}
	if s.Scroll < 0 || s.Scroll > g.MaxScroll() {
		t.Fatalf("scroll out of range: %d", s.Scroll)
	}
}

func TestScrollWithoutSelectionPicksFirstVisible(t *testing.T) {
	g := threeColGrid(12, 500)
	s := New()
	if !s.ScrollBy(g, g.ItemH) {
		t.Fatalf("scroll should move")
	}
	if s.Mode != ModeDirectional {
		t.Fatalf("scrolling must hand ownership to directional mode")
	}
	if s.Selected != g.FirstFullyVisibleIndex(s.Scroll) {
		t.Fatalf("selection after scroll = %d", s.Selected)
	}
}

func TestScrollByClampsAtEdges(t *testing.T) {
	g := threeColGrid(12, 500)
	s := New()
	if s.ScrollBy(g, -100) {
		t.Fatalf("scrolling above the top must be a no-op")
	}
	s.Scroll = g.MaxScroll()
	if s.ScrollBy(g, 100) {
		t.Fatalf("scrolling past the bottom must be a no-op")
	}
}

func TestClampAfterShrink(t *testing.T) {
	big := threeColGrid(12, 500)
	s := New()
	s.Selected = 11
	s.LastSelected = 11
	s.Scroll = big.MaxScroll()
	small := threeColGrid(2, 500)
	s.Clamp(small)
	if s.Selected != -1 || s.LastSelected != -1 {
		t.Fatalf("out-of-range selection must clear: %+v", s)
	}
	if s.Scroll != 0 {
		t.Fatalf("scroll must re-clamp to 0, got %d", s.Scroll)
	}
}

func TestRestoreAfterRefresh(t *testing.T) {
	g := threeColGrid(7, 2000)
	s := New()
	s.Restore(g, 5)
	if s.Selected != 5 || s.LastSelected != 5 {
		t.Fatalf("restore did not reselect: %+v", s)
	}
	s.Restore(g, -1)
	if s.Selected != -1 {
		t.Fatalf("restore with a vanished entry must clear the selection")
	}
}

func TestResetClearsEverything(t *testing.T) {
	g := threeColGrid(7, 2000)
	s := New()
	s.Move(g, 0, 1)
	s.ScrollBy(g, 50)
	s.Reset()
	if s != New() {
		t.Fatalf("reset state = %+v", s)
	}
}

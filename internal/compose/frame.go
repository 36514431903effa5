package compose

import (
	"image"
	"strings"

	"github.com/visualleap/gamelauncher/internal/layout"
	"github.com/visualleap/gamelauncher/internal/settings"
)

const (
	tabPlateMarginY = 4
	tabPlateGap     = 6
	tabPlatePadX    = 16
	tabStripStartX  = 8
	messageFontSize = 18

	// EmptyTabMessage is shown when the active tab has no launchable
	// entries.
	EmptyTabMessage = "No shortcuts found"
)

// Item is one grid cell to draw.
type Item struct {
	Label string
	Icon  *image.RGBA
}

// Scene is everything one redraw needs.
type Scene struct {
	Settings settings.Settings
	Grid     layout.Grid
	Tabs     []string
	Active   int
	Items    []Item
	Selected int
	Scroll   int
}

type stripKey struct {
	w, h   int
	active int
	font   int
	fillA  settings.Color
	fillI  settings.Color
	names  string
}

// Compositor renders scenes into a reused frame. The tab strip is composed
// once per (tabs, active, size, settings) combination and blitted from
// cache on every other redraw.
type Compositor struct {
	frame     *Frame
	stripKey  stripKey
	stripImg  *image.RGBA
	haveStrip bool
}

func NewCompositor() *Compositor {
	return &Compositor{}
}

// TabPlateRects computes the clickable plate rectangle of every tab for a
// given frame width. Shared by the renderer and the mouse hit test.
func TabPlateRects(s settings.Settings, tabs []string, frameW int) []layout.Rect {
	rects := make([]layout.Rect, len(tabs))
	x := tabStripStartX
	for i, name := range tabs {
		w := TextWidth(name, s.TabFontSize) + 2*tabPlatePadX
		rects[i] = layout.Rect{
			X: x,
			Y: tabPlateMarginY,
			W: w,
			H: s.TabHeight - 2*tabPlateMarginY,
		}
		x += w + tabPlateGap
	}
	return rects
}

// TabStripRect is the full-width bar the repair pass forces opaque.
func TabStripRect(s settings.Settings, frameW int) layout.Rect {
	return layout.Rect{X: 0, Y: 0, W: frameW, H: s.TabHeight}
}

// Render composites the scene and repairs the alpha channel. The returned
// frame is owned by the compositor and valid until the next call.
func (c *Compositor) Render(sc Scene) *Frame {
	g := sc.Grid
	if c.frame == nil || c.frame.W != g.FrameW || c.frame.H != g.FrameH {
		c.frame = NewFrame(g.FrameW, g.FrameH)
	}
	f := c.frame
	f.Clear()

	var regions []layout.Rect
	if len(sc.Items) == 0 {
		msgRect := layout.Rect{X: 0, Y: g.ContentTop(), W: f.W, H: f.H - g.ContentTop()}
		f.DrawTextRGB(EmptyTabMessage, msgRect, messageFontSize, ColorLabelText)
		regions = append(regions, msgRect)
	} else {
		regions = c.drawGrid(f, sc)
	}

	// The strip goes on last so partially scrolled rows never bleed into
	// it; the repair pass then makes it opaque before the item regions
	// are classified.
	c.drawTabStrip(f, sc)
	f.RepairAlpha(TabStripRect(sc.Settings, f.W), regions)
	return f
}

func (c *Compositor) drawGrid(f *Frame, sc Scene) []layout.Rect {
	g := sc.Grid
	first, last := g.VisibleRange(sc.Scroll)
	pad := layout.SelectionInflate + layout.SelectionPenWidth + layout.SelectionExtension
	gridArea := layout.Rect{X: 0, Y: g.ContentTop(), W: f.W, H: f.H - g.ContentTop()}
	regions := make([]layout.Rect, 0, last-first)
	for i := first; i < last; i++ {
		iconR := g.IconRect(i).Offset(0, -sc.Scroll)
		if icon := sc.Items[i].Icon; icon != nil {
			f.BlendImage(iconR, icon)
		} else {
			f.FillRGB(iconR, ColorPlaceholder)
		}
		if i == sc.Selected {
			// Dark offset stroke first, bright ring on top.
			sel := g.SelectionRect(i).Offset(0, -sc.Scroll)
			f.StrokeRGB(sel.Offset(2, 2), layout.SelectionPenWidth, ColorSelectionShadow)
			f.StrokeRGB(sel, layout.SelectionPenWidth, ColorAccent)
		}
		labelR := g.LabelRect(i).Offset(0, -sc.Scroll)
		f.DrawLabelRGB(sc.Items[i].Label, labelR, sc.Settings.LabelFontSize, ColorLabelText)

		region := g.ItemRect(i).Inflate(pad).Offset(0, -sc.Scroll).Intersect(gridArea)
		if !region.Empty() {
			regions = append(regions, region)
		}
	}
	return regions
}

func (c *Compositor) drawTabStrip(f *Frame, sc Scene) {
	activeFill := sc.Settings.TabActiveColor
	if sc.Active >= 0 && sc.Active < len(sc.Tabs) {
		activeFill = sc.Settings.ActiveTabColor(sc.Tabs[sc.Active])
	}
	key := stripKey{
		w:      f.W,
		h:      sc.Settings.TabHeight,
		active: sc.Active,
		font:   sc.Settings.TabFontSize,
		fillA:  activeFill,
		fillI:  sc.Settings.TabInactiveColor,
		names:  strings.Join(sc.Tabs, "\x00"),
	}
	if !c.haveStrip || key != c.stripKey {
		c.stripImg = renderTabStrip(key, sc)
		c.stripKey = key
		c.haveStrip = true
	}
	f.CopyImage(layout.Rect{X: 0, Y: 0}, c.stripImg)
}

func renderTabStrip(key stripKey, sc Scene) *image.RGBA {
	strip := NewFrame(key.w, key.h)
	strip.Clear()
	strip.FillRGB(layout.Rect{X: 0, Y: 0, W: key.w, H: key.h}, ColorTabBarFill)
	strip.FillRGB(layout.Rect{X: 0, Y: key.h - 1, W: key.w, H: 1}, ColorTabBorder)
	for i, r := range TabPlateRects(sc.Settings, sc.Tabs, key.w) {
		fill := key.fillI
		if i == sc.Active {
			fill = key.fillA
		}
		strip.FillRGB(r, fill)
		strip.DrawTextRGB(sc.Tabs[i], r, sc.Settings.TabFontSize, ColorLabelText)
	}
	return strip.Img
}

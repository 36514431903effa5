package layout

// Fixed design constants for the icon grid, in virtual pixels.
const (
	BaseIconSize = 256
	IconPadding  = 30
	GridMargin   = 24
	LabelHeight  = 70
	LabelSpacing = 8

	// Selection border geometry. The border is inflated around the icon
	// rect and the ensure-visible math extends it further so the stroke is
	// never clipped at the viewport edges.
	SelectionInflate   = 3
	SelectionPenWidth  = 4
	SelectionExtension = 5
	SelectionPadding   = 4
)

// Rect is an axis-aligned rectangle in virtual pixels.
type Rect struct {
	X, Y, W, H int
}

func (r Rect) Right() int  { return r.X + r.W }
func (r Rect) Bottom() int { return r.Y + r.H }
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Inflate grows the rectangle by d on every side.
func (r Rect) Inflate(d int) Rect {
	return Rect{X: r.X - d, Y: r.Y - d, W: r.W + 2*d, H: r.H + 2*d}
}

// Offset translates the rectangle.
func (r Rect) Offset(dx, dy int) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// Intersect clips r to o. The result may be empty.
func (r Rect) Intersect(o Rect) Rect {
	x1 := max(r.X, o.X)
	y1 := max(r.Y, o.Y)
	x2 := min(r.Right(), o.Right())
	y2 := min(r.Bottom(), o.Bottom())
	return Rect{X: x1, Y: y1, W: x2 - x1, H: y2 - y1}
}

// Metrics carries the settings-derived inputs of the grid computation.
type Metrics struct {
	FrameW, FrameH  int
	TabHeight       int
	VerticalPadding int
	IconSize        int
	SpacingX        int
	SpacingY        int
}

// Grid is the fully derived layout for a given item count. All rects are in
// content coordinates: frame coordinates at scroll zero. Screen position of
// a rect is its content position shifted up by the scroll offset.
type Grid struct {
	Metrics
	Count int

	Cols   int
	Rows   int
	ItemW  int
	ItemH  int
	StartX int
}

// NewGrid derives the grid layout. The computation is deterministic: the
// same metrics and count always produce identical geometry.
func NewGrid(m Metrics, count int) Grid {
	g := Grid{Metrics: m, Count: count}
	g.ItemW = m.IconSize + 2*IconPadding + m.SpacingX
	g.ItemH = m.IconSize + 2*IconPadding + LabelSpacing + LabelHeight + m.SpacingY
	avail := m.FrameW - 2*GridMargin
	g.Cols = avail / g.ItemW
	if g.Cols < 1 {
		g.Cols = 1
	}
	// Leftover width is split evenly so the grid sits centered.
	center := (avail - g.Cols*g.ItemW) / 2
	if center < 0 {
		center = 0
	}
	g.StartX = GridMargin + center
	if count > 0 {
		g.Rows = (count + g.Cols - 1) / g.Cols
	}
	return g
}

// ContentTop is the frame y where the grid area begins, just below the tab
// strip and its vertical padding.
func (g Grid) ContentTop() int {
	return g.TabHeight + g.VerticalPadding
}

// ViewHeight is the visible height of the grid area.
func (g Grid) ViewHeight() int {
	h := g.FrameH - g.ContentTop()
	if h < 0 {
		return 0
	}
	return h
}

// ContentHeight is the total scrollable height of the grid, including the
// top and bottom margins.
func (g Grid) ContentHeight() int {
	if g.Rows == 0 {
		return 0
	}
	return 2*GridMargin + g.Rows*g.ItemH
}

// MaxScroll bounds the scroll offset. Zero when everything fits.
func (g Grid) MaxScroll() int {
	m := g.ContentHeight() - g.ViewHeight()
	if m < 0 {
		return 0
	}
	return m
}

// ClampScroll forces a scroll offset into [0, MaxScroll]. Applying it twice
// gives the same result as applying it once.
func (g Grid) ClampScroll(scroll int) int {
	if scroll < 0 {
		return 0
	}
	if m := g.MaxScroll(); scroll > m {
		return m
	}
	return scroll
}

// ItemRect returns the full cell of item i, spacing included.
func (g Grid) ItemRect(i int) Rect {
	col := i % g.Cols
	row := i / g.Cols
	return Rect{
		X: g.StartX + col*g.ItemW,
		Y: g.ContentTop() + GridMargin + row*g.ItemH,
		W: g.ItemW,
		H: g.ItemH,
	}
}

// IconRect returns the icon area of item i, centered in its cell.
func (g Grid) IconRect(i int) Rect {
	cell := g.ItemRect(i)
	return Rect{
		X: cell.X + (g.ItemW-g.SpacingX-g.IconSize)/2,
		Y: cell.Y + IconPadding,
		W: g.IconSize,
		H: g.IconSize,
	}
}

// LabelRect returns the label area below the icon of item i.
func (g Grid) LabelRect(i int) Rect {
	icon := g.IconRect(i)
	cell := g.ItemRect(i)
	return Rect{
		X: cell.X,
		Y: icon.Bottom() + LabelSpacing,
		W: g.ItemW - g.SpacingX,
		H: LabelHeight,
	}
}

// SelectionRect returns the border rectangle drawn around a selected icon.
func (g Grid) SelectionRect(i int) Rect {
	return g.IconRect(i).Inflate(SelectionInflate)
}

// hotRect is the clickable region of item i: icon plus label, without the
// trailing spacing.
func (g Grid) hotRect(i int) Rect {
	cell := g.ItemRect(i)
	return Rect{X: cell.X, Y: cell.Y, W: g.ItemW - g.SpacingX, H: g.ItemH - g.SpacingY}
}

// HitTest maps a frame-space point at the given scroll offset to an item
// index, or -1 when the point falls on margins, spacing, or past the last
// item. It is the inverse of ItemRect over the hot area.
func (g Grid) HitTest(x, y, scroll int) int {
	if g.Count == 0 || y < g.ContentTop() {
		return -1
	}
	cy := y + scroll
	cx := x - g.StartX
	ry := cy - g.ContentTop() - GridMargin
	if cx < 0 || ry < 0 {
		return -1
	}
	col := cx / g.ItemW
	row := ry / g.ItemH
	if col >= g.Cols {
		return -1
	}
	i := row*g.Cols + col
	if i >= g.Count {
		return -1
	}
	if !g.hotRect(i).Contains(x, cy) {
		return -1
	}
	return i
}

// FirstFullyVisibleRow returns the first row whose top edge sits at or
// below the top of the grid viewport for the given scroll offset.
func (g Grid) FirstFullyVisibleRow(scroll int) int {
	if scroll <= GridMargin {
		return 0
	}
	row := (scroll - GridMargin + g.ItemH - 1) / g.ItemH
	if g.Rows > 0 && row >= g.Rows {
		row = g.Rows - 1
	}
	return row
}

// FirstFullyVisibleIndex returns the first item of the first fully visible
// row, clamped to the item count. -1 when the grid is empty.
func (g Grid) FirstFullyVisibleIndex(scroll int) int {
	if g.Count == 0 {
		return -1
	}
	i := g.FirstFullyVisibleRow(scroll) * g.Cols
	if i >= g.Count {
		i = g.Count - 1
	}
	return i
}

// EnsureVisible returns the scroll offset that brings the selection border
// of item i, padded so the stroke survives clipping, fully into view.
func (g Grid) EnsureVisible(scroll, i int) int {
	if i < 0 || i >= g.Count {
		return g.ClampScroll(scroll)
	}
	r := g.IconRect(i).Inflate(SelectionInflate + SelectionExtension + SelectionPadding)
	if r.Y-scroll < g.ContentTop() {
		scroll = r.Y - g.ContentTop()
	} else if r.Bottom()-scroll > g.FrameH {
		scroll = r.Bottom() - g.FrameH
	}
	return g.ClampScroll(scroll)
}

// VisibleRange returns the half-open index range of items whose cells
// overlap the viewport at the given scroll offset.
func (g Grid) VisibleRange(scroll int) (int, int) {
	if g.Count == 0 {
		return 0, 0
	}
	top := scroll + g.ContentTop()
	bottom := scroll + g.FrameH
	gridTop := g.ContentTop() + GridMargin
	firstRow := (top - gridTop) / g.ItemH
	if firstRow < 0 {
		firstRow = 0
	}
	lastRow := (bottom - gridTop + g.ItemH - 1) / g.ItemH
	if lastRow > g.Rows {
		lastRow = g.Rows
	}
	first := firstRow * g.Cols
	last := lastRow * g.Cols
	if first > g.Count {
		first = g.Count
	}
	if last > g.Count {
		last = g.Count
	}
	return first, last
}

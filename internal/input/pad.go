package input

// Linux joystick button and axis numbers for an xpad-style controller.
const (
	ButtonA  = 0
	ButtonB  = 1
	ButtonLB = 4
	ButtonRB = 5

	AxisLeftX  = 0
	AxisLeftY  = 1
	AxisRightX = 3
	AxisRightY = 4
	AxisDpadX  = 6
	AxisDpadY  = 7

	// StickDeadzone is the raw magnitude below which an analog axis reads
	// as centered.
	StickDeadzone = 4000

	axisCount = 8
)

// PadState is one controller snapshot: a button bitmask and raw axes.
type PadState struct {
	Buttons uint32
	Axes    [axisCount]int16
}

func (p PadState) pressed(button int) bool {
	return p.Buttons&(1<<uint(button)) != 0
}

// axisDir normalizes a raw axis to -1, 0, or 1 with the deadzone applied.
func axisDir(v int16) int {
	switch {
	case int(v) < -StickDeadzone:
		return -1
	case int(v) > StickDeadzone:
		return 1
	default:
		return 0
	}
}

// EventKind enumerates resolved controller actions.
type EventKind int

const (
	EvLaunch EventKind = iota
	EvHide
	EvTabPrev
	EvTabNext
	EvMove
	EvScroll
)

// Event is a resolved controller action. DX/DY are set for EvMove,
// ScrollPx for EvScroll.
type Event struct {
	Kind     EventKind
	DX, DY   int
	ScrollPx int
}

// Resolve diffs two pad snapshots into actions. Buttons, the dpad, and the
// left stick are edge triggered: they fire on the press transition only.
// The dpad works per axis and takes priority over the left stick, which
// follows its dominant axis. The right stick Y is level triggered and
// yields a continuous scroll of scrollSpeed pixels per poll tick.
func Resolve(prev, cur PadState, scrollSpeed int) []Event {
	var out []Event

	buttonEdges := []struct {
		button int
		kind   EventKind
	}{
		{ButtonA, EvLaunch},
		{ButtonB, EvHide},
		{ButtonLB, EvTabPrev},
		{ButtonRB, EvTabNext},
	}
	for _, be := range buttonEdges {
		if cur.pressed(be.button) && !prev.pressed(be.button) {
			out = append(out, Event{Kind: be.kind})
		}
	}

	dpadX := axisDir(cur.Axes[AxisDpadX])
	dpadY := axisDir(cur.Axes[AxisDpadY])
	if dpadX != 0 && dpadX != axisDir(prev.Axes[AxisDpadX]) {
		out = append(out, Event{Kind: EvMove, DX: dpadX})
	}
	if dpadY != 0 && dpadY != axisDir(prev.Axes[AxisDpadY]) {
		out = append(out, Event{Kind: EvMove, DY: dpadY})
	}

	if dpadX == 0 && dpadY == 0 {
		if ev, ok := leftStickEdge(prev, cur); ok {
			out = append(out, ev)
		}
	}

	if dir := axisDir(cur.Axes[AxisRightY]); dir != 0 {
		out = append(out, Event{Kind: EvScroll, ScrollPx: dir * scrollSpeed})
	}
	return out
}

// leftStickEdge reports a move when the stick's dominant axis crosses out
// of the deadzone.
func leftStickEdge(prev, cur PadState) (Event, bool) {
	cx, cy := cur.Axes[AxisLeftX], cur.Axes[AxisLeftY]
	dx, dy := axisDir(cx), axisDir(cy)
	if dx == 0 && dy == 0 {
		return Event{}, false
	}
	if abs16(cx) >= abs16(cy) {
		dy = 0
	} else {
		dx = 0
	}
	px, py := axisDir(prev.Axes[AxisLeftX]), axisDir(prev.Axes[AxisLeftY])
	if dx != 0 && dx != px {
		return Event{Kind: EvMove, DX: dx}, true
	}
	if dy != 0 && dy != py {
		return Event{Kind: EvMove, DY: dy}, true
	}
	return Event{}, false
}

func abs16(v int16) int {
	if v < 0 {
		return -int(v)
	}
	return int(v)
}

package settings

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// PosUnset marks a window coordinate that has never been persisted.
const PosUnset = -32768

// Color is a packed 0xRRGGBB value.
type Color uint32

// RGB unpacks the color channels.
func (c Color) RGB() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

func (c Color) String() string {
	return fmt.Sprintf("0x%06X", uint32(c))
}

// ParseColor accepts 0xRRGGBB or #RRGGBB.
func ParseColor(s string) (Color, error) {
	t := strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(t, "0x"), strings.HasPrefix(t, "0X"):
		t = t[2:]
	case strings.HasPrefix(t, "#"):
		t = t[1:]
	}
	v, err := strconv.ParseUint(t, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("parse color %q: %w", s, err)
	}
	if v > 0xFFFFFF {
		return 0, fmt.Errorf("parse color %q: out of range", s)
	}
	return Color(v), nil
}

// Settings holds every user-tunable knob of the launcher. Values outside
// their documented ranges are clamped on load and before every save.
type Settings struct {
	// [Display]
	IconScale         float64
	LabelFontSize     int
	TabFontSize       int
	HorizontalSpacing int
	VerticalSpacing   int
	TabHeight         int
	VerticalPadding   int

	// [Input]
	MouseScrollSpeed    int
	JoystickScrollSpeed int

	// [Colors]
	TabActiveColor   Color
	TabInactiveColor Color

	// [TabColors] active-fill overrides keyed by lowercased tab name.
	TabColors map[string]Color

	// [Window]
	WindowWidth   int
	WindowHeight  int
	WindowX       int
	WindowY       int
	Maximized     bool
	LastActiveTab int
}

// ActiveTabColor resolves the active fill for a tab, honoring a per-tab
// override when one is configured.
func (s Settings) ActiveTabColor(name string) Color {
	if c, ok := s.TabColors[strings.ToLower(name)]; ok {
		return c
	}
	return s.TabActiveColor
}

// Default returns the factory settings.
func Default() Settings {
	return Settings{
		IconScale:           1.0,
		LabelFontSize:       36,
		TabFontSize:         16,
		HorizontalSpacing:   12,
		VerticalSpacing:     12,
		TabHeight:           40,
		VerticalPadding:     4,
		MouseScrollSpeed:    60,
		JoystickScrollSpeed: 120,
		TabActiveColor:      0x139362,
		TabInactiveColor:    0x46464D,
		WindowWidth:         800,
		WindowHeight:        600,
		WindowX:             PosUnset,
		WindowY:             PosUnset,
		Maximized:           false,
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp forces every value into its valid range. Idempotent.
func (s *Settings) Clamp() {
	s.IconScale = clampFloat(s.IconScale, 0.25, 2.0)
	s.LabelFontSize = clampInt(s.LabelFontSize, 8, 72)
	s.TabFontSize = clampInt(s.TabFontSize, 8, 50)
	s.HorizontalSpacing = clampInt(s.HorizontalSpacing, 0, 100)
	s.VerticalSpacing = clampInt(s.VerticalSpacing, 0, 100)
	s.TabHeight = clampInt(s.TabHeight, 20, 100)
	s.VerticalPadding = clampInt(s.VerticalPadding, 0, 50)
	// Scroll speeds are unclamped positive integers; anything else falls
	// back to the default.
	if s.MouseScrollSpeed < 1 {
		s.MouseScrollSpeed = Default().MouseScrollSpeed
	}
	if s.JoystickScrollSpeed < 1 {
		s.JoystickScrollSpeed = Default().JoystickScrollSpeed
	}
	if s.WindowWidth < 1 {
		s.WindowWidth = Default().WindowWidth
	}
	if s.WindowHeight < 1 {
		s.WindowHeight = Default().WindowHeight
	}
	if s.LastActiveTab < 0 {
		s.LastActiveTab = 0
	}
}

// ScaledIconSize applies IconScale to a base icon edge, rounding to the
// nearest pixel.
func (s Settings) ScaledIconSize(base int) int {
	return int(float64(base)*s.IconScale + 0.5)
}

// Load reads settings from an INI file. A missing file yields the defaults
// without an error; malformed values fall back per key.
func Load(path string) (Settings, error) {
	s := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, fmt.Errorf("read settings: %w", err)
	}
	applyINI(&s, string(data))
	s.Clamp()
	return s, nil
}

func applyINI(s *Settings, text string) {
	section := ""
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, ";") || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			section = strings.ToLower(strings.TrimSpace(line[1 : len(line)-1]))
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		applyKey(s, section, strings.ToLower(strings.TrimSpace(key)), strings.TrimSpace(value))
	}
}

func applyKey(s *Settings, section, key, value string) {
	setInt := func(dst *int) {
		if v, err := strconv.Atoi(value); err == nil {
			*dst = v
		}
	}
	setBool := func(dst *bool) {
		if v, err := strconv.ParseBool(value); err == nil {
			*dst = v
		}
	}
	setColor := func(dst *Color) {
		if v, err := ParseColor(value); err == nil {
			*dst = v
		}
	}
	switch section {
	case "display":
		switch key {
		case "iconscale":
			if v, err := strconv.ParseFloat(value, 64); err == nil {
				s.IconScale = v
			}
		case "labelfontsize":
			setInt(&s.LabelFontSize)
		case "tabfontsize":
			setInt(&s.TabFontSize)
		case "horizontalspacing":
			setInt(&s.HorizontalSpacing)
		case "verticalspacing":
			setInt(&s.VerticalSpacing)
		case "tabheight":
			setInt(&s.TabHeight)
		case "verticalpadding":
			setInt(&s.VerticalPadding)
		}
	case "input":
		switch key {
		case "mousescrollspeed":
			setInt(&s.MouseScrollSpeed)
		case "joystickscrollspeed":
			setInt(&s.JoystickScrollSpeed)
		}
	case "colors":
		switch key {
		case "tabactivecolor":
			setColor(&s.TabActiveColor)
		case "tabinactivecolor":
			setColor(&s.TabInactiveColor)
		}
	case "tabcolors":
		if v, err := ParseColor(value); err == nil {
			if s.TabColors == nil {
				s.TabColors = map[string]Color{}
			}
			s.TabColors[key] = v
		}
	case "window":
		switch key {
		case "width":
			setInt(&s.WindowWidth)
		case "height":
			setInt(&s.WindowHeight)
		case "x":
			setInt(&s.WindowX)
		case "y":
			setInt(&s.WindowY)
		case "maximized":
			setBool(&s.Maximized)
		case "lasttab":
			setInt(&s.LastActiveTab)
		}
	}
}

// Save writes the settings atomically: a temp file in the same directory is
// renamed over the destination.
func (s Settings) Save(path string) error {
	clamped := s
	clamped.Clamp()
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create settings directory: %w", err)
		}
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".launcher-*.ini")
	if err != nil {
		return fmt.Errorf("create temp settings: %w", err)
	}
	if _, err := tmp.WriteString(clamped.encodeINI()); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write settings: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close settings: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace settings: %w", err)
	}
	return nil
}

func (s Settings) encodeINI() string {
	var b strings.Builder
	section := func(name string, kv map[string]string, order []string) {
		fmt.Fprintf(&b, "[%s]\n", name)
		for _, k := range order {
			fmt.Fprintf(&b, "%s=%s\n", k, kv[k])
		}
		b.WriteString("\n")
	}
	section("Display", map[string]string{
		"IconScale":         strconv.FormatFloat(s.IconScale, 'g', -1, 64),
		"LabelFontSize":     strconv.Itoa(s.LabelFontSize),
		"TabFontSize":       strconv.Itoa(s.TabFontSize),
		"HorizontalSpacing": strconv.Itoa(s.HorizontalSpacing),
		"VerticalSpacing":   strconv.Itoa(s.VerticalSpacing),
		"TabHeight":         strconv.Itoa(s.TabHeight),
		"VerticalPadding":   strconv.Itoa(s.VerticalPadding),
	}, []string{"IconScale", "LabelFontSize", "TabFontSize", "HorizontalSpacing", "VerticalSpacing", "TabHeight", "VerticalPadding"})
	section("Input", map[string]string{
		"MouseScrollSpeed":    strconv.Itoa(s.MouseScrollSpeed),
		"JoystickScrollSpeed": strconv.Itoa(s.JoystickScrollSpeed),
	}, []string{"MouseScrollSpeed", "JoystickScrollSpeed"})
	section("Colors", map[string]string{
		"TabActiveColor":   s.TabActiveColor.String(),
		"TabInactiveColor": s.TabInactiveColor.String(),
	}, []string{"TabActiveColor", "TabInactiveColor"})
	if len(s.TabColors) > 0 {
		names := make([]string, 0, len(s.TabColors))
		kv := make(map[string]string, len(s.TabColors))
		for name, c := range s.TabColors {
			names = append(names, name)
			kv[name] = c.String()
		}
		sort.Strings(names)
		section("TabColors", kv, names)
	}
	section("Window", map[string]string{
		"Width":     strconv.Itoa(s.WindowWidth),
		"Height":    strconv.Itoa(s.WindowHeight),
		"X":         strconv.Itoa(s.WindowX),
		"Y":         strconv.Itoa(s.WindowY),
		"Maximized": strconv.FormatBool(s.Maximized),
		"LastTab":   strconv.Itoa(s.LastActiveTab),
	}, []string{"Width", "Height", "X", "Y", "Maximized", "LastTab"})
	return strings.TrimRight(b.String(), "\n") + "\n"
}

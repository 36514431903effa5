package ui

import (
	"reflect"
	"sort"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/visualleap/gamelauncher/internal/backend"
	"github.com/visualleap/gamelauncher/internal/catalog"
	"github.com/visualleap/gamelauncher/internal/compose"
	"github.com/visualleap/gamelauncher/internal/icon"
	"github.com/visualleap/gamelauncher/internal/instance"
	"github.com/visualleap/gamelauncher/internal/launch"
	"github.com/visualleap/gamelauncher/internal/layout"
	"github.com/visualleap/gamelauncher/internal/logging/events"
	"github.com/visualleap/gamelauncher/internal/nav"
	"github.com/visualleap/gamelauncher/internal/settings"
	"github.com/visualleap/gamelauncher/internal/shortcut"
	"github.com/visualleap/gamelauncher/internal/theme"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Model is the Bubble Tea model for the launcher. Every redraw composites
// the icon grid into a virtual pixel frame and encodes it as halfblock
// cells; the last terminal row stays a plain-text footer.
type Model struct {
	root         string
	settingsPath string
	sets         settings.Settings
	cat          catalog.Catalog

	active   int
	nav      nav.State
	filter   string
	filtered []int

	icons *icon.Cache
	comp  *compose.Compositor

	backend *backend.Watcher
	control <-chan instance.Command

	km   keyMap
	help help.Model

	width  int
	height int

	hidden       bool
	padConnected bool
	errMsg       string

	lastClickIdx int
	lastClickAt  time.Time

	handlers map[reflect.Type]msgHandler
}

// NewModel initialises the UI with a scanned catalog and live backends.
func NewModel(root, settingsPath string, sets settings.Settings, cat catalog.Catalog, watcher *backend.Watcher, control <-chan instance.Command) *Model {
	m := &Model{
		root:         root,
		settingsPath: settingsPath,
		sets:         sets,
		cat:          cat,
		nav:          nav.New(),
		icons:        icon.NewCache(),
		comp:         compose.NewCompositor(),
		backend:      watcher,
		control:      control,
		km:           defaultKeyMap(),
		help:         help.New(),
		lastClickIdx: -1,
	}
	if sets.LastActiveTab > 0 && sets.LastActiveTab < len(cat.Tabs) {
		m.active = sets.LastActiveTab
	}
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{}
	if cmd := waitForBackendEvent(m.backend); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if cmd := waitForControlCommand(m.control); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 2)
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(backendEventMsg{}):   m.handleBackendEventMsg,
		reflect.TypeOf(backendDoneMsg{}):    m.handleBackendDoneMsg,
		reflect.TypeOf(controlMsg{}):        m.handleControlMsg,
		reflect.TypeOf(controlDoneMsg{}):    m.handleControlDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// frameRows is the number of terminal rows given to the pixel frame; the
// last row holds the footer.
func (m *Model) frameRows() int {
	rows := m.height - 1
	if rows < 1 {
		rows = 1
	}
	return rows
}

// frameSize is the virtual pixel size of the frame. Before the first
// resize message the persisted window size stands in.
func (m *Model) frameSize() (int, int) {
	if m.width > 0 {
		return compose.FrameSize(m.width, m.frameRows())
	}
	return m.sets.WindowWidth, m.sets.WindowHeight
}

func (m *Model) grid() layout.Grid {
	w, h := m.frameSize()
	return layout.NewGrid(layout.Metrics{
		FrameW:          w,
		FrameH:          h,
		TabHeight:       m.sets.TabHeight,
		VerticalPadding: m.sets.VerticalPadding,
		IconSize:        m.sets.ScaledIconSize(layout.BaseIconSize),
		SpacingX:        m.sets.HorizontalSpacing,
		SpacingY:        m.sets.VerticalSpacing,
	}, len(m.visibleEntries()))
}

func (m *Model) tabName() string {
	if m.active >= 0 && m.active < len(m.cat.Tabs) {
		return m.cat.Tabs[m.active].Name
	}
	return ""
}

func (m *Model) tabEntries() []shortcut.Entry {
	if m.active >= 0 && m.active < len(m.cat.Tabs) {
		return m.cat.Tabs[m.active].Entries
	}
	return nil
}

// visibleEntries is the active tab narrowed by the filter, best match
// first.
func (m *Model) visibleEntries() []shortcut.Entry {
	entries := m.tabEntries()
	if m.filter == "" {
		return entries
	}
	out := make([]shortcut.Entry, len(m.filtered))
	for i, j := range m.filtered {
		out[i] = entries[j]
	}
	return out
}

func (m *Model) applyFilter() {
	if m.filter == "" {
		m.filtered = nil
		return
	}
	entries := m.tabEntries()
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.DisplayName
	}
	ranks := fuzzy.RankFindNormalizedFold(m.filter, names)
	sort.Sort(ranks)
	m.filtered = make([]int, len(ranks))
	for i, r := range ranks {
		m.filtered[i] = r.OriginalIndex
	}
}

func (m *Model) switchTab(idx int) {
	if len(m.cat.Tabs) == 0 {
		return
	}
	idx = ((idx % len(m.cat.Tabs)) + len(m.cat.Tabs)) % len(m.cat.Tabs)
	if idx == m.active {
		return
	}
	m.active = idx
	m.nav.Reset()
	m.clearFilter()
	m.sets.LastActiveTab = idx
	m.saveSettings()
	events.UI.TabSwitch(m.tabName())
}

func (m *Model) clearFilter() {
	if m.filter == "" {
		return
	}
	m.filter = ""
	m.filtered = nil
	events.Filter.Cleared(m.tabName())
}

// refresh rescans the shortcut folder, keeping the active tab and the
// selected entry whenever they survive the rescan.
func (m *Model) refresh() {
	var selectedPath string
	if vis := m.visibleEntries(); m.nav.Selected >= 0 && m.nav.Selected < len(vis) {
		selectedPath = vis[m.nav.Selected].Path
	}
	prevTab := m.tabName()

	cat, err := catalog.Scan(m.root)
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	m.cat = cat
	m.icons.Clear()
	m.clearFilter()

	if idx := cat.TabIndex(prevTab); idx >= 0 {
		m.active = idx
	} else {
		m.active = 0
		m.nav.Reset()
	}

	restored := -1
	if selectedPath != "" {
		for i, e := range m.visibleEntries() {
			if e.Path == selectedPath {
				restored = i
				break
			}
		}
	}
	m.nav.Restore(m.grid(), restored)
}

func (m *Model) launchSelected() {
	vis := m.visibleEntries()
	if m.nav.Selected < 0 || m.nav.Selected >= len(vis) {
		return
	}
	if _, err := launch.Start(vis[m.nav.Selected]); err != nil {
		m.errMsg = err.Error()
		return
	}
	m.hide("launch")
}

func (m *Model) hide(reason string) {
	if m.hidden {
		return
	}
	m.hidden = true
	m.nav.Selected = -1
	m.clearFilter()
	m.errMsg = ""
	events.App.Hide(reason)
}

func (m *Model) show() {
	if !m.hidden {
		return
	}
	m.hidden = false
	events.App.Show()
}

func (m *Model) saveSettings() {
	if m.settingsPath == "" {
		return
	}
	// Window size persistence is best effort.
	_ = m.sets.Save(m.settingsPath)
}

func (m *Model) handleBackendEventMsg(msg tea.Msg) tea.Cmd {
	evt := msg.(backendEventMsg).event
	rearm := waitForBackendEvent(m.backend)
	switch evt.Kind {
	case backend.KindRefresh:
		m.refresh()
	case backend.KindPadStatus:
		m.padConnected = evt.Connected
	case backend.KindPad:
		m.handlePad(evt.Pad)
	}
	return rearm
}

func (m *Model) handleBackendDoneMsg(tea.Msg) tea.Cmd {
	m.backend = nil
	return nil
}

func (m *Model) handleControlMsg(msg tea.Msg) tea.Cmd {
	cmd := msg.(controlMsg).cmd
	rearm := waitForControlCommand(m.control)
	switch cmd {
	case instance.CmdShow:
		m.show()
	case instance.CmdHide:
		m.hide("control")
	case instance.CmdToggle:
		if m.hidden {
			m.show()
		} else {
			m.hide("control")
		}
	case instance.CmdRefresh:
		m.refresh()
	case instance.CmdQuit:
		m.saveSettings()
		return tea.Quit
	}
	return rearm
}

func (m *Model) handleControlDoneMsg(tea.Msg) tea.Cmd {
	m.control = nil
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size := msg.(tea.WindowSizeMsg)
	m.width = size.Width
	m.height = size.Height
	m.help.Width = size.Width
	w, h := m.frameSize()
	m.sets.WindowWidth = w
	m.sets.WindowHeight = h
	// A resize drops back to no selection, like a fresh tab.
	m.nav.Selected = -1
	m.nav.Clamp(m.grid())
	m.saveSettings()
	events.UI.Resize(size.Width, size.Height, w, h)
	return nil
}

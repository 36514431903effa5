package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/visualleap/gamelauncher/internal/compose"
)

// View renders the pixel frame as halfblock cells plus a one-row footer.
// While hidden the launcher draws nothing at all.
func (m *Model) View() string {
	if m.hidden || m.width <= 0 || m.height <= 0 {
		return ""
	}

	var body string
	if m.errMsg != "" {
		body = m.renderModal()
	} else {
		frame := m.comp.Render(m.scene())
		body = frame.Encode(m.width, m.frameRows())
	}
	return body + "\n" + m.renderFooter()
}

func (m *Model) scene() compose.Scene {
	entries := m.visibleEntries()
	items := make([]compose.Item, len(entries))
	size := m.grid().IconSize
	for i, e := range entries {
		items[i] = compose.Item{Label: e.DisplayName}
		if e.IconPath == "" {
			continue
		}
		if img, err := m.icons.Get(e.IconPath, size); err == nil {
			items[i].Icon = img
		}
	}
	return compose.Scene{
		Settings: m.sets,
		Grid:     m.grid(),
		Tabs:     m.cat.TabNames(),
		Active:   m.active,
		Items:    items,
		Selected: m.nav.Selected,
		Scroll:   m.nav.Scroll,
	}
}

func (m *Model) renderModal() string {
	title := styles.ModalTitle.Render("Launch failed")
	body := styles.ModalBody.Render(m.errMsg)
	hint := styles.ModalHint.Render("press any key to dismiss")
	box := styles.ModalBorder.Render(title + "\n\n" + body + "\n\n" + hint)
	return lipgloss.Place(m.width, m.frameRows(), lipgloss.Center, lipgloss.Center, box)
}

func (m *Model) renderFooter() string {
	parts := []string{m.help.ShortHelpView(m.km.ShortHelp())}
	if name := m.tabName(); name != "" {
		parts = append(parts, styles.Info.Render(name))
	}
	if m.filter != "" {
		parts = append(parts, styles.FooterKey.Render(fmt.Sprintf("filter: %s", m.filter)))
	}
	if m.padConnected {
		parts = append(parts, styles.Info.Render("pad"))
	}
	line := strings.Join(parts, styles.Footer.Render("  │  "))
	return truncate.String(line, uint(m.width))
}

package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/visualleap/gamelauncher/internal/logging/events"
	"github.com/visualleap/gamelauncher/internal/shortcut"
)

// AllTabName is the tab holding shortcuts that live directly in the root
// folder. It is always the first tab when present.
const AllTabName = "All"

// Tab is a named group of launchable entries backed by one folder.
type Tab struct {
	Name    string
	Folder  string
	Entries []shortcut.Entry
}

// Catalog is the scanned tab set.
type Catalog struct {
	Root string
	Tabs []Tab
}

// TabNames returns the tab titles in display order.
func (c Catalog) TabNames() []string {
	names := make([]string, len(c.Tabs))
	for i, t := range c.Tabs {
		names[i] = t.Name
	}
	return names
}

// TabIndex finds a tab by name, -1 when absent.
func (c Catalog) TabIndex(name string) int {
	for i, t := range c.Tabs {
		if t.Name == name {
			return i
		}
	}
	return -1
}

// FindEntry locates a shortcut path within a tab, -1 when absent. Used to
// restore the selection across a refresh.
func (t Tab) FindEntry(path string) int {
	for i, e := range t.Entries {
		if e.Path == path {
			return i
		}
	}
	return -1
}

// Scan walks the shortcut root. Entries directly under root become the
// "All" tab; each immediate subfolder with at least one valid shortcut
// becomes its own tab. Invalid shortcuts are dropped silently (traced).
func Scan(root string) (Catalog, error) {
	c := Catalog{Root: root}
	events.Scan.Start(root)
	dirents, err := os.ReadDir(root)
	if err != nil {
		return c, fmt.Errorf("read shortcut folder: %w", err)
	}

	var rootEntries []shortcut.Entry
	var folders []Tab
	for _, d := range dirents {
		name := d.Name()
		if d.IsDir() {
			entries := scanFolder(filepath.Join(root, name))
			if len(entries) > 0 {
				folders = append(folders, Tab{
					Name:    name,
					Folder:  filepath.Join(root, name),
					Entries: entries,
				})
			}
			continue
		}
		if !strings.EqualFold(filepath.Ext(name), shortcut.Extension) {
			continue
		}
		if e, ok := loadEntry(filepath.Join(root, name)); ok {
			rootEntries = append(rootEntries, e)
		}
	}

	sort.Slice(folders, func(i, j int) bool {
		return strings.ToLower(folders[i].Name) < strings.ToLower(folders[j].Name)
	})
	sortEntries(rootEntries)

	if len(rootEntries) > 0 || len(folders) == 0 {
		c.Tabs = append(c.Tabs, Tab{Name: AllTabName, Folder: root, Entries: rootEntries})
	}
	c.Tabs = append(c.Tabs, folders...)

	total := 0
	for _, t := range c.Tabs {
		total += len(t.Entries)
	}
	events.Scan.Done(len(c.Tabs), total)
	return c, nil
}

func scanFolder(dir string) []shortcut.Entry {
	dirents, err := os.ReadDir(dir)
	if err != nil {
		events.Scan.Drop(dir, err.Error())
		return nil
	}
	var entries []shortcut.Entry
	for _, d := range dirents {
		if d.IsDir() || !strings.EqualFold(filepath.Ext(d.Name()), shortcut.Extension) {
			continue
		}
		if e, ok := loadEntry(filepath.Join(dir, d.Name())); ok {
			entries = append(entries, e)
		}
	}
	sortEntries(entries)
	return entries
}

func loadEntry(path string) (shortcut.Entry, bool) {
	e, err := shortcut.Parse(path)
	if err != nil {
		events.Scan.Drop(path, err.Error())
		return shortcut.Entry{}, false
	}
	if !e.Valid {
		events.Scan.Drop(path, "target does not resolve")
		return shortcut.Entry{}, false
	}
	return e, true
}

func sortEntries(entries []shortcut.Entry) {
	sort.Slice(entries, func(i, j int) bool {
		a := strings.ToLower(entries[i].DisplayName)
		b := strings.ToLower(entries[j].DisplayName)
		if a == b {
			return entries[i].Path < entries[j].Path
		}
		return a < b
	})
}

package shortcut

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Extension is the shortcut file suffix the scanner looks for.
const Extension = ".desktop"

// Entry is a parsed shortcut. Valid reports whether the launch target
// resolves; invalid entries are kept out of the grid by the scanner.
type Entry struct {
	Path        string
	DisplayName string
	Target      string
	Args        []string
	WorkingDir  string
	IconPath    string
	Valid       bool
}

// Parse reads a desktop-entry style shortcut file. The display name falls
// back to the file name without extension when the Name key is absent.
func Parse(path string) (Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Entry{}, fmt.Errorf("read shortcut: %w", err)
	}
	e := Entry{Path: path}
	inEntry := false
	for _, raw := range strings.Split(string(data), "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			inEntry = strings.EqualFold(strings.TrimSpace(line[1:len(line)-1]), "Desktop Entry")
			continue
		}
		if !inEntry {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		value = strings.TrimSpace(value)
		switch strings.TrimSpace(key) {
		case "Name":
			e.DisplayName = value
		case "Exec":
			argv := splitExec(value)
			if len(argv) > 0 {
				e.Target = argv[0]
				e.Args = argv[1:]
			}
		case "Path":
			e.WorkingDir = value
		case "Icon":
			e.IconPath = value
		}
	}
	if e.DisplayName == "" {
		e.DisplayName = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	e.Valid = e.Target != "" && targetResolves(e.Target)
	return e, nil
}

// splitExec tokenizes an Exec line: whitespace separated, double quotes
// group, and desktop-entry field codes (%f, %U, ...) are dropped.
func splitExec(s string) []string {
	var argv []string
	var cur strings.Builder
	quoted := false
	flush := func() {
		if cur.Len() == 0 {
			return
		}
		tok := cur.String()
		cur.Reset()
		if len(tok) == 2 && tok[0] == '%' {
			return
		}
		argv = append(argv, tok)
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '"':
			quoted = !quoted
		case !quoted && (c == ' ' || c == '\t'):
			flush()
		default:
			cur.WriteByte(c)
		}
	}
	flush()
	return argv
}

func targetResolves(target string) bool {
	if strings.ContainsRune(target, os.PathSeparator) {
		info, err := os.Stat(target)
		return err == nil && !info.IsDir()
	}
	_, err := exec.LookPath(target)
	return err == nil
}

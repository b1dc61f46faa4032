package source

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ukaji3/legacybridge-go/pkg/legacybridge/catalog"
)

// ErrSyntax indicates a malformed plugins.config line.
var ErrSyntax = errors.New("syntax error")

// SyntaxError reports the line of a plugins.config file that failed to parse.
type SyntaxError struct {
	Line    int
	Text    string
	Message string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d: %s: %v: %q", e.Line, e.Message, ErrSyntax, e.Text)
}

func (e *SyntaxError) Unwrap() error {
	return ErrSyntax
}

// pluginMenu is a submenu under construction.
type pluginMenu struct {
	label    string
	items    []*pluginItem
	submenus map[string]*pluginMenu
}

type pluginItem struct {
	menu *pluginMenu
	node catalog.MenuNode
}

func newPluginMenu(label string) *pluginMenu {
	return &pluginMenu{label: label, submenus: make(map[string]*pluginMenu)}
}

func (m *pluginMenu) submenu(label string) *pluginMenu {
	if sub, ok := m.submenus[label]; ok {
		return sub
	}
	sub := newPluginMenu(label)
	m.submenus[label] = sub
	m.items = append(m.items, &pluginItem{menu: sub})
	return sub
}

func (m *pluginMenu) node() catalog.MenuNode {
	children := make([]catalog.MenuNode, 0, len(m.items))
	for _, item := range m.items {
		if item.menu != nil {
			children = append(children, item.menu.node())
			continue
		}
		children = append(children, item.node)
	}
	return catalog.Submenu(m.label, children...)
}

// LoadPluginsConfig reads a plugins.config file.
func LoadPluginsConfig(path string) (*Environment, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParsePluginsConfig(f)
}

// ParsePluginsConfig parses plugin registration lines of the form
//
//	Plugins>Analyze, "Measure Stack", ij.plugin.Stack_Measure("measure")
//	Plugins>Analyze, "-"
//
// into a menu bar and command table. Blank lines and lines starting with
// '#' are ignored. A label registered twice keeps its last descriptor.
func ParsePluginsConfig(r io.Reader) (*Environment, error) {
	root := newPluginMenu("")
	commands := make(map[string]string)

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		path, label, descriptor, err := splitPluginLine(line)
		if err != nil {
			return nil, &SyntaxError{Line: lineNo, Text: line, Message: err.Error()}
		}

		menu := root
		for _, name := range path {
			menu = menu.submenu(name)
		}
		if label == catalog.SeparatorLabel {
			menu.items = append(menu.items, &pluginItem{node: catalog.Separator()})
			continue
		}
		menu.items = append(menu.items, &pluginItem{node: catalog.Leaf(label, nil)})
		commands[label] = descriptor
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	menus := make([]catalog.MenuNode, 0, len(root.items))
	for _, item := range root.items {
		menus = append(menus, item.menu.node())
	}
	return NewEnvironment(menus, commands), nil
}

// splitPluginLine splits `Menu>Sub, "Label", Descriptor`.
func splitPluginLine(line string) (path []string, label, descriptor string, err error) {
	menuPart, rest, ok := strings.Cut(line, ",")
	if !ok {
		return nil, "", "", errors.New("missing label")
	}
	for _, name := range strings.Split(menuPart, ">") {
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, "", "", errors.New("empty menu name")
		}
		path = append(path, name)
	}

	rest = strings.TrimSpace(rest)
	if !strings.HasPrefix(rest, `"`) {
		return nil, "", "", errors.New("label must be quoted")
	}
	end := strings.Index(rest[1:], `"`)
	if end < 0 {
		return nil, "", "", errors.New("unterminated label")
	}
	label = rest[1 : end+1]
	rest = strings.TrimSpace(rest[end+2:])

	if label == catalog.SeparatorLabel {
		if rest != "" {
			return nil, "", "", errors.New("separator takes no descriptor")
		}
		return path, label, "", nil
	}
	if label == "" {
		return nil, "", "", errors.New("empty label")
	}

	rest, ok = strings.CutPrefix(rest, ",")
	if !ok {
		return nil, "", "", errors.New("missing descriptor")
	}
	descriptor = strings.TrimSpace(rest)
	if descriptor == "" {
		return nil, "", "", errors.New("missing descriptor")
	}
	return path, label, descriptor, nil
}

// Package source loads legacy menu bars and command tables from files.
package source

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/ukaji3/legacybridge-go/pkg/legacybridge/catalog"
	"github.com/ukaji3/legacybridge-go/pkg/legacybridge/models"
	"gopkg.in/yaml.v3"
)

// ErrInvalidEnvironment indicates a malformed environment document.
var ErrInvalidEnvironment = errors.New("invalid environment")

// Environment is a static legacy menu bar and command table.
// It satisfies catalog.MenuBar and catalog.CommandTable.
type Environment struct {
	menus    []catalog.MenuNode
	commands map[string]string
}

var (
	_ catalog.MenuBar      = (*Environment)(nil)
	_ catalog.CommandTable = (*Environment)(nil)
)

// NewEnvironment returns an environment over menus and commands.
func NewEnvironment(menus []catalog.MenuNode, commands map[string]string) *Environment {
	if commands == nil {
		commands = make(map[string]string)
	}
	return &Environment{menus: menus, commands: commands}
}

// Menus returns the top-level menus.
func (e *Environment) Menus() []catalog.MenuNode {
	return e.menus
}

// Commands returns the command key to descriptor table.
func (e *Environment) Commands() map[string]string {
	return e.commands
}

// EnvironmentError describes why an environment document was rejected.
type EnvironmentError struct {
	// Item is the slash-joined menu path of the offending entry, if any.
	Item    string
	Message string
}

func (e *EnvironmentError) Error() string {
	if e.Item == "" {
		return fmt.Sprintf("%v: %s", ErrInvalidEnvironment, e.Message)
	}
	return fmt.Sprintf("%v: %s: %s", ErrInvalidEnvironment, e.Item, e.Message)
}

func (e *EnvironmentError) Unwrap() error {
	return ErrInvalidEnvironment
}

type environmentYAML struct {
	Menus    []itemYAML        `yaml:"menus"`
	Commands map[string]string `yaml:"commands"`
}

type itemYAML struct {
	Label     string        `yaml:"label"`
	Separator bool          `yaml:"separator"`
	Shortcut  *shortcutYAML `yaml:"shortcut"`
	Items     []itemYAML    `yaml:"items"`
}

type shortcutYAML struct {
	Key   string `yaml:"key"`
	Shift bool   `yaml:"shift"`
}

// LoadEnvironment reads an environment YAML file.
func LoadEnvironment(path string) (*Environment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseEnvironment(data)
}

// ParseEnvironment decodes an environment document:
//
//	menus:
//	  - label: File
//	    items:
//	      - label: Open...
//	        shortcut: {key: O}
//	      - separator: true
//	      - label: Close
//	commands:
//	  Open...: ij.plugin.Commands("open")
//
// Unknown fields are rejected.
func ParseEnvironment(data []byte) (*Environment, error) {
	var doc environmentYAML
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return NewEnvironment(nil, nil), nil
		}
		return nil, &EnvironmentError{Message: err.Error()}
	}

	menus := make([]catalog.MenuNode, 0, len(doc.Menus))
	for _, item := range doc.Menus {
		if item.Separator {
			return nil, &EnvironmentError{Item: item.Label, Message: "separator at top level"}
		}
		node, err := convertItem(item, "")
		if err != nil {
			return nil, err
		}
		if node.Kind == catalog.KindLeaf {
			// top-level entries are always menus, even when empty
			node = catalog.Submenu(node.Label)
		}
		menus = append(menus, node)
	}
	return NewEnvironment(menus, doc.Commands), nil
}

func convertItem(item itemYAML, parent string) (catalog.MenuNode, error) {
	where := item.Label
	if parent != "" {
		where = parent + "/" + item.Label
	}

	if item.Separator {
		if item.Label != "" || item.Shortcut != nil || len(item.Items) > 0 {
			return catalog.MenuNode{}, &EnvironmentError{Item: parent, Message: "separator cannot have label, shortcut or items"}
		}
		return catalog.Separator(), nil
	}
	if item.Label == "" {
		return catalog.MenuNode{}, &EnvironmentError{Item: parent, Message: "item without label"}
	}

	if len(item.Items) > 0 {
		if item.Shortcut != nil {
			return catalog.MenuNode{}, &EnvironmentError{Item: where, Message: "submenu cannot have a shortcut"}
		}
		children := make([]catalog.MenuNode, 0, len(item.Items))
		for _, child := range item.Items {
			node, err := convertItem(child, where)
			if err != nil {
				return catalog.MenuNode{}, err
			}
			children = append(children, node)
		}
		return catalog.Submenu(item.Label, children...), nil
	}

	var shortcut *catalog.Shortcut
	if item.Shortcut != nil {
		code, err := ParseKey(item.Shortcut.Key)
		if err != nil {
			return catalog.MenuNode{}, &EnvironmentError{Item: where, Message: err.Error()}
		}
		shortcut = &catalog.Shortcut{KeyCode: code, Shift: item.Shortcut.Shift}
	}
	return catalog.Leaf(item.Label, shortcut), nil
}

var namedKeys = map[string]int{
	"backspace": models.KeyCodeBackspace,
	"tab":       models.KeyCodeTab,
	"enter":     models.KeyCodeEnter,
	"escape":    models.KeyCodeEscape,
	"esc":       models.KeyCodeEscape,
	"space":     models.KeyCodeSpace,
	"pageup":    models.KeyCodePageUp,
	"pagedown":  models.KeyCodePageDown,
	"end":       models.KeyCodeEnd,
	"home":      models.KeyCodeHome,
	"left":      models.KeyCodeLeft,
	"up":        models.KeyCodeUp,
	"right":     models.KeyCodeRight,
	"down":      models.KeyCodeDown,
	"delete":    models.KeyCodeDelete,
	"insert":    models.KeyCodeInsert,
}

// ParseKey converts a key name ("O", "5", "F3", "Delete") into a legacy key code.
// Letters map to their upper-case code.
func ParseKey(name string) (int, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, errors.New("empty shortcut key")
	}
	if len(name) == 1 {
		c := name[0]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		if c > ' ' && c < 0x7f {
			return int(c), nil
		}
	}
	lower := strings.ToLower(name)
	if code, ok := namedKeys[lower]; ok {
		return code, nil
	}
	if rest, ok := strings.CutPrefix(lower, "f"); ok {
		if n, err := strconv.Atoi(rest); err == nil && n >= 1 && n <= 12 {
			return models.KeyCodeF1 + n - 1, nil
		}
	}
	return 0, fmt.Errorf("unknown shortcut key %q", name)
}

package models

import (
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Legacy (AWT virtual key) codes that do not map to a printable rune.
const (
	KeyCodeBackspace = 8
	KeyCodeTab       = 9
	KeyCodeEnter     = 10
	KeyCodeEscape    = 27
	KeyCodeSpace     = 32
	KeyCodePageUp    = 33
	KeyCodePageDown  = 34
	KeyCodeEnd       = 35
	KeyCodeHome      = 36
	KeyCodeLeft      = 37
	KeyCodeUp        = 38
	KeyCodeRight     = 39
	KeyCodeDown      = 40
	KeyCodeF1        = 112
	KeyCodeF12       = 123
	KeyCodeDelete    = 127
	KeyCodeInsert    = 155
)

// Accelerator is a keyboard shortcut attached to a menu entry.
// Exactly one of Ctrl and Meta is set.
type Accelerator struct {
	// KeyCode is the legacy virtual key code (letters use their upper-case ASCII code).
	KeyCode int `json:"key_code"`
	// Shift is carried through from the native shortcut.
	Shift bool `json:"shift,omitempty"`
	// Ctrl is set unless the platform replaces ctrl with meta.
	Ctrl bool `json:"ctrl,omitempty"`
	// Meta is set on platforms that use the command key.
	Meta bool `json:"meta,omitempty"`
}

// ModMask returns the tcell modifier mask for the accelerator.
func (a Accelerator) ModMask() tcell.ModMask {
	mod := tcell.ModNone
	if a.Shift {
		mod |= tcell.ModShift
	}
	if a.Ctrl {
		mod |= tcell.ModCtrl
	}
	if a.Meta {
		mod |= tcell.ModMeta
	}
	return mod
}

// TerminalKey maps the legacy key code onto a tcell key and rune.
func (a Accelerator) TerminalKey() (tcell.Key, rune) {
	code := a.KeyCode
	switch {
	case code >= KeyCodeF1 && code <= KeyCodeF12:
		return tcell.KeyF1 + tcell.Key(code-KeyCodeF1), 0
	case code >= 'A' && code <= 'Z':
		return tcell.KeyRune, rune(code - 'A' + 'a')
	}

	switch code {
	case KeyCodeBackspace:
		return tcell.KeyBackspace2, 0
	case KeyCodeTab:
		return tcell.KeyTab, 0
	case KeyCodeEnter:
		return tcell.KeyEnter, 0
	case KeyCodeEscape:
		return tcell.KeyEscape, 0
	case KeyCodePageUp:
		return tcell.KeyPgUp, 0
	case KeyCodePageDown:
		return tcell.KeyPgDn, 0
	case KeyCodeEnd:
		return tcell.KeyEnd, 0
	case KeyCodeHome:
		return tcell.KeyHome, 0
	case KeyCodeLeft:
		return tcell.KeyLeft, 0
	case KeyCodeUp:
		return tcell.KeyUp, 0
	case KeyCodeRight:
		return tcell.KeyRight, 0
	case KeyCodeDown:
		return tcell.KeyDown, 0
	case KeyCodeDelete:
		return tcell.KeyDelete, 0
	case KeyCodeInsert:
		return tcell.KeyInsert, 0
	}
	return tcell.KeyRune, rune(code)
}

// Event returns the terminal key event that triggers this accelerator.
func (a Accelerator) Event() *tcell.EventKey {
	key, ch := a.TerminalKey()
	return tcell.NewEventKey(key, ch, a.ModMask())
}

// String renders the accelerator as e.g. "Ctrl+Shift+O" or "Meta+F5".
func (a Accelerator) String() string {
	var parts []string
	if a.Meta {
		parts = append(parts, "Meta")
	}
	if a.Ctrl {
		parts = append(parts, "Ctrl")
	}
	if a.Shift {
		parts = append(parts, "Shift")
	}
	return strings.Join(append(parts, keyName(a.KeyCode)), "+")
}

func keyName(code int) string {
	switch {
	case code >= KeyCodeF1 && code <= KeyCodeF12:
		return "F" + strconv.Itoa(code-KeyCodeF1+1)
	case code == KeyCodeSpace:
		return "Space"
	case code > KeyCodeSpace && code < KeyCodeDelete:
		return string(rune(code))
	}
	key, _ := Accelerator{KeyCode: code}.TerminalKey()
	if name, ok := tcell.KeyNames[key]; ok {
		return name
	}
	return "?"
}

// MenuEntry is one level of a menu path.
type MenuEntry struct {
	// Label is the displayed menu text.
	Label string `json:"label"`
	// Weight orders siblings; lower sorts first.
	Weight float64 `json:"weight"`
	// Accelerator is the keyboard shortcut, nil if none.
	Accelerator *Accelerator `json:"accelerator,omitempty"`
}

// MenuPath is a root-to-leaf sequence of menu entries.
type MenuPath []MenuEntry

// Leaf returns the last entry of the path.
func (p MenuPath) Leaf() (MenuEntry, bool) {
	if len(p) == 0 {
		return MenuEntry{}, false
	}
	return p[len(p)-1], true
}

// Labels returns the entry labels root first.
func (p MenuPath) Labels() []string {
	labels := make([]string, len(p))
	for i, e := range p {
		labels[i] = e.Label
	}
	return labels
}

// String joins the labels with " > ".
func (p MenuPath) String() string {
	return strings.Join(p.Labels(), " > ")
}

// Clone returns an independent copy of the path.
func (p MenuPath) Clone() MenuPath {
	out := make(MenuPath, len(p), len(p)+1)
	copy(out, p)
	return out
}

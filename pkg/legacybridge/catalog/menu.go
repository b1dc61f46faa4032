package catalog

import (
	"runtime"

	"github.com/ukaji3/legacybridge-go/pkg/legacybridge/models"
)

// SeparatorLabel is the label legacy menus use for separator items.
const SeparatorLabel = "-"

// separatorGap is the weight a separator adds in place of the unit step.
const separatorGap = 10

// NodeKind tags a MenuNode variant.
type NodeKind int

const (
	// KindSubmenu is a node with ordered children.
	KindSubmenu NodeKind = iota
	// KindLeaf is an invokable item.
	KindLeaf
	// KindSeparator is a visual divider.
	KindSeparator
)

func (k NodeKind) String() string {
	switch k {
	case KindSubmenu:
		return "submenu"
	case KindLeaf:
		return "leaf"
	case KindSeparator:
		return "separator"
	}
	return "unknown"
}

// Shortcut is a native keyboard shortcut as exposed by the legacy menu.
type Shortcut struct {
	KeyCode int
	Shift   bool
}

// MenuNode is one item of a legacy menu tree.
type MenuNode struct {
	Kind     NodeKind
	Label    string
	Children []MenuNode
	Shortcut *Shortcut
}

// Submenu returns a submenu node.
func Submenu(label string, children ...MenuNode) MenuNode {
	return MenuNode{Kind: KindSubmenu, Label: label, Children: children}
}

// Leaf returns a leaf node; shortcut may be nil.
func Leaf(label string, shortcut *Shortcut) MenuNode {
	return MenuNode{Kind: KindLeaf, Label: label, Shortcut: shortcut}
}

// Separator returns a separator node.
func Separator() MenuNode {
	return MenuNode{Kind: KindSeparator, Label: SeparatorLabel}
}

// DefaultMetaForCtrl reports whether the running platform replaces ctrl with meta.
func DefaultMetaForCtrl() bool {
	return runtime.GOOS == "darwin"
}

// NewAccelerator converts a native shortcut into an Accelerator.
func NewAccelerator(keyCode int, shift, metaForCtrl bool) *models.Accelerator {
	return &models.Accelerator{
		KeyCode: keyCode,
		Shift:   shift,
		Ctrl:    !metaForCtrl,
		Meta:    metaForCtrl,
	}
}

// Crawler walks a menu tree and records the path of every leaf.
type Crawler struct {
	// MetaForCtrl selects meta instead of ctrl for accelerators.
	MetaForCtrl bool
}

// Crawl returns a label to menu path table for every leaf under roots.
// Leaves sharing a label overwrite earlier ones.
func (c Crawler) Crawl(roots []MenuNode) map[string]models.MenuPath {
	table := make(map[string]models.MenuPath)
	for i, root := range roots {
		c.visit(root, float64(i), nil, table)
	}
	return table
}

func (c Crawler) visit(node MenuNode, weight float64, parent models.MenuPath, table map[string]models.MenuPath) {
	entry := models.MenuEntry{Label: node.Label, Weight: weight}
	if node.Shortcut != nil {
		entry.Accelerator = NewAccelerator(node.Shortcut.KeyCode, node.Shortcut.Shift, c.MetaForCtrl)
	}
	path := append(parent.Clone(), entry)

	switch node.Kind {
	case KindSubmenu:
		w := -1.0
		for _, child := range node.Children {
			if child.Kind == KindSeparator {
				w += separatorGap
			} else {
				w++
			}
			c.visit(child, w, path, table)
		}
	case KindLeaf:
		table[node.Label] = path
	case KindSeparator:
		// weight only
	}
}

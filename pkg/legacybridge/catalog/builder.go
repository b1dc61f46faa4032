package catalog

import (
	"log/slog"
	"sort"

	"github.com/ukaji3/legacybridge-go/pkg/legacybridge/models"
)

// MenuBar exposes the live legacy menu structure.
type MenuBar interface {
	Menus() []MenuNode
}

// CommandTable exposes the live legacy key to descriptor table.
type CommandTable interface {
	Commands() map[string]string
}

// Builder produces command records from a menu bar and a command table.
type Builder struct {
	Crawler Crawler
	Logger  *slog.Logger
}

// NewBuilder returns a Builder using the platform accelerator convention.
func NewBuilder(logger *slog.Logger) *Builder {
	return &Builder{
		Crawler: Crawler{MetaForCtrl: DefaultMetaForCtrl()},
		Logger:  logger,
	}
}

func (b *Builder) logger() *slog.Logger {
	if b.Logger != nil {
		return b.Logger
	}
	return slog.Default()
}

// Build returns one record per command table entry. Both sources are read
// fresh on every call. A nil source yields an empty catalog.
func (b *Builder) Build(bar MenuBar, cmds CommandTable) []models.CommandRecord {
	records := []models.CommandRecord{}
	if bar == nil || cmds == nil {
		b.logger().Debug("legacy environment unavailable", "menus", bar != nil, "commands", cmds != nil)
		return records
	}

	paths := b.Crawler.Crawl(bar.Menus())
	commands := cmds.Commands()

	keys := make([]string, 0, len(commands))
	for key := range commands {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		records = append(records, newRecord(key, commands[key], paths))
	}

	b.logger().Debug("found legacy commands", "count", len(records), "menu_items", len(paths))
	return records
}

func newRecord(key, raw string, paths map[string]models.MenuPath) models.CommandRecord {
	className, arg := ParseDescriptor(raw)
	rec := models.CommandRecord{
		Key:       key,
		ClassName: className,
		Argument:  arg,
	}
	if path, ok := paths[key]; ok {
		p := path.Clone()
		rec.MenuPath = &p
	}
	return rec
}

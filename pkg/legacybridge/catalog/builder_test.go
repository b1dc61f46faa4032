package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/legacybridge-go/internal/testutil"
)

type staticMenus []MenuNode

func (m staticMenus) Menus() []MenuNode { return m }

type staticCommands map[string]string

func (c staticCommands) Commands() map[string]string { return c }

// liveCommands counts reads to prove the table is not cached.
type liveCommands struct {
	reads int
	table map[string]string
}

func (c *liveCommands) Commands() map[string]string {
	c.reads++
	return c.table
}

func newTestBuilder(t *testing.T) *Builder {
	b := NewBuilder(testutil.NewTestLogger(t))
	b.Crawler.MetaForCtrl = false
	return b
}

func TestBuild(t *testing.T) {
	b := newTestBuilder(t)
	records := b.Build(staticMenus(sampleMenus()), staticCommands{
		"Open...":           `ij.plugin.Commands("open")`,
		"Raw...":            `ij.plugin.Raw`,
		"Run Macro":         `ij.plugin.Macro_Runner("run`,
		"Image Sequence...": `ij.plugin.FolderOpener`,
	})

	require.Len(t, records, 4)
	assert.Equal(t, "Image Sequence...", records[0].Key)
	assert.Equal(t, "Open...", records[1].Key)

	open := records[1]
	assert.Equal(t, "ij.plugin.Commands", open.ClassName)
	assert.Equal(t, "open", open.Argument)
	require.NotNil(t, open.MenuPath)
	assert.Equal(t, "File > Open...", open.MenuPath.String())

	rec, ok := Lookup(records, "Run Macro")
	require.True(t, ok)
	assert.False(t, rec.HasMenu())
	assert.Nil(t, rec.MenuPath)
	assert.Equal(t, "ij.plugin.Macro_Runner", rec.ClassName)
	assert.Equal(t, "run", rec.Argument)

	raw, ok := Lookup(records, "Raw...")
	require.True(t, ok)
	assert.Equal(t, []string{"File", "Import", "Raw..."}, raw.MenuPath.Labels())
}

func TestBuild_EmptyDescriptorMap(t *testing.T) {
	records := newTestBuilder(t).Build(staticMenus(sampleMenus()), staticCommands{})
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestBuild_MissingCollaborator(t *testing.T) {
	b := newTestBuilder(t)

	assert.Empty(t, b.Build(nil, staticCommands{"New": "Foo"}))
	assert.Empty(t, b.Build(staticMenus(sampleMenus()), nil))
	assert.NotNil(t, b.Build(nil, nil))
}

func TestBuild_NoMenus(t *testing.T) {
	records := newTestBuilder(t).Build(staticMenus(nil), staticCommands{"New": "Foo"})
	require.Len(t, records, 1)
	assert.Nil(t, records[0].MenuPath)
}

func TestBuild_RereadsSources(t *testing.T) {
	b := newTestBuilder(t)
	cmds := &liveCommands{table: map[string]string{"New": "A"}}

	first := b.Build(staticMenus(sampleMenus()), cmds)
	cmds.table = map[string]string{"New": "B", "Undo": "C"}
	second := b.Build(staticMenus(sampleMenus()), cmds)

	assert.Equal(t, 2, cmds.reads)
	require.Len(t, first, 1)
	assert.Equal(t, "A", first[0].ClassName)
	require.Len(t, second, 2)
	assert.Equal(t, "B", second[0].ClassName)
}

func TestBuild_RecordPathIsCopied(t *testing.T) {
	b := newTestBuilder(t)
	cmds := staticCommands{"New": "A"}

	first := b.Build(staticMenus(sampleMenus()), cmds)
	(*first[0].MenuPath)[0].Label = "changed"

	second := b.Build(staticMenus(sampleMenus()), cmds)
	assert.Equal(t, "File", (*second[0].MenuPath)[0].Label)
}

func TestSuggest(t *testing.T) {
	records := newTestBuilder(t).Build(staticMenus(sampleMenus()), staticCommands{
		"Open...": "A",
		"Close":   "B",
		"Undo":    "C",
	})

	assert.Equal(t, []string{"Open..."}, Suggest(records, "open..", 1))
	assert.Equal(t, []string{"Close", "Undo", "Open..."}, Suggest(records, "Clse", 5))
	assert.Empty(t, Suggest(records, "x", 0))
	assert.Empty(t, Suggest(records, "x", -1))
}

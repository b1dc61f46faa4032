package legacybridge

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/legacybridge-go/pkg/legacybridge/catalog"
	"github.com/ukaji3/legacybridge-go/pkg/legacybridge/models"
	"github.com/ukaji3/legacybridge-go/pkg/legacybridge/source"
	"github.com/ukaji3/legacybridge-go/pkg/legacybridge/sparse"
	"github.com/ukaji3/legacybridge-go/pkg/legacybridge/table"
	"github.com/xuri/excelize/v2"
)

// LoadEnvironment reads a legacy environment file. Files ending in .yaml or
// .yml are environment documents; anything else is read as plugins.config.
func LoadEnvironment(path string) (*source.Environment, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, NewLoadError(path, "environment", ErrFileNotFound)
		}
		return nil, NewLoadError(path, "environment", err)
	}

	var (
		env       *source.Environment
		err       error
		component string
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		component = "environment"
		env, err = source.LoadEnvironment(path)
	default:
		component = "plugins"
		env, err = source.LoadPluginsConfig(path)
	}
	if err != nil {
		if errors.Is(err, source.ErrInvalidEnvironment) || errors.Is(err, source.ErrSyntax) {
			err = fmt.Errorf("%w: %w", ErrInvalidFormat, err)
		}
		return nil, NewLoadError(path, component, err)
	}
	return env, nil
}

// Catalog loads the environment at path and builds its command catalog.
func Catalog(path string, opts Options) ([]models.CommandRecord, error) {
	env, err := LoadEnvironment(path)
	if err != nil {
		return nil, err
	}

	logger := opts.logger()
	logger.Info("loaded legacy environment", "path", path, "menus", len(env.Menus()), "commands", len(env.Commands()))

	b := &catalog.Builder{
		Crawler: catalog.Crawler{MetaForCtrl: opts.ShouldUseMetaForCtrl()},
		Logger:  logger,
	}
	return b.Build(env, env), nil
}

// Table is a dense facade over a results sheet of an xlsx file.
type Table struct {
	*table.Facade

	path     string
	workbook *sparse.Workbook
}

// OpenTable opens the results sheet of an existing xlsx file.
// The sheet is created if the workbook does not have it yet.
func OpenTable(path string, opts Options) (*Table, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, NewLoadError(path, "table", ErrFileNotFound)
		}
		return nil, NewLoadError(path, "table", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, NewLoadError(path, "table", fmt.Errorf("%w: %w", ErrInvalidFormat, err))
	}
	return newTable(path, f, opts)
}

// CreateTable starts a new workbook that Save writes to path.
func CreateTable(path string, opts Options) (*Table, error) {
	return newTable(path, excelize.NewFile(), opts)
}

func newTable(path string, f *excelize.File, opts Options) (*Table, error) {
	wb, err := sparse.NewWorkbook(f, opts.SheetName())
	if err != nil {
		f.Close()
		return nil, NewLoadError(path, "table", err)
	}
	wb.NaNEmptyCells = opts.ShouldFillNaN()

	opts.logger().Debug("opened results table", "path", path, "sheet", wb.Sheet(), "rows", wb.Size())
	return &Table{
		Facade:   table.New(wb),
		path:     path,
		workbook: wb,
	}, nil
}

// Path returns the file the table is saved to.
func (t *Table) Path() string {
	return t.path
}

// Workbook returns the sparse table behind the facade.
func (t *Table) Workbook() *sparse.Workbook {
	return t.workbook
}

// Save writes the workbook to its path. It fails if an earlier edit failed.
func (t *Table) Save() error {
	if err := t.workbook.Err(); err != nil {
		return err
	}
	return t.workbook.File().SaveAs(t.path)
}

// Close releases the workbook.
func (t *Table) Close() error {
	return t.workbook.Close()
}

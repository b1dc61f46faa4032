package legacybridge

import (
	"log/slog"

	"github.com/ukaji3/legacybridge-go/pkg/legacybridge/catalog"
	"github.com/ukaji3/legacybridge-go/pkg/legacybridge/sparse"
)

// Options configures catalog and table loading.
type Options struct {
	// MetaForCtrl selects meta instead of ctrl for menu accelerators.
	// If nil, defaults to the running platform's convention.
	MetaForCtrl *bool
	// NaNEmptyCells fills appended table cells with NaN instead of 0.
	// If nil, defaults to false.
	NaNEmptyCells *bool
	// Sheet names the worksheet holding the table. Empty selects sparse.DefaultSheet.
	Sheet string
	// Logger receives diagnostics. If nil, slog.Default() is used.
	Logger *slog.Logger
}

// DefaultOptions returns default loading options.
func DefaultOptions() Options {
	return Options{
		Sheet: sparse.DefaultSheet,
	}
}

// ShouldUseMetaForCtrl returns whether accelerators use meta instead of ctrl.
func (o Options) ShouldUseMetaForCtrl() bool {
	if o.MetaForCtrl != nil {
		return *o.MetaForCtrl
	}
	return catalog.DefaultMetaForCtrl()
}

// ShouldFillNaN returns whether appended cells are filled with NaN.
func (o Options) ShouldFillNaN() bool {
	if o.NaNEmptyCells != nil {
		return *o.NaNEmptyCells
	}
	return false
}

// SheetName returns the worksheet to use.
func (o Options) SheetName() string {
	if o.Sheet == "" {
		return sparse.DefaultSheet
	}
	return o.Sheet
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

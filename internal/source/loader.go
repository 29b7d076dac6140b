// Package source loads the five business tables from the consolidated
// workbook (local .xlsx or Google Sheets) or, failing that, from the legacy
// folder of individual workbooks.
package source

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"arkmotors/internal/logger"
	"arkmotors/internal/sheets"
	"arkmotors/pkg/models"
)

// Loader reads a snapshot from the configured sources
type Loader struct {
	// Source is the consolidated workbook path or a Google Sheets URL
	Source string

	// LegacyDir holds the individual workbooks used when Source is unavailable
	LegacyDir string

	openSheets func(ctx context.Context, url string) (Workbook, error)
	now        func() time.Time
	log        zerolog.Logger
}

// NewLoader creates a loader for the given consolidated source and legacy folder
func NewLoader(source, legacyDir string) *Loader {
	return &Loader{
		Source:     source,
		LegacyDir:  legacyDir,
		openSheets: openSheets,
		now:        time.Now,
		log:        logger.WithComponent("source"),
	}
}

// Load reads every table. Tables that cannot be read are replaced by empty
// ones and recorded in Snapshot.Failures; only a missing source as a whole is
// an error, reported as ErrNoData.
func (l *Loader) Load(ctx context.Context) (*models.Snapshot, error) {
	const op = "Load"

	if sheets.IsSheetURL(l.Source) {
		wb, err := l.openReachableSheet(ctx)
		if err == nil {
			defer wb.Close()
			l.log.Info().Str("source", l.Source).Msg("Loading consolidated sheet")
			return l.consolidated(ctx, wb, l.Source), nil
		}
		l.log.Warn().Err(err).Str("source", l.Source).Msg("Cannot read Google Sheet, trying legacy folder")
	} else if l.Source != "" && fileExists(l.Source) {
		wb, err := openXLSX(l.Source)
		if err == nil {
			defer wb.Close()
			l.log.Info().Str("source", l.Source).Msg("Loading consolidated workbook")
			return l.consolidated(ctx, wb, l.Source), nil
		}
		l.log.Warn().Err(err).Str("source", l.Source).Msg("Cannot open consolidated workbook, trying legacy folder")
	}

	if l.LegacyDir == "" || !fileExists(filepath.Join(l.LegacyDir, LegacyIncomeFile)) {
		return nil, fmt.Errorf("%s: %w (consolidated %q, legacy folder %q)", op, ErrNoData, l.Source, l.LegacyDir)
	}

	l.log.Info().Str("dir", l.LegacyDir).Msg("Loading legacy workbooks")
	return l.legacy(ctx), nil
}

// openReachableSheet opens the Sheets source and lists its tabs. Creating the
// client makes no request, so a missing or forbidden sheet only shows up here.
func (l *Loader) openReachableSheet(ctx context.Context) (Workbook, error) {
	wb, err := l.openSheets(ctx, l.Source)
	if err != nil {
		return nil, err
	}
	if _, err := wb.SheetNames(ctx); err != nil {
		wb.Close()
		return nil, err
	}
	return wb, nil
}

func (l *Loader) consolidated(ctx context.Context, wb Workbook, origin string) *models.Snapshot {
	raw := make(map[models.TableID]models.Table, len(models.AllTables))
	failures := make(map[models.TableID]error)

	for _, s := range ConsolidatedSchemas() {
		t, err := readSchema(ctx, wb, s)
		if err != nil {
			l.fail(failures, NewLoadError("readSheet", s.Table, origin, err))
			t = emptyTable(s)
		}
		raw[s.Table] = t
	}
	return l.snapshot(raw, failures, origin)
}

func (l *Loader) legacy(ctx context.Context) *models.Snapshot {
	raw := make(map[models.TableID]models.Table, len(models.AllTables))
	failures := make(map[models.TableID]error)

	for _, s := range LegacySchemas() {
		path := filepath.Join(l.LegacyDir, s.File)
		t, err := readLegacy(ctx, path, s)
		switch {
		case err == nil:
		case errors.Is(err, ErrFileNotFound) && s.Optional:
			l.log.Debug().Str("file", s.File).Msg("Optional workbook absent")
			t = emptyTable(s)
		default:
			l.fail(failures, NewLoadError("readWorkbook", s.Table, path, err))
			t = emptyTable(s)
		}
		raw[s.Table] = t
	}
	return l.snapshot(raw, failures, l.LegacyDir)
}

func readLegacy(ctx context.Context, path string, s Schema) (models.Table, error) {
	if !fileExists(path) {
		return models.Table{}, ErrFileNotFound
	}
	wb, err := openXLSX(path)
	if err != nil {
		return models.Table{}, err
	}
	defer wb.Close()
	return readSchema(ctx, wb, s)
}

// readSchema reads one table from a workbook according to its schema
func readSchema(ctx context.Context, wb Workbook, s Schema) (models.Table, error) {
	sheet, err := resolveSheet(ctx, wb, s)
	if err != nil {
		return models.Table{}, err
	}

	rows, err := wb.Rows(ctx, sheet)
	if err != nil {
		return models.Table{}, fmt.Errorf("read sheet %q: %w", sheet, err)
	}

	t, err := buildTable(s.Table, rows, s.HeaderRow)
	if err != nil {
		return models.Table{}, fmt.Errorf("sheet %q: %w", sheet, err)
	}
	return applySchema(t, s), nil
}

// emptyTable is what a table is replaced with when it cannot be read
func emptyTable(s Schema) models.Table {
	return applySchema(models.Table{ID: s.Table, Columns: append([]string(nil), s.Placeholder...)}, s)
}

func (l *Loader) fail(failures map[models.TableID]error, err error) {
	var loadErr *LoadError
	if errors.As(err, &loadErr) {
		failures[loadErr.Table] = err
		log := logger.WithTable("source", string(loadErr.Table))
		log.Warn().Err(err).Msg("Table replaced by empty table")
	}
}

func (l *Loader) snapshot(raw map[models.TableID]models.Table, failures map[models.TableID]error, origin string) *models.Snapshot {
	return &models.Snapshot{
		EmployeeIncome: employeeIncome(raw[models.TableEmployeeIncome]),
		Purchases:      vehiclePurchases(raw[models.TableVehiclePurchase]),
		Ledger:         ledgerEntries(raw[models.TableLedger]),
		Reconditioning: reconditioning(raw[models.TableReconditioning]),
		Raw:            raw,
		Failures:       failures,
		Origin:         origin,
		LoadedAt:       l.now(),
	}
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

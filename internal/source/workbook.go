package source

import (
	"context"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"arkmotors/internal/normalize"
	"arkmotors/internal/sheets"
)

// Workbook is a multi-sheet source of string cells
type Workbook interface {
	SheetNames(ctx context.Context) ([]string, error)
	Rows(ctx context.Context, sheet string) ([][]string, error)
	Close() error
}

// xlsxWorkbook reads a local .xlsx file
type xlsxWorkbook struct {
	file *excelize.File
}

func openXLSX(path string) (*xlsxWorkbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	return &xlsxWorkbook{file: f}, nil
}

func (w *xlsxWorkbook) SheetNames(context.Context) ([]string, error) {
	return w.file.GetSheetList(), nil
}

// Rows returns raw cell values: numbers without display formatting and dates
// as Excel serial numbers, which normalize.ParseDate understands.
func (w *xlsxWorkbook) Rows(_ context.Context, sheet string) ([][]string, error) {
	return w.file.GetRows(sheet, excelize.Options{RawCellValue: true})
}

func (w *xlsxWorkbook) Close() error {
	return w.file.Close()
}

// sheetsWorkbook reads a consolidated workbook hosted in Google Sheets
type sheetsWorkbook struct {
	svc    *sheets.Service
	titles []string
}

func openSheets(ctx context.Context, url string) (Workbook, error) {
	svc, err := sheets.NewSheetsService(ctx, url)
	if err != nil {
		return nil, err
	}
	return &sheetsWorkbook{svc: svc}, nil
}

// SheetNames fetches the tab titles once per workbook
func (w *sheetsWorkbook) SheetNames(ctx context.Context) ([]string, error) {
	if w.titles != nil {
		return w.titles, nil
	}
	titles, err := w.svc.SheetTitles(ctx)
	if err != nil {
		return nil, err
	}
	w.titles = titles
	return titles, nil
}

func (w *sheetsWorkbook) Rows(ctx context.Context, sheet string) ([][]string, error) {
	return w.svc.ReadSheet(ctx, sheet)
}

func (w *sheetsWorkbook) Close() error { return nil }

// resolveSheet picks the sheet a schema reads: the first sheet when none is
// named, otherwise the named sheet or one of its aliases. Names are compared
// after trimming and Unicode folding.
func resolveSheet(ctx context.Context, wb Workbook, s Schema) (string, error) {
	names, err := wb.SheetNames(ctx)
	if err != nil {
		return "", err
	}

	if s.Sheet == "" {
		if len(names) == 0 {
			return "", fmt.Errorf("%w: workbook has no sheets", ErrSheetNotFound)
		}
		return names[0], nil
	}

	for _, want := range append([]string{s.Sheet}, s.Aliases...) {
		key := normalize.Fold(strings.TrimSpace(want))
		for _, name := range names {
			if normalize.Fold(strings.TrimSpace(name)) == key {
				return name, nil
			}
		}
	}
	return "", fmt.Errorf("%w: %q", ErrSheetNotFound, s.Sheet)
}

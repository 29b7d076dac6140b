package source

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"arkmotors/pkg/models"
)

type sheet struct {
	name string
	rows [][]any
}

// writeWorkbook saves the sheets, in order, as an .xlsx file
func writeWorkbook(t *testing.T, path string, sheets ...sheet) {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, s := range sheets {
		if i == 0 {
			require.NoError(t, f.SetSheetName("Sheet1", s.name))
		} else {
			_, err := f.NewSheet(s.name)
			require.NoError(t, err)
		}
		for r, row := range s.rows {
			cell, err := excelize.CoordinatesToCellName(1, r+1)
			require.NoError(t, err)
			values := row
			require.NoError(t, f.SetSheetRow(s.name, cell, &values))
		}
	}
	require.NoError(t, f.SaveAs(path))
}

// filler returns n non-empty rows standing in for a sheet's title block
func filler(n int) [][]any {
	rows := make([][]any, n)
	for i := range rows {
		rows[i] = []any{"아크 모터스"}
	}
	return rows
}

func consolidatedSheets() []sheet {
	return []sheet{
		{name: "1_직원소득", rows: [][]any{
			{models.ColEmployeeName, models.ColPeriodSource, models.ColPayDate, models.ColSettlementAmount, models.ColIncomeType},
			{"김철수", "2024-03", 45366, 1500000, "고정"},
			{"외부강사", "2024.03", "2024-03-20", "300,000", "외부"},
		}},
		{name: "2_차량매입", rows: [][]any{
			{models.ColVehicleID, models.ColAcquisitionDate, models.ColPurchaseAmount},
			{"12가3456", "2024.03.05", 8000000},
		}},
		{name: "3_장부", rows: [][]any{
			{models.ColEntryDate, models.ColAccount, models.ColDescription, models.ColVehicleID, models.ColManager, models.ColDeposit, models.ColWithdrawal},
			{"2024-03-10", "장부", "차량 판매", "12가3456", "김철수", 12000000, 0},
			{"2024-03-11", "장부", "3월 급여", "", "이영희", 0, "2,500,000"},
		}},
		{name: "4_차량상품화", rows: [][]any{
			{models.ColVehicleID, models.ColManager, models.ColIntakeDate, models.ColCompletionDate, models.ColCostInclVAT},
			{"12가3456", "박민수", "2024-03-06", "", 330000},
		}},
		{name: "5_월별결산", rows: [][]any{
			{"항목", "금액"},
			{"매출", 12000000},
		}},
	}
}

func TestLoader_Consolidated(t *testing.T) {
	path := filepath.Join(t.TempDir(), "amotors_master_data.xlsx")
	writeWorkbook(t, path, consolidatedSheets()...)

	snap, err := NewLoader(path, "").Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, path, snap.Origin)
	assert.Empty(t, snap.Failures)

	require.Len(t, snap.EmployeeIncome, 2)
	kim := snap.EmployeeIncome[0]
	assert.Equal(t, "김철수", kim.EmployeeName)
	assert.Equal(t, "2024-03", kim.Period)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), kim.PayDate)
	assert.Equal(t, int64(1500000), kim.SettlementAmount)
	assert.Equal(t, "2024-03", snap.EmployeeIncome[1].Period)
	assert.Equal(t, int64(300000), snap.EmployeeIncome[1].SettlementAmount)

	require.Len(t, snap.Purchases, 1)
	assert.Equal(t, "2024-03", snap.Purchases[0].Period)
	assert.Equal(t, int64(8000000), snap.Purchases[0].PurchaseAmount)

	require.Len(t, snap.Ledger, 2)
	assert.Equal(t, "장부", snap.Ledger[0].AccountLabel)
	assert.Equal(t, "", snap.Ledger[0].RelatedEmployeeName)
	assert.Equal(t, int64(2500000), snap.Ledger[1].Withdrawal)
	assert.True(t, snap.Table(models.TableLedger).Has(models.ColRelated))

	require.Len(t, snap.Reconditioning, 1)
	assert.Equal(t, "2024-03", snap.Reconditioning[0].Period)
	assert.True(t, snap.Reconditioning[0].CompletionDate.IsZero())

	report := snap.Table(models.TableMonthlyReport)
	assert.Equal(t, 1, report.Len())
	assert.Equal(t, "", report.Value(0, models.ColPeriod))
	assert.Equal(t, "2024-03-15", snap.Table(models.TableEmployeeIncome).Value(0, models.ColPayDate))
}

func TestLoader_ConsolidatedMissingSheets(t *testing.T) {
	all := consolidatedSheets()
	income := all[0]
	ledger := all[2]
	ledger.name = "3_Ledger"

	path := filepath.Join(t.TempDir(), "master.xlsx")
	writeWorkbook(t, path, income, ledger)

	snap, err := NewLoader(path, "").Load(context.Background())
	require.NoError(t, err)

	assert.Len(t, snap.EmployeeIncome, 2)
	assert.Len(t, snap.Ledger, 2)
	assert.Empty(t, snap.Purchases)
	assert.Empty(t, snap.Reconditioning)

	require.Len(t, snap.Failures, 3)
	for _, id := range []models.TableID{models.TableVehiclePurchase, models.TableReconditioning, models.TableMonthlyReport} {
		err := snap.Failures[id]
		require.Error(t, err, id)
		assert.True(t, errors.Is(err, ErrSheetNotFound))

		var loadErr *LoadError
		require.True(t, errors.As(err, &loadErr))
		assert.Equal(t, id, loadErr.Table)
		assert.Equal(t, path, loadErr.Path)
	}
	assert.True(t, snap.Table(models.TableVehiclePurchase).Has(models.ColPeriod))
}

func writeLegacyIncome(t *testing.T, dir string) {
	t.Helper()
	rows := append(filler(7),
		[]any{"성명", "귀속년월", "지급 날짜", "", models.ColSettlementAmount, models.ColRemarks},
		[]any{"김철수", "2024-03", "2024-03-25", "무시", 1500000, "3월분"},
		[]any{"이영희", "", "2024-04-25", "", "1,200,000"},
	)
	writeWorkbook(t, filepath.Join(dir, LegacyIncomeFile), sheet{name: "Sheet1", rows: rows})
}

func TestLoader_Legacy(t *testing.T) {
	dir := t.TempDir()
	writeLegacyIncome(t, dir)

	writeWorkbook(t, filepath.Join(dir, LegacyPurchaseFile), sheet{name: "신고서", rows: append(filler(8),
		[]any{models.ColVehicleID, models.ColAcquisitionDate, models.ColPurchaseAmount},
		[]any{"34나5678", "2024-04-02", 6500000},
	)})

	writeWorkbook(t, filepath.Join(dir, LegacyLedgerFile),
		sheet{name: "요약", rows: [][]any{{"합계"}}},
		sheet{name: "장부", rows: append(filler(2),
			[]any{models.ColEntryDate, models.ColAccountShort, models.ColDescription, models.ColDeposit, models.ColWithdrawal},
			[]any{"2024-04-03", "차대", "차량 매입", 0, 6500000},
		)},
	)

	snap, err := NewLoader(filepath.Join(dir, "missing.xlsx"), dir).Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, dir, snap.Origin)
	assert.Empty(t, snap.Failures)

	require.Len(t, snap.EmployeeIncome, 2)
	assert.Equal(t, "김철수", snap.EmployeeIncome[0].EmployeeName)
	assert.Equal(t, models.DefaultIncomeType, snap.EmployeeIncome[0].IncomeType)
	assert.Equal(t, "3월분", snap.EmployeeIncome[0].Remarks)
	assert.Equal(t, "2024-03", snap.EmployeeIncome[0].Period)
	assert.Equal(t, "2024-04", snap.EmployeeIncome[1].Period)
	assert.Equal(t, int64(1200000), snap.EmployeeIncome[1].SettlementAmount)
	assert.False(t, snap.Table(models.TableEmployeeIncome).Has(""))

	require.Len(t, snap.Purchases, 1)
	assert.Equal(t, "2024-04", snap.Purchases[0].Period)

	require.Len(t, snap.Ledger, 1)
	assert.Equal(t, "차대", snap.Ledger[0].AccountLabel)
	assert.Equal(t, "2024-04", snap.Ledger[0].Period)

	recon := snap.Table(models.TableReconditioning)
	assert.True(t, recon.IsEmpty())
	for _, col := range reconditioningPlaceholder {
		assert.True(t, recon.Has(col), col)
	}
	assert.True(t, recon.Has(models.ColPeriod))
	assert.Equal(t, []string{models.ColPeriod}, snap.Table(models.TableMonthlyReport).Columns)
}

func TestLoader_LegacyFailureIsolated(t *testing.T) {
	dir := t.TempDir()
	writeLegacyIncome(t, dir)
	writeWorkbook(t, filepath.Join(dir, LegacyPurchaseFile), sheet{name: "Sheet1", rows: filler(3)})

	snap, err := NewLoader("", dir).Load(context.Background())
	require.NoError(t, err)

	assert.Len(t, snap.EmployeeIncome, 2)
	assert.True(t, errors.Is(snap.Failures[models.TableVehiclePurchase], ErrHeaderOutOfRange))
	assert.True(t, errors.Is(snap.Failures[models.TableLedger], ErrFileNotFound))
	assert.NotContains(t, snap.Failures, models.TableReconditioning)
	assert.NotContains(t, snap.Failures, models.TableMonthlyReport)
}

func TestLoader_CorruptConsolidatedFallsBack(t *testing.T) {
	dir := t.TempDir()
	writeLegacyIncome(t, dir)

	source := filepath.Join(t.TempDir(), "master.xlsx")
	require.NoError(t, os.WriteFile(source, []byte("not a workbook"), 0o644))

	snap, err := NewLoader(source, dir).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, dir, snap.Origin)
	assert.Len(t, snap.EmployeeIncome, 2)
}

func TestLoader_NoData(t *testing.T) {
	dir := t.TempDir()

	snap, err := NewLoader(filepath.Join(dir, "master.xlsx"), dir).Load(context.Background())
	assert.Nil(t, snap)
	assert.True(t, errors.Is(err, ErrNoData))
	assert.Contains(t, err.Error(), dir)

	_, err = NewLoader("", "").Load(context.Background())
	assert.True(t, errors.Is(err, ErrNoData))
}

type fakeWorkbook struct {
	order    []string
	sheets   map[string][][]string
	namesErr error
	closed   bool
}

func (w *fakeWorkbook) SheetNames(context.Context) ([]string, error) {
	if w.namesErr != nil {
		return nil, w.namesErr
	}
	return w.order, nil
}

func (w *fakeWorkbook) Rows(_ context.Context, name string) ([][]string, error) {
	rows, ok := w.sheets[name]
	if !ok {
		return nil, errors.New("unknown sheet")
	}
	return rows, nil
}

func (w *fakeWorkbook) Close() error {
	w.closed = true
	return nil
}

func TestLoader_GoogleSheet(t *testing.T) {
	url := "https://docs.google.com/spreadsheets/d/1AbC-d_9/edit"
	wb := &fakeWorkbook{
		order: []string{"1_EmployeeIncome", "3_장부"},
		sheets: map[string][][]string{
			"1_EmployeeIncome": {
				{models.ColEmployeeName, models.ColPayDate, models.ColSettlementAmount},
				{"김철수", "45366", "1500000"},
			},
			"3_장부": {
				{models.ColEntryDate, models.ColAccount, models.ColDescription, models.ColDeposit},
				{"45366", "장부", "판매", "1000000"},
			},
		},
	}

	l := NewLoader(url, "")
	l.openSheets = func(_ context.Context, got string) (Workbook, error) {
		assert.Equal(t, url, got)
		return wb, nil
	}

	snap, err := l.Load(context.Background())
	require.NoError(t, err)

	assert.True(t, wb.closed)
	assert.Equal(t, url, snap.Origin)
	require.Len(t, snap.EmployeeIncome, 1)
	assert.Equal(t, "2024-03", snap.EmployeeIncome[0].Period)
	require.Len(t, snap.Ledger, 1)
	assert.Equal(t, int64(1000000), snap.Ledger[0].Deposit)
	assert.Len(t, snap.Failures, 3)
}

func TestLoader_GoogleSheetUnavailable(t *testing.T) {
	l := NewLoader("https://docs.google.com/spreadsheets/d/1AbC-d_9/edit", t.TempDir())
	l.openSheets = func(context.Context, string) (Workbook, error) {
		return nil, errors.New("no credentials")
	}

	_, err := l.Load(context.Background())
	assert.True(t, errors.Is(err, ErrNoData))
}

func TestLoader_GoogleSheetForbiddenFallsBack(t *testing.T) {
	dir := t.TempDir()
	writeLegacyIncome(t, dir)

	wb := &fakeWorkbook{namesErr: errors.New("googleapi: Error 403: The caller does not have permission")}
	l := NewLoader("https://docs.google.com/spreadsheets/d/1AbC-d_9/edit", dir)
	l.openSheets = func(context.Context, string) (Workbook, error) {
		return wb, nil
	}

	snap, err := l.Load(context.Background())
	require.NoError(t, err)

	assert.True(t, wb.closed)
	assert.Equal(t, dir, snap.Origin)
	assert.Len(t, snap.EmployeeIncome, 2)
	assert.NotContains(t, snap.Failures, models.TableEmployeeIncome)
}

func TestLoader_GoogleSheetForbiddenWithoutLegacy(t *testing.T) {
	l := NewLoader("https://docs.google.com/spreadsheets/d/1AbC-d_9/edit", t.TempDir())
	l.openSheets = func(context.Context, string) (Workbook, error) {
		return &fakeWorkbook{namesErr: errors.New("googleapi: Error 404: Requested entity was not found")}, nil
	}

	snap, err := l.Load(context.Background())
	assert.Nil(t, snap)
	assert.True(t, errors.Is(err, ErrNoData))
}

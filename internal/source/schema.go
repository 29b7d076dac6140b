package source

import "arkmotors/pkg/models"

// Default is a column injected with a fixed value when the sheet lacks it
type Default struct {
	Column string
	Value  string
}

// Schema describes how one table is read from one kind of source. A single
// generic routine consumes it, so sources differ only in configuration.
type Schema struct {
	Table models.TableID

	// File is the workbook name inside the legacy folder. Empty for the
	// consolidated workbook, where every table is a sheet of the same file.
	File string

	// Sheet is the sheet to read; empty means the first sheet. Aliases are
	// tried in order when Sheet is missing.
	Sheet   string
	Aliases []string

	// HeaderRow is the zero-based row holding the column names
	HeaderRow int

	// Renames maps source column names to canonical ones
	Renames map[string]string

	// Defaults are injected when the column is absent
	Defaults []Default

	// PeriodFrom is the date column the period is derived from when the
	// sheet has no period column
	PeriodFrom string

	// DateColumns are coerced to calendar dates (YYYY-MM-DD) after loading
	DateColumns []string

	// Optional tables may be missing; Placeholder gives the columns of the
	// empty table used instead
	Optional    bool
	Placeholder []string
}

var dateColumns = map[models.TableID][]string{
	models.TableEmployeeIncome:  {models.ColPayDate},
	models.TableVehiclePurchase: {models.ColAcquisitionDate},
	models.TableLedger:          {models.ColEntryDate},
	models.TableReconditioning:  {models.ColIntakeDate, models.ColCompletionDate},
}

var periodSources = map[models.TableID]string{
	models.TableEmployeeIncome:  models.ColPayDate,
	models.TableVehiclePurchase: models.ColAcquisitionDate,
	models.TableLedger:          models.ColEntryDate,
	models.TableReconditioning:  models.ColIntakeDate,
}

var reconditioningPlaceholder = []string{
	models.ColVehicleID,
	models.ColManager,
	models.ColCostInclVAT,
	models.ColPeriodSource,
}

// ConsolidatedSchemas describes the five sheets of the consolidated workbook
func ConsolidatedSchemas() []Schema {
	return []Schema{
		{
			Table:       models.TableEmployeeIncome,
			Sheet:       "1_직원소득",
			Aliases:     []string{"1_EmployeeIncome"},
			PeriodFrom:  periodSources[models.TableEmployeeIncome],
			DateColumns: dateColumns[models.TableEmployeeIncome],
		},
		{
			Table:       models.TableVehiclePurchase,
			Sheet:       "2_차량매입",
			Aliases:     []string{"2_VehiclePurchase"},
			PeriodFrom:  periodSources[models.TableVehiclePurchase],
			DateColumns: dateColumns[models.TableVehiclePurchase],
		},
		{
			Table:       models.TableLedger,
			Sheet:       "3_장부",
			Aliases:     []string{"3_Ledger"},
			Defaults:    []Default{{Column: models.ColRelated}},
			PeriodFrom:  periodSources[models.TableLedger],
			DateColumns: dateColumns[models.TableLedger],
		},
		{
			Table:       models.TableReconditioning,
			Sheet:       "4_차량상품화",
			Aliases:     []string{"4_Reconditioning"},
			PeriodFrom:  periodSources[models.TableReconditioning],
			DateColumns: dateColumns[models.TableReconditioning],
		},
		{
			Table:   models.TableMonthlyReport,
			Sheet:   "5_월별결산",
			Aliases: []string{"5_MonthlySettlement"},
		},
	}
}

// Legacy workbook names
const (
	LegacyIncomeFile         = "아크 모터스 사업소득.xlsx"
	LegacyPurchaseFile       = "원본_재활용폐자원세액공제신고서.xlsx"
	LegacyLedgerFile         = "♣장부♣ 10.xlsx"
	LegacyReconditioningFile = "상품내역.xlsx"
	LegacyReportFile         = "결산 보고서.xlsx"
)

// LegacySchemas describes the five individual workbooks kept before the
// consolidated file existed. The income workbook is the one required source.
func LegacySchemas() []Schema {
	return []Schema{
		{
			Table:     models.TableEmployeeIncome,
			File:      LegacyIncomeFile,
			HeaderRow: 7,
			Renames: map[string]string{
				"성명":    models.ColEmployeeName,
				"귀속년월":  models.ColPeriodSource,
				"지급 날짜": models.ColPayDate,
			},
			Defaults:    []Default{{Column: models.ColIncomeType, Value: models.DefaultIncomeType}},
			PeriodFrom:  periodSources[models.TableEmployeeIncome],
			DateColumns: dateColumns[models.TableEmployeeIncome],
		},
		{
			Table:       models.TableVehiclePurchase,
			File:        LegacyPurchaseFile,
			HeaderRow:   8,
			PeriodFrom:  periodSources[models.TableVehiclePurchase],
			DateColumns: dateColumns[models.TableVehiclePurchase],
		},
		{
			Table:     models.TableLedger,
			File:      LegacyLedgerFile,
			Sheet:     "장부",
			HeaderRow: 2,
			Renames: map[string]string{
				models.ColAccountShort: models.ColAccount,
			},
			Defaults:    []Default{{Column: models.ColRelated}},
			PeriodFrom:  periodSources[models.TableLedger],
			DateColumns: dateColumns[models.TableLedger],
		},
		{
			Table:       models.TableReconditioning,
			File:        LegacyReconditioningFile,
			PeriodFrom:  periodSources[models.TableReconditioning],
			DateColumns: dateColumns[models.TableReconditioning],
			Optional:    true,
			Placeholder: reconditioningPlaceholder,
		},
		{
			Table:    models.TableMonthlyReport,
			File:     LegacyReportFile,
			Optional: true,
		},
	}
}

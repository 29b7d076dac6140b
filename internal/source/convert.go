package source

import (
	"strings"
	"time"

	"arkmotors/internal/normalize"
	"arkmotors/pkg/models"
)

func employeeIncome(t models.Table) []models.EmployeeIncome {
	out := make([]models.EmployeeIncome, 0, t.Len())
	for i := range t.Rows {
		out = append(out, models.EmployeeIncome{
			EmployeeName:     t.Value(i, models.ColEmployeeName),
			Period:           t.Value(i, models.ColPeriod),
			PayDate:          date(t.Value(i, models.ColPayDate)),
			TaxBase:          normalize.CleanNumeric(t.Value(i, models.ColTaxBase)),
			IncomeTax:        normalize.CleanNumeric(t.Value(i, models.ColIncomeTax)),
			ResidentTax:      normalize.CleanNumeric(t.Value(i, models.ColResidentTax)),
			SettlementAmount: normalize.CleanNumeric(t.Value(i, models.ColSettlementAmount)),
			IncomeType:       t.Value(i, models.ColIncomeType),
			Remarks:          t.Value(i, models.ColRemarks),
		})
	}
	return out
}

func vehiclePurchases(t models.Table) []models.VehiclePurchase {
	out := make([]models.VehiclePurchase, 0, t.Len())
	for i := range t.Rows {
		out = append(out, models.VehiclePurchase{
			VehicleID:       t.Value(i, models.ColVehicleID),
			AcquisitionDate: date(t.Value(i, models.ColAcquisitionDate)),
			Period:          t.Value(i, models.ColPeriod),
			PurchaseAmount:  normalize.CleanNumeric(t.Value(i, models.ColPurchaseAmount)),
		})
	}
	return out
}

func ledgerEntries(t models.Table) []models.LedgerEntry {
	account := accountColumn(t)
	out := make([]models.LedgerEntry, 0, t.Len())
	for i := range t.Rows {
		out = append(out, models.LedgerEntry{
			EntryDate:           date(t.Value(i, models.ColEntryDate)),
			Period:              t.Value(i, models.ColPeriod),
			AccountLabel:        t.Value(i, account),
			Description:         t.Value(i, models.ColDescription),
			VehicleID:           t.Value(i, models.ColVehicleID),
			ManagerName:         t.Value(i, models.ColManager),
			RelatedEmployeeName: t.Value(i, models.ColRelated),
			Deposit:             normalize.CleanNumeric(t.Value(i, models.ColDeposit)),
			Withdrawal:          normalize.CleanNumeric(t.Value(i, models.ColWithdrawal)),
			Balance:             normalize.CleanNumeric(t.Value(i, models.ColBalance)),
		})
	}
	return out
}

// accountColumn finds the ledger's account column. Sheets label it in
// several ways, so after the canonical name any header mentioning 계정 is used.
func accountColumn(t models.Table) string {
	if t.Has(models.ColAccount) {
		return models.ColAccount
	}
	for _, c := range t.Columns {
		if strings.Contains(c, models.ColAccountShort) {
			return c
		}
	}
	return models.ColAccount
}

func reconditioning(t models.Table) []models.VehicleReconditioning {
	out := make([]models.VehicleReconditioning, 0, t.Len())
	for i := range t.Rows {
		out = append(out, models.VehicleReconditioning{
			VehicleID:      t.Value(i, models.ColVehicleID),
			ManagerName:    t.Value(i, models.ColManager),
			IntakeDate:     date(t.Value(i, models.ColIntakeDate)),
			CompletionDate: date(t.Value(i, models.ColCompletionDate)),
			CostInclVAT:    normalize.CleanNumeric(t.Value(i, models.ColCostInclVAT)),
			Period:         t.Value(i, models.ColPeriod),
		})
	}
	return out
}

func date(s string) time.Time {
	d, _ := normalize.ParseDate(s)
	return d
}

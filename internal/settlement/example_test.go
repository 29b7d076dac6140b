package settlement_test

import (
	"fmt"

	"arkmotors/internal/classify"
	"arkmotors/internal/normalize"
	"arkmotors/internal/settlement"
	"arkmotors/pkg/models"
)

// Example builds the settlement of one month and the per-category totals
// used for the chart.
func Example() {
	tables := settlement.Tables{
		EmployeeIncome: []models.EmployeeIncome{
			{EmployeeName: "김철수", Period: "2024-03", SettlementAmount: 1500000, IncomeType: "고정"},
			{EmployeeName: "외부강사", Period: "2024-03", SettlementAmount: 300000, IncomeType: "외부"},
		},
		Ledger: []models.LedgerEntry{
			{Period: "2024-03", AccountLabel: "장부", Description: "상여금", Withdrawal: 500000},
			{Period: "2024-03", AccountLabel: "장부", Description: "차량 판매", Deposit: 9000000},
		},
	}

	items := settlement.Summarize(classify.Default(), tables, "2024-03")
	for _, it := range items {
		fmt.Printf("%s | %s | %s\n", it.Category.Label(), it.Detail, normalize.FormatCurrency(it.Amount))
	}
	for _, t := range settlement.Totals(items) {
		fmt.Printf("%s = %s\n", t.Category.Label(), normalize.FormatCurrency(t.Amount))
	}
	// Output:
	// 인건비 | 직원소득(정산입금액) | 1,500,000
	// 매출 | 장부 매출(입금) | 9,000,000
	// 인건비 | 장부 출금(인건비) | 500,000
	// 인건비 = 2,000,000
	// 매출 = 9,000,000
}

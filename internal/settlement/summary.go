// Package settlement builds the automatic monthly settlement: one line item
// per non-zero source aggregate for a period, with ledger rows split into
// categories by the classifier.
package settlement

import (
	"fmt"

	"arkmotors/internal/classify"
	"arkmotors/pkg/models"
)

// Source tags where a line item's amount came from
type Source string

const (
	SourceEmployeeIncome  Source = "EmployeeIncome"
	SourceVehiclePurchase Source = "VehiclePurchase"
	SourceLedger          Source = "Ledger"
	SourceReconditioning  Source = "Reconditioning"
)

// Label returns the Korean source label
func (s Source) Label() string {
	switch s {
	case SourceEmployeeIncome:
		return "직원소득"
	case SourceVehiclePurchase:
		return "차량매입"
	case SourceLedger:
		return "장부"
	case SourceReconditioning:
		return "차량상품화"
	}
	return string(s)
}

// Notes attached to line items
const (
	NoteExcludedIncome = "외부/비직원 제외"
	NoteAutoClassified = "자동분류"
)

// LineItem is one row of the monthly settlement
type LineItem struct {
	Period   string            `json:"period"`
	Category classify.Category `json:"category"`
	Detail   string            `json:"detail"`
	Amount   int64             `json:"amount"`
	Source   Source            `json:"source"`
	Note     string            `json:"note,omitempty"`
}

// Tables are the four transactional tables the settlement reads
type Tables struct {
	EmployeeIncome []models.EmployeeIncome
	Purchases      []models.VehiclePurchase
	Ledger         []models.LedgerEntry
	Reconditioning []models.VehicleReconditioning
}

// FromSnapshot selects the settlement inputs of a snapshot
func FromSnapshot(s *models.Snapshot) Tables {
	if s == nil {
		return Tables{}
	}
	return Tables{
		EmployeeIncome: s.EmployeeIncome,
		Purchases:      s.Purchases,
		Ledger:         s.Ledger,
		Reconditioning: s.Reconditioning,
	}
}

// Summarize returns the settlement line items for period. Zero sums produce no
// item, so an empty result means no activity. Items are ordered labor,
// vehicle purchase, reconditioning, sales, then ledger expenses in taxonomy order.
func Summarize(c *classify.Classifier, t Tables, period string) []LineItem {
	items := make([]LineItem, 0, 8)
	add := func(category classify.Category, detail string, amount int64, source Source, note string) {
		if amount == 0 {
			return
		}
		items = append(items, LineItem{
			Period:   period,
			Category: category,
			Detail:   detail,
			Amount:   amount,
			Source:   source,
			Note:     note,
		})
	}

	var labor int64
	for _, r := range t.EmployeeIncome {
		if r.Period == period && !c.ExcludesIncomeType(r.IncomeType) {
			labor += r.SettlementAmount
		}
	}
	add(classify.CategoryLabor, "직원소득(정산입금액)", labor, SourceEmployeeIncome, NoteExcludedIncome)

	var purchases int64
	for _, r := range t.Purchases {
		if r.Period == period {
			purchases += r.PurchaseAmount
		}
	}
	add(classify.CategoryVehiclePurchase, "재활용차량 매입가액", purchases, SourceVehiclePurchase, "")

	var reconditioning int64
	for _, r := range t.Reconditioning {
		if r.Period == period {
			reconditioning += r.CostInclVAT
		}
	}
	add(classify.CategoryVariableCost, "차량 상품화비", reconditioning, SourceReconditioning, "")

	var sales int64
	expenses := make(map[classify.Category]int64)
	for _, e := range t.Ledger {
		if e.Period != period {
			continue
		}
		category := c.ClassifyEntry(e)
		if category == classify.CategorySales && e.Deposit > 0 {
			sales += e.Deposit
		}
		if category != classify.CategorySales && e.Withdrawal > 0 {
			expenses[category] += e.Withdrawal
		}
	}
	add(classify.CategorySales, "장부 매출(입금)", sales, SourceLedger, "")

	for _, category := range classify.Categories {
		add(category, fmt.Sprintf("장부 출금(%s)", category.Label()), expenses[category], SourceLedger, NoteAutoClassified)
	}

	return items
}

// CategoryTotal is the summed amount of one category across line items
type CategoryTotal struct {
	Category classify.Category `json:"category"`
	Amount   int64             `json:"amount"`
}

// Totals sums line items per category, in order of first appearance
func Totals(items []LineItem) []CategoryTotal {
	var out []CategoryTotal
	pos := make(map[classify.Category]int)
	for _, it := range items {
		i, ok := pos[it.Category]
		if !ok {
			i = len(out)
			pos[it.Category] = i
			out = append(out, CategoryTotal{Category: it.Category})
		}
		out[i].Amount += it.Amount
	}
	return out
}

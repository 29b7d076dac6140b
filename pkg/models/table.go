package models

import "strings"

// TableID identifies one of the five canonical tables
type TableID string

const (
	TableEmployeeIncome  TableID = "employee_income"
	TableVehiclePurchase TableID = "vehicle_purchase"
	TableLedger          TableID = "ledger"
	TableReconditioning  TableID = "reconditioning"
	TableMonthlyReport   TableID = "monthly_report"
)

// AllTables lists the canonical tables in workbook order
var AllTables = []TableID{
	TableEmployeeIncome,
	TableVehiclePurchase,
	TableLedger,
	TableReconditioning,
	TableMonthlyReport,
}

// Label returns the Korean sheet label used by the business
func (id TableID) Label() string {
	switch id {
	case TableEmployeeIncome:
		return "직원소득(사업소득)"
	case TableVehiclePurchase:
		return "차량매입(폐자원)"
	case TableLedger:
		return "장부"
	case TableReconditioning:
		return "차량상품화"
	case TableMonthlyReport:
		return "월별결산(보고서)"
	}
	return string(id)
}

// ParseTableID resolves a table identifier or its Korean label
func ParseTableID(s string) (TableID, bool) {
	s = strings.TrimSpace(s)
	for _, id := range AllTables {
		if s == string(id) || s == id.Label() {
			return id, true
		}
	}
	return "", false
}

// Table is a header plus string cells, the shape every source is read into
// before it is mapped onto typed records. Rows may be shorter than Columns.
type Table struct {
	ID      TableID    `json:"id"`
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// Len returns the number of data rows
func (t Table) Len() int {
	return len(t.Rows)
}

// IsEmpty reports whether the table has no data rows
func (t Table) IsEmpty() bool {
	return len(t.Rows) == 0
}

// Index returns the position of the first column with the given name, or -1
func (t Table) Index(column string) int {
	for i, c := range t.Columns {
		if c == column {
			return i
		}
	}
	return -1
}

// Has reports whether the column exists
func (t Table) Has(column string) bool {
	return t.Index(column) >= 0
}

// Value returns the trimmed cell at row/column, or "" when either is missing
func (t Table) Value(row int, column string) string {
	return t.cell(row, t.Index(column))
}

func (t Table) cell(row, col int) string {
	if col < 0 || row < 0 || row >= len(t.Rows) || col >= len(t.Rows[row]) {
		return ""
	}
	return strings.TrimSpace(t.Rows[row][col])
}

// Column returns every value of the column, or nil when it is missing
func (t Table) Column(column string) []string {
	idx := t.Index(column)
	if idx < 0 {
		return nil
	}
	out := make([]string, len(t.Rows))
	for i := range t.Rows {
		out[i] = t.cell(i, idx)
	}
	return out
}

// WithColumn returns a copy of the table where column holds values.
// An existing column is overwritten in place, otherwise it is appended.
func (t Table) WithColumn(column string, values []string) Table {
	out := t.clone()
	idx := out.Index(column)
	if idx < 0 {
		out.Columns = append(out.Columns, column)
		idx = len(out.Columns) - 1
	}
	for i := range out.Rows {
		for len(out.Rows[i]) <= idx {
			out.Rows[i] = append(out.Rows[i], "")
		}
		if i < len(values) {
			out.Rows[i][idx] = values[i]
		} else {
			out.Rows[i][idx] = ""
		}
	}
	return out
}

// Renamed returns a copy with columns renamed according to renames (old -> new)
func (t Table) Renamed(renames map[string]string) Table {
	out := t.clone()
	for i, c := range out.Columns {
		if to, ok := renames[c]; ok {
			out.Columns[i] = to
		}
	}
	return out
}

func (t Table) clone() Table {
	out := Table{
		ID:      t.ID,
		Columns: append([]string(nil), t.Columns...),
		Rows:    make([][]string, len(t.Rows)),
	}
	for i, r := range t.Rows {
		out.Rows[i] = append([]string(nil), r...)
	}
	return out
}

package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"arkmotors/internal/normalize"
	"arkmotors/pkg/models"
)

var rawCmd = &cobra.Command{
	Use:   "raw [table]",
	Short: "Show a loaded table as it was read",
	Long: `Prints one of the five tables after loading (renames, period and date
normalization applied). Currency columns are shown with thousands separators.

Without a table, lists the tables with their row counts. Tables may be named
by identifier (employee_income, vehicle_purchase, ledger, reconditioning,
monthly_report) or by their Korean label.`,
	Example: `  # What was loaded
  arkmotors raw

  # The ledger as loaded
  arkmotors raw ledger`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRaw,
}

func init() {
	rootCmd.AddCommand(rawCmd)
}

// currencyColumns are shown with thousands separators
var currencyColumns = map[string]bool{
	models.ColTaxBase:          true,
	models.ColIncomeTax:        true,
	models.ColResidentTax:      true,
	models.ColSettlementAmount: true,
	models.ColPurchaseAmount:   true,
	models.ColDeposit:          true,
	models.ColWithdrawal:       true,
	models.ColBalance:          true,
	models.ColCostInclVAT:      true,
}

type tableInfo struct {
	ID     models.TableID `json:"id"`
	Label  string         `json:"label"`
	Rows   int            `json:"rows"`
	Failed string         `json:"error,omitempty"`
}

func runRaw(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	snap, err := s.snapshot(cmd.Context())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	if len(args) == 0 {
		infos := make([]tableInfo, 0, len(models.AllTables))
		for _, id := range models.AllTables {
			info := tableInfo{ID: id, Label: id.Label(), Rows: snap.Table(id).Len()}
			if err, ok := snap.Failures[id]; ok {
				info.Failed = err.Error()
			}
			infos = append(infos, info)
		}
		if s.json {
			return writeJSON(out, map[string]interface{}{"origin": snap.Origin, "tables": infos})
		}
		fmt.Fprintf(out, "출처: %s\n\n", snap.Origin)
		tw := newTable(out, "테이블", "이름", "행 수", "오류")
		for _, info := range infos {
			row(tw, string(info.ID), info.Label, fmt.Sprint(info.Rows), info.Failed)
		}
		return tw.Flush()
	}

	id, ok := models.ParseTableID(args[0])
	if !ok {
		return fmt.Errorf("unknown table %q", args[0])
	}

	t := snap.Table(id)
	if s.json {
		return writeJSON(out, t)
	}
	writeRaw(out, t)
	return nil
}

func writeRaw(w io.Writer, t models.Table) {
	writeTitle(w, t.ID.Label())
	if t.IsEmpty() {
		fmt.Fprintln(w, "데이터가 없습니다.")
		return
	}

	tw := newTable(w, t.Columns...)
	for i := range t.Rows {
		cells := make([]string, len(t.Columns))
		for j, col := range t.Columns {
			cells[j] = displayCell(t.ID, col, t.Value(i, col))
		}
		row(tw, cells...)
	}
	tw.Flush()
	fmt.Fprintf(w, "\n%d행\n", t.Len())
}

// displayCell formats currency cells. The monthly report has no fixed
// columns, so any plain number in it is treated as an amount.
func displayCell(id models.TableID, column, v string) string {
	if v == "" {
		return v
	}
	if currencyColumns[column] || (id == models.TableMonthlyReport && isAmount(v)) {
		return money(normalize.CleanNumeric(v))
	}
	return v
}

func isAmount(v string) bool {
	v = strings.TrimPrefix(v, "-")
	if v == "" {
		return false
	}
	for _, r := range v {
		if (r < '0' || r > '9') && r != '.' {
			return false
		}
	}
	return true
}

package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"arkmotors/internal/index"
	"arkmotors/internal/logger"
	"arkmotors/internal/report"
)

var employeeCmd = &cobra.Command{
	Use:   "employee [name]",
	Short: "Search employees and show their income, ledger and reconditioning records",
	Long: `Without a name, lists the employees found in the income, ledger and
reconditioning tables, optionally filtered by --query. With a name, shows
everything recorded about that employee.`,
	Example: `  # List every employee
  arkmotors employee

  # Narrow the list
  arkmotors employee --query 김

  # Show one employee as JSON
  arkmotors employee 김철수 --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEmployee,
}

func init() {
	rootCmd.AddCommand(employeeCmd)

	employeeCmd.Flags().String("query", "", "Case-insensitive part of the name to filter the list by")
}

func runEmployee(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("employee")

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
		query, _ := cmd.Flags().GetString("query")
		return writeCandidates(out, s.json, "직원", index.Employees(snap), query)
	}

	r := report.ForEmployee(snap, args[0])

	log.Info().
		Str("name", r.Name).
		Int("income_rows", len(r.Income)).
		Int("ledger_rows", len(r.Ledger)).
		Int("reconditioning_rows", len(r.Reconditioning)).
		Msg("Employee report built")

	if s.json {
		return writeJSON(out, r)
	}
	writeEmployee(out, r)
	return nil
}

func writeEmployee(w io.Writer, r report.Employee) {
	writeTitle(w, "직원 검색: "+r.Name)

	writeSection(w, "사업소득")
	if len(r.Income) == 0 {
		fmt.Fprintln(w, "해당 직원의 사업소득 데이터가 없습니다.")
	} else {
		tw := newTable(w, "기준년월", "지급일자", "과세표준", "소득세", "주민세", "정산입금액", "소득구분", "비고")
		for _, in := range r.Income {
			row(tw, in.Period, day(in.PayDate), money(in.TaxBase), money(in.IncomeTax), money(in.ResidentTax),
				money(in.SettlementAmount), in.IncomeType, in.Remarks)
		}
		tw.Flush()
		writeTotal(w, "총 정산입금액", r.TotalSettlement)
		writeTotal(w, "총 세금(소득세+주민세)", r.TotalTax)
		fmt.Fprintf(w, "지급 건수: %d건\n", r.Payments)
	}

	writeSection(w, "장부 내역")
	if len(r.Ledger) == 0 {
		fmt.Fprintln(w, "관련 장부 데이터가 없습니다.")
	} else {
		writeLedger(w, r.Ledger)
		writeTotal(w, "입금 합계", r.TotalDeposit)
		writeTotal(w, "출금 합계", r.TotalWithdrawal)
	}

	writeSection(w, "차량 상품화")
	if len(r.Reconditioning) == 0 {
		fmt.Fprintln(w, "담당한 상품화 내역이 없습니다.")
	} else {
		writeReconditioning(w, r.Reconditioning)
		writeTotal(w, "상품화 비용 합계", r.TotalReconditioning)
	}
}

// writeCandidates lists search candidates narrowed by query. When nothing
// matches, the full list is shown with a notice instead of an empty result.
func writeCandidates(w io.Writer, asJSON bool, kind string, candidates []string, query string) error {
	list, matched := index.Filter(candidates, query)

	if asJSON {
		return writeJSON(w, map[string]interface{}{
			"query":      query,
			"matched":    matched,
			"candidates": list,
		})
	}

	if len(candidates) == 0 {
		fmt.Fprintf(w, "%s 목록이 비어 있습니다.\n", kind)
		return nil
	}
	if query != "" && !matched {
		warnColor.Fprintf(w, "'%s'와(과) 일치하는 %s이(가) 없어 전체 목록을 표시합니다.\n", query, kind)
	}
	for _, c := range list {
		fmt.Fprintln(w, c)
	}
	fmt.Fprintf(w, "\n%d건\n", len(list))
	return nil
}

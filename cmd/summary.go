package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"arkmotors/internal/index"
	"arkmotors/internal/logger"
	"arkmotors/internal/normalize"
	"arkmotors/internal/settlement"
)

var summaryCmd = &cobra.Command{
	Use:   "summary [period]",
	Short: "Show the automatic monthly settlement for a period",
	Long: `Builds the monthly settlement for a period (YYYY-MM) from employee income,
vehicle purchases, reconditioning costs and the classified ledger.

Without a period, lists the periods found in the data.`,
	Example: `  # Which periods have data
  arkmotors summary

  # Settlement for March 2024
  arkmotors summary 2024-03

  # Same, with custom classification rules
  arkmotors summary 2024-03 --rules rules.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

// summaryOutput is the JSON shape of a settlement
type summaryOutput struct {
	Period string                     `json:"period"`
	Items  []settlement.LineItem      `json:"items"`
	Totals []settlement.CategoryTotal `json:"totals"`
}

func runSummary(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("summary")

	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	classifier, err := s.classifier()
	if err != nil {
		return err
	}

	snap, err := s.snapshot(cmd.Context())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	if len(args) == 0 {
		periods := index.Periods(snap)
		if s.json {
			return writeJSON(out, map[string]interface{}{"periods": periods})
		}
		if len(periods) == 0 {
			fmt.Fprintln(out, "기준년월 데이터가 없습니다.")
			return nil
		}
		for _, p := range periods {
			fmt.Fprintln(out, p)
		}
		return nil
	}

	// accept 2024.03, 202403 and the like
	period := normalize.NormalizePeriod(args[0])

	items := settlement.Summarize(classifier, settlement.FromSnapshot(snap), period)
	totals := settlement.Totals(items)

	log.Info().
		Str("period", period).
		Int("items", len(items)).
		Msg("Settlement built")

	if s.json {
		return writeJSON(out, summaryOutput{Period: period, Items: items, Totals: totals})
	}
	writeSummary(out, period, items, totals)
	return nil
}

func writeSummary(w io.Writer, period string, items []settlement.LineItem, totals []settlement.CategoryTotal) {
	writeTitle(w, period+" 자동 결산")

	if len(items) == 0 {
		fmt.Fprintln(w, "선택한 기간에 집계할 데이터가 없습니다.")
		return
	}

	writeSection(w, "결산 항목")
	tw := newTable(w, "구분", "세부항목", "금액", "출처", "비고")
	for _, it := range items {
		row(tw, it.Category.Label(), it.Detail, money(it.Amount), it.Source.Label(), it.Note)
	}
	tw.Flush()

	writeSection(w, "구분별 합계")
	tw = newTable(w, "구분", "금액")
	for _, t := range totals {
		row(tw, t.Category.Label(), money(t.Amount))
	}
	tw.Flush()
}

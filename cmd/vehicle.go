package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"arkmotors/internal/index"
	"arkmotors/internal/logger"
	"arkmotors/internal/report"
	"arkmotors/pkg/models"
)

var vehicleCmd = &cobra.Command{
	Use:   "vehicle [id]",
	Short: "Search vehicles and show their purchase, ledger and reconditioning records",
	Long: `Without a vehicle number, lists the vehicles found in the purchase, ledger
and reconditioning tables, optionally filtered by --query. With a number,
shows the purchase, ledger and reconditioning history of that vehicle.`,
	Example: `  # List vehicles whose number contains 3456
  arkmotors vehicle --query 3456

  # Show one vehicle
  arkmotors vehicle 12가3456`,
	Args: cobra.MaximumNArgs(1),
	RunE: runVehicle,
}

func init() {
	rootCmd.AddCommand(vehicleCmd)

	vehicleCmd.Flags().String("query", "", "Case-insensitive part of the vehicle number to filter the list by")
}

func runVehicle(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("vehicle")

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
		return writeCandidates(out, s.json, "차량", index.Vehicles(snap), query)
	}

	r := report.ForVehicle(snap, args[0])

	log.Info().
		Str("vehicle_id", r.VehicleID).
		Int("purchase_rows", len(r.Purchases)).
		Int("ledger_rows", len(r.Ledger)).
		Int("reconditioning_rows", len(r.Reconditioning)).
		Msg("Vehicle report built")

	if s.json {
		return writeJSON(out, r)
	}
	writeVehicle(out, r)
	return nil
}

func writeVehicle(w io.Writer, r report.Vehicle) {
	writeTitle(w, "차량 검색: "+r.VehicleID)

	writeSection(w, "매입 정보")
	if len(r.Purchases) == 0 {
		fmt.Fprintln(w, "매입 기록이 없습니다.")
	} else {
		tw := newTable(w, "취득일자", "기준년월", "매입가액")
		for _, p := range r.Purchases {
			row(tw, day(p.AcquisitionDate), p.Period, money(p.PurchaseAmount))
		}
		tw.Flush()
		writeTotal(w, "총 매입가액", r.TotalPurchase)
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
		fmt.Fprintln(w, "상품화 내역이 없습니다.")
	} else {
		writeReconditioning(w, r.Reconditioning)
		writeTotal(w, "상품화 비용 합계", r.TotalReconditioning)
	}
}

func writeLedger(w io.Writer, entries []models.LedgerEntry) {
	tw := newTable(w, "일자", "계정", "내용", "차량번호", "담당자", "관련직원", "입금", "출금")
	for _, e := range entries {
		row(tw, day(e.EntryDate), e.AccountLabel, e.Description, e.VehicleID, e.ManagerName, e.RelatedEmployeeName,
			money(e.Deposit), money(e.Withdrawal))
	}
	tw.Flush()
}

func writeReconditioning(w io.Writer, jobs []models.VehicleReconditioning) {
	tw := newTable(w, "차량번호", "담당자", "입고일자", "완료일자", "비용(VAT포함)")
	for _, j := range jobs {
		row(tw, j.VehicleID, j.ManagerName, day(j.IntakeDate), day(j.CompletionDate), money(j.CostInclVAT))
	}
	tw.Flush()
}

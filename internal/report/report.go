// Package report gathers everything recorded about one employee or one
// vehicle across the loaded tables, with the totals shown on the search pages.
package report

import (
	"arkmotors/pkg/models"
)

// Employee is the per-employee view
type Employee struct {
	Name string `json:"name"`

	Income          []models.EmployeeIncome `json:"income"`
	TotalSettlement int64                   `json:"total_settlement"`
	TotalTax        int64                   `json:"total_tax"` // income tax + resident tax
	Payments        int                     `json:"payments"`

	Ledger          []models.LedgerEntry `json:"ledger"`
	TotalDeposit    int64                `json:"total_deposit"`
	TotalWithdrawal int64                `json:"total_withdrawal"`

	Reconditioning      []models.VehicleReconditioning `json:"reconditioning"`
	TotalReconditioning int64                          `json:"total_reconditioning"`
}

// ForEmployee collects income rows, ledger rows the employee managed or is
// related to, and reconditioning jobs they handled
func ForEmployee(s *models.Snapshot, name string) Employee {
	r := Employee{Name: name}
	if s == nil || name == "" {
		return r
	}

	for _, row := range s.EmployeeIncome {
		if row.EmployeeName != name {
			continue
		}
		r.Income = append(r.Income, row)
		r.TotalSettlement += row.SettlementAmount
		r.TotalTax += row.IncomeTax + row.ResidentTax
	}
	r.Payments = len(r.Income)

	for _, e := range s.Ledger {
		if e.ManagerName != name && e.RelatedEmployeeName != name {
			continue
		}
		r.Ledger = append(r.Ledger, e)
		r.TotalDeposit += e.Deposit
		r.TotalWithdrawal += e.Withdrawal
	}

	for _, job := range s.Reconditioning {
		if job.ManagerName != name {
			continue
		}
		r.Reconditioning = append(r.Reconditioning, job)
		r.TotalReconditioning += job.CostInclVAT
	}

	return r
}

// Vehicle is the per-vehicle view
type Vehicle struct {
	VehicleID string `json:"vehicle_id"`

	Purchases     []models.VehiclePurchase `json:"purchases"`
	TotalPurchase int64                    `json:"total_purchase"`

	Ledger          []models.LedgerEntry `json:"ledger"`
	TotalDeposit    int64                `json:"total_deposit"`
	TotalWithdrawal int64                `json:"total_withdrawal"`

	Reconditioning      []models.VehicleReconditioning `json:"reconditioning"`
	TotalReconditioning int64                          `json:"total_reconditioning"`
}

// ForVehicle collects the purchase, ledger and reconditioning rows of a vehicle
func ForVehicle(s *models.Snapshot, id string) Vehicle {
	r := Vehicle{VehicleID: id}
	if s == nil || id == "" {
		return r
	}

	for _, p := range s.Purchases {
		if p.VehicleID == id {
			r.Purchases = append(r.Purchases, p)
			r.TotalPurchase += p.PurchaseAmount
		}
	}

	for _, e := range s.Ledger {
		if e.VehicleID == id {
			r.Ledger = append(r.Ledger, e)
			r.TotalDeposit += e.Deposit
			r.TotalWithdrawal += e.Withdrawal
		}
	}

	for _, job := range s.Reconditioning {
		if job.VehicleID == id {
			r.Reconditioning = append(r.Reconditioning, job)
			r.TotalReconditioning += job.CostInclVAT
		}
	}

	return r
}

package models

import "time"

// Source column names used by the business spreadsheets
const (
	ColEmployeeName     = "직원명"
	ColPeriodSource     = "기준년월(YYYY-MM)"
	ColPeriod           = "기준년월"
	ColPayDate          = "지급일자"
	ColTaxBase          = "과세표준"
	ColIncomeTax        = "소득세"
	ColResidentTax      = "주민세"
	ColSettlementAmount = "정산입금액"
	ColIncomeType       = "소득구분(고정/변동/퇴사 등)"
	ColRemarks          = "비고"

	ColVehicleID       = "차량번호"
	ColAcquisitionDate = "취득일자"
	ColPurchaseAmount  = "매입가액"

	ColEntryDate    = "일자"
	ColAccount      = "계정구분(장부/부가세/차대/이전비/상사이전/미수금/일계표/결산/기타)"
	ColAccountShort = "계정"
	ColDescription  = "내용"
	ColManager      = "담당자"
	ColRelated      = "관련직원명"
	ColDeposit      = "입금"
	ColWithdrawal   = "출금"
	ColBalance      = "잔액"

	ColIntakeDate     = "입고일자"
	ColCompletionDate = "상품화완료일자"
	ColCostInclVAT    = "비용(VAT포함)"
)

// DefaultIncomeType is injected when a legacy income sheet has no income type column
const DefaultIncomeType = "직원"

// EmployeeIncome is one business-income payment to an employee
type EmployeeIncome struct {
	EmployeeName     string    `json:"employee_name"`
	Period           string    `json:"period"`
	PayDate          time.Time `json:"pay_date"` // zero when unknown
	TaxBase          int64     `json:"tax_base"`
	IncomeTax        int64     `json:"income_tax"`
	ResidentTax      int64     `json:"resident_tax"`
	SettlementAmount int64     `json:"settlement_amount"`
	IncomeType       string    `json:"income_type"`
	Remarks          string    `json:"remarks"`
}

// VehiclePurchase is one recycled-vehicle acquisition
type VehiclePurchase struct {
	VehicleID       string    `json:"vehicle_id"`
	AcquisitionDate time.Time `json:"acquisition_date"`
	Period          string    `json:"period"`
	PurchaseAmount  int64     `json:"purchase_amount"`
}

// LedgerEntry is one general ledger line
type LedgerEntry struct {
	EntryDate           time.Time `json:"entry_date"`
	Period              string    `json:"period"`
	AccountLabel        string    `json:"account_label"`
	Description         string    `json:"description"`
	VehicleID           string    `json:"vehicle_id"`
	ManagerName         string    `json:"manager_name"`
	RelatedEmployeeName string    `json:"related_employee_name"`
	Deposit             int64     `json:"deposit"`
	Withdrawal          int64     `json:"withdrawal"`
	Balance             int64     `json:"balance"`
}

// VehicleReconditioning is one reconditioning job (detailing, bodywork, repair)
type VehicleReconditioning struct {
	VehicleID      string    `json:"vehicle_id"`
	ManagerName    string    `json:"manager_name"`
	IntakeDate     time.Time `json:"intake_date"`
	CompletionDate time.Time `json:"completion_date"`
	CostInclVAT    int64     `json:"cost_incl_vat"`
	Period         string    `json:"period"`
}

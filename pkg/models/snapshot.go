package models

import "time"

// Snapshot is the read-only result of one load. Nothing mutates it after the
// loader returns, so it may be shared between concurrent readers.
type Snapshot struct {
	EmployeeIncome []EmployeeIncome
	Purchases      []VehiclePurchase
	Ledger         []LedgerEntry
	Reconditioning []VehicleReconditioning

	// Raw holds every table as loaded, after renames and derived columns.
	// The monthly report only exists here.
	Raw map[TableID]Table

	// Failures records tables that were replaced by an empty table
	Failures map[TableID]error

	// Origin describes where the data came from (workbook path, sheet URL or legacy dir)
	Origin   string
	LoadedAt time.Time
}

// Table returns the raw table, or an empty one with the given id
func (s *Snapshot) Table(id TableID) Table {
	if s == nil {
		return Table{ID: id}
	}
	if t, ok := s.Raw[id]; ok {
		return t
	}
	return Table{ID: id}
}

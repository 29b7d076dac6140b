// Package index builds the candidate lists that drive employee and vehicle
// lookups, and the list of periods that have data.
package index

import (
	"sort"
	"strings"

	"arkmotors/internal/normalize"
	"arkmotors/pkg/models"
)

// BuildCandidates merges columns into a sorted list of unique, trimmed,
// non-empty values. Sorting is plain byte order, ascending.
func BuildCandidates(columns ...[]string) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, col := range columns {
		for _, v := range col {
			v = strings.TrimSpace(v)
			if v == "" {
				continue
			}
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	sort.Strings(out)
	return out
}

// Employees lists every name that appears as an employee, ledger manager,
// related employee or reconditioning manager
func Employees(s *models.Snapshot) []string {
	if s == nil {
		return []string{}
	}

	names := make([]string, 0, len(s.EmployeeIncome)+2*len(s.Ledger)+len(s.Reconditioning))
	for _, r := range s.EmployeeIncome {
		names = append(names, r.EmployeeName)
	}
	for _, e := range s.Ledger {
		names = append(names, e.ManagerName, e.RelatedEmployeeName)
	}
	for _, r := range s.Reconditioning {
		names = append(names, r.ManagerName)
	}
	return BuildCandidates(names)
}

// Vehicles lists every vehicle id across purchases, ledger and reconditioning
func Vehicles(s *models.Snapshot) []string {
	if s == nil {
		return []string{}
	}

	ids := make([]string, 0, len(s.Purchases)+len(s.Ledger)+len(s.Reconditioning))
	for _, r := range s.Purchases {
		ids = append(ids, r.VehicleID)
	}
	for _, e := range s.Ledger {
		ids = append(ids, e.VehicleID)
	}
	for _, r := range s.Reconditioning {
		ids = append(ids, r.VehicleID)
	}
	return BuildCandidates(ids)
}

// Periods lists every period that appears in the four transactional tables
func Periods(s *models.Snapshot) []string {
	if s == nil {
		return []string{}
	}

	var periods []string
	for _, r := range s.EmployeeIncome {
		periods = append(periods, r.Period)
	}
	for _, r := range s.Purchases {
		periods = append(periods, r.Period)
	}
	for _, e := range s.Ledger {
		periods = append(periods, e.Period)
	}
	for _, r := range s.Reconditioning {
		periods = append(periods, r.Period)
	}
	return BuildCandidates(periods)
}

// Filter keeps candidates containing query, ignoring case. When nothing
// matches, the full list is returned with matched set to false so callers can
// warn and still offer every candidate.
func Filter(candidates []string, query string) (result []string, matched bool) {
	query = normalize.Fold(strings.TrimSpace(query))
	if query == "" {
		return candidates, true
	}

	for _, c := range candidates {
		if strings.Contains(normalize.Fold(c), query) {
			result = append(result, c)
		}
	}
	if len(result) == 0 {
		return candidates, false
	}
	return result, true
}

package classify

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultRules returns the built-in rule chain in evaluation order
func DefaultRules() []Rule {
	return []Rule{
		{
			Category:    CategoryVehiclePurchase,
			Account:     []string{"차대", "상사이전"},
			Description: []string{"매입"},
		},
		{
			Category:    CategorySales,
			Description: []string{"판매", "매출"},
		},
		{
			Category:    CategoryLabor,
			Description: []string{"급여", "인건비", "상여", "일당", "급료", "4대보험"},
		},
		{
			Category:    CategoryFixedCost,
			Description: []string{"임대료", "월세", "전세", "보증금", "건물관리비", "관리비"},
		},
		{
			Category:    CategoryTax,
			Description: []string{"부가세", "소득세", "원천세", "지방세", "세금"},
		},
		{
			Category: CategoryVariableCost,
			Description: []string{
				"광고", "홍보", "수수료", "카드수수료", "통신비", "전기료", "소모품", "잡비", "유류", "주유",
				// reconditioning work booked straight to the ledger
				"광택", "판금", "정비", "수리",
			},
		},
	}
}

// DefaultIncomeExclusions returns the income-type keywords that keep a payment
// out of the monthly labor total
func DefaultIncomeExclusions() []string {
	return []string{"외부", "비직원", "기타", "제외", "external", "non-employee", "other", "excluded"}
}

// RuleFile is the YAML layout accepted by LoadFile:
//
//	rules:
//	  - category: VehiclePurchase
//	    account: [차대, 상사이전]
//	    description: [매입]
//	income_exclusions: [외부, 비직원]
//
// Omitted sections keep their defaults.
type RuleFile struct {
	Rules            []Rule   `yaml:"rules"`
	IncomeExclusions []string `yaml:"income_exclusions"`
}

// LoadFile builds a classifier from a YAML rule file
func LoadFile(path string) (*Classifier, error) {
	const op = "LoadFile"

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to read rule file: %w", op, err)
	}

	var rf RuleFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("%s: failed to parse rule file %s: %w", op, path, err)
	}

	rules := DefaultRules()
	if len(rf.Rules) > 0 {
		rules = rf.Rules
	}
	for i := range rules {
		category, err := ParseCategory(string(rules[i].Category))
		if err != nil {
			return nil, fmt.Errorf("%s: rule %d: %w", op, i+1, err)
		}
		rules[i].Category = category
	}

	exclusions := DefaultIncomeExclusions()
	if rf.IncomeExclusions != nil {
		exclusions = rf.IncomeExclusions
	}

	return New(rules, exclusions), nil
}

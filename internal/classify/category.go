package classify

import "fmt"

// Category is a settlement category a ledger row is assigned to
type Category string

const (
	CategoryVehiclePurchase Category = "VehiclePurchase"
	CategorySales           Category = "Sales"
	CategoryLabor           Category = "Labor"
	CategoryFixedCost       Category = "FixedCost"
	CategoryTax             Category = "Tax"
	CategoryVariableCost    Category = "VariableCost"
	CategoryOther           Category = "Other"
)

// Categories is the fixed taxonomy in reporting order
var Categories = []Category{
	CategoryVehiclePurchase,
	CategorySales,
	CategoryLabor,
	CategoryFixedCost,
	CategoryTax,
	CategoryVariableCost,
	CategoryOther,
}

var labels = map[Category]string{
	CategoryVehiclePurchase: "차량매입",
	CategorySales:           "매출",
	CategoryLabor:           "인건비",
	CategoryFixedCost:       "고정비",
	CategoryTax:             "세금",
	CategoryVariableCost:    "변동비",
	CategoryOther:           "기타",
}

// Label returns the Korean label shown in settlement reports
func (c Category) Label() string {
	if l, ok := labels[c]; ok {
		return l
	}
	return string(c)
}

// Valid reports whether c belongs to the taxonomy
func (c Category) Valid() bool {
	_, ok := labels[c]
	return ok
}

// ParseCategory accepts either the identifier or the Korean label
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if s == string(c) || s == c.Label() {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", s)
}

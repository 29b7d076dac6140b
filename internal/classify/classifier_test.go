package classify

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arkmotors/pkg/models"
)

func TestClassifier_Classify(t *testing.T) {
	c := Default()

	tests := []struct {
		name        string
		account     string
		description string
		want        Category
	}{
		{name: "trade-in account wins over description", account: "상사이전", description: "급여 지급", want: CategoryVehiclePurchase},
		{name: "transfer account", account: "차대", description: "", want: CategoryVehiclePurchase},
		{name: "purchase in description", account: "장부", description: "12가3456 매입", want: CategoryVehiclePurchase},
		{name: "sale", account: "장부", description: "쏘나타 판매 대금", want: CategorySales},
		{name: "revenue", account: "", description: "3월 매출 입금", want: CategorySales},
		{name: "salary", account: "장부", description: "급여 지급", want: CategoryLabor},
		{name: "insurance", account: "", description: "4대보험 납부", want: CategoryLabor},
		{name: "rent", account: "", description: "사무실 월세", want: CategoryFixedCost},
		{name: "building fee", account: "", description: "건물관리비 6월", want: CategoryFixedCost},
		{name: "vat", account: "부가세", description: "부가세 납부", want: CategoryTax},
		{name: "withholding", account: "", description: "원천세", want: CategoryTax},
		{name: "card fee", account: "", description: "카드수수료", want: CategoryVariableCost},
		{name: "fuel", account: "", description: "주유", want: CategoryVariableCost},
		{name: "bodywork", account: "", description: "범퍼 판금 도색", want: CategoryVariableCost},
		{name: "repair", account: "", description: "엔진 수리", want: CategoryVariableCost},
		{name: "nothing matches", account: "미수금", description: "거래처 송금", want: CategoryOther},
		{name: "empty row", account: "", description: "", want: CategoryOther},
		// account keywords other than the transfer markers are not consulted
		{name: "salary only in account", account: "급여", description: "이체", want: CategoryOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.account, tt.description))
		})
	}
}

func TestClassifier_RuleOrder(t *testing.T) {
	c := Default()

	// sales beats labor, labor beats tax
	assert.Equal(t, CategorySales, c.Classify("", "판매 직원 상여"))
	assert.Equal(t, CategoryLabor, c.Classify("", "급여 원천세 공제"))
	// fixed cost beats variable cost
	assert.Equal(t, CategoryFixedCost, c.Classify("", "관리비 수수료"))
}

func TestClassifier_CaseInsensitive(t *testing.T) {
	c := New([]Rule{{Category: CategoryVariableCost, Description: []string{"Fuel"}}}, nil)

	assert.Equal(t, CategoryVariableCost, c.Classify("", "FUEL station"))
	assert.Equal(t, CategoryVariableCost, c.Classify("", "fuel"))
}

func TestClassifier_Deterministic(t *testing.T) {
	c := Default()
	entry := models.LedgerEntry{AccountLabel: "장부", Description: "광고비 및 주유"}

	first := c.ClassifyEntry(entry)
	for i := 0; i < 50; i++ {
		require.Equal(t, first, c.ClassifyEntry(entry))
	}
	assert.Equal(t, CategoryVariableCost, first)
}

func TestClassifier_ExcludesIncomeType(t *testing.T) {
	c := Default()

	assert.True(t, c.ExcludesIncomeType("외부"))
	assert.True(t, c.ExcludesIncomeType("외부 강사"))
	assert.True(t, c.ExcludesIncomeType("비직원"))
	assert.True(t, c.ExcludesIncomeType("External"))
	assert.False(t, c.ExcludesIncomeType("직원"))
	assert.False(t, c.ExcludesIncomeType("고정"))
	assert.False(t, c.ExcludesIncomeType("  "))
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.yaml")
	content := `rules:
  - category: Sales
    description: [위탁판매]
  - category: 고정비
    description: [렌탈]
income_exclusions: [프리랜서]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	c, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, CategorySales, c.Classify("", "위탁판매 정산"))
	assert.Equal(t, CategoryFixedCost, c.Classify("", "복합기 렌탈"))
	// replaced rule chain no longer knows salaries
	assert.Equal(t, CategoryOther, c.Classify("", "급여 지급"))
	assert.True(t, c.ExcludesIncomeType("프리랜서"))
	assert.False(t, c.ExcludesIncomeType("외부"))
}

func TestLoadFile_KeepsDefaultsForMissingSections(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte("income_exclusions: [용역]\n"), 0o644))

	c, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, CategoryLabor, c.Classify("", "급여 지급"))
	assert.True(t, c.ExcludesIncomeType("용역"))
}

func TestLoadFile_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadFile(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("rules:\n  - category: Marketing\n    description: [광고]\n"), 0o644))
	_, err = LoadFile(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown category "Marketing"`)

	broken := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(broken, []byte("rules: [\n"), 0o644))
	_, err = LoadFile(broken)
	require.Error(t, err)
}

func TestCategory_Label(t *testing.T) {
	assert.Equal(t, "인건비", CategoryLabor.Label())
	assert.Equal(t, "기타", CategoryOther.Label())

	c, err := ParseCategory("변동비")
	require.NoError(t, err)
	assert.Equal(t, CategoryVariableCost, c)
	assert.True(t, c.Valid())
	assert.False(t, Category("Marketing").Valid())
}

package sheets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsSheetURL(t *testing.T) {
	assert.True(t, IsSheetURL("https://docs.google.com/spreadsheets/d/1AbC-d_9/edit#gid=0"))
	assert.False(t, IsSheetURL("/home/ark/amotors_master_data.xlsx"))
	assert.False(t, IsSheetURL("https://example.com/report.xlsx"))
}

func TestExtractSpreadsheetID(t *testing.T) {
	id, err := extractSpreadsheetID("https://docs.google.com/spreadsheets/d/1AbC-d_9/edit")
	require.NoError(t, err)
	assert.Equal(t, "1AbC-d_9", id)

	_, err = extractSpreadsheetID("https://docs.google.com/document/d/xyz")
	assert.Error(t, err)
}

func TestCellString(t *testing.T) {
	assert.Equal(t, "", CellString(nil))
	assert.Equal(t, "김철수", CellString("김철수"))
	assert.Equal(t, "1500000", CellString(float64(1500000)))
	assert.Equal(t, "12345678901", CellString(float64(12345678901)))
	assert.Equal(t, "45366.5", CellString(45366.5))
	assert.Equal(t, "TRUE", CellString(true))
}

func TestQuoteSheetName(t *testing.T) {
	assert.Equal(t, "'1_직원소득'", quoteSheetName("1_직원소득"))
	assert.Equal(t, "'Ark''s'", quoteSheetName("Ark's"))
}

package parser

import (
	"path/filepath"
	"testing"

	"github.com/flowcomply/regscan/pkg/regscan/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestReadSheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	require.NoError(t, f.SetCellValue(sheetName, "A1", "DWQAR Reporting"))
	require.NoError(t, f.SetSheetRow(sheetName, "A3", &[]interface{}{"Supply Code", "Supply Name", "Sample Date", "Result"}))
	require.NoError(t, f.SetSheetRow(sheetName, "A4", &[]interface{}{"TAU001", "Town Supply", "2024-07-01", 100}))
	require.NoError(t, f.SetCellValue(sheetName, "F5", 200.5))

	tmpFile := filepath.Join(t.TempDir(), "test.xlsx")
	require.NoError(t, f.SaveAs(tmpFile))

	f2, err := excelize.OpenFile(tmpFile)
	require.NoError(t, err)
	defer f2.Close()

	sheet, err := ReadSheet(f2, sheetName)
	require.NoError(t, err)

	assert.Equal(t, sheetName, sheet.Name)
	assert.Equal(t, models.Dimensions{Rows: 5, Columns: 6}, SheetDimensions(sheet))
	assert.Equal(t, "DWQAR Reporting", sheet.Cell(1, 1))
	assert.Equal(t, "", sheet.Cell(2, 1))
	assert.Equal(t, "Sample Date", sheet.Cell(3, 3))
	assert.Equal(t, "100", sheet.Cell(4, 4))
	assert.Equal(t, "200.5", sheet.Cell(5, 6))
	assert.Equal(t, "", sheet.Cell(9, 9))

	header, ok := LocateHeader(sheet, DefaultHeaderParams())
	require.True(t, ok)
	assert.Equal(t, 3, header.Row)
}

func TestReadSheetMissing(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	_, err := ReadSheet(f, "NoSuchSheet")
	assert.Error(t, err)
}

func TestColumnValues(t *testing.T) {
	sheet := models.NewSheet("RuleIDs", [][]string{
		{"T1.8-ecol", "ignored"},
		{},
		{"T3.2-Crypto"},
	})

	assert.Equal(t, []string{"T1.8-ecol", "", "T3.2-Crypto"}, ColumnValues(sheet, 1))
	assert.Equal(t, []string{"ignored", "", ""}, ColumnValues(sheet, 2))
}

func TestSampleRows(t *testing.T) {
	sheet := models.NewSheet("Data", [][]string{
		{"Supply", "Name", "Code", "Date"},
		{"1", "X", "Y", "2020-01-01"},
		{"2", "Z"},
	})

	rows := SampleRows(sheet, 2, 4, 3)
	require.Len(t, rows, 2)
	assert.Equal(t, models.CellRow{R: 2, Values: []string{"1", "X", "Y"}}, rows[0])
	assert.Equal(t, models.CellRow{R: 3, Values: []string{"2", "Z", ""}}, rows[1])

	assert.Empty(t, SampleRows(sheet, 4, 4, 3))
	assert.Empty(t, SampleRows(sheet, 0, 4, 3))
}

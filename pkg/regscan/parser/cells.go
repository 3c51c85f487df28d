package parser

import (
	"github.com/flowcomply/regscan/pkg/regscan/models"
	"github.com/xuri/excelize/v2"
)

// ReadSheet loads the cell texts of a worksheet into a Sheet.
func ReadSheet(f *excelize.File, sheetName string) (models.Sheet, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return models.Sheet{}, err
	}
	return models.NewSheet(sheetName, rows), nil
}

// SheetDimensions returns the extent of a sheet's cell grid.
func SheetDimensions(sheet models.Sheet) models.Dimensions {
	return models.Dimensions{
		Rows:    sheet.RowCount(),
		Columns: sheet.ColCount(),
	}
}

// ColumnValues returns every cell of column col (1-based), top to bottom.
func ColumnValues(sheet models.Sheet, col int) []string {
	values := make([]string, 0, sheet.RowCount())
	for r := 1; r <= sheet.RowCount(); r++ {
		values = append(values, sheet.Cell(r, col))
	}
	return values
}

// SampleRows returns up to maxRows rows starting at row start, each cut to
// the first maxCols columns. Rows past the end of the sheet are not returned.
func SampleRows(sheet models.Sheet, start, maxRows, maxCols int) []models.CellRow {
	if start < 1 || maxRows <= 0 {
		return nil
	}
	cols := min(maxCols, sheet.ColCount())

	var result []models.CellRow
	for r := start; r < start+maxRows && r <= sheet.RowCount(); r++ {
		values := make([]string, cols)
		for c := 1; c <= cols; c++ {
			values[c-1] = sheet.Cell(r, c)
		}
		result = append(result, models.CellRow{R: r, Values: values})
	}
	return result
}

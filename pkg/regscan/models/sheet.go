package models

// Sheet is a rectangular view of a worksheet's cell texts.
// Rows and columns are addressed 1-based; cells outside the grid read as empty.
type Sheet struct {
	// Name is the worksheet name.
	Name string
	rows [][]string
	cols int
}

// NewSheet wraps rows (0-based, possibly ragged) as a Sheet.
func NewSheet(name string, rows [][]string) Sheet {
	cols := 0
	for _, row := range rows {
		if len(row) > cols {
			cols = len(row)
		}
	}
	return Sheet{Name: name, rows: rows, cols: cols}
}

// RowCount returns the number of rows in the grid.
func (s Sheet) RowCount() int { return len(s.rows) }

// ColCount returns the width of the widest row.
func (s Sheet) ColCount() int { return s.cols }

// Cell returns the text at row r, column c (both 1-based).
func (s Sheet) Cell(r, c int) string {
	if r < 1 || r > len(s.rows) {
		return ""
	}
	row := s.rows[r-1]
	if c < 1 || c > len(row) {
		return ""
	}
	return row[c-1]
}

// Dimensions holds the row and column count of a sheet.
type Dimensions struct {
	Rows    int `json:"rows"`
	Columns int `json:"columns"`
}

// HeaderCandidate is a row accepted as the column header of a sheet.
type HeaderCandidate struct {
	// Row is the header row index (1-based).
	Row int `json:"row"`
	// Cells holds the trimmed non-empty cell texts in column order.
	Cells []string `json:"cells"`
}

// DataStartRow returns the first row below the header.
func (h HeaderCandidate) DataStartRow() int {
	return h.Row + 1
}

// ColumnMapping describes one header cell awaiting manual field mapping.
type ColumnMapping struct {
	// ColumnIndex is the ordinal position of the header cell (1-based).
	ColumnIndex int `json:"column_index"`
	// HeaderName is the header cell text.
	HeaderName string `json:"header_name"`
	// DatabaseMapping is a placeholder filled in by a reviewer.
	DatabaseMapping string `json:"database_mapping"`
	// Required is a placeholder filled in by a reviewer.
	Required string `json:"required"`
	// DataType is a placeholder filled in by a reviewer.
	DataType string `json:"data_type"`
}

// SheetAnalysis represents the header analysis for a single sheet.
type SheetAnalysis struct {
	// SheetName is the worksheet name.
	SheetName string `json:"sheet_name"`
	// Dimensions is the extent of the sheet's cell grid.
	Dimensions Dimensions `json:"dimensions"`
	// HeaderRow is the detected header row (nil if no header was found).
	HeaderRow *int `json:"header_row"`
	// DataStartRow is the first data row (nil if no header was found).
	DataStartRow *int `json:"data_start_row"`
	// Headers contains one mapping per header cell.
	Headers []ColumnMapping `json:"headers"`
	// SampleRows contains the first rows below the header.
	SampleRows []CellRow `json:"sample_rows,omitempty"`
	// Notes contains hints derived from the sheet name.
	Notes []string `json:"notes"`
}

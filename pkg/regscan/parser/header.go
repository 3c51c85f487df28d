// Package parser implements the structure-extraction heuristics over sheets and text.
package parser

import (
	"strconv"
	"strings"

	"github.com/flowcomply/regscan/pkg/regscan/models"
	"github.com/rs/zerolog/log"
)

// HeaderParams holds parameters for header row detection.
type HeaderParams struct {
	// ScanWindow is the number of leading rows examined.
	ScanWindow int
	// MinCells is the non-empty cell count a row must exceed to be a candidate.
	MinCells int
	// Keywords must appear (case-insensitive) in an accepted header row.
	Keywords []string
}

// DefaultHeaderParams returns the header detection parameters for the DWQAR template.
func DefaultHeaderParams() HeaderParams {
	return HeaderParams{
		ScanWindow: 20,
		MinCells:   3,
		Keywords:   []string{"supply", "name", "code", "date", "water", "compliance"},
	}
}

// LocateHeader returns the first row in the scan window with more than
// params.MinCells non-empty cells whose joined text contains a header keyword.
// The second result is false when no row qualifies.
func LocateHeader(sheet models.Sheet, params HeaderParams) (models.HeaderCandidate, bool) {
	if sheet.RowCount() == 0 || sheet.ColCount() == 0 {
		return models.HeaderCandidate{}, false
	}

	last := min(params.ScanWindow, sheet.RowCount())
	for r := 1; r <= last; r++ {
		cells := nonEmptyCells(sheet, r)
		if len(cells) <= params.MinCells {
			continue
		}
		log.Debug().Str("sheet", sheet.Name).Int("row", r).Strs("cells", head(cells, 10)).Msg("header candidate")

		if !containsAny(strings.ToLower(strings.Join(cells, " ")), params.Keywords) {
			continue
		}
		log.Debug().Str("sheet", sheet.Name).Int("row", r).Int("data_start_row", r+1).Msg("header row identified")
		return models.HeaderCandidate{Row: r, Cells: cells}, true
	}
	return models.HeaderCandidate{}, false
}

// ColumnMappings builds one unresolved mapping per header cell.
// A positive limit caps the number of mappings.
func ColumnMappings(h models.HeaderCandidate, limit int) []models.ColumnMapping {
	cells := h.Cells
	if limit > 0 {
		cells = head(cells, limit)
	}
	mappings := make([]models.ColumnMapping, 0, len(cells))
	for i, name := range cells {
		idx := i + 1
		mappings = append(mappings, models.ColumnMapping{
			ColumnIndex:     idx,
			HeaderName:      name,
			DatabaseMapping: "TO_BE_MAPPED_" + strconv.Itoa(idx),
			Required:        "UNKNOWN",
			DataType:        "UNKNOWN",
		})
	}
	return mappings
}

// SheetNotes returns hints about a sheet's content derived from its name.
func SheetNotes(sheetName string) []string {
	name := strings.ToLower(sheetName)
	notes := []string{}
	if strings.Contains(name, "supply") {
		notes = append(notes, "Contains water supply information")
	}
	if strings.Contains(name, "test") || strings.Contains(name, "quality") {
		notes = append(notes, "Contains water quality test data")
	}
	if strings.Contains(name, "compliance") {
		notes = append(notes, "Contains compliance reporting data")
	}
	return notes
}

// nonEmptyCells collects the trimmed non-blank cells of row r in column order.
func nonEmptyCells(sheet models.Sheet, r int) []string {
	var cells []string
	for c := 1; c <= sheet.ColCount(); c++ {
		if v := strings.TrimSpace(sheet.Cell(r, c)); v != "" {
			cells = append(cells, v)
		}
	}
	return cells
}

func containsAny(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

func head(s []string, n int) []string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

package regscan

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/flowcomply/regscan/pkg/regscan/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type sheetFixture struct {
	name string
	rows [][]interface{}
}

// writeWorkbook saves the fixture sheets, in order, to a temporary xlsx file.
func writeWorkbook(t *testing.T, sheets ...sheetFixture) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	for i, s := range sheets {
		if i == 0 {
			require.NoError(t, f.SetSheetName("Sheet1", s.name))
		} else {
			_, err := f.NewSheet(s.name)
			require.NoError(t, err)
		}
		for r, row := range s.rows {
			cell, err := excelize.CoordinatesToCellName(1, r+1)
			require.NoError(t, err)
			require.NoError(t, f.SetSheetRow(s.name, cell, &row))
		}
	}

	path := filepath.Join(t.TempDir(), "template.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func fixedOptions() Options {
	opts := DefaultOptions()
	opts.Now = func() time.Time { return time.Date(2025, 10, 5, 9, 0, 0, 0, time.UTC) }
	return opts
}

func TestAnalyzeTemplate(t *testing.T) {
	path := writeWorkbook(t,
		sheetFixture{name: "Supply Details", rows: [][]interface{}{
			{"a", "b", "c"},
			{"Water", "Supply", "Name", "Code", "Date"},
			{"1", "X", "Y", "2020-01-01"},
		}},
		sheetFixture{name: "Notes", rows: [][]interface{}{
			{"one", "two", "three", "four", "five"},
		}},
		sheetFixture{name: "Empty"},
	)

	analysis, err := AnalyzeTemplate(path, fixedOptions())
	require.NoError(t, err)

	assert.Equal(t, "template.xlsx", analysis.TemplateFile)
	assert.Equal(t, "2025-10-05", analysis.AnalysisDate)
	require.Len(t, analysis.Sheets, 3)

	supply := analysis.Sheets[0]
	assert.Equal(t, "Supply Details", supply.SheetName)
	assert.Equal(t, 3, supply.Dimensions.Rows)
	assert.Equal(t, 5, supply.Dimensions.Columns)
	require.NotNil(t, supply.HeaderRow)
	require.NotNil(t, supply.DataStartRow)
	assert.Equal(t, 2, *supply.HeaderRow)
	assert.Equal(t, 3, *supply.DataStartRow)
	require.Len(t, supply.Headers, 5)
	names := make([]string, len(supply.Headers))
	for i, h := range supply.Headers {
		names[i] = h.HeaderName
	}
	assert.Equal(t, []string{"Water", "Supply", "Name", "Code", "Date"}, names)
	assert.Equal(t, "TO_BE_MAPPED_5", supply.Headers[4].DatabaseMapping)
	require.Len(t, supply.SampleRows, 1)
	assert.Equal(t, 3, supply.SampleRows[0].R)
	assert.Equal(t, []string{"1", "X", "Y", "2020-01-01", ""}, supply.SampleRows[0].Values)
	assert.Equal(t, []string{"Contains water supply information"}, supply.Notes)

	notes := analysis.Sheets[1]
	assert.Nil(t, notes.HeaderRow)
	assert.Nil(t, notes.DataStartRow)
	assert.Empty(t, notes.Headers)

	empty := analysis.Sheets[2]
	assert.Equal(t, 0, empty.Dimensions.Rows)
	assert.Nil(t, empty.HeaderRow)
}

func TestAnalyzeTemplateScanWindow(t *testing.T) {
	path := writeWorkbook(t, sheetFixture{name: "Data", rows: [][]interface{}{
		{"title"},
		{"subtitle"},
		{"Water", "Supply", "Name", "Code"},
	}})

	opts := fixedOptions()
	opts.Header.ScanWindow = 2
	analysis, err := AnalyzeTemplate(path, opts)
	require.NoError(t, err)
	assert.Nil(t, analysis.Sheets[0].HeaderRow)

	opts.Header.ScanWindow = 3
	analysis, err = AnalyzeTemplate(path, opts)
	require.NoError(t, err)
	require.NotNil(t, analysis.Sheets[0].HeaderRow)
	assert.Equal(t, 3, *analysis.Sheets[0].HeaderRow)
}

func TestAnalyzeTemplateSourceUnavailable(t *testing.T) {
	dir := t.TempDir()
	corrupt := filepath.Join(dir, "corrupt.xlsx")
	require.NoError(t, os.WriteFile(corrupt, []byte("not a workbook"), 0644))

	for _, path := range []string{filepath.Join(dir, "missing.xlsx"), corrupt} {
		analysis, err := AnalyzeTemplate(path, fixedOptions())
		assert.Nil(t, analysis)
		require.ErrorIs(t, err, ErrSourceUnavailable)

		var extractErr *ExtractionError
		require.True(t, errors.As(err, &extractErr))
		assert.Equal(t, path, extractErr.Source)
		assert.Equal(t, "workbook", extractErr.Component)
	}
}

func TestExtractRules(t *testing.T) {
	path := writeWorkbook(t,
		sheetFixture{name: "Summary", rows: [][]interface{}{{"ignored"}}},
		sheetFixture{name: "RuleIDs", rows: [][]interface{}{
			{"T1.8-ecol"},
			{"T3.2-Crypto"},
			{nil},
			{"T1.8-ecol"},
			{" X9.1 "},
			{"M1.1-turb", "other column"},
		}},
	)

	set, err := ExtractRules(path, fixedOptions())
	require.NoError(t, err)

	assert.Equal(t, "template.xlsx", set.Metadata.Source)
	assert.Equal(t, "RuleIDs", set.Metadata.Sheet)
	assert.Equal(t, "2025-10-05", set.Metadata.ExtractionDate)
	assert.Equal(t, 4, set.Metadata.TotalRules)

	ids := make([]string, len(set.Rules))
	for i, r := range set.Rules {
		ids[i] = r.RuleID
	}
	assert.Equal(t, []string{"T1.8-ecol", "T3.2-Crypto", "X9.1", "M1.1-turb"}, ids)
	assert.Equal(t, map[string]int{
		parser.CategoryBacteriological: 1,
		parser.CategoryProtozoa:        1,
		parser.CategoryWaterQuality:    1,
		parser.CategoryMonitoring:      1,
	}, set.CategoryCounts)
}

func TestExtractRulesColumn(t *testing.T) {
	path := writeWorkbook(t, sheetFixture{name: "Rules", rows: [][]interface{}{
		{"1", "V2.1-chlorine"},
		{"2", "O1"},
	}})

	opts := fixedOptions()
	opts.RuleSheet = "Rules"
	opts.RuleColumn = 2
	set, err := ExtractRules(path, opts)
	require.NoError(t, err)
	require.Len(t, set.Rules, 2)
	assert.Equal(t, parser.CategoryVerification, set.Rules[0].Category)
	assert.Equal(t, "chlorine", *set.Rules[0].Parameter)
	assert.Equal(t, parser.CategoryOperational, set.Rules[1].Category)
}

func TestExtractRulesSheetNotFound(t *testing.T) {
	path := writeWorkbook(t, sheetFixture{name: "Summary", rows: [][]interface{}{{"x"}}})

	_, err := ExtractRules(path, fixedOptions())
	require.ErrorIs(t, err, ErrSheetNotFound)
	assert.NotErrorIs(t, err, ErrSourceUnavailable)
}

func TestExtractRulesEmptySheet(t *testing.T) {
	path := writeWorkbook(t, sheetFixture{name: "RuleIDs"})

	set, err := ExtractRules(path, fixedOptions())
	require.NoError(t, err)
	assert.NotNil(t, set.Rules)
	assert.Empty(t, set.Rules)
	assert.Equal(t, 0, set.Metadata.TotalRules)
}

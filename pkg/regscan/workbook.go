package regscan

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/flowcomply/regscan/pkg/regscan/models"
	"github.com/flowcomply/regscan/pkg/regscan/parser"
	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"
)

// openWorkbook opens an xlsx file, reporting missing or unreadable files as
// ErrSourceUnavailable.
func openWorkbook(path string) (*excelize.File, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, sourceUnavailable(path, "workbook", err)
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, sourceUnavailable(path, "workbook", err)
	}
	return f, nil
}

// AnalyzeTemplate locates the header row of every sheet in a workbook.
func AnalyzeTemplate(path string, opts Options) (*models.TemplateAnalysis, error) {
	f, err := openWorkbook(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheetList := f.GetSheetList()
	log.Info().Str("workbook", filepath.Base(path)).Int("sheets", len(sheetList)).Msg("analyzing template")

	sheets := make([]models.SheetAnalysis, 0, len(sheetList))
	for _, sheetName := range sheetList {
		sheet, err := parser.ReadSheet(f, sheetName)
		if err != nil {
			// Continue with an empty sheet
			log.Warn().Err(err).Str("sheet", sheetName).Msg("read sheet failed")
			sheet = models.NewSheet(sheetName, nil)
		}
		sheets = append(sheets, analyzeSheet(sheet, opts))
	}

	return &models.TemplateAnalysis{
		TemplateFile: filepath.Base(path),
		AnalysisDate: opts.Today(),
		Sheets:       sheets,
	}, nil
}

func analyzeSheet(sheet models.Sheet, opts Options) models.SheetAnalysis {
	dims := parser.SheetDimensions(sheet)
	log.Info().Str("sheet", sheet.Name).Int("rows", dims.Rows).Int("columns", dims.Columns).Msg("sheet dimensions")

	analysis := models.SheetAnalysis{
		SheetName:  sheet.Name,
		Dimensions: dims,
		Headers:    []models.ColumnMapping{},
		Notes:      parser.SheetNotes(sheet.Name),
	}

	header, ok := parser.LocateHeader(sheet, opts.Header)
	if !ok {
		log.Info().Str("sheet", sheet.Name).Msg("no header row found")
		return analysis
	}

	headerRow, dataStart := header.Row, header.DataStartRow()
	analysis.HeaderRow = &headerRow
	analysis.DataStartRow = &dataStart
	analysis.Headers = parser.ColumnMappings(header, opts.MaxHeaderColumns)
	analysis.SampleRows = parser.SampleRows(sheet, dataStart, opts.SampleRows, opts.SampleColumns)
	log.Info().Str("sheet", sheet.Name).Int("header_row", headerRow).Int("columns", len(header.Cells)).Msg("header row found")
	return analysis
}

// ExtractRules reads and classifies the rule identifiers of a workbook's rule sheet.
func ExtractRules(path string, opts Options) (*models.RuleSet, error) {
	f, err := openWorkbook(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if !slices.Contains(f.GetSheetList(), opts.RuleSheet) {
		return nil, NewExtractionError(path, "rules", fmt.Errorf("%w: %s", ErrSheetNotFound, opts.RuleSheet))
	}

	sheet, err := parser.ReadSheet(f, opts.RuleSheet)
	if err != nil {
		return nil, NewExtractionError(path, "rules", err)
	}

	rules := parser.ExtractRules(parser.ColumnValues(sheet, opts.RuleColumn), opts.Rules)
	if rules == nil {
		rules = []models.Rule{}
	}
	log.Info().Str("sheet", opts.RuleSheet).Int("total", len(rules)).Msg("rules extracted")

	return &models.RuleSet{
		Metadata: models.RuleSetMetadata{
			Source:         filepath.Base(path),
			Sheet:          opts.RuleSheet,
			ExtractionDate: opts.Today(),
			TotalRules:     len(rules),
		},
		Rules:          rules,
		CategoryCounts: parser.CategoryCounts(rules),
	}, nil
}

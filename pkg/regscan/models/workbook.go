package models

// TemplateAnalysis represents the header analysis of every sheet in a workbook.
type TemplateAnalysis struct {
	// TemplateFile is the workbook file name (no path).
	TemplateFile string `json:"template_file"`
	// AnalysisDate is the day the analysis ran (YYYY-MM-DD).
	AnalysisDate string `json:"analysis_date"`
	// Sheets holds per-sheet results in workbook order.
	Sheets []SheetAnalysis `json:"sheets"`
}

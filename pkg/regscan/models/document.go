package models

// Bucket is a named set of text lines matched by keyword.
type Bucket struct {
	Name  string   `json:"name"`
	Lines []string `json:"lines"`
}

// Priorities maps bucket name to its matched lines.
type Priorities map[string][]string

// DocumentInfo holds the facts common to every analyzed PDF.
type DocumentInfo struct {
	// FileSizeKB is the file size in kibibytes.
	FileSizeKB float64 `json:"file_size_kb"`
	// PageCount is the number of pages in the document.
	PageCount int `json:"page_count"`
	// TextLength is the number of characters of extracted text.
	TextLength int `json:"text_length"`
}

// StrategyAnalysis is the keyword-bucket scan of a compliance strategy document.
type StrategyAnalysis struct {
	DocumentName string `json:"document_name"`
	DocumentInfo
	Priorities Priorities `json:"priorities"`
}

// Element is a mandatory safety-plan element and the lines that mention it.
type Element struct {
	Key      string   `json:"key"`
	Title    string   `json:"title"`
	Keywords []string `json:"keywords"`
	Found    bool     `json:"found"`
	Sections []string `json:"sections"`
}

// DWSPAnalysis is the element scan of a drinking water safety plan template.
type DWSPAnalysis struct {
	TemplateName string `json:"template_name"`
	DocumentInfo
	Elements      []Element `json:"elements"`
	ElementsFound int       `json:"elements_found"`
}

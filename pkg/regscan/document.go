package regscan

import (
	"path/filepath"
	"unicode/utf8"

	"github.com/flowcomply/regscan/pkg/regscan/models"
	"github.com/flowcomply/regscan/pkg/regscan/parser"
	"github.com/rs/zerolog/log"
)

// readDocument extracts PDF text, reporting any failure to open or parse the
// file as ErrSourceUnavailable.
func readDocument(path string) (parser.PDFText, models.DocumentInfo, error) {
	doc, err := parser.ReadPDFText(path)
	if err != nil {
		return parser.PDFText{}, models.DocumentInfo{}, sourceUnavailable(path, "pdf", err)
	}
	info := models.DocumentInfo{
		FileSizeKB: float64(doc.SizeBytes) / 1024,
		PageCount:  doc.PageCount,
		TextLength: utf8.RuneCountInString(doc.Text),
	}
	log.Info().
		Str("document", filepath.Base(path)).
		Float64("size_kb", info.FileSizeKB).
		Int("pages", info.PageCount).
		Int("text_length", info.TextLength).
		Msg("extracted pdf text")
	return doc, info, nil
}

// AnalyzeStrategy buckets the lines of a compliance strategy document by keyword.
func AnalyzeStrategy(path string, opts Options) (*models.StrategyAnalysis, error) {
	doc, info, err := readDocument(path)
	if err != nil {
		return nil, err
	}

	buckets := parser.ScanBuckets(doc.Text, opts.Buckets, opts.BucketCap)
	for _, b := range buckets {
		log.Debug().Str("bucket", b.Name).Int("lines", len(b.Lines)).Msg("bucket filled")
	}

	return &models.StrategyAnalysis{
		DocumentName: filepath.Base(path),
		DocumentInfo: info,
		Priorities:   parser.BucketPriorities(buckets),
	}, nil
}

// AnalyzeDWSP searches a safety plan template for the mandatory elements.
func AnalyzeDWSP(path string, opts Options) (*models.DWSPAnalysis, error) {
	doc, info, err := readDocument(path)
	if err != nil {
		return nil, err
	}

	elements := parser.FindElements(doc.Text, opts.Elements)
	found := parser.CountFound(elements)
	log.Info().Str("template", filepath.Base(path)).Int("found", found).Int("total", len(elements)).Msg("elements found")

	return &models.DWSPAnalysis{
		TemplateName:  filepath.Base(path),
		DocumentInfo:  info,
		Elements:      elements,
		ElementsFound: found,
	}, nil
}

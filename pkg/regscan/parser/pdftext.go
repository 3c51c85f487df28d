package parser

import (
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/unicode/norm"
)

// PDFText is the line-oriented text of a PDF document.
type PDFText struct {
	// Text holds one line per text row; each page ends with a blank line.
	Text string
	// PageCount is the number of pages reported by the document catalog.
	PageCount int
	// SizeBytes is the file size.
	SizeBytes int64
}

// ReadPDFText validates a PDF and extracts its text row by row.
// Pages whose content cannot be decoded are skipped.
func ReadPDFText(path string) (PDFText, error) {
	f, err := os.Open(path)
	if err != nil {
		return PDFText{}, err
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return PDFText{}, err
	}

	ctx, err := api.ReadValidateAndOptimize(f, model.NewDefaultConfiguration())
	if err != nil {
		return PDFText{}, fmt.Errorf("pdfcpu read: %w", err)
	}

	reader, err := pdf.NewReader(f, stat.Size())
	if err != nil {
		return PDFText{}, fmt.Errorf("pdf reader: %w", err)
	}

	var sb strings.Builder
	for pageNr := 1; pageNr <= reader.NumPage(); pageNr++ {
		lines, err := pageLines(reader, pageNr)
		if err != nil {
			log.Warn().Err(err).Str("file", path).Int("page", pageNr).Msg("page text unreadable; skipping")
		}
		for _, line := range lines {
			sb.WriteString(line)
			sb.WriteByte('\n')
		}
		sb.WriteByte('\n')
	}

	return PDFText{
		Text:      norm.NFC.String(sb.String()),
		PageCount: ctx.PageCount,
		SizeBytes: stat.Size(),
	}, nil
}

// pageLines returns the text rows of a page from top to bottom.
func pageLines(reader *pdf.Reader, pageNr int) (lines []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			lines, err = nil, fmt.Errorf("decode page %d: %v", pageNr, r)
		}
	}()

	page := reader.Page(pageNr)
	if page.V.IsNull() {
		return nil, nil
	}
	rows, err := page.GetTextByRow()
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		lines = append(lines, joinTexts(row.Content))
	}
	return lines, nil
}

// joinTexts concatenates the text runs of one row.
func joinTexts(texts []pdf.Text) string {
	var sb strings.Builder
	for _, t := range texts {
		sb.WriteString(t.S)
	}
	return sb.String()
}

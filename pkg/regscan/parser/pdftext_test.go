package parser

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jung-kurt/gofpdf"
	"github.com/ledongthuc/pdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTestPDF renders one page per entry of pages, one text line per cell.
func writeTestPDF(t *testing.T, pages [][]string) string {
	t.Helper()
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetCompression(false)
	doc.SetFont("Helvetica", "", 11)
	for _, lines := range pages {
		doc.AddPage()
		for _, line := range lines {
			doc.CellFormat(0, 8, line, "", 1, "L", false, 0, "")
		}
	}
	path := filepath.Join(t.TempDir(), "doc.pdf")
	require.NoError(t, doc.OutputFileAndClose(path))
	return path
}

func TestReadPDFText(t *testing.T) {
	path := writeTestPDF(t, [][]string{
		{"Hazard identification", "Verification monitoring"},
		{"Review and approval"},
	})

	doc, err := ReadPDFText(path)
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, 2, doc.PageCount)
	assert.Equal(t, info.Size(), doc.SizeBytes)

	compact := strings.ToLower(strings.ReplaceAll(doc.Text, " ", ""))
	assert.Contains(t, compact, "hazardidentification")
	assert.Contains(t, compact, "verificationmonitoring")
	assert.Contains(t, compact, "reviewandapproval")
}

func TestReadPDFTextMissingFile(t *testing.T) {
	_, err := ReadPDFText(filepath.Join(t.TempDir(), "missing.pdf"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadPDFTextNotAPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.pdf")
	require.NoError(t, os.WriteFile(path, []byte("this is not a pdf"), 0644))

	_, err := ReadPDFText(path)
	assert.Error(t, err)
}

func TestJoinTexts(t *testing.T) {
	texts := []pdf.Text{{S: "Ta"}, {S: "u"}, {S: "mata"}, {S: " "}, {S: "Arowai"}}
	assert.Equal(t, "Taumata Arowai", joinTexts(texts))
	assert.Equal(t, "", joinTexts(nil))
}

package regscan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyInventory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "DWQAR_Reporting_Template.xlsx"), make([]byte, 2048), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "Compliance_Strategy_2025-2028.pdf"), 0755))

	categories := []DocumentCategory{
		{Name: "excel_templates", Documents: []string{"DWQAR_Reporting_Template.xlsx", "DWQAR_Assurance_Rules_Template.xlsx"}},
		{Name: "compliance_strategies", Documents: []string{"Compliance_Strategy_2025-2028.pdf"}},
	}

	inv := VerifyInventory(dir, categories)
	assert.Equal(t, dir, inv.Dir)
	require.Len(t, inv.Entries, 3)

	assert.True(t, inv.Entries[0].Found)
	assert.Equal(t, "excel_templates", inv.Entries[0].Category)
	assert.InDelta(t, 2.0, inv.Entries[0].SizeKB, 0.0001)
	assert.False(t, inv.Entries[1].Found)
	assert.False(t, inv.Entries[2].Found, "directories are not documents")

	assert.Equal(t, []string{"DWQAR_Reporting_Template.xlsx"}, inv.Found)
	assert.Equal(t, []string{"DWQAR_Assurance_Rules_Template.xlsx", "Compliance_Strategy_2025-2028.pdf"}, inv.Missing)
}

func TestDefaultInventory(t *testing.T) {
	total := 0
	for _, c := range DefaultInventory() {
		assert.NotEmpty(t, c.Name)
		total += len(c.Documents)
	}
	assert.Equal(t, 16, total)
}

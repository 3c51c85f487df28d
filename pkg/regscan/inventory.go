package regscan

import (
	"os"
	"path/filepath"

	"github.com/flowcomply/regscan/pkg/regscan/models"
	"github.com/rs/zerolog/log"
)

// DocumentCategory groups expected document file names.
type DocumentCategory struct {
	Name      string   `mapstructure:"name" yaml:"name"`
	Documents []string `mapstructure:"documents" yaml:"documents"`
}

// DefaultInventory returns the regulatory documents the analyzers expect.
func DefaultInventory() []DocumentCategory {
	return []DocumentCategory{
		{Name: "excel_templates", Documents: []string{
			"DWQAR_Reporting_Template.xlsx",
			"DWQAR_Assurance_Rules_Template.xlsx",
		}},
		{Name: "dwsp_templates", Documents: []string{
			"DWSP_Template_Small_26-100.pdf",
			"DWSP_Template_Medium_101-500.pdf",
		}},
		{Name: "compliance_strategies", Documents: []string{
			"Compliance_Strategy_2025-2028.pdf",
			"Compliance_Strategy_2022-2025.pdf",
		}},
		{Name: "reporting_guidelines", Documents: []string{
			"DWQAR_Reporting_Guidelines.pdf",
			"DWQAR_Reporting_Guidelines_Draft.pdf",
			"DWQAR_Guidance_for_Small_Supplies.pdf",
		}},
		{Name: "platform_guides", Documents: []string{
			"Quick_Guide_to_Uploading_DWSP.pdf",
			"Rules_Reporting_Webform_Hinekorako_Guide.pdf",
		}},
		{Name: "standards", Documents: []string{
			"Drinking_Water_Standards_Draft_2021.pdf",
			"Monitoring_Water_Quality_Supply_Summary_Table.pdf",
		}},
		{Name: "acceptable_solutions", Documents: []string{
			"Acceptable_Solution_Rural_Agricultural.pdf",
			"Acceptable_Solution_Roof_Water.pdf",
			"Acceptable_Solution_Mixed-Use_Rural_2025.pdf",
		}},
	}
}

// VerifyInventory checks which expected documents exist under dir.
func VerifyInventory(dir string, categories []DocumentCategory) *models.Inventory {
	inv := &models.Inventory{
		Dir:     dir,
		Entries: []models.InventoryEntry{},
		Found:   []string{},
		Missing: []string{},
	}

	for _, cat := range categories {
		for _, doc := range cat.Documents {
			entry := models.InventoryEntry{Category: cat.Name, Name: doc}
			info, err := os.Stat(filepath.Join(dir, doc))
			if err == nil && !info.IsDir() {
				entry.Found = true
				entry.SizeKB = float64(info.Size()) / 1024
				inv.Found = append(inv.Found, doc)
			} else {
				inv.Missing = append(inv.Missing, doc)
			}
			inv.Entries = append(inv.Entries, entry)
		}
	}

	log.Info().Int("found", len(inv.Found)).Int("total", len(inv.Entries)).Msg("documents verified")
	return inv
}

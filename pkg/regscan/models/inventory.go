package models

// InventoryEntry records whether an expected document is present.
type InventoryEntry struct {
	Category string  `json:"category"`
	Name     string  `json:"name"`
	Found    bool    `json:"found"`
	SizeKB   float64 `json:"size_kb,omitempty"`
}

// Inventory is the presence check of the expected regulatory documents.
type Inventory struct {
	Dir     string           `json:"dir"`
	Entries []InventoryEntry `json:"entries"`
	Found   []string         `json:"found"`
	Missing []string         `json:"missing"`
}

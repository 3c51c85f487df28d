// Package models defines the result records produced by regscan analyzers.
package models

// CellRow represents a sampled data row below a detected header.
type CellRow struct {
	// R is the row index (1-based).
	R int `json:"r"`
	// Values holds the cell texts of the sampled columns in column order.
	// Empty cells are kept as empty strings so positions line up with headers.
	Values []string `json:"values"`
}

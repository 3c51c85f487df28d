package models

// Rule is a classified compliance rule identifier.
type Rule struct {
	RuleID        string  `json:"ruleId"`
	Category      string  `json:"category"`
	Parameter     *string `json:"parameter"`
	Description   string  `json:"description"`
	IsActive      bool    `json:"isActive"`
	Applicability string  `json:"applicability"`
	EffectiveDate string  `json:"effectiveDate"`
}

// RuleSetMetadata describes where a rule set was read from.
type RuleSetMetadata struct {
	Source         string `json:"source"`
	Sheet          string `json:"sheet"`
	ExtractionDate string `json:"extractionDate"`
	TotalRules     int    `json:"totalRules"`
}

// RuleSet is the result of extracting rules from a workbook.
type RuleSet struct {
	Metadata RuleSetMetadata `json:"metadata"`
	Rules    []Rule          `json:"rules"`
	// CategoryCounts maps category to number of rules.
	CategoryCounts map[string]int `json:"categoryCounts"`
}

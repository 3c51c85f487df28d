package parser

import (
	"strings"

	"github.com/flowcomply/regscan/pkg/regscan/models"
	"github.com/rs/zerolog/log"
)

// Rule categories.
const (
	CategoryBacteriological = "BACTERIOLOGICAL"
	CategoryChemical        = "CHEMICAL"
	CategoryProtozoa        = "PROTOZOA"
	CategoryRadiological    = "RADIOLOGICAL"
	CategoryMonitoring      = "MONITORING"
	CategoryVerification    = "VERIFICATION"
	CategoryOperational     = "OPERATIONAL"
	CategoryWaterQuality    = "WATER_QUALITY"
)

// CategoryRule maps a rule identifier prefix to a category.
type CategoryRule struct {
	Prefix   string `mapstructure:"prefix" yaml:"prefix"`
	Category string `mapstructure:"category" yaml:"category"`
}

// RulePolicy configures rule classification and the literal record defaults.
type RulePolicy struct {
	// Categories are evaluated in order; the first matching prefix wins.
	Categories []CategoryRule
	// DefaultCategory applies when no prefix matches.
	DefaultCategory string
	Applicability   string
	EffectiveDate   string
}

// DefaultRulePolicy returns the DWQAR rule classification table.
func DefaultRulePolicy() RulePolicy {
	return RulePolicy{
		Categories: []CategoryRule{
			{Prefix: "T1", Category: CategoryBacteriological},
			{Prefix: "T2", Category: CategoryChemical},
			{Prefix: "T3", Category: CategoryProtozoa},
			{Prefix: "T4", Category: CategoryRadiological},
			{Prefix: "M", Category: CategoryMonitoring},
			{Prefix: "V", Category: CategoryVerification},
			{Prefix: "O", Category: CategoryOperational},
		},
		DefaultCategory: CategoryWaterQuality,
		Applicability:   "All supply sizes",
		EffectiveDate:   "2024-01-01T00:00:00.000Z",
	}
}

// Classify returns the category of a rule identifier.
func (p RulePolicy) Classify(ruleID string) string {
	for _, c := range p.Categories {
		if strings.HasPrefix(ruleID, c.Prefix) {
			return c.Category
		}
	}
	return p.DefaultCategory
}

// RuleParameter returns the lower-cased text after the hyphen of an identifier
// such as "T1.8-ecol". Identifiers without exactly one hyphen have no parameter.
func RuleParameter(ruleID string) (string, bool) {
	parts := strings.Split(ruleID, "-")
	if len(parts) != 2 {
		return "", false
	}
	return strings.ToLower(parts[1]), true
}

// ExtractRules classifies the distinct identifiers in values, in first-seen order.
// Blank values are skipped.
func ExtractRules(values []string, policy RulePolicy) []models.Rule {
	seen := make(map[string]struct{})
	var rules []models.Rule

	for _, v := range values {
		ruleID := strings.TrimSpace(v)
		if ruleID == "" {
			continue
		}
		if _, dup := seen[ruleID]; dup {
			continue
		}
		seen[ruleID] = struct{}{}

		rule := models.Rule{
			RuleID:        ruleID,
			Category:      policy.Classify(ruleID),
			Description:   "Compliance rule " + ruleID,
			IsActive:      true,
			Applicability: policy.Applicability,
			EffectiveDate: policy.EffectiveDate,
		}
		if param, ok := RuleParameter(ruleID); ok {
			rule.Parameter = &param
		}
		rules = append(rules, rule)

		if len(rules)%50 == 0 {
			log.Debug().Int("count", len(rules)).Msg("extracted rules")
		}
	}
	return rules
}

// CategoryCounts tallies rules per category.
func CategoryCounts(rules []models.Rule) map[string]int {
	counts := make(map[string]int)
	for _, r := range rules {
		counts[r.Category]++
	}
	return counts
}

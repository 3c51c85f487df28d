package parser

import (
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/flowcomply/regscan/pkg/regscan/models"
)

// DefaultBucketCap is the maximum number of lines kept per bucket.
const DefaultBucketCap = 10

// BucketRule selects lines for a named bucket. A line qualifies when its
// lower-cased form contains any keyword and its trimmed length n satisfies
// MinLen < n < MaxLen.
type BucketRule struct {
	Name     string   `mapstructure:"name" yaml:"name"`
	Keywords []string `mapstructure:"keywords" yaml:"keywords"`
	MinLen   int      `mapstructure:"min_len" yaml:"min_len"`
	MaxLen   int      `mapstructure:"max_len" yaml:"max_len"`
}

// Match reports whether line belongs in the bucket.
func (b BucketRule) Match(line string) bool {
	n := utf8.RuneCountInString(strings.TrimSpace(line))
	if n <= b.MinLen || n >= b.MaxLen {
		return false
	}
	return containsAny(strings.ToLower(line), b.Keywords)
}

// DefaultStrategyBuckets returns the compliance strategy bucket table.
// enforcement_focus and key_metrics carry no keywords and stay empty.
func DefaultStrategyBuckets() []BucketRule {
	return []BucketRule{
		{Name: "high_risk_areas", Keywords: []string{"high risk", "critical", "priority"}, MinLen: 20, MaxLen: 200},
		{Name: "enforcement_focus"},
		{Name: "supply_categories", Keywords: []string{"category", "tier", "supplier"}, MinLen: 15, MaxLen: 150},
		{Name: "key_metrics"},
		{Name: "risk_factors", Keywords: []string{"risk factor", "risk level"}, MinLen: 15, MaxLen: 150},
	}
}

// ScanBuckets fills every bucket independently from the lines of text.
// Each bucket is deduplicated, sorted, and cut to limit entries.
func ScanBuckets(text string, buckets []BucketRule, limit int) []models.Bucket {
	sets := make([]map[string]struct{}, len(buckets))
	for i := range sets {
		sets[i] = make(map[string]struct{})
	}

	for _, line := range strings.Split(text, "\n") {
		for i, b := range buckets {
			if b.Match(line) {
				sets[i][strings.TrimSpace(line)] = struct{}{}
			}
		}
	}

	result := make([]models.Bucket, len(buckets))
	for i, b := range buckets {
		lines := make([]string, 0, len(sets[i]))
		for line := range sets[i] {
			lines = append(lines, line)
		}
		slices.Sort(lines)
		if limit > 0 && len(lines) > limit {
			lines = lines[:limit]
		}
		result[i] = models.Bucket{Name: b.Name, Lines: lines}
	}
	return result
}

// BucketPriorities indexes buckets by name.
func BucketPriorities(buckets []models.Bucket) models.Priorities {
	p := make(models.Priorities, len(buckets))
	for _, b := range buckets {
		p[b.Name] = b.Lines
	}
	return p
}

package parser

import (
	"slices"
	"strings"

	"github.com/flowcomply/regscan/pkg/regscan/models"
)

// ElementRule describes a mandatory safety-plan element and the keywords
// that indicate a line discusses it.
type ElementRule struct {
	Key      string   `mapstructure:"key" yaml:"key"`
	Title    string   `mapstructure:"title" yaml:"title"`
	Keywords []string `mapstructure:"keywords" yaml:"keywords"`
}

// DefaultDWSPElements returns the twelve mandatory DWSP elements.
func DefaultDWSPElements() []ElementRule {
	return []ElementRule{
		{Key: "element_1", Title: "Description of the drinking water supply", Keywords: []string{"description", "supply details", "water supply"}},
		{Key: "element_2", Title: "Hazardous events and hazards", Keywords: []string{"hazard", "hazardous event", "risk"}},
		{Key: "element_3", Title: "Preventive measures for hazards", Keywords: []string{"preventive", "control measure", "barrier"}},
		{Key: "element_4", Title: "Operational monitoring", Keywords: []string{"operational monitor", "daily check", "routine"}},
		{Key: "element_5", Title: "Verification monitoring", Keywords: []string{"verification", "compliance check", "testing"}},
		{Key: "element_6", Title: "Corrective action", Keywords: []string{"corrective action", "response", "non-compliance"}},
		{Key: "element_7", Title: "Incident and emergency response", Keywords: []string{"incident", "emergency", "contingency"}},
		{Key: "element_8", Title: "Management of the drinking water supply", Keywords: []string{"management", "responsibility", "roles"}},
		{Key: "element_9", Title: "Documentation and communication", Keywords: []string{"documentation", "communication", "record"}},
		{Key: "element_10", Title: "Improvement planning", Keywords: []string{"improvement", "upgrade", "future"}},
		{Key: "element_11", Title: "Supply details", Keywords: []string{"population", "source", "treatment process"}},
		{Key: "element_12", Title: "Review and approval", Keywords: []string{"review", "approval", "sign-off"}},
	}
}

// FindElements marks each element found when any line mentions one of its
// keywords, collecting the distinct trimmed lines in first-seen order.
func FindElements(text string, rules []ElementRule) []models.Element {
	elements := make([]models.Element, len(rules))
	for i, r := range rules {
		elements[i] = models.Element{
			Key:      r.Key,
			Title:    r.Title,
			Keywords: r.Keywords,
			Sections: []string{},
		}
	}

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		lower := strings.ToLower(line)
		for i := range elements {
			if !containsAny(lower, elements[i].Keywords) {
				continue
			}
			elements[i].Found = true
			if !slices.Contains(elements[i].Sections, trimmed) {
				elements[i].Sections = append(elements[i].Sections, trimmed)
			}
		}
	}
	return elements
}

// CountFound returns the number of elements marked found.
func CountFound(elements []models.Element) int {
	n := 0
	for _, e := range elements {
		if e.Found {
			n++
		}
	}
	return n
}

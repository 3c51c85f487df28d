// Package regscan extracts structural hints from regulatory Excel and PDF documents.
package regscan

import (
	"time"

	"github.com/flowcomply/regscan/pkg/regscan/parser"
)

// Options configures the analyzers.
type Options struct {
	// Header controls header row detection.
	Header parser.HeaderParams
	// MaxHeaderColumns caps the column mappings per sheet (0 keeps all).
	MaxHeaderColumns int
	// SampleRows is the number of data rows sampled below a header.
	SampleRows int
	// SampleColumns is the number of leading columns kept per sampled row.
	SampleColumns int

	// RuleSheet names the worksheet holding rule identifiers.
	RuleSheet string
	// RuleColumn is the 1-based column of rule identifiers.
	RuleColumn int
	// Rules controls rule classification.
	Rules parser.RulePolicy

	// Buckets is the keyword-bucket table for strategy documents.
	Buckets []parser.BucketRule
	// BucketCap is the maximum number of lines per bucket.
	BucketCap int

	// Elements is the safety-plan element table.
	Elements []parser.ElementRule

	// Now supplies the analysis date. Defaults to time.Now.
	Now func() time.Time
}

// DefaultOptions returns default extraction options.
func DefaultOptions() Options {
	return Options{
		Header:        parser.DefaultHeaderParams(),
		SampleRows:    4,
		SampleColumns: 10,
		RuleSheet:     "RuleIDs",
		RuleColumn:    1,
		Rules:         parser.DefaultRulePolicy(),
		Buckets:       parser.DefaultStrategyBuckets(),
		BucketCap:     parser.DefaultBucketCap,
		Elements:      parser.DefaultDWSPElements(),
		Now:           time.Now,
	}
}

// Today returns the analysis date as YYYY-MM-DD.
func (o Options) Today() string {
	now := time.Now
	if o.Now != nil {
		now = o.Now
	}
	return now().Format(time.DateOnly)
}

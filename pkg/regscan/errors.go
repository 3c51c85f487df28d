package regscan

import (
	"errors"
	"fmt"
)

// ErrSourceUnavailable indicates the input document is missing or cannot be opened.
var ErrSourceUnavailable = errors.New("source unavailable")

// ErrSheetNotFound indicates a required worksheet is absent from the workbook.
var ErrSheetNotFound = errors.New("sheet not found")

// ExtractionError represents an error during extraction.
type ExtractionError struct {
	Source    string
	Component string // "workbook", "pdf", "rules"
	Err       error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extraction error in %q (%s): %v", e.Source, e.Component, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// NewExtractionError creates a new ExtractionError.
func NewExtractionError(source, component string, err error) *ExtractionError {
	return &ExtractionError{
		Source:    source,
		Component: component,
		Err:       err,
	}
}

func sourceUnavailable(source, component string, err error) error {
	return NewExtractionError(source, component, fmt.Errorf("%w: %w", ErrSourceUnavailable, err))
}

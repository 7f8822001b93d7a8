package pdf

import (
	"errors"
	"fmt"
)

// Open opens a PDF file with the first backend that accepts it
func Open(path string) (Document, error) {
	// Try ledongthuc implementation first as it has the most accurate text extraction
	doc, err := OpenWithLedongthuc(path)
	if err == nil {
		return doc, nil
	}

	// Fallback to dslipak implementation
	doc, fallbackErr := OpenWithDslipak(path)
	if fallbackErr == nil {
		return doc, nil
	}

	return nil, fmt.Errorf("no backend could open %s: %w", path, errors.Join(err, fallbackErr))
}

package pdf

import (
	"fmt"
)

// MemoryDocument is a Document backed by pre-built lines.
// It is used by tests and by callers that run their own extraction engine.
type MemoryDocument struct {
	name  string
	pages [][]Line
}

// NewMemoryDocument creates a document whose page i+1 holds pages[i]
func NewMemoryDocument(name string, pages ...[]Line) *MemoryDocument {
	return &MemoryDocument{name: name, pages: pages}
}

// Name returns the document identifier
func (d *MemoryDocument) Name() string {
	return d.name
}

// PageCount returns the total number of pages
func (d *MemoryDocument) PageCount() int {
	return len(d.pages)
}

// PageLines returns the lines of a page (1-based)
func (d *MemoryDocument) PageLines(pageNumber int) ([]Line, error) {
	if pageNumber < 1 || pageNumber > len(d.pages) {
		return nil, fmt.Errorf("page number %d out of range [1, %d]", pageNumber, len(d.pages))
	}
	return d.pages[pageNumber-1], nil
}

// Close is a no-op
func (d *MemoryDocument) Close() error {
	return nil
}

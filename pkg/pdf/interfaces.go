package pdf

// Document is a source of positioned text lines, one page at a time.
// Implementations wrap a glyph-extraction engine; the text model only
// consumes the line stream and never looks at the PDF structure itself.
type Document interface {
	// Name returns the document identifier (usually the file name)
	Name() string

	// PageCount returns the total number of pages
	PageCount() int

	// PageLines returns the lines of a page (1-based) in reading order
	PageLines(pageNumber int) ([]Line, error)

	// Close releases resources associated with the document
	Close() error
}

// Opener opens a document by path
type Opener func(path string) (Document, error)

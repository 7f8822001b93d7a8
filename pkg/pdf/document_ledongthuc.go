package pdf

import (
	"fmt"
	"io"
	"path/filepath"

	lpdf "github.com/ledongthuc/pdf"
	"golang.org/x/text/unicode/norm"
)

// LedongthucDocument implements the Document interface using ledongthuc/pdf library
type LedongthucDocument struct {
	file     io.Closer
	reader   *lpdf.Reader
	filepath string
	lineYTol float64
}

// OpenWithLedongthuc opens a PDF file using the ledongthuc/pdf library
// This provides the most accurate text extraction with proper coordinates
func OpenWithLedongthuc(path string) (Document, error) {
	f, r, err := lpdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF with ledongthuc: %w", err)
	}

	return &LedongthucDocument{
		file:     f,
		reader:   r,
		filepath: path,
		lineYTol: DefaultLineTolerance,
	}, nil
}

// Name returns the base name of the file
func (d *LedongthucDocument) Name() string {
	return filepath.Base(d.filepath)
}

// PageCount returns the total number of pages
func (d *LedongthucDocument) PageCount() int {
	return d.reader.NumPage()
}

// PageLines extracts the lines of a page (1-based) in reading order
func (d *LedongthucDocument) PageLines(pageNumber int) (lines []Line, err error) {
	if pageNumber < 1 || pageNumber > d.reader.NumPage() {
		return nil, fmt.Errorf("invalid page number: %d", pageNumber)
	}

	// The content parser panics on malformed streams
	defer func() {
		if r := recover(); r != nil {
			lines = nil
			err = fmt.Errorf("failed to read content of page %d: %v", pageNumber, r)
		}
	}()

	page := d.reader.Page(pageNumber)
	if page.V.IsNull() {
		return nil, fmt.Errorf("page %d not found", pageNumber)
	}

	height := defaultPageHeight
	mediaBox := page.V.Key("MediaBox")
	if mediaBox.Kind() == lpdf.Array && mediaBox.Len() == 4 {
		// MediaBox is [x0, y0, x1, y1]
		height = mediaBox.Index(3).Float64() - mediaBox.Index(1).Float64()
	}

	var glyphs []Glyph
	for _, text := range page.Content().Text {
		// PDF uses a bottom-left origin with Y at the baseline;
		// convert to a top-left origin with Y at the glyph top
		fontSize := text.FontSize
		top := height - (text.Y + fontSize*ascentRatio)
		glyphs = append(glyphs, splitItem(norm.NFC.String(text.S), text.X, top, text.W, fontSize)...)
	}

	return GroupLines(glyphs, d.lineYTol), nil
}

// Close releases resources associated with the document
func (d *LedongthucDocument) Close() error {
	if d.file != nil {
		return d.file.Close()
	}
	return nil
}

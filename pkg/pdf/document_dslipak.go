package pdf

import (
	"fmt"
	"path/filepath"

	gopdf "github.com/dslipak/pdf"
	"golang.org/x/text/unicode/norm"
)

// DsliPakDocument implements the Document interface using dslipak/pdf library
type DsliPakDocument struct {
	reader   *gopdf.Reader
	filepath string
	lineYTol float64
}

// OpenWithDslipak opens a PDF file using the dslipak/pdf library
func OpenWithDslipak(path string) (Document, error) {
	r, err := gopdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF with dslipak: %w", err)
	}

	return &DsliPakDocument{
		reader:   r,
		filepath: path,
		lineYTol: DefaultLineTolerance,
	}, nil
}

// Name returns the base name of the file
func (d *DsliPakDocument) Name() string {
	return filepath.Base(d.filepath)
}

// PageCount returns the total number of pages
func (d *DsliPakDocument) PageCount() int {
	return d.reader.NumPage()
}

// PageLines extracts the lines of a page (1-based) in reading order
func (d *DsliPakDocument) PageLines(pageNumber int) (lines []Line, err error) {
	if pageNumber < 1 || pageNumber > d.reader.NumPage() {
		return nil, fmt.Errorf("invalid page number: %d", pageNumber)
	}

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

	// The dslipak/pdf library doesn't expose MediaBox directly
	height := defaultPageHeight
	mediaBox := page.V.Key("MediaBox")
	if mediaBox.Kind() == gopdf.Array && mediaBox.Len() == 4 {
		height = mediaBox.Index(3).Float64() - mediaBox.Index(1).Float64()
	}

	var glyphs []Glyph
	for _, text := range page.Content().Text {
		fontSize := text.FontSize
		top := height - (text.Y + fontSize*ascentRatio)
		glyphs = append(glyphs, splitItem(norm.NFC.String(text.S), text.X, top, text.W, fontSize)...)
	}

	return GroupLines(glyphs, d.lineYTol), nil
}

// Close releases resources associated with the document
func (d *DsliPakDocument) Close() error {
	d.reader = nil
	return nil
}

package textrun

import (
	"fmt"

	"github.com/pyhub-apps/pdftemplate/pkg/pdf"
)

// Index is the ordered run sequence of one document. Order is reading
// order: page by page, line by line as reported by the backend. All
// lookups return the first match in that order, never the closest one.
type Index struct {
	document string
	runs     []Run
}

// NewIndex creates an index over runs that are already in reading order
func NewIndex(document string, runs []Run) *Index {
	owned := make([]Run, len(runs))
	copy(owned, runs)
	return &Index{document: document, runs: owned}
}

// Build reads every page of doc and segments its lines into runs
func Build(doc pdf.Document) (*Index, error) {
	acc := accumulator{}
	for page := 1; page <= doc.PageCount(); page++ {
		lines, err := doc.PageLines(page)
		if err != nil {
			return nil, fmt.Errorf("failed to read page %d of %s: %w", page, doc.Name(), err)
		}
		acc.addPage(page, lines)
	}
	return &Index{document: doc.Name(), runs: acc.runs}, nil
}

// accumulator collects runs across pages; the page number travels with
// each batch of lines
type accumulator struct {
	runs []Run
}

func (a *accumulator) addPage(page int, lines []pdf.Line) {
	for _, line := range lines {
		a.runs = append(a.runs, Segment(line, page)...)
	}
}

// Document returns the identifier of the indexed document
func (ix *Index) Document() string {
	return ix.document
}

// Len returns the number of runs
func (ix *Index) Len() int {
	return len(ix.runs)
}

// Runs returns a copy of the runs in reading order
func (ix *Index) Runs() []Run {
	runs := make([]Run, len(ix.runs))
	copy(runs, ix.runs)
	return runs
}

// At returns the run at position i
func (ix *Index) At(i int) Run {
	return ix.runs[i]
}

// Lookup returns the first run satisfying pred
func (ix *Index) Lookup(pred func(Run) bool) (Run, bool) {
	for _, r := range ix.runs {
		if pred(r) {
			return r, true
		}
	}
	return Run{}, false
}

// Near returns the first run whose start corner lies within tol of (x, y)
func (ix *Index) Near(x, y float64, tol Tolerance) (Run, bool) {
	return ix.Lookup(func(r Run) bool {
		return tol.Matches(x, y, r.FirstX(), r.FirstY())
	})
}

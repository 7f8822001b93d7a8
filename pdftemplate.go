// Package pdftemplate locates recurring data fields in visually similar PDF
// documents by position: it discovers which text differs between two
// samples and extracts the value at each named position from new documents.
package pdftemplate

import (
	"github.com/pyhub-apps/pdftemplate/pkg/match"
	"github.com/pyhub-apps/pdftemplate/pkg/pdf"
	"github.com/pyhub-apps/pdftemplate/pkg/template"
	"github.com/pyhub-apps/pdftemplate/pkg/textrun"
	"github.com/pyhub-apps/pdftemplate/pkg/workflow"
)

// Re-export types for the public API
type (
	Document    = pdf.Document
	BoundingBox = pdf.BoundingBox
	Run         = textrun.Run
	Index       = textrun.Index
	Tolerance   = textrun.Tolerance
	Template    = template.Template
	Attribute   = template.Attribute
	Decision    = template.Decision
	Values      = match.Values
	MatchOption = match.Option
	Selector    = workflow.Selector
	Sink        = workflow.Sink
	Report      = workflow.Report
)

// NotFound is the value of an attribute with no run at its position
const NotFound = match.NotFound

// Re-export option and persistence functions
var (
	WithRefinement   = match.WithRefinement
	WithPageMatching = match.WithPageMatching
	LoadTemplate     = template.Load
	SaveTemplate     = template.Save
	Uniform          = textrun.Uniform
)

// Open opens a PDF file with ledongthuc, falling back to dslipak
func Open(filepath string) (Document, error) {
	return pdf.Open(filepath)
}

// OpenWithLedongthuc opens a PDF file using the ledongthuc/pdf library
func OpenWithLedongthuc(filepath string) (Document, error) {
	return pdf.OpenWithLedongthuc(filepath)
}

// OpenWithDslipak opens a PDF file using the dslipak/pdf library
func OpenWithDslipak(filepath string) (Document, error) {
	return pdf.OpenWithDslipak(filepath)
}

// BuildIndex reads every page of doc into a run index
func BuildIndex(doc Document) (*Index, error) {
	return textrun.Build(doc)
}

// Discover returns the runs of a whose text differs from the run at the
// same position in b
func Discover(a, b Document, tol Tolerance) ([]Run, error) {
	ia, err := textrun.Build(a)
	if err != nil {
		return nil, err
	}
	ib, err := textrun.Build(b)
	if err != nil {
		return nil, err
	}
	return match.Discover(ia, ib, tol), nil
}

// Extract reads the value of every attribute of tpl from doc
func Extract(tpl *Template, doc Document, tol Tolerance, opts ...MatchOption) (Values, error) {
	ix, err := textrun.Build(doc)
	if err != nil {
		return nil, err
	}
	return match.Extract(tpl, ix, tol, opts...), nil
}

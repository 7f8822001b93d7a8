// Package textrun turns the line stream of a document into positioned text
// runs and keeps them in reading order for position-tolerant lookup.
package textrun

import (
	"errors"
	"fmt"

	"github.com/pyhub-apps/pdftemplate/pkg/pdf"
)

// ErrBlankRun is returned when a run would contain no visible glyph
var ErrBlankRun = errors.New("run has no non-blank glyph")

// Run is a contiguous span of glyphs treated as one text token.
// Box.X0/Y0 hold the start corner (firstX, firstY) and Box.X1/Y1 the end
// corner (lastX, lastY), computed over non-blank glyphs only.
type Run struct {
	Text string
	Page int
	Box  pdf.BoundingBox
}

// NewRun builds a run from its glyphs. The text is kept as given, blank
// glyphs included; only the box ignores them.
func NewRun(text string, glyphs []pdf.Glyph, page int) (Run, error) {
	box, ok := boxOf(glyphs)
	if !ok {
		return Run{}, ErrBlankRun
	}
	return Run{Text: text, Page: page, Box: box}, nil
}

// FirstX returns the minimum X over non-blank glyphs
func (r Run) FirstX() float64 { return r.Box.X0 }

// FirstY returns the minimum Y over non-blank glyphs
func (r Run) FirstY() float64 { return r.Box.Y0 }

// LastX returns the maximum end X over non-blank glyphs
func (r Run) LastX() float64 { return r.Box.X1 }

// LastY returns the maximum end Y over non-blank glyphs
func (r Run) LastY() float64 { return r.Box.Y1 }

// String formats the run as text with its box
func (r Run) String() string {
	return fmt.Sprintf("%s\t%.2f,%.2f,%.2f,%.2f (page %d)",
		r.Text, r.Box.X0, r.Box.Y0, r.Box.X1, r.Box.Y1, r.Page)
}

func boxOf(glyphs []pdf.Glyph) (pdf.BoundingBox, bool) {
	var box pdf.BoundingBox
	found := false

	for _, g := range glyphs {
		if g.IsBlank() {
			continue
		}
		if !found {
			box = pdf.BoundingBox{X0: g.X, Y0: g.Y, X1: g.EndX, Y1: g.EndY}
			found = true
			continue
		}
		box.X0 = min(box.X0, g.X)
		box.Y0 = min(box.Y0, g.Y)
		box.X1 = max(box.X1, g.EndX)
		box.Y1 = max(box.Y1, g.EndY)
	}

	if found {
		// lastX >= firstX and lastY >= firstY, even for glyphs with negative widths
		box.X1 = max(box.X1, box.X0)
		box.Y1 = max(box.Y1, box.Y0)
	}
	return box, found
}

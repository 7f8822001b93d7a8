package pdf

import (
	"strings"
)

// BoundingBox represents a rectangular area with coordinates.
// Coordinates use a top-left origin: Y grows downward.
type BoundingBox struct {
	X0 float64 // Left
	Y0 float64 // Top
	X1 float64 // Right
	Y1 float64 // Bottom
}

// Width returns the width of the bounding box
func (b BoundingBox) Width() float64 {
	return b.X1 - b.X0
}

// Height returns the height of the bounding box
func (b BoundingBox) Height() float64 {
	return b.Y1 - b.Y0
}

// Contains checks if a point is within the bounding box
func (b BoundingBox) Contains(x, y float64) bool {
	return x >= b.X0 && x <= b.X1 && y >= b.Y0 && y <= b.Y1
}

// Glyph is a single decoded character with its position on the page
type Glyph struct {
	Char string
	X    float64 // Left edge
	Y    float64 // Top edge
	EndX float64 // Right edge
	EndY float64 // Bottom edge
}

// IsBlank reports whether the glyph decodes to whitespace only
func (g Glyph) IsBlank() bool {
	return strings.TrimSpace(g.Char) == ""
}

// Line is one line of text as reported by a backend, in reading order
type Line struct {
	Text   string
	Glyphs []Glyph
}

// IsBlank reports whether the line text is whitespace only
func (l Line) IsBlank() bool {
	return strings.TrimSpace(l.Text) == ""
}

// LineFromGlyphs builds a line whose text is the concatenation of its glyphs
func LineFromGlyphs(glyphs []Glyph) Line {
	var text strings.Builder
	for _, g := range glyphs {
		text.WriteString(g.Char)
	}
	return Line{Text: text.String(), Glyphs: glyphs}
}

// PageInfo describes the geometry of a single page
type PageInfo struct {
	Number   int
	Width    float64
	Height   float64
	Rotation int
}

// Info is the result of inspecting a document without extracting text
type Info struct {
	Path      string
	PageCount int
	Pages     []PageInfo
}

// Default page size (US Letter) used when a backend cannot read the MediaBox
const (
	defaultPageWidth  = 612.0
	defaultPageHeight = 792.0
)

// DefaultLineTolerance is the vertical distance within which glyphs share a line
const DefaultLineTolerance = 2.0

// ascentRatio places the top of a glyph relative to its baseline
const ascentRatio = 0.8

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

package textrun

import (
	"errors"
	"testing"

	"github.com/pyhub-apps/pdftemplate/pkg/pdf"
)

// glyphsAt lays out s left to right starting at x, each glyph w wide,
// separated by the given gap
func glyphsAt(s string, x, y, w, gap float64) []pdf.Glyph {
	var glyphs []pdf.Glyph
	for _, ch := range s {
		glyphs = append(glyphs, pdf.Glyph{Char: string(ch), X: x, Y: y, EndX: x + w, EndY: y + 10})
		x += w + gap
	}
	return glyphs
}

func TestSegmentNoSplit(t *testing.T) {
	tests := []struct {
		name string
		gap  float64
	}{
		{name: "Touching glyphs", gap: 0},
		{name: "Small gap", gap: 0.5},
		{name: "Gap exactly at threshold", gap: GapThreshold},
		{name: "Overlapping glyphs", gap: -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := pdf.Line{Text: "reported", Glyphs: glyphsAt("abcdefgh", 10, 20, 5, tt.gap)}
			runs := Segment(line, 1)
			if len(runs) != 1 {
				t.Fatalf("Expected 1 run, got %d", len(runs))
			}
			if runs[0].Text != "reported" {
				t.Errorf("Expected reported text to be kept, got %q", runs[0].Text)
			}
		})
	}
}

func TestSegmentSplitAtGap(t *testing.T) {
	glyphs := append(glyphsAt("Total", 10, 20, 5, 0), glyphsAt("42.00", 100, 20, 5, 0)...)
	line := pdf.Line{Text: "Total 42.00", Glyphs: glyphs}

	runs := Segment(line, 3)
	if len(runs) != 2 {
		t.Fatalf("Expected 2 runs, got %d", len(runs))
	}
	if runs[0].Text != "Total" || runs[1].Text != "42.00" {
		t.Errorf("Unexpected run texts %q and %q", runs[0].Text, runs[1].Text)
	}
	if runs[1].FirstX() != 100 {
		t.Errorf("Expected second run to start at X=100, got %.2f", runs[1].FirstX())
	}
	for _, r := range runs {
		if r.Page != 3 {
			t.Errorf("Expected page 3, got %d", r.Page)
		}
	}
}

func TestSegmentSplitJustAboveThreshold(t *testing.T) {
	glyphs := glyphsAt("ab", 0, 0, 5, GapThreshold+0.001)
	runs := Segment(pdf.LineFromGlyphs(glyphs), 1)
	if len(runs) != 2 {
		t.Fatalf("Expected 2 runs, got %d", len(runs))
	}
	if runs[0].Text != "a" || runs[1].Text != "b" {
		t.Errorf("Expected split into a|b, got %q|%q", runs[0].Text, runs[1].Text)
	}
}

func TestSegmentBlankLines(t *testing.T) {
	tests := []struct {
		name string
		line pdf.Line
	}{
		{name: "Empty", line: pdf.Line{}},
		{name: "Spaces", line: pdf.LineFromGlyphs(glyphsAt("   ", 0, 0, 5, 0))},
		{name: "Tabs and newline", line: pdf.Line{Text: "\t\n", Glyphs: glyphsAt("\t\n", 0, 0, 5, 0)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if runs := Segment(tt.line, 1); len(runs) != 0 {
				t.Errorf("Expected no runs, got %d", len(runs))
			}
		})
	}
}

func TestSegmentDropsBlankPieces(t *testing.T) {
	// A lone space far to the right splits off but has nothing visible
	glyphs := append(glyphsAt("ab", 0, 0, 5, 0), pdf.Glyph{Char: " ", X: 80, Y: 0, EndX: 83, EndY: 10})
	runs := Segment(pdf.LineFromGlyphs(glyphs), 1)
	if len(runs) != 1 {
		t.Fatalf("Expected 1 run, got %d", len(runs))
	}
	if runs[0].Text != "ab" {
		t.Errorf("Expected text ab, got %q", runs[0].Text)
	}
}

func TestRunBoxIgnoresBlankGlyphs(t *testing.T) {
	glyphs := []pdf.Glyph{
		{Char: " ", X: 0, Y: 0, EndX: 4, EndY: 30},
		{Char: "A", X: 5, Y: 12, EndX: 10, EndY: 22},
		{Char: " ", X: 10, Y: 12, EndX: 11, EndY: 22},
		{Char: "B", X: 11, Y: 10, EndX: 16, EndY: 21},
		{Char: " ", X: 16, Y: 5, EndX: 16.5, EndY: 40},
	}

	run, err := NewRun(" A B ", glyphs, 1)
	if err != nil {
		t.Fatalf("NewRun failed: %v", err)
	}
	if run.Text != " A B " {
		t.Errorf("Expected blank glyphs to stay in text, got %q", run.Text)
	}

	want := pdf.BoundingBox{X0: 5, Y0: 10, X1: 16, Y1: 22}
	if run.Box != want {
		t.Errorf("Expected box %+v, got %+v", want, run.Box)
	}
	if run.LastX() < run.FirstX() || run.LastY() < run.FirstY() {
		t.Errorf("Box invariant violated: %+v", run.Box)
	}
}

func TestNewRunBlank(t *testing.T) {
	_, err := NewRun("  ", glyphsAt("  ", 0, 0, 5, 0), 1)
	if !errors.Is(err, ErrBlankRun) {
		t.Errorf("Expected ErrBlankRun, got %v", err)
	}
}

func TestSegmentBoxInvariant(t *testing.T) {
	lines := []pdf.Line{
		pdf.LineFromGlyphs(glyphsAt("INV-100", 10, 10, 7, 0)),
		pdf.LineFromGlyphs(glyphsAt("a b c", 0, 5, 3, 2)),
		{Text: "odd", Glyphs: []pdf.Glyph{{Char: "o", X: 10, Y: 10, EndX: 8, EndY: 9}}},
	}

	for _, line := range lines {
		for _, r := range Segment(line, 1) {
			if r.LastX() < r.FirstX() || r.LastY() < r.FirstY() {
				t.Errorf("Run %q violates box invariant: %+v", r.Text, r.Box)
			}
		}
	}
}

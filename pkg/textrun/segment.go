package textrun

import (
	"github.com/pyhub-apps/pdftemplate/pkg/pdf"
)

// GapThreshold is the horizontal gap, in layout units, above which a line is split into runs
const GapThreshold = 1.0

// Segment splits one reported line into runs on horizontal gaps larger
// than GapThreshold. Blank lines produce no runs. When the line is not
// split, the run keeps the reported text; otherwise each run's text is
// rebuilt from its own glyphs. Pieces made only of blank glyphs are dropped.
func Segment(line pdf.Line, page int) []Run {
	if line.IsBlank() {
		return nil
	}

	groups := splitGlyphs(line.Glyphs)
	if len(groups) == 1 {
		run, err := NewRun(line.Text, line.Glyphs, page)
		if err != nil {
			return nil
		}
		return []Run{run}
	}

	runs := make([]Run, 0, len(groups))
	for _, group := range groups {
		run, err := NewRun(pdf.LineFromGlyphs(group).Text, group, page)
		if err != nil {
			continue
		}
		runs = append(runs, run)
	}
	return runs
}

// splitGlyphs cuts the glyph list wherever the next glyph starts more than
// GapThreshold after the previous glyph ends
func splitGlyphs(glyphs []pdf.Glyph) [][]pdf.Glyph {
	if len(glyphs) == 0 {
		return [][]pdf.Glyph{nil}
	}

	var groups [][]pdf.Glyph
	current := []pdf.Glyph{glyphs[0]}
	for i := 1; i < len(glyphs); i++ {
		if glyphs[i].X-glyphs[i-1].EndX > GapThreshold {
			groups = append(groups, current)
			current = nil
		}
		current = append(current, glyphs[i])
	}
	return append(groups, current)
}

package pdf

import (
	"sort"
)

// GroupLines orders glyphs into reading-order lines. Glyphs whose top edge
// lies within yTolerance of the first glyph of a line join that line; lines
// run top to bottom and glyphs within a line left to right.
func GroupLines(glyphs []Glyph, yTolerance float64) []Line {
	if len(glyphs) == 0 {
		return nil
	}

	sorted := make([]Glyph, len(glyphs))
	copy(sorted, glyphs)

	// Stable so that glyphs at identical positions keep their content-stream order
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Y < sorted[j].Y
	})

	var groups [][]Glyph
	var current []Glyph
	currentY := sorted[0].Y

	for _, g := range sorted {
		if abs(g.Y-currentY) > yTolerance {
			if len(current) > 0 {
				groups = append(groups, current)
			}
			current = []Glyph{g}
			currentY = g.Y
		} else {
			current = append(current, g)
		}
	}

	// Add the last line
	if len(current) > 0 {
		groups = append(groups, current)
	}

	lines := make([]Line, 0, len(groups))
	for _, group := range groups {
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].X < group[j].X
		})
		lines = append(lines, LineFromGlyphs(group))
	}

	return lines
}

// splitItem spreads a multi-character text item evenly over its width.
// Backends report text in items that may hold one or more characters.
func splitItem(s string, x, top, width, height float64) []Glyph {
	chars := []rune(s)
	if len(chars) == 0 {
		return nil
	}

	charWidth := width / float64(len(chars))
	glyphs := make([]Glyph, 0, len(chars))
	for _, ch := range chars {
		glyphs = append(glyphs, Glyph{
			Char: string(ch),
			X:    x,
			Y:    top,
			EndX: x + charWidth,
			EndY: top + height,
		})
		x += charWidth
	}
	return glyphs
}

// Package match compares documents with each other and with templates by
// position. A run in one document corresponds to the first run of the other
// document whose start corner lies within tolerance; closer runs further
// along in reading order are never considered.
package match

import (
	"github.com/pyhub-apps/pdftemplate/pkg/textrun"
)

// Discover returns the runs of a whose first positional counterpart in b
// carries different text, in a's reading order. Runs without any
// counterpart in b are not candidates.
func Discover(a, b *textrun.Index, tol textrun.Tolerance) []textrun.Run {
	var candidates []textrun.Run
	for i := 0; i < a.Len(); i++ {
		r := a.At(i)
		s, ok := b.Near(r.FirstX(), r.FirstY(), tol)
		if !ok {
			continue
		}
		if r.Text != s.Text {
			candidates = append(candidates, r)
		}
	}
	return candidates
}

package export

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/pyhub-apps/pdftemplate/pkg/match"
)

// CellWidth is the display width of a console table column
const CellWidth = 20

// ConsoleSink prints results as a fixed-width table
type ConsoleSink struct {
	w       io.Writer
	columns []string
	rows    rows
	header  lipgloss.Style
}

// NewConsoleSink creates a table printer. Styling is only applied when w
// is a terminal.
func NewConsoleSink(w io.Writer, columns []string) *ConsoleSink {
	r := lipgloss.NewRenderer(w)
	return &ConsoleSink{
		w:       w,
		columns: columns,
		header:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("160")),
	}
}

func (s *ConsoleSink) Receive(docID string, values match.Values) error {
	s.rows.add(docID, values)
	return nil
}

// Finish prints the header line and one line per document
func (s *ConsoleSink) Finish() error {
	header := formatCells(append([]string{FileColumn}, s.columns...))
	if _, err := io.WriteString(s.w, s.header.Render(header)+"\n"); err != nil {
		return err
	}
	for _, r := range s.rows.sorted() {
		if _, err := io.WriteString(s.w, formatCells(r.cells(s.columns))+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// formatCells pads every cell to CellWidth; wider cells keep their full
// text followed by a single space
func formatCells(cells []string) string {
	var b strings.Builder
	for _, c := range cells {
		if runewidth.StringWidth(c) >= CellWidth {
			b.WriteString(c)
			b.WriteByte(' ')
			continue
		}
		b.WriteString(runewidth.FillRight(c, CellWidth))
	}
	return strings.TrimRight(b.String(), " ")
}

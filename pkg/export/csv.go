package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/pyhub-apps/pdftemplate/pkg/match"
)

// Separator is the CSV field separator
const Separator = ';'

// Charsets accepted by NewCSVSink
var charsets = map[string]*charmap.Charmap{
	"windows-1252": charmap.Windows1252,
	"cp1252":       charmap.Windows1252,
	"iso-8859-1":   charmap.ISO8859_1,
	"latin1":       charmap.ISO8859_1,
	"iso-8859-15":  charmap.ISO8859_15,
}

// CSVSink writes one row per document under a "file;<attributes>" header
type CSVSink struct {
	w       io.Writer
	flush   io.Closer // charset transformer, if any
	columns []string
	rows    rows
}

// NewCSVSink creates a CSV exporter for the given attribute columns.
// charset is empty or utf-8 for UTF-8 output, or one of the supported
// single-byte charsets; characters the charset cannot hold are replaced.
func NewCSVSink(w io.Writer, columns []string, charset string) (*CSVSink, error) {
	enc, err := lookupCharset(charset)
	if err != nil {
		return nil, err
	}
	s := &CSVSink{w: w, columns: columns}
	if enc != nil {
		tw := transform.NewWriter(w, encoding.ReplaceUnsupported(enc.NewEncoder()))
		s.w, s.flush = tw, tw
	}
	return s, nil
}

func lookupCharset(name string) (*charmap.Charmap, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" || name == "utf-8" || name == "utf8" {
		return nil, nil
	}
	cm, ok := charsets[name]
	if !ok {
		return nil, fmt.Errorf("unsupported charset %q", name)
	}
	return cm, nil
}

func (s *CSVSink) Receive(docID string, values match.Values) error {
	s.rows.add(docID, values)
	return nil
}

// Finish writes the header and all rows sorted by document id
func (s *CSVSink) Finish() error {
	cw := csv.NewWriter(s.w)
	cw.Comma = Separator

	header := append([]string{FileColumn}, s.columns...)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, r := range s.rows.sorted() {
		if err := cw.Write(r.cells(s.columns)); err != nil {
			return fmt.Errorf("failed to write CSV row for %s: %w", r.docID, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return err
	}

	if s.flush != nil {
		return s.flush.Close()
	}
	return nil
}

// CheckCharset reports whether NewCSVSink accepts name
func CheckCharset(name string) error {
	_, err := lookupCharset(name)
	return err
}

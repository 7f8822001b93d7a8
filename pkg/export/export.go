// Package export writes extraction results as CSV files or console tables.
// Every exporter buffers rows and writes them sorted by document id when
// the batch finishes, so output is stable regardless of worker scheduling.
package export

import (
	"errors"
	"sort"

	"github.com/pyhub-apps/pdftemplate/pkg/match"
	"github.com/pyhub-apps/pdftemplate/pkg/workflow"
)

// FileColumn is the header of the document id column
const FileColumn = "file"

type row struct {
	docID  string
	values match.Values
}

// rows collects results in arrival order
type rows []row

func (r *rows) add(docID string, values match.Values) {
	*r = append(*r, row{docID: docID, values: values})
}

func (r rows) sorted() rows {
	out := make(rows, len(r))
	copy(out, r)
	sort.SliceStable(out, func(i, j int) bool { return out[i].docID < out[j].docID })
	return out
}

// cells returns the values of one row in column order; a column missing
// from values is written as match.NotFound
func (r row) cells(columns []string) []string {
	out := make([]string, 0, len(columns)+1)
	out = append(out, r.docID)
	for _, c := range columns {
		v, ok := r.values[c]
		if !ok {
			v = match.NotFound
		}
		out = append(out, v)
	}
	return out
}

var (
	_ workflow.Sink = (*CSVSink)(nil)
	_ workflow.Sink = (*ConsoleSink)(nil)
	_ workflow.Sink = MultiSink(nil)
)

// MultiSink forwards every call to each of its sinks
type MultiSink []workflow.Sink

func (m MultiSink) Receive(docID string, values match.Values) error {
	var errs []error
	for _, s := range m {
		errs = append(errs, s.Receive(docID, values))
	}
	return errors.Join(errs...)
}

func (m MultiSink) Finish() error {
	var errs []error
	for _, s := range m {
		errs = append(errs, s.Finish())
	}
	return errors.Join(errs...)
}

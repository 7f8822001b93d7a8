package workflow

import (
	"sort"

	"github.com/pyhub-apps/pdftemplate/pkg/match"
)

// Sink receives extraction results. Apply calls it from a single
// goroutine, so implementations need no locking.
type Sink interface {
	// Receive is called once per successfully processed document
	Receive(docID string, values match.Values) error
	// Finish is called once after the last document
	Finish() error
}

// Collector keeps results in memory
type Collector struct {
	results  map[string]match.Values
	finished bool
}

// NewCollector creates an empty collector
func NewCollector() *Collector {
	return &Collector{results: make(map[string]match.Values)}
}

func (c *Collector) Receive(docID string, values match.Values) error {
	c.results[docID] = values
	return nil
}

func (c *Collector) Finish() error {
	c.finished = true
	return nil
}

// Finished reports whether Finish was called
func (c *Collector) Finished() bool {
	return c.finished
}

// Values returns the result of one document
func (c *Collector) Values(docID string) (match.Values, bool) {
	v, ok := c.results[docID]
	return v, ok
}

// Documents returns the ids of received documents in sorted order
func (c *Collector) Documents() []string {
	ids := make([]string, 0, len(c.results))
	for id := range c.results {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

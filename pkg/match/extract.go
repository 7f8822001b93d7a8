package match

import (
	"log/slog"

	"github.com/pyhub-apps/pdftemplate/pkg/template"
	"github.com/pyhub-apps/pdftemplate/pkg/textrun"
)

// NotFound is the value of an attribute that matched no run
const NotFound = "N/A"

// Values maps attribute names to extracted text
type Values map[string]string

// Option configures Extract
type Option func(*options)

type options struct {
	refine    bool
	pageMatch bool
	logger    *slog.Logger
}

// WithRefinement applies each attribute's remove/select rules to its
// matched text. NotFound is never refined.
func WithRefinement() Option {
	return func(o *options) {
		o.refine = true
	}
}

// WithPageMatching restricts an attribute with a known page (> 0) to runs
// on that page
func WithPageMatching() Option {
	return func(o *options) {
		o.pageMatch = true
	}
}

// WithLogger sets the logger used for refinement failures
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Extract looks up every attribute of tpl in doc. The result has one entry
// per attribute name; an attribute that matches nothing maps to NotFound.
// When a name occurs more than once the later attribute wins.
func Extract(tpl *template.Template, doc *textrun.Index, tol textrun.Tolerance, opts ...Option) Values {
	o := options{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&o)
	}

	values := make(Values, tpl.Len())
	for _, attr := range tpl.Attributes {
		run, ok := doc.Lookup(func(r textrun.Run) bool {
			if o.pageMatch && attr.Page > 0 && r.Page != attr.Page {
				return false
			}
			return tol.Matches(attr.XStart(), attr.YStart(), r.FirstX(), r.FirstY())
		})
		if !ok {
			values[attr.Name] = NotFound
			continue
		}

		value := run.Text
		if o.refine && !attr.Rules.Empty() {
			refined, err := attr.Rules.Apply(value)
			if err != nil {
				o.logger.Warn("refinement failed, keeping raw value",
					"document", doc.Document(), "attribute", attr.Name, "err", err)
			} else {
				value = refined
			}
		}
		values[attr.Name] = value
	}
	return values
}

package workflow

import (
	"log/slog"
	"runtime"

	"github.com/pyhub-apps/pdftemplate/pkg/match"
	"github.com/pyhub-apps/pdftemplate/pkg/pdf"
	"github.com/pyhub-apps/pdftemplate/pkg/textrun"
)

// Option configures Create and Apply
type Option func(*settings)

type settings struct {
	workers   int
	opener    pdf.Opener
	tolerance *textrun.Tolerance
	matchOpts []match.Option
	logger    *slog.Logger
	progress  func(done, total int)
	validate  bool
}

func newSettings(opts []Option) settings {
	s := settings{
		workers: runtime.NumCPU(),
		opener:  pdf.Open,
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// toleranceOr returns the configured tolerance or a uniform fallback
func (s settings) toleranceOr(fallback float64) textrun.Tolerance {
	if s.tolerance != nil {
		return *s.tolerance
	}
	return textrun.Uniform(fallback)
}

// WithWorkers sets the number of documents processed in parallel
func WithWorkers(n int) Option {
	return func(s *settings) {
		if n > 0 {
			s.workers = n
		}
	}
}

// WithOpener replaces the function used to open documents
func WithOpener(open pdf.Opener) Option {
	return func(s *settings) {
		if open != nil {
			s.opener = open
		}
	}
}

// WithTolerance overrides the workflow's default tolerance
func WithTolerance(tol textrun.Tolerance) Option {
	return func(s *settings) {
		s.tolerance = &tol
	}
}

// WithMatchOptions passes options through to match.Extract
func WithMatchOptions(opts ...match.Option) Option {
	return func(s *settings) {
		s.matchOpts = append(s.matchOpts, opts...)
	}
}

// WithLogger sets the logger; the default discards everything
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithProgress registers a callback invoked after each document.
// It runs on the aggregating goroutine.
func WithProgress(fn func(done, total int)) Option {
	return func(s *settings) {
		s.progress = fn
	}
}

// WithValidation checks each file with pdf.Inspect before opening it
func WithValidation() Option {
	return func(s *settings) {
		s.validate = true
	}
}

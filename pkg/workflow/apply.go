package workflow

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/pyhub-apps/pdftemplate/pkg/match"
	"github.com/pyhub-apps/pdftemplate/pkg/pdf"
	"github.com/pyhub-apps/pdftemplate/pkg/template"
	"github.com/pyhub-apps/pdftemplate/pkg/textrun"
)

// Report summarizes a batch run
type Report struct {
	Total     int
	Processed int
	Failed    []*DocumentError
	Duration  time.Duration
}

// OK reports whether every document was processed
func (r *Report) OK() bool {
	return len(r.Failed) == 0 && r.Processed == r.Total
}

// Err joins the per-document failures
func (r *Report) Err() error {
	errs := make([]error, len(r.Failed))
	for i, f := range r.Failed {
		errs[i] = f
	}
	return errors.Join(errs...)
}

// docResult is what a worker sends back for one document
type docResult struct {
	path   string
	docID  string
	values match.Values
	err    *DocumentError
}

// Apply extracts tpl from every document in paths. Documents are
// processed in parallel, each one entirely on one worker; results are
// delivered to sink from the calling goroutine. A failing document is
// recorded in the report and does not stop the batch. The returned error
// covers sink failures and cancellation only.
func Apply(ctx context.Context, tpl *template.Template, paths []string, sink Sink, opts ...Option) (*Report, error) {
	startTime := time.Now()
	s := newSettings(opts)
	tol := s.toleranceOr(textrun.DefaultApplyTolerance)
	if err := tol.Validate(); err != nil {
		return nil, err
	}

	report := &Report{Total: len(paths)}
	matchOpts := append([]match.Option{match.WithLogger(s.logger)}, s.matchOpts...)

	workers := min(s.workers, len(paths))
	jobs := make(chan string, workers*2)
	results := make(chan docResult, workers*2)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range jobs {
				results <- s.process(tpl, path, tol, matchOpts)
			}
		}()
	}

	go func() {
		defer close(jobs)
		for _, path := range paths {
			select {
			case <-ctx.Done():
				return
			case jobs <- path:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	var sinkErr error
	done := 0
	for res := range results {
		done++
		if res.err != nil {
			s.logger.Warn("document failed", "document", res.path, "stage", res.err.Stage, "err", res.err.Err)
			report.Failed = append(report.Failed, res.err)
		} else if sinkErr == nil {
			if err := sink.Receive(res.docID, res.values); err != nil {
				sinkErr = err
			} else {
				report.Processed++
			}
		}
		if s.progress != nil {
			s.progress(done, report.Total)
		}
	}

	finishErr := sink.Finish()
	report.Duration = time.Since(startTime)
	s.logger.Info("batch complete",
		"documents", report.Total, "processed", report.Processed,
		"failed", len(report.Failed), "duration", report.Duration)

	return report, errors.Join(sinkErr, finishErr, ctx.Err())
}

// process runs one document through open, index and extract
func (s settings) process(tpl *template.Template, path string, tol textrun.Tolerance, matchOpts []match.Option) docResult {
	res := docResult{path: path}

	if s.validate {
		if _, err := pdf.Inspect(path); err != nil {
			res.err = &DocumentError{Path: path, Stage: StageValidate, Err: err}
			return res
		}
	}

	doc, err := s.opener(path)
	if err != nil {
		res.err = &DocumentError{Path: path, Stage: StageOpen, Err: err}
		return res
	}
	defer doc.Close()

	ix, err := textrun.Build(doc)
	if err != nil {
		res.err = &DocumentError{Path: path, Stage: StageExtract, Err: err}
		return res
	}
	s.logger.Debug("indexed document", "document", doc.Name(), "runs", ix.Len())

	res.docID = doc.Name()
	res.values = match.Extract(tpl, ix, tol, matchOpts...)
	return res
}

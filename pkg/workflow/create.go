// Package workflow drives the two end-user flows: creating a template from
// two sample documents and applying a template to a batch of documents.
package workflow

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pyhub-apps/pdftemplate/pkg/match"
	"github.com/pyhub-apps/pdftemplate/pkg/pdf"
	"github.com/pyhub-apps/pdftemplate/pkg/template"
	"github.com/pyhub-apps/pdftemplate/pkg/textrun"
)

// Selector turns candidate texts into attribute decisions. The result is
// aligned with candidates; a nil entry declines that candidate. Missing
// trailing entries count as declined.
type Selector interface {
	Select(ctx context.Context, candidates []string) ([]*template.Decision, error)
}

// SelectorFunc adapts a function to Selector
type SelectorFunc func(ctx context.Context, candidates []string) ([]*template.Decision, error)

func (f SelectorFunc) Select(ctx context.Context, candidates []string) ([]*template.Decision, error) {
	return f(ctx, candidates)
}

// Create diffs a against b and builds a template from the candidates the
// selector names. Decisions the builder rejects are returned as a joined
// error together with the template of accepted attributes.
func Create(ctx context.Context, a, b pdf.Document, sel Selector, opts ...Option) (*template.Template, error) {
	s := newSettings(opts)
	tol := s.toleranceOr(textrun.DefaultCreateTolerance)
	if err := tol.Validate(); err != nil {
		return nil, err
	}

	ia, err := textrun.Build(a)
	if err != nil {
		return nil, err
	}
	ib, err := textrun.Build(b)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("indexed samples", "document", a.Name(), "runs", ia.Len())
	s.logger.Debug("indexed samples", "document", b.Name(), "runs", ib.Len())

	candidates := match.Discover(ia, ib, tol)
	s.logger.Info("discovered candidate fields", "document", a.Name(), "candidates", len(candidates))

	texts := make([]string, len(candidates))
	for i, c := range candidates {
		texts[i] = c.Text
	}

	decisions, err := selectNames(ctx, sel, texts)
	if err != nil {
		return nil, err
	}

	builder := template.NewBuilder()
	var errs []error
	for i, d := range decisions {
		if i >= len(candidates) {
			break
		}
		if d == nil {
			continue
		}
		if _, err := builder.Add(*d, candidates[i]); err != nil {
			s.logger.Warn("rejected attribute", "attribute", d.Name, "err", err)
			errs = append(errs, err)
		}
	}

	return builder.Template(), errors.Join(errs...)
}

// selectNames calls sel exactly once and returns early if ctx is done
func selectNames(ctx context.Context, sel Selector, candidates []string) ([]*template.Decision, error) {
	type outcome struct {
		decisions []*template.Decision
		err       error
	}

	done := make(chan outcome, 1)
	go func() {
		d, err := sel.Select(ctx, candidates)
		done <- outcome{d, err}
	}()

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("selection interrupted: %w", ctx.Err())
	case o := <-done:
		if o.err != nil {
			return nil, fmt.Errorf("selection failed: %w", o.err)
		}
		return o.decisions, nil
	}
}

// CreateFromDir creates a template from the first two sample files in dir
func CreateFromDir(ctx context.Context, dir string, sel Selector, opts ...Option) (*template.Template, error) {
	s := newSettings(opts)

	files, err := SampleFiles(dir)
	if err != nil {
		return nil, err
	}
	if len(files) < 2 {
		return nil, fmt.Errorf("%w: found %d in %s", ErrNotEnoughSamples, len(files), dir)
	}
	if len(files) > 2 {
		s.logger.Info("using the first two samples", "count", len(files))
	}

	a, err := s.opener(files[0])
	if err != nil {
		return nil, &DocumentError{Path: files[0], Stage: StageOpen, Err: err}
	}
	defer a.Close()

	b, err := s.opener(files[1])
	if err != nil {
		return nil, &DocumentError{Path: files[1], Stage: StageOpen, Err: err}
	}
	defer b.Close()

	return Create(ctx, a, b, sel, opts...)
}

// SampleFiles lists the PDF files directly inside dir, sorted by name
func SampleFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".pdf") {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	return files, nil
}

package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/pyhub-apps/pdftemplate/pkg/refine"
	"github.com/pyhub-apps/pdftemplate/pkg/template"
)

// consoleSelector asks for a name and optional patterns per candidate.
// Invalid answers are asked again; end of input declines the rest.
type consoleSelector struct {
	in          *bufio.Reader
	out         io.Writer
	interactive bool
}

func newConsoleSelector(in io.Reader, out io.Writer) *consoleSelector {
	interactive := true
	if f, ok := in.(*os.File); ok {
		interactive = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return &consoleSelector{in: bufio.NewReader(in), out: out, interactive: interactive}
}

func (s *consoleSelector) Select(ctx context.Context, candidates []string) ([]*template.Decision, error) {
	decisions := make([]*template.Decision, len(candidates))
	if len(candidates) == 0 {
		fmt.Fprintln(s.out, "The sample documents do not differ; no candidates.")
		return decisions, nil
	}

	used := make(map[string]struct{})
	for i, c := range candidates {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		fmt.Fprintf(s.out, "\n[%d/%d] %q\n", i+1, len(candidates), c)

		d, err := s.decide(used)
		if errors.Is(err, io.EOF) {
			return decisions, nil
		}
		if err != nil {
			return nil, err
		}
		if d != nil {
			used[d.Name] = struct{}{}
		}
		decisions[i] = d
	}
	return decisions, nil
}

func (s *consoleSelector) decide(used map[string]struct{}) (*template.Decision, error) {
	var name string
	for {
		answer, err := s.ask("Attribute name (empty to skip): ")
		if err != nil {
			return nil, err
		}
		name = strings.TrimSpace(answer)
		if name == "" {
			return nil, nil
		}
		if _, ok := used[name]; ok {
			fmt.Fprintf(s.out, "Name %q is already used.\n", name)
			continue
		}
		break
	}

	remove, err := s.askPattern("Remove pattern (optional): ")
	if err != nil {
		return nil, err
	}
	sel, err := s.askPattern("Select pattern (optional): ")
	if err != nil {
		return nil, err
	}
	return &template.Decision{Name: name, Remove: remove, Select: sel}, nil
}

func (s *consoleSelector) askPattern(prompt string) (string, error) {
	for {
		answer, err := s.ask(prompt)
		if err != nil {
			return "", err
		}
		if answer == "" {
			return "", nil
		}
		if _, err := refine.Compile(answer); err != nil {
			fmt.Fprintln(s.out, err)
			continue
		}
		return answer, nil
	}
}

// ask reads one line without its line ending. A final line without a
// newline is still returned.
func (s *consoleSelector) ask(prompt string) (string, error) {
	if s.interactive {
		fmt.Fprint(s.out, prompt)
	}
	line, err := s.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

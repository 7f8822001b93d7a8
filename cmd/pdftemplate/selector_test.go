package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestConsoleSelector(t *testing.T) {
	// candidate 1 named with a remove pattern, candidate 2 skipped,
	// candidate 3 after a duplicate name and an invalid pattern
	input := strings.Join([]string{
		"invoice_id",
		"INV-",
		"",
		"",
		"invoice_id",
		"total",
		"(",
		"",
		`[0-9.]+`,
	}, "\n") + "\n"

	var out bytes.Buffer
	sel := newConsoleSelector(strings.NewReader(input), &out)
	decisions, err := sel.Select(context.Background(), []string{"INV-100", "Page 1", "10.00"})
	if err != nil {
		t.Fatalf("Select() error = %v", err)
	}
	if len(decisions) != 3 {
		t.Fatalf("got %d decisions, want 3", len(decisions))
	}

	if d := decisions[0]; d == nil || d.Name != "invoice_id" || d.Remove != "INV-" || d.Select != "" {
		t.Errorf("decision 0 = %+v", d)
	}
	if decisions[1] != nil {
		t.Errorf("decision 1 = %+v, want declined", decisions[1])
	}
	if d := decisions[2]; d == nil || d.Name != "total" || d.Remove != "" || d.Select != `[0-9.]+` {
		t.Errorf("decision 2 = %+v", d)
	}
	if !strings.Contains(out.String(), "already used") {
		t.Errorf("duplicate name not reported:\n%s", out.String())
	}
}

func TestConsoleSelectorEndOfInput(t *testing.T) {
	sel := newConsoleSelector(strings.NewReader("first"), &bytes.Buffer{})
	decisions, err := sel.Select(context.Background(), []string{"a", "b"})
	if err != nil {
		t.Fatalf("Select() error = %v", err)
	}
	if decisions[0] != nil || decisions[1] != nil {
		t.Errorf("decisions = %+v, want all declined after end of input", decisions)
	}
}

func TestConsoleSelectorCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sel := newConsoleSelector(strings.NewReader("x\n"), &bytes.Buffer{})
	if _, err := sel.Select(ctx, []string{"a"}); err == nil {
		t.Error("Select() error = nil, want context error")
	}
}

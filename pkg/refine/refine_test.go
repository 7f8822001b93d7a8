package refine

import (
	"testing"
)

func TestApply(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		remove   string
		sel      string
		expected string
	}{
		{name: "No rules", value: "INV-100", expected: "INV-100"},
		{name: "Remove prefix", value: "Invoice: 4711", remove: `^Invoice:\s*`, expected: "4711"},
		{name: "Remove every match", value: "1.234.567,00", remove: `\.`, expected: "1234567,00"},
		{name: "Select first match", value: "Order 123 of 456", sel: `\d+`, expected: "123"},
		{name: "Select without match keeps value", value: "no digits", sel: `\d+`, expected: "no digits"},
		{name: "Remove then select", value: "EUR 1.200,50 / 300", remove: `\.`, sel: `\d+,\d{2}`, expected: "1200,50"},
		{name: "Lookbehind select", value: "Total: 99.90 EUR", sel: `(?<=Total:\s)[\d.]+`, expected: "99.90"},
		{name: "Remove everything", value: "   ", remove: `\s`, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var remove, sel *Pattern
			if tt.remove != "" {
				remove = MustCompile(tt.remove)
			}
			if tt.sel != "" {
				sel = MustCompile(tt.sel)
			}

			got, err := Apply(tt.value, remove, sel)
			if err != nil {
				t.Fatalf("Apply failed: %v", err)
			}
			if got != tt.expected {
				t.Errorf("Apply(%q) = %q, want %q", tt.value, got, tt.expected)
			}

			rules := Rules{Remove: remove, Select: sel}
			viaRules, err := rules.Apply(tt.value)
			if err != nil || viaRules != got {
				t.Errorf("Rules.Apply = %q (%v), want %q", viaRules, err, got)
			}
		})
	}
}

func TestCompileInvalid(t *testing.T) {
	if _, err := Compile(`(unclosed`); err == nil {
		t.Error("Expected error for invalid pattern")
	}
}

func TestPatternString(t *testing.T) {
	p := MustCompile(`\d+`)
	if p.String() != `\d+` {
		t.Errorf("Expected source to round-trip, got %q", p.String())
	}

	var nilPattern *Pattern
	if nilPattern.String() != "" {
		t.Error("Nil pattern should format as empty string")
	}
}

func TestRulesEmpty(t *testing.T) {
	if !(Rules{}).Empty() {
		t.Error("Zero rules should be empty")
	}
	if (Rules{Select: MustCompile(`x`)}).Empty() {
		t.Error("Rules with a select pattern should not be empty")
	}
}

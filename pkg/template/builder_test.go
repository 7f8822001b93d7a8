package template

import (
	"errors"
	"testing"

	"github.com/pyhub-apps/pdftemplate/pkg/pdf"
	"github.com/pyhub-apps/pdftemplate/pkg/textrun"
)

func sampleRun(text string, page int, x, y float64) textrun.Run {
	return textrun.Run{
		Text: text,
		Page: page,
		Box:  pdf.BoundingBox{X0: x, Y0: y, X1: x + 30, Y1: y + 10},
	}
}

func TestBuilderAdd(t *testing.T) {
	b := NewBuilder()

	attr, err := b.Add(Decision{Name: " invoice_no ", Remove: "INV-"}, sampleRun("INV-100", 1, 100, 50))
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if attr.Name != "invoice_no" {
		t.Errorf("Name = %q, want trimmed name", attr.Name)
	}
	if attr.Page != 1 || attr.XStart() != 100 || attr.YStart() != 50 {
		t.Errorf("attribute = %+v, want page 1 at (100, 50)", attr)
	}
	if attr.Box.X1 != 130 || attr.Box.Y1 != 60 {
		t.Errorf("end corner = (%v, %v), want (130, 60)", attr.Box.X1, attr.Box.Y1)
	}
	if attr.Rules.Remove.String() != "INV-" || attr.Rules.Select != nil {
		t.Errorf("rules = %+v", attr.Rules)
	}
}

func TestBuilderRejects(t *testing.T) {
	tests := []struct {
		name     string
		decision Decision
		field    string
		want     error
	}{
		{"empty name", Decision{Name: ""}, "name", ErrEmptyName},
		{"whitespace name", Decision{Name: "   "}, "name", ErrEmptyName},
		{"duplicate name", Decision{Name: "total"}, "name", ErrDuplicateName},
		{"bad remove", Decision{Name: "date", Remove: "("}, "remove", ErrInvalidPattern},
		{"bad select", Decision{Name: "date", Select: "[a-"}, "select", ErrInvalidPattern},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuilder()
			if _, err := b.Add(Decision{Name: "total"}, sampleRun("12.00", 1, 10, 10)); err != nil {
				t.Fatalf("seed Add() error = %v", err)
			}

			_, err := b.Add(tt.decision, sampleRun("x", 1, 20, 20))
			if !errors.Is(err, tt.want) {
				t.Fatalf("Add() error = %v, want %v", err, tt.want)
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("error %T is not a *ValidationError", err)
			}
			if verr.Field != tt.field {
				t.Errorf("Field = %q, want %q", verr.Field, tt.field)
			}
			if b.Len() != 1 {
				t.Errorf("Len() = %d after rejection, want 1", b.Len())
			}
		})
	}
}

func TestBuilderTemplateIsCopy(t *testing.T) {
	b := NewBuilder()
	b.Add(Decision{Name: "a"}, sampleRun("1", 1, 0, 0))
	b.Add(Decision{Name: "b"}, sampleRun("2", 1, 0, 20))

	tpl := b.Template()
	tpl.Attributes[0].Name = "changed"

	got := b.Template().Names()
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("Names() = %v, want [a b]", got)
	}
}

package template

import (
	"fmt"
	"strings"

	"github.com/pyhub-apps/pdftemplate/pkg/refine"
	"github.com/pyhub-apps/pdftemplate/pkg/textrun"
)

// Decision is the outcome of naming one candidate field
type Decision struct {
	Name   string
	Remove string // optional pattern source
	Select string // optional pattern source
}

// Builder assembles a template during a creation session. A rejected
// attribute leaves the attributes confirmed so far untouched.
type Builder struct {
	attributes []Attribute
	names      map[string]struct{}
}

// NewBuilder creates an empty builder
func NewBuilder() *Builder {
	return &Builder{names: make(map[string]struct{})}
}

// CheckName reports whether name could be added
func (b *Builder) CheckName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return &ValidationError{Field: "name", Name: name, Err: ErrEmptyName}
	}
	if _, ok := b.names[name]; ok {
		return &ValidationError{Field: "name", Name: name, Err: ErrDuplicateName}
	}
	return nil
}

// Add confirms sample as a new attribute named by d
func (b *Builder) Add(d Decision, sample textrun.Run) (Attribute, error) {
	if err := b.CheckName(d.Name); err != nil {
		return Attribute{}, err
	}
	name := strings.TrimSpace(d.Name)

	rules, field, err := compileRules(d.Remove, d.Select)
	if err != nil {
		return Attribute{}, &ValidationError{Field: field, Name: name, Err: err}
	}

	attr := Attribute{
		Name:  name,
		Page:  sample.Page,
		Box:   sample.Box,
		Rules: rules,
	}
	b.attributes = append(b.attributes, attr)
	b.names[name] = struct{}{}
	return attr, nil
}

// Len returns the number of confirmed attributes
func (b *Builder) Len() int {
	return len(b.attributes)
}

// Template returns the confirmed attributes in confirmation order
func (b *Builder) Template() *Template {
	attrs := make([]Attribute, len(b.attributes))
	copy(attrs, b.attributes)
	return &Template{Attributes: attrs}
}

// compileRules compiles the optional pattern sources; on failure it names
// the offending field
func compileRules(remove, sel string) (refine.Rules, string, error) {
	var rules refine.Rules
	if remove != "" {
		p, err := refine.Compile(remove)
		if err != nil {
			return refine.Rules{}, "remove", fmt.Errorf("%w: %v", ErrInvalidPattern, err)
		}
		rules.Remove = p
	}
	if sel != "" {
		p, err := refine.Compile(sel)
		if err != nil {
			return refine.Rules{}, "select", fmt.Errorf("%w: %v", ErrInvalidPattern, err)
		}
		rules.Select = p
	}
	return rules, "", nil
}

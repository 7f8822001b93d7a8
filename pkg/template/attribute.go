// Package template describes named, position-anchored fields and persists
// them as XML (the format of earlier template tools) or YAML.
package template

import (
	"github.com/pyhub-apps/pdftemplate/pkg/pdf"
	"github.com/pyhub-apps/pdftemplate/pkg/refine"
)

// Attribute is one field of a template. Only the start corner of Box
// (X0 = xStart, Y0 = yStart) takes part in matching; X1/Y1 record the
// extent of the sample run the attribute was created from.
type Attribute struct {
	Name  string
	Page  int
	Box   pdf.BoundingBox
	Rules refine.Rules
}

// XStart returns the X coordinate used for matching
func (a Attribute) XStart() float64 { return a.Box.X0 }

// YStart returns the Y coordinate used for matching
func (a Attribute) YStart() float64 { return a.Box.Y0 }

// Template is an ordered list of attributes
type Template struct {
	Attributes []Attribute
}

// Len returns the number of attributes
func (t *Template) Len() int {
	return len(t.Attributes)
}

// Names returns the attribute names in template order
func (t *Template) Names() []string {
	names := make([]string, 0, len(t.Attributes))
	for _, a := range t.Attributes {
		names = append(names, a.Name)
	}
	return names
}

// Lookup returns the first attribute with the given name
func (t *Template) Lookup(name string) (Attribute, bool) {
	for _, a := range t.Attributes {
		if a.Name == name {
			return a, true
		}
	}
	return Attribute{}, false
}

package template

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v2"

	"github.com/pyhub-apps/pdftemplate/pkg/pdf"
)

// Format selects the on-disk template representation
type Format string

const (
	FormatXML  Format = "xml"
	FormatYAML Format = "yaml"
)

// FormatForPath picks the format from the file extension; anything that is
// not .yaml or .yml is XML
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatXML
	}
}

// entry is the decoded form of one attribute. Numbers stay text until
// validated so that a bad field can be reported by name.
type entry struct {
	Name   string `xml:"name" yaml:"name"`
	Page   string `xml:"page" yaml:"page"`
	XStart string `xml:"x-start" yaml:"x-start"`
	YStart string `xml:"y-start" yaml:"y-start"`
	XEnd   string `xml:"x-end" yaml:"x-end"`
	YEnd   string `xml:"y-end" yaml:"y-end"`
	Remove string `xml:"remove" yaml:"remove"`
	Select string `xml:"select" yaml:"select"`
}

type entryOut struct {
	Name   string  `xml:"name" yaml:"name"`
	Page   int     `xml:"page" yaml:"page"`
	XStart float64 `xml:"x-start" yaml:"x-start"`
	YStart float64 `xml:"y-start" yaml:"y-start"`
	XEnd   float64 `xml:"x-end" yaml:"x-end"`
	YEnd   float64 `xml:"y-end" yaml:"y-end"`
	Remove string  `xml:"remove,omitempty" yaml:"remove,omitempty"`
	Select string  `xml:"select,omitempty" yaml:"select,omitempty"`
}

type fileIn struct {
	XMLName    xml.Name `xml:"template" yaml:"-"`
	Attributes []entry  `xml:"attribute" yaml:"attributes"`
}

type fileOut struct {
	XMLName    xml.Name   `xml:"template" yaml:"-"`
	Attributes []entryOut `xml:"attribute" yaml:"attributes"`
}

// Decode reads a template. Entries that fail validation are reported as
// *EntryError values joined into the returned error; the remaining entries
// are still returned in file order. Duplicate names are accepted here.
func Decode(r io.Reader, format Format) (*Template, error) {
	var in fileIn
	switch format {
	case FormatYAML:
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("failed to read template: %w", err)
		}
		if err := yaml.Unmarshal(data, &in); err != nil {
			return nil, fmt.Errorf("failed to parse YAML template: %w", err)
		}
	case FormatXML:
		if err := xml.NewDecoder(r).Decode(&in); err != nil {
			return nil, fmt.Errorf("failed to parse XML template: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown template format %q", format)
	}

	tpl := &Template{Attributes: make([]Attribute, 0, len(in.Attributes))}
	var errs []error
	for i, e := range in.Attributes {
		attr, err := e.attribute(i)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		tpl.Attributes = append(tpl.Attributes, attr)
	}

	return tpl, errors.Join(errs...)
}

func (e entry) attribute(index int) (Attribute, error) {
	name := strings.TrimSpace(e.Name)
	fail := func(field string, err error) (Attribute, error) {
		return Attribute{}, &EntryError{Index: index, Name: name, Field: field, Err: err}
	}

	if name == "" {
		return fail("name", ErrEmptyName)
	}

	page := 0
	if s := strings.TrimSpace(e.Page); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			return fail("page", fmt.Errorf("%w: %q", ErrInvalidNumber, s))
		}
		page = n
	}

	xStart, err := parseCoord(e.XStart, true, 0)
	if err != nil {
		return fail("x-start", err)
	}
	yStart, err := parseCoord(e.YStart, true, 0)
	if err != nil {
		return fail("y-start", err)
	}
	xEnd, err := parseCoord(e.XEnd, false, xStart)
	if err != nil {
		return fail("x-end", err)
	}
	yEnd, err := parseCoord(e.YEnd, false, yStart)
	if err != nil {
		return fail("y-end", err)
	}

	rules, field, err := compileRules(strings.TrimSpace(e.Remove), strings.TrimSpace(e.Select))
	if err != nil {
		return fail(field, err)
	}

	return Attribute{
		Name:  name,
		Page:  page,
		Box:   pdf.BoundingBox{X0: xStart, Y0: yStart, X1: xEnd, Y1: yEnd},
		Rules: rules,
	}, nil
}

// parseCoord parses a coordinate; an empty optional field takes fallback
func parseCoord(s string, required bool, fallback float64) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		if required {
			return 0, fmt.Errorf("%w: missing value", ErrInvalidNumber)
		}
		return fallback, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, s)
	}
	return v, nil
}

// Encode writes tpl in the given format
func Encode(w io.Writer, tpl *Template, format Format) error {
	out := fileOut{Attributes: make([]entryOut, 0, tpl.Len())}
	for _, a := range tpl.Attributes {
		out.Attributes = append(out.Attributes, entryOut{
			Name:   a.Name,
			Page:   a.Page,
			XStart: a.Box.X0,
			YStart: a.Box.Y0,
			XEnd:   a.Box.X1,
			YEnd:   a.Box.Y1,
			Remove: a.Rules.Remove.String(),
			Select: a.Rules.Select.String(),
		})
	}

	switch format {
	case FormatYAML:
		data, err := yaml.Marshal(out)
		if err != nil {
			return fmt.Errorf("failed to encode YAML template: %w", err)
		}
		_, err = w.Write(data)
		return err
	case FormatXML:
		if _, err := io.WriteString(w, xml.Header); err != nil {
			return err
		}
		enc := xml.NewEncoder(w)
		enc.Indent("", "  ")
		if err := enc.Encode(out); err != nil {
			return fmt.Errorf("failed to encode XML template: %w", err)
		}
		_, err := io.WriteString(w, "\n")
		return err
	default:
		return fmt.Errorf("unknown template format %q", format)
	}
}

// Load reads a template file, choosing the format by extension
func Load(path string) (*Template, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open template: %w", err)
	}
	defer f.Close()

	tpl, err := Decode(f, FormatForPath(path))
	if err != nil {
		return tpl, fmt.Errorf("%s: %w", path, err)
	}
	return tpl, nil
}

// Save writes tpl to path, choosing the format by extension
func Save(path string, tpl *Template) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create template: %w", err)
	}

	if err := Encode(f, tpl, FormatForPath(path)); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

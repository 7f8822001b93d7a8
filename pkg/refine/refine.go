// Package refine post-processes extracted values with regular expressions:
// first strip every match of a remove pattern, then keep the first match of
// a select pattern.
//
// Patterns use the backtracking dialect of github.com/dlclark/regexp2
// (lookarounds, backreferences), which is what template authors write for
// Java-era templates. Every match runs under a timeout.
package refine

import (
	"fmt"
	"time"

	"github.com/dlclark/regexp2"
)

// DefaultMatchTimeout bounds a single match attempt
const DefaultMatchTimeout = 2 * time.Second

// Pattern is a compiled refinement expression that remembers its source
type Pattern struct {
	source string
	re     *regexp2.Regexp
}

// Compile compiles a refinement pattern
func Compile(source string) (*Pattern, error) {
	re, err := regexp2.Compile(source, regexp2.None)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", source, err)
	}
	re.MatchTimeout = DefaultMatchTimeout
	return &Pattern{source: source, re: re}, nil
}

// MustCompile is like Compile but panics if the pattern is invalid
func MustCompile(source string) *Pattern {
	p, err := Compile(source)
	if err != nil {
		panic(err)
	}
	return p
}

// String returns the pattern source
func (p *Pattern) String() string {
	if p == nil {
		return ""
	}
	return p.source
}

// RemoveAll deletes every non-overlapping match, scanning left to right
func (p *Pattern) RemoveAll(value string) (string, error) {
	out, err := p.re.Replace(value, "", -1, -1)
	if err != nil {
		return value, fmt.Errorf("remove %q: %w", p.source, err)
	}
	return out, nil
}

// First returns the first match in value
func (p *Pattern) First(value string) (string, bool, error) {
	m, err := p.re.FindStringMatch(value)
	if err != nil {
		return "", false, fmt.Errorf("select %q: %w", p.source, err)
	}
	if m == nil {
		return "", false, nil
	}
	return m.String(), true, nil
}

// Rules are the optional refinement patterns of one attribute
type Rules struct {
	Remove *Pattern
	Select *Pattern
}

// Empty reports whether no pattern is set
func (r Rules) Empty() bool {
	return r.Remove == nil && r.Select == nil
}

// Apply runs the rules against value
func (r Rules) Apply(value string) (string, error) {
	return Apply(value, r.Remove, r.Select)
}

// Apply removes every match of remove from value, then replaces value with
// the first match of sel. Either pattern may be nil. When sel does not
// match, the value after removal is returned unchanged.
func Apply(value string, remove, sel *Pattern) (string, error) {
	if remove != nil {
		var err error
		value, err = remove.RemoveAll(value)
		if err != nil {
			return value, err
		}
	}

	if sel != nil {
		match, ok, err := sel.First(value)
		if err != nil {
			return value, err
		}
		if ok {
			value = match
		}
	}

	return value, nil
}

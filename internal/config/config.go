// Package config resolves command-line settings and checks them before any
// document is touched.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"

	"github.com/pyhub-apps/pdftemplate/pkg/textrun"
)

var (
	// ErrConflict: two flags that exclude each other were both given
	ErrConflict = errors.New("conflicting flags")
	// ErrMissing: a required flag was not given
	ErrMissing = errors.New("required flag not set")
	// ErrInvalid: a flag value is out of range or points at the wrong thing
	ErrInvalid = errors.New("invalid flag value")
)

// Error names the flags behind a configuration problem
type Error struct {
	Flags []string
	Err   error
}

func (e *Error) Error() string {
	names := make([]string, len(e.Flags))
	for i, f := range e.Flags {
		names[i] = "--" + f
	}
	return fmt.Sprintf("%s: %v", strings.Join(names, ", "), e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func flagError(err error, flags ...string) *Error {
	return &Error{Flags: flags, Err: err}
}

// Tolerance flag names
const (
	FlagTolerance  = "tolerance"
	FlagXTolerance = "x-tolerance"
	FlagYTolerance = "y-tolerance"
)

// ToleranceFlags binds the combined and per-axis tolerance flags
type ToleranceFlags struct {
	fs       *pflag.FlagSet
	combined float64
	x        float64
	y        float64
}

// RegisterTolerance adds the tolerance flags to fs
func RegisterTolerance(fs *pflag.FlagSet, def float64) *ToleranceFlags {
	f := &ToleranceFlags{fs: fs}
	fs.Float64Var(&f.combined, FlagTolerance, def, "tolerance on both axes")
	fs.Float64Var(&f.x, FlagXTolerance, def, "horizontal tolerance")
	fs.Float64Var(&f.y, FlagYTolerance, def, "vertical tolerance")
	return f
}

// Resolve returns the effective tolerance. The combined flag may not be
// mixed with a per-axis flag; unset axes keep def.
func (f *ToleranceFlags) Resolve(def float64) (textrun.Tolerance, error) {
	combinedSet := f.fs.Changed(FlagTolerance)
	xSet := f.fs.Changed(FlagXTolerance)
	ySet := f.fs.Changed(FlagYTolerance)

	if combinedSet && (xSet || ySet) {
		axis := FlagXTolerance
		if !xSet {
			axis = FlagYTolerance
		}
		return textrun.Tolerance{}, flagError(ErrConflict, FlagTolerance, axis)
	}

	tol := textrun.Uniform(def)
	switch {
	case combinedSet:
		if err := checkTolerance(FlagTolerance, f.combined); err != nil {
			return textrun.Tolerance{}, err
		}
		tol = textrun.Uniform(f.combined)
	default:
		if xSet {
			if err := checkTolerance(FlagXTolerance, f.x); err != nil {
				return textrun.Tolerance{}, err
			}
			tol.X = f.x
		}
		if ySet {
			if err := checkTolerance(FlagYTolerance, f.y); err != nil {
				return textrun.Tolerance{}, err
			}
			tol.Y = f.y
		}
	}
	return tol, nil
}

func checkTolerance(flag string, v float64) error {
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return flagError(fmt.Errorf("%w: tolerance must be a non-negative number, got %v", ErrInvalid, v), flag)
	}
	return nil
}

// RequireDir checks that path names an existing directory
func RequireDir(flag, path string) error {
	if path == "" {
		return flagError(ErrMissing, flag)
	}
	info, err := os.Stat(path)
	if err != nil {
		return flagError(fmt.Errorf("%w: %v", ErrInvalid, err), flag)
	}
	if !info.IsDir() {
		return flagError(fmt.Errorf("%w: %s is not a directory", ErrInvalid, path), flag)
	}
	return nil
}

// RequireFile checks that path names a readable regular file
func RequireFile(flag, path string) error {
	if path == "" {
		return flagError(ErrMissing, flag)
	}
	f, err := os.Open(path)
	if err != nil {
		return flagError(fmt.Errorf("%w: %v", ErrInvalid, err), flag)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return flagError(fmt.Errorf("%w: %v", ErrInvalid, err), flag)
	}
	if info.IsDir() {
		return flagError(fmt.Errorf("%w: %s is a directory", ErrInvalid, path), flag)
	}
	return nil
}

// RequireOutput checks that the directory path would be written into exists
func RequireOutput(flag, path string) error {
	if path == "" {
		return flagError(ErrMissing, flag)
	}
	dir := filepath.Dir(path)
	info, err := os.Stat(dir)
	if err != nil {
		return flagError(fmt.Errorf("%w: output directory: %v", ErrInvalid, err), flag)
	}
	if !info.IsDir() {
		return flagError(fmt.Errorf("%w: %s is not a directory", ErrInvalid, dir), flag)
	}
	return nil
}

// RequirePositive checks a count flag
func RequirePositive(flag string, n int) error {
	if n <= 0 {
		return flagError(fmt.Errorf("%w: must be greater than zero, got %d", ErrInvalid, n), flag)
	}
	return nil
}

package textrun

import (
	"fmt"
	"math"
)

// Default tolerances. Discovery tolerates more jitter than extraction.
const (
	DefaultApplyTolerance  = 3.0
	DefaultCreateTolerance = 5.0
)

// Tolerance is the maximum per-axis distance between two positions
// for them to be considered the same field
type Tolerance struct {
	X float64
	Y float64
}

// Uniform returns a tolerance with the same value on both axes
func Uniform(v float64) Tolerance {
	return Tolerance{X: v, Y: v}
}

// Validate rejects negative or NaN tolerances
func (t Tolerance) Validate() error {
	if t.X < 0 || math.IsNaN(t.X) {
		return fmt.Errorf("x tolerance must be a non-negative number, got %v", t.X)
	}
	if t.Y < 0 || math.IsNaN(t.Y) {
		return fmt.Errorf("y tolerance must be a non-negative number, got %v", t.Y)
	}
	return nil
}

// Matches reports whether (x1, y1) lies within the tolerance of (x0, y0).
// A distance exactly equal to the tolerance matches.
func (t Tolerance) Matches(x0, y0, x1, y1 float64) bool {
	return math.Abs(x0-x1) <= t.X && math.Abs(y0-y1) <= t.Y
}

// String formats the tolerance as "x/y"
func (t Tolerance) String() string {
	return fmt.Sprintf("%g/%g", t.X, t.Y)
}

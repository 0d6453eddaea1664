package geometry

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptySequence is returned when a code sequence has no element.
	ErrEmptySequence = errors.New("code sequence is empty")

	// ErrNegativeCode is returned when a code sequence holds a negative value.
	ErrNegativeCode = errors.New("code sequence holds a negative value")
)

// CodeArray is an immutable, non-empty sequence of non-negative codes.
type CodeArray struct {
	codes    []int
	min, max int
}

// NewCodeArray validates codes and returns a CodeArray holding a copy of them.
func NewCodeArray(codes []int) (CodeArray, error) {
	if len(codes) == 0 {
		return CodeArray{}, ErrEmptySequence
	}
	for i, c := range codes {
		if c < 0 {
			return CodeArray{}, fmt.Errorf("code %d at index %d: %w", c, i, ErrNegativeCode)
		}
	}
	return newCodeArray(append([]int(nil), codes...)), nil
}

// newCodeArray takes ownership of codes, which must be valid.
func newCodeArray(codes []int) CodeArray {
	lo, hi := codes[0], codes[0]
	for _, c := range codes[1:] {
		lo = min(lo, c)
		hi = max(hi, c)
	}
	return CodeArray{codes: codes, min: lo, max: hi}
}

// Len returns the number of codes.
func (c CodeArray) Len() int { return len(c.codes) }

// At returns the code at index i.
func (c CodeArray) At(i int) int { return c.codes[i] }

// Values returns a copy of the codes.
func (c CodeArray) Values() []int { return append([]int(nil), c.codes...) }

// Min returns the smallest code.
func (c CodeArray) Min() int { return c.min }

// Max returns the largest code.
func (c CodeArray) Max() int { return c.max }

// Height returns Max - Min.
func (c CodeArray) Height() int { return c.max - c.min }

// IsConstant reports whether all codes are equal.
func (c CodeArray) IsConstant() bool { return c.Height() == 0 }

// IsReducible reports whether the sequence can be turned into a binary one.
func (c CodeArray) IsReducible() bool { return c.Height() < 2 }

// IsStrictlyReducible reports whether the sequence takes exactly two values
// one apart, the only shape a reduction step accepts.
func (c CodeArray) IsStrictlyReducible() bool { return c.Height() == 1 }

// Sum returns the sum of all codes.
func (c CodeArray) Sum() int {
	var s int
	for _, v := range c.codes {
		s += v
	}
	return s
}

// Equal reports whether both sequences hold the same codes.
func (c CodeArray) Equal(other CodeArray) bool {
	if len(c.codes) != len(other.codes) {
		return false
	}
	for i, v := range c.codes {
		if other.codes[i] != v {
			return false
		}
	}
	return true
}

// String implements fmt.Stringer.
func (c CodeArray) String() string {
	return fmt.Sprint(c.codes)
}

// ToBoolArray maps every code v to (v - Min) == 1. It panics unless the
// sequence is reducible.
func (c CodeArray) ToBoolArray() BoolArray {
	if !c.IsReducible() {
		panic(fmt.Sprintf("geometry: code sequence %v is not reducible", c.codes))
	}
	bits := make([]bool, len(c.codes))
	for i, v := range c.codes {
		bits[i] = v-c.min == 1
	}
	return BoolArray{bits: bits}
}

// Package calendar provides calendrical schemas whose year and month
// arithmetic is driven by quasi-affine forms derived from code sequences.
package calendar

import (
	"errors"
	"fmt"

	"github.com/zapponejosh/calendrical/internal/geometry"
)

// ErrNotSegment is returned when a code sequence is not the code of a
// digital straight line segment and so has no quasi-affine form.
var ErrNotSegment = errors.New("code sequence is not a digital straight line segment")

// Cycle is a periodic code sequence, e.g. the lengths of the years of a
// leap-year cycle, together with the form that reproduces one period.
type Cycle struct {
	length int
	total  int
	form   geometry.QuasiAffineForm
}

// NewCycle derives the form of one period of codes. Every code must be
// positive.
func NewCycle(codes []int) (Cycle, error) {
	for i, c := range codes {
		if c < 1 {
			return Cycle{}, fmt.Errorf("cycle code %d at index %d: must be positive", c, i)
		}
	}
	form, err := segmentForm(codes)
	if err != nil {
		return Cycle{}, err
	}
	return Cycle{length: len(codes), total: form.ValueAt(len(codes)), form: form}, nil
}

// segmentForm runs the reduction on codes and returns the form it finds.
func segmentForm(codes []int) (geometry.QuasiAffineForm, error) {
	form, ok, err := geometry.TryConvertCodeToForm(codes)
	if err != nil {
		return geometry.QuasiAffineForm{}, fmt.Errorf("derive form of %v: %w", codes, err)
	}
	if !ok {
		return geometry.QuasiAffineForm{}, fmt.Errorf("derive form of %v: %w", codes, ErrNotSegment)
	}
	return form, nil
}

// Length returns the number of codes in one period.
func (c Cycle) Length() int { return c.length }

// Total returns the sum of one period.
func (c Cycle) Total() int { return c.total }

// Form returns the form of one period.
func (c Cycle) Form() geometry.QuasiAffineForm { return c.form }

// CountBefore returns the sum of the codes before index i; i may be negative.
func (c Cycle) CountBefore(i int) int {
	q, r := geometry.FloorDiv(i, c.length), geometry.FloorMod(i, c.length)
	return q*c.total + c.form.ValueAt(r)
}

// Locate returns the index i such that CountBefore(i) <= n < CountBefore(i+1)
// and the remainder n - CountBefore(i).
func (c Cycle) Locate(n int) (i, rem int) {
	q, r := geometry.FloorDiv(n, c.total), geometry.FloorMod(n, c.total)
	x, rem := c.form.DivideRem(r)
	return q*c.length + x, rem
}

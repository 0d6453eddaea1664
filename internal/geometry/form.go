// Package geometry implements the discrete geometry behind calendrical
// schemas: quasi-affine forms and the Troesch reduction that recognises a
// periodic code sequence as a segment of a digital straight line.
package geometry

import (
	"errors"
	"fmt"
)

// ErrZeroCoefficient is returned when a form is built with A == 0 or B == 0.
var ErrZeroCoefficient = errors.New("quasi-affine form coefficients must be non-zero")

// QuasiAffineForm is the function x -> floor((A*x + R) / B).
//
// The zero value is not a valid form; use NewQuasiAffineForm.
type QuasiAffineForm struct {
	a, b, r int
}

// NewQuasiAffineForm creates the form (a, b, r).
func NewQuasiAffineForm(a, b, r int) (QuasiAffineForm, error) {
	if a == 0 || b == 0 {
		return QuasiAffineForm{}, fmt.Errorf("new form (%d, %d, %d): %w", a, b, r, ErrZeroCoefficient)
	}
	return QuasiAffineForm{a: a, b: b, r: r}, nil
}

// MustForm is like NewQuasiAffineForm but panics on invalid coefficients.
// Intended for constants and tests.
func MustForm(a, b, r int) QuasiAffineForm {
	f, err := NewQuasiAffineForm(a, b, r)
	if err != nil {
		panic(err)
	}
	return f
}

// ConstantForm returns the form (n, 1, 0) of the constant code sequence n,
// i.e. x -> n*x. For n == 0 the form is degenerate: IsValid reports false
// and it has no usable Reverse.
func ConstantForm(n int) QuasiAffineForm {
	return QuasiAffineForm{a: n, b: 1, r: 0}
}

// A returns the numerator coefficient.
func (f QuasiAffineForm) A() int { return f.a }

// B returns the denominator.
func (f QuasiAffineForm) B() int { return f.b }

// R returns the remainder term.
func (f QuasiAffineForm) R() int { return f.r }

// IsValid reports whether the form satisfies A != 0 and B != 0.
func (f QuasiAffineForm) IsValid() bool { return f.a != 0 && f.b != 0 }

// String implements fmt.Stringer.
func (f QuasiAffineForm) String() string {
	return fmt.Sprintf("(%d, %d, %d)", f.a, f.b, f.r)
}

// ValueAt returns floor((A*x + R) / B), rounding toward negative infinity.
func (f QuasiAffineForm) ValueAt(x int) int {
	return FloorDiv(f.a*x+f.r, f.b)
}

// CodeAt returns ValueAt(x+1) - ValueAt(x).
func (f QuasiAffineForm) CodeAt(x int) int {
	return f.ValueAt(x+1) - f.ValueAt(x)
}

// Reverse returns the form (B, A, B - 1 - R). For A/B > 0 it maps n to the
// largest x such that ValueAt(x) <= n.
func (f QuasiAffineForm) Reverse() QuasiAffineForm {
	return QuasiAffineForm{a: f.b, b: f.a, r: f.b - 1 - f.r}
}

// Divide returns the largest x such that ValueAt(x) <= n.
func (f QuasiAffineForm) Divide(n int) int {
	return f.Reverse().ValueAt(n)
}

// DivideRem is Divide returning also the remainder n - ValueAt(x), so that
// n == ValueAt(x) + rem.
func (f QuasiAffineForm) DivideRem(n int) (x, rem int) {
	x = f.Divide(n)
	return x, n - f.ValueAt(x)
}

// Normalize reduces R modulo B so that ValueAt(0) == 0. The codes of the
// form are unchanged.
func (f QuasiAffineForm) Normalize() QuasiAffineForm {
	return QuasiAffineForm{a: f.a, b: f.b, r: FloorMod(f.r, f.b)}
}

// IsNormalized reports whether ValueAt(0) == 0.
func (f QuasiAffineForm) IsNormalized() bool {
	return f.r == FloorMod(f.r, f.b)
}

// -----------------------------------------------------------------
// Elementary plane transformations
// -----------------------------------------------------------------

// Shear applies the vertical shear (x, y) -> (x, y + p*x):
// the result is x -> ValueAt(x) + p*x.
func (f QuasiAffineForm) Shear(p int) QuasiAffineForm {
	return QuasiAffineForm{a: f.a + p*f.b, b: f.b, r: f.r}
}

// ObliqueSymmetry reflects the graph through the line y = x/2:
// the result is x -> x - ValueAt(x). It is its own inverse.
func (f QuasiAffineForm) ObliqueSymmetry() QuasiAffineForm {
	return QuasiAffineForm{a: f.b - f.a, b: f.b, r: f.b - 1 - f.r}
}

// OrthogonalSymmetry reflects the graph through y = x, keeping the lower
// inverse: n -> smallest x such that ValueAt(x) >= n.
func (f QuasiAffineForm) OrthogonalSymmetry() QuasiAffineForm {
	return QuasiAffineForm{a: f.b, b: f.a, r: f.a - 1 - f.r}
}

// OrthogonalSymmetryBack reflects the graph through y = x, keeping the upper
// inverse: n -> largest x such that ValueAt(x) <= n. It undoes
// OrthogonalSymmetry exactly.
func (f QuasiAffineForm) OrthogonalSymmetryBack() QuasiAffineForm {
	return QuasiAffineForm{a: f.b, b: f.a, r: f.b - 1 - f.r}
}

// Translate moves the graph by x0 along the x axis and moves the origin back
// onto it: the result is x -> ValueAt(x - x0) - ValueAt(-x0), with R reduced
// modulo B.
func (f QuasiAffineForm) Translate(x0 int) QuasiAffineForm {
	return QuasiAffineForm{a: f.a, b: f.b, r: FloorMod(f.r-f.a*x0, f.b)}
}

// FloorDiv divides rounding toward negative infinity.
func FloorDiv(n, d int) int {
	q := n / d
	if (n%d != 0) && ((n < 0) != (d < 0)) {
		q--
	}
	return q
}

// FloorMod returns n - d*FloorDiv(n, d); the result has the sign of d.
func FloorMod(n, d int) int {
	m := n % d
	if m != 0 && ((m < 0) != (d < 0)) {
		m += d
	}
	return m
}

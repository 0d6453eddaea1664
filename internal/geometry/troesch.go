package geometry

import "fmt"

// TroeschMap records one reduction step: the code sequence was sheared by
// Shear, complemented when Complement is set, and its minor initial slice of
// length Translate was dropped.
type TroeschMap struct {
	Shear      int  `json:"shear"`
	Complement bool `json:"complement"`
	Translate  int  `json:"translate"`
}

// String implements fmt.Stringer.
func (m TroeschMap) String() string {
	return fmt.Sprintf("{shear: %d, complement: %t, translate: %d}", m.Shear, m.Complement, m.Translate)
}

// Apply maps the form of a code sequence to the form of the sequence
// produced by this step. It is the closed form of Transform.
func (m TroeschMap) Apply(f QuasiAffineForm) QuasiAffineForm {
	a, r := f.a-m.Shear*f.b, f.r
	if m.Complement {
		a, r = f.b*(m.Shear+1)-f.a, f.b-1-f.r
	}
	r = FloorMod(r+a*m.Translate, f.b)
	return QuasiAffineForm{a: f.b, b: a, r: a - 1 - r}
}

// ApplyBack maps the form of the reduced sequence back to the form of the
// sequence this step was taken from. It is the exact inverse of Apply on
// normalized forms and the closed form of TransformBack.
func (m TroeschMap) ApplyBack(f QuasiAffineForm) QuasiAffineForm {
	r := FloorMod(f.b-1-f.r-f.b*m.Translate, f.a)
	if m.Complement {
		return QuasiAffineForm{a: (m.Shear+1)*f.a - f.b, b: f.a, r: f.a - 1 - r}
	}
	return QuasiAffineForm{a: f.b + m.Shear*f.a, b: f.a, r: r}
}

// Transform is Apply written as the composition of the elementary
// transformations.
func (m TroeschMap) Transform(f QuasiAffineForm) QuasiAffineForm {
	f = f.Shear(-m.Shear)
	if m.Complement {
		f = f.ObliqueSymmetry()
	}
	return f.Translate(-m.Translate).OrthogonalSymmetry()
}

// TransformBack is ApplyBack written as the composition of the elementary
// transformations, in the reverse order of Transform.
func (m TroeschMap) TransformBack(f QuasiAffineForm) QuasiAffineForm {
	f = f.OrthogonalSymmetryBack().Translate(m.Translate)
	if m.Complement {
		f = f.ObliqueSymmetry()
	}
	return f.Shear(m.Shear)
}

// reduce performs one reduction step on a strictly reducible sequence and
// returns the next, strictly shorter, sequence with the step taken.
func reduce(code CodeArray) (CodeArray, TroeschMap) {
	if !code.IsStrictlyReducible() {
		panic(fmt.Sprintf("geometry: reduce called on %v which is not strictly reducible", code))
	}

	bin := code.ToBoolArray()
	negated := !bin.IsTrueIsolated()
	if negated {
		bin = bin.Negate()
	}

	next, g := bin.Slice().RemoveMinorExternals()
	if next.Len() >= code.Len() {
		panic(fmt.Sprintf("geometry: reduction of %v did not shrink (%v)", code, next))
	}

	return next, TroeschMap{Shear: code.Min(), Complement: negated, Translate: g}
}

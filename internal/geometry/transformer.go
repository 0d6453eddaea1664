package geometry

// Transformer carries quasi-affine forms through a chain of reduction steps.
type Transformer struct {
	steps []TroeschMap
}

// NewTransformer returns a Transformer over a copy of steps.
func NewTransformer(steps []TroeschMap) Transformer {
	return Transformer{steps: append([]TroeschMap(nil), steps...)}
}

// Steps returns a copy of the chain.
func (t Transformer) Steps() []TroeschMap {
	return append([]TroeschMap(nil), t.steps...)
}

// Apply pushes f forward through every step, first to last.
func (t Transformer) Apply(f QuasiAffineForm) QuasiAffineForm {
	for _, m := range t.steps {
		f = m.Apply(f)
	}
	return f
}

// ApplyBack pulls f back through every step, last to first.
func (t Transformer) ApplyBack(f QuasiAffineForm) QuasiAffineForm {
	for i := len(t.steps) - 1; i >= 0; i-- {
		f = t.steps[i].ApplyBack(f)
	}
	return f
}

// Transform is Apply using the explicit compositions.
func (t Transformer) Transform(f QuasiAffineForm) QuasiAffineForm {
	for _, m := range t.steps {
		f = m.Transform(f)
	}
	return f
}

// TransformBack is ApplyBack using the explicit compositions.
func (t Transformer) TransformBack(f QuasiAffineForm) QuasiAffineForm {
	for i := len(t.steps) - 1; i >= 0; i-- {
		f = t.steps[i].TransformBack(f)
	}
	return f
}

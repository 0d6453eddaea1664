package geometry

// Analysis is the record of a complete reduction: Codes[0] is the input,
// Codes[i+1] is Steps[i] applied to Codes[i], and the last code sequence is
// the one no further step applies to.
type Analysis struct {
	Codes []CodeArray
	Steps []TroeschMap
}

// Analyze reduces codes until the current sequence is no longer strictly
// reducible.
func Analyze(codes []int) (*Analysis, error) {
	code, err := NewCodeArray(codes)
	if err != nil {
		return nil, err
	}
	return AnalyzeCode(code), nil
}

// AnalyzeCode is Analyze for an already validated sequence.
func AnalyzeCode(code CodeArray) *Analysis {
	a := &Analysis{Codes: []CodeArray{code}}
	for code.IsStrictlyReducible() {
		var step TroeschMap
		code, step = reduce(code)
		a.Codes = append(a.Codes, code)
		a.Steps = append(a.Steps, step)
	}
	return a
}

// Input returns the analysed sequence.
func (a *Analysis) Input() CodeArray { return a.Codes[0] }

// Terminal returns the sequence the reduction stopped on.
func (a *Analysis) Terminal() CodeArray { return a.Codes[len(a.Codes)-1] }

// Successful reports whether the reduction ended on a constant sequence,
// i.e. whether the input is the code of a digital straight line segment.
func (a *Analysis) Successful() bool { return a.Terminal().IsConstant() }

// Form returns the quasi-affine form reproducing the input sequence. ok is
// false when the analysis did not succeed.
func (a *Analysis) Form() (form QuasiAffineForm, ok bool) {
	if !a.Successful() {
		return QuasiAffineForm{}, false
	}
	return NewTransformer(a.Steps).ApplyBack(ConstantForm(a.Terminal().Min())), true
}

// TryConvertCodeToForm returns the quasi-affine form f whose codes
// f.CodeAt(0), ..., f.CodeAt(len(codes)-1) are codes, with f.ValueAt(0) == 0.
// ok is false when codes is not the code of a digital straight line segment.
func TryConvertCodeToForm(codes []int) (form QuasiAffineForm, ok bool, err error) {
	a, err := Analyze(codes)
	if err != nil {
		return QuasiAffineForm{}, false, err
	}
	form, ok = a.Form()
	return form, ok, nil
}

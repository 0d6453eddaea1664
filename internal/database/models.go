package database

import (
	"time"

	"github.com/zapponejosh/calendrical/internal/geometry"
)

// Form is the stored (a, b, r) triple of a quasi-affine form.
type Form struct {
	A int `json:"a" validate:"ne=0"`
	B int `json:"b" validate:"ne=0"`
	R int `json:"r"`
}

// QuasiAffineForm converts the stored triple back to a form.
func (f Form) QuasiAffineForm() (geometry.QuasiAffineForm, error) {
	return geometry.NewQuasiAffineForm(f.A, f.B, f.R)
}

// Analysis is a stored analysis of a code sequence.
type Analysis struct {
	ID         int64                 `json:"id"`
	Codes      []int                 `json:"codes"`
	Successful bool                  `json:"successful"`
	Form       *Form                 `json:"form,omitempty"` // nil if not successful
	Steps      []geometry.TroeschMap `json:"steps"`
	Terminal   []int                 `json:"terminal"`
	CreatedAt  time.Time             `json:"created_at"`
	UpdatedAt  time.Time             `json:"updated_at"`
}

// NewAnalysis builds the record of an analysis.
func NewAnalysis(a *geometry.Analysis) *Analysis {
	rec := &Analysis{
		Codes:      a.Input().Values(),
		Successful: a.Successful(),
		Steps:      append([]geometry.TroeschMap{}, a.Steps...),
		Terminal:   a.Terminal().Values(),
	}
	if f, ok := a.Form(); ok {
		rec.Form = &Form{A: f.A(), B: f.B(), R: f.R()}
	}
	return rec
}

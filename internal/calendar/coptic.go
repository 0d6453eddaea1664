package calendar

import (
	"fmt"

	"github.com/zapponejosh/calendrical/internal/geometry"
)

// thirtyDays is the arithmetic shared by the schemas made of twelve months of
// thirty days followed by a short thirteenth month of epagomenal days.
type thirtyDays struct {
	years  Cycle
	months geometry.QuasiAffineForm
}

func newThirtyDays(yearCodes []int) (*thirtyDays, error) {
	years, err := NewCycle(yearCodes)
	if err != nil {
		return nil, fmt.Errorf("year cycle: %w", err)
	}
	months, err := segmentForm([]int{30})
	if err != nil {
		return nil, fmt.Errorf("month form: %w", err)
	}
	return &thirtyDays{years: years, months: months}, nil
}

func (t *thirtyDays) countDays(year, month, day int) int {
	return t.years.CountBefore(year-1) + t.months.ValueAt(month-1) + day - 1
}

func (t *thirtyDays) dateParts(dayNumber int) (year, month, day int) {
	y, rem := t.years.Locate(dayNumber)
	m, rem := t.months.DivideRem(rem)
	return y + 1, m + 1, rem + 1
}

func (t *thirtyDays) forms() []NamedForm {
	return []NamedForm{
		{Name: "years", Form: t.years.Form()},
		{Name: "months", Form: t.months},
	}
}

// NewCopticSchema returns the coptic schema. Year y is leap when y mod 4 is
// 3; its day 0 is julian 284-08-29.
func NewCopticSchema() (Schema, error) {
	arith, err := newThirtyDays([]int{365, 365, 366, 365})
	if err != nil {
		return nil, fmt.Errorf("coptic schema: %w", err)
	}
	return &schema{
		id:           "coptic",
		name:         "Coptic",
		epoch:        103604,
		monthsInYear: 13,
		leapLength:   366,
		arith:        arith,
	}, nil
}

// NewEgyptianSchema returns the vague year of the Egyptian civil calendar,
// 365 days every year, counted from the era of Nabonassar.
func NewEgyptianSchema() (Schema, error) {
	arith, err := newThirtyDays([]int{365})
	if err != nil {
		return nil, fmt.Errorf("egyptian schema: %w", err)
	}
	return &schema{
		id:           "egyptian",
		name:         "Egyptian",
		epoch:        -272788,
		monthsInYear: 13,
		leapLength:   366,
		arith:        arith,
	}, nil
}

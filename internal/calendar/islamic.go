package calendar

import (
	"fmt"

	"github.com/zapponejosh/calendrical/internal/geometry"
)

// islamicLeapYears are the leap years of the 30-year tabular cycle.
var islamicLeapYears = []int{2, 5, 7, 10, 13, 16, 18, 21, 24, 26, 29}

type tabularIslamic struct {
	years  Cycle
	months geometry.QuasiAffineForm
}

func islamicYearCodes() []int {
	codes := make([]int, 30)
	for i := range codes {
		codes[i] = 354
	}
	for _, y := range islamicLeapYears {
		codes[y-1] = 355
	}
	return codes
}

func (t *tabularIslamic) countDays(year, month, day int) int {
	return t.years.CountBefore(year-1) + t.months.ValueAt(month-1) + day - 1
}

func (t *tabularIslamic) dateParts(dayNumber int) (year, month, day int) {
	y, rem := t.years.Locate(dayNumber)
	m, r := t.months.DivideRem(rem)
	// The month form yields 29 days for the twelfth month; the leap day
	// lands on the thirteenth index and belongs to the twelfth month.
	if m == 12 {
		m, r = 11, rem-t.months.ValueAt(11)
	}
	return y + 1, m + 1, r + 1
}

func (t *tabularIslamic) forms() []NamedForm {
	return []NamedForm{
		{Name: "years", Form: t.years.Form()},
		{Name: "months", Form: t.months},
	}
}

// NewTabularIslamicSchema returns the arithmetical Islamic calendar with
// the civil epoch, julian 622-07-16.
func NewTabularIslamicSchema() (Schema, error) {
	years, err := NewCycle(islamicYearCodes())
	if err != nil {
		return nil, fmt.Errorf("tabular islamic schema: year cycle: %w", err)
	}
	months, err := segmentForm([]int{30, 29, 30, 29, 30, 29, 30, 29, 30, 29, 30, 29})
	if err != nil {
		return nil, fmt.Errorf("tabular islamic schema: month form: %w", err)
	}
	return &schema{
		id:           "tabular-islamic",
		name:         "Tabular Islamic",
		epoch:        227014,
		monthsInYear: 12,
		leapLength:   355,
		arith:        &tabularIslamic{years: years, months: months},
	}, nil
}

package calendar

import (
	"fmt"

	"github.com/zapponejosh/calendrical/internal/geometry"
)

// marchOffset is the number of days from March 1 of year 0 to January 1 of
// year 1 in both the gregorian and julian schemas.
const marchOffset = 306

// Lengths of the months March through January. February closes the
// March-based year, so its length is whatever is left of the year.
var marchToJanuary = []int{31, 30, 31, 30, 31, 31, 30, 31, 30, 31, 31}

// marchBased counts days in a year starting on March 1, which puts the leap
// day at the end of the year. Centuries are only used by the gregorian
// schema.
type marchBased struct {
	centuries *Cycle
	years     Cycle
	months    geometry.QuasiAffineForm
}

func newMarchBased(gregorian bool) (*marchBased, error) {
	years, err := NewCycle([]int{365, 365, 365, 366})
	if err != nil {
		return nil, fmt.Errorf("year cycle: %w", err)
	}
	months, err := segmentForm(marchToJanuary)
	if err != nil {
		return nil, fmt.Errorf("month form: %w", err)
	}

	m := &marchBased{years: years, months: months}
	if gregorian {
		centuries, err := NewCycle([]int{36524, 36524, 36524, 36525})
		if err != nil {
			return nil, fmt.Errorf("century cycle: %w", err)
		}
		m.centuries = &centuries
	}
	return m, nil
}

// shiftYear maps a January-based (year, month) to the March-based year and
// the month index counted from March.
func shiftYear(year, month int) (y0, m0 int) {
	if month < 3 {
		return year - 1, month + 9
	}
	return year, month - 3
}

func (m *marchBased) daysBeforeYear(y0 int) int {
	if m.centuries == nil {
		return m.years.CountBefore(y0)
	}
	c, y := geometry.FloorDiv(y0, 100), geometry.FloorMod(y0, 100)
	return m.centuries.CountBefore(c) + m.years.CountBefore(y)
}

func (m *marchBased) countDays(year, month, day int) int {
	y0, m0 := shiftYear(year, month)
	return m.daysBeforeYear(y0) + m.months.ValueAt(m0) + day - 1 - marchOffset
}

func (m *marchBased) dateParts(dayNumber int) (year, month, day int) {
	n := dayNumber + marchOffset

	var y0, rem int
	if m.centuries == nil {
		y0, rem = m.years.Locate(n)
	} else {
		c, r := m.centuries.Locate(n)
		y, r := m.years.Locate(r)
		y0, rem = 100*c+y, r
	}

	m0, rem := m.months.DivideRem(rem)
	if m0 >= 10 {
		return y0 + 1, m0 - 9, rem + 1
	}
	return y0, m0 + 3, rem + 1
}

func (m *marchBased) forms() []NamedForm {
	forms := []NamedForm{
		{Name: "years", Form: m.years.Form()},
		{Name: "months", Form: m.months},
	}
	if m.centuries != nil {
		forms = append([]NamedForm{{Name: "centuries", Form: m.centuries.Form()}}, forms...)
	}
	return forms
}

// NewGregorianSchema returns the proleptic gregorian schema. Its day 0 is
// 0001-01-01, a Monday.
func NewGregorianSchema() (Schema, error) {
	arith, err := newMarchBased(true)
	if err != nil {
		return nil, fmt.Errorf("gregorian schema: %w", err)
	}
	return &schema{
		id:           "gregorian",
		name:         "Gregorian",
		epoch:        0,
		monthsInYear: 12,
		leapLength:   366,
		arith:        arith,
	}, nil
}

// NewJulianSchema returns the proleptic julian schema.
func NewJulianSchema() (Schema, error) {
	arith, err := newMarchBased(false)
	if err != nil {
		return nil, fmt.Errorf("julian schema: %w", err)
	}
	return &schema{
		id:           "julian",
		name:         "Julian",
		epoch:        -2,
		monthsInYear: 12,
		leapLength:   366,
		arith:        arith,
	}, nil
}

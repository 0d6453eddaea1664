package calendar

import (
	"github.com/zapponejosh/calendrical/internal/geometry"
)

// Schema is a calendrical schema: the rules that map a (year, month, day)
// triple to a count of days and back. Day numbers are local to the schema,
// day 0 being the first day of year 1.
type Schema interface {
	ID() string
	Name() string
	// Epoch returns day 0 of the schema as a gregorian day number.
	Epoch() int
	MonthsInYear(year int) int
	DaysInYear(year int) int
	DaysInMonth(year, month int) int
	IsLeapYear(year int) bool
	CountDaysSinceEpoch(year, month, day int) int
	GetDateParts(dayNumber int) (year, month, day int)
	// Forms lists the quasi-affine forms the schema was built from.
	Forms() []NamedForm
}

// NamedForm labels a form used by a schema.
type NamedForm struct {
	Name string
	Form geometry.QuasiAffineForm
}

// arithmetic is what a concrete schema has to provide; schema derives the
// rest from it.
type arithmetic interface {
	countDays(year, month, day int) int
	dateParts(dayNumber int) (year, month, day int)
	forms() []NamedForm
}

type schema struct {
	id           string
	name         string
	epoch        int
	monthsInYear int
	leapLength   int
	arith        arithmetic
}

func (s *schema) ID() string { return s.id }
func (s *schema) Name() string { return s.name }
func (s *schema) Epoch() int { return s.epoch }
func (s *schema) MonthsInYear(year int) int { return s.monthsInYear }
func (s *schema) Forms() []NamedForm { return s.arith.forms() }
func (s *schema) IsLeapYear(year int) bool { return s.DaysInYear(year) == s.leapLength }

func (s *schema) DaysInYear(year int) int {
	return s.CountDaysSinceEpoch(year+1, 1, 1) - s.CountDaysSinceEpoch(year, 1, 1)
}

func (s *schema) DaysInMonth(year, month int) int {
	if month >= s.monthsInYear {
		return s.CountDaysSinceEpoch(year+1, 1, 1) - s.CountDaysSinceEpoch(year, month, 1)
	}
	return s.CountDaysSinceEpoch(year, month+1, 1) - s.CountDaysSinceEpoch(year, month, 1)
}

func (s *schema) CountDaysSinceEpoch(year, month, day int) int {
	return s.arith.countDays(year, month, day)
}

func (s *schema) GetDateParts(dayNumber int) (year, month, day int) {
	return s.arith.dateParts(dayNumber)
}

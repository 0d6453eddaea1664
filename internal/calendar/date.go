package calendar

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"time"

	"github.com/zapponejosh/calendrical/internal/geometry"
)

// Supported years, in every schema.
const (
	MinYear = 1
	MaxYear = 9999
)

var (
	// ErrInvalidDate is returned for a month or day outside the year.
	ErrInvalidDate = errors.New("invalid date")
	// ErrOutOfRange is returned for a date outside the supported years.
	ErrOutOfRange = errors.New("date out of range")
	// ErrOverflow is returned when an offset cannot be added without
	// overflowing.
	ErrOverflow = errors.New("arithmetic overflow")
)

var datePattern = regexp.MustCompile(`^(\d{1,4})-(\d{1,2})-(\d{1,2})$`)

// Date is a day of a schema.
type Date struct {
	schema Schema
	year   int
	month  int
	day    int
}

// NewDate validates (year, month, day) against s.
func NewDate(s Schema, year, month, day int) (Date, error) {
	if year < MinYear || year > MaxYear {
		return Date{}, fmt.Errorf("%s year %d: %w", s.ID(), year, ErrOutOfRange)
	}
	if month < 1 || month > s.MonthsInYear(year) {
		return Date{}, fmt.Errorf("%s month %d: %w", s.ID(), month, ErrInvalidDate)
	}
	if day < 1 || day > s.DaysInMonth(year, month) {
		return Date{}, fmt.Errorf("%s %04d-%02d day %d: %w", s.ID(), year, month, day, ErrInvalidDate)
	}
	return Date{schema: s, year: year, month: month, day: day}, nil
}

// FromDayNumber returns the date with the given day number in s.
func FromDayNumber(s Schema, dayNumber int) (Date, error) {
	if dayNumber < 0 || dayNumber > maxDayNumber(s) {
		return Date{}, fmt.Errorf("%s day number %d: %w", s.ID(), dayNumber, ErrOutOfRange)
	}
	y, m, d := s.GetDateParts(dayNumber)
	return Date{schema: s, year: y, month: m, day: d}, nil
}

// ParseDate parses an ISO YYYY-MM-DD date in s.
func ParseDate(s Schema, text string) (Date, error) {
	matches := datePattern.FindStringSubmatch(text)
	if matches == nil {
		return Date{}, fmt.Errorf("parse %q: expected YYYY-MM-DD: %w", text, ErrInvalidDate)
	}

	parts := make([]int, 3)
	for i := range parts {
		n, err := strconv.Atoi(matches[i+1])
		if err != nil {
			return Date{}, fmt.Errorf("parse %q: %w", text, err)
		}
		parts[i] = n
	}
	return NewDate(s, parts[0], parts[1], parts[2])
}

func maxDayNumber(s Schema) int {
	return s.CountDaysSinceEpoch(MaxYear+1, 1, 1) - 1
}

func (d Date) Schema() Schema { return d.schema }
func (d Date) Year() int { return d.year }
func (d Date) Month() int { return d.month }
func (d Date) Day() int { return d.day }

// DayNumber returns the number of days since 0001-01-01 of the schema.
func (d Date) DayNumber() int {
	return d.schema.CountDaysSinceEpoch(d.year, d.month, d.day)
}

// absolute returns the date as a gregorian day number, the common scale
// between schemas.
func (d Date) absolute() int {
	return d.schema.Epoch() + d.DayNumber()
}

// DayOfWeek returns the day of the week. Gregorian day 0 is a Monday.
func (d Date) DayOfWeek() time.Weekday {
	return time.Weekday(geometry.FloorMod(d.absolute()+1, 7))
}

// AddDays returns the date n days later (earlier for negative n).
func (d Date) AddDays(n int) (Date, error) {
	dn := d.DayNumber()
	if (n > 0 && dn > math.MaxInt-n) || (n < 0 && dn < math.MinInt-n) {
		return Date{}, fmt.Errorf("%v + %d days: %w", d, n, ErrOverflow)
	}
	return FromDayNumber(d.schema, dn+n)
}

// AddMonths returns the date n months later, clamping the day to the end of
// the target month.
func (d Date) AddMonths(n int) (Date, error) {
	perYear := d.schema.MonthsInYear(d.year)
	if n > (MaxYear-MinYear+1)*perYear || n < -(MaxYear-MinYear+1)*perYear {
		return Date{}, fmt.Errorf("%v + %d months: %w", d, n, ErrOutOfRange)
	}
	idx := (d.year-1)*perYear + d.month - 1 + n
	return d.withClampedDay(geometry.FloorDiv(idx, perYear)+1, geometry.FloorMod(idx, perYear)+1)
}

// AddYears returns the same month and day n years later, clamping the day to
// the end of the month.
func (d Date) AddYears(n int) (Date, error) {
	if n > MaxYear-MinYear || n < -(MaxYear-MinYear) {
		return Date{}, fmt.Errorf("%v + %d years: %w", d, n, ErrOutOfRange)
	}
	return d.withClampedDay(d.year+n, d.month)
}

func (d Date) withClampedDay(year, month int) (Date, error) {
	if year < MinYear || year > MaxYear {
		return Date{}, fmt.Errorf("%s year %d: %w", d.schema.ID(), year, ErrOutOfRange)
	}
	return NewDate(d.schema, year, month, min(d.day, d.schema.DaysInMonth(year, month)))
}

// CountDaysSince returns the number of days from other to d. The dates may
// belong to different schemas.
func (d Date) CountDaysSince(other Date) int {
	return d.absolute() - other.absolute()
}

// ConvertTo returns the same day expressed in s.
func (d Date) ConvertTo(s Schema) (Date, error) {
	return FromDayNumber(s, d.absolute()-s.Epoch())
}

// Equal reports whether d and other are the same day in the same schema.
func (d Date) Equal(other Date) bool {
	return d.schema.ID() == other.schema.ID() && d.year == other.year && d.month == other.month && d.day == other.day
}

// String returns the date as YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, d.month, d.day)
}

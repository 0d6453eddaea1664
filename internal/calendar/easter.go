package calendar

import (
	"errors"
	"fmt"
	"time"
)

// ErrNoEaster is returned for schemas that have no paschal computus.
var ErrNoEaster = errors.New("no easter computus for calendar")

// Easter returns Easter Sunday of the given year, as a date of s. Only the
// gregorian and julian schemas are supported.
func Easter(s Schema, year int) (Date, error) {
	var month, day int
	switch s.ID() {
	case "gregorian":
		month, day = gregorianEaster(year)
	case "julian":
		month, day = julianEaster(year)
	default:
		return Date{}, fmt.Errorf("%s: %w", s.ID(), ErrNoEaster)
	}
	return NewDate(s, year, month, day)
}

// gregorianEaster uses the anonymous gregorian computus described by
// J.M. Oudin (1940).
func gregorianEaster(year int) (month, day int) {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month = (h + l - 7*m + 114) / 31
	day = (h+l-7*m+114)%31 + 1
	return month, day
}

// julianEaster is Meeus' julian computus; the result is a julian date.
func julianEaster(year int) (month, day int) {
	a := year % 4
	b := year % 7
	c := year % 19
	d := (19*c + 15) % 30
	e := (2*a + 4*b - d + 34) % 7
	month = (d + e + 114) / 31
	day = (d+e+114)%31 + 1
	return month, day
}

// MoveableFeasts are the feasts that follow Easter.
type MoveableFeasts struct {
	AshWednesday Date
	Easter       Date
	Ascension    Date
	Pentecost    Date
	Advent       Date
}

// Feasts computes the moveable feasts of year in s.
func Feasts(s Schema, year int) (MoveableFeasts, error) {
	easter, err := Easter(s, year)
	if err != nil {
		return MoveableFeasts{}, err
	}

	feasts := MoveableFeasts{Easter: easter}
	// Ash Wednesday is 46 days before Easter (40 days of Lent + 6 days of Holy Week).
	if feasts.AshWednesday, err = easter.AddDays(-46); err != nil {
		return MoveableFeasts{}, err
	}
	if feasts.Ascension, err = easter.AddDays(39); err != nil {
		return MoveableFeasts{}, err
	}
	if feasts.Pentecost, err = easter.AddDays(49); err != nil {
		return MoveableFeasts{}, err
	}

	// Advent Sunday is the fourth Sunday before Christmas, the Sunday on or
	// before December 3.
	dec3, err := NewDate(s, year, 12, 3)
	if err != nil {
		return MoveableFeasts{}, err
	}
	if feasts.Advent, err = dec3.AddDays(-int(dec3.DayOfWeek() - time.Sunday)); err != nil {
		return MoveableFeasts{}, err
	}
	return feasts, nil
}

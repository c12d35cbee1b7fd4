// Package calendar shapes the Hebrew calendar into the holiday and Torah
// reading schedule of a year. Date arithmetic is delegated to hebcal's hdate
// and greg packages, which count days as R.D. fixed day numbers.
package calendar

import (
	"fmt"
	"time"

	"github.com/hebcal/greg"
	"github.com/hebcal/hdate"
)

// EveningHour is the UTC hour at which a Hebrew day is considered to begin.
// Every instant produced by this package is anchored at this hour on the
// civil day preceding the Hebrew day it announces.
const EveningHour = 18

// Month is a Hebrew month. Months are numbered from Nisan; the year itself
// begins at Tishrei.
type Month int

const (
	Nisan Month = iota + 1
	Iyar
	Sivan
	Tammuz
	Av
	Elul
	Tishrei
	Cheshvan
	Kislev
	Teves
	Shvat
	Adar // Adar in a regular year, Adar Rishon in a leap year
	Adar2
)

// Adar1 names the first Adar of a leap year.
const Adar1 = Adar

var monthNames = map[Month]string{
	Nisan:    "Nisan",
	Iyar:     "Iyar",
	Sivan:    "Sivan",
	Tammuz:   "Tammuz",
	Av:       "Av",
	Elul:     "Elul",
	Tishrei:  "Tishrei",
	Cheshvan: "Cheshvan",
	Kislev:   "Kislev",
	Teves:    "Teves",
	Shvat:    "Shvat",
	Adar:     "Adar",
	Adar2:    "Adar2",
}

func (m Month) String() string {
	if name, ok := monthNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Month(%d)", int(m))
}

// MarshalText encodes the month by name.
func (m Month) MarshalText() ([]byte, error) {
	if _, ok := monthNames[m]; !ok {
		return nil, fmt.Errorf("invalid month %d", int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText accepts any spelling ParseMonth accepts.
func (m *Month) UnmarshalText(text []byte) error {
	parsed, err := ParseMonth(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// IsLeapYear reports whether year has thirteen months.
func IsLeapYear(year int) bool {
	return hdate.IsLeapYear(year)
}

// DaysInYear returns the length of year in days (353 to 385).
func DaysInYear(year int) int {
	return hdate.DaysInYear(year)
}

// DaysInMonth returns 29 or 30. The result for Adar2 in a regular year is
// meaningless; callers validate the month first.
func DaysInMonth(month Month, year int) int {
	return hdate.DaysInMonth(hdate.HMonth(month), year)
}

// fixed returns the fixed day number (day 1 = 0001-01-01 proleptic
// Gregorian) of a Hebrew date. Month numbers match hdate.HMonth, with Adar
// standing for hdate.Adar1.
func fixed(year int, month Month, day int) int {
	return int(hdate.ToRD(year, hdate.HMonth(month), day))
}

func fromFixed(f int) Date {
	hd := hdate.FromRD(int64(f))
	return Date{Year: hd.Year(), Month: Month(hd.Month()), Day: hd.Day()}
}

// civilFixed returns the fixed day number of the civil date of t, read in
// t's own location.
func civilFixed(t time.Time) int {
	y, m, d := t.Date()
	return int(greg.ToRD(y, m, d))
}

func fixedToCivil(f int) time.Time {
	y, m, d := greg.FromRD(int64(f))
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// eveOf returns the instant at which the Hebrew day with fixed number f begins.
func eveOf(f int) time.Time {
	return fixedToCivil(f - 1).Add(EveningHour * time.Hour)
}

// Date is a day in the Hebrew calendar.
type Date struct {
	Year  int   `json:"year"`
	Month Month `json:"month"`
	Day   int   `json:"day"`
}

// NewDate validates and returns a Hebrew date.
func NewDate(year int, month Month, day int) (Date, error) {
	y, err := NewYear(year)
	if err != nil {
		return Date{}, err
	}
	return y.Date(month, day)
}

// FromTime converts an instant to the Hebrew date it falls in. Instants at or
// after EveningHour UTC belong to the following Hebrew day.
func FromTime(t time.Time) Date {
	t = t.UTC()
	f := civilFixed(t)
	if t.Hour() >= EveningHour {
		f++
	}
	return fromFixed(f)
}

// FromCivil returns the Hebrew date whose daytime falls on the civil date of t.
func FromCivil(t time.Time) Date {
	return fromFixed(civilFixed(t))
}

func (d Date) fixed() int {
	return fixed(d.Year, d.Month, d.Day)
}

// Civil returns midnight UTC of the civil day on which the daytime of d falls.
func (d Date) Civil() time.Time {
	return fixedToCivil(d.fixed())
}

// Eve returns the instant at which d begins.
func (d Date) Eve() time.Time {
	return eveOf(d.fixed())
}

// Weekday returns the day of the week of the daytime of d.
func (d Date) Weekday() time.Weekday {
	return time.Weekday(d.fixed() % 7)
}

// AddDays returns the date n days after d.
func (d Date) AddDays(n int) Date {
	return fromFixed(d.fixed() + n)
}

// Before reports whether d precedes other.
func (d Date) Before(other Date) bool {
	return d.fixed() < other.fixed()
}

func (d Date) String() string {
	month := d.Month.String()
	if IsLeapYear(d.Year) {
		switch d.Month {
		case Adar:
			month = "Adar I"
		case Adar2:
			month = "Adar II"
		}
	}
	return fmt.Sprintf("%d %s %d", d.Day, month, d.Year)
}

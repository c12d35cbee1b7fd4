package calendar

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidDate is returned when a date string matches neither accepted format.
var ErrInvalidDate = errors.New("invalid date")

// hebrewDatePattern matches dates like "5780-Nisan-15" or "5784-adar ii-3".
var hebrewDatePattern = regexp.MustCompile(`^(\d{4})-([A-Za-z' ]+)-(\d{1,2})$`)

// gregorianDatePattern matches ISO civil dates like "2020-03-21".
var gregorianDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

var monthAliases = map[string]Month{
	"nisan":       Nisan,
	"nissan":      Nisan,
	"iyar":        Iyar,
	"iyyar":       Iyar,
	"sivan":       Sivan,
	"tammuz":      Tammuz,
	"tamuz":       Tammuz,
	"av":          Av,
	"menachemav":  Av,
	"elul":        Elul,
	"tishrei":     Tishrei,
	"tishri":      Tishrei,
	"cheshvan":    Cheshvan,
	"heshvan":     Cheshvan,
	"marcheshvan": Cheshvan,
	"kislev":      Kislev,
	"teves":       Teves,
	"tevet":       Teves,
	"shvat":       Shvat,
	"shevat":      Shvat,
	"adar":        Adar,
	"adar1":       Adar,
	"adari":       Adar,
	"adarrishon":  Adar,
	"adar2":       Adar2,
	"adarii":      Adar2,
	"adarsheni":   Adar2,
}

// ParseMonth accepts common transliterations of month names, ignoring case,
// spaces and apostrophes.
func ParseMonth(s string) (Month, error) {
	key := strings.NewReplacer(" ", "", "'", "", "-", "", "_", "").Replace(strings.ToLower(s))
	if m, ok := monthAliases[key]; ok {
		return m, nil
	}
	return 0, fmt.Errorf("unknown month %q", s)
}

// ParseDate parses a Hebrew date in the form YEAR-Month-DAY and validates it.
func ParseDate(s string) (Date, error) {
	matches := hebrewDatePattern.FindStringSubmatch(strings.TrimSpace(s))
	if matches == nil {
		return Date{}, fmt.Errorf("%w: %s (expected format: <year>-<month>-<day>, e.g., 5780-Nisan-15)", ErrInvalidDate, s)
	}

	year, err := strconv.Atoi(matches[1])
	if err != nil {
		return Date{}, fmt.Errorf("%w: year %s", ErrInvalidDate, matches[1])
	}
	month, err := ParseMonth(matches[2])
	if err != nil {
		return Date{}, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}
	day, err := strconv.Atoi(matches[3])
	if err != nil {
		return Date{}, fmt.Errorf("%w: day %s", ErrInvalidDate, matches[3])
	}

	return NewDate(year, month, day)
}

// ParseCivil parses an ISO date (YYYY-MM-DD) as midnight UTC.
func ParseCivil(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if !gregorianDatePattern.MatchString(s) {
		return time.Time{}, fmt.Errorf("%w: %s (expected format: YYYY-MM-DD)", ErrInvalidDate, s)
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}
	return t, nil
}

// Conversion is the pair of dates a single day maps to in the other calendar.
type Conversion struct {
	Day   Date `json:"day"`
	Night Date `json:"night"`
}

// Convert returns the Hebrew date whose daytime falls on the civil date of t,
// and the one that begins at nightfall.
func Convert(t time.Time) Conversion {
	day := FromCivil(t)
	return Conversion{Day: day, Night: day.AddDays(1)}
}

// Span is the civil extent of a Hebrew date.
type Span struct {
	Evening time.Time `json:"evening"`
	Day     time.Time `json:"day"`
}

// Span returns the civil evening d begins on and the civil day it ends on.
func (d Date) Span() Span {
	civil := d.Civil()
	return Span{Evening: civil.AddDate(0, 0, -1), Day: civil}
}

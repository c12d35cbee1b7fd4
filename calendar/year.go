package calendar

import (
	"errors"
	"fmt"
	"time"
)

// Supported range of Hebrew years.
const (
	MinYear = 3764
	MaxYear = 9999
)

var (
	// ErrInvalidYear is returned for years outside [MinYear, MaxYear].
	ErrInvalidYear = errors.New("invalid hebrew year")
	// ErrDateNotFound is returned when a month or day does not exist in a year.
	ErrDateNotFound = errors.New("date does not exist in year")
)

// Year is a validated Hebrew year.
type Year struct {
	number int
	leap   bool
	start  int // fixed day of 1 Tishrei
	length int
}

// NewYear validates year and precomputes its boundaries.
func NewYear(year int) (*Year, error) {
	if year < MinYear || year > MaxYear {
		return nil, fmt.Errorf("%w: %d (supported %d-%d)", ErrInvalidYear, year, MinYear, MaxYear)
	}
	return &Year{
		number: year,
		leap:   IsLeapYear(year),
		start:  fixed(year, Tishrei, 1),
		length: DaysInYear(year),
	}, nil
}

func (y *Year) Number() int  { return y.number }
func (y *Year) IsLeap() bool { return y.leap }
func (y *Year) Length() int  { return y.length }

// Start returns the instant 1 Tishrei begins.
func (y *Year) Start() time.Time { return eveOf(y.start) }

// End returns the instant the following year begins.
func (y *Year) End() time.Time { return eveOf(y.start + y.length) }

// Months returns the months of the year in order, Tishrei first.
func (y *Year) Months() []Month {
	months := []Month{Tishrei, Cheshvan, Kislev, Teves, Shvat, Adar}
	if y.leap {
		months = append(months, Adar2)
	}
	return append(months, Nisan, Iyar, Sivan, Tammuz, Av, Elul)
}

// MonthLength returns the number of days in month this year.
func (y *Year) MonthLength(month Month) int {
	return DaysInMonth(month, y.number)
}

// Date validates (month, day) against the year.
func (y *Year) Date(month Month, day int) (Date, error) {
	if month < Nisan || month > Adar2 || (month == Adar2 && !y.leap) {
		return Date{}, fmt.Errorf("%w: month %s in %d", ErrDateNotFound, month, y.number)
	}
	if day < 1 || day > DaysInMonth(month, y.number) {
		return Date{}, fmt.Errorf("%w: %d %s %d", ErrDateNotFound, day, month, y.number)
	}
	return Date{Year: y.number, Month: month, Day: day}, nil
}

// Resolve returns the instant (month, day) begins this year.
func (y *Year) Resolve(month Month, day int) (time.Time, error) {
	d, err := y.Date(month, day)
	if err != nil {
		return time.Time{}, err
	}
	return d.Eve(), nil
}

// at returns the fixed day of a date known to exist.
func (y *Year) at(month Month, day int) int {
	return fixed(y.number, month, day)
}

// purimMonth is the Adar in which Purim falls.
func (y *Year) purimMonth() Month {
	if y.leap {
		return Adar2
	}
	return Adar
}

// Holidays returns the readings of the year in the requested categories.
func (y *Year) Holidays(loc Location, categories []Category) []Holiday {
	var out []Holiday
	seen := make(map[Category]bool, len(categories))
	for _, c := range categories {
		if seen[c] {
			continue
		}
		seen[c] = true
		switch c {
		case YomTov:
			out = append(out, y.yomTov(loc)...)
		case Chol:
			out = append(out, y.chol()...)
		case Shabbos:
			out = append(out, y.weeklyReadings(loc)...)
		case SpecialParsha:
			out = append(out, y.specialParshas()...)
		}
	}
	return out
}

func holiday(c Category, name string, f int) Holiday {
	return Holiday{Reading: Reading{Category: c, Name: name}, Day: eveOf(f)}
}

func (y *Year) yomTov(loc Location) []Holiday {
	out := []Holiday{
		holiday(YomTov, RoshHashanah1, y.at(Tishrei, 1)),
		holiday(YomTov, RoshHashanah2, y.at(Tishrei, 2)),
		holiday(YomTov, YomKippur, y.at(Tishrei, 10)),
	}
	for i := 0; i < 7; i++ {
		out = append(out, holiday(YomTov, fmt.Sprintf("Sukkos%d", i+1), y.at(Tishrei, 15+i)))
	}
	out = append(out, holiday(YomTov, ShminiAtzeres, y.at(Tishrei, 22)))
	if loc == Diaspora {
		out = append(out, holiday(YomTov, SimchasTorah, y.at(Tishrei, 23)))
	}

	days := 7
	if loc == Diaspora {
		days = 8
	}
	for i := 0; i < days; i++ {
		out = append(out, holiday(YomTov, fmt.Sprintf("Pesach%d", i+1), y.at(Nisan, 15+i)))
	}

	out = append(out, holiday(YomTov, Shavuos1, y.at(Sivan, 6)))
	if loc == Diaspora {
		out = append(out, holiday(YomTov, Shavuos2, y.at(Sivan, 7)))
	}
	return out
}

// roshChodeshName is the month token used in Rosh Chodesh reading names.
func (y *Year) roshChodeshName(m Month) string {
	switch {
	case m == Adar && y.leap:
		return "AdarRishon"
	case m == Adar2:
		return "AdarSheni"
	}
	return m.String()
}

// previousMonth returns the month before m in year order; m is not Tishrei.
func (y *Year) previousMonth(m Month) Month {
	months := y.Months()
	for i := 1; i < len(months); i++ {
		if months[i] == m {
			return months[i-1]
		}
	}
	return m
}

// roshChodesh returns the fixed days of Rosh Chodesh of m: one day, or two
// when the previous month has thirty days.
func (y *Year) roshChodesh(m Month) []int {
	prev := y.previousMonth(m)
	if y.MonthLength(prev) == 30 {
		return []int{y.at(prev, 30), y.at(m, 1)}
	}
	return []int{y.at(m, 1)}
}

// RoshChodeshStart returns the instant the first day of Rosh Chodesh of m
// begins. Tishrei has no Rosh Chodesh reading and reports ErrDateNotFound.
func (y *Year) RoshChodeshStart(m Month) (time.Time, error) {
	if m == Tishrei {
		return time.Time{}, fmt.Errorf("%w: no rosh chodesh reading for Tishrei", ErrDateNotFound)
	}
	if _, err := y.Date(m, 1); err != nil {
		return time.Time{}, err
	}
	return eveOf(y.roshChodesh(m)[0]), nil
}

// shabbosOnOrBefore returns the fixed day of the last Saturday on or before f.
func shabbosOnOrBefore(f int) int {
	return f - (f%7+1)%7
}

// postponed moves a fast that falls on Shabbos to Sunday.
func postponed(f int) int {
	if time.Weekday(f%7) == time.Saturday {
		return f + 1
	}
	return f
}

func (y *Year) chol() []Holiday {
	var out []Holiday
	for _, m := range y.Months()[1:] {
		days := y.roshChodesh(m)
		name := "RoshChodesh" + y.roshChodeshName(m)
		if len(days) == 1 {
			out = append(out, holiday(Chol, name, days[0]))
			continue
		}
		for i, f := range days {
			out = append(out, holiday(Chol, fmt.Sprintf("%s%d", name, i+1), f))
		}
	}

	chanukah := y.at(Kislev, 25)
	for i := 0; i < 8; i++ {
		out = append(out, holiday(Chol, fmt.Sprintf("Chanukah%d", i+1), chanukah+i))
	}

	adar := y.purimMonth()
	esther := y.at(adar, 13)
	if time.Weekday(esther%7) == time.Saturday {
		esther -= 2
	}

	return append(out,
		holiday(Chol, TzomGedalia, postponed(y.at(Tishrei, 3))),
		holiday(Chol, TenTeves, y.at(Teves, 10)),
		holiday(Chol, TaanisEsther, esther),
		holiday(Chol, Purim, y.at(adar, 14)),
		holiday(Chol, ShushanPurim, y.at(adar, 15)),
		holiday(Chol, SeventeenTammuz, postponed(y.at(Tammuz, 17))),
		holiday(Chol, NineAv, postponed(y.at(Av, 9))),
	)
}

// TishaBeAv returns the instant the observed fast of 9 Av begins; it moves
// to 10 Av when 9 Av is Shabbos.
func (y *Year) TishaBeAv() time.Time {
	return eveOf(postponed(y.at(Av, 9)))
}

func (y *Year) specialParshas() []Holiday {
	adar := y.purimMonth()
	haChodesh := shabbosOnOrBefore(y.at(Nisan, 1))
	return []Holiday{
		holiday(SpecialParsha, Shekalim, shabbosOnOrBefore(y.at(adar, 1))),
		holiday(SpecialParsha, Zachor, shabbosOnOrBefore(y.at(adar, 13))),
		holiday(SpecialParsha, Parah, haChodesh-7),
		holiday(SpecialParsha, HaChodesh, haChodesh),
	}
}

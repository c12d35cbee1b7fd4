package calendar

import (
	"strings"
	"time"
)

// Parshiyos in reading order, Bereishis through Haazinu.
var parshiyos = []string{
	"Bereishis", "Noach", "LechLecha", "Vayeira", "ChayeiSara", "Toldos",
	"Vayetzei", "Vayishlach", "Vayeshev", "Miketz", "Vayigash", "Vayechi",
	"Shemos", "Vaeira", "Bo", "Beshalach", "Yisro", "Mishpatim", "Terumah",
	"Tetzaveh", "KiSisa", "Vayakhel", "Pikudei", "Vayikra", "Tzav", "Shemini",
	"Tazriya", "Metzorah", "AchareiMos", "Kedoshim", "Emor", "Behar",
	"Bechukosai", "Bamidbar", "Naso", "Behaaloscha", "Shlach", "Korach",
	"Chukas", "Balak", "Pinchas", "Matos", "Maasei", "Devarim", "Vaeschanan",
	"Eikev", "Reeh", "Shoftim", "KiSeitzei", "KiSavoh", "Nitzavim", "Vayelech",
	"Haazinu",
}

// Parshiyos returns the names of the weekly readings in order.
func Parshiyos() []string {
	return append([]string(nil), parshiyos...)
}

// Pairs that may be read together, in the order they are combined when a
// year has too few free Shabbosos.
var (
	leapPairs            = []string{"Matos", "Behar", "AchareiMos", "Tazriya", "Vayakhel"}
	regularPairs         = []string{"Matos", "Tazriya", "AchareiMos", "Behar", "Vayakhel"}
	regularIsraelShifted = []string{"Matos", "Vayakhel", "Tazriya", "AchareiMos", "Behar"}
)

// yomTovDays returns the fixed days on which a holiday reading replaces the
// weekly one.
func (y *Year) yomTovDays(loc Location) map[int]bool {
	days := make(map[int]bool)
	add := func(m Month, from, to int) {
		for d := from; d <= to; d++ {
			days[y.at(m, d)] = true
		}
	}
	add(Tishrei, 1, 2)
	add(Tishrei, 10, 10)
	if loc == Israel {
		add(Tishrei, 15, 22)
		add(Nisan, 15, 21)
		add(Sivan, 6, 6)
	} else {
		add(Tishrei, 15, 23)
		add(Nisan, 15, 22)
		add(Sivan, 6, 7)
	}
	return days
}

func (y *Year) weekday(m Month, d int) time.Weekday {
	return time.Weekday(y.at(m, d) % 7)
}

// weeklyReadings assigns a parsha, or a pair, to every Shabbos of the year
// that is not a holiday.
func (y *Year) weeklyReadings(loc Location) []Holiday {
	holidays := y.yomTovDays(loc)
	end := y.start + y.length

	var shabbosos []int
	for f := y.start + (6-y.start%7+7)%7; f < end; f += 7 {
		if !holidays[f] {
			shabbosos = append(shabbosos, f)
		}
	}

	var schedule [][]string
	if rh := time.Weekday(y.start % 7); rh == time.Monday || rh == time.Tuesday {
		schedule = append(schedule, []string{"Vayelech"})
	}
	schedule = append(schedule, []string{"Haazinu"})

	body := make([][]string, 0, 51)
	for _, p := range parshiyos[:51] {
		body = append(body, []string{p})
	}
	if next := time.Weekday(end % 7); next == time.Thursday || next == time.Saturday {
		body[len(body)-1] = []string{"Nitzavim", "Vayelech"}
	}
	combine := func(first string) {
		for i := range body {
			if body[i][0] == first && i+1 < len(body) {
				body[i] = append(body[i], body[i+1]...)
				body = append(body[:i+1], body[i+2:]...)
				return
			}
		}
	}
	if loc == Diaspora && y.weekday(Sivan, 7) == time.Saturday {
		combine("Chukas")
	}

	pairs := regularPairs
	switch {
	case y.leap:
		pairs = leapPairs
	case loc == Israel && y.weekday(Nisan, 22) == time.Saturday:
		pairs = regularIsraelShifted
	}
	extra := len(schedule) + len(body) - len(shabbosos)
	for i := 0; i < extra && i < len(pairs); i++ {
		combine(pairs[i])
	}
	schedule = append(schedule, body...)

	out := make([]Holiday, 0, len(shabbosos))
	for i, f := range shabbosos {
		if i >= len(schedule) {
			break
		}
		out = append(out, holiday(Shabbos, strings.Join(schedule[i], ""), f))
	}
	return out
}

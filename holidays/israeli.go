package holidays

import (
	"time"

	"github.com/robertmeta/heca-cli/calendar"
	"github.com/robertmeta/heca-cli/model"
)

// Israeli day identifiers.
const (
	YomHaAliyah     = "YomHaAliyah"
	YomHaShoah      = "YomHaShoah"
	YomHaZikaron    = "YomHaZikaron"
	YomHaAtzmaut    = "YomHaAtzmaut"
	YomYerushalayim = "YomYerushalayim"
	Sigd            = "Sigd"
)

// israeliDays dates the days of the Israeli civil calendar. Unless exact is
// set, Yom HaShoah and Yom HaAtzmaut move off days adjacent to Shabbos and
// Yom HaZikaron stays the day before Yom HaAtzmaut.
func israeliDays(year *calendar.Year, exact bool) []model.Event {
	shoah := 27
	atzmaut := 5
	if !exact {
		shoah = shiftShoah(year)
		atzmaut = shiftAtzmaut(year)
	}

	days := []fixedDay{
		{Sigd, calendar.Cheshvan, 29},
		{YomHaAliyah, calendar.Nisan, 10},
		{YomHaShoah, calendar.Nisan, shoah},
		{YomHaZikaron, calendar.Iyar, atzmaut - 1},
		{YomHaAtzmaut, calendar.Iyar, atzmaut},
		{YomYerushalayim, calendar.Iyar, 28},
	}
	return resolveAll(year, days, func(id string) model.Label {
		return model.IsraeliHoliday{ID: id}
	})
}

func weekdayOf(year *calendar.Year, m calendar.Month, d int) time.Weekday {
	date, err := year.Date(m, d)
	if err != nil {
		return time.Sunday
	}
	return date.Weekday()
}

func shiftShoah(year *calendar.Year) int {
	switch weekdayOf(year, calendar.Nisan, 27) {
	case time.Friday:
		return 26
	case time.Sunday:
		return 28
	}
	return 27
}

func shiftAtzmaut(year *calendar.Year) int {
	switch weekdayOf(year, calendar.Iyar, 5) {
	case time.Friday:
		return 4
	case time.Saturday:
		return 3
	case time.Monday:
		return 6
	}
	return 5
}

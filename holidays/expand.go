// Package holidays expands a single Hebrew year into its dated events:
// Torah readings with candle-lighting times, the Omer, minor days, Israeli
// and Chabad days, Shabbos Mevarchim and custom holidays.
package holidays

import (
	"time"

	"github.com/robertmeta/heca-cli/calendar"
	"github.com/robertmeta/heca-cli/model"
	"github.com/robertmeta/heca-cli/zmanim"
)

// Expand returns the events of year selected by sel, in no particular order.
// It reads sel without modifying it, so concurrent calls for different years
// may share one Selection.
func Expand(year *calendar.Year, sel *model.Selection) []model.Event {
	out := make([]model.Event, 0, 200)

	for _, h := range year.Holidays(sel.Location, sel.Categories) {
		out = append(out, model.Event{
			Day:            h.Day,
			Name:           model.TorahReading{Reading: h.Reading},
			CandleLighting: candleLighting(h, sel.Location, sel.City),
		})
	}

	if sel.Omer {
		out = append(out, omer(year)...)
	}
	if sel.Minor {
		out = append(out, minorDays(year)...)
	}
	if sel.Israeli {
		out = append(out, israeliDays(year, sel.ExactDays)...)
	}
	if sel.Chabad {
		out = append(out, chabadDays(year)...)
	}
	if sel.ShabbosMevarchim {
		out = append(out, mevarchim(year)...)
	}
	for _, h := range sel.CustomHolidays {
		out = append(out, custom(year, h)...)
	}
	return out
}

// candleLighting decides whether the eve of h is one on which candles are lit
// and, when a city is known, when.
func candleLighting(h calendar.Holiday, loc calendar.Location, city *model.City) model.CandleLighting {
	weekday := h.Day.Weekday()

	isShabbos := h.Reading.Category == calendar.Shabbos || weekday == time.Friday
	lightOnTime := isShabbos

	isYomTov := false
	if h.Reading.Category == calendar.YomTov {
		switch h.Reading.Name {
		case calendar.RoshHashanah2:
			isYomTov = true
		case calendar.RoshHashanah1, calendar.YomKippur, calendar.Sukkos1,
			calendar.ShminiAtzeres, calendar.Pesach1, calendar.Pesach7, calendar.Shavuos1:
			isYomTov = true
			// a Yom Tov that begins as Shabbos ends is lit after nightfall
			lightOnTime = weekday != time.Saturday
		case calendar.Sukkos2, calendar.SimchasTorah, calendar.Pesach2,
			calendar.Pesach8, calendar.Shavuos2:
			isYomTov = loc == calendar.Diaspora
		}
	}

	if !isShabbos && !isYomTov {
		return model.NoCandleLighting()
	}
	if city == nil || !lightOnTime {
		return model.UnknownCandleLighting()
	}
	sunset, ok := zmanim.Sunset(city.Latitude, city.Longitude, h.Day, city.Location())
	if !ok {
		return model.UnknownCandleLighting()
	}
	return model.CandleLightingAt(sunset.Add(-time.Duration(city.CandleLightingMinutes-1) * time.Minute))
}

// fixedDay is a calendar-fixed observance.
type fixedDay struct {
	id    string
	month calendar.Month
	day   int
}

// resolveAll dates every day that exists this year and skips the rest.
func resolveAll(year *calendar.Year, days []fixedDay, label func(id string) model.Label) []model.Event {
	out := make([]model.Event, 0, len(days))
	for _, d := range days {
		t, err := year.Resolve(d.month, d.day)
		if err != nil {
			continue
		}
		out = append(out, model.Event{Day: t, Name: label(d.id), CandleLighting: model.NoCandleLighting()})
	}
	return out
}

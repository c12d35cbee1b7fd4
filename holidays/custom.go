package holidays

import (
	"time"

	"github.com/robertmeta/heca-cli/calendar"
	"github.com/robertmeta/heca-cli/model"
)

// custom dates a user-defined holiday. When its date does not exist this
// year, every fallback that does exist is emitted instead.
func custom(year *calendar.Year, h model.CustomHoliday) []model.Event {
	event := func(t time.Time) model.Event {
		return model.Event{Day: t, Name: model.Custom{Holiday: h}, CandleLighting: model.NoCandleLighting()}
	}

	if t, err := year.Resolve(h.Date.Month, h.Date.Day); err == nil {
		return []model.Event{event(t)}
	}
	var out []model.Event
	for _, d := range h.IfNotExists {
		if t, err := year.Resolve(d.Month, d.Day); err == nil {
			out = append(out, event(t))
		}
	}
	return out
}

package holidays

import (
	"log/slog"
	"sort"

	"github.com/robertmeta/heca-cli/calendar"
	"github.com/robertmeta/heca-cli/model"
	"github.com/teambition/rrule-go"
)

// mevarchim dates the Shabbos before each Rosh Chodesh. Tishrei is not
// blessed.
func mevarchim(year *calendar.Year) []model.Event {
	r, err := rrule.NewRRule(rrule.ROption{
		Freq:      rrule.WEEKLY,
		Dtstart:   year.Start(),
		Until:     year.End(),
		Byweekday: []rrule.Weekday{rrule.FR},
	})
	if err != nil {
		slog.Error("failed to build shabbos rule", "year", year.Number(), "error", err)
		return nil
	}
	eves := r.All()

	var out []model.Event
	for _, m := range year.Months()[1:] {
		roshChodesh, err := year.RoshChodeshStart(m)
		if err != nil {
			continue
		}
		i := sort.Search(len(eves), func(i int) bool { return !eves[i].Before(roshChodesh) })
		if i == 0 {
			continue
		}
		out = append(out, model.Event{
			Day:            eves[i-1],
			Name:           model.ShabbosMevarchim{Month: m},
			CandleLighting: model.NoCandleLighting(),
		})
	}
	return out
}

package render

import (
	"fmt"
	"io"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/robertmeta/heca-cli/model"
)

// FeedOptions describes the calendar or feed wrapping the events.
type FeedOptions struct {
	Language Language
	Title    string
	// Generated stamps the document; the zero value means now.
	Generated time.Time
}

func (o FeedOptions) title() string {
	if o.Title != "" {
		return o.Title
	}
	if o.Language == Hebrew {
		return "לוח עברי"
	}
	return "Hebrew calendar"
}

func (o FeedOptions) generated() time.Time {
	if o.Generated.IsZero() {
		return time.Now().UTC()
	}
	return o.Generated.UTC()
}

// daytime returns the civil date on which the daytime of e falls.
func daytime(e model.Event) time.Time {
	d := e.Day.UTC().AddDate(0, 0, 1)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
}

func candleText(e model.Event, lang Language) string {
	t, ok := e.CandleLighting.Time()
	if !ok {
		return ""
	}
	if lang == Hebrew {
		return "הדלקת נרות " + t.Format("15:04")
	}
	return "Candle lighting " + t.Format("15:04")
}

// ICS writes the events as an iCalendar document of all-day events, each on
// the civil date of the daytime it names.
func ICS(w io.Writer, events []model.Event, opts FeedOptions) error {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId("-//heca-cli//Hebrew calendar//EN")
	cal.SetXWRCalName(opts.title())

	stamp := opts.generated()
	for i, e := range events {
		day := daytime(e)
		ev := cal.AddEvent(fmt.Sprintf("%s-%d@heca-cli", day.Format("20060102"), i))
		ev.SetDtStampTime(stamp)
		ev.SetSummary(Label(e.Name, opts.Language))
		ev.SetAllDayStartAt(day)
		ev.SetAllDayEndAt(day.AddDate(0, 0, 1))
		ev.AddCategory(e.Name.Kind().String())
		if s := candleText(e, opts.Language); s != "" {
			ev.SetDescription(s)
		}
	}

	if err := cal.SerializeTo(w); err != nil {
		return fmt.Errorf("failed to write calendar: %w", err)
	}
	return nil
}

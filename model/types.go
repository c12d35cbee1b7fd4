// Package model defines the core data structures for heca-cli.
package model

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/robertmeta/heca-cli/calendar"
)

// Event is one dated entry of the generated list.
type Event struct {
	// Day is the instant the announced Hebrew day begins: EveningHour UTC of
	// the preceding civil day.
	Day            time.Time
	Name           Label
	CandleLighting CandleLighting
}

// CandleState distinguishes the three candle-lighting outcomes.
type CandleState int

const (
	// NotApplicable marks an event that is not a Shabbos or Yom Tov eve.
	NotApplicable CandleState = iota
	// ApplicableUnknown marks an eve whose lighting time is not known: no
	// city is configured, candles are lit after nightfall, or the sun does
	// not set.
	ApplicableUnknown
	// ApplicableKnown marks an eve with a computed lighting time.
	ApplicableKnown
)

func (s CandleState) String() string {
	switch s {
	case ApplicableUnknown:
		return "ApplicableUnknown"
	case ApplicableKnown:
		return "ApplicableKnown"
	}
	return "NotApplicable"
}

// CandleLighting is the candle-lighting annotation of an event.
type CandleLighting struct {
	state CandleState
	at    time.Time
}

// NoCandleLighting is the annotation of ordinary days.
func NoCandleLighting() CandleLighting {
	return CandleLighting{state: NotApplicable}
}

// UnknownCandleLighting is the annotation of an eve without a lighting time.
func UnknownCandleLighting() CandleLighting {
	return CandleLighting{state: ApplicableUnknown}
}

// CandleLightingAt is the annotation of an eve whose candles are lit at t.
func CandleLightingAt(t time.Time) CandleLighting {
	return CandleLighting{state: ApplicableKnown, at: t}
}

func (c CandleLighting) State() CandleState { return c.state }

// Applicable reports whether the event is a Shabbos or Yom Tov eve.
func (c CandleLighting) Applicable() bool { return c.state != NotApplicable }

// Time returns the lighting time when it is known.
func (c CandleLighting) Time() (time.Time, bool) {
	return c.at, c.state == ApplicableKnown
}

// City is a place candle-lighting times are computed for.
type City struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	TimeZone  string  `json:"timezone"`
	// CandleLightingMinutes is how long before sunset candles are lit.
	CandleLightingMinutes int `json:"candle_lighting_minutes"`

	location *time.Location
}

// NewCity validates the city and loads its time zone.
func NewCity(name string, latitude, longitude float64, timeZone string, minutes int) (*City, error) {
	c := &City{
		Name:                  name,
		Latitude:              latitude,
		Longitude:             longitude,
		TimeZone:              timeZone,
		CandleLightingMinutes: minutes,
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	loc, err := time.LoadLocation(timeZone)
	if err != nil {
		return nil, fmt.Errorf("failed to load time zone %q: %w", timeZone, err)
	}
	c.location = loc
	return c, nil
}

// Validate checks the coordinates and offset.
func (c *City) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Name) == "" {
		errs = append(errs, errors.New("city name is required"))
	}
	if c.Latitude < -90 || c.Latitude > 90 {
		errs = append(errs, fmt.Errorf("latitude must be between -90 and 90, got %v", c.Latitude))
	}
	if c.Longitude < -180 || c.Longitude > 180 {
		errs = append(errs, fmt.Errorf("longitude must be between -180 and 180, got %v", c.Longitude))
	}
	if c.TimeZone == "" {
		errs = append(errs, errors.New("city time zone is required"))
	}
	if c.CandleLightingMinutes < 0 || c.CandleLightingMinutes > 120 {
		errs = append(errs, fmt.Errorf("candle lighting minutes must be between 0 and 120, got %d", c.CandleLightingMinutes))
	}
	return errors.Join(errs...)
}

// Location returns the city's time zone, UTC if it was never loaded.
func (c *City) Location() *time.Location {
	if c.location == nil {
		return time.UTC
	}
	return c.location
}

// DayOfMonth is a day in a Hebrew month, independent of year.
type DayOfMonth struct {
	Month calendar.Month `json:"month"`
	Day   int            `json:"day"`
}

// Validate checks that the day can exist in some year.
func (d DayOfMonth) Validate() error {
	if d.Month < calendar.Nisan || d.Month > calendar.Adar2 {
		return fmt.Errorf("invalid month %d", int(d.Month))
	}
	if d.Day < 1 || d.Day > 30 {
		return fmt.Errorf("day must be between 1 and 30, got %d", d.Day)
	}
	return nil
}

// CustomHoliday is a user-defined observance.
type CustomHoliday struct {
	// Name is the machine label.
	Name string `json:"name"`
	// Printable is the label shown to people.
	Printable string     `json:"printable"`
	Date      DayOfMonth `json:"date"`
	// IfNotExists lists the dates tried, in order, in years where Date does
	// not exist.
	IfNotExists []DayOfMonth `json:"if_not_exists,omitempty"`
}

// Validate checks the labels and every date.
func (h *CustomHoliday) Validate() error {
	var errs []error
	if h.Name == "" {
		errs = append(errs, errors.New("custom holiday name is required"))
	}
	if h.Printable == "" {
		errs = append(errs, fmt.Errorf("custom holiday %q: printable text is required", h.Name))
	}
	if err := h.Date.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("custom holiday %q: %w", h.Name, err))
	}
	for _, d := range h.IfNotExists {
		if err := d.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("custom holiday %q fallback: %w", h.Name, err))
		}
	}
	return errors.Join(errs...)
}

// StudyCycle is a daily study program.
type StudyCycle int

const (
	DafYomi StudyCycle = iota
	RambamOneChapter
	RambamThreeChapters
	YerushalmiYomi
)

func (c StudyCycle) String() string {
	switch c {
	case DafYomi:
		return "DafYomi"
	case RambamOneChapter:
		return "RambamOneChapter"
	case RambamThreeChapters:
		return "RambamThreeChapters"
	case YerushalmiYomi:
		return "YerushalmiYomi"
	}
	return fmt.Sprintf("StudyCycle(%d)", int(c))
}

// Selection is what to generate. It is built once per run and only read
// afterwards.
type Selection struct {
	Categories       []calendar.Category
	Location         calendar.Location
	Omer             bool
	Minor            bool
	Israeli          bool
	ExactDays        bool // skip the weekday adjustments of Israeli days
	Chabad           bool
	ShabbosMevarchim bool
	Study            []StudyCycle
	CustomHolidays   []CustomHoliday
	City             *City
}

// Validate checks the city and custom holidays.
func (s *Selection) Validate() error {
	var errs []error
	if s.City != nil {
		if err := s.City.Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	for i := range s.CustomHolidays {
		if err := s.CustomHolidays[i].Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

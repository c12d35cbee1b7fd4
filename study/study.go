// Package study walks a range of days and emits the unit studied each day in
// the Daf Yomi, Rambam and Yerushalmi Yomi cycles.
package study

import (
	"fmt"
	"sync"
	"time"

	"github.com/teambition/rrule-go"

	"github.com/robertmeta/heca-cli/calendar"
	"github.com/robertmeta/heca-cli/cycles"
	"github.com/robertmeta/heca-cli/model"
)

var (
	dafFirstEpoch   = epoch(1923, time.September, 10)
	dafSecondEpoch  = epoch(1975, time.June, 23)
	rambamEpoch     = epoch(1984, time.April, 27)
	yerushalmiEpoch = epoch(1980, time.February, 1)
)

func epoch(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, calendar.EveningHour, 0, 0, 0, time.UTC)
}

// daysSince counts whole days from since to t; both are evening instants.
// time.Duration saturates after about 292 years, so the count comes from
// Unix seconds.
func daysSince(t, since time.Time) int {
	return int((t.Unix() - since.Unix()) / 86400)
}

// Scanner yields one cycle's study units day by day, in the manner of
// bufio.Scanner. It cannot be restarted.
type Scanner struct {
	cycle model.StudyCycle
	next  rrule.Next
	event model.Event
	err   error

	// Yerushalmi Yomi bookkeeping for the Hebrew year of the current day.
	year      int
	tishaBeAv time.Time
}

// NewScanner returns a Scanner over the days beginning at the evening
// instants first through last, inclusive.
func NewScanner(cycle model.StudyCycle, first, last time.Time) (*Scanner, error) {
	switch cycle {
	case model.DafYomi, model.RambamOneChapter, model.RambamThreeChapters, model.YerushalmiYomi:
	default:
		return nil, fmt.Errorf("unknown study cycle %v", cycle)
	}

	r, err := rrule.NewRRule(rrule.ROption{
		Freq:    rrule.DAILY,
		Dtstart: first.UTC(),
		Until:   last.UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build day rule: %w", err)
	}
	return &Scanner{cycle: cycle, next: r.Iterator()}, nil
}

// Scan advances to the next day that has a unit. It returns false at the end
// of the range or on error.
func (s *Scanner) Scan() bool {
	if s.err != nil {
		return false
	}
	for {
		day, ok := s.next()
		if !ok {
			return false
		}
		unit, ok, err := s.unit(day)
		if err != nil {
			s.err = err
			return false
		}
		if ok {
			s.event = model.Event{
				Day:            day,
				Name:           model.Study{Unit: unit},
				CandleLighting: model.NoCandleLighting(),
			}
			return true
		}
	}
}

// Event returns the event produced by the last successful Scan.
func (s *Scanner) Event() model.Event { return s.event }

// Err returns the first error encountered.
func (s *Scanner) Err() error { return s.err }

func (s *Scanner) unit(day time.Time) (cycles.Unit, bool, error) {
	switch s.cycle {
	case model.DafYomi:
		switch {
		case !day.Before(dafSecondEpoch):
			return cycles.DafYomi(false, daysSince(day, dafSecondEpoch)%cycles.BavliSecondLength), true, nil
		case !day.Before(dafFirstEpoch):
			return cycles.DafYomi(true, daysSince(day, dafFirstEpoch)%cycles.BavliFirstLength), true, nil
		}
	case model.RambamOneChapter:
		if !day.Before(rambamEpoch) {
			return cycles.RambamOne(daysSince(day, rambamEpoch) % cycles.RambamOneLength), true, nil
		}
	case model.RambamThreeChapters:
		if !day.Before(rambamEpoch) {
			return cycles.RambamThree(daysSince(day, rambamEpoch) % cycles.RambamThreeLength), true, nil
		}
	case model.YerushalmiYomi:
		offset, ok, err := s.yerushalmiOffset(day)
		if !ok || err != nil {
			return nil, false, err
		}
		return cycles.Yerushalmi(offset), true, nil
	}
	return nil, false, nil
}

// yerushalmiOffset skips Yom Kippur and the observed Tisha B'Av, and
// discounts every skipped day since the epoch from the offset.
func (s *Scanner) yerushalmiOffset(day time.Time) (int, bool, error) {
	if day.Before(yerushalmiEpoch) {
		return 0, false, nil
	}
	date := calendar.FromTime(day)
	if date.Year != s.year {
		y, err := calendar.NewYear(date.Year)
		if err != nil {
			return 0, false, fmt.Errorf("failed to load year %d: %w", date.Year, err)
		}
		s.year = date.Year
		s.tishaBeAv = y.TishaBeAv()
	}

	if (date.Month == calendar.Tishrei && date.Day == 10) || day.Equal(s.tishaBeAv) {
		return 0, false, nil
	}

	ykThisYear := 1
	if date.Month == calendar.Tishrei && date.Day < 10 {
		ykThisYear = 0
	}
	tbThisYear := 0
	if !day.Before(s.tishaBeAv) {
		tbThisYear = 1
	}

	elapsed := date.Year - calendar.FromTime(yerushalmiEpoch).Year
	var yk, tb int
	switch elapsed {
	case 0:
		yk, tb = 0, tbThisYear
	case 1:
		yk, tb = ykThisYear, tbThisYear+1
	default:
		yk, tb = elapsed-1+ykThisYear, elapsed+tbThisYear
	}

	days := daysSince(day, yerushalmiEpoch)
	if days <= 0 {
		return 0, false, nil
	}
	return (days - tb - yk) % cycles.YerushalmiLength, true, nil
}

// Generate returns the study units of every cycle for the Hebrew years first
// through last. Each cycle is scanned in its own goroutine; the result lists
// cycles in the order given.
func Generate(first, last int, subscribed []model.StudyCycle) ([]model.Event, error) {
	if len(subscribed) == 0 {
		return nil, nil
	}
	start, err := calendar.NewDate(first, calendar.Tishrei, 1)
	if err != nil {
		return nil, fmt.Errorf("failed to start study range: %w", err)
	}
	end, err := calendar.NewDate(last, calendar.Elul, 29)
	if err != nil {
		return nil, fmt.Errorf("failed to end study range: %w", err)
	}

	results := make([][]model.Event, len(subscribed))
	errs := make([]error, len(subscribed))
	var wg sync.WaitGroup
	for i, cycle := range subscribed {
		wg.Add(1)
		go func(i int, cycle model.StudyCycle) {
			defer wg.Done()
			results[i], errs[i] = scanAll(cycle, start.Eve(), end.Eve())
		}(i, cycle)
	}
	wg.Wait()

	var out []model.Event
	for i := range subscribed {
		if errs[i] != nil {
			return nil, errs[i]
		}
		out = append(out, results[i]...)
	}
	return out, nil
}

func scanAll(cycle model.StudyCycle, first, last time.Time) ([]model.Event, error) {
	s, err := NewScanner(cycle, first, last)
	if err != nil {
		return nil, err
	}
	var out []model.Event
	for s.Scan() {
		out = append(out, s.Event())
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan %v: %w", cycle, err)
	}
	return out, nil
}

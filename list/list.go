// Package list plans which Hebrew years a request covers, runs the holiday
// and study generators over them, and merges the results into one ordered
// list.
package list

import (
	"fmt"
	"log/slog"
	"runtime"
	"slices"
	"sync"
	"time"

	"github.com/robertmeta/heca-cli/calendar"
	"github.com/robertmeta/heca-cli/holidays"
	"github.com/robertmeta/heca-cli/model"
	"github.com/robertmeta/heca-cli/study"
)

// YearKind says which calendar a requested year is counted in.
type YearKind int

const (
	Hebrew YearKind = iota
	Gregorian
)

func (k YearKind) String() string {
	if k == Gregorian {
		return "gregorian"
	}
	return "hebrew"
}

// hebrewThreshold separates Hebrew from Gregorian years when the kind is
// not given.
const hebrewThreshold = 3000

// DetectYearKind guesses the calendar of a bare year number.
func DetectYearKind(year int) YearKind {
	if year > hebrewThreshold {
		return Hebrew
	}
	return Gregorian
}

// Request is a span of years to list.
type Request struct {
	Kind   YearKind
	Year   int
	Amount int
	NoSort bool
}

// Validate checks the request shape; year bounds are checked by NewPlan.
func (r Request) Validate() error {
	if r.Amount < 1 {
		return fmt.Errorf("amount of years must be at least 1, got %d", r.Amount)
	}
	if r.Year < 1 {
		return fmt.Errorf("%w: %d", calendar.ErrInvalidYear, r.Year)
	}
	return nil
}

// Window is a half-open span of instants.
type Window struct {
	From, To time.Time
}

// Contains reports whether t lies in [From, To).
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.From) && t.Before(w.To)
}

// Plan is the Hebrew-year span a request expands to.
type Plan struct {
	// First and Last bound the years expanded for holidays, inclusive.
	First, Last int
	// StudyFirst and StudyLast bound the years scanned for study cycles.
	StudyFirst, StudyLast int
	// Window filters Gregorian requests; nil for Hebrew ones.
	Window *Window
}

// NewPlan translates a request into Hebrew years.
func NewPlan(req Request) (Plan, error) {
	if err := req.Validate(); err != nil {
		return Plan{}, err
	}

	var p Plan
	switch req.Kind {
	case Hebrew:
		p = Plan{
			First:      req.Year,
			Last:       req.Year + req.Amount,
			StudyFirst: req.Year,
			StudyLast:  req.Year + req.Amount - 1,
		}
	case Gregorian:
		before := time.Date(req.Year-1, time.December, 31, calendar.EveningHour, 0, 0, 0, time.UTC)
		after := time.Date(req.Year+req.Amount+1, time.January, 1, calendar.EveningHour, 0, 0, 0, time.UTC)
		first := calendar.FromTime(before).Year
		last := calendar.FromTime(after).Year
		p = Plan{
			First:      first,
			Last:       last,
			StudyFirst: first,
			StudyLast:  last,
			Window: &Window{
				From: time.Date(req.Year, time.January, 1, 0, 0, 0, 0, time.UTC),
				To:   time.Date(req.Year+req.Amount, time.January, 1, 0, 0, 0, 0, time.UTC),
			},
		}
	default:
		return Plan{}, fmt.Errorf("unknown year kind %d", int(req.Kind))
	}

	for _, y := range []int{p.First, p.Last} {
		if y < calendar.MinYear || y > calendar.MaxYear {
			return Plan{}, fmt.Errorf("%w: %d is outside %d-%d", calendar.ErrInvalidYear, y, calendar.MinYear, calendar.MaxYear)
		}
	}
	return p, nil
}

// Run generates, merges, filters and (unless req.NoSort) sorts the events
// of req. The result is deterministic for a given input: years are merged in
// order, study cycles after them in the order selected, and the sort is
// stable.
func Run(req Request, sel *model.Selection) ([]model.Event, error) {
	plan, err := NewPlan(req)
	if err != nil {
		return nil, err
	}
	if err := sel.Validate(); err != nil {
		return nil, fmt.Errorf("invalid selection: %w", err)
	}
	slog.Debug("planned request",
		"kind", req.Kind,
		"first", plan.First,
		"last", plan.Last,
		"study_first", plan.StudyFirst,
		"study_last", plan.StudyLast)

	years := make([]*calendar.Year, 0, plan.Last-plan.First+1)
	for n := plan.First; n <= plan.Last; n++ {
		y, err := calendar.NewYear(n)
		if err != nil {
			return nil, err
		}
		years = append(years, y)
	}

	var (
		studyEvents []model.Event
		studyErr    error
		wg          sync.WaitGroup
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		studyEvents, studyErr = study.Generate(plan.StudyFirst, plan.StudyLast, sel.Study)
	}()

	perYear := parallelMap(years, func(y *calendar.Year) []model.Event {
		return holidays.Expand(y, sel)
	})
	wg.Wait()
	if studyErr != nil {
		return nil, fmt.Errorf("failed to generate study cycles: %w", studyErr)
	}

	events := merge(perYear, studyEvents, plan.Window)
	if !req.NoSort {
		Sort(events)
	}
	slog.Debug("generated events", "count", len(events))
	return events, nil
}

// parallelMap applies fn to every item on at most NumCPU goroutines and
// returns the results in input order.
func parallelMap[T, R any](items []T, fn func(T) R) []R {
	out := make([]R, len(items))
	var wg sync.WaitGroup
	sem := make(chan struct{}, runtime.NumCPU())

	for i, item := range items {
		wg.Add(1)
		go func(i int, item T) {
			defer wg.Done()

			sem <- struct{}{}
			defer func() { <-sem }()

			out[i] = fn(item)
		}(i, item)
	}
	wg.Wait()
	return out
}

func merge(perYear [][]model.Event, studyEvents []model.Event, window *Window) []model.Event {
	total := len(studyEvents)
	for _, events := range perYear {
		total += len(events)
	}
	out := make([]model.Event, 0, total)
	keep := func(e model.Event) {
		if window == nil || window.Contains(e.Day) {
			out = append(out, e)
		}
	}
	for _, events := range perYear {
		for _, e := range events {
			keep(e)
		}
	}
	for _, e := range studyEvents {
		keep(e)
	}
	return out
}

// Sort orders events by instant, keeping the merge order among ties.
func Sort(events []model.Event) {
	slices.SortStableFunc(events, func(a, b model.Event) int {
		return a.Day.Compare(b.Day)
	})
}

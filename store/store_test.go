package store

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robertmeta/heca-cli/calendar"
	"github.com/robertmeta/heca-cli/model"
	"github.com/robertmeta/heca-cli/render"
)

func eve(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 18, 0, 0, 0, time.UTC)
}

func sampleEvents() []model.Event {
	candles := eve(2020, 4, 8).Add(time.Hour + 7*time.Minute)
	return []model.Event{
		{Day: eve(2020, 4, 8), Name: model.TorahReading{Reading: calendar.Reading{Category: calendar.YomTov, Name: calendar.Pesach1}}, CandleLighting: model.CandleLightingAt(candles)},
		{Day: eve(2020, 4, 9), Name: model.TorahReading{Reading: calendar.Reading{Category: calendar.YomTov, Name: calendar.Pesach2}}, CandleLighting: model.UnknownCandleLighting()},
		{Day: eve(2020, 4, 9), Name: model.MinorHoliday{ID: "Omer1"}, CandleLighting: model.NoCandleLighting()},
		{Day: eve(2020, 4, 10), Name: model.MinorHoliday{ID: "Omer2"}, CandleLighting: model.NoCandleLighting()},
		{Day: eve(2020, 4, 20), Name: model.IsraeliHoliday{ID: "YomHaShoah"}, CandleLighting: model.NoCandleLighting()},
	}
}

func TestNewStore(t *testing.T) {
	s, err := New(":memory:")
	require.NoError(t, err)
	require.NotNil(t, s)
	defer s.Close()
}

func TestStore_SaveAndGetExport(t *testing.T) {
	s, err := New(":memory:")
	require.NoError(t, err)
	defer s.Close()

	export := &Export{Calendar: "gregorian", Year: 2020, Amount: 1, Language: render.Hebrew}
	err = s.SaveExport(export, sampleEvents())
	require.NoError(t, err)
	assert.NotZero(t, export.ID, "Export ID should be set after save")
	assert.Equal(t, 5, export.Count)

	got, err := s.GetExport(export.ID)
	require.NoError(t, err)
	assert.Equal(t, "gregorian", got.Calendar)
	assert.Equal(t, 2020, got.Year)
	assert.Equal(t, 1, got.Amount)
	assert.Equal(t, render.Hebrew, got.Language)
	assert.Equal(t, 5, got.Count)
	assert.Equal(t, export.Created.Unix(), got.Created.Unix())
}

func TestStore_GetExport_NotFound(t *testing.T) {
	s, err := New(":memory:")
	require.NoError(t, err)
	defer s.Close()

	_, err = s.GetExport(42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_GetAllExports(t *testing.T) {
	s, err := New(":memory:")
	require.NoError(t, err)
	defer s.Close()

	for _, year := range []int{5780, 5781, 5782} {
		err := s.SaveExport(&Export{Calendar: "hebrew", Year: year, Amount: 1}, sampleEvents()[:2])
		require.NoError(t, err)
	}

	all, err := s.GetAllExports()
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, 5782, all[0].Year, "newest first")
	assert.Equal(t, 2, all[0].Count)
}

func TestStore_DeleteExport(t *testing.T) {
	s, err := New(":memory:")
	require.NoError(t, err)
	defer s.Close()

	export := &Export{Calendar: "hebrew", Year: 5780, Amount: 1}
	require.NoError(t, s.SaveExport(export, sampleEvents()))

	require.NoError(t, s.DeleteExport(export.ID))

	_, err = s.GetExport(export.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	rows, err := s.Events(QueryOptions{})
	require.NoError(t, err)
	assert.Empty(t, rows, "events should be deleted with their export")

	assert.ErrorIs(t, s.DeleteExport(export.ID), ErrNotFound)
}

func TestStore_Events(t *testing.T) {
	s, err := New(":memory:")
	require.NoError(t, err)
	defer s.Close()

	export := &Export{Calendar: "gregorian", Year: 2020, Amount: 1}
	require.NoError(t, s.SaveExport(export, sampleEvents()))

	rows, err := s.Events(QueryOptions{})
	require.NoError(t, err)
	require.Len(t, rows, 5)

	first := rows[0]
	assert.Equal(t, export.ID, first.ExportID)
	assert.Equal(t, eve(2020, 4, 8), first.Day)
	assert.Equal(t, "TorahReading", first.Kind)
	assert.Equal(t, "1st day of Pesach", first.Label)
	assert.True(t, first.Candle.Applicable)
	require.NotNil(t, first.Candle.Time)
	assert.Equal(t, eve(2020, 4, 8).Add(67*time.Minute), *first.Candle.Time)

	var wire model.WireEvent
	require.NoError(t, json.Unmarshal(first.Payload, &wire))
	assert.Equal(t, first.Type, wire.Name.Type)
	assert.Contains(t, string(first.Payload), `"name":"Pesach1"`)

	assert.True(t, rows[1].Candle.Applicable)
	assert.Nil(t, rows[1].Candle.Time)
	assert.False(t, rows[2].Candle.Applicable)

	// Same-day events keep their insertion order.
	assert.Equal(t, "TorahReading", rows[1].Kind)
	assert.Equal(t, "MinorHoliday", rows[2].Kind)
}

func TestStore_Events_Filters(t *testing.T) {
	s, err := New(":memory:")
	require.NoError(t, err)
	defer s.Close()

	first := &Export{Calendar: "gregorian", Year: 2020, Amount: 1}
	require.NoError(t, s.SaveExport(first, sampleEvents()))
	second := &Export{Calendar: "gregorian", Year: 2020, Amount: 1}
	require.NoError(t, s.SaveExport(second, sampleEvents()[:1]))

	rows, err := s.Events(QueryOptions{Kind: "MinorHoliday"})
	require.NoError(t, err)
	assert.Len(t, rows, 2)

	rows, err = s.Events(QueryOptions{ExportID: second.ID})
	require.NoError(t, err)
	assert.Len(t, rows, 1)

	from := eve(2020, 4, 9).Unix()
	until := eve(2020, 4, 10).Unix()
	rows, err = s.Events(QueryOptions{ExportID: first.ID, From: &from, Until: &until})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	for _, r := range rows {
		assert.Equal(t, eve(2020, 4, 9), r.Day)
	}
}

func TestStore_Events_Pagination(t *testing.T) {
	s, err := New(":memory:")
	require.NoError(t, err)
	defer s.Close()

	events := make([]model.Event, 50)
	for i := range events {
		events[i] = model.Event{
			Day:            eve(2020, 1, 1).AddDate(0, 0, i),
			Name:           model.ChabadHoliday{ID: "YudShvat"},
			CandleLighting: model.NoCandleLighting(),
		}
	}
	require.NoError(t, s.SaveExport(&Export{Calendar: "hebrew", Year: 5780, Amount: 1}, events))

	page1, err := s.Events(QueryOptions{Limit: 10})
	require.NoError(t, err)
	assert.Len(t, page1, 10)

	page2, err := s.Events(QueryOptions{Limit: 10, Offset: 10})
	require.NoError(t, err)
	assert.Len(t, page2, 10)
	assert.NotEqual(t, page1[0].ID, page2[0].ID)
	assert.True(t, page1[9].Day.Before(page2[0].Day))

	tail, err := s.Events(QueryOptions{Offset: 45})
	require.NoError(t, err)
	assert.Len(t, tail, 5)
}

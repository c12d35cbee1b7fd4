package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMonth(t *testing.T) {
	tests := []struct {
		input   string
		want    Month
		wantErr bool
	}{
		{"Nisan", Nisan, false},
		{"nissan", Nisan, false},
		{"Tevet", Teves, false},
		{"Adar I", Adar, false},
		{"Adar II", Adar2, false},
		{"adar-sheni", Adar2, false},
		{"Marcheshvan", Cheshvan, false},
		{"Smarch", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMonth(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		input   string
		want    Date
		wantErr error
	}{
		{"5780-Nisan-15", Date{5780, Nisan, 15}, nil},
		{"5784-Adar II-3", Date{5784, Adar2, 3}, nil},
		{"5780-Adar2-3", Date{}, ErrDateNotFound},
		{"1000-Nisan-1", Date{}, ErrInvalidYear},
		{"5780/Nisan/15", Date{}, ErrInvalidDate},
		{"5780-Smarch-1", Date{}, ErrInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseCivil(t *testing.T) {
	got, err := ParseCivil("2020-03-21")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2020, 3, 21, 0, 0, 0, 0, time.UTC), got)

	_, err = ParseCivil("21/03/2020")
	assert.ErrorIs(t, err, ErrInvalidDate)
	_, err = ParseCivil("2020-13-01")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestConvert(t *testing.T) {
	got := Convert(time.Date(2019, 9, 29, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, Date{5779, Elul, 29}, got.Day)
	assert.Equal(t, Date{5780, Tishrei, 1}, got.Night)
}

func TestDate_Span(t *testing.T) {
	span := Date{5780, Tishrei, 1}.Span()
	assert.Equal(t, time.Date(2019, 9, 29, 0, 0, 0, 0, time.UTC), span.Evening)
	assert.Equal(t, time.Date(2019, 9, 30, 0, 0, 0, 0, time.UTC), span.Day)
}

func TestMonth_TextRoundTrip(t *testing.T) {
	for m := Nisan; m <= Adar2; m++ {
		text, err := m.MarshalText()
		require.NoError(t, err)
		var got Month
		require.NoError(t, got.UnmarshalText(text))
		assert.Equal(t, m, got)
	}
}

package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"
	"unicode"

	ical "github.com/arran4/golang-ical"
	"github.com/fxamacker/cbor/v2"
	"github.com/mmcdole/gofeed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robertmeta/heca-cli/calendar"
	"github.com/robertmeta/heca-cli/cycles"
	"github.com/robertmeta/heca-cli/holidays"
	"github.com/robertmeta/heca-cli/model"
)

func eve(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, calendar.EveningHour, 0, 0, 0, time.UTC)
}

func reading(c calendar.Category, name string) model.Label {
	return model.TorahReading{Reading: calendar.Reading{Category: c, Name: name}}
}

func sampleEvents() []model.Event {
	return []model.Event{
		{
			Day:            eve(2020, 4, 8),
			Name:           reading(calendar.YomTov, calendar.Pesach1),
			CandleLighting: model.CandleLightingAt(time.Date(2020, 4, 8, 19, 7, 0, 0, time.UTC)),
		},
		{
			Day:            eve(2020, 4, 9),
			Name:           reading(calendar.YomTov, calendar.Pesach2),
			CandleLighting: model.UnknownCandleLighting(),
		},
		{
			Day:            eve(2020, 4, 9),
			Name:           model.MinorHoliday{ID: holidays.OmerID(1)},
			CandleLighting: model.NoCandleLighting(),
		},
		{
			Day:            eve(2020, 4, 10),
			Name:           model.Study{Unit: cycles.DafYomi(false, 0)},
			CandleLighting: model.NoCandleLighting(),
		},
	}
}

func TestParseLanguage(t *testing.T) {
	tests := []struct {
		in      string
		want    Language
		wantErr bool
	}{
		{"", English, false},
		{"english", English, false},
		{"Hebrew", Hebrew, false},
		{"en-US", English, false},
		{"he", Hebrew, false},
		{"he-IL", Hebrew, false},
		{"fr", English, true},
		{"not a tag!", English, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLanguage(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLabel(t *testing.T) {
	tests := []struct {
		name  string
		label model.Label
		lang  Language
		want  string
	}{
		{"yom tov", reading(calendar.YomTov, calendar.RoshHashanah1), English, "1st day of Rosh Hashanah"},
		{"yom tov hebrew", reading(calendar.YomTov, "Sukkos3"), Hebrew, "ג' סוכות"},
		{"combined parsha", reading(calendar.Shabbos, "VayakhelPikudei"), English, "Vayakhel-Pikudei"},
		{"spaced parsha", reading(calendar.Shabbos, "AchareiMos"), English, "Acharei Mos"},
		{"parsha hebrew", reading(calendar.Shabbos, "Bereishis"), Hebrew, "בראשית"},
		{"rosh chodesh", reading(calendar.Chol, "RoshChodeshTeves1"), English, "Rosh Chodesh Teves (1st day)"},
		{"rosh chodesh adar", reading(calendar.Chol, "RoshChodeshAdarSheni"), English, "Rosh Chodesh Adar II"},
		{"rosh chodesh hebrew", reading(calendar.Chol, "RoshChodeshNisan"), Hebrew, "ראש חודש ניסן"},
		{"chanukah", reading(calendar.Chol, "Chanukah8"), English, "8th day of Chanukah"},
		{"fast", reading(calendar.Chol, calendar.NineAv), English, "Tisha B'Av"},
		{"special parsha", reading(calendar.SpecialParsha, calendar.Zachor), English, "Parshas Zachor"},
		{"omer", model.MinorHoliday{ID: holidays.OmerID(22)}, English, "22nd day of the Omer"},
		{"omer teens", model.MinorHoliday{ID: holidays.OmerID(13)}, English, "13th day of the Omer"},
		{"omer hebrew", model.MinorHoliday{ID: holidays.OmerID(33)}, Hebrew, "יום 33 לעומר"},
		{"minor", model.MinorHoliday{ID: holidays.LagBaomer}, English, "Lag Baomer"},
		{"israeli", model.IsraeliHoliday{ID: holidays.YomHaAtzmaut}, Hebrew, "יום העצמאות"},
		{"chabad", model.ChabadHoliday{ID: holidays.YudTesKislev}, English, "Yud Tes Kislev"},
		{"mevarchim", model.ShabbosMevarchim{Month: calendar.Cheshvan}, English, "Shabbos Mevarchim Cheshvan"},
		{"custom", model.Custom{Holiday: model.CustomHoliday{Name: "x", Printable: "Family day"}}, Hebrew, "Family day"},
		{"daf", model.Study{Unit: cycles.DafYomi(false, 0)}, English, "Daf Yomi: Berachos 2"},
		{"daf hebrew", model.Study{Unit: cycles.DafYomi(false, 14)}, Hebrew, "דף יומי: ברכות טז"},
		{"yerushalmi", model.Study{Unit: cycles.Yerushalmi(0)}, English, "Yerushalmi Yomi: Berachos 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Label(tt.label, tt.lang))
		})
	}
}

func TestLabel_Rambam(t *testing.T) {
	one := Label(model.Study{Unit: cycles.RambamOne(0)}, English)
	assert.Equal(t, "Rambam: Transmission of the Oral Law 1", one)

	three := Label(model.Study{Unit: cycles.RambamThree(0)}, English)
	assert.True(t, strings.HasPrefix(three, "Rambam: "))
	assert.Equal(t, 2, strings.Count(three, "; "))
}

func hasLatin(s string) bool {
	for _, r := range s {
		if r < unicode.MaxASCII && unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

func TestLabel_HebrewTablesComplete(t *testing.T) {
	for _, n := range []int{5780, 5784, 5785} {
		year, err := calendar.NewYear(n)
		require.NoError(t, err)
		for _, loc := range []calendar.Location{calendar.Diaspora, calendar.Israel} {
			events := holidays.Expand(year, &model.Selection{
				Categories:       calendar.Categories,
				Location:         loc,
				Omer:             true,
				Minor:            true,
				Israeli:          true,
				Chabad:           true,
				ShabbosMevarchim: true,
			})
			for _, e := range events {
				label := Label(e.Name, Hebrew)
				assert.NotEmpty(t, label)
				assert.False(t, hasLatin(label), "year %d: %q", n, label)
			}
		}
	}
}

func TestHebrewNumeral(t *testing.T) {
	tests := map[int]string{
		1:   "א",
		10:  "י",
		15:  "טו",
		16:  "טז",
		24:  "כד",
		100: "ק",
		176: "קעו",
		415: "תטו",
	}
	for n, want := range tests {
		assert.Equal(t, want, hebrewNumeral(n), "%d", n)
	}
}

func TestOrdinal(t *testing.T) {
	assert.Equal(t, "1st", ordinal(1))
	assert.Equal(t, "2nd", ordinal(2))
	assert.Equal(t, "3rd", ordinal(3))
	assert.Equal(t, "4th", ordinal(4))
	assert.Equal(t, "11th", ordinal(11))
	assert.Equal(t, "21st", ordinal(21))
	assert.Equal(t, "42nd", ordinal(42))
}

func TestText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Text(&buf, sampleEvents(), TextOptions{}))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	assert.Equal(t, []string{
		"Night of 2020/4/8: 1st day of Pesach, Candle lighting 19:07",
		"Night of 2020/4/9: 2nd day of Pesach, Candle lighting",
		"Night of 2020/4/9: 1st day of the Omer",
		"Night of 2020/4/10: Daf Yomi: Berachos 2",
	}, lines)
}

func TestText_Hebrew(t *testing.T) {
	line := Line(sampleEvents()[0], TextOptions{Language: Hebrew})
	assert.Equal(t, "ליל 2020/4/8: א' פסח, הדלקת נרות 19:07", line)
}

func TestText_Pretty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Text(&buf, sampleEvents(), TextOptions{Pretty: true}))
	out := buf.String()
	assert.Contains(t, out, "1st day of Pesach")
	assert.Contains(t, out, "Candle lighting 19:07")
	assert.Equal(t, 4, strings.Count(out, "\n"))
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, sampleEvents()))

	var got []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 4)

	assert.Equal(t, "2020-04-08T18:00:00Z", got[0]["day"])
	assert.Equal(t, map[string]any{"applicable": true, "time": "2020-04-08T19:07:00Z"}, got[0]["candle_lighting"])
	assert.Equal(t, map[string]any{"applicable": true}, got[1]["candle_lighting"])
	assert.Equal(t, map[string]any{"applicable": false}, got[2]["candle_lighting"])

	name := got[0]["name"].(map[string]any)
	assert.Equal(t, "TorahReading", name["type"])
	assert.Equal(t, "DafYomi", got[3]["name"].(map[string]any)["type"])
}

func TestJSON_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, nil))
	assert.Equal(t, "[]\n", buf.String())
}

func TestCBOR(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, CBOR(&buf, sampleEvents()))

	var got []struct {
		Day  time.Time `cbor:"day"`
		Name struct {
			Type string `cbor:"type"`
		} `cbor:"name"`
		CandleLighting model.WireCandle `cbor:"candle_lighting"`
	}
	require.NoError(t, cbor.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 4)

	assert.True(t, eve(2020, 4, 8).Equal(got[0].Day))
	assert.Equal(t, "TorahReading", got[0].Name.Type)
	require.NotNil(t, got[0].CandleLighting.Time)
	assert.True(t, time.Date(2020, 4, 8, 19, 7, 0, 0, time.UTC).Equal(*got[0].CandleLighting.Time))
	assert.True(t, got[1].CandleLighting.Applicable)
	assert.Nil(t, got[1].CandleLighting.Time)
	assert.Equal(t, "MinorHoliday", got[2].Name.Type)

	// deterministic encoding
	var again bytes.Buffer
	require.NoError(t, CBOR(&again, sampleEvents()))
	assert.Equal(t, buf.Bytes(), again.Bytes())
}

func TestICS(t *testing.T) {
	var buf bytes.Buffer
	opts := FeedOptions{Generated: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	require.NoError(t, ICS(&buf, sampleEvents(), opts))

	cal, err := ical.ParseCalendar(&buf)
	require.NoError(t, err)
	events := cal.Events()
	require.Len(t, events, 4)

	first := events[0]
	assert.Equal(t, "1st day of Pesach", first.GetProperty(ical.ComponentPropertySummary).Value)
	assert.Equal(t, "20200409", first.GetProperty(ical.ComponentPropertyDtStart).Value)
	assert.Equal(t, "20200410", first.GetProperty(ical.ComponentPropertyDtEnd).Value)
	assert.Equal(t, "Candle lighting 19:07", first.GetProperty(ical.ComponentPropertyDescription).Value)
	assert.Nil(t, events[1].GetProperty(ical.ComponentPropertyDescription))
}

func TestRSS(t *testing.T) {
	var buf bytes.Buffer
	opts := FeedOptions{Language: Hebrew, Generated: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	require.NoError(t, RSS(&buf, sampleEvents(), opts))

	feed, err := gofeed.NewParser().Parse(&buf)
	require.NoError(t, err)
	assert.Equal(t, "לוח עברי", feed.Title)
	require.Len(t, feed.Items, 4)

	assert.Equal(t, "א' פסח", feed.Items[0].Title)
	require.NotNil(t, feed.Items[0].PublishedParsed)
	assert.True(t, eve(2020, 4, 8).Equal(*feed.Items[0].PublishedParsed))
	assert.NotEqual(t, feed.Items[1].GUID, feed.Items[2].GUID)
}

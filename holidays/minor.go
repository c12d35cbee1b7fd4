package holidays

import (
	"fmt"

	"github.com/robertmeta/heca-cli/calendar"
	"github.com/robertmeta/heca-cli/model"
)

// OmerDays is the length of the Omer count.
const OmerDays = 49

// Minor day identifiers.
const (
	ErevYomKippur      = "ErevYomKippur"
	ErevSukkos         = "ErevSukkos"
	ErevPesach         = "ErevPesach"
	PesachSheni        = "PesachSheni"
	LagBaomer          = "LagBaomer"
	ErevShavuos        = "ErevShavuos"
	ErevRoshHashanah   = "ErevRoshHashanah"
	Shvat15            = "Shvat15"
	Av15               = "Av15"
	PurimKattan        = "PurimKattan"
	ShushanPurimKattan = "ShushanPurimKattan"
)

var minorCatalog = []fixedDay{
	{ErevYomKippur, calendar.Tishrei, 9},
	{ErevSukkos, calendar.Tishrei, 14},
	{ErevPesach, calendar.Nisan, 14},
	{PesachSheni, calendar.Iyar, 14},
	{LagBaomer, calendar.Iyar, 18},
	{ErevShavuos, calendar.Sivan, 5},
	{ErevRoshHashanah, calendar.Elul, 29},
	{Shvat15, calendar.Shvat, 15},
	{Av15, calendar.Av, 15},
}

var leapCatalog = []fixedDay{
	{PurimKattan, calendar.Adar1, 14},
	{ShushanPurimKattan, calendar.Adar1, 15},
}

func minorLabel(id string) model.Label { return model.MinorHoliday{ID: id} }

func minorDays(year *calendar.Year) []model.Event {
	out := resolveAll(year, minorCatalog, minorLabel)
	if year.IsLeap() {
		out = append(out, resolveAll(year, leapCatalog, minorLabel)...)
	}
	return out
}

// OmerID returns the identifier of day n of the Omer.
func OmerID(n int) string {
	return fmt.Sprintf("Omer%d", n)
}

// omer returns the 49 days of the count, beginning the day after the first
// day of Pesach.
func omer(year *calendar.Year) []model.Event {
	pesach, err := year.Resolve(calendar.Nisan, 15)
	if err != nil {
		return nil
	}
	out := make([]model.Event, 0, OmerDays)
	for n := 1; n <= OmerDays; n++ {
		out = append(out, model.Event{
			Day:            pesach.AddDate(0, 0, n),
			Name:           model.MinorHoliday{ID: OmerID(n)},
			CandleLighting: model.NoCandleLighting(),
		})
	}
	return out
}

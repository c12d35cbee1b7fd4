package holidays

import (
	"github.com/robertmeta/heca-cli/calendar"
	"github.com/robertmeta/heca-cli/model"
)

// Chabad day identifiers.
const (
	VovTishrei      = "VovTishrei"
	ChofCheshvan    = "ChofCheshvan"
	YudKislev       = "YudKislev"
	YudTesKislev    = "YudTesKislev"
	HeyTeves        = "HeyTeves"
	ChofDaledTeves  = "ChofDaledTeves"
	YudShvat        = "YudShvat"
	ChofBeisShvat   = "ChofBeisShvat"
	BeisNisan       = "BeisNisan"
	YudAlefNisan    = "YudAlefNisan"
	YudGimmelNisan  = "YudGimmelNisan"
	GimmelTammuz    = "GimmelTammuz"
	YudBeisTammuz   = "YudBeisTammuz"
	ChofAv          = "ChofAv"
	ChaiElul        = "ChaiElul"
)

var chabadCatalog = []fixedDay{
	{VovTishrei, calendar.Tishrei, 6},
	{ChofCheshvan, calendar.Cheshvan, 20},
	{YudKislev, calendar.Kislev, 10},
	{YudTesKislev, calendar.Kislev, 19},
	{HeyTeves, calendar.Teves, 5},
	{ChofDaledTeves, calendar.Teves, 24},
	{YudShvat, calendar.Shvat, 10},
	{ChofBeisShvat, calendar.Shvat, 22},
	{BeisNisan, calendar.Nisan, 2},
	{YudAlefNisan, calendar.Nisan, 11},
	{YudGimmelNisan, calendar.Nisan, 13},
	{GimmelTammuz, calendar.Tammuz, 3},
	{YudBeisTammuz, calendar.Tammuz, 12},
	{ChofAv, calendar.Av, 20},
	{ChaiElul, calendar.Elul, 18},
}

func chabadDays(year *calendar.Year) []model.Event {
	return resolveAll(year, chabadCatalog, func(id string) model.Label {
		return model.ChabadHoliday{ID: id}
	})
}

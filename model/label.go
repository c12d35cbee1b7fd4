package model

import (
	"fmt"

	"github.com/robertmeta/heca-cli/calendar"
	"github.com/robertmeta/heca-cli/cycles"
)

// LabelKind enumerates the variants of Label.
type LabelKind int

const (
	KindTorahReading LabelKind = iota
	KindMinorHoliday
	KindCustomHoliday
	KindStudy
	KindIsraeliHoliday
	KindChabadHoliday
	KindShabbosMevarchim
)

var labelKindNames = []string{
	"TorahReading",
	"MinorHoliday",
	"CustomHoliday",
	"Study",
	"IsraeliHoliday",
	"ChabadHoliday",
	"ShabbosMevarchim",
}

func (k LabelKind) String() string {
	if k >= 0 && int(k) < len(labelKindNames) {
		return labelKindNames[k]
	}
	return fmt.Sprintf("LabelKind(%d)", int(k))
}

// Label names an event. The variants are the types in this file; consumers
// switch on the concrete type and panic on anything else.
type Label interface {
	Kind() LabelKind
	isLabel()
}

// TorahReading is a Yom Tov, Chol, weekly or special reading.
type TorahReading struct {
	Reading calendar.Reading
}

// MinorHoliday is a minor observance or a day of the Omer, e.g. "LagBaomer"
// or "Omer12".
type MinorHoliday struct {
	ID string
}

// Custom is a user-defined holiday.
type Custom struct {
	Holiday CustomHoliday
}

// Study is one day of a study cycle.
type Study struct {
	Unit cycles.Unit
}

// IsraeliHoliday is a day of the Israeli civil calendar, e.g. "YomHaAtzmaut".
type IsraeliHoliday struct {
	ID string
}

// ChabadHoliday is a Chabad day of note, e.g. "YudTesKislev".
type ChabadHoliday struct {
	ID string
}

// ShabbosMevarchim is the Shabbos on which the coming month is blessed.
type ShabbosMevarchim struct {
	Month calendar.Month
}

func (TorahReading) Kind() LabelKind     { return KindTorahReading }
func (MinorHoliday) Kind() LabelKind     { return KindMinorHoliday }
func (Custom) Kind() LabelKind           { return KindCustomHoliday }
func (Study) Kind() LabelKind            { return KindStudy }
func (IsraeliHoliday) Kind() LabelKind   { return KindIsraeliHoliday }
func (ChabadHoliday) Kind() LabelKind    { return KindChabadHoliday }
func (ShabbosMevarchim) Kind() LabelKind { return KindShabbosMevarchim }

func (TorahReading) isLabel()     {}
func (MinorHoliday) isLabel()     {}
func (Custom) isLabel()           {}
func (Study) isLabel()            {}
func (IsraeliHoliday) isLabel()   {}
func (ChabadHoliday) isLabel()    {}
func (ShabbosMevarchim) isLabel() {}

// StudyCycleOf returns the cycle a study unit belongs to.
func StudyCycleOf(u cycles.Unit) StudyCycle {
	switch u.(type) {
	case cycles.Daf:
		return DafYomi
	case cycles.Chapter:
		return RambamOneChapter
	case cycles.Chapters:
		return RambamThreeChapters
	case cycles.YerushalmiDaf:
		return YerushalmiYomi
	}
	panic(fmt.Sprintf("model: unhandled study unit %T", u))
}

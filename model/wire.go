package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// WireEvent is the serialized form of an Event, shared by the JSON and CBOR
// encoders.
type WireEvent struct {
	Day            time.Time  `json:"day" cbor:"day"`
	Name           WireLabel  `json:"name" cbor:"name"`
	CandleLighting WireCandle `json:"candle_lighting" cbor:"candle_lighting"`
}

// WireLabel tags a label value with its variant.
type WireLabel struct {
	Type  string `json:"type" cbor:"type"`
	Value any    `json:"value" cbor:"value"`
}

// WireCandle keeps all three candle-lighting states apart: not applicable,
// applicable without a time, applicable with a time.
type WireCandle struct {
	Applicable bool       `json:"applicable" cbor:"applicable"`
	Time       *time.Time `json:"time,omitempty" cbor:"time,omitempty"`
}

type wireCustom struct {
	Name      string `json:"name" cbor:"name"`
	Printable string `json:"printable" cbor:"printable"`
}

// Wire converts the event to its serialized form.
func (e Event) Wire() WireEvent {
	w := WireEvent{
		Day:            e.Day,
		Name:           WireLabelOf(e.Name),
		CandleLighting: WireCandle{Applicable: e.CandleLighting.Applicable()},
	}
	if t, ok := e.CandleLighting.Time(); ok {
		w.CandleLighting.Time = &t
	}
	return w
}

// WireLabelOf converts a label to its tagged form.
func WireLabelOf(l Label) WireLabel {
	switch v := l.(type) {
	case TorahReading:
		return WireLabel{Type: v.Kind().String(), Value: v.Reading}
	case MinorHoliday:
		return WireLabel{Type: v.Kind().String(), Value: v.ID}
	case Custom:
		return WireLabel{Type: v.Kind().String(), Value: wireCustom{Name: v.Holiday.Name, Printable: v.Holiday.Printable}}
	case Study:
		return WireLabel{Type: StudyCycleOf(v.Unit).String(), Value: v.Unit}
	case IsraeliHoliday:
		return WireLabel{Type: v.Kind().String(), Value: v.ID}
	case ChabadHoliday:
		return WireLabel{Type: v.Kind().String(), Value: v.ID}
	case ShabbosMevarchim:
		return WireLabel{Type: v.Kind().String(), Value: v.Month}
	}
	panic(fmt.Sprintf("model: unhandled label %T", l))
}

// MarshalJSON encodes the event in its wire form.
func (e Event) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.Wire())
}

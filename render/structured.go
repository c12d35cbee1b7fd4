package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"

	"github.com/robertmeta/heca-cli/model"
)

// cborMode is Core Deterministic Encoding: the same list always produces the
// same bytes. Text marshalers (months, categories, locations) encode as
// strings and times as RFC 3339 strings, matching the JSON output.
var cborMode = func() cbor.EncMode {
	opts := cbor.CoreDetEncOptions()
	opts.TextMarshaler = cbor.TextMarshalerTextString
	opts.Time = cbor.TimeRFC3339
	mode, err := opts.EncMode()
	if err != nil {
		panic("render: CBOR encoder initialization failed: " + err.Error())
	}
	return mode
}()

func wire(events []model.Event) []model.WireEvent {
	out := make([]model.WireEvent, len(events))
	for i, e := range events {
		out[i] = e.Wire()
	}
	return out
}

// JSON writes the events as an indented JSON array.
func JSON(w io.Writer, events []model.Event) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(wire(events)); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// CBOR writes the events as one CBOR array.
func CBOR(w io.Writer, events []model.Event) error {
	if err := cborMode.NewEncoder(w).Encode(wire(events)); err != nil {
		return fmt.Errorf("failed to encode CBOR: %w", err)
	}
	return nil
}

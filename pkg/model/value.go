package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Kind identifies which variant a Value holds.
type Kind int

const (
	KindEmpty Kind = iota
	KindText
	KindSerial
	KindInstant
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindSerial:
		return "serial"
	case KindInstant:
		return "instant"
	default:
		return "empty"
	}
}

// Value is a single spreadsheet cell as handed over by a reader: free text,
// a numeric day-count serial (fraction = time of day), or a native timestamp.
type Value struct {
	kind    Kind
	text    string
	serial  float64
	instant time.Time
}

// Empty returns the absent value.
func Empty() Value { return Value{} }

// Text wraps a textual cell.
func Text(s string) Value { return Value{kind: KindText, text: s} }

// Serial wraps a numeric cell.
func Serial(f float64) Value { return Value{kind: KindSerial, serial: f} }

// Instant wraps a native date/time cell.
func Instant(t time.Time) Value { return Value{kind: KindInstant, instant: t} }

func (v Value) Kind() Kind { return v.kind }

// IsBlank reports whether the value is empty or whitespace-only text.
func (v Value) IsBlank() bool {
	switch v.kind {
	case KindEmpty:
		return true
	case KindText:
		return strings.TrimSpace(v.text) == ""
	default:
		return false
	}
}

func (v Value) TextValue() (string, bool) { return v.text, v.kind == KindText }

func (v Value) SerialValue() (float64, bool) { return v.serial, v.kind == KindSerial }

func (v Value) InstantValue() (time.Time, bool) { return v.instant, v.kind == KindInstant }

// String renders the value the way a spreadsheet would show it unformatted.
func (v Value) String() string {
	switch v.kind {
	case KindText:
		return v.text
	case KindSerial:
		return strconv.FormatFloat(v.serial, 'f', -1, 64)
	case KindInstant:
		return v.instant.Format(time.RFC3339)
	default:
		return ""
	}
}

// FromCell converts a loosely typed cell (as decoded from JSON or an API
// response) into a Value.
func FromCell(cell interface{}) Value {
	switch c := cell.(type) {
	case nil:
		return Empty()
	case string:
		return Text(c)
	case float64:
		return Serial(c)
	case float32:
		return Serial(float64(c))
	case int:
		return Serial(float64(c))
	case int64:
		return Serial(float64(c))
	case json.Number:
		if f, err := c.Float64(); err == nil {
			return Serial(f)
		}
		return Text(c.String())
	case time.Time:
		return Instant(c)
	case Value:
		return c
	default:
		return Text(fmt.Sprint(c))
	}
}

// UnmarshalJSON maps strings to Text, numbers to Serial and null to Empty.
func (v *Value) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var raw interface{}
	if err := dec.Decode(&raw); err != nil {
		return fmt.Errorf("failed to decode cell value: %w", err)
	}
	*v = FromCell(raw)
	return nil
}

// MarshalJSON is the inverse of UnmarshalJSON; instants are written as RFC 3339 text.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindText:
		return json.Marshal(v.text)
	case KindSerial:
		return json.Marshal(v.serial)
	case KindInstant:
		return json.Marshal(v.instant.Format(time.RFC3339))
	default:
		return []byte("null"), nil
	}
}

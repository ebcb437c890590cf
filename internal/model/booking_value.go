package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// ValueKind tags how a booking column value is bound in SQL.
type ValueKind int

const (
	KindNull ValueKind = iota
	KindInteger
	KindBoolean
	KindString
)

func (k ValueKind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindInteger:
		return "integer"
	case KindBoolean:
		return "boolean"
	case KindString:
		return "string"
	default:
		return fmt.Sprintf("ValueKind(%d)", int(k))
	}
}

// BookingValue is a column value whose SQL type was decided when the request
// was decoded. Only the field matching Kind is meaningful.
type BookingValue struct {
	Kind ValueKind
	Int  int64
	Bool bool
	Str  string
}

// NullValue returns a Null value.
func NullValue() BookingValue { return BookingValue{Kind: KindNull} }

// IntValue returns an Integer value.
func IntValue(i int64) BookingValue { return BookingValue{Kind: KindInteger, Int: i} }

// BoolValue returns a Boolean value.
func BoolValue(b bool) BookingValue { return BookingValue{Kind: KindBoolean, Bool: b} }

// StringValue returns a String value.
func StringValue(s string) BookingValue { return BookingValue{Kind: KindString, Str: s} }

// ParseBookingValue classifies one raw JSON value. Integral numbers that fit
// int64 become integers; any other number keeps its literal text. Objects and
// arrays are kept as their compact JSON text.
func ParseBookingValue(raw json.RawMessage) (BookingValue, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return BookingValue{}, fmt.Errorf("empty value")
	}
	switch raw[0] {
	case 'n':
		if string(raw) != "null" {
			return BookingValue{}, fmt.Errorf("invalid literal %q", raw)
		}
		return NullValue(), nil
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(raw, &b); err != nil {
			return BookingValue{}, err
		}
		return BoolValue(b), nil
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return BookingValue{}, err
		}
		return StringValue(s), nil
	case '{', '[':
		var buf bytes.Buffer
		if err := json.Compact(&buf, raw); err != nil {
			return BookingValue{}, err
		}
		return StringValue(buf.String()), nil
	default:
		var n json.Number
		if err := json.Unmarshal(raw, &n); err != nil {
			return BookingValue{}, err
		}
		if i, err := strconv.ParseInt(n.String(), 10, 64); err == nil {
			return IntValue(i), nil
		}
		return StringValue(n.String()), nil
	}
}

// Arg returns the value to bind for a parameterized statement.
func (v BookingValue) Arg() interface{} {
	switch v.Kind {
	case KindInteger:
		return v.Int
	case KindBoolean:
		return v.Bool
	case KindString:
		return v.Str
	default:
		return nil
	}
}

// IsNull reports whether v is SQL NULL.
func (v BookingValue) IsNull() bool { return v.Kind == KindNull }

// IsEmpty reports whether v counts as "not set": null, false, zero, "" or "0".
func (v BookingValue) IsEmpty() bool {
	switch v.Kind {
	case KindNull:
		return true
	case KindBoolean:
		return !v.Bool
	case KindInteger:
		return v.Int == 0
	default:
		return v.Str == "" || v.Str == "0"
	}
}

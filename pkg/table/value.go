// Package table provides the in-memory row store for shipment batches:
// named, typed columns of equal length holding one record per shipment.
package table

import (
	"fmt"
	"time"
)

// Kind identifies what a Value holds.
type Kind int

// Value kinds.
const (
	// KindMissing marks a value that is absent in the source or could not
	// be parsed/derived by a cleaner.
	KindMissing Kind = iota
	KindString
	KindNumber
	KindTime
)

func (k Kind) String() string {
	switch k {
	case KindMissing:
		return "missing"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindTime:
		return "time"
	default:
		return "unknown"
	}
}

// Value is a single cell. Absence is represented explicitly rather than by a
// magic in-band value, so "empty string" and "missing" stay distinguishable.
type Value struct {
	kind Kind
	str  string
	num  float64
	ts   time.Time
}

// Missing returns the absent value.
func Missing() Value {
	return Value{kind: KindMissing}
}

// String returns a string value.
func String(s string) Value {
	return Value{kind: KindString, str: s}
}

// Number returns a numeric value.
func Number(f float64) Value {
	return Value{kind: KindNumber, num: f}
}

// Time returns a timestamp value.
func Time(t time.Time) Value {
	return Value{kind: KindTime, ts: t}
}

// Kind returns the value's kind.
func (v Value) Kind() Kind { return v.kind }

// IsMissing reports whether the value is absent.
func (v Value) IsMissing() bool { return v.kind == KindMissing }

// Str returns the string content and whether the value is a string.
func (v Value) Str() (string, bool) {
	return v.str, v.kind == KindString
}

// Num returns the numeric content and whether the value is a number.
func (v Value) Num() (float64, bool) {
	return v.num, v.kind == KindNumber
}

// Timestamp returns the time content and whether the value is a time.
func (v Value) Timestamp() (time.Time, bool) {
	return v.ts, v.kind == KindTime
}

// Equal reports whether two values have the same kind and content.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindMissing:
		return true
	case KindString:
		return v.str == o.str
	case KindNumber:
		return v.num == o.num
	case KindTime:
		return v.ts.Equal(o.ts)
	default:
		return false
	}
}

func (v Value) String() string {
	switch v.kind {
	case KindMissing:
		return "<missing>"
	case KindString:
		return v.str
	case KindNumber:
		return fmt.Sprintf("%g", v.num)
	case KindTime:
		return v.ts.Format("2006-01-02 15:04:05")
	default:
		return "<unknown>"
	}
}

package featgo

import (
	"reflect"

	"golang.org/x/exp/constraints"
)

// Kind identifies which of the three repeated value lists a Feature holds.
type Kind uint8

const (
	// KindNone marks a feature that holds no list yet.
	KindNone Kind = iota
	// KindInt64 marks a feature holding int64 values.
	KindInt64
	// KindFloat marks a feature holding float32 values.
	KindFloat
	// KindBytes marks a feature holding byte-string values.
	KindBytes
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindInt64:
		return "int64"
	case KindFloat:
		return "float"
	case KindBytes:
		return "bytes"
	default:
		return "invalid"
	}
}

// Int64Value matches any integral type. All widths store as int64.
type Int64Value interface {
	constraints.Integer
}

// FloatValue matches any floating-point type. Values store as float32.
type FloatValue interface {
	constraints.Float
}

// BytesValue matches string-like types. Each value stores as an owned byte
// buffer.
type BytesValue interface {
	~string | ~[]byte
}

// Value is the full set of scalar types a feature list can be built from.
type Value interface {
	Int64Value | FloatValue | BytesValue
}

// KindOf resolves the canonical storage kind for a value type: integral
// types map to KindInt64, floating-point types to KindFloat, string-like
// types to KindBytes. Builtin types resolve through a type switch; named
// types take a reflection fallback, so new value types need no caller-side
// dispatch code.
func KindOf[T Value]() Kind {
	var zero T
	switch any(zero).(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, uintptr:
		return KindInt64
	case float32, float64:
		return KindFloat
	case string, []byte:
		return KindBytes
	}

	switch reflect.TypeFor[T]().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return KindInt64
	case reflect.Float32, reflect.Float64:
		return KindFloat
	case reflect.String, reflect.Slice:
		// The only slice the constraint admits is ~[]byte.
		return KindBytes
	default:
		return KindNone
	}
}

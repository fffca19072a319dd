package featgo

import (
	"bytes"
	"reflect"
)

// Elementwise conversions used by the bulk copier. Builtin types convert
// through a type switch; named types satisfying the constraint take the
// reflection path. Each conversion produces a value owned by the feature.

func toInt64[T Value](v T) int64 {
	switch x := any(v).(type) {
	case int:
		return int64(x)
	case int8:
		return int64(x)
	case int16:
		return int64(x)
	case int32:
		return int64(x)
	case int64:
		return x
	case uint:
		return int64(x)
	case uint8:
		return int64(x)
	case uint16:
		return int64(x)
	case uint32:
		return int64(x)
	case uint64:
		return int64(x)
	case uintptr:
		return int64(x)
	}
	rv := reflect.ValueOf(v)
	if rv.CanUint() {
		return int64(rv.Uint())
	}
	return rv.Int()
}

func toFloat32[T Value](v T) float32 {
	switch x := any(v).(type) {
	case float32:
		return x
	case float64:
		return float32(x)
	}
	return float32(reflect.ValueOf(v).Float())
}

// toBytes copies the source into a buffer the feature owns: strings convert
// with one copy, byte slices are cloned so later caller mutations cannot
// leak into the record.
func toBytes[T Value](v T) []byte {
	switch x := any(v).(type) {
	case string:
		return []byte(x)
	case []byte:
		return bytes.Clone(x)
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.String {
		return []byte(rv.String())
	}
	return bytes.Clone(rv.Bytes())
}

package featgo

// Feature is a named value container holding at most one repeated value
// list at a time: int64s, floats, or byte strings. The active kind and the
// populated list always agree; switching kinds replaces the discriminant
// and the payload in one update, so readers never observe two populated
// lists.
//
// The zero value is an empty feature with no active kind.
type Feature struct {
	kind   Kind
	int64s []int64
	floats []float32
	bytes  [][]byte
}

// Kind returns the active kind, KindNone when nothing was stored yet.
func (f *Feature) Kind() Kind { return f.kind }

// Len returns the number of values in the active list.
func (f *Feature) Len() int {
	switch f.kind {
	case KindInt64:
		return len(f.int64s)
	case KindFloat:
		return len(f.floats)
	case KindBytes:
		return len(f.bytes)
	default:
		return 0
	}
}

// Int64s returns the int64 list for reading. The view performs no
// discriminant check or correction: when the feature holds another kind the
// result is nil, because only the active kind's storage is ever populated.
func (f *Feature) Int64s() []int64 { return f.int64s }

// Floats returns the float32 list for reading. See Int64s for the view
// semantics.
func (f *Feature) Floats() []float32 { return f.floats }

// Bytes returns the byte-string list for reading. See Int64s for the view
// semantics. The returned buffers are owned by the feature.
func (f *Feature) Bytes() [][]byte { return f.bytes }

// switchKind makes k the active kind. Any other kind's payload is dropped
// together with the discriminant update; the operation is constant time.
func (f *Feature) switchKind(k Kind) {
	if f.kind == k {
		return
	}
	f.kind = k
	f.int64s, f.floats, f.bytes = nil, nil, nil
}

// MutableInt64s switches the feature to KindInt64, discarding any float or
// bytes payload, and returns the storage for mutation. It never fails; the
// silent kind switch is the exclusive-choice rule at work.
func (f *Feature) MutableInt64s() *[]int64 {
	f.switchKind(KindInt64)
	return &f.int64s
}

// MutableFloats switches the feature to KindFloat, discarding any other
// payload, and returns the storage for mutation.
func (f *Feature) MutableFloats() *[]float32 {
	f.switchKind(KindFloat)
	return &f.floats
}

// MutableBytes switches the feature to KindBytes, discarding any other
// payload, and returns the storage for mutation. Buffers appended here are
// owned by the feature; callers must not retain aliases they mutate.
func (f *Feature) MutableBytes() *[][]byte {
	f.switchKind(KindBytes)
	return &f.bytes
}

// ClearList empties k's storage only. The active kind marker is left alone:
// clearing the active kind leaves an empty list of that kind, clearing an
// inactive kind is a no-op since inactive storage holds no data.
func (f *Feature) ClearList(k Kind) {
	switch k {
	case KindInt64:
		f.int64s = nil
	case KindFloat:
		f.floats = nil
	case KindBytes:
		f.bytes = nil
	}
}

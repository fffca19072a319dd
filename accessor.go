package featgo

import "fmt"

// GetFeature returns the feature stored under key. It fails with
// ErrNoSuchFeature when the key is absent and never creates one.
func GetFeature(key string, rec Record) (*Feature, error) {
	f, ok := rec.FeatureMap().Get(key)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoSuchFeature, key)
	}
	return f, nil
}

// MutableFeature returns the feature stored under key, inserting a new
// empty feature first when the key is absent. It never fails.
func MutableFeature(key string, rec Record) *Feature {
	return rec.FeatureMap().GetOrCreate(key)
}

// HasFeature reports whether a feature with the given key exists. With a
// trailing kind the predicate additionally requires the feature's active
// kind to match:
//
//	HasFeature("tag", ex)                   // key present?
//	HasFeature("tag", ex, featgo.KindInt64) // present and int64-valued?
//
// Pass at most one kind: a feature holds a single active kind, so two
// distinct kinds can never both match and the call returns false.
// It is read-only and never creates anything.
func HasFeature(key string, rec Record, kind ...Kind) bool {
	f, ok := rec.FeatureMap().Get(key)
	if !ok {
		return false
	}
	for _, k := range kind {
		if f.Kind() != k {
			return false
		}
	}
	return true
}

// GetFeatureList returns the feature list stored under key. It fails with
// ErrNoSuchFeatureList when the key is absent and never creates one.
func GetFeatureList(key string, se *SequenceExample) (*FeatureList, error) {
	fl, ok := se.lists[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoSuchFeatureList, key)
	}
	return fl, nil
}

// MutableFeatureList returns the feature list stored under key, inserting a
// new empty list first when the key is absent. Extend the list with Add and
// populate each element independently.
func MutableFeatureList(key string, se *SequenceExample) *FeatureList {
	if fl, ok := se.lists[key]; ok {
		return fl
	}
	if se.lists == nil {
		se.lists = make(map[string]*FeatureList)
	}
	fl := &FeatureList{}
	se.lists[key] = fl
	return fl
}

// HasFeatureList reports whether a feature list with the given key exists.
// A list carries no single kind, so there is no kind-checking variant.
func HasFeatureList(key string, se *SequenceExample) bool {
	_, ok := se.lists[key]
	return ok
}

// Int64Values returns the int64 values stored under key. It fails with
// ErrNoSuchFeature when the key is absent and with *KindMismatchError when
// the feature holds a different kind. A feature that exists but was never
// written reads as an empty list.
func Int64Values(key string, rec Record) ([]int64, error) {
	f, err := GetFeature(key, rec)
	if err != nil {
		return nil, err
	}
	if err := checkKind(key, f, KindInt64); err != nil {
		return nil, err
	}
	return f.Int64s(), nil
}

// FloatValues returns the float32 values stored under key. See Int64Values
// for the failure modes.
func FloatValues(key string, rec Record) ([]float32, error) {
	f, err := GetFeature(key, rec)
	if err != nil {
		return nil, err
	}
	if err := checkKind(key, f, KindFloat); err != nil {
		return nil, err
	}
	return f.Floats(), nil
}

// BytesValues returns the byte-string values stored under key. See
// Int64Values for the failure modes. The returned buffers are owned by the
// record.
func BytesValues(key string, rec Record) ([][]byte, error) {
	f, err := GetFeature(key, rec)
	if err != nil {
		return nil, err
	}
	if err := checkKind(key, f, KindBytes); err != nil {
		return nil, err
	}
	return f.Bytes(), nil
}

func checkKind(key string, f *Feature, want Kind) error {
	if f.kind == want || f.kind == KindNone {
		return nil
	}
	return &KindMismatchError{Key: key, Requested: want, Actual: f.kind}
}

// ExampleFeature returns the feature stored under key, creating it when
// absent.
//
// Deprecated: Use MutableFeature instead.
func ExampleFeature(key string, ex *Example) *Feature {
	return MutableFeature(key, ex)
}

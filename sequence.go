package featgo

import "iter"

// FeatureList is an ordered sequence of features representing one key's
// sequence axis, for example time steps. Order is significant and is the
// order in which elements were added.
type FeatureList struct {
	features []*Feature
}

// Len returns the number of features in the list.
func (fl *FeatureList) Len() int { return len(fl.features) }

// Feature returns the i-th element. Like a slice index, it panics when i is
// out of range.
func (fl *FeatureList) Feature(i int) *Feature { return fl.features[i] }

// Add appends a new empty feature to the list and returns it for the caller
// to populate independently.
func (fl *FeatureList) Add() *Feature {
	f := &Feature{}
	fl.features = append(fl.features, f)
	return f
}

// All iterates the features in add order.
func (fl *FeatureList) All() iter.Seq[*Feature] {
	return func(yield func(*Feature) bool) {
		for _, f := range fl.features {
			if !yield(f) {
				return
			}
		}
	}
}

// SequenceExample couples a context feature map with keyed, ordered feature
// lists. The outer key mapping is unordered; each list's internal order is
// significant. The zero value is an empty record.
type SequenceExample struct {
	context Features
	lists   map[string]*FeatureList
}

// Context returns the context feature map. It satisfies Record, so every
// key-based accessor works on it directly.
func (se *SequenceExample) Context() *Features { return &se.context }

// NumFeatureLists returns the number of feature lists.
func (se *SequenceExample) NumFeatureLists() int { return len(se.lists) }

// FeatureLists iterates over all key/list pairs in unspecified order.
func (se *SequenceExample) FeatureLists() iter.Seq2[string, *FeatureList] {
	return func(yield func(string, *FeatureList) bool) {
		for k, fl := range se.lists {
			if !yield(k, fl) {
				return
			}
		}
	}
}

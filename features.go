package featgo

import "iter"

// Features is a key-indexed mapping from string key to Feature. Keys are
// unique; insertion order is not significant. The zero value is ready to
// use: reads on an empty map simply miss, the underlying map is allocated
// on first write.
type Features struct {
	m map[string]*Feature
}

// Len returns the number of features in the map.
func (fs *Features) Len() int { return len(fs.m) }

// Get returns the feature stored under key, if any. It never creates one.
func (fs *Features) Get(key string) (*Feature, bool) {
	f, ok := fs.m[key]
	return f, ok
}

// GetOrCreate returns the feature stored under key, inserting a new empty
// feature first when the key is absent.
func (fs *Features) GetOrCreate(key string) *Feature {
	if f, ok := fs.m[key]; ok {
		return f
	}
	if fs.m == nil {
		fs.m = make(map[string]*Feature)
	}
	f := &Feature{}
	fs.m[key] = f
	return f
}

// All iterates over all key/feature pairs in unspecified order.
func (fs *Features) All() iter.Seq2[string, *Feature] {
	return func(yield func(string, *Feature) bool) {
		for k, f := range fs.m {
			if !yield(k, f) {
				return
			}
		}
	}
}

// FeatureMap implements Record.
func (fs *Features) FeatureMap() *Features { return fs }

// Example wraps exactly one feature map. The zero value is an empty record.
type Example struct {
	features Features
}

// FeatureMap implements Record.
func (e *Example) FeatureMap() *Features { return &e.features }

// Record is any container exposing a feature map: a bare *Features, an
// *Example wrapping one, or a SequenceExample context. Accessors resolve
// the map through this single level of delegation.
type Record interface {
	FeatureMap() *Features
}

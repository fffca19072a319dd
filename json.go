package featgo

import (
	"encoding/json"
	"errors"
	"fmt"
)

// JSON forms, intended for debugging and lightweight interchange. A feature
// encodes as an object holding exactly one list, keyed by kind:
//
//	{"int64":[1,2,3]}  {"float":[4,5]}  {"bytes":["bG9yZW0="]}
//
// A feature with no active kind encodes as {}. An active but empty list
// still encodes as its kind ({"int64":[]}), so kinds survive round trips.
// Byte values use base64, the encoding/json default for []byte.

type featureJSON struct {
	Int64s *[]int64   `json:"int64,omitempty"`
	Floats *[]float32 `json:"float,omitempty"`
	Bytes  *[][]byte  `json:"bytes,omitempty"`
}

// MarshalJSON implements json.Marshaler.
func (f *Feature) MarshalJSON() ([]byte, error) {
	var aux featureJSON
	switch f.kind {
	case KindInt64:
		vs := f.int64s
		if vs == nil {
			vs = []int64{}
		}
		aux.Int64s = &vs
	case KindFloat:
		vs := f.floats
		if vs == nil {
			vs = []float32{}
		}
		aux.Floats = &vs
	case KindBytes:
		vs := f.bytes
		if vs == nil {
			vs = [][]byte{}
		}
		aux.Bytes = &vs
	}
	return json.Marshal(aux)
}

// UnmarshalJSON implements json.Unmarshaler.
func (f *Feature) UnmarshalJSON(data []byte) error {
	var aux featureJSON
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	lists := 0
	for _, present := range []bool{aux.Int64s != nil, aux.Floats != nil, aux.Bytes != nil} {
		if present {
			lists++
		}
	}
	if lists > 1 {
		return errors.New("feature encodes more than one kind")
	}
	*f = Feature{}
	switch {
	case aux.Int64s != nil:
		f.kind = KindInt64
		f.int64s = *aux.Int64s
	case aux.Floats != nil:
		f.kind = KindFloat
		f.floats = *aux.Floats
	case aux.Bytes != nil:
		f.kind = KindBytes
		f.bytes = *aux.Bytes
	}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (fs *Features) MarshalJSON() ([]byte, error) {
	if fs.m == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(fs.m)
}

// UnmarshalJSON implements json.Unmarshaler.
func (fs *Features) UnmarshalJSON(data []byte) error {
	var m map[string]*Feature
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	for key, f := range m {
		if f == nil {
			return fmt.Errorf("feature %q is null", key)
		}
	}
	fs.m = m
	return nil
}

type exampleJSON struct {
	Features *Features `json:"features,omitempty"`
}

// MarshalJSON implements json.Marshaler.
func (e *Example) MarshalJSON() ([]byte, error) {
	aux := exampleJSON{}
	if e.features.Len() > 0 {
		aux.Features = &e.features
	}
	return json.Marshal(aux)
}

// UnmarshalJSON implements json.Unmarshaler.
func (e *Example) UnmarshalJSON(data []byte) error {
	var aux exampleJSON
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	e.features = Features{}
	if aux.Features != nil {
		e.features = *aux.Features
	}
	return nil
}

// MarshalJSON implements json.Marshaler. A feature list encodes as a JSON
// array in add order.
func (fl *FeatureList) MarshalJSON() ([]byte, error) {
	if fl.features == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(fl.features)
}

// UnmarshalJSON implements json.Unmarshaler.
func (fl *FeatureList) UnmarshalJSON(data []byte) error {
	var features []*Feature
	if err := json.Unmarshal(data, &features); err != nil {
		return err
	}
	for i, f := range features {
		if f == nil {
			return fmt.Errorf("feature list element %d is null", i)
		}
	}
	fl.features = features
	return nil
}

type sequenceExampleJSON struct {
	Context      *Features               `json:"context,omitempty"`
	FeatureLists map[string]*FeatureList `json:"featureLists,omitempty"`
}

// MarshalJSON implements json.Marshaler.
func (se *SequenceExample) MarshalJSON() ([]byte, error) {
	aux := sequenceExampleJSON{FeatureLists: se.lists}
	if se.context.Len() > 0 {
		aux.Context = &se.context
	}
	return json.Marshal(aux)
}

// UnmarshalJSON implements json.Unmarshaler.
func (se *SequenceExample) UnmarshalJSON(data []byte) error {
	var aux sequenceExampleJSON
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	for key, fl := range aux.FeatureLists {
		if fl == nil {
			return fmt.Errorf("feature list %q is null", key)
		}
	}
	*se = SequenceExample{lists: aux.FeatureLists}
	if aux.Context != nil {
		se.context = *aux.Context
	}
	return nil
}

// Package featgo provides lightweight, type-safe accessors for feature
// records: string-keyed maps of repeated int64, float, or bytes values with
// exclusive-choice (oneof) semantics per key.
//
// A Feature holds at most one of the three value lists at a time. An Example
// wraps a keyed map of features; a SequenceExample adds ordered feature
// lists for sequence-valued data. Accessing the raw structures directly
// means switching on the active kind at every call site. Featgo hides that
// dispatch behind a small generic API.
//
// # Quick Start
//
// Write values under a key, creating the feature on first touch:
//
//	var ex featgo.Example
//	featgo.SetTo("tag", &ex, 1, 2, 3)
//	featgo.AppendTo("tag", &ex, 4)
//
// Read them back, typed:
//
//	vals, err := featgo.Int64Values("tag", &ex) // [1 2 3 4]
//
// The storage kind is resolved from the value type: any integral type
// stores as int64, any floating-point type as float32, and strings or byte
// slices as owned byte buffers. Named types work without extra code:
//
//	type Label string
//	featgo.SetTo("labels", &ex, Label("cat"), Label("dog"))
//
// # Oneof Semantics
//
// Writing one kind silently discards any other kind previously stored under
// the same key:
//
//	featgo.SetTo("tag", &ex, 1.5)        // "tag" now holds floats
//	featgo.Int64Values("tag", &ex)       // *KindMismatchError
//
// This asymmetry is deliberate: writes never fail, while typed reads report
// a foreign kind as a caller bug. Guard uncertain reads with
// HasFeature(key, rec, kind).
//
// # Sequences
//
// SequenceExample couples a context feature map with keyed, ordered feature
// lists. Each list element is a full Feature populated independently:
//
//	var se featgo.SequenceExample
//	images := featgo.MutableFeatureList("images", &se)
//	featgo.Append(images.Add(), 4.0)
//	featgo.Append(images.Add(), 5.0, 3.0)
//
// The context map behaves like any other record:
//
//	featgo.SetTo("id", se.Context(), 42)
//
// # Lookup Rules
//
// Read-only lookups fail on missing keys; mutable lookups create on first
// touch:
//
//	f, err := featgo.GetFeature("tag", &ex)   // ErrNoSuchFeature if absent
//	f := featgo.MutableFeature("tag", &ex)    // never fails
//
// # Concurrency
//
// All operations are synchronous in-memory transformations. Records are not
// safe for concurrent mutation; readers may run concurrently on a record
// that is not being mutated. Callers own the locking discipline.
package featgo

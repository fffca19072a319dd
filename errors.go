package featgo

import (
	"errors"
	"fmt"
)

var (
	// ErrNoSuchFeature is returned by read-only lookups for keys that were
	// never written. Mutable lookups never fail; they create instead.
	ErrNoSuchFeature = errors.New("no such feature")

	// ErrNoSuchFeatureList is returned by read-only feature list lookups
	// for keys that were never written.
	ErrNoSuchFeatureList = errors.New("no such feature list")
)

// KindMismatchError indicates a typed read of a feature whose active kind
// differs from the requested one. This is a caller bug rather than a
// recoverable condition: guard reads with HasFeature(key, rec, kind) when
// the stored kind is uncertain. Writes never produce this error; they
// switch the kind instead.
type KindMismatchError struct {
	Key       string
	Requested Kind
	Actual    Kind
}

func (e *KindMismatchError) Error() string {
	return fmt.Sprintf("feature %q holds %s values, not %s", e.Key, e.Actual, e.Requested)
}

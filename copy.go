package featgo

import (
	"iter"
	"slices"
)

// Append copies values into f. The storage kind is resolved from T, so the
// call switches f to that kind first: a payload of any other kind is
// discarded, even when values is empty. Each element is converted on copy,
// never aliased; see the package documentation for the conversion rules.
func Append[T Value](f *Feature, values ...T) {
	switch KindOf[T]() {
	case KindInt64:
		dst := f.MutableInt64s()
		*dst = slices.Grow(*dst, len(values))
		for _, v := range values {
			*dst = append(*dst, toInt64(v))
		}
	case KindFloat:
		dst := f.MutableFloats()
		*dst = slices.Grow(*dst, len(values))
		for _, v := range values {
			*dst = append(*dst, toFloat32(v))
		}
	case KindBytes:
		dst := f.MutableBytes()
		*dst = slices.Grow(*dst, len(values))
		for _, v := range values {
			*dst = append(*dst, toBytes(v))
		}
	}
}

// AppendSeq copies every value produced by seq into f, in sequence order.
// The element count is not known up front, so no capacity is reserved.
// Like Append, the call switches f to T's kind even for an empty sequence.
func AppendSeq[T Value](f *Feature, seq iter.Seq[T]) {
	switch KindOf[T]() {
	case KindInt64:
		dst := f.MutableInt64s()
		for v := range seq {
			*dst = append(*dst, toInt64(v))
		}
	case KindFloat:
		dst := f.MutableFloats()
		for v := range seq {
			*dst = append(*dst, toFloat32(v))
		}
	case KindBytes:
		dst := f.MutableBytes()
		for v := range seq {
			*dst = append(*dst, toBytes(v))
		}
	}
}

// Set replaces f's values: it clears the list for T's kind, then appends.
// When f holds a different kind, that payload is already discarded by the
// kind switch inside Append, independent of the explicit clear.
func Set[T Value](f *Feature, values ...T) {
	f.ClearList(KindOf[T]())
	Append(f, values...)
}

// SetSeq replaces f's values with the values produced by seq.
func SetSeq[T Value](f *Feature, seq iter.Seq[T]) {
	f.ClearList(KindOf[T]())
	AppendSeq(f, seq)
}

// AppendTo appends values to the feature stored under key, creating the
// feature when the key is absent.
func AppendTo[T Value](key string, rec Record, values ...T) {
	Append(MutableFeature(key, rec), values...)
}

// AppendSeqTo appends the values produced by seq to the feature stored
// under key, creating the feature when the key is absent.
func AppendSeqTo[T Value](key string, rec Record, seq iter.Seq[T]) {
	AppendSeq(MutableFeature(key, rec), seq)
}

// SetTo replaces the values of the feature stored under key, creating the
// feature when the key is absent.
func SetTo[T Value](key string, rec Record, values ...T) {
	Set(MutableFeature(key, rec), values...)
}

// SetSeqTo replaces the values of the feature stored under key with the
// values produced by seq, creating the feature when the key is absent.
func SetSeqTo[T Value](key string, rec Record, seq iter.Seq[T]) {
	SetSeq(MutableFeature(key, rec), seq)
}

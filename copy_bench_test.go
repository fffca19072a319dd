package featgo_test

import (
	"testing"

	"github.com/hupe1980/featgo"
)

func BenchmarkSetInt64(b *testing.B) {
	vals := make([]int64, 128)
	for i := range vals {
		vals[i] = int64(i)
	}

	var f featgo.Feature
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		featgo.Set(&f, vals...)
	}
}

func BenchmarkSetBytes(b *testing.B) {
	vals := make([]string, 64)
	for i := range vals {
		vals[i] = "lorem ipsum dolor sit amet"
	}

	var f featgo.Feature
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		featgo.Set(&f, vals...)
	}
}

func BenchmarkAppendToNamedType(b *testing.B) {
	type id uint32
	vals := make([]id, 128)
	for i := range vals {
		vals[i] = id(i)
	}

	var ex featgo.Example
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		featgo.SetTo("ids", &ex, vals...)
	}
}

package featgo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/featgo"
)

func TestFeatureListOrdering(t *testing.T) {
	var se featgo.SequenceExample
	steps := featgo.MutableFeatureList("steps", &se)

	for i := range 10 {
		featgo.Append(steps.Add(), int64(i))
	}

	require.Equal(t, 10, steps.Len())
	i := 0
	for f := range steps.All() {
		assert.Equal(t, []int64{int64(i)}, f.Int64s())
		i++
	}
	assert.Equal(t, 10, i)
}

func TestSequenceScenario(t *testing.T) {
	// Two frames under one key, each with its own float list.
	var se featgo.SequenceExample
	images := featgo.MutableFeatureList("images", &se)
	featgo.Append(images.Add(), 4.0)
	featgo.Append(images.Add(), 5.0, 3.0)

	got, err := featgo.GetFeatureList("images", &se)
	require.NoError(t, err)
	require.Equal(t, 2, got.Len())
	assert.Equal(t, []float32{4}, got.Feature(0).Floats())
	assert.Equal(t, []float32{5, 3}, got.Feature(1).Floats())
}

func TestFeatureListAddIndependence(t *testing.T) {
	var fl featgo.FeatureList
	a := fl.Add()
	b := fl.Add()
	featgo.Set(a, 1)
	featgo.Set(b, "text")

	assert.Equal(t, featgo.KindInt64, fl.Feature(0).Kind())
	assert.Equal(t, featgo.KindBytes, fl.Feature(1).Kind())
}

func TestSequenceExampleContextIsIndependent(t *testing.T) {
	var se featgo.SequenceExample
	featgo.SetTo("id", se.Context(), 42)
	featgo.MutableFeatureList("id", &se)

	// Context features and feature lists live in separate namespaces.
	assert.True(t, featgo.HasFeature("id", se.Context()))
	assert.True(t, featgo.HasFeatureList("id", &se))
	vals, err := featgo.Int64Values("id", se.Context())
	require.NoError(t, err)
	assert.Equal(t, []int64{42}, vals)
}

func TestFeatureListsIteration(t *testing.T) {
	var se featgo.SequenceExample
	featgo.MutableFeatureList("a", &se)
	featgo.MutableFeatureList("b", &se)

	seen := map[string]bool{}
	for key := range se.FeatureLists() {
		seen[key] = true
	}
	assert.Equal(t, map[string]bool{"a": true, "b": true}, seen)
}

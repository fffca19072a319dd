package featgo_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/featgo"
)

func TestFeatureJSON(t *testing.T) {
	t.Run("int64", func(t *testing.T) {
		var f featgo.Feature
		featgo.Set(&f, 1, 2, 3)
		data, err := json.Marshal(&f)
		require.NoError(t, err)
		assert.JSONEq(t, `{"int64":[1,2,3]}`, string(data))
	})

	t.Run("bytes use base64", func(t *testing.T) {
		var f featgo.Feature
		featgo.Set(&f, "hi")
		data, err := json.Marshal(&f)
		require.NoError(t, err)
		assert.JSONEq(t, `{"bytes":["aGk="]}`, string(data))
	})

	t.Run("no active kind", func(t *testing.T) {
		var f featgo.Feature
		data, err := json.Marshal(&f)
		require.NoError(t, err)
		assert.Equal(t, `{}`, string(data))
	})

	t.Run("active empty list keeps its kind", func(t *testing.T) {
		var f featgo.Feature
		featgo.Append[float32](&f)
		data, err := json.Marshal(&f)
		require.NoError(t, err)
		assert.JSONEq(t, `{"float":[]}`, string(data))

		var back featgo.Feature
		require.NoError(t, json.Unmarshal(data, &back))
		assert.Equal(t, featgo.KindFloat, back.Kind())
		assert.Equal(t, 0, back.Len())
	})

	t.Run("rejects more than one kind", func(t *testing.T) {
		var f featgo.Feature
		err := json.Unmarshal([]byte(`{"int64":[1],"float":[2]}`), &f)
		assert.Error(t, err)
	})
}

func TestExampleJSONRoundTrip(t *testing.T) {
	var ex featgo.Example
	featgo.SetTo("tag", &ex, 1, 2, 3)
	featgo.SetTo("score", &ex, 0.5)
	featgo.SetTo("name", &ex, "lorem")

	data, err := json.Marshal(&ex)
	require.NoError(t, err)

	var back featgo.Example
	require.NoError(t, json.Unmarshal(data, &back))

	tags, err := featgo.Int64Values("tag", &back)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, tags)

	scores, err := featgo.FloatValues("score", &back)
	require.NoError(t, err)
	assert.Equal(t, []float32{0.5}, scores)

	names, err := featgo.BytesValues("name", &back)
	require.NoError(t, err)
	assert.Equal(t, [][]byte{[]byte("lorem")}, names)
}

func TestSequenceExampleJSONRoundTrip(t *testing.T) {
	var se featgo.SequenceExample
	featgo.SetTo("id", se.Context(), 42)
	images := featgo.MutableFeatureList("images", &se)
	featgo.Append(images.Add(), 4.0)
	featgo.Append(images.Add(), 5.0, 3.0)

	data, err := json.Marshal(&se)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"context":{"id":{"int64":[42]}},"featureLists":{"images":[{"float":[4]},{"float":[5,3]}]}}`,
		string(data))

	var back featgo.SequenceExample
	require.NoError(t, json.Unmarshal(data, &back))

	ids, err := featgo.Int64Values("id", back.Context())
	require.NoError(t, err)
	assert.Equal(t, []int64{42}, ids)

	fl, err := featgo.GetFeatureList("images", &back)
	require.NoError(t, err)
	require.Equal(t, 2, fl.Len())
	assert.Equal(t, []float32{4}, fl.Feature(0).Floats())
	assert.Equal(t, []float32{5, 3}, fl.Feature(1).Floats())
}

func TestJSONRejectsNullEntries(t *testing.T) {
	t.Run("null feature in map", func(t *testing.T) {
		var fs featgo.Features
		err := json.Unmarshal([]byte(`{"tag":null}`), &fs)
		assert.Error(t, err)
	})

	t.Run("null feature in example", func(t *testing.T) {
		var ex featgo.Example
		err := json.Unmarshal([]byte(`{"features":{"tag":null}}`), &ex)
		assert.Error(t, err)
	})

	t.Run("null feature list", func(t *testing.T) {
		var se featgo.SequenceExample
		err := json.Unmarshal([]byte(`{"featureLists":{"images":null}}`), &se)
		assert.Error(t, err)
	})

	t.Run("null feature list element", func(t *testing.T) {
		var fl featgo.FeatureList
		err := json.Unmarshal([]byte(`[{"int64":[1]},null]`), &fl)
		assert.Error(t, err)
	})
}

func TestEmptyRecordsJSON(t *testing.T) {
	var ex featgo.Example
	data, err := json.Marshal(&ex)
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(data))

	var fl featgo.FeatureList
	data, err = json.Marshal(&fl)
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(data))

	var se featgo.SequenceExample
	data, err = json.Marshal(&se)
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(data))
}

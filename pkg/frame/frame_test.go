/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: frame_test.go
Description: Tests for the feature frame and series types. Covers typed
column storage, column restriction, column binding, row index preservation,
and error handling for absent and mismatched columns.
*/

package frame

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSeriesTypes tests typed series construction and value access
func TestSeriesTypes(t *testing.T) {
	strs := NewStringSeries("text", []string{"a", "b"})
	assert.Equal(t, "text", strs.Name())
	assert.Equal(t, DtypeString, strs.Dtype())
	assert.False(t, strs.IsNumeric())
	assert.Equal(t, 2, strs.Len())
	assert.Equal(t, "b", strs.Str(1))

	ints := NewIntSeries("count", []float64{3, 7})
	assert.Equal(t, DtypeInt, ints.Dtype())
	assert.True(t, ints.IsNumeric())
	assert.Equal(t, float64(7), ints.Float(1))
	assert.Equal(t, "7", ints.Str(1))

	floats := NewFloatSeries("ratio", []float64{0.5})
	assert.Equal(t, DtypeFloat, floats.Dtype())
	assert.Equal(t, "0.5", floats.Str(0))
}

// TestSeriesCopyIsIndependent tests that copies do not share backing storage
func TestSeriesCopyIsIndependent(t *testing.T) {
	original := NewStringSeries("text", []string{"a", "b"})
	copied := original.Copy()
	copied.Strings()[0] = "changed"
	assert.Equal(t, "a", original.Str(0))
}

// TestFrameAddSeries tests column registration and shape validation
func TestFrameAddSeries(t *testing.T) {
	f := New(RangeIndex(2))
	require.NoError(t, f.AddSeries(NewStringSeries("text", []string{"a", "b"})))
	assert.Equal(t, 2, f.NumRows())
	assert.Equal(t, 1, f.NumCols())
	assert.True(t, f.Has("text"))

	// Length mismatch
	err := f.AddSeries(NewStringSeries("bad", []string{"only one"}))
	assert.Error(t, err)

	// Duplicate name
	err = f.AddSeries(NewStringSeries("text", []string{"x", "y"}))
	assert.Error(t, err)
}

// TestFrameSelect tests column restriction with order preservation
func TestFrameSelect(t *testing.T) {
	f := New(RangeIndex(2))
	require.NoError(t, f.AddSeries(NewStringSeries("a", []string{"1", "2"})))
	require.NoError(t, f.AddSeries(NewStringSeries("b", []string{"3", "4"})))
	require.NoError(t, f.AddSeries(NewStringSeries("c", []string{"5", "6"})))

	sub, err := f.Select([]string{"c", "a"})
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "a"}, sub.Columns())
	assert.Equal(t, f.Index(), sub.Index())

	_, err = f.Select([]string{"missing"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrColumnNotFound)
}

// TestFrameColumnBind tests binding columns of index-aligned frames
func TestFrameColumnBind(t *testing.T) {
	left := New(RangeIndex(2))
	require.NoError(t, left.AddSeries(NewIntSeries("x", []float64{1, 2})))

	right := New(RangeIndex(2))
	require.NoError(t, right.AddSeries(NewFloatSeries("y", []float64{0.1, 0.2})))

	bound, err := left.ColumnBind(right)
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, bound.Columns())
	assert.Equal(t, 2, bound.NumRows())

	// Row count mismatch
	short := New(RangeIndex(1))
	require.NoError(t, short.AddSeries(NewIntSeries("z", []float64{9})))
	_, err = left.ColumnBind(short)
	assert.Error(t, err)
}

// TestFrameCustomIndex tests that a non-range row index is preserved
func TestFrameCustomIndex(t *testing.T) {
	f := New([]int{10, 20, 30})
	require.NoError(t, f.AddSeries(NewStringSeries("text", []string{"a", "b", "c"})))

	sub, err := f.Select([]string{"text"})
	require.NoError(t, err)
	assert.Equal(t, []int{10, 20, 30}, sub.Index())

	copied := f.Copy()
	assert.Equal(t, []int{10, 20, 30}, copied.Index())
}

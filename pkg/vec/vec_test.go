package vec

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDot(t *testing.T) {
	tests := []struct {
		name string
		u, v []float64
		want float64
	}{
		{"1d", []float64{3}, []float64{-2}, -6},
		{"2d", []float64{1, 2}, []float64{3, 4}, 11},
		{"3d", []float64{1, 2, 3}, []float64{4, 5, 6}, 32},
		{"4d", []float64{1, 1, 1, 1}, []float64{1, 2, 3, 4}, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Dot(tt.u, tt.v)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDimensionMismatchRejected(t *testing.T) {
	u, v := []float64{1, 2}, []float64{1, 2, 3}

	_, err := Dot(u, v)
	assert.True(t, errors.Is(err, ErrDimensionMismatch))
	_, err = Add(u, v)
	assert.True(t, errors.Is(err, ErrDimensionMismatch))
	_, err = Sub(u, v)
	assert.True(t, errors.Is(err, ErrDimensionMismatch))
	_, err = Distance(u, v)
	assert.True(t, errors.Is(err, ErrDimensionMismatch))
	assert.True(t, errors.Is(AddInPlace(u, v), ErrDimensionMismatch))
	assert.True(t, errors.Is(SubInPlace(u, v), ErrDimensionMismatch))
	assert.Equal(t, []float64{1, 2}, u, "failed in-place op must not modify u")
}

func TestLength(t *testing.T) {
	assert.Equal(t, 25.0, SelfDot([]float64{3, 4}))
	assert.Equal(t, 5.0, Length([]float64{3, 4}))
	assert.Equal(t, 0.0, Length(nil))
	d, err := Distance([]float64{1, 1, 1}, []float64{1, 1, 3})
	require.NoError(t, err)
	assert.Equal(t, 2.0, d)
}

func TestCross(t *testing.T) {
	x, err := Cross([]float64{1, 0, 0}, []float64{0, 1, 0})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 1}, x, "x cross y is z")

	w, err := Cross([]float64{1, 2, 3}, []float64{4, 5, 6})
	require.NoError(t, err)
	assert.Equal(t, []float64{2*6 - 3*5, 3*4 - 1*6, 1*5 - 2*4}, w)

	_, err = Cross([]float64{1, 0}, []float64{0, 1})
	assert.True(t, errors.Is(err, ErrNotThreeDimensional))

	c := Cross3(V3{X: 0, Y: 1, Z: 0}, V3{X: 0, Y: 0, Z: 1})
	assert.Equal(t, V3{X: 1, Y: 0, Z: 0}, c)
}

func TestElementwise(t *testing.T) {
	u := []float64{1, 2, 3}
	v := []float64{4, 5, 6}

	sum, err := Add(u, v)
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 7, 9}, sum)

	diff, err := Sub(u, v)
	require.NoError(t, err)
	assert.Equal(t, []float64{-3, -3, -3}, diff)

	assert.Equal(t, []float64{2, 4, 6}, Scale(u, 2))
	assert.Equal(t, []float64{-1, -2, -3}, Negate(u))
	assert.Equal(t, []float64{1, 2, 3}, u, "allocating variants leave inputs alone")

	w := []float64{1, 2, 3}
	require.NoError(t, AddInPlace(w, v))
	assert.Equal(t, []float64{5, 7, 9}, w)
	require.NoError(t, SubInPlace(w, v))
	assert.Equal(t, []float64{1, 2, 3}, w)
	ScaleInPlace(w, 3)
	assert.Equal(t, []float64{3, 6, 9}, w)
	NegateInPlace(w)
	assert.Equal(t, []float64{-3, -6, -9}, w)
}

func TestNormalize(t *testing.T) {
	n, err := Normalize([]float64{0, 3, 4})
	require.NoError(t, err)
	assert.InDelta(t, 0.6, n[1], 1e-15)
	assert.InDelta(t, 0.8, n[2], 1e-15)
	assert.InDelta(t, 1, Length(n), 1e-15)

	_, err = Normalize([]float64{0, 0, 0})
	assert.True(t, errors.Is(err, ErrZeroVector))
}

func TestMaxMag(t *testing.T) {
	tests := []struct {
		name string
		u    []float64
		want int
	}{
		{"single", []float64{-7}, 0},
		{"negative wins", []float64{1, -5, 3}, 1},
		{"tie prefers first", []float64{2, -2, 2}, 0},
		{"tie between y and z", []float64{1, 3, -3}, 1},
		{"last", []float64{0, 0, 0, 9}, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MaxMag(tt.u)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := MaxMag(nil)
	assert.True(t, errors.Is(err, ErrEmptyVector))
}

func TestMinMax(t *testing.T) {
	i, err := Min([]float64{3, -1, -1, 4})
	require.NoError(t, err)
	assert.Equal(t, 1, i)
	i, err = Max([]float64{3, 4, -1, 4})
	require.NoError(t, err)
	assert.Equal(t, 1, i)

	_, err = Min(nil)
	assert.True(t, errors.Is(err, ErrEmptyVector))
	_, err = Max(nil)
	assert.True(t, errors.Is(err, ErrEmptyVector))
}

func TestSliceConversions(t *testing.T) {
	assert.Equal(t, V2{X: 1, Y: 2}, FromSlice2([]float64{1, 2}))
	assert.Equal(t, V3{X: 1, Y: 2, Z: 3}, FromSlice3([]float64{1, 2, 3}))
	assert.Equal(t, []float64{1, 2}, Slice2(V2{X: 1, Y: 2}))
	assert.Equal(t, []float64{1, 2, 3}, Slice3(V3{X: 1, Y: 2, Z: 3}))
	assert.Panics(t, func() { FromSlice2([]float64{1}) })
	assert.Panics(t, func() { FromSlice3([]float64{1, 2}) })

	assert.Equal(t, "(1,2.5)", String2(V2{X: 1, Y: 2.5}))
	assert.Equal(t, "(1,2,-3)", String3(V3{X: 1, Y: 2, Z: -3}))
}

package hyperplane

import (
	"math"
	"testing"

	"github.com/chazu/euclid/pkg/tolerance"
	"github.com/chazu/euclid/pkg/vec"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDoesNotNormalize(t *testing.T) {
	h, err := New(1, 3, 4)
	require.NoError(t, err)
	assert.Equal(t, 2, h.Dimension())
	assert.Equal(t, []float64{3, 4}, h.Normal())
	assert.Equal(t, 1.0, h.C())
	assert.Equal(t, 3.0*1+4*1+1, h.Eval2(1, 1))

	_, err = New(1)
	assert.True(t, errors.Is(err, ErrDimension))
}

func TestNewCopiesNormal(t *testing.T) {
	n := []float64{1, 2, 3}
	h, err := New(0, n...)
	require.NoError(t, err)
	n[0] = 99
	assert.Equal(t, 1.0, h.Normal()[0])

	out := h.Normal()
	out[1] = 99
	assert.Equal(t, 2.0, h.Normal()[1])
}

func TestPoint1(t *testing.T) {
	h := Point1(2.5)
	assert.Equal(t, 1, h.Dimension())
	assert.Equal(t, 0.0, h.Eval1(2.5))
	assert.Equal(t, 1.5, h.Eval1(4))
	assert.Equal(t, -2.5, h.Eval1(0))
}

func TestFromPoints2IsSignedDistance(t *testing.T) {
	// Line along the x axis from (0,0) to (2,0).
	h, err := FromPoints2(0, 0, 2, 0)
	require.NoError(t, err)
	assert.InDelta(t, 1, vec.Length(h.Normal()), 1e-15)

	assert.InDelta(t, 0, h.Eval2(5, 0), 1e-15)
	above := h.Eval2(1, 3)
	below := h.Eval2(1, -3)
	assert.InDelta(t, 3, math.Abs(above), 1e-15)
	assert.InDelta(t, 3, math.Abs(below), 1e-15)
	assert.True(t, above*below < 0, "opposite sides have opposite signs")

	// Both defining points lie on the line.
	d, err := FromPoints2(1, 2, 4, 6)
	require.NoError(t, err)
	assert.InDelta(t, 0, d.Eval2(1, 2), 1e-12)
	assert.InDelta(t, 0, d.Eval2(4, 6), 1e-12)
	// Distance from origin to the line 4x - 3y + 2 = 0 is 2/5.
	assert.InDelta(t, 0.4, math.Abs(d.Eval2(0, 0)), 1e-12)

	_, err = FromPoints2(1, 1, 1, 1)
	assert.True(t, errors.Is(err, ErrZeroNormal))
}

func TestFromPointNormal3(t *testing.T) {
	h, err := FromPointNormal3(0, 0, 2, 0, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 1}, h.Normal())
	assert.Equal(t, -2.0, h.C())
	assert.Equal(t, 0.0, h.Eval3(7, -3, 2))
	assert.Equal(t, 3.0, h.Eval3(0, 0, 5))
	assert.Equal(t, -2.0, h.Eval3(0, 0, 0))

	_, err = FromPointNormal3(0, 0, 0, 0, 0, 0)
	assert.True(t, errors.Is(err, ErrZeroNormal))
}

func TestFromVectorsDispatch(t *testing.T) {
	two, err := FromVectors([]float64{0, 0}, []float64{1, 0})
	require.NoError(t, err)
	want2, err := FromPoints2(0, 0, 1, 0)
	require.NoError(t, err)
	assert.True(t, two.Equal(want2))

	three, err := FromVectors([]float64{1, 2, 3}, []float64{0, 2, 0})
	require.NoError(t, err)
	want3, err := FromPointNormal3(1, 2, 3, 0, 2, 0)
	require.NoError(t, err)
	assert.True(t, three.Equal(want3))

	_, err = FromVectors([]float64{1}, []float64{2})
	assert.True(t, errors.Is(err, ErrDimension))
	_, err = FromVectors([]float64{1, 2, 3, 4}, []float64{1, 2, 3, 4})
	assert.True(t, errors.Is(err, ErrDimension))
	_, err = FromVectors([]float64{1, 2}, []float64{1, 2, 3})
	assert.True(t, errors.Is(err, vec.ErrDimensionMismatch))
}

func TestEvalSpecialisationsAreBitIdentical(t *testing.T) {
	points := [][]float64{
		{0.1, 0.2, 0.3},
		{-1e8, 3.3333333, 7e-9},
		{math.Pi, math.E, -math.Sqrt2},
	}
	h3, err := New(0.7, 0.1, -0.3, 1.0/3)
	require.NoError(t, err)
	h2, err := New(-0.25, math.Sqrt2, 1.0/7)
	require.NoError(t, err)
	h1, err := New(0.1, 0.3)
	require.NoError(t, err)

	for _, p := range points {
		g3, err := h3.Eval(p)
		require.NoError(t, err)
		assert.True(t, tolerance.BitEqual(g3, h3.Eval3(p[0], p[1], p[2])))

		g2, err := h2.Eval(p[:2])
		require.NoError(t, err)
		assert.True(t, tolerance.BitEqual(g2, h2.Eval2(p[0], p[1])))

		g1, err := h1.Eval(p[:1])
		require.NoError(t, err)
		assert.True(t, tolerance.BitEqual(g1, h1.Eval1(p[0])))
	}
}

func TestEvalSpecialisationsRejectOtherDimensions(t *testing.T) {
	h3, err := New(1, 0, 0, 1)
	require.NoError(t, err)
	h2, err := New(1, 0, 1)
	require.NoError(t, err)

	// The general form rejects the same inputs with an error.
	_, err = h3.Eval([]float64{1, 2})
	assert.True(t, errors.Is(err, vec.ErrDimensionMismatch))
	_, err = h2.Eval([]float64{1, 2, 3})
	assert.True(t, errors.Is(err, vec.ErrDimensionMismatch))

	assert.PanicsWithValue(t, "hyperplane.Eval2: dimension 3", func() { h3.Eval2(1, 2) })
	assert.PanicsWithValue(t, "hyperplane.Eval1: dimension 3", func() { h3.Eval1(1) })
	assert.PanicsWithValue(t, "hyperplane.Eval3: dimension 2", func() { h2.Eval3(1, 2, 3) })
	assert.PanicsWithValue(t, "hyperplane.Eval1: dimension 0", func() { Hyperplane{}.Eval1(1) })
}

func TestEvalGeneralDimension(t *testing.T) {
	h, err := New(-1, 1, 1, 1, 1)
	require.NoError(t, err)
	got, err := h.Eval([]float64{1, 2, 3, 4})
	require.NoError(t, err)
	assert.Equal(t, 9.0, got)

	_, err = h.Eval([]float64{1, 2, 3})
	assert.True(t, errors.Is(err, vec.ErrDimensionMismatch))
}

func TestReassignmentKeepsDimension(t *testing.T) {
	h, err := FromPoints2(0, 0, 1, 0)
	require.NoError(t, err)

	assert.True(t, errors.Is(h.SetPointNormal3(0, 0, 0, 0, 0, 1), ErrDimension))
	three, err := FromPointNormal3(0, 0, 0, 0, 0, 1)
	require.NoError(t, err)
	assert.True(t, errors.Is(h.Set(three), ErrDimension))
	assert.Equal(t, 2, h.Dimension(), "failed assignment leaves h alone")

	other, err := FromPoints2(0, 0, 0, 1)
	require.NoError(t, err)
	require.NoError(t, h.Set(other))
	assert.True(t, h.Equal(other))

	require.NoError(t, h.SetPoints2(0, 1, 1, 1))
	assert.InDelta(t, 0, h.Eval2(5, 1), 1e-15)
	assert.True(t, errors.Is(three.SetPoints2(0, 0, 1, 1), ErrDimension))
}

func TestSetDoesNotAlias(t *testing.T) {
	a, err := New(0, 1, 0)
	require.NoError(t, err)
	b, err := New(2, 0, 1)
	require.NoError(t, err)
	require.NoError(t, a.Set(b))
	require.NoError(t, b.SetPoints2(0, 0, 1, 0))
	assert.Equal(t, []float64{0, 1}, a.Normal())
	assert.Equal(t, 2.0, a.C())
}

func TestSameSide(t *testing.T) {
	tol := tolerance.MustNew(1e-9)
	h, err := FromPointNormal3(0, 0, 0, 0, 0, 1)
	require.NoError(t, err)

	same, err := h.SameSide(tol, []float64{1, 1, 1}, []float64{-5, 2, 0.5})
	require.NoError(t, err)
	assert.True(t, same)

	same, err = h.SameSide(tol, []float64{1, 1, 1}, []float64{1, 1, -1})
	require.NoError(t, err)
	assert.False(t, same)

	same, err = h.SameSide(tol, []float64{1, 1, 0}, []float64{1, 1, 1})
	require.NoError(t, err)
	assert.False(t, same, "a point on the plane is on neither side")

	_, err = h.SameSide(tol, []float64{1, 1}, []float64{1, 1, 1})
	assert.Error(t, err)
}

func TestString(t *testing.T) {
	h, err := New(-2, 0, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, "0*c0+0*c1+1*c2+-2", h.String())
}

package tolerance

import (
	"math"
	"sync"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// restoreEpsilon resets the process-wide epsilon when the test ends.
func restoreEpsilon(t *testing.T) {
	t.Helper()
	old := Epsilon()
	t.Cleanup(func() {
		require.NoError(t, SetEpsilon(old))
	})
}

func TestDefaultEpsilon(t *testing.T) {
	assert.Equal(t, DefaultEpsilon, Epsilon())
	assert.Equal(t, DefaultEpsilon, Default().Epsilon())
}

func TestIsZeroBoundaryIsInclusive(t *testing.T) {
	tol := MustNew(0.5)
	assert.True(t, tol.IsZero(0.5))
	assert.True(t, tol.IsZero(-0.5))
	assert.False(t, tol.IsZero(math.Nextafter(0.5, 1)))
	assert.False(t, tol.IsZero(-math.Nextafter(0.5, 1)))

	assert.True(t, IsZero(DefaultEpsilon))
	assert.False(t, IsZero(math.Nextafter(DefaultEpsilon, 1)))
}

func TestZeroValueIsExact(t *testing.T) {
	var tol Tolerance
	assert.True(t, tol.IsZero(0))
	assert.True(t, tol.IsZero(math.Copysign(0, -1)))
	assert.False(t, tol.IsZero(math.SmallestNonzeroFloat64))
	assert.True(t, tol.Same(1, 1))
	assert.False(t, tol.Same(1, math.Nextafter(1, 2)))
}

func TestSame(t *testing.T) {
	tests := []struct {
		name string
		a, b float64
		eps  float64
		want bool
	}{
		{"equal", 3, 3, 0, true},
		{"within", 1, 1.25, 0.25, true},
		{"outside", 1, 1.5, 0.25, false},
		{"infinities", math.Inf(1), math.Inf(1), 0, true},
		{"opposite infinities", math.Inf(1), math.Inf(-1), 1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SameWithin(tt.a, tt.b, tt.eps)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestVectorFormsUseAndSemantics(t *testing.T) {
	tol := MustNew(0.1)
	assert.True(t, tol.Zero2(0.05, -0.1))
	assert.False(t, tol.Zero2(0.05, 0.2))
	assert.True(t, tol.Zero3(0, 0.1, -0.1))
	assert.False(t, tol.Zero3(0, 0, 0.11))
	assert.True(t, tol.Same2(1, 2, 1.05, 2.05))
	assert.False(t, tol.Same2(1, 2, 1.05, 2.5))
	assert.True(t, tol.Same3(1, 2, 3, 1, 2, 3.05))
	assert.False(t, tol.Same3(1, 2, 3, 1.2, 2, 3))
	assert.True(t, tol.ZeroVec(nil))
	assert.True(t, tol.ZeroVec([]float64{0, 0.01, 0, -0.02}))
	assert.False(t, tol.ZeroVec([]float64{0, 0, 0, 1}))
	assert.True(t, tol.SameVec([]float64{1, 2, 3, 4}, []float64{1, 2, 3, 4.05}))
	assert.False(t, tol.SameVec([]float64{1, 2}, []float64{1, 2, 3}))
}

func TestVectorFormsBoundaryIsInclusive(t *testing.T) {
	// 0.0625 and every difference below are exact in float64.
	tol := MustNew(0.0625)
	assert.True(t, tol.Same2(1, 2, 1.0625, 2))
	assert.True(t, tol.Same3(1, 2, 3, 1, 2, 3.0625))
	assert.False(t, tol.Same3(1, 2, 3, 1, 2, 3.125))
	assert.True(t, tol.Zero3(0, -0.0625, 0.0625))
	assert.True(t, tol.SameVec([]float64{1, 2, 3, 4}, []float64{1, 2, 3, 4.0625}))
}

func TestOne(t *testing.T) {
	tol := MustNew(1e-3)
	assert.True(t, tol.One(1.0005))
	assert.False(t, tol.One(1.01))
}

func TestNegativeEpsilonRejected(t *testing.T) {
	restoreEpsilon(t)

	_, err := New(-1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNegativeEpsilon))

	_, err = IsZeroWithin(0, -1e-9)
	assert.True(t, errors.Is(err, ErrNegativeEpsilon))

	_, err = SameWithin(0, 0, -1e-9)
	assert.True(t, errors.Is(err, ErrNegativeEpsilon))

	before := Epsilon()
	err = SetEpsilon(-0.5)
	assert.True(t, errors.Is(err, ErrNegativeEpsilon))
	assert.Equal(t, before, Epsilon(), "failed set must not change epsilon")

	assert.Panics(t, func() { MustNew(-1) })
}

func TestSetEpsilonIsNotRetroactive(t *testing.T) {
	restoreEpsilon(t)

	captured := Default()
	require.NoError(t, SetEpsilon(0.5))

	assert.True(t, IsZero(0.4))
	assert.False(t, captured.IsZero(0.4), "captured tolerance keeps its epsilon")
	assert.Equal(t, 0.5, Default().Epsilon())
}

func TestConcurrentEpsilonAccess(t *testing.T) {
	restoreEpsilon(t)

	values := []float64{1e-3, 1e-6, 1e-9}
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				if i%2 == 0 {
					_ = SetEpsilon(values[j%len(values)])
					continue
				}
				got := Epsilon()
				if got != values[0] && got != values[1] && got != values[2] {
					t.Errorf("observed torn epsilon %v", got)
					return
				}
			}
		}(i)
	}
	wg.Wait()
}

func TestBitEqual(t *testing.T) {
	assert.True(t, BitEqual(1.5, 1.5))
	assert.False(t, BitEqual(0, math.Copysign(0, -1)))
	assert.True(t, BitEqual(math.NaN(), math.NaN()))
	assert.False(t, BitEqual(1, math.Nextafter(1, 2)))
}

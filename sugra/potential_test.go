package sugra

import (
	"math"
	randv2 "math/rand/v2"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sbl8/so8vacua/algebra"
)

var (
	testModelOnce sync.Once
	testModelVal  *Model
)

func testModel(t *testing.T) *Model {
	t.Helper()
	testModelOnce.Do(func() {
		alg, err := algebra.New()
		if err != nil {
			panic(err)
		}
		testModelVal = NewModel(alg)
	})
	return testModelVal
}

// The origin of the scalar manifold is the maximally supersymmetric SO(8)
// vacuum: the vielbein is the identity, A1 the unit matrix, A2 vanishes, and
// the potential is exactly -6 in these conventions.
func TestEvaluateOrigin(t *testing.T) {
	m := testModel(t)
	res, err := m.Evaluate(make([]float64, algebra.NumNoncompact))
	require.NoError(t, err)

	for i := 0; i < n56; i++ {
		for j := 0; j < n56; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			if math.Abs(real(res.Vielbein[i][j])-want) > 1e-12 ||
				math.Abs(imag(res.Vielbein[i][j])) > 1e-12 {
				t.Fatalf("vielbein(%d,%d) = %v, want %v", i, j, res.Vielbein[i][j], want)
			}
		}
	}
	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			require.InDeltaf(t, want, real(res.A1[i][j]), 1e-12, "A1(%d,%d)", i, j)
			require.InDeltaf(t, 0, imag(res.A1[i][j]), 1e-12, "A1(%d,%d)", i, j)
			for k := 0; k < 8; k++ {
				for l := 0; l < 8; l++ {
					if sqAbs(res.A2[i][j][k][l]) > 1e-24 {
						t.Fatalf("A2(%d,%d,%d,%d) = %v, want 0", i, j, k, l, res.A2[i][j][k][l])
					}
				}
			}
		}
	}
	require.InDelta(t, -6.0, res.Potential, 1e-10)
	require.InDelta(t, 0.0, m.Stationarity(&res.A1, res.A2), 1e-10)
}

func TestEvaluateRejectsWrongDimension(t *testing.T) {
	m := testModel(t)
	_, err := m.Evaluate(make([]float64, 69))
	require.Error(t, err)
}

func TestEvaluateNonFinite(t *testing.T) {
	m := testModel(t)
	v70 := make([]float64, algebra.NumNoncompact)
	v70[0] = 1e8
	_, err := m.Evaluate(v70)
	require.ErrorIs(t, err, ErrNotFinite)

	v70[0] = math.NaN()
	_, err = m.Evaluate(v70)
	require.ErrorIs(t, err, ErrNotFinite)
}

// The T-tensor stays antisymmetric in its final index pair away from the
// origin, and the potential and stationarity remain finite for moderate
// coordinates.
func TestEvaluateGenericPoint(t *testing.T) {
	m := testModel(t)
	rng := randv2.New(randv2.NewPCG(7, 7))
	v70 := make([]float64, algebra.NumNoncompact)
	for i := range v70 {
		v70[i] = 0.3 * rng.NormFloat64()
	}
	res, err := m.Evaluate(v70)
	require.NoError(t, err)
	require.False(t, math.IsNaN(res.Potential))

	for l := 0; l < 8; l++ {
		for k := 0; k < 8; k++ {
			for i := 0; i < 8; i++ {
				for j := 0; j < 8; j++ {
					d := res.T[l][k][i][j] + res.T[l][k][j][i]
					if sqAbs(d) > 1e-16 {
						t.Fatalf("T(%d,%d,%d,%d) not antisymmetric in final pair: %v",
							l, k, i, j, d)
					}
				}
			}
		}
	}

	st := m.Stationarity(&res.A1, res.A2)
	require.False(t, math.IsNaN(st))
	require.GreaterOrEqual(t, st, 0.0)
	// A generic point is not a critical point.
	require.Greater(t, st, 1e-6)
}

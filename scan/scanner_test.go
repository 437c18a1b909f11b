package scan

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sbl8/so8vacua/algebra"
	"github.com/sbl8/so8vacua/sugra"
)

var (
	testModelOnce sync.Once
	testModelVal  *sugra.Model
)

func testModel(t *testing.T) *sugra.Model {
	t.Helper()
	testModelOnce.Do(func() {
		alg, err := algebra.New()
		if err != nil {
			panic(err)
		}
		testModelVal = sugra.NewModel(alg)
	})
	return testModelVal
}

// A fixed (seed, scale, iteration cap) must reproduce the identical
// (potential, stationarity, coordinate) triple: the random draw, the finite
// difference gradient and the line search are all deterministic.
func TestScanDeterministic(t *testing.T) {
	if testing.Short() {
		t.Skip("optimization attempt is slow")
	}
	sc := NewScanner(testModel(t), Options{MaxIterations: 3})
	r1 := sc.Scan(1, DefaultScale)
	r2 := sc.Scan(1, DefaultScale)

	require.Equal(t, r1.Potential, r2.Potential)
	require.Equal(t, r1.Stationarity, r2.Stationarity)
	require.Equal(t, r1.V70, r2.V70)
	require.Len(t, r1.V70, algebra.NumNoncompact)
	require.False(t, math.IsNaN(r1.Stationarity))
	require.GreaterOrEqual(t, r1.Stationarity, 0.0)
}

func TestScanSeedsIndependent(t *testing.T) {
	if testing.Short() {
		t.Skip("optimization attempt is slow")
	}
	sc := NewScanner(testModel(t), Options{MaxIterations: 1})
	r1 := sc.Scan(1, DefaultScale)
	r2 := sc.Scan(2, DefaultScale)
	require.NotEqual(t, r1.V70, r2.V70)
	require.Equal(t, uint64(1), r1.Seed)
	require.Equal(t, uint64(2), r2.Seed)
}

func TestNewScannerDefaults(t *testing.T) {
	sc := NewScanner(testModel(t), Options{})
	require.Equal(t, DefaultMaxIterations, sc.maxIter)
}

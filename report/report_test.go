package report

import (
	"bytes"
	"math"
	randv2 "math/rand/v2"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sbl8/so8vacua/algebra"
	"github.com/sbl8/so8vacua/scan"
)

func sampleResults(n int) []scan.Result {
	rng := randv2.New(randv2.NewPCG(42, 42))
	out := make([]scan.Result, n)
	for i := range out {
		v70 := make([]float64, algebra.NumNoncompact)
		for j := range v70 {
			v70[j] = rng.NormFloat64()
		}
		out[i] = scan.Result{
			Seed:         uint64(i + 1),
			Potential:    -6 - rng.Float64(),
			Stationarity: math.Pow(10, -6-rng.Float64()),
			V70:          v70,
		}
	}
	return out
}

func TestWriteReadRoundTrip(t *testing.T) {
	want := sampleResults(3)
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, want))
	require.Equal(t, 3, strings.Count(buf.String(), "\n"))

	got, err := Read(&buf)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestReadRejectsWrongDimension(t *testing.T) {
	_, err := Read(strings.NewReader(`{"seed":1,"potential":-6,"stationarity":0,"v70":[1,2,3]}` + "\n"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "coordinate")
}

func TestReadRejectsMalformedLine(t *testing.T) {
	_, err := Read(strings.NewReader("{not json}\n"))
	require.Error(t, err)
}

func TestFileRoundTrip(t *testing.T) {
	want := sampleResults(2)
	path := filepath.Join(t.TempDir(), "vacua.jsonl")
	require.NoError(t, WriteFile(path, want))
	got, err := ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

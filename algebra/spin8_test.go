package algebra

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGammaVSCIntegrity(t *testing.T) {
	alg := testAlgebra(t)
	vsc := &alg.Spin8.GammaVSC
	for i := 0; i < 8; i++ {
		for s := 0; s < 8; s++ {
			nonzero := 0
			for c := 0; c < 8; c++ {
				v := vsc[i][s][c]
				if v == 0 {
					continue
				}
				nonzero++
				require.Equalf(t, 1.0, math.Abs(v), "entry (%d,%d,%d)", i, s, c)
			}
			require.Equalf(t, 1, nonzero, "row (%d,%d)", i, s)
		}
	}
}

func TestGammaEntriesMalformed(t *testing.T) {
	cases := []struct {
		name  string
		table string
	}{
		{"truncated", "007+ 016-"},
		{"bad sign", gammaEntries[:len(gammaEntries)-1] + "x"},
		{"out of range", "907+ " + gammaEntries[5:]},
		{"duplicate row", "016- " + gammaEntries[5:]},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parseGammaEntries(tc.table)
			require.Error(t, err)
		})
	}
}

func TestGammaVVAntisymmetry(t *testing.T) {
	alg := testAlgebra(t)
	s8 := alg.Spin8
	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			for a := 0; a < 8; a++ {
				for b := 0; b < 8; b++ {
					require.Equal(t, -s8.GammaVVSS[j][i][a][b], s8.GammaVVSS[i][j][a][b])
					require.Equal(t, -s8.GammaVVCC[j][i][a][b], s8.GammaVVCC[i][j][a][b])
				}
			}
		}
	}
}

func TestGamma4FormAntisymmetry(t *testing.T) {
	alg := testAlgebra(t)
	g := alg.Spin8.GammaVVVVSS
	// Full antisymmetry follows from antisymmetry under the two adjacent
	// transpositions checked here plus the (i,j) pair swap.
	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			for k := 0; k < 8; k++ {
				for l := 0; l < 8; l++ {
					for a := 0; a < 8; a++ {
						for b := 0; b < 8; b++ {
							v := g[i][j][k][l][a][b]
							if math.Abs(v+g[j][i][k][l][a][b]) > 1e-12 ||
								math.Abs(v+g[i][k][j][l][a][b]) > 1e-12 ||
								math.Abs(v+g[i][j][l][k][a][b]) > 1e-12 {
								t.Fatalf("4-form not antisymmetric at (%d,%d,%d,%d,%d,%d)", i, j, k, l, a, b)
							}
						}
					}
				}
			}
		}
	}
}

package algebra

import (
	"math"
	"testing"
)

func TestProjectorAntisymmetry(t *testing.T) {
	alg := testAlgebra(t)
	for name, p := range map[string]*Proj35{"selfdual": alg.ProjSD, "antiselfdual": alg.ProjASD} {
		t.Run(name, func(t *testing.T) {
			for a := 0; a < 35; a++ {
				for i := 0; i < 8; i++ {
					for j := 0; j < 8; j++ {
						for k := 0; k < 8; k++ {
							for l := 0; l < 8; l++ {
								v := [4]int{i, j, k, l}
								want := p[a][i][j][k][l]
								for _, sp := range perm4 {
									got := p[a][v[sp.p[0]]][v[sp.p[1]]][v[sp.p[2]]][v[sp.p[3]]]
									if math.Abs(got-float64(sp.sign)*want) > 1e-12 {
										t.Fatalf("%s[%d] not antisymmetric at (%d,%d,%d,%d) under %v",
											name, a, i, j, k, l, sp.p)
									}
								}
							}
						}
					}
				}
			}
		})
	}
}

func TestProjectorNormalization(t *testing.T) {
	alg := testAlgebra(t)
	// The first basis pattern is (0,1,2,3) with complement (4,5,6,7); the
	// lead entry contributes with unit weight after normalization.
	if got := alg.ProjSD[0][0][1][2][3]; got != 1.0/24.0 {
		t.Fatalf("lead entry = %v, want 1/24", got)
	}
	// Self-dual and anti-self-dual parts differ only in the complement sign.
	if got := alg.ProjSD[0][4][5][6][7] + alg.ProjASD[0][4][5][6][7]; got != 0 {
		t.Fatalf("complement entries do not cancel: %v", got)
	}
}

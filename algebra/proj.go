package algebra

// Proj35 projects 4-index antisymmetric tensors onto a 35-dimensional basis
// of (anti)self-dual 4-forms. The basis patterns are the lexicographically
// ordered four-element subsets of {0..7} containing index 0; the tensor is
// fully antisymmetric in its last four indices, normalized so each
// independent pattern contributes once.
type Proj35 [35][8][8][8][8]float64

// newProjector builds the self-dual (selfDual true) or anti-self-dual
// projector. For each basis subset the complementary subset enters with a
// relative sign fixed by the duality choice and by the parity of the
// concatenated index order.
func newProjector(selfDual bool) *Proj35 {
	dual := 1
	if !selfDual {
		dual = -1
	}
	ret := new(Proj35)
	num := 0
	for b := 1; b < 8; b++ {
		for c := b + 1; c < 8; c++ {
			for d := c + 1; d < 8; d++ {
				ijkl := [4]int{0, b, c, d}
				var mnpq [4]int
				n := 0
				for x := 0; x < 8; x++ {
					if x != 0 && x != b && x != c && x != d {
						mnpq[n] = x
						n++
					}
				}
				concat := []int{ijkl[0], ijkl[1], ijkl[2], ijkl[3],
					mnpq[0], mnpq[1], mnpq[2], mnpq[3]}
				sd := dual * PermutationSign(concat)
				for _, sp := range perm4 {
					ret[num][ijkl[sp.p[0]]][ijkl[sp.p[1]]][ijkl[sp.p[2]]][ijkl[sp.p[3]]] = float64(sp.sign)
					ret[num][mnpq[sp.p[0]]][mnpq[sp.p[1]]][mnpq[sp.p[2]]][mnpq[sp.p[3]]] = float64(sp.sign * sd)
				}
				num++
			}
		}
	}
	// Each 4-index pattern was written once per permutation; the 1/24 factor
	// removes that overcount.
	for a := 0; a < 35; a++ {
		for i := 0; i < 8; i++ {
			for j := 0; j < 8; j++ {
				for k := 0; k < 8; k++ {
					for l := 0; l < 8; l++ {
						ret[a][i][j][k][l] /= 24.0
					}
				}
			}
		}
	}
	return ret
}

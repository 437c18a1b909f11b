package algebra

// Dimensions of the e7 structures built here.
const (
	// NumGenerators is the dimension of e7.
	NumGenerators = 133
	// NumNoncompact counts the noncompact generators, which parametrize the
	// scalar coset. They come first in the generator ordering.
	NumNoncompact = 70
	// RepDim is the dimension of the representation the generators act on.
	RepDim = 56
)

// E7 holds the 133 generator matrices of e7(7) acting on the 56-dimensional
// representation, ordered as 35 noncompact self-dual directions, 35
// noncompact anti-self-dual directions, then the 63 compact su(8) directions.
//
// Commutators of any two generators close into the span of all 133; the
// construction is trusted by derivation and pinned by regression tests only.
type E7 struct {
	T *[NumGenerators][RepDim][RepDim]complex128
}

func newE7(s *Spin8, u *SU8) *E7 {
	t := new([NumGenerators][RepDim][RepDim]complex128)

	zss := contract4Form(s.GammaVVVVSS, u)
	zcc := contract4Form(s.GammaVVVVCC, u)
	for q := 0; q < 35; q++ {
		for i := 0; i < 28; i++ {
			for k := 0; k < 28; k++ {
				w := zss[q][i][k] / 8.0
				t[q][28+i][k] = complex(w, 0)
				t[q][i][28+k] = complex(w, 0)
				w = zcc[q][i][k] / 8.0
				t[35+q][28+i][k] = complex(0, w)
				t[35+q][i][28+k] = complex(0, -w)
			}
		}
	}

	// Compact sector: the su(8) action on the antisymmetric 28, doubled,
	// with the conjugate action on the lower block.
	for a := 0; a < 63; a++ {
		for bi, p := range u.Pairs {
			i, m := p[0], p[1]
			for bj, q := range u.Pairs {
				j, n := q[0], q[1]
				// Contract t_a (x) identity with two 28-basis tensors. Only
				// the four sign combinations of each antisymmetric pair
				// survive, written out explicitly.
				v := su28Entry(&u.T[a], i, m, j, n) -
					su28Entry(&u.T[a], i, m, n, j) -
					su28Entry(&u.T[a], m, i, j, n) +
					su28Entry(&u.T[a], m, i, n, j)
				v *= 2
				t[70+a][bi][bj] = v
				t[70+a][28+bi][28+bj] = complex(real(v), -imag(v))
			}
		}
	}
	return &E7{T: t}
}

// su28Entry is one term of the contraction of a generator extended by an
// identity spectator with a pair of 28-basis tensors: (g (x) 1)[im, jn]
// evaluated at basis entries of value +1.
func su28Entry(g *[8][8]complex128, i, m, j, n int) complex128 {
	if m != n {
		return 0
	}
	return g[i][j]
}

// contract4Form takes a 4-form gamma tensor to a (35, 28, 28) block: first
// against the symmetric traceless basis over the spinor (or cospinor) pair,
// then against the antisymmetric 28-basis on both vector pairs. Contraction
// order follows the cheapest chaining; the result does not depend on it.
func contract4Form(g *[8][8][8][8][8][8]float64, u *SU8) *[35][28][28]float64 {
	// x[q][k][l] with the leading vector pair already folded into the
	// 28-basis would need a 5-index intermediate; build it in two steps.
	x := new([35][8][8][8][8]float64) // q, i, j, k, l
	for q := 0; q < 35; q++ {
		for a := 0; a < 8; a++ {
			for b := 0; b < 8; b++ {
				w := real(u.M35[q][a][b])
				if w == 0 {
					continue
				}
				for i := 0; i < 8; i++ {
					for j := 0; j < 8; j++ {
						for k := 0; k < 8; k++ {
							for l := 0; l < 8; l++ {
								x[q][i][j][k][l] += g[i][j][k][l][a][b] * w
							}
						}
					}
				}
			}
		}
	}
	y := new([35][28][8][8]float64) // q, I, k, l
	for q := 0; q < 35; q++ {
		for bi, p := range u.Pairs {
			i, j := p[0], p[1]
			for k := 0; k < 8; k++ {
				for l := 0; l < 8; l++ {
					// 28-basis entries: +1 at (i,j), -1 at (j,i).
					y[q][bi][k][l] = x[q][i][j][k][l] - x[q][j][i][k][l]
				}
			}
		}
	}
	z := new([35][28][28]float64)
	for q := 0; q < 35; q++ {
		for bi := 0; bi < 28; bi++ {
			for bk, p := range u.Pairs {
				k, l := p[0], p[1]
				z[q][bi][bk] = y[q][bi][k][l] - y[q][bi][l][k]
			}
		}
	}
	return z
}

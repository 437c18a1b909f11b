// Package algebra builds the immutable Lie-algebra invariants underlying the
// SO(8) supergravity potential: Spin(8) gamma tensors, the su(8) generator
// basis, (anti)self-dual 4-form projectors, and the 133 e7 generators on the
// 56-dimensional representation.
//
// All tensors are constructed once by New and never mutated afterwards, so a
// single *Algebra can be shared freely across goroutines.
package algebra

import (
	"fmt"
	"strings"
)

// gammaEntries lists the 64 nonzero entries of the vector-spinor-cospinor
// gamma tensor, one token per entry as "vsc" digits followed by the sign.
// Conventions match Green, Schwarz, Witten, with index counting from zero.
const gammaEntries = "007+ 016- 025- 034+ 043- 052+ 061+ 070- " +
	"101+ 110- 123- 132+ 145+ 154- 167- 176+ " +
	"204+ 215- 226+ 237- 240- 251+ 262- 273+ " +
	"302+ 313+ 320- 331- 346- 357- 364+ 375+ " +
	"403+ 412- 421+ 430- 447+ 456- 465+ 474- " +
	"505+ 514+ 527+ 536+ 541- 550- 563- 572- " +
	"606+ 617+ 624- 635- 642+ 653+ 660- 671- " +
	"700+ 711+ 722+ 733+ 744+ 755+ 766+ 777+"

// Spin8 holds the gamma-matrix derived Spin(8) invariants. Index letters in
// the field names record the index spaces: v(ector), s(pinor), c(ospinor).
type Spin8 struct {
	// GammaVSC is the triality tensor translating between the three
	// 8-dimensional index spaces. Entries are -1, 0 or +1, with exactly one
	// nonzero cospinor entry per (vector, spinor) pair.
	GammaVSC [8][8][8]float64

	// GammaVVSS translates antisymmetric matrices over vector index pairs
	// into antisymmetric matrices over spinor pairs; GammaVVCC likewise for
	// cospinor pairs. Both are antisymmetric in the leading vector pair.
	GammaVVSS [8][8][8][8]float64
	GammaVVCC [8][8][8][8]float64

	// GammaVVVVSS translates antisymmetric 4-forms over vector indices into
	// symmetric traceless matrices over spinors; GammaVVVVCC likewise for
	// cospinors. Both are fully antisymmetric in the four vector indices.
	GammaVVVVSS *[8][8][8][8][8][8]float64
	GammaVVVVCC *[8][8][8][8][8][8]float64
}

func newSpin8() (*Spin8, error) {
	vsc, err := parseGammaEntries(gammaEntries)
	if err != nil {
		return nil, fmt.Errorf("gamma table: %w", err)
	}
	s := &Spin8{GammaVSC: *vsc}

	// Pairwise products over a shared cospinor (resp. spinor) index. The
	// unantisymmetrized products are kept for the 4-form construction below.
	var g2ss, g2cc [8][8][8][8]float64
	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			for a := 0; a < 8; a++ {
				for b := 0; b < 8; b++ {
					var ss, cc float64
					for x := 0; x < 8; x++ {
						ss += vsc[i][a][x] * vsc[j][b][x]
						cc += vsc[i][x][a] * vsc[j][x][b]
					}
					g2ss[i][j][a][b] = ss
					g2cc[i][j][a][b] = cc
				}
			}
		}
	}
	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			for a := 0; a < 8; a++ {
				for b := 0; b < 8; b++ {
					s.GammaVVSS[i][j][a][b] = 0.5 * (g2ss[i][j][a][b] - g2ss[j][i][a][b])
					s.GammaVVCC[i][j][a][b] = 0.5 * (g2cc[i][j][a][b] - g2cc[j][i][a][b])
				}
			}
		}
	}

	// 4-form tensors: contract two pairwise products over the shared spinor
	// (resp. cospinor) index into a 6-index intermediate, then antisymmetrize
	// over the four vector indices by summing all 24 permutations with sign
	// and dividing by 24.
	g4ss := new([8][8][8][8][8][8]float64)
	g4cc := new([8][8][8][8][8][8]float64)
	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			for k := 0; k < 8; k++ {
				for l := 0; l < 8; l++ {
					for a := 0; a < 8; a++ {
						for b := 0; b < 8; b++ {
							var ss, cc float64
							for t := 0; t < 8; t++ {
								ss += g2ss[i][j][a][t] * g2ss[k][l][t][b]
								cc += g2cc[i][j][a][t] * g2cc[k][l][t][b]
							}
							g4ss[i][j][k][l][a][b] = ss
							g4cc[i][j][k][l][a][b] = cc
						}
					}
				}
			}
		}
	}
	s.GammaVVVVSS = antisymmetrize4(g4ss)
	s.GammaVVVVCC = antisymmetrize4(g4cc)
	return s, nil
}

// antisymmetrize4 projects the leading four indices of g onto their fully
// antisymmetric part.
func antisymmetrize4(g *[8][8][8][8][8][8]float64) *[8][8][8][8][8][8]float64 {
	out := new([8][8][8][8][8][8]float64)
	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			for k := 0; k < 8; k++ {
				for l := 0; l < 8; l++ {
					v := [4]int{i, j, k, l}
					for a := 0; a < 8; a++ {
						for b := 0; b < 8; b++ {
							var sum float64
							for _, sp := range perm4 {
								sum += float64(sp.sign) *
									g[v[sp.p[0]]][v[sp.p[1]]][v[sp.p[2]]][v[sp.p[3]]][a][b]
							}
							out[i][j][k][l][a][b] = sum / 24.0
						}
					}
				}
			}
		}
	}
	return out
}

func parseGammaEntries(table string) (*[8][8][8]float64, error) {
	tokens := strings.Fields(table)
	if len(tokens) != 64 {
		return nil, fmt.Errorf("expected 64 entries, got %d", len(tokens))
	}
	ret := new([8][8][8]float64)
	for _, tok := range tokens {
		if len(tok) != 4 {
			return nil, fmt.Errorf("malformed entry %q", tok)
		}
		var idx [3]int
		for n := 0; n < 3; n++ {
			d := int(tok[n] - '0')
			if d < 0 || d > 7 {
				return nil, fmt.Errorf("index out of range in entry %q", tok)
			}
			idx[n] = d
		}
		var sign float64
		switch tok[3] {
		case '+':
			sign = 1
		case '-':
			sign = -1
		default:
			return nil, fmt.Errorf("bad sign in entry %q", tok)
		}
		if ret[idx[0]][idx[1]][idx[2]] != 0 {
			return nil, fmt.Errorf("duplicate entry %q", tok)
		}
		ret[idx[0]][idx[1]][idx[2]] = sign
	}
	// Each (vector, spinor) pair must select exactly one cospinor index.
	for i := 0; i < 8; i++ {
		for s := 0; s < 8; s++ {
			nonzero := 0
			for c := 0; c < 8; c++ {
				if ret[i][s][c] != 0 {
					nonzero++
				}
			}
			if nonzero != 1 {
				return nil, fmt.Errorf("row (%d,%d) has %d nonzero entries, want 1", i, s, nonzero)
			}
		}
	}
	return ret, nil
}

// Package sugra evaluates the scalar potential of maximal SO(8)-gauged
// supergravity and its stationarity condition.
//
// A point on the scalar manifold is a 70-component real coordinate along the
// noncompact e7 generators. Evaluate exponentiates it to the 56x56 vielbein,
// expands the vielbein blocks through the antisymmetric 28-basis, and forms
// the T-tensor and the A1/A2 fermion mass tensors from which both the
// potential and the stationarity measure derive. All contraction patterns
// follow de Wit-Nicolai conventions; see arXiv:1302.6219 for the
// stationarity condition.
package sugra

import (
	"errors"
	"fmt"

	"github.com/sbl8/so8vacua/algebra"
)

// ErrNotFinite reports a numerically extreme evaluation, usually an
// overflowing vielbein exponential. Callers treat the candidate as
// unconverged rather than failing.
var ErrNotFinite = errors.New("sugra: non-finite value in potential evaluation")

// Model evaluates the potential against a fixed set of invariant tensors.
// It is stateless apart from the shared immutable Algebra, so one Model may
// be used from many goroutines.
type Model struct {
	alg *algebra.Algebra
}

func NewModel(alg *algebra.Algebra) *Model {
	return &Model{alg: alg}
}

// Result collects the tensors derived from one coordinate. Everything is a
// pure function of the input; no state is retained between evaluations.
type Result struct {
	// Vielbein is the exponential image of the coordinate on the coset.
	Vielbein *[n56][n56]complex128
	// T is the T-tensor, antisymmetric in its last two indices.
	T *[8][8][8][8]complex128
	// A1 and A2 are the fermion mass tensors entering the potential.
	A1 [8][8]complex128
	A2 *[8][8][8][8]complex128
	// Potential is the scalar potential value at the coordinate.
	Potential float64
}

// Evaluate computes the vielbein, T-tensor, A1, A2 and the potential at v70,
// which must have length 70. Non-finite intermediates yield ErrNotFinite.
func (m *Model) Evaluate(v70 []float64) (*Result, error) {
	if len(v70) != algebra.NumNoncompact {
		return nil, fmt.Errorf("sugra: coordinate has %d components, want %d",
			len(v70), algebra.NumNoncompact)
	}

	// G[J][I] = sum_a v70[a] * t[a][I][J]. The transposition fixes the
	// row/column convention for everything downstream; the block
	// extractions below assume it.
	gen := m.alg.E7.T
	g := new([n56][n56]complex128)
	for a := 0; a < algebra.NumNoncompact; a++ {
		w := v70[a]
		if w == 0 {
			continue
		}
		for i := 0; i < n56; i++ {
			for j := 0; j < n56; j++ {
				g[j][i] += complex(w, 0) * gen[a][i][j]
			}
		}
	}
	vb, ok := expm(g)
	if !ok {
		return nil, ErrNotFinite
	}

	su := m.alg.SU8
	u := expandBlock(su, vb, 0, 0)    // u_ij^IJ
	up := expandBlock(su, vb, 28, 28) // u^kl_KL
	v := expandBlock(su, vb, 0, 28)   // v_ijKL
	vp := expandBlock(su, vb, 28, 0)  // v^klIJ

	// uv[i][j][I][J] = up + vp, uuvv the antisymmetrized bilinear.
	uv := new([8][8][8][8]complex128)
	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			for a := 0; a < 8; a++ {
				for b := 0; b < 8; b++ {
					uv[i][j][a][b] = up[i][j][a][b] + vp[i][j][a][b]
				}
			}
		}
	}
	uuvv := new([8][8][8][8]complex128)
	for l := 0; l < 8; l++ {
		for k := 0; k < 8; k++ {
			for i := 0; i < 8; i++ {
				for j := 0; j < 8; j++ {
					var sum complex128
					for q := 0; q < 8; q++ {
						for kk := 0; kk < 8; kk++ {
							sum += u[l][q][j][kk]*up[k][q][kk][i] -
								v[l][q][j][kk]*vp[k][q][kk][i]
						}
					}
					uuvv[l][k][i][j] = sum
				}
			}
		}
	}

	t := new([8][8][8][8]complex128)
	for l := 0; l < 8; l++ {
		for k := 0; k < 8; k++ {
			for i := 0; i < 8; i++ {
				for j := 0; j < 8; j++ {
					var sum complex128
					for a := 0; a < 8; a++ {
						for b := 0; b < 8; b++ {
							sum += uv[i][j][a][b] * uuvv[l][k][a][b]
						}
					}
					t[l][k][i][j] = sum
				}
			}
		}
	}

	res := &Result{Vielbein: vb, T: t, A2: new([8][8][8][8]complex128)}
	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			var tr complex128
			for q := 0; q < 8; q++ {
				tr += t[q][i][j][q]
			}
			res.A1[i][j] = complex(-4.0/21.0, 0) * tr
		}
	}
	// Cyclic antisymmetrization over the last three indices; the T-tensor is
	// already antisymmetric in its final pair.
	for l := 0; l < 8; l++ {
		for i := 0; i < 8; i++ {
			for j := 0; j < 8; j++ {
				for k := 0; k < 8; k++ {
					res.A2[l][i][j][k] = complex(-4.0/9.0, 0) *
						(t[l][i][j][k] + t[l][k][i][j] + t[l][j][k][i])
				}
			}
		}
	}

	var a1sq, a2sq float64
	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			a1sq += sqAbs(res.A1[i][j])
			for k := 0; k < 8; k++ {
				for l := 0; l < 8; l++ {
					a2sq += sqAbs(res.A2[i][j][k][l])
				}
			}
		}
	}
	res.Potential = -0.75*a1sq + a2sq/24.0
	if !finite(res.Potential) {
		return nil, ErrNotFinite
	}
	return res, nil
}

// expandBlock lifts the 28x28 block of the vielbein at row/column offset
// (r0, c0) back to an 8x8x8x8 tensor through the antisymmetric 28-basis:
// out[i,j,I,J] = 1/2 sum_AB block[A][B] basis[A,i,j] basis[B,I,J]. Only the
// two nonzero entries of each basis matrix are touched.
func expandBlock(su *algebra.SU8, vb *[n56][n56]complex128, r0, c0 int) *[8][8][8][8]complex128 {
	var x [8][8][28]complex128
	for ai, p := range su.Pairs {
		i, j := p[0], p[1]
		for b := 0; b < 28; b++ {
			w := vb[r0+ai][c0+b]
			x[i][j][b] += w
			x[j][i][b] -= w
		}
	}
	out := new([8][8][8][8]complex128)
	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			for b, q := range su.Pairs {
				a, c := q[0], q[1]
				w := 0.5 * x[i][j][b]
				out[i][j][a][c] += w
				out[i][j][c][a] -= w
			}
		}
	}
	return out
}

func sqAbs(z complex128) float64 {
	return real(z)*real(z) + imag(z)*imag(z)
}

// Stationarity returns the stationarity measure derived from A1 and A2: the
// squared norm of the projection of the stationarity tensor onto the
// self-dual (real part) and anti-self-dual (imaginary part) 4-form bases.
// It vanishes exactly at critical points of the potential and is better
// conditioned as an optimization objective than a direct gradient norm.
func (m *Model) Stationarity(a1 *[8][8]complex128, a2 *[8][8][8][8]complex128) float64 {
	x0 := new([8][8][8][8]complex128)
	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			for k := 0; k < 8; k++ {
				for l := 0; l < 8; l++ {
					var sum complex128
					for q := 0; q < 8; q++ {
						sum += 4 * a1[q][i] * a2[q][j][k][l]
					}
					for q := 0; q < 8; q++ {
						for n := 0; n < 8; n++ {
							sum -= 3 * a2[q][n][i][j] * a2[n][k][l][q]
						}
					}
					x0[i][j][k][l] = sum
				}
			}
		}
	}

	sd, asd := m.alg.ProjSD, m.alg.ProjASD
	var total float64
	for a := 0; a < 35; a++ {
		var re, im float64
		for i := 0; i < 8; i++ {
			for j := 0; j < 8; j++ {
				for k := 0; k < 8; k++ {
					for l := 0; l < 8; l++ {
						re += sd[a][i][j][k][l] * real(x0[i][j][k][l])
						im += asd[a][i][j][k][l] * imag(x0[i][j][k][l])
					}
				}
			}
		}
		total += re*re + im*im
	}
	return total
}

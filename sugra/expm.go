package sugra

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/sbl8/so8vacua/algebra"
)

const n56 = algebra.RepDim

// expm computes the matrix exponential of a complex 56x56 matrix. The matrix
// M = A + iB is embedded as the real block matrix [[A, -B], [B, A]]; the
// embedding is an algebra homomorphism, so gonum's real scaling-and-squaring
// exponential of the image is the image of exp(M).
//
// The second return value is false when the input or the result contains a
// non-finite entry.
func expm(g *[n56][n56]complex128) (*[n56][n56]complex128, bool) {
	const n = 2 * n56
	data := make([]float64, n*n)
	for i := 0; i < n56; i++ {
		for j := 0; j < n56; j++ {
			re, im := real(g[i][j]), imag(g[i][j])
			if !finite(re) || !finite(im) {
				return nil, false
			}
			data[i*n+j] = re
			data[i*n+n56+j] = -im
			data[(n56+i)*n+j] = im
			data[(n56+i)*n+n56+j] = re
		}
	}
	var e mat.Dense
	e.Exp(mat.NewDense(n, n, data))

	out := new([n56][n56]complex128)
	for i := 0; i < n56; i++ {
		for j := 0; j < n56; j++ {
			re := e.At(i, j)
			im := e.At(n56+i, j)
			if !finite(re) || !finite(im) {
				return nil, false
			}
			out[i][j] = complex(re, im)
		}
	}
	return out, true
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

package algebra

// SU8 holds the su(8) generator matrices together with the embeddings of the
// 35- and 28-dimensional representations into 8x8 matrices.
type SU8 struct {
	// Pairs is the canonical ordered list of the 28 index pairs (i, j) with
	// i < j, in lexicographic order. It fixes the meaning of every
	// 28-dimensional index in the package.
	Pairs [28][2]int

	// M35 is the symmetric traceless basis: 7 Cartan directions followed by
	// one generator per pair. M28 is the antisymmetric basis, one generator
	// per pair. Entries are real; the complex type keeps the downstream
	// contractions uniform.
	M35 [35][8][8]complex128
	M28 [28][8][8]complex128

	// T holds the 63 su(8) generator matrices: the 35 symmetric generators
	// scaled by i, followed by the 28 antisymmetric generators.
	T [63][8][8]complex128
}

func newSU8() *SU8 {
	u := &SU8{}
	a := 0
	for i := 0; i < 8; i++ {
		for j := i + 1; j < 8; j++ {
			u.Pairs[a] = [2]int{i, j}
			a++
		}
	}
	for n := 0; n < 7; n++ {
		u.M35[n][n][n] = 1
		u.M35[n][n+1][n+1] = -1
	}
	for a, p := range u.Pairs {
		m, n := p[0], p[1]
		u.M35[a+7][m][n] = 1
		u.M35[a+7][n][m] = 1
		u.M28[a][m][n] = 1
		u.M28[a][n][m] = -1
	}
	for a := 0; a < 35; a++ {
		for i := 0; i < 8; i++ {
			for j := 0; j < 8; j++ {
				u.T[a][i][j] = complex(0, 1) * u.M35[a][i][j]
			}
		}
	}
	for a, p := range u.Pairs {
		i, j := p[0], p[1]
		u.T[a+35][i][j] = -1
		u.T[a+35][j][i] = 1
	}
	return u
}

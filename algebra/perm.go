package algebra

// PermutationSign returns the parity (+1 or -1) of p, which must be a
// permutation of 0..len(p)-1. It decomposes p into cycles by repeatedly
// swapping each slot with the slot addressed by its value, counting
// transpositions. O(n).
func PermutationSign(p []int) int {
	q := make([]int, len(p))
	copy(q, p)
	sign := 1
	for n := range q {
		for q[n] != n {
			q[n], q[q[n]] = q[q[n]], q[n]
			sign = -sign
		}
	}
	return sign
}

// signedPerm is one permutation of four positions together with its parity.
type signedPerm struct {
	p    [4]int
	sign int
}

// perm4 enumerates all 24 permutations of four positions. Used for the full
// antisymmetrization of 4-form indices.
var perm4 = buildPerm4()

func buildPerm4() []signedPerm {
	out := make([]signedPerm, 0, 24)
	for a := 0; a < 4; a++ {
		for b := 0; b < 4; b++ {
			if b == a {
				continue
			}
			for c := 0; c < 4; c++ {
				if c == a || c == b {
					continue
				}
				d := 6 - a - b - c
				p := [4]int{a, b, c, d}
				out = append(out, signedPerm{p: p, sign: PermutationSign(p[:])})
			}
		}
	}
	return out
}

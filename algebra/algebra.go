package algebra

import "fmt"

// Algebra is the immutable context holding every invariant tensor the
// potential evaluation needs. Build it once with New and pass it by shared
// reference; there is no package-level state.
type Algebra struct {
	Spin8 *Spin8
	SU8   *SU8
	E7    *E7

	// ProjSD and ProjASD project 4-forms onto the self-dual and
	// anti-self-dual 35-dimensional bases.
	ProjSD  *Proj35
	ProjASD *Proj35
}

// New constructs all invariant tensors. A malformed gamma table is a
// data-integrity fault and the only failure mode.
func New() (*Algebra, error) {
	s, err := newSpin8()
	if err != nil {
		return nil, fmt.Errorf("spin8 invariants: %w", err)
	}
	u := newSU8()
	return &Algebra{
		Spin8:   s,
		SU8:     u,
		E7:      newE7(s, u),
		ProjSD:  newProjector(true),
		ProjASD: newProjector(false),
	}, nil
}

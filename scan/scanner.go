// Package scan implements the random-restart search for critical points of
// the supergravity potential: a Scanner that runs one local minimization of
// the stationarity measure from a seeded random starting point, and a Driver
// that loops over seeds and collects accepted results.
package scan

import (
	"math"
	randv2 "math/rand/v2"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/optimize"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/sbl8/so8vacua/algebra"
	"github.com/sbl8/so8vacua/sugra"
)

// DefaultMaxIterations caps the optimizer's major iterations per attempt.
const DefaultMaxIterations = 500

// Options configures a Scanner.
type Options struct {
	// MaxIterations caps the optimizer; DefaultMaxIterations when <= 0.
	MaxIterations int
	Logger        zerolog.Logger
}

// Scanner runs single scan attempts. Attempts are independent and carry no
// state besides their own seeded random source, so one Scanner may be used
// from many goroutines.
type Scanner struct {
	model   *sugra.Model
	maxIter int
	logger  zerolog.Logger
}

func NewScanner(model *sugra.Model, opts Options) *Scanner {
	if opts.MaxIterations <= 0 {
		opts.MaxIterations = DefaultMaxIterations
	}
	return &Scanner{model: model, maxIter: opts.MaxIterations, logger: opts.Logger}
}

// Result is the outcome of one scan attempt. An unconverged or numerically
// degenerate attempt carries Stationarity = +Inf; acceptance is the caller's
// decision.
type Result struct {
	Seed         uint64    `json:"seed"`
	Potential    float64   `json:"potential"`
	Stationarity float64   `json:"stationarity"`
	V70          []float64 `json:"v70"`
}

// Scan draws a starting coordinate with independent Normal(0, scale)
// components from a generator seeded by seed, minimizes asinh of the
// stationarity measure with LBFGS, and evaluates potential, stationarity and
// coordinate at the optimized point. The asinh compresses the objective's
// dynamic range without moving its zeros.
//
// Optimizer non-convergence is not an error; it surfaces as a large
// stationarity value. Gradients come from central finite differences of the
// objective. Deterministic for fixed (seed, scale, iteration cap).
func (s *Scanner) Scan(seed uint64, scale float64) Result {
	dist := distuv.Normal{Mu: 0, Sigma: scale, Src: randv2.NewPCG(seed, seed)}
	v70 := make([]float64, algebra.NumNoncompact)
	for i := range v70 {
		v70[i] = dist.Rand()
	}

	obj := func(x []float64) float64 {
		res, err := s.model.Evaluate(x)
		if err != nil {
			return math.Inf(1)
		}
		st := s.model.Stationarity(&res.A1, res.A2)
		if math.IsNaN(st) {
			return math.Inf(1)
		}
		return math.Asinh(st)
	}
	problem := optimize.Problem{
		Func: obj,
		Grad: func(grad, x []float64) {
			fd.Gradient(grad, obj, x, &fd.Settings{Formula: fd.Central})
		},
	}

	final := v70
	opt, err := optimize.Minimize(problem, v70,
		&optimize.Settings{MajorIterations: s.maxIter}, &optimize.LBFGS{})
	if err != nil {
		// Line-search failures and iteration-cap exits are routine here; the
		// evaluation below decides whether the point is usable.
		s.logger.Debug().Uint64("seed", seed).Err(err).Msg("optimizer stopped early")
	}
	if opt != nil && opt.X != nil {
		final = opt.X
	}

	ret := Result{Seed: seed, Stationarity: math.Inf(1), V70: final}
	res, err := s.model.Evaluate(final)
	if err != nil {
		return ret
	}
	st := s.model.Stationarity(&res.A1, res.A2)
	if math.IsNaN(st) {
		return ret
	}
	ret.Potential = res.Potential
	ret.Stationarity = st
	return ret
}

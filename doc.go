// Package so8vacua locates critical points (vacua) of the scalar potential
// of maximal SO(8)-gauged supergravity in four dimensions.
//
// The scalar fields of the theory live on the coset E7(7)/SU(8). The package
// builds the exceptional-algebra invariants needed to parametrize that coset,
// evaluates the scalar potential and its stationarity condition at a point,
// and runs a random-restart local search for points where the stationarity
// condition vanishes.
//
// # Architecture Overview
//
// The pipeline has three stages:
//
//   - algebra: immutable invariant tensors, built once at startup. SO(8)
//     gamma matrices in the vector/spinor/cospinor triality bases, the su(8)
//     generator matrices with their 35- and 28-dimensional basis embeddings,
//     the (anti)self-dual 4-form projectors, and the 133 e7 generators on
//     the 56-dimensional representation composed from all of the above.
//   - sugra: the scalar potential. A 70-real-parameter coordinate is mapped
//     to a 56x56 vielbein by exponentiating noncompact generators, then to
//     the T-tensor, the A1/A2 fermion mass tensors, the potential, and the
//     stationarity measure.
//   - scan: random-restart minimization of the stationarity measure with
//     gonum's LBFGS, plus a driver that loops over seeds and collects the
//     attempts passing an acceptance threshold.
//
// # Basic Usage
//
//	alg, err := algebra.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	model := sugra.NewModel(alg)
//	scanner := scan.NewScanner(model, scan.Options{})
//	driver := scan.NewDriver(scanner, scan.DriverOptions{Target: 20})
//	results, err := driver.Run(context.Background())
//
// # Package Structure
//
//   - algebra: Spin(8), su(8) and e7 invariant tensors
//   - sugra: potential and stationarity evaluation
//   - scan: critical-point scanner and scan driver
//   - report: persistence of accepted critical points
//   - cmd: command-line tools (so8scan, so8eval)
package so8vacua

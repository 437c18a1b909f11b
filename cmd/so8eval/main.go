// so8eval evaluates the supergravity potential and stationarity measure at a
// single point of the scalar manifold. The point is a JSON array of 70 reals
// read from a file, or the origin when no file is given.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/sbl8/so8vacua/algebra"
	"github.com/sbl8/so8vacua/sugra"
)

func main() {
	v70Path := flag.String("v70", "", "JSON file holding the 70-component coordinate (default: origin)")
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	v70 := make([]float64, algebra.NumNoncompact)
	if *v70Path != "" {
		raw, err := os.ReadFile(*v70Path)
		if err != nil {
			logger.Fatal().Err(err).Msg("read coordinate file")
		}
		if err := json.Unmarshal(raw, &v70); err != nil {
			logger.Fatal().Err(err).Msg("parse coordinate file")
		}
		if len(v70) != algebra.NumNoncompact {
			logger.Fatal().
				Int("got", len(v70)).
				Int("want", algebra.NumNoncompact).
				Msg("coordinate has wrong dimension")
		}
	}

	alg, err := algebra.New()
	if err != nil {
		logger.Fatal().Err(err).Msg("build invariant tensors")
	}
	model := sugra.NewModel(alg)
	res, err := model.Evaluate(v70)
	if err != nil {
		logger.Fatal().Err(err).Msg("evaluate potential")
	}
	st := model.Stationarity(&res.A1, res.A2)

	fmt.Printf("V=%.9f stationarity=%.6g\n", res.Potential, st)
}

package scan

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"
)

// Driver defaults, matching the reference scan parameters.
const (
	DefaultScale     = 2.0
	DefaultThreshold = 1e-3
	DefaultTarget    = 20
)

// ErrAttemptsExhausted reports that the attempt cap was reached before the
// target number of critical points was accepted.
var ErrAttemptsExhausted = errors.New("scan: attempt cap reached before target count")

// AttemptScanner abstracts a single scan attempt.
type AttemptScanner interface {
	Scan(seed uint64, scale float64) Result
}

// DriverOptions configures a Driver. Zero values take the defaults above;
// MaxAttempts = 0 means unbounded, Workers <= 1 runs attempts sequentially.
type DriverOptions struct {
	Scale       float64
	Threshold   float64
	Target      int
	MaxAttempts int
	Workers     int

	// Progress, when non-nil, receives one line per accepted point in the
	// form "<index> / <target>: V=<potential> stationarity=<measure>".
	Progress io.Writer
	Logger   zerolog.Logger
}

// Driver repeatedly invokes a scanner with sequentially incrementing seeds,
// starting at 1, and collects the attempts whose stationarity passes the
// acceptance threshold.
type Driver struct {
	scanner AttemptScanner
	opts    DriverOptions
}

func NewDriver(s AttemptScanner, opts DriverOptions) *Driver {
	if opts.Scale == 0 {
		opts.Scale = DefaultScale
	}
	if opts.Threshold == 0 {
		opts.Threshold = DefaultThreshold
	}
	if opts.Target <= 0 {
		opts.Target = DefaultTarget
	}
	if opts.Workers <= 1 {
		opts.Workers = 1
	}
	return &Driver{scanner: s, opts: opts}
}

// Run scans until the target number of points is accepted, the attempt cap
// is exhausted, or ctx is cancelled. Accepted results are returned sorted by
// seed; with a single worker that is also acceptance order. More than Target
// results can be returned when parallel workers accept concurrently.
func (d *Driver) Run(ctx context.Context) ([]Result, error) {
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		mu        sync.Mutex
		accepted  []Result
		exhausted bool
		seeds     atomic.Uint64
		wg        sync.WaitGroup
	)
	for w := 0; w < d.opts.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for runCtx.Err() == nil {
				seed := seeds.Add(1)
				if d.opts.MaxAttempts > 0 && seed > uint64(d.opts.MaxAttempts) {
					mu.Lock()
					exhausted = true
					mu.Unlock()
					cancel()
					return
				}
				r := d.scanner.Scan(seed, d.opts.Scale)
				d.opts.Logger.Debug().
					Uint64("seed", seed).
					Float64("potential", r.Potential).
					Float64("stationarity", r.Stationarity).
					Msg("attempt finished")
				if !(r.Stationarity < d.opts.Threshold) {
					continue
				}
				mu.Lock()
				accepted = append(accepted, r)
				n := len(accepted)
				d.announce(n, r)
				mu.Unlock()
				if n >= d.opts.Target {
					cancel()
					return
				}
			}
		}()
	}
	wg.Wait()

	sort.Slice(accepted, func(i, j int) bool { return accepted[i].Seed < accepted[j].Seed })
	switch {
	case len(accepted) >= d.opts.Target:
		return accepted, nil
	case ctx.Err() != nil:
		return accepted, ctx.Err()
	case exhausted:
		return accepted, ErrAttemptsExhausted
	default:
		return accepted, nil
	}
}

// announce is called with the acceptance mutex held, keeping progress lines
// ordered.
func (d *Driver) announce(index int, r Result) {
	if d.opts.Progress != nil {
		fmt.Fprintf(d.opts.Progress, "%3d / %3d: V=%.6f stationarity=%.3g\n",
			index, d.opts.Target, r.Potential, r.Stationarity)
	}
	d.opts.Logger.Info().
		Int("accepted", index).
		Int("target", d.opts.Target).
		Uint64("seed", r.Seed).
		Float64("potential", r.Potential).
		Float64("stationarity", r.Stationarity).
		Msg("critical point accepted")
}

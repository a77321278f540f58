package transport

import (
	"fmt"
	"math"
	"sync/atomic"

	"github.com/ot2d/sdot/domain"
	"github.com/ot2d/sdot/geom2d"
	"github.com/ot2d/sdot/laguerre"
)

// Solver owns the state of one semi-discrete optimal-transport problem:
// the fixed domain Ω and seeds, the target masses ν, and the weights ψ
// being solved for. Two Solver values are fully independent and may be
// driven concurrently from different goroutines; a single value's Stop
// field is the only part safe to touch from outside the goroutine
// calling Solve or OneIteration.
type Solver struct {
	omega domain.Mesh
	seeds []geom2d.Point
	nu    []float64
	psi   []float64

	adapter *laguerre.Adapter
	opts    Options

	// theta is the KMT-1 mass floor, fixed at construction from a(0)
	// and the initial target masses.
	theta float64

	// Stop may be set from another goroutine between outer iterations
	// to request an early return with ErrInterrupted.
	Stop atomic.Bool

	// area is a reused scratch buffer for CellAreas.
	area []float64
}

// NewSolver validates (omega, seeds, nu) and builds a Solver.
// builder supplies the Laguerre diagrams the Newton driver rebuilds
// every outer iteration and line-search substep; see package
// laguerre/native for a reference implementation usable when no
// external diagram producer is wired in. If nu is nil, equal masses
// |Ω|/N are used.
func NewSolver(omega domain.Mesh, seeds []geom2d.Point, nu []float64, builder laguerre.Builder, opts Options) (*Solver, error) {
	n := len(seeds)
	if n < 2 {
		return nil, fmt.Errorf("%w: need at least 2 seeds, got %d", ErrInputInvalid, n)
	}

	totalArea := omega.Area()
	if nu == nil {
		nu = make([]float64, n)
		for i := range nu {
			nu[i] = totalArea / float64(n)
		}
	}
	if len(nu) != n {
		return nil, fmt.Errorf("%w: len(nu) = %d, want %d", ErrInputInvalid, len(nu), n)
	}
	if err := validateSeeds(omega, seeds); err != nil {
		return nil, err
	}
	if err := validateMasses(nu, totalArea); err != nil {
		return nil, err
	}

	s := &Solver{
		omega:   omega,
		seeds:   append([]geom2d.Point(nil), seeds...),
		nu:      append([]float64(nil), nu...),
		psi:     make([]float64, n),
		adapter: laguerre.NewAdapter(builder),
		opts:    opts,
		area:    make([]float64, n),
	}

	diag0, err := s.adapter.Build(s.omega, s.seeds, s.psi)
	if err != nil {
		return nil, fmt.Errorf("%w: building the ψ=0 diagram: %v", ErrInputInvalid, err)
	}
	a0 := CellAreas(diag0, n, nil)
	minA, minNu := a0[0], nu[0]
	for i := 1; i < n; i++ {
		minA = math.Min(minA, a0[i])
		minNu = math.Min(minNu, nu[i])
	}
	s.theta = 0.5 * math.Min(minA, minNu)

	return s, nil
}

// SetTargetMasses replaces ν. The new masses must be positive and sum
// to |Ω|; θ, fixed at construction from a(0), is left unchanged.
func (s *Solver) SetTargetMasses(nu []float64) error {
	if len(nu) != len(s.seeds) {
		return fmt.Errorf("%w: len(nu) = %d, want %d", ErrInputInvalid, len(nu), len(s.seeds))
	}
	if err := validateMasses(nu, s.omega.Area()); err != nil {
		return err
	}
	copy(s.nu, nu)
	return nil
}

// CellAreas returns a(ψ) at the solver's current weights.
func (s *Solver) CellAreas() ([]float64, error) {
	diag, err := s.adapter.Build(s.omega, s.seeds, s.psi)
	if err != nil {
		return nil, err
	}
	return CellAreas(diag, len(s.seeds), nil), nil
}

// Weights returns a copy of the solver's current ψ.
func (s *Solver) Weights() Weights {
	return append([]float64(nil), s.psi...)
}

// Solve repeatedly calls OneIteration until the reported L∞ gradient
// error falls below Options.Tol * max(ν), the outer-iteration cap
// (Options.MaxOuter) is reached, or Stop is observed. It returns the
// converged (or best-effort) ψ.
func (s *Solver) Solve() (Weights, error) {
	tol := s.opts.Tol
	if tol == 0 {
		tol = 0.01
	}
	maxOuter := s.opts.MaxOuter
	if maxOuter == 0 {
		maxOuter = 200
	}

	maxNu := s.nu[0]
	for _, v := range s.nu[1:] {
		maxNu = math.Max(maxNu, v)
	}
	threshold := tol * maxNu

	var lastErr float64
	for iter := 0; iter < maxOuter; iter++ {
		e, err := s.OneIteration()
		if err != nil {
			if err == ErrInterrupted {
				return s.Weights(), ErrInterrupted
			}
			return s.Weights(), err
		}
		lastErr = e
		if s.opts.Verbose {
			s.opts.Logger.Info().Int("iter", iter).Float64("error", e).Msg("outer iteration")
		}
		if e < threshold {
			return s.Weights(), nil
		}
	}
	return s.Weights(), &ErrDidNotConverge{Weights: s.Weights(), Err: lastErr}
}

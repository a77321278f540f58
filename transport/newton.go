package transport

import (
	"fmt"
	"math"

	"github.com/ot2d/sdot/linsolve"
)

// OneIteration performs one damped Newton–KMT outer step and returns
// the L∞ gradient error ‖a(ψ)−ν‖∞ after whatever step (possibly none)
// was accepted.
//
// The backtracking loop below keeps an explicit ψ_prev and recomputes
// ψ_trial = ψ_prev + α·p at each substep, rather than mutating ψ in
// place by subtracting half the previous step — the two are equivalent
// only given a specific ordering of operations, and the explicit form
// is the one that can't be gotten subtly wrong by reordering.
func (s *Solver) OneIteration() (float64, error) {
	if s.Stop.Load() {
		return 0, ErrInterrupted
	}

	n := len(s.seeds)
	diag, err := s.adapter.Build(s.omega, s.seeds, s.psi)
	if err != nil {
		return 0, fmt.Errorf("transport: building diagram at current ψ: %w", err)
	}
	a := CellAreas(diag, n, s.area)
	h := BuildHessian(diag, s.seeds, n)

	b := make([]float64, n)
	for i := range b {
		b[i] = s.nu[i] - a[i]
	}
	gNorm := l2Norm(b)

	reg := make([]float64, n)
	for i := range reg {
		reg[i] = s.opts.Regularization * s.nu[i]
	}

	p, err := linsolve.Solve(h, n, reg, b, linsolve.Options{Method: s.opts.Solver})
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrLinearSolveFailed, err)
	}

	psiPrev := append([]float64(nil), s.psi...)
	psiTrial := make([]float64, n)

	alpha := 1.0
	for i := range psiTrial {
		psiTrial[i] = psiPrev[i] + alpha*p[i]
	}

	maxLS := s.opts.MaxLineSearch
	if maxLS <= 0 {
		maxLS = 10
	}

	var (
		accepted bool
		gPrime   []float64
	)
	for substep := 0; substep < maxLS; substep++ {
		trialDiag, buildErr := s.adapter.Build(s.omega, s.seeds, psiTrial)
		if buildErr == nil && nonEmptyCells(trialDiag, n) == n {
			aPrime := CellAreas(trialDiag, n, nil)
			smallest := aPrime[0]
			gPrime = make([]float64, n)
			for i := range gPrime {
				gPrime[i] = aPrime[i] - s.nu[i]
				if aPrime[i] < smallest {
					smallest = aPrime[i]
				}
			}
			kmt1 := smallest > s.theta
			kmt2 := l2Norm(gPrime) <= (1-alpha/2)*gNorm
			if kmt1 && kmt2 {
				accepted = true
				break
			}
		}
		alpha /= 2
		for i := range psiTrial {
			psiTrial[i] = psiPrev[i] + alpha*p[i]
		}
	}

	if !accepted {
		// Line search exhausted: leave ψ untouched and report the
		// error at the pre-step diagram. The outer loop will either
		// make progress from here on a later call (the diagram is
		// unchanged so the very same step would be attempted again
		// only if nothing about θ or ν changed) or exhaust MaxOuter
		// and surface ErrDidNotConverge.
		return linfNorm(b), nil
	}

	copy(s.psi, psiTrial)
	if s.opts.Verbose {
		s.opts.Logger.Info().
			Float64("alpha", alpha).
			Float64("g_inf", linfNorm(gPrime)).
			Msg("newton step accepted")
	}
	return linfNorm(gPrime), nil
}

func l2Norm(v []float64) float64 {
	var sum float64
	for _, x := range v {
		sum += x * x
	}
	return math.Sqrt(sum)
}

func linfNorm(v []float64) float64 {
	var m float64
	for _, x := range v {
		if ax := math.Abs(x); ax > m {
			m = ax
		}
	}
	return m
}

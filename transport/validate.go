package transport

import (
	"fmt"
	"math"

	"github.com/ot2d/sdot/domain"
	"github.com/ot2d/sdot/geom2d"
)

// duplicateSeedTolerance is the distance below which two seeds are
// rejected as coincident, per spec's InputInvalid error kind.
const duplicateSeedTolerance = 1e-12

// massSumRelTol is the relative tolerance for Σνi == |Ω|.
const massSumRelTol = 1e-6

func validateSeeds(omega domain.Mesh, seeds []geom2d.Point) error {
	for i, p := range seeds {
		if !omega.Contains(p) {
			return fmt.Errorf("%w: seed %d at (%g, %g) lies outside Ω", ErrInputInvalid, i, p.X, p.Y)
		}
	}
	for i := range seeds {
		for j := i + 1; j < len(seeds); j++ {
			if geom2d.Dist2(seeds[i], seeds[j]) <= duplicateSeedTolerance*duplicateSeedTolerance {
				return fmt.Errorf("%w: seeds %d and %d coincide", ErrInputInvalid, i, j)
			}
		}
	}
	return nil
}

func validateMasses(nu []float64, totalArea float64) error {
	var sum float64
	for i, v := range nu {
		if v <= 0 {
			return fmt.Errorf("%w: mass %d is non-positive (%g)", ErrInputInvalid, i, v)
		}
		sum += v
	}
	if math.Abs(sum-totalArea) > massSumRelTol*totalArea {
		return fmt.Errorf("%w: masses sum to %g, want %g (|Ω|)", ErrInputInvalid, sum, totalArea)
	}
	return nil
}

package agent

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r1"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/samuelfneumann/goenv/timestep"
	"github.com/samuelfneumann/goenv/utils/floatutils"
)

// Uniform is an Agent which selects integer actions of a single
// dimension uniformly at random from a closed interval
type Uniform struct {
	nonLearning
	bounds r1.Interval
	seed   uint64
	rng    distuv.Uniform
}

// NewUniform returns a new Uniform agent which selects integers in
// [bounds.Min, bounds.Max]. Both bounds must be integers.
func NewUniform(bounds r1.Interval, seed uint64) (*Uniform, error) {
	if !floatutils.IsIntegral(bounds.Min) ||
		!floatutils.IsIntegral(bounds.Max) {
		return nil, fmt.Errorf("newUniform: bounds [%v, %v] must be integers",
			bounds.Min, bounds.Max)
	}
	if bounds.Min > bounds.Max {
		return nil, fmt.Errorf("newUniform: lower bound %v exceeds upper "+
			"bound %v", bounds.Min, bounds.Max)
	}

	source := rand.NewSource(seed)
	rng := distuv.Uniform{Min: bounds.Min, Max: bounds.Max + 1, Src: source}

	return &Uniform{bounds: bounds, seed: seed, rng: rng}, nil
}

// SelectAction samples an action uniformly at random
func (u *Uniform) SelectAction(_ timestep.TimeStep) *mat.VecDense {
	// Samples lie in [Min, Max+1), so flooring gives each integer equal
	// probability. The clip only guards against floating point error.
	sample := floatutils.ClipInterval(math.Floor(u.rng.Rand()), u.bounds)
	return mat.NewVecDense(1, []float64{sample})
}

func (u *Uniform) String() string {
	return fmt.Sprintf("Uniform([%v, %v], seed: %v)", u.bounds.Min,
		u.bounds.Max, u.seed)
}

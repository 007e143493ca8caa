package counter

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/goenv/environment"
	ts "github.com/samuelfneumann/goenv/timestep"
)

// Threshold is the default count at which an episode ends
const Threshold int = 10

// Reach implements the task of counting up to a threshold. The reward
// for each action is the value of the counter after the action is
// taken, and episodes end once the counter is at least the threshold.
type Reach struct {
	*environment.FunctionEnder
	threshold int
}

// NewReach creates and returns a new Reach task which ends episodes
// once the counter reaches threshold
func NewReach(threshold int) *Reach {
	ender := environment.NewFunctionEnder(func(obs *mat.VecDense) bool {
		return obs.AtVec(0) >= float64(threshold)
	}, ts.TerminalStateReached)

	return &Reach{ender, threshold}
}

// Threshold returns the count at which episodes end
func (r *Reach) Threshold() int {
	return r.threshold
}

// GetReward returns the reward for taking action in state and
// transitioning to nextState, which is the count in nextState
func (r *Reach) GetReward(_, _ mat.Vector, nextState mat.Vector) float64 {
	return nextState.AtVec(0)
}

// RewardSpec returns the reward specification of the Task. Rewards
// are unbounded since actions may be arbitrarily large or negative.
func (r *Reach) RewardSpec() environment.Spec {
	return environment.NewScalarSpec(environment.Reward, math.Inf(-1),
		math.Inf(1), environment.Discrete)
}

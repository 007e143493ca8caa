package wrappers

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/goenv/environment"
	ts "github.com/samuelfneumann/goenv/timestep"
)

// TransformObservation wraps an environment.Environment and applies a
// function to each observation it returns, including the observation
// returned by Reset.
type TransformObservation struct {
	environment.Environment
	f func(*mat.VecDense) *mat.VecDense
}

// NewTransformObservation returns a new TransformObservation which
// transforms the observations of env with f
func NewTransformObservation(env environment.Environment,
	f func(*mat.VecDense) *mat.VecDense) *TransformObservation {
	return &TransformObservation{env, f}
}

// Reset resets the environment and returns the transformed first
// TimeStep
func (t *TransformObservation) Reset() (ts.TimeStep, error) {
	step, err := t.Environment.Reset()
	if err != nil {
		return step, err
	}
	step.Observation = t.f(step.Observation)
	return step, nil
}

// Step takes one environmental step given action a and returns the
// next TimeStep, with a transformed observation.
func (t *TransformObservation) Step(action *mat.VecDense) (ts.TimeStep,
	bool, error) {
	step, last, err := t.Environment.Step(action)
	if err != nil {
		return step, last, err
	}
	step.Observation = t.f(step.Observation)
	return step, last, nil
}

func (t *TransformObservation) String() string {
	return fmt.Sprintf("TransformObservation(%v)", t.Environment)
}

// TransformReward wraps an environment.Environment and applies a
// function to each reward it returns.
type TransformReward struct {
	environment.Environment
	f func(float64) float64
}

// NewTransformReward returns a new TransformReward which transforms
// the rewards of env with f
func NewTransformReward(env environment.Environment,
	f func(float64) float64) *TransformReward {
	return &TransformReward{env, f}
}

// Step takes one environmental step given action a and returns the
// next TimeStep, with a transformed reward.
func (t *TransformReward) Step(action *mat.VecDense) (ts.TimeStep, bool,
	error) {
	step, last, err := t.Environment.Step(action)
	if err != nil {
		return step, last, err
	}
	step.Reward = t.f(step.Reward)
	return step, last, nil
}

// RewardSpec returns the reward specification of the environment.
// Bounds depend on the transformation, so they cannot be calculated
// and are unbounded.
func (t *TransformReward) RewardSpec() environment.Spec {
	rewardSpec := t.Environment.RewardSpec()

	n := rewardSpec.Shape.Len()
	lower := mat.NewVecDense(n, nil)
	upper := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		lower.SetVec(i, math.Inf(-1))
		upper.SetVec(i, math.Inf(1))
	}

	return environment.NewSpec(rewardSpec.Shape, rewardSpec.Type, lower,
		upper, rewardSpec.Cardinality)
}

func (t *TransformReward) String() string {
	return fmt.Sprintf("TransformReward(%v)", t.Environment)
}

// TransformAction wraps an environment.Environment and applies a
// function to each action before it is taken in the wrapped
// environment.
type TransformAction struct {
	environment.Environment
	f func(*mat.VecDense) *mat.VecDense
}

// NewTransformAction returns a new TransformAction which transforms
// the actions taken in env with f
func NewTransformAction(env environment.Environment,
	f func(*mat.VecDense) *mat.VecDense) *TransformAction {
	return &TransformAction{env, f}
}

// Step transforms action and takes one environmental step with the
// transformed action.
func (t *TransformAction) Step(action *mat.VecDense) (ts.TimeStep, bool,
	error) {
	return t.Environment.Step(t.f(action))
}

func (t *TransformAction) String() string {
	return fmt.Sprintf("TransformAction(%v)", t.Environment)
}

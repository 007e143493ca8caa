// Package environment outlines the interfaces and structs needed to
// implement concrete environments
package environment

import (
	"gonum.org/v1/gonum/mat"

	ts "github.com/samuelfneumann/goenv/timestep"
)

// Ender determines when an episode has ended. If an episode has ended,
// End changes the TimeStep's StepType to timestep.Last, records the
// way the episode ended, and returns true.
type Ender interface {
	End(*ts.TimeStep) bool
}

// Task implements the reward scheme and episode termination rules for
// taking actions in some environment
type Task interface {
	Ender
	GetReward(state, action, nextState mat.Vector) float64
	RewardSpec() Spec
}

// Environment implements a simulated environment. An environment is
// stateful and models one episode of interaction at a time.
//
// Reset returns the first TimeStep of a new episode, whose
// Observation is the initial observation. Step returns the next
// TimeStep and whether the episode is done. The observation, reward,
// done flag, and auxiliary information of a step are the TimeStep's
// Observation, Reward, Last(), and Info.
//
// Render performs a side-effecting display of the environment and
// Close releases any resources the environment holds.
type Environment interface {
	Reset() (ts.TimeStep, error)
	Step(action *mat.VecDense) (ts.TimeStep, bool, error)
	Render(mode RenderMode) error
	Close() error

	RewardSpec() Spec
	DiscountSpec() Spec
	ObservationSpec() Spec
	ActionSpec() Spec
}

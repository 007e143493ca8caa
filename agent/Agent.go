// Package agent defines an agent interface and simple agents which act
// in environments
package agent

import (
	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/goenv/timestep"
)

// Agent determines the implementation details of an agent or algorithm
//
// An Agent is composed of a Learner, which observes the interaction
// with an environment, and a Policy which chooses actions in each
// state.
type Agent interface {
	Learner
	Policy
}

// Learner observes the agent-environment interaction and updates
// itself from it.
type Learner interface {
	// Step performs a single update to the learner
	Step() error

	// Observe records that an action lead to some timestep
	Observe(action mat.Vector, nextObs timestep.TimeStep) error

	// ObserveFirst records the first timestep in an episode
	ObserveFirst(timestep.TimeStep) error

	// EndEpisode performs cleanup at the end of an episode
	EndEpisode()
}

// Policy represents a policy that an agent can have. Policies
// determine how agents select actions.
type Policy interface {
	SelectAction(t timestep.TimeStep) *mat.VecDense
}

// nonLearning implements the Learner interface for agents which do not
// learn
type nonLearning struct{}

func (nonLearning) Step() error                                 { return nil }
func (nonLearning) Observe(mat.Vector, timestep.TimeStep) error { return nil }
func (nonLearning) ObserveFirst(timestep.TimeStep) error        { return nil }
func (nonLearning) EndEpisode()                                 {}

// Package wrappers implements environments which wrap other
// environments and alter how they are interacted with.
package wrappers

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/goenv/environment"
	ts "github.com/samuelfneumann/goenv/timestep"
)

// TruncatedKey is the Info key set on the last TimeStep of an episode
// that was cut off by a TimeLimit
const TruncatedKey string = "TimeLimit.truncated"

// TimeLimit wraps an environment.Environment and ends episodes after
// a maximum number of steps. The TimeStep which reaches the limit is
// made the last in its episode with end type timestep.Timeout.
//
// The TruncatedKey Info entry of the step at the limit records
// whether the limit cut the episode short: it is true unless the
// wrapped environment ended the episode on that same step.
type TimeLimit struct {
	environment.Environment
	limit *environment.StepLimit
}

// NewTimeLimit returns a new TimeLimit which ends episodes of env
// after maxEpisodeSteps steps
func NewTimeLimit(env environment.Environment,
	maxEpisodeSteps int) (*TimeLimit, error) {
	if maxEpisodeSteps <= 0 {
		return nil, fmt.Errorf("newTimeLimit: maxEpisodeSteps must be "+
			"positive, got %d", maxEpisodeSteps)
	}

	return &TimeLimit{
		Environment: env,
		limit:       environment.NewStepLimit(maxEpisodeSteps),
	}, nil
}

// MaxEpisodeSteps returns the maximum number of steps in an episode
func (t *TimeLimit) MaxEpisodeSteps() int {
	return t.limit.EpisodeSteps()
}

// Step takes one environmental step given action a and returns the next
// timestep as a timestep.TimeStep and a bool indicating whether or not
// the episode has ended.
func (t *TimeLimit) Step(action *mat.VecDense) (ts.TimeStep, bool, error) {
	step, last, err := t.Environment.Step(action)
	if err != nil {
		return step, last, err
	}

	if t.limit.End(&step) {
		if step.Info == nil {
			step.Info = make(map[string]interface{})
		}
		step.Info[TruncatedKey] = !last
		last = true
	}

	return step, last, nil
}

func (t *TimeLimit) String() string {
	return fmt.Sprintf("TimeLimit(steps: %v)(%v)", t.MaxEpisodeSteps(),
		t.Environment)
}

// Package timestep implements timesteps of the agent-environment interaction
package timestep

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// StepType denotes the type of step that a TimeStep can be, either  first
// environmental step, a middle step, or a last step
type StepType int

const (
	First StepType = iota
	Mid
	Last
)

func (s StepType) String() string {
	switch s {
	case First:
		return "First"
	case Last:
		return "Last"
	default:
		return "Mid"
	}
}

// EndType describes how an episode ended. Only a TimeStep with
// StepType Last has a meaningful EndType.
type EndType int

const (
	// Unset is the EndType of any TimeStep that is not Last
	Unset EndType = iota

	// TerminalStateReached indicates the environment reached a
	// terminal state, e.g. a counter reaching its threshold
	TerminalStateReached

	// Timeout indicates the episode was cut off by a step limit
	Timeout
)

func (e EndType) String() string {
	switch e {
	case TerminalStateReached:
		return "TerminalStateReached"
	case Timeout:
		return "Timeout"
	default:
		return "Unset"
	}
}

// TimeStep packages together a single timestep in an environment.
//
// The observation, reward, completion flag, and auxiliary mapping
// returned by an environmental step are the Observation, Reward,
// Last(), and Info of the TimeStep.
type TimeStep struct {
	StepType
	Reward      float64
	Discount    float64
	Observation *mat.VecDense
	Number      int

	// Info holds auxiliary diagnostic information. Environments
	// return a non-nil, possibly empty, map.
	Info map[string]interface{}

	endType EndType
}

// New returns a new TimeStep with an empty Info map
func New(t StepType, r, d float64, o *mat.VecDense, n int) TimeStep {
	return TimeStep{
		StepType:    t,
		Reward:      r,
		Discount:    d,
		Observation: o,
		Number:      n,
		Info:        make(map[string]interface{}),
	}
}

// First returns whether a TimeStep is the first in an environment
func (t *TimeStep) First() bool {
	return t.StepType == First
}

// Mid returns whether a TimeStep is a middle step in an environment
func (t *TimeStep) Mid() bool {
	return t.StepType == Mid
}

// Last returns whether a TimeStep is the last step in an environment
func (t *TimeStep) Last() bool {
	return t.StepType == Last
}

// SetEnd sets the way the episode ended. The EndType is only recorded
// if the TimeStep is the last in its episode, and SetEnd reports
// whether it was recorded.
func (t *TimeStep) SetEnd(e EndType) bool {
	if !t.Last() {
		return false
	}
	t.endType = e
	return true
}

// EndType returns how the episode ended, or Unset if the TimeStep is
// not the last step of an episode
func (t *TimeStep) EndType() EndType {
	if !t.Last() {
		return Unset
	}
	return t.endType
}

// TerminalEnd returns whether the episode ended by reaching a
// terminal state
func (t *TimeStep) TerminalEnd() bool {
	return t.EndType() == TerminalStateReached
}

// TimeoutEnd returns whether the episode ended by a step limit
func (t *TimeStep) TimeoutEnd() bool {
	return t.EndType() == Timeout
}

func (t TimeStep) String() string {
	str := "TimeStep | Type: %v  |  Reward:  %.2f  |  Discount: %.2f  |  " +
		"Step Number:  %v"

	return fmt.Sprintf(str, t.StepType, t.Reward, t.Discount, t.Number)
}

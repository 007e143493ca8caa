package wrappers

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/goenv/environment"
	ts "github.com/samuelfneumann/goenv/timestep"
	"github.com/samuelfneumann/goenv/utils/matutils"
)

// ClipAction wraps an environment.Environment and clips each component
// of an action to within bounds before the action is taken.
type ClipAction struct {
	environment.Environment
	low, high mat.Vector
}

// NewClipAction returns a new ClipAction which clips actions in env
// to within [low, high]. If either bound is nil, the corresponding
// bound of env's ActionSpec is used.
func NewClipAction(env environment.Environment, low,
	high mat.Vector) (*ClipAction, error) {
	actionSpec := env.ActionSpec()
	if low == nil {
		low = actionSpec.LowerBound
	}
	if high == nil {
		high = actionSpec.UpperBound
	}

	if low.Len() != high.Len() {
		return nil, fmt.Errorf("newClipAction: lower bound length %d must "+
			"match upper bound length %d", low.Len(), high.Len())
	}
	for i := 0; i < low.Len(); i++ {
		if low.AtVec(i) > high.AtVec(i) {
			return nil, fmt.Errorf("newClipAction: lower bound %v exceeds "+
				"upper bound %v at index %d", low.AtVec(i), high.AtVec(i), i)
		}
	}

	return &ClipAction{env, low, high}, nil
}

// Step clips action and takes one environmental step with the clipped
// action.
func (c *ClipAction) Step(action *mat.VecDense) (ts.TimeStep, bool,
	error) {
	if action == nil || action.Len() != c.low.Len() {
		err := fmt.Errorf("%w: action must have %d dimensions",
			environment.ErrInvalidAction, c.low.Len())
		return ts.TimeStep{}, false, &environment.Error{Op: "step", Err: err}
	}

	return c.Environment.Step(matutils.VecClip(action, c.low, c.high))
}

// ActionSpec returns the action specification of the environment,
// bounded by the clipping bounds
func (c *ClipAction) ActionSpec() environment.Spec {
	actionSpec := c.Environment.ActionSpec()
	actionSpec.LowerBound = c.low
	actionSpec.UpperBound = c.high
	return actionSpec
}

func (c *ClipAction) String() string {
	return fmt.Sprintf("ClipAction(%v)", c.Environment)
}

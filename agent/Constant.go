package agent

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/goenv/timestep"
	"github.com/samuelfneumann/goenv/utils/matutils"
)

// Constant is an Agent which always selects the same action
type Constant struct {
	nonLearning
	action *mat.VecDense
}

// NewConstant returns a new Constant agent which always selects
// action
func NewConstant(action *mat.VecDense) *Constant {
	return &Constant{action: action}
}

// SelectAction returns a copy of the constant action
func (c *Constant) SelectAction(_ timestep.TimeStep) *mat.VecDense {
	action := mat.NewVecDense(c.action.Len(), nil)
	action.CopyVec(c.action)
	return action
}

func (c *Constant) String() string {
	return fmt.Sprintf("Constant(%v)", matutils.Format(c.action))
}

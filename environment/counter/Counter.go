// Package counter implements an environment which counts the sum of
// actions taken in it
package counter

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/fogleman/gg"
	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/goenv/environment"
	ts "github.com/samuelfneumann/goenv/timestep"
	"github.com/samuelfneumann/goenv/utils/floatutils"
)

// Dimensions of images rendered in the environment.RGBArray mode
const (
	ViewportW int = 200
	ViewportH int = 80
)

// Counter is an environment with a single integer state. Each action
// adds its value to the state, and the Task determines the rewards
// and when episodes end.
//
// Observations and actions are vectors of length 1. Actions must hold
// integral values, but may be negative.
type Counter struct {
	environment.Task
	state       int
	discount    float64
	currentStep ts.TimeStep
	out         io.Writer
}

// New creates a new Counter environment with Task t and discount
// factor discount, and returns it with its first TimeStep. Rendering
// writes to w, or to standard output if w is nil.
func New(t environment.Task, discount float64, w io.Writer) (*Counter,
	ts.TimeStep) {
	if w == nil {
		w = os.Stdout
	}

	c := &Counter{
		Task:     t,
		discount: discount,
		out:      w,
	}
	step, _ := c.Reset()

	return c, step
}

// Reset resets the counter to 0 and returns the first TimeStep of the
// next episode
func (c *Counter) Reset() (ts.TimeStep, error) {
	c.state = 0

	step := ts.New(ts.First, 0, c.discount, c.observation(), 0)
	c.currentStep = step

	return step, nil
}

// Step adds the action to the counter and returns the next TimeStep
// as well as whether the episode has ended.
//
// If the action is not a single integral value, or adding it would
// overflow the counter, ErrInvalidAction is returned and the counter
// is unchanged.
func (c *Counter) Step(action *mat.VecDense) (ts.TimeStep, bool, error) {
	a, err := parseAction(action)
	if err != nil {
		return ts.TimeStep{}, false, &environment.Error{Op: "step", Err: err}
	}

	if (a > 0 && c.state > math.MaxInt-a) ||
		(a < 0 && c.state < math.MinInt-a) {
		err := fmt.Errorf("%w: action %d overflows state %d",
			environment.ErrInvalidAction, a, c.state)
		return ts.TimeStep{}, false, &environment.Error{Op: "step", Err: err}
	}

	c.state += a
	nextState := c.observation()

	reward := c.GetReward(c.currentStep.Observation, action, nextState)
	nextStep := ts.New(ts.Mid, reward, c.discount, nextState,
		c.currentStep.Number+1)

	last := c.End(&nextStep)
	c.currentStep = nextStep

	return nextStep, last, nil
}

// State returns the current count
func (c *Counter) State() int {
	return c.state
}

// CurrentTimeStep returns the last TimeStep returned by the Counter
func (c *Counter) CurrentTimeStep() ts.TimeStep {
	return c.currentStep
}

// Render displays the counter. The environment.Human mode prints the
// count as text, and the environment.RGBArray mode writes a PNG image
// of the count's progress toward the threshold.
func (c *Counter) Render(mode environment.RenderMode) error {
	switch mode {
	case environment.Human:
		_, err := fmt.Fprintf(c.out, "State: %d\n", c.state)
		return err

	case environment.RGBArray:
		return c.renderImage()
	}

	return &environment.Error{
		Op:  "render",
		Err: fmt.Errorf("%w: %q", environment.ErrUnsupportedRenderMode, mode),
	}
}

func (c *Counter) renderImage() error {
	w, h := float64(ViewportW), float64(ViewportH)
	margin := 10.0

	dc := gg.NewContext(ViewportW, ViewportH)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	// Fill a bar in proportion to the progress toward the threshold
	progress := 0.0
	if r, ok := c.Task.(*Reach); ok && r.Threshold() > 0 {
		progress = float64(c.state) / float64(r.Threshold())
	}
	progress = floatutils.Clip(progress, 0, 1)

	barW := (w - 2*margin) * progress
	dc.SetRGB(0.25, 0.5, 0.8)
	dc.DrawRectangle(margin, h/2, barW, h/2-margin)
	dc.Fill()

	dc.SetRGB(0, 0, 0)
	dc.SetLineWidth(2)
	dc.DrawRectangle(margin, h/2, w-2*margin, h/2-margin)
	dc.Stroke()

	dc.DrawStringAnchored(fmt.Sprintf("State: %d", c.state), w/2, h/4, 0.5,
		0.5)

	if err := dc.EncodePNG(c.out); err != nil {
		return &environment.Error{Op: "render", Err: err}
	}
	return nil
}

// Close performs cleanup of environment resources. The Counter holds
// no resources, so Close never fails.
func (c *Counter) Close() error {
	return nil
}

// ObservationSpec returns the observation specification of the
// environment
func (c *Counter) ObservationSpec() environment.Spec {
	return environment.NewScalarSpec(environment.Observation, math.Inf(-1),
		math.Inf(1), environment.Discrete)
}

// ActionSpec returns the action specification of the environment
func (c *Counter) ActionSpec() environment.Spec {
	return environment.NewScalarSpec(environment.Action, math.Inf(-1),
		math.Inf(1), environment.Discrete)
}

// DiscountSpec returns the discount specification of the environment
func (c *Counter) DiscountSpec() environment.Spec {
	return environment.NewScalarSpec(environment.Discount, c.discount,
		c.discount, environment.Continuous)
}

func (c *Counter) String() string {
	str := "Counter | State: %d  |  Step: %d"
	return fmt.Sprintf(str, c.state, c.currentStep.Number)
}

func (c *Counter) observation() *mat.VecDense {
	return mat.NewVecDense(1, []float64{float64(c.state)})
}

// parseAction returns the integer held by action
func parseAction(action *mat.VecDense) (int, error) {
	if action == nil {
		return 0, fmt.Errorf("%w: nil action", environment.ErrInvalidAction)
	}
	if l := action.Len(); l != 1 {
		return 0, fmt.Errorf("%w: actions must be 1-dimensional, got %d "+
			"dimensions", environment.ErrInvalidAction, l)
	}

	value := action.AtVec(0)
	if !floatutils.IsIntegral(value) {
		return 0, fmt.Errorf("%w: action %v is not an integer",
			environment.ErrInvalidAction, value)
	}
	if value >= float64(math.MaxInt) || value < float64(math.MinInt) {
		return 0, fmt.Errorf("%w: action %v is out of range",
			environment.ErrInvalidAction, value)
	}
	return int(value), nil
}

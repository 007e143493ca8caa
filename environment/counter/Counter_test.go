package counter_test

import (
	"bytes"
	"errors"
	"image/png"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/goenv/environment"
	"github.com/samuelfneumann/goenv/environment/counter"
)

var _ environment.Environment = &counter.Counter{}

func action(a float64) *mat.VecDense {
	return mat.NewVecDense(1, []float64{a})
}

func newCounter(t *testing.T) (*counter.Counter, *bytes.Buffer) {
	t.Helper()

	var out bytes.Buffer
	c, step := counter.New(counter.NewReach(counter.Threshold), 1.0, &out)
	require.True(t, step.First())
	require.Equal(t, 0.0, step.Observation.AtVec(0))

	return c, &out
}

func TestReset(t *testing.T) {
	c, _ := newCounter(t)

	_, _, err := c.Step(action(7))
	require.NoError(t, err)
	require.Equal(t, 7, c.State())

	step, err := c.Reset()
	require.NoError(t, err)
	assert.Equal(t, 0.0, step.Observation.AtVec(0))
	assert.Equal(t, 0, c.State())
	assert.Equal(t, 0, step.Number)
	assert.True(t, step.First())
}

func TestStepSingle(t *testing.T) {
	c, _ := newCounter(t)

	step, done, err := c.Step(action(1))
	require.NoError(t, err)

	assert.Equal(t, 1.0, step.Observation.AtVec(0))
	assert.Equal(t, 1.0, step.Reward)
	assert.False(t, done)
	assert.NotNil(t, step.Info)
	assert.Empty(t, step.Info)
}

func TestDoneOnTenthStep(t *testing.T) {
	c, _ := newCounter(t)

	for i := 1; i <= 10; i++ {
		step, done, err := c.Step(action(1))
		require.NoError(t, err)

		if i < 10 {
			assert.False(t, done, "step %d should not be done", i)
			assert.True(t, step.Mid())
			continue
		}
		assert.True(t, done, "step %d should be done", i)
		assert.True(t, step.Last())
		assert.True(t, step.TerminalEnd())
		assert.Equal(t, 10, step.Number)
	}
}

func TestRunningSum(t *testing.T) {
	actions := []float64{3, 1, 4, 1, 5, 9, 2, 6}
	c, _ := newCounter(t)

	sum := 0.0
	for _, a := range actions {
		step, done, err := c.Step(action(a))
		require.NoError(t, err)

		sum += a
		assert.Equal(t, sum, step.Observation.AtVec(0))
		assert.Equal(t, sum, step.Reward)
		assert.Equal(t, sum >= 10, done)
	}
}

func TestDoneRemainsTrue(t *testing.T) {
	c, _ := newCounter(t)

	_, done, err := c.Step(action(12))
	require.NoError(t, err)
	require.True(t, done)

	for _, a := range []float64{0, 1, 5} {
		_, done, err = c.Step(action(a))
		require.NoError(t, err)
		assert.True(t, done)
	}
}

func TestNegativeActions(t *testing.T) {
	c, _ := newCounter(t)

	step, done, err := c.Step(action(-3))
	require.NoError(t, err)
	assert.Equal(t, -3.0, step.Observation.AtVec(0))
	assert.Equal(t, -3.0, step.Reward)
	assert.False(t, done)
}

func TestInvalidAction(t *testing.T) {
	c, _ := newCounter(t)
	_, _, err := c.Step(action(2))
	require.NoError(t, err)

	invalid := []*mat.VecDense{
		nil,
		mat.NewVecDense(2, []float64{1, 1}),
		action(0.5),
		action(math.NaN()),
		action(math.Inf(1)),
		action(1e19),
		action(-1e19),
		action(math.Ldexp(1, 63)),
	}
	for _, a := range invalid {
		_, _, err := c.Step(a)
		assert.True(t, errors.Is(err, environment.ErrInvalidAction),
			"action %v: expected invalid action error, got %v", a, err)
		assert.Equal(t, 2, c.State())
	}
}

func TestStepOverflow(t *testing.T) {
	c, _ := newCounter(t)

	_, done, err := c.Step(action(9e18))
	require.NoError(t, err)
	require.True(t, done)

	_, _, err = c.Step(action(9e18))
	assert.True(t, errors.Is(err, environment.ErrInvalidAction))
	assert.Equal(t, 9000000000000000000, c.State())

	_, err = c.Reset()
	require.NoError(t, err)
	_, _, err = c.Step(action(-9e18))
	require.NoError(t, err)

	_, _, err = c.Step(action(-9e18))
	assert.True(t, errors.Is(err, environment.ErrInvalidAction))
	assert.Equal(t, -9000000000000000000, c.State())
}

func TestDoneNearMaxState(t *testing.T) {
	c, _ := newCounter(t)

	_, done, err := c.Step(action(9223372036854774784))
	require.NoError(t, err)
	require.True(t, done)

	step, done, err := c.Step(action(1000))
	require.NoError(t, err)
	assert.Equal(t, 9223372036854775784, c.State())
	assert.True(t, done)
	assert.True(t, step.TerminalEnd())
}

func TestRenderHuman(t *testing.T) {
	c, out := newCounter(t)

	_, _, err := c.Step(action(4))
	require.NoError(t, err)
	require.NoError(t, c.Render(environment.Human))

	assert.Equal(t, "State: 4\n", out.String())
}

func TestRenderRGBArray(t *testing.T) {
	c, out := newCounter(t)

	_, _, err := c.Step(action(5))
	require.NoError(t, err)
	require.NoError(t, c.Render(environment.RGBArray))

	img, err := png.Decode(out)
	require.NoError(t, err)
	assert.Equal(t, counter.ViewportW, img.Bounds().Dx())
	assert.Equal(t, counter.ViewportH, img.Bounds().Dy())
}

func TestRenderUnsupported(t *testing.T) {
	c, out := newCounter(t)

	err := c.Render(environment.RenderMode("ascii-art"))
	assert.True(t, errors.Is(err, environment.ErrUnsupportedRenderMode))
	assert.Zero(t, out.Len())
}

func TestClose(t *testing.T) {
	c, out := newCounter(t)
	_, _, err := c.Step(action(3))
	require.NoError(t, err)

	assert.NoError(t, c.Close())
	assert.NoError(t, c.Close())
	assert.Equal(t, 3, c.State())
	assert.Zero(t, out.Len())
}

func TestSpecs(t *testing.T) {
	c, _ := newCounter(t)

	assert.Equal(t, environment.Discrete, c.ActionSpec().Cardinality)
	assert.Equal(t, environment.Observation, c.ObservationSpec().Type)
	assert.Equal(t, 1.0, c.DiscountSpec().LowerBound.AtVec(0))
	assert.Equal(t, environment.Reward, c.RewardSpec().Type)
}

func TestCustomThreshold(t *testing.T) {
	c, _ := counter.New(counter.NewReach(3), 0.9, nil)

	step, done, err := c.Step(action(3))
	require.NoError(t, err)
	assert.True(t, done)
	assert.Equal(t, 0.9, step.Discount)
}

func BenchmarkStep(b *testing.B) {
	c, _ := counter.New(counter.NewReach(counter.Threshold), 1.0, nil)
	a := action(1)

	for i := 0; i < b.N; i++ {
		if _, done, _ := c.Step(a); done {
			c.Reset()
		}
	}
}

package experiment

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/goenv/agent"
	"github.com/samuelfneumann/goenv/environment"
	"github.com/samuelfneumann/goenv/environment/counter"
	"github.com/samuelfneumann/goenv/environment/envconfig"
)

var _ Experiment = &Online{}

func constant(a float64) *agent.Constant {
	return agent.NewConstant(mat.NewVecDense(1, []float64{a}))
}

func TestOnlineRun(t *testing.T) {
	c, _ := counter.New(counter.NewReach(counter.Threshold), 1.0,
		&bytes.Buffer{})

	var logs bytes.Buffer
	o := NewOnline(c, constant(1), 25, WithLogger(log.New(&logs, "", 0)))
	require.NoError(t, o.Run())

	assert.Equal(t, uint(25), o.Steps())
	assert.Equal(t, 2, o.Episodes())
	assert.Equal(t, 5, c.State())
	assert.Equal(t, 2, strings.Count(logs.String(), "TerminalStateReached"))
	assert.Contains(t, logs.String(), "run: finished 2 episodes in 25 steps")
}

func TestOnlineRunEpisode(t *testing.T) {
	c, _ := counter.New(counter.NewReach(counter.Threshold), 1.0,
		&bytes.Buffer{})
	o := NewOnline(c, constant(2), 100)

	ended, err := o.RunEpisode()
	require.NoError(t, err)
	assert.False(t, ended)
	assert.Equal(t, uint(5), o.Steps())
	assert.Equal(t, 1, o.Episodes())
}

func TestOnlineStepBudgetEndsNonTerminatingEpisode(t *testing.T) {
	c, _ := counter.New(counter.NewReach(counter.Threshold), 1.0,
		&bytes.Buffer{})
	o := NewOnline(c, constant(-1), 12)

	ended, err := o.RunEpisode()
	require.NoError(t, err)
	assert.True(t, ended)
	assert.Equal(t, 0, o.Episodes())
	assert.Equal(t, -12, c.State())
}

func TestOnlineRender(t *testing.T) {
	var out bytes.Buffer
	c, _ := counter.New(counter.NewReach(3), 1.0, &out)
	o := NewOnline(c, constant(1), 3, WithRender(environment.Human))

	require.NoError(t, o.Run())
	assert.Equal(t, "State: 0\nState: 1\nState: 2\nState: 3\n", out.String())
}

func TestOnlineRenderError(t *testing.T) {
	c, _ := counter.New(counter.NewReach(3), 1.0, &bytes.Buffer{})
	o := NewOnline(c, constant(1), 3, WithRender("ascii-art"))

	err := o.Run()
	assert.True(t, errors.Is(err, environment.ErrUnsupportedRenderMode))
}

func TestOnlineInvalidAction(t *testing.T) {
	c, _ := counter.New(counter.NewReach(3), 1.0, &bytes.Buffer{})
	o := NewOnline(c, constant(0.5), 3)

	err := o.Run()
	assert.True(t, errors.Is(err, environment.ErrInvalidAction))
}

func TestOnlineProgressBar(t *testing.T) {
	var bar bytes.Buffer
	c, _ := counter.New(counter.NewReach(counter.Threshold), 1.0,
		&bytes.Buffer{})
	o := NewOnline(c, constant(1), 4, WithProgressBar(4, &bar))

	require.NoError(t, o.Run())
	assert.Contains(t, bar.String(), "|████| [100.00%")
}

func TestConfigCreateExp(t *testing.T) {
	conf := Config{
		Type:     OnlineExp,
		MaxSteps: 20,
		EnvConf:  envconfig.Default(),
	}
	conf.EnvConf.Threshold = 4

	exp, err := conf.CreateExp(constant(1), &bytes.Buffer{})
	require.NoError(t, err)
	require.NoError(t, exp.Run())

	online := exp.(*Online)
	assert.Equal(t, 5, online.Episodes())

	conf.Type = "Offline"
	_, err = conf.CreateExp(constant(1), &bytes.Buffer{})
	assert.Error(t, err)

	conf.Type = OnlineExp
	conf.EnvConf.Environment = "Pendulum"
	_, err = conf.CreateExp(constant(1), &bytes.Buffer{})
	assert.True(t, errors.Is(err, envconfig.ErrUnknownEnvironment))
}

package experiment

import (
	"fmt"
	"io"
	"log"

	"github.com/samuelfneumann/goenv/agent"
	env "github.com/samuelfneumann/goenv/environment"
	ts "github.com/samuelfneumann/goenv/timestep"
	"github.com/samuelfneumann/goenv/utils/matutils"
	"github.com/samuelfneumann/goenv/utils/progressbar"
)

// Option configures an Online experiment
type Option func(*Online)

// WithRender renders the environment in the given mode after every
// reset and step
func WithRender(mode env.RenderMode) Option {
	return func(o *Online) {
		o.renderMode = mode
	}
}

// WithLogger logs episode boundaries to l
func WithLogger(l *log.Logger) Option {
	return func(o *Online) {
		o.logger = l
	}
}

// WithProgressBar displays a progress bar of the given width on out,
// which fills as the step budget is used
func WithProgressBar(width int, out io.Writer) Option {
	return func(o *Online) {
		o.pbar = progressbar.NewManualProgressBar(width, int(o.maxSteps), out)
	}
}

// Online is an Experiment that runs an agent online only. No offline
// evaluation is performed.
type Online struct {
	env          env.Environment
	agent        agent.Agent
	maxSteps     uint
	currentSteps uint
	episodes     int

	renderMode env.RenderMode
	logger     *log.Logger
	pbar       *progressbar.ManualProgressBar
}

// NewOnline creates and returns a new online experiment on a given
// environment with a given agent. The steps parameter determines how
// many timesteps the experiment is run for.
func NewOnline(e env.Environment, a agent.Agent, steps uint,
	opts ...Option) *Online {
	o := &Online{
		env:      e,
		agent:    a,
		maxSteps: steps,
		logger:   log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Steps returns the number of steps taken so far
func (o *Online) Steps() uint {
	return o.currentSteps
}

// Episodes returns the number of episodes which have ended so far.
// An episode cut short by the step budget does not count.
func (o *Online) Episodes() int {
	return o.episodes
}

// RunEpisode runs a single episode of the experiment and returns
// whether the maximum number of steps has been reached
func (o *Online) RunEpisode() (bool, error) {
	step, err := o.env.Reset()
	if err != nil {
		return false, fmt.Errorf("runEpisode: could not reset environment: %w",
			err)
	}
	if err := o.agent.ObserveFirst(step); err != nil {
		return false, fmt.Errorf("runEpisode: %w", err)
	}
	if err := o.render(); err != nil {
		return false, err
	}

	// Run the next timestep
	for !step.Last() && o.currentSteps < o.maxSteps {
		o.currentSteps++

		// Select action, step in environment
		action := o.agent.SelectAction(step)
		step, _, err = o.env.Step(action)
		if err != nil {
			return false, fmt.Errorf("runEpisode: could not step environment "+
				"with action %v: %w", matutils.Format(action), err)
		}

		// Observe the timestep and step the agent
		if err := o.agent.Observe(action, step); err != nil {
			return false, fmt.Errorf("runEpisode: %w", err)
		}
		if err := o.agent.Step(); err != nil {
			return false, fmt.Errorf("runEpisode: %w", err)
		}

		if err := o.render(); err != nil {
			return false, err
		}
		if o.pbar != nil {
			o.pbar.Increment()
			o.pbar.Display()
		}
	}

	if step.Last() {
		o.episodes++
		o.agent.EndEpisode()
		o.logEnd(step)
	}

	// Return whether or not the max timestep limit has been reached
	return o.currentSteps >= o.maxSteps, nil
}

// Run runs the entire experiment for all timesteps
func (o *Online) Run() error {
	if o.pbar != nil {
		defer o.pbar.Close()
	}

	ended := false
	for !ended {
		var err error
		if ended, err = o.RunEpisode(); err != nil {
			return err
		}
	}

	o.logger.Printf("run: finished %d episodes in %d steps", o.episodes,
		o.currentSteps)
	return nil
}

func (o *Online) render() error {
	if o.renderMode == "" {
		return nil
	}
	if err := o.env.Render(o.renderMode); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}

func (o *Online) logEnd(step ts.TimeStep) {
	o.logger.Printf("episode %d ended (%v) after %d steps: observation %v",
		o.episodes, step.EndType(), step.Number,
		matutils.Format(step.Observation))
}

// Package experiment implements functionality for running an experiment
package experiment

import (
	"fmt"
	"io"

	"github.com/samuelfneumann/goenv/agent"
	"github.com/samuelfneumann/goenv/environment/envconfig"
)

// Experiment outlines structs that can run experiments. The Run()
// method will run all episodes until the maximum timestep limit is
// reached. The RunEpisode() method will run a single episode and
// report whether the timestep limit has been reached.
type Experiment interface {
	Run() error
	RunEpisode() (bool, error)
}

// Type describes the kind of an Experiment
type Type string

const (
	OnlineExp Type = "OnlineExperiment"
)

// Config represents a configuration of an experiment.
type Config struct {
	Type     `json:"type"`
	MaxSteps uint             `json:"max_steps"`
	EnvConf  envconfig.Config `json:"environment"`
}

// CreateExp creates the Experiment described by the Config, in which
// agent a acts. The environment of the experiment renders to w.
func (c Config) CreateExp(a agent.Agent, w io.Writer,
	opts ...Option) (Experiment, error) {
	env, _, err := c.EnvConf.Create(w)
	if err != nil {
		return nil, fmt.Errorf("createExp: could not create environment: %w",
			err)
	}

	switch c.Type {
	case OnlineExp:
		return NewOnline(env, a, c.MaxSteps, opts...), nil
	}

	return nil, fmt.Errorf("createExp: no such experiment type %v", c.Type)
}

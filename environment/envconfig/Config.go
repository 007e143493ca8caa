// Package envconfig provides configuration structs for configuring
// environments with default parameters and tasks. Environment
// configurations in this package are JSON serializable and can also
// be read from .env files and the process environment.
package envconfig

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"gonum.org/v1/gonum/mat"

	env "github.com/samuelfneumann/goenv/environment"
	"github.com/samuelfneumann/goenv/environment/counter"
	"github.com/samuelfneumann/goenv/environment/wrappers"
	ts "github.com/samuelfneumann/goenv/timestep"
)

// EnvName stores the name of environments that can be configured with
// this package
type EnvName string

// Environments available for configuration
const (
	Counter EnvName = "Counter"
)

// ErrUnknownEnvironment is returned when a Config names an environment
// that cannot be created
var ErrUnknownEnvironment = errors.New("unknown environment")

// Config implements a specific configuration of a specific environment.
//
// If EpisodeCutoff is positive, episodes are cut off after that many
// steps. If ClipActions is true, actions are clipped to
// [MinAction, MaxAction] before they are taken.
type Config struct {
	Environment   EnvName `json:"environment"`
	Threshold     int     `json:"threshold"`
	EpisodeCutoff uint    `json:"episode_cutoff"`
	Discount      float64 `json:"discount"`
	ClipActions   bool    `json:"clip_actions"`
	MinAction     int     `json:"min_action"`
	MaxAction     int     `json:"max_action"`
}

// Default returns the default Config: an uncut Counter which ends
// episodes at counter.Threshold with no discounting
func Default() Config {
	return Config{
		Environment: Counter,
		Threshold:   counter.Threshold,
		Discount:    1.0,
	}
}

// Load reads a JSON Config from the file at path. Fields missing from
// the file keep their Default values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("load: could not read config: %w", err)
	}

	c := Default()
	if err := json.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("load: could not parse config %v: %w",
			path, err)
	}
	return c, nil
}

// Save writes the Config as JSON to the file at path
func (c Config) Save(path string) error {
	data, err := json.MarshalIndent(c, "", "\t")
	if err != nil {
		return fmt.Errorf("save: could not marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("save: could not write config: %w", err)
	}
	return nil
}

// Validate returns an error if the Config cannot create an environment
func (c Config) Validate() error {
	if c.Environment != Counter {
		return fmt.Errorf("validate: %w: %q", ErrUnknownEnvironment,
			c.Environment)
	}
	if c.Discount < 0 || c.Discount > 1 {
		return fmt.Errorf("validate: discount %v must be in [0, 1]",
			c.Discount)
	}
	if c.ClipActions && c.MinAction > c.MaxAction {
		return fmt.Errorf("validate: min action %d exceeds max action %d",
			c.MinAction, c.MaxAction)
	}
	return nil
}

// Create returns the environment described by the Config as well as
// the first timestep of the environment. Environments render to w, or
// to standard output if w is nil.
func (c Config) Create(w io.Writer) (env.Environment, ts.TimeStep, error) {
	if err := c.Validate(); err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("create: %w", err)
	}

	var e env.Environment
	switch c.Environment {
	case Counter:
		e, _ = counter.New(counter.NewReach(c.Threshold), c.Discount, w)
	}

	if c.ClipActions {
		low := mat.NewVecDense(1, []float64{float64(c.MinAction)})
		high := mat.NewVecDense(1, []float64{float64(c.MaxAction)})

		clipped, err := wrappers.NewClipAction(e, low, high)
		if err != nil {
			return nil, ts.TimeStep{}, fmt.Errorf("create: %w", err)
		}
		e = clipped
	}

	if c.EpisodeCutoff > 0 {
		limited, err := wrappers.NewTimeLimit(e, int(c.EpisodeCutoff))
		if err != nil {
			return nil, ts.TimeStep{}, fmt.Errorf("create: %w", err)
		}
		e = limited
	}

	step, err := e.Reset()
	if err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("create: could not reset "+
			"environment: %w", err)
	}
	return e, step, nil
}

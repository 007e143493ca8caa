package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r1"

	"github.com/samuelfneumann/goenv/agent"
	"github.com/samuelfneumann/goenv/environment"
	"github.com/samuelfneumann/goenv/environment/envconfig"
	"github.com/samuelfneumann/goenv/experiment"
)

// Policies selectable with the --policy flag
const (
	constantPolicy = "constant"
	uniformPolicy  = "uniform"
)

type runOptions struct {
	configPath string
	envFiles   []string

	threshold int
	cutoff    uint
	discount  float64

	policy    string
	action    int
	minAction int
	maxAction int
	seed      uint64

	steps    uint
	render   string
	outPath  string
	progress bool
	verbose  bool
}

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "goenv",
		Short:         "goenv runs agents in simple reinforcement learning environments",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.AddCommand(newRunCommand())
	return rootCmd
}

func newRunCommand() *cobra.Command {
	opts := &runOptions{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run an agent in an environment for a number of steps",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.configPath, "config", "", "JSON environment config file")
	flags.StringSliceVar(&opts.envFiles, "env-file", nil, ".env files with GOENV_ variables")
	flags.IntVar(&opts.threshold, "threshold", 0, "Count at which episodes end")
	flags.UintVar(&opts.cutoff, "cutoff", 0, "Maximum steps per episode, 0 for no limit")
	flags.Float64Var(&opts.discount, "discount", 0, "Discount factor")
	flags.StringVar(&opts.policy, "policy", constantPolicy, "Agent policy: constant or uniform")
	flags.IntVar(&opts.action, "action", 1, "Action taken by the constant policy")
	flags.IntVar(&opts.minAction, "min-action", 0, "Lowest action of the uniform policy")
	flags.IntVar(&opts.maxAction, "max-action", 2, "Highest action of the uniform policy")
	flags.Uint64Var(&opts.seed, "seed", 1, "Seed for the uniform policy")
	flags.UintVar(&opts.steps, "steps", 100, "Total number of steps to run")
	flags.StringVar(&opts.render, "render", "", "Render mode: human or rgb_array")
	flags.StringVar(&opts.outPath, "out", "", "File to render to, standard output if empty")
	flags.BoolVar(&opts.progress, "progress", false, "Display a progress bar on standard error")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Log episode ends to standard error")

	return cmd
}

// envConfig builds the environment configuration from the config
// file, then env files and GOENV_ variables, then flags
func envConfig(cmd *cobra.Command, opts *runOptions) (envconfig.Config, error) {
	conf := envconfig.Default()

	if opts.configPath != "" {
		var err error
		if conf, err = envconfig.Load(opts.configPath); err != nil {
			return envconfig.Config{}, err
		}
	}

	conf, err := envconfig.LoadEnv(conf, opts.envFiles...)
	if err != nil {
		return envconfig.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("threshold") {
		conf.Threshold = opts.threshold
	}
	if flags.Changed("cutoff") {
		conf.EpisodeCutoff = opts.cutoff
	}
	if flags.Changed("discount") {
		conf.Discount = opts.discount
	}

	return conf, nil
}

func newAgent(opts *runOptions) (agent.Agent, error) {
	switch opts.policy {
	case constantPolicy:
		action := mat.NewVecDense(1, []float64{float64(opts.action)})
		return agent.NewConstant(action), nil

	case uniformPolicy:
		bounds := r1.Interval{
			Min: float64(opts.minAction),
			Max: float64(opts.maxAction),
		}
		return agent.NewUniform(bounds, opts.seed)
	}

	return nil, fmt.Errorf("newAgent: no such policy %q", opts.policy)
}

func run(cmd *cobra.Command, opts *runOptions) error {
	conf, err := envConfig(cmd, opts)
	if err != nil {
		return err
	}

	a, err := newAgent(opts)
	if err != nil {
		return err
	}

	var renderOpt experiment.Option
	if opts.render != "" {
		mode, err := environment.ParseRenderMode(opts.render)
		if err != nil {
			return err
		}
		// Every frame would be written to the same stream, and only the
		// first image of concatenated PNGs can be decoded
		if mode != environment.Human {
			return fmt.Errorf("run: render mode %q can only be used "+
				"through the library", mode)
		}
		renderOpt = experiment.WithRender(mode)
	}

	out := cmd.OutOrStdout()
	if opts.outPath != "" {
		f, err := os.Create(opts.outPath)
		if err != nil {
			return fmt.Errorf("run: could not create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	logger := log.New(io.Discard, "", 0)
	if opts.verbose {
		logger = log.New(cmd.ErrOrStderr(), "goenv: ", log.LstdFlags)
	}

	expOpts := []experiment.Option{experiment.WithLogger(logger)}
	if renderOpt != nil {
		expOpts = append(expOpts, renderOpt)
	}
	if opts.progress {
		expOpts = append(expOpts, experiment.WithProgressBar(50,
			cmd.ErrOrStderr()))
	}

	expConf := experiment.Config{
		Type:     experiment.OnlineExp,
		MaxSteps: opts.steps,
		EnvConf:  conf,
	}
	exp, err := expConf.CreateExp(a, out, expOpts...)
	if err != nil {
		return err
	}
	logger.Printf("running %v for %d steps", a, opts.steps)

	return exp.Run()
}

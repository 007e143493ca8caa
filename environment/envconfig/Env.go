package envconfig

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Prefix is the prefix of environment variables that configure
// environments
const Prefix = "GOENV_"

// Environment variables read by LoadEnv
const (
	EnvironmentVar   = Prefix + "ENVIRONMENT"
	ThresholdVar     = Prefix + "THRESHOLD"
	EpisodeCutoffVar = Prefix + "EPISODE_CUTOFF"
	DiscountVar      = Prefix + "DISCOUNT"
	ClipActionsVar   = Prefix + "CLIP_ACTIONS"
	MinActionVar     = Prefix + "MIN_ACTION"
	MaxActionVar     = Prefix + "MAX_ACTION"
)

// LoadEnv returns base overridden by variables read from the .env
// files and then by variables set in the process environment. Only
// variables starting with Prefix are used.
func LoadEnv(base Config, files ...string) (Config, error) {
	vars := make(map[string]string)

	if len(files) > 0 {
		fileVars, err := godotenv.Read(files...)
		if err != nil {
			return Config{}, fmt.Errorf("loadEnv: could not read env "+
				"files: %w", err)
		}
		for k, v := range fileVars {
			vars[k] = v
		}
	}

	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok && strings.HasPrefix(k, Prefix) {
			vars[k] = v
		}
	}

	c, err := base.withVars(vars)
	if err != nil {
		return Config{}, fmt.Errorf("loadEnv: %w", err)
	}
	return c, nil
}

// withVars returns a copy of c with fields overridden by vars
func (c Config) withVars(vars map[string]string) (Config, error) {
	var err error

	if v, ok := vars[EnvironmentVar]; ok {
		c.Environment = EnvName(v)
	}
	if v, ok := vars[ThresholdVar]; ok {
		if c.Threshold, err = strconv.Atoi(v); err != nil {
			return Config{}, parseErr(ThresholdVar, err)
		}
	}
	if v, ok := vars[EpisodeCutoffVar]; ok {
		cutoff, err := strconv.ParseUint(v, 10, 0)
		if err != nil {
			return Config{}, parseErr(EpisodeCutoffVar, err)
		}
		c.EpisodeCutoff = uint(cutoff)
	}
	if v, ok := vars[DiscountVar]; ok {
		if c.Discount, err = strconv.ParseFloat(v, 64); err != nil {
			return Config{}, parseErr(DiscountVar, err)
		}
	}
	if v, ok := vars[ClipActionsVar]; ok {
		if c.ClipActions, err = strconv.ParseBool(v); err != nil {
			return Config{}, parseErr(ClipActionsVar, err)
		}
	}
	if v, ok := vars[MinActionVar]; ok {
		if c.MinAction, err = strconv.Atoi(v); err != nil {
			return Config{}, parseErr(MinActionVar, err)
		}
	}
	if v, ok := vars[MaxActionVar]; ok {
		if c.MaxAction, err = strconv.Atoi(v); err != nil {
			return Config{}, parseErr(MaxActionVar, err)
		}
	}

	return c, nil
}

func parseErr(name string, err error) error {
	return fmt.Errorf("could not parse %v: %w", name, err)
}

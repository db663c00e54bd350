package utils

import (
	"encoding/json"
	"flag"
	"os"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

// Config holds the configuration for a simulation run
type Config struct {
	WorldFile        string        `json:"world_file"`
	Turns            int           `json:"turns"`
	Delay            time.Duration `json:"delay"`
	StepMode         bool          `json:"step_mode"`
	AliveMarkers     string        `json:"alive_markers"`
	UseParallel      bool          `json:"use_parallel"`
	Workers          int           `json:"workers"`
	ShowStatus       bool          `json:"show_status"`
	StopWhenStagnant bool          `json:"stop_when_stagnant"`
	HistorySize      int           `json:"history_size"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Turns:        20,
		Delay:        250 * time.Millisecond,
		AliveMarkers: "X1",
		UseParallel:  true,
		ShowStatus:   true,
		HistorySize:  5,
	}
}

// LoadConfig loads configuration from JSON file on top of the defaults.
// Durations are nanoseconds, as encoding/json handles time.Duration.
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// delayMillis adapts Config.Delay to a millisecond flag
type delayMillis struct {
	d *time.Duration
}

func (m delayMillis) String() string {
	if m.d == nil {
		return "0"
	}
	return strconv.FormatInt(int64(*m.d/time.Millisecond), 10)
}

func (m delayMillis) Set(s string) error {
	ms, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return errors.Errorf("invalid delay %q: want whole milliseconds", s)
	}
	*m.d = time.Duration(ms) * time.Millisecond
	return nil
}

// Bind attaches the configuration to the provided FlagSet
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.WorldFile, "c", c.WorldFile, "world configuration `file` (required)")
	fs.IntVar(&c.Turns, "t", c.Turns, "number of turns to simulate")
	fs.Var(delayMillis{&c.Delay}, "d", "delay between turns in `ms`")
	fs.BoolVar(&c.StepMode, "s", c.StepMode, "step mode: wait for Enter between turns")
	fs.StringVar(&c.AliveMarkers, "alive", c.AliveMarkers, "characters that mark a live cell")
	fs.BoolVar(&c.UseParallel, "parallel", c.UseParallel, "compute generations on all CPUs")
	fs.IntVar(&c.Workers, "workers", c.Workers, "parallel workers (0 = one per CPU)")
	fs.BoolVar(&c.ShowStatus, "status", c.ShowStatus, "print a status line under each frame")
	fs.BoolVar(&c.StopWhenStagnant, "stop-stagnant", c.StopWhenStagnant, "end early once the world is static or cycling")
}

// Validate checks the configuration before a run
func (c Config) Validate() error {
	switch {
	case c.WorldFile == "":
		return errors.New("missing -c option")
	case c.Turns < 0:
		return errors.Errorf("invalid value for -t: %d", c.Turns)
	case c.Delay < 0:
		return errors.Errorf("invalid value for -d: %v", c.Delay)
	case c.Workers < 0:
		return errors.Errorf("invalid worker count: %d", c.Workers)
	}
	return nil
}

package app

import (
	"flag"
	"strconv"

	"lifegrid/internal/sim"
)

// Config represents the command-line parameters for the application.
type Config struct {
	ConfigPath string
	Mode       string
	Size       int
	Scale      int
	TPS        int
	Seed       int64
	Workers    int
	HUDWidth   int
	Telemetry  string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Scale: 5, TPS: 20, HUDWidth: 220}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "yaml config file")
	fs.StringVar(&c.Mode, "mode", c.Mode, "starting automaton (conway, brain, highlife, seeds, tree)")
	fs.IntVar(&c.Size, "size", c.Size, "grid side length")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.Workers, "workers", c.Workers, "row bands stepped in parallel")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "HUD panel width in pixels, 0 hides it")
	fs.StringVar(&c.Telemetry, "telemetry", c.Telemetry, "address to serve live-count telemetry on")
}

// SimConfig loads the config file when set and applies flag overrides on top.
// Zero-valued flags leave the file or default value untouched.
func (c *Config) SimConfig() (sim.Config, error) {
	cfg := sim.DefaultConfig()
	if c.ConfigPath != "" {
		loaded, err := sim.Load(c.ConfigPath)
		if err != nil {
			return sim.Config{}, err
		}
		cfg = loaded
	}
	cfg, err := cfg.Apply(c.overrides())
	if err != nil {
		return sim.Config{}, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) overrides() map[string]string {
	kv := map[string]string{}
	if c.Mode != "" {
		kv["mode"] = c.Mode
	}
	if c.Size > 0 {
		kv["size"] = strconv.Itoa(c.Size)
	}
	if c.Seed != 0 {
		kv["seed"] = strconv.FormatInt(c.Seed, 10)
	}
	if c.Workers > 0 {
		kv["workers"] = strconv.Itoa(c.Workers)
	}
	if c.Telemetry != "" {
		kv["telemetry"] = c.Telemetry
	}
	return kv
}

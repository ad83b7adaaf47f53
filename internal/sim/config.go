package sim

import (
	"errors"
	"fmt"
	"maps"
	"path/filepath"
	"strconv"

	"lifegrid/internal/qlearn"
	"lifegrid/internal/rules"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config controls grid size, the initial mode and seeding densities.
type Config struct {
	Size    int    `yaml:"size"`
	Mode    string `yaml:"mode"`
	Seed    int64  `yaml:"seed"`
	Workers int    `yaml:"workers"`
	// Densities maps a mode name to the fraction of cells seeded on reset.
	Densities map[string]float64 `yaml:"densities"`
	Training  qlearn.Config      `yaml:"training"`
	// TelemetryAddr is the listen address of the live-count feed; empty disables it.
	TelemetryAddr string `yaml:"telemetry_addr"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Size:    128,
		Mode:    rules.Conway.String(),
		Seed:    42,
		Workers: 1,
		Densities: map[string]float64{
			rules.Conway.String():      0.2,
			rules.HighLife.String():    0.2,
			rules.Seeds.String():       0.1,
			rules.BriansBrain.String(): 0.1,
			rules.Tree.String():        0,
		},
		Training: qlearn.DefaultConfig(),
	}
}

// Kind parses the configured starting mode.
func (c Config) Kind() (rules.Kind, error) {
	return rules.ParseKind(c.Mode)
}

// Density returns the seeding probability for k, clamped to [0,1].
func (c Config) Density(k rules.Kind) float64 {
	p, ok := c.Densities[k.String()]
	if !ok {
		p = DefaultConfig().Densities[k.String()]
	}
	switch {
	case p < 0:
		return 0
	case p > 1:
		return 1
	}
	return p
}

// Validate checks the values the engine cannot recover from.
func (c Config) Validate() error {
	if c.Size <= 0 {
		return fmt.Errorf("sim: size must be positive, got %d", c.Size)
	}
	if _, err := c.Kind(); err != nil {
		return err
	}
	return c.Training.Validate()
}

// canonical rewrites the mode and the density keys to their canonical
// names, so aliases such as "life" resolve to the same entry as "conway".
func (c Config) canonical() (Config, error) {
	k, err := c.Kind()
	if err != nil {
		return c, err
	}
	c.Mode = k.String()
	densities := make(map[string]float64, len(c.Densities))
	for name, p := range c.Densities {
		dk, err := rules.ParseKind(name)
		if err != nil {
			return c, fmt.Errorf("densities: %w", err)
		}
		densities[dk.String()] = p
	}
	c.Densities = densities
	return c, nil
}

// ErrOverride reports a key/value override that could not be applied.
var ErrOverride = errors.New("sim: bad override")

// FromMap populates a Config from flag-style key/value pairs on top of the
// defaults.
func FromMap(kv map[string]string) (Config, error) {
	return DefaultConfig().Apply(kv)
}

// Apply returns c with the key/value overrides applied. Known keys are size,
// mode, seed, workers, density (for the resulting mode), iterations and
// telemetry. Mode aliases are stored under their canonical name. Unknown keys
// and unparsable values are reported with ErrOverride.
func (c Config) Apply(kv map[string]string) (Config, error) {
	c.Densities = maps.Clone(c.Densities)
	if c.Densities == nil {
		c.Densities = map[string]float64{}
	}
	bad := func(key, v string) error {
		return fmt.Errorf("%w: %s=%q", ErrOverride, key, v)
	}

	if v, ok := kv["mode"]; ok {
		k, err := rules.ParseKind(v)
		if err != nil {
			return c, fmt.Errorf("%w: %w", ErrOverride, err)
		}
		c.Mode = k.String()
	}
	for key, v := range kv {
		switch key {
		case "mode":
		case "size":
			n, err := strconv.Atoi(v)
			if err != nil || n <= 0 {
				return c, bad(key, v)
			}
			c.Size = n
		case "seed":
			n, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				return c, bad(key, v)
			}
			c.Seed = n
		case "workers":
			n, err := strconv.Atoi(v)
			if err != nil || n <= 0 {
				return c, bad(key, v)
			}
			c.Workers = n
		case "density":
			p, err := strconv.ParseFloat(v, 64)
			if err != nil || p < 0 || p > 1 {
				return c, bad(key, v)
			}
			k, err := c.Kind()
			if err != nil {
				return c, err
			}
			c.Densities[k.String()] = p
		case "iterations":
			n, err := strconv.Atoi(v)
			if err != nil || n < 0 {
				return c, bad(key, v)
			}
			c.Training.Iterations = n
		case "telemetry":
			c.TelemetryAddr = v
		default:
			return c, fmt.Errorf("%w: unknown key %q", ErrOverride, key)
		}
	}
	return c, nil
}

type outerConfig struct {
	Kind string      `mapstructure:"kind"`
	Def  interface{} `mapstructure:"def"`
}

// Load reads a yaml file of the form
//
//	kind: lifegrid
//	def:
//	  size: 128
//	  ...
//
// Fields missing from def keep their defaults.
func Load(path string) (Config, error) {
	vp := viper.New()
	vp.SetConfigFile(path)
	vp.SetConfigType("yaml")
	vp.AddConfigPath(filepath.Dir(path))
	if err := vp.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	outer := &outerConfig{}
	if err := vp.Unmarshal(outer); err != nil {
		return Config{}, fmt.Errorf("decode config %s: %w", path, err)
	}

	def, err := yaml.Marshal(outer.Def)
	if err != nil {
		return Config{}, fmt.Errorf("re-encode def block: %w", err)
	}

	c := DefaultConfig()
	if err := yaml.Unmarshal(def, &c); err != nil {
		return Config{}, fmt.Errorf("decode def block: %w", err)
	}
	if c, err = c.canonical(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

package sim_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"lifegrid/internal/rules"
	"lifegrid/internal/sim"

	. "github.com/smartystreets/goconvey/convey"
)

const sampleConfig = `kind: lifegrid
def:
  size: 64
  mode: tree
  seed: 7
  workers: 3
  densities:
    conway: 0.5
  training:
    iterations: 5000
    learning_rate: 0.5
  telemetry_addr: ":9000"
`

func TestLoad(t *testing.T) {
	Convey("Given a yaml config file", t, func() {
		path := filepath.Join(t.TempDir(), "lifegrid.yaml")
		So(os.WriteFile(path, []byte(sampleConfig), 0o644), ShouldBeNil)

		Convey("Values from the def block override the defaults", func() {
			cfg, err := sim.Load(path)
			So(err, ShouldBeNil)
			So(cfg.Size, ShouldEqual, 64)
			So(cfg.Mode, ShouldEqual, "tree")
			So(cfg.Seed, ShouldEqual, 7)
			So(cfg.Workers, ShouldEqual, 3)
			So(cfg.Training.Iterations, ShouldEqual, 5000)
			So(cfg.Training.LearningRate, ShouldEqual, 0.5)
			So(cfg.TelemetryAddr, ShouldEqual, ":9000")
			So(cfg.Density(rules.Conway), ShouldEqual, 0.5)
		})

		Convey("Values missing from the def block keep their defaults", func() {
			cfg, err := sim.Load(path)
			So(err, ShouldBeNil)
			def := sim.DefaultConfig()
			So(cfg.Training.Discount, ShouldEqual, def.Training.Discount)
			So(cfg.Training.InitialValue, ShouldEqual, def.Training.InitialValue)
			So(cfg.Density(rules.Seeds), ShouldEqual, 0.1)
		})
	})

	Convey("Given a config with an unknown mode", t, func() {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		So(os.WriteFile(path, []byte("kind: lifegrid\ndef:\n  mode: wireworld\n"), 0o644), ShouldBeNil)
		_, err := sim.Load(path)
		So(err, ShouldNotBeNil)
	})

	Convey("Given a missing file", t, func() {
		_, err := sim.Load(filepath.Join(t.TempDir(), "missing.yaml"))
		So(err, ShouldNotBeNil)
	})
}

func TestFromMap(t *testing.T) {
	Convey("FromMap applies overrides on top of the defaults", t, func() {
		cfg, err := sim.FromMap(map[string]string{
			"size":       "32",
			"mode":       "seeds",
			"density":    "0.3",
			"workers":    "4",
			"iterations": "500",
			"telemetry":  ":8080",
		})
		So(err, ShouldBeNil)
		So(cfg.Size, ShouldEqual, 32)
		So(cfg.Mode, ShouldEqual, "seeds")
		So(cfg.Density(rules.Seeds), ShouldEqual, 0.3)
		So(cfg.Workers, ShouldEqual, 4)
		So(cfg.Training.Iterations, ShouldEqual, 500)
		So(cfg.TelemetryAddr, ShouldEqual, ":8080")
	})

	Convey("Mode aliases are canonicalised before the density is stored", t, func() {
		for _, mode := range []string{"Life", "life", "CONWAY"} {
			cfg, err := sim.FromMap(map[string]string{"mode": mode, "density": "0.9"})
			So(err, ShouldBeNil)
			So(cfg.Mode, ShouldEqual, "conway")
			So(cfg.Density(rules.Conway), ShouldEqual, 0.9)
		}
		cfg, err := sim.FromMap(map[string]string{"mode": "briansbrain", "density": "0.4"})
		So(err, ShouldBeNil)
		So(cfg.Density(rules.BriansBrain), ShouldEqual, 0.4)
	})

	Convey("Bad overrides are reported", t, func() {
		for _, kv := range []map[string]string{
			{"workers": "-1"},
			{"seed": "x"},
			{"density": "1.5"},
			{"mode": "wireworld"},
			{"sise": "12"},
		} {
			_, err := sim.FromMap(kv)
			So(errors.Is(err, sim.ErrOverride), ShouldBeTrue)
		}
	})

	Convey("Apply leaves the receiver's densities untouched", t, func() {
		base := sim.DefaultConfig()
		_, err := base.Apply(map[string]string{"density": "0.7"})
		So(err, ShouldBeNil)
		So(base.Density(rules.Conway), ShouldEqual, 0.2)
	})

	Convey("Density is clamped", t, func() {
		cfg := sim.DefaultConfig()
		cfg.Densities["conway"] = 3
		cfg.Densities["seeds"] = -1
		So(cfg.Density(rules.Conway), ShouldEqual, 1)
		So(cfg.Density(rules.Seeds), ShouldEqual, 0)
	})
}

func TestLoadCanonicalisesAliases(t *testing.T) {
	Convey("Given a config using mode aliases", t, func() {
		path := filepath.Join(t.TempDir(), "alias.yaml")
		body := "kind: lifegrid\ndef:\n  mode: Life\n  densities:\n    life: 0.6\n    briansbrain: 0.3\n"
		So(os.WriteFile(path, []byte(body), 0o644), ShouldBeNil)

		cfg, err := sim.Load(path)
		So(err, ShouldBeNil)
		So(cfg.Mode, ShouldEqual, "conway")
		So(cfg.Density(rules.Conway), ShouldEqual, 0.6)
		So(cfg.Density(rules.BriansBrain), ShouldEqual, 0.3)
	})
}

package main

import (
	"context"
	"fmt"
	"log"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"lifegrid/internal/core"
	"lifegrid/internal/qlearn"
	"lifegrid/internal/rules"
	"lifegrid/internal/sim"
	"lifegrid/internal/telemetry"

	"github.com/integrii/flaggy"
	"github.com/logrusorgru/aurora"
)

type runOptions struct {
	configPath string
	mode       string
	size       int
	seed       int
	workers    int
	steps      int
	tps        int
	every      int
	serve      string
	trainOnly  bool
	print      bool
	sets       []string
}

func main() {
	opts := parseOptions()

	cfg, err := buildConfig(opts)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var policy qlearn.Policy
	if mode, _ := cfg.Kind(); mode == rules.Tree || opts.trainOnly {
		table, err := sim.TrainPolicy(ctx, cfg)
		if err != nil {
			log.Fatalf("train: %v", err)
		}
		if opts.trainOnly {
			fmt.Println(label("States", fmt.Sprint(table.States())))
			fmt.Println(label("Estimates", fmt.Sprint(table.Entries())))
			return
		}
		policy = table
	}

	session, err := sim.NewSession(cfg, policy)
	if err != nil {
		log.Fatal(err)
	}
	printParameters(session.Parameters())

	series := telemetry.NewSeries()
	recorder := telemetry.NewRecorder(series)
	session.OnStep = recorder.Observe
	if cfg.TelemetryAddr != "" {
		srv := telemetry.NewServer(cfg.TelemetryAddr, series, 250*time.Millisecond)
		go func() {
			if err := srv.Serve(ctx); err != nil {
				log.Printf("telemetry: %v", err)
			}
		}()
	}

	timer := core.NewFixedStep(opts.tps)
	start := time.Now()
	fmt.Println(aurora.Colorize("running", aurora.CyanFg))
	for i := 0; opts.steps <= 0 || i < opts.steps; i++ {
		if ctx.Err() != nil {
			break
		}
		if opts.tps > 0 {
			timer.Wait()
		}
		session.Step()
		if opts.every > 0 && session.Generation()%opts.every == 0 {
			fmt.Println(progressLine(session.Generation(), session.LiveCells()))
		}
	}

	fmt.Println(aurora.Colorize("finished", aurora.RedFg))
	fmt.Println(label("Generation", fmt.Sprint(session.Generation())))
	fmt.Println(label("Live cells", fmt.Sprint(session.LiveCells())))
	fmt.Println(label("Total time", time.Since(start).Round(time.Millisecond).String()))
	if snap := series.Snapshot(); len(snap.Averages) > 0 {
		fmt.Println(label("Peak (10s)", fmt.Sprintf("%.1f", snap.Max)))
	}
	if opts.print {
		fmt.Print(renderGrid(session.State().Grid, session.Mode()))
	}
}

func parseOptions() runOptions {
	opts := runOptions{steps: 200, every: 10}
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.SetDescription("Runs a lifegrid automaton without a window")
	flaggy.String(&opts.configPath, "c", "config", "yaml config file")
	flaggy.String(&opts.mode, "m", "mode", "automaton ["+strings.Join(kindNames(), "|")+"]")
	flaggy.Int(&opts.size, "n", "size", "grid side length")
	flaggy.Int(&opts.seed, "r", "seed", "seed for the initial randomization")
	flaggy.Int(&opts.workers, "w", "workers", "row bands stepped in parallel")
	flaggy.Int(&opts.steps, "s", "steps", "generations to run, 0 runs until interrupted")
	flaggy.Int(&opts.tps, "t", "tps", "ticks per second, 0 runs unthrottled")
	flaggy.Int(&opts.every, "e", "every", "print the live count every N generations")
	flaggy.String(&opts.serve, "", "serve", "serve live-count telemetry on this address")
	flaggy.Bool(&opts.trainOnly, "", "train-only", "train the tree policy, print its size and exit")
	flaggy.Bool(&opts.print, "p", "print", "print the final grid")
	flaggy.StringSlice(&opts.sets, "", "set", "config override in key=value form (repeatable)")
	flaggy.Parse()
	return opts
}

func buildConfig(opts runOptions) (sim.Config, error) {
	kv, err := overrideMap(opts)
	if err != nil {
		return sim.Config{}, err
	}
	var cfg sim.Config
	if opts.configPath == "" {
		cfg, err = sim.FromMap(kv)
	} else {
		cfg, err = sim.Load(opts.configPath)
		if err == nil {
			cfg, err = cfg.Apply(kv)
		}
	}
	if err != nil {
		return sim.Config{}, err
	}
	return cfg, cfg.Validate()
}

// overrideMap merges --set pairs with the dedicated flags; flags win.
func overrideMap(opts runOptions) (map[string]string, error) {
	kv := make(map[string]string, len(opts.sets))
	for _, pair := range opts.sets {
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("--set %q: expected key=value", pair)
		}
		kv[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	if opts.mode != "" {
		kv["mode"] = opts.mode
	}
	if opts.size > 0 {
		kv["size"] = strconv.Itoa(opts.size)
	}
	if opts.seed != 0 {
		kv["seed"] = strconv.Itoa(opts.seed)
	}
	if opts.workers > 0 {
		kv["workers"] = strconv.Itoa(opts.workers)
	}
	if opts.serve != "" {
		kv["telemetry"] = opts.serve
	}
	return kv, nil
}

func kindNames() []string {
	names := make([]string, 0, len(rules.Kinds))
	for _, k := range rules.Kinds {
		names = append(names, k.String())
	}
	return names
}

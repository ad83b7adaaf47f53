package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"runtime"
	"strconv"
	"strings"

	"lifegrid/internal/qlearn"
	"lifegrid/internal/sim"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

func main() {
	size := flag.Int("size", 32, "board side length for training and evaluation")
	steps := flag.Int("steps", 200, "generations to grow each trained policy")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel candidate evaluations")
	rates := flag.String("alpha", "0.05,0.1,0.2,0.5", "comma-separated learning rates")
	discounts := flag.String("gamma", "0.01,0.1,0.5,0.9", "comma-separated discount factors")
	top := flag.Int("top", 5, "results to print")
	var overrides kvList
	flag.Var(&overrides, "set", "training override in key=value form (repeatable)")
	flag.Parse()

	base := qlearn.DefaultConfig()
	base.ReportEvery = 0
	for _, kv := range overrides {
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			log.Fatalf("-set %q: expected key=value", kv)
		}
		if err := applyOverride(&base, key, value); err != nil {
			log.Fatalf("-set: %v", err)
		}
	}

	alphas, err := parseFloats(*rates)
	if err != nil {
		log.Fatalf("alpha: %v", err)
	}
	gammas, err := parseFloats(*discounts)
	if err != nil {
		log.Fatalf("gamma: %v", err)
	}

	cands := sim.Grid(alphas, gammas)
	fmt.Printf("Sweeping %d candidates on %dx%d, %d iterations each, %d steps\n", len(cands), *size, *size, base.Iterations, *steps)

	results, err := sim.Sweep(context.Background(), *size, base, cands, *steps, *workers)
	if err != nil {
		log.Fatal(err)
	}

	if *top <= 0 || *top > len(results) {
		*top = len(results)
	}
	fmt.Println("\nBest found:")
	for _, r := range results[:*top] {
		stalled := "still growing"
		if r.Stalled >= 0 {
			stalled = fmt.Sprintf("idle from step %d", r.Stalled)
		}
		fmt.Printf("  alpha=%.3f gamma=%.3f -> leaves=%d trunk=%d estimates=%d (%s)\n",
			r.LearningRate, r.Discount, r.Leaves, r.Trunks, r.Estimates, stalled)
	}
}

func parseFloats(s string) ([]float64, error) {
	var out []float64
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func applyOverride(cfg *qlearn.Config, key, value string) error {
	next := *cfg
	var err error
	switch key {
	case "iterations":
		next.Iterations, err = strconv.Atoi(value)
	case "initial_value":
		next.InitialValue, err = strconv.ParseFloat(value, 64)
	case "trunk_weight":
		next.TrunkWeight, err = strconv.ParseFloat(value, 64)
	case "leaf_weight":
		next.LeafWeight, err = strconv.ParseFloat(value, 64)
	case "restart_when_stuck":
		next.RestartWhenStuck, err = strconv.ParseBool(value)
	case "seed":
		next.Seed, err = strconv.ParseInt(value, 10, 64)
	default:
		return fmt.Errorf("unknown key %q", key)
	}
	if err != nil {
		return fmt.Errorf("%s=%q: %w", key, value, err)
	}
	*cfg = next
	return nil
}

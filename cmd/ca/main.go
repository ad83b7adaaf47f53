//go:build ebiten

package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os/signal"
	"syscall"
	"time"

	"lifegrid/internal/app"
	"lifegrid/internal/sim"
	"lifegrid/internal/telemetry"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	simCfg, err := cfg.SimConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	policy, err := sim.TrainPolicy(ctx, simCfg)
	if err != nil {
		log.Fatalf("train: %v", err)
	}

	session, err := sim.NewSession(simCfg, policy)
	if err != nil {
		log.Fatal(err)
	}

	series := telemetry.NewSeries()
	recorder := telemetry.NewRecorder(series)
	session.OnStep = recorder.Observe

	if simCfg.TelemetryAddr != "" {
		srv := telemetry.NewServer(simCfg.TelemetryAddr, series, 250*time.Millisecond)
		go func() {
			if err := srv.Serve(ctx); err != nil {
				log.Printf("telemetry: %v", err)
			}
		}()
	}

	game := app.New(session, recorder, series, cfg)
	size := session.Size()

	ebiten.SetWindowTitle("lifegrid")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale+cfg.HUDWidth, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}

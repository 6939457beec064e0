// Command barneshut drives the simulation core over a number of
// generations and writes the resulting trajectory to an animated GIF.
// The scenario name ("jupiter", "galaxy", "collision", or "file")
// selects how the initial Simulation is built; every other parameter
// is an overridable flag.
package main

import (
	"flag"
	"fmt"
	"image/gif"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ollenurb/nbody"
	"github.com/ollenurb/nbody/bhlog"
	"github.com/ollenurb/nbody/config"
	"github.com/ollenurb/nbody/render"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	bhlog.Init(cfg.LogLevel)
	barneshut.SetParams(cfg.G, cfg.Epsilon, cfg.Theta)

	if len(os.Args) < 2 {
		fmt.Println("usage: barneshut [jupiter|galaxy|collision|file] [flags]")
		os.Exit(1)
	}
	scenario := os.Args[1]

	fs := flag.NewFlagSet("barneshut", flag.ExitOnError)
	dt := fs.Float64("dt", 2e14, "time step per generation")
	theta := fs.Float64("theta", cfg.Theta, "Barnes-Hut opening threshold")
	gens := fs.Int("gens", 1000, "number of generations to simulate")
	canvasWidth := fs.Int("canvas", 1000, "output canvas width/height in pixels")
	frequency := fs.Int("frequency", 10, "render every Nth generation into the GIF")
	inPath := fs.String("in", "", "initial-conditions file (required for the \"file\" and \"jupiter\" scenarios)")
	outPath := fs.String("out", "galaxy.gif", "output GIF path")
	metricsAddr := fs.String("metrics-addr", cfg.MetricsAddr, "if set, serve Prometheus metrics on this address")
	if err := fs.Parse(os.Args[2:]); err != nil {
		os.Exit(1)
	}

	barneshut.Theta = *theta

	if *metricsAddr != "" {
		go func() {
			http.Handle("/metrics", promhttp.Handler())
			bhlog.Error("metrics server exited", "error", http.ListenAndServe(*metricsAddr, nil))
		}()
	}

	sim, err := buildScenario(scenario, *inPath)
	if err != nil {
		bhlog.Error("failed to build scenario", "scenario", scenario, "error", err)
		os.Exit(1)
	}

	bhlog.Info("starting simulation", "scenario", scenario, "bodies", len(sim.Bodies), "generations", *gens)

	history := make([][]barneshut.Body, 0, *gens+1)
	history = append(history, sim.BodiesSnapshot())
	for i := 0; i < *gens; i++ {
		sim.Update(*dt)
		history = append(history, sim.BodiesSnapshot())
	}

	bhlog.Info("simulation complete, rendering GIF", "frames", len(history))
	g := render.Animate(history, sim.Extent, *canvasWidth, *frequency)

	f, err := os.Create(*outPath)
	if err != nil {
		bhlog.Error("failed to create output file", "path", *outPath, "error", err)
		os.Exit(1)
	}
	defer f.Close()
	if err := gif.EncodeAll(f, g); err != nil {
		bhlog.Error("failed to encode GIF", "error", err)
		os.Exit(1)
	}

	bhlog.Info("wrote GIF", "path", *outPath)
}

func buildScenario(scenario, inPath string) (*barneshut.Simulation, error) {
	switch scenario {
	case "file", "jupiter":
		if inPath == "" {
			return nil, fmt.Errorf("scenario %q requires -in pointing at an initial-conditions file", scenario)
		}
		return barneshut.LoadSimulation(inPath)

	case "galaxy":
		g := barneshut.InitializeGalaxy(500, 1e22, 5e22, 5e22)
		return barneshut.InitializeUniverse([]barneshut.Galaxy{g}, 1.0e23), nil

	case "collision":
		g0 := barneshut.InitializeGalaxy(500, 4e21, 7e22, 2e22)
		g1 := barneshut.InitializeGalaxy(500, 4e21, 3e22, 7e22)
		barneshut.GalaxyPush(g0, g1, 5e3)
		return barneshut.InitializeUniverse([]barneshut.Galaxy{g0, g1}, 1.0e23), nil

	default:
		return nil, fmt.Errorf("unknown scenario %q (want jupiter, galaxy, collision, or file)", scenario)
	}
}

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/turbomachlab/rigscale/core"
	"github.com/turbomachlab/rigscale/internal/logging"
	"github.com/turbomachlab/rigscale/internal/observability"
	"github.com/turbomachlab/rigscale/internal/plotting"
)

func main() {
	input := flag.String(
		"input",
		"configs/compressor_operation_map.txt",
		"path to the tab-separated compressor operating map",
	)
	plotOut := flag.String(
		"plot-out",
		"compressor_map.png",
		"path of the rendered operating-map PNG",
	)
	noPlot := flag.Bool("no-plot", false, "skip rendering the operating-map plot")

	flag.Parse()

	ctx := context.Background()
	log := logging.NewFromEnv()

	if err := run(ctx, os.Stdout, log, *input, *plotOut, *noPlot); err != nil {
		log.Error(ctx, "sizing run failed", logging.Any("error", err))
		os.Exit(1)
	}
}

// run executes one full sizing pass: load the map, filter and score it,
// pick the optimum, render the plot, and write the result lines to out.
// The spec'd result text goes to out untouched; everything else goes
// through the structured logger.
func run(ctx context.Context, out io.Writer, log logging.Logger, inputPath, plotPath string, noPlot bool) error {
	f, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("open operating map %q: %w", inputPath, err)
	}
	defer f.Close()

	points, err := core.LoadOperatingMap(f)
	if err != nil {
		return fmt.Errorf("load operating map: %w", err)
	}
	log.Info(ctx, "loaded operating map",
		logging.String("path", inputPath),
		logging.Int("points", len(points)),
	)

	reg := prometheus.NewRegistry()
	collector, err := observability.NewPipelineCollector(reg)
	if err != nil {
		return fmt.Errorf("register pipeline metrics: %w", err)
	}

	consts := core.DefaultRigConstants()
	candidates := core.FilterAdmissible(points, consts)
	valid := core.ScorePoints(candidates, consts)
	optimal, found := core.SelectOptimal(valid)

	collector.RecordRun(len(points), len(candidates), len(valid), optimal.Scale, found)
	defer collector.LogSummary(ctx, log)

	if !found {
		fmt.Fprintln(out, "No valid solutions found!")
		return nil
	}

	log.Info(ctx, "selected optimal operating point",
		logging.Float("scale", optimal.Scale),
		logging.Float("mdot_ref", optimal.MdotRef),
		logging.Float("p0_ratio", optimal.P0Ratio),
		logging.Int("valid_points", len(valid)),
	)

	if !noPlot {
		result := core.Result{Valid: valid, Optimal: optimal, Found: found}
		if err := plotting.RenderOperatingMap(points, result, plotPath); err != nil {
			return fmt.Errorf("render plot: %w", err)
		}
		log.Info(ctx, "wrote operating-map plot", logging.String("path", plotPath))
	}

	fmt.Fprintf(out, "Maximum Scale: %.3f\n", optimal.Scale)
	fmt.Fprintln(out, "Operating Point:")
	fmt.Fprintf(out, "• mdot_ref = %.3f kg/s\n", optimal.MdotRef)
	fmt.Fprintf(out, "• P0_ratio = %.4f\n", optimal.P0Ratio)

	return nil
}

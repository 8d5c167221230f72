package observability

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/turbomachlab/rigscale/internal/logging"
)

// PipelineCollector bundles Prometheus metrics for a sizing run: how many
// rows came in, how many survived each stage, and the optimal scale that
// was found. A fresh registry per run keeps the counters scoped to one
// pipeline execution.
type PipelineCollector struct {
	gatherer prometheus.Gatherer

	RowsRead       prometheus.Counter
	Candidates     prometheus.Counter
	ValidPoints    prometheus.Counter
	RejectedFloor  prometheus.Counter
	RejectedScale  prometheus.Counter
	OptimalScale   prometheus.Gauge
	SolutionsFound prometheus.Gauge
}

// NewPipelineCollector registers the pipeline metrics against the
// provided registerer, defaulting to the global Prometheus registry when
// nil.
func NewPipelineCollector(reg prometheus.Registerer) (*PipelineCollector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	rowsRead, err := registerCounter(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "rigscale_rows_read_total",
		Help: "Operating points read from the compressor map.",
	}), "rigscale_rows_read_total")
	if err != nil {
		return nil, err
	}
	candidates, err := registerCounter(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "rigscale_candidates_total",
		Help: "Operating points at or above the minimum pressure ratio.",
	}), "rigscale_candidates_total")
	if err != nil {
		return nil, err
	}
	validPoints, err := registerCounter(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "rigscale_valid_points_total",
		Help: "Candidates whose derived scale landed inside [0,1].",
	}), "rigscale_valid_points_total")
	if err != nil {
		return nil, err
	}
	rejectedFloor, err := registerCounter(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "rigscale_rejected_pressure_floor_total",
		Help: "Operating points rejected by the minimum pressure-ratio filter.",
	}), "rigscale_rejected_pressure_floor_total")
	if err != nil {
		return nil, err
	}
	rejectedScale, err := registerCounter(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "rigscale_rejected_scale_total",
		Help: "Candidates rejected because the derived scale fell outside [0,1].",
	}), "rigscale_rejected_scale_total")
	if err != nil {
		return nil, err
	}
	optimalScale, err := registerGauge(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "rigscale_optimal_scale",
		Help: "Geometric scale of the selected optimal operating point.",
	}), "rigscale_optimal_scale")
	if err != nil {
		return nil, err
	}
	solutionsFound, err := registerGauge(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "rigscale_solutions_found",
		Help: "1 when the run produced a feasible optimum, 0 otherwise.",
	}), "rigscale_solutions_found")
	if err != nil {
		return nil, err
	}

	return &PipelineCollector{
		gatherer:       gatherer,
		RowsRead:       rowsRead,
		Candidates:     candidates,
		ValidPoints:    validPoints,
		RejectedFloor:  rejectedFloor,
		RejectedScale:  rejectedScale,
		OptimalScale:   optimalScale,
		SolutionsFound: solutionsFound,
	}, nil
}

// RecordRun populates the metrics from the stage sizes of one pipeline
// execution.
func (c *PipelineCollector) RecordRun(rows, candidates, valid int, optimalScale float64, found bool) {
	if c == nil {
		return
	}
	c.RowsRead.Add(float64(rows))
	c.Candidates.Add(float64(candidates))
	c.ValidPoints.Add(float64(valid))
	c.RejectedFloor.Add(float64(rows - candidates))
	c.RejectedScale.Add(float64(candidates - valid))
	if found {
		c.OptimalScale.Set(optimalScale)
		c.SolutionsFound.Set(1)
	} else {
		c.SolutionsFound.Set(0)
	}
}

// LogSummary gathers the registry and emits one structured log line per
// metric, so a batch run leaves its instrumentation in the log stream.
func (c *PipelineCollector) LogSummary(ctx context.Context, log logging.Logger) {
	if c == nil || log == nil {
		return
	}
	gatherer := c.gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	families, err := gatherer.Gather()
	if err != nil {
		log.Warn(ctx, "metrics gather failed", logging.Any("error", err))
		return
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			var value float64
			switch {
			case m.GetCounter() != nil:
				value = m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				value = m.GetGauge().GetValue()
			default:
				continue
			}
			log.Debug(ctx, "pipeline metric",
				logging.String("name", mf.GetName()),
				logging.Float("value", value),
			)
		}
	}
}

func registerCounter(reg prometheus.Registerer, counter prometheus.Counter, name string) (prometheus.Counter, error) {
	if err := reg.Register(counter); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Counter); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return counter, nil
}

func registerGauge(reg prometheus.Registerer, gauge prometheus.Gauge, name string) (prometheus.Gauge, error) {
	if err := reg.Register(gauge); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Gauge); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return gauge, nil
}

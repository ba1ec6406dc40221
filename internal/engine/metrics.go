package engine

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// Metrics bundles the Prometheus collectors updated by the engine loop.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	gatherer prometheus.Gatherer

	Ticks         prometheus.Counter
	ApplesEaten   prometheus.Counter
	RunsStarted   prometheus.Counter
	GameOvers     prometheus.Counter
	InputsDropped prometheus.Counter

	Points       prometheus.Gauge
	TickInterval prometheus.Gauge
}

// NewMetrics registers the engine metrics against reg, defaulting to the
// global registry when nil.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	m := &Metrics{gatherer: gatherer}
	counters := []struct {
		dst  *prometheus.Counter
		name string
		help string
	}{
		{&m.Ticks, "snake_ticks_total", "Clock ticks applied while playing."},
		{&m.ApplesEaten, "snake_apples_eaten_total", "Apples eaten across all runs."},
		{&m.RunsStarted, "snake_runs_started_total", "Fresh worlds created, including the first one."},
		{&m.GameOvers, "snake_game_overs_total", "Runs that ended in a collision."},
		{&m.InputsDropped, "snake_inputs_dropped_total", "Input actions dropped because the queue was full."},
	}
	for _, c := range counters {
		counter, err := registerCounter(reg, prometheus.NewCounter(prometheus.CounterOpts{
			Name: c.name,
			Help: c.help,
		}), c.name)
		if err != nil {
			return nil, err
		}
		*c.dst = counter
	}

	points, err := registerGauge(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "snake_points",
		Help: "Points of the current run.",
	}), "snake_points")
	if err != nil {
		return nil, err
	}
	interval, err := registerGauge(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "snake_tick_interval_seconds",
		Help: "Interval of the live clock ticker in seconds.",
	}), "snake_tick_interval_seconds")
	if err != nil {
		return nil, err
	}
	m.Points = points
	m.TickInterval = interval
	return m, nil
}

func (m *Metrics) tick() {
	if m == nil {
		return
	}
	m.Ticks.Inc()
}

func (m *Metrics) appleEaten() {
	if m == nil {
		return
	}
	m.ApplesEaten.Inc()
}

func (m *Metrics) runStarted() {
	if m == nil {
		return
	}
	m.RunsStarted.Inc()
}

func (m *Metrics) gameOver() {
	if m == nil {
		return
	}
	m.GameOvers.Inc()
}

func (m *Metrics) inputDropped() {
	if m == nil {
		return
	}
	m.InputsDropped.Inc()
}

func (m *Metrics) setPoints(points int) {
	if m == nil {
		return
	}
	m.Points.Set(float64(points))
}

func (m *Metrics) setInterval(d time.Duration) {
	if m == nil {
		return
	}
	m.TickInterval.Set(d.Seconds())
}

// WriteSummary gathers every snake_* metric and writes one "name value"
// line per metric, sorted by name.
func (m *Metrics) WriteSummary(w io.Writer) error {
	if m == nil {
		return nil
	}
	families, err := m.gatherer.Gather()
	if err != nil {
		return fmt.Errorf("engine: gather metrics: %w", err)
	}
	sort.Slice(families, func(i, j int) bool {
		return families[i].GetName() < families[j].GetName()
	})
	for _, mf := range families {
		value, ok := sampleValue(mf)
		if !ok {
			continue
		}
		if _, err := fmt.Fprintf(w, "%-30s %g\n", mf.GetName(), value); err != nil {
			return err
		}
	}
	return nil
}

func sampleValue(mf *dto.MetricFamily) (float64, bool) {
	if !strings.HasPrefix(mf.GetName(), "snake_") || len(mf.GetMetric()) == 0 {
		return 0, false
	}
	metric := mf.GetMetric()[0]
	switch mf.GetType() {
	case dto.MetricType_COUNTER:
		return metric.GetCounter().GetValue(), true
	case dto.MetricType_GAUGE:
		return metric.GetGauge().GetValue(), true
	}
	return 0, false
}

func registerCounter(reg prometheus.Registerer, c prometheus.Counter, name string) (prometheus.Counter, error) {
	if err := reg.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Counter); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return c, nil
}

func registerGauge(reg prometheus.Registerer, g prometheus.Gauge, name string) (prometheus.Gauge, error) {
	if err := reg.Register(g); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Gauge); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return g, nil
}

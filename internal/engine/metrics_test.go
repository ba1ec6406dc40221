package engine

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestNewMetricsReusesRegisteredCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	first, err := NewMetrics(reg)
	if err != nil {
		t.Fatalf("NewMetrics: %v", err)
	}
	second, err := NewMetrics(reg)
	if err != nil {
		t.Fatalf("second NewMetrics: %v", err)
	}
	first.tick()
	second.tick()
	if got := testutil.ToFloat64(first.Ticks); got != 2 {
		t.Fatalf("snake_ticks_total = %v, want 2", got)
	}
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	m.tick()
	m.appleEaten()
	m.setInterval(time.Second)
	if err := m.WriteSummary(&bytes.Buffer{}); err != nil {
		t.Fatalf("WriteSummary on nil: %v", err)
	}
}

func TestWriteSummary(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := NewMetrics(reg)
	if err != nil {
		t.Fatalf("NewMetrics: %v", err)
	}
	m.runStarted()
	m.appleEaten()
	m.appleEaten()
	m.setPoints(2)
	m.setInterval(96 * time.Millisecond)

	var buf bytes.Buffer
	if err := m.WriteSummary(&buf); err != nil {
		t.Fatalf("WriteSummary: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"snake_apples_eaten_total",
		"snake_points",
		"snake_runs_started_total",
		"0.096",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 7 {
		t.Fatalf("summary has %d lines, want 7:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "snake_apples_eaten_total") {
		t.Fatalf("summary not sorted, first line %q", lines[0])
	}
}

package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func getTestMetrics() *Metrics {
	return NewWithRegistry(prometheus.NewRegistry(), nil)
}

func getCounterValue(t *testing.T, counter prometheus.Counter) float64 {
	t.Helper()
	metric := &dto.Metric{}
	if err := counter.Write(metric); err != nil {
		t.Fatalf("Failed to write counter metric: %v", err)
	}
	return metric.Counter.GetValue()
}

func getGaugeValue(t *testing.T, gauge prometheus.Gauge) float64 {
	t.Helper()
	metric := &dto.Metric{}
	if err := gauge.Write(metric); err != nil {
		t.Fatalf("Failed to write gauge metric: %v", err)
	}
	return metric.Gauge.GetValue()
}

func TestIncrementContentCreated(t *testing.T) {
	m := getTestMetrics()

	initial := getCounterValue(t, m.ContentCreatedTotal)
	m.IncrementContentCreated()

	if got := getCounterValue(t, m.ContentCreatedTotal); got <= initial {
		t.Errorf("Expected counter to increment, got %f -> %f", initial, got)
	}
}

func TestIncrementProjectCreated(t *testing.T) {
	m := getTestMetrics()

	initial := getCounterValue(t, m.ProjectCreatedTotal)
	m.IncrementProjectCreated()

	if got := getCounterValue(t, m.ProjectCreatedTotal); got <= initial {
		t.Errorf("Expected counter to increment, got %f -> %f", initial, got)
	}
}

func TestSetContentsTotal(t *testing.T) {
	m := getTestMetrics()

	tests := []struct {
		name  string
		count int64
	}{
		{"zero contents", 0},
		{"one content", 1},
		{"many contents", 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m.SetContentsTotal(tt.count)
			if got := getGaugeValue(t, m.ContentsTotal); got != float64(tt.count) {
				t.Errorf("Expected gauge value %d, got %f", tt.count, got)
			}
		})
	}
}

func TestSetProjectsTotal(t *testing.T) {
	m := getTestMetrics()

	m.SetProjectsTotal(10)
	if got := getGaugeValue(t, m.ProjectsTotal); got != 10 {
		t.Errorf("Expected gauge value 10, got %f", got)
	}

	m.SetProjectsTotal(7)
	if got := getGaugeValue(t, m.ProjectsTotal); got != 7 {
		t.Errorf("Expected gauge value 7, got %f", got)
	}
}

func TestSetActiveBlocksTotal(t *testing.T) {
	m := getTestMetrics()

	m.SetActiveBlocksTotal(4)
	if got := getGaugeValue(t, m.ActiveBlocksTotal); got != 4 {
		t.Errorf("Expected gauge value 4, got %f", got)
	}

	m.SetActiveBlocksTotal(0)
	if got := getGaugeValue(t, m.ActiveBlocksTotal); got != 0 {
		t.Errorf("Expected gauge value 0, got %f", got)
	}
}

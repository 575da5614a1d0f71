package obs

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestRecordLockIncrementsCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	m.RecordLock(2, 3, false)
	m.RecordLock(0, 1, true)

	if got := counterValue(t, m.blocksPlaced); got != 2 {
		t.Errorf("expected blocksPlaced == 2, got %v", got)
	}
	if got := counterValue(t, m.linesCleared); got != 2 {
		t.Errorf("expected linesCleared == 2, got %v", got)
	}
	if got := counterValue(t, m.finesseWaste); got != 4 {
		t.Errorf("expected finesseWaste == 4, got %v", got)
	}
	if got := counterValue(t, m.gamesOver); got != 1 {
		t.Errorf("expected gamesOver == 1, got %v", got)
	}
}

func TestSetStateOnlyCurrentLabelIsOne(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	all := []string{"FALLING", "LANDED", "ARE"}
	m.SetState(all, "LANDED")

	if v := gaugeValue(t, m.currentState.WithLabelValues("LANDED")); v != 1 {
		t.Errorf("expected LANDED gauge == 1, got %v", v)
	}
	if v := gaugeValue(t, m.currentState.WithLabelValues("FALLING")); v != 0 {
		t.Errorf("expected FALLING gauge == 0, got %v", v)
	}
}

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	if err := c.Write(&m); err != nil {
		t.Fatalf("failed to write counter metric: %v", err)
	}
	return m.GetCounter().GetValue()
}

func gaugeValue(t *testing.T, g prometheus.Gauge) float64 {
	t.Helper()
	var m dto.Metric
	if err := g.Write(&m); err != nil {
		t.Fatalf("failed to write gauge metric: %v", err)
	}
	return m.GetGauge().GetValue()
}

package benchmark

import (
	"testing"
	"time"
)

func TestRunComponents(t *testing.T) {
	for _, component := range []Component{ComponentBlock, ComponentCBC, ComponentPipeline} {
		opts := DefaultOptions()
		opts.Component = component
		opts.Iterations = 10
		opts.PayloadSize = 256

		r, err := Run(opts)
		if err != nil {
			t.Fatalf("Run(%s) error: %v", component, err)
		}
		if r.Iterations != 10 {
			t.Errorf("%s: iterations %d, want 10", component, r.Iterations)
		}
		if r.PayloadSize%16 != 0 {
			t.Errorf("%s: payload size %d not block aligned", component, r.PayloadSize)
		}
		if r.MinLatency > r.MaxLatency {
			t.Errorf("%s: min latency %v above max %v", component, r.MinLatency, r.MaxLatency)
		}
		if r.Throughput <= 0 {
			t.Errorf("%s: non-positive throughput %f", component, r.Throughput)
		}
	}
}

func TestRunRejectsBadOptions(t *testing.T) {
	opts := DefaultOptions()
	opts.Iterations = 0
	if _, err := Run(opts); err == nil {
		t.Error("expected error for zero iterations")
	}

	opts = DefaultOptions()
	opts.Component = Component(99)
	opts.Iterations = 1
	if _, err := Run(opts); err == nil {
		t.Error("expected error for unknown component")
	}
}

func TestCalculateResultsPercentiles(t *testing.T) {
	latencies := make([]time.Duration, 100)
	for i := range latencies {
		latencies[i] = time.Duration(100-i) * time.Microsecond
	}
	r := calculateResults(ComponentBlock, 16, latencies, 10*time.Millisecond)
	if r.MinLatency != time.Microsecond {
		t.Errorf("min = %v", r.MinLatency)
	}
	if r.MaxLatency != 100*time.Microsecond {
		t.Errorf("max = %v", r.MaxLatency)
	}
	if r.P95Latency < r.MedianLatency {
		t.Errorf("p95 %v below median %v", r.P95Latency, r.MedianLatency)
	}
}

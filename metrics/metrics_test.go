package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestSearchesCounter(t *testing.T) {
	before := testutil.ToFloat64(Searches.WithLabelValues("ok"))
	Searches.WithLabelValues("ok").Inc()
	after := testutil.ToFloat64(Searches.WithLabelValues("ok"))
	if after-before != 1 {
		t.Errorf("expected counter to grow by 1, got %v", after-before)
	}
}

func TestCollectorsRegistered(t *testing.T) {
	WalkSteps.WithLabelValues("0").Observe(2)
	BuildDuration.Observe(0.01)
	if n := testutil.CollectAndCount(WalkSteps, "hwalk_walk_steps"); n == 0 {
		t.Errorf("expected hwalk_walk_steps to have series")
	}
	if n := testutil.CollectAndCount(BuildDuration, "hwalk_graph_build_seconds"); n != 1 {
		t.Errorf("expected one hwalk_graph_build_seconds series, got %d", n)
	}
}

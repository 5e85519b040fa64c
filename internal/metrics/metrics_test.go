package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func TestNewEngineCollector_RegisterOrReuse(t *testing.T) {
	reg := prometheus.NewRegistry()

	c1, err := NewEngineCollector(reg)
	if err != nil {
		t.Fatalf("first registration: %v", err)
	}
	c2, err := NewEngineCollector(reg)
	if err != nil {
		t.Fatalf("second registration should reuse, got error: %v", err)
	}
	if c1.BuildSceneDuration != c2.BuildSceneDuration {
		t.Error("expected second call to reuse the same histogram collector")
	}
}

func TestObserveVisible_NilSafe(t *testing.T) {
	var c *EngineCollector
	c.ObserveVisible(map[string]int{"star": 10}) // must not panic
}

func TestObserveVisible(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := NewEngineCollector(reg)
	if err != nil {
		t.Fatalf("NewEngineCollector: %v", err)
	}
	c.ObserveVisible(map[string]int{"star": 42})

	metricFamilies, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	found := false
	for _, mf := range metricFamilies {
		if mf.GetName() == "skywatch_visible_objects" {
			found = true
		}
	}
	if !found {
		t.Error("expected skywatch_visible_objects in gathered metrics")
	}
}

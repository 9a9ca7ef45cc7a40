package prom

import (
	"strings"
	"testing"

	"github.com/IvanBrykalov/forgetmap/cache"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestAdapter_CountsCacheTraffic(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	m := New(reg, "forgetmap", "test", nil)

	c := cache.MustNew[string, int](cache.Options[string, int]{Capacity: 2, Metrics: m})
	c.Insert("a", 1)
	c.Insert("b", 2)
	c.Insert("a", 3) // replace
	c.Lookup("b")    // hit
	c.Lookup("zzz")  // miss
	c.Insert("c", 4) // eviction

	checks := []struct {
		name string
		c    prometheus.Collector
		want float64
	}{
		{"hits", m.hits, 1},
		{"misses", m.misses, 1},
		{"lookups", m.ticks, 2},
		{"replacements", m.replaces, 1},
		{"evictions", m.evicts, 1},
		{"size", m.size, 2},
	}
	for _, tc := range checks {
		if got := testutil.ToFloat64(tc.c); got != tc.want {
			t.Errorf("%s = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestAdapter_Exposition(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	m := New(reg, "forgetmap", "demo", prometheus.Labels{"app": "example"})
	m.Hit()
	m.Size(3)

	want := `
# HELP forgetmap_demo_hits_total Lookups that found their key
# TYPE forgetmap_demo_hits_total counter
forgetmap_demo_hits_total{app="example"} 1
# HELP forgetmap_demo_size_entries Number of occupied slots
# TYPE forgetmap_demo_size_entries gauge
forgetmap_demo_size_entries{app="example"} 3
`
	err := testutil.GatherAndCompare(reg, strings.NewReader(want),
		"forgetmap_demo_hits_total", "forgetmap_demo_size_entries")
	if err != nil {
		t.Fatal(err)
	}
	if n := testutil.CollectAndCount(m.evicts); n != 1 {
		t.Fatalf("evictions collector exports %d series, want 1", n)
	}
}

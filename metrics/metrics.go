// Package metrics exports extension-search statistics as Prometheus metrics.
//
// A Recorder owns a private registry, so several searches in one process
// (or parallel tests) never collide on the default registry. It implements
// search.Reporter for per-candidate counters and takes search.Stats after
// each run for node and prune totals.
package metrics

import (
	"fmt"
	"io"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"

	"github.com/katalvlaran/degdiam/search"
)

const namespace = "degdiam"

// Recorder collects search metrics.
type Recorder struct {
	reg *prometheus.Registry

	searches     prometheus.Counter
	nodes        prometheus.Counter
	prunes       *prometheus.CounterVec
	candidates   *prometheus.CounterVec
	bestDiameter prometheus.Gauge

	best  int
	found bool
}

// NewRecorder returns a Recorder with its own registry.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)

	return &Recorder{
		reg: reg,

		// searches counts completed extension searches
		searches: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "searches_total",
			Help:      "Completed extension searches",
		}),

		// nodes counts visited attachment sets, roots included
		nodes: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "search_nodes_total",
			Help:      "Attachment sets visited by extension searches",
		}),

		// prunes counts abandoned branches by reason
		prunes: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "search_prunes_total",
			Help:      "Branches pruned by the degree bound, by reason",
		}, []string{"reason"}),

		// candidates counts reported extensions by diameter and connectivity
		candidates: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "candidates_total",
			Help:      "Reported extensions by diameter and connectivity",
		}, []string{"diameter", "connected"}),

		bestDiameter: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "best_diameter",
			Help:      "Smallest diameter among connected candidates (0 until one is seen)",
		}),
	}
}

// Registry returns the registry holding r's collectors.
func (r *Recorder) Registry() *prometheus.Registry { return r.reg }

// Report implements search.Reporter.
func (r *Recorder) Report(c search.Candidate) {
	r.candidates.WithLabelValues(strconv.Itoa(c.Diameter), strconv.FormatBool(c.Connected)).Inc()
	if !c.Connected {
		return
	}
	if !r.found || c.Diameter < r.best {
		r.best, r.found = c.Diameter, true
		r.bestDiameter.Set(float64(c.Diameter))
	}
}

// Observe records the totals of one finished search.
func (r *Recorder) Observe(s search.Stats) {
	r.searches.Inc()
	r.nodes.Add(float64(s.Nodes))
	r.prunes.WithLabelValues("saturated").Add(float64(s.SaturatedPrunes))
	r.prunes.WithLabelValues("target").Add(float64(s.TargetPrunes))
}

// WriteSummary writes every gathered family in the Prometheus text
// exposition format, families sorted by name.
func (r *Recorder) WriteSummary(w io.Writer) error {
	families, err := r.reg.Gather()
	if err != nil {
		return fmt.Errorf("metrics: gather: %w", err)
	}
	for _, mf := range families {
		if _, err = expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("metrics: write %s: %w", mf.GetName(), err)
		}
	}

	return nil
}

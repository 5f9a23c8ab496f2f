package metrics

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	reg           *prom.Registry
	buildDuration prom.Histogram
	buildOutcome  *prom.CounterVec
	logoBytes     prom.Gauge
}

// NewPrometheusRecorder constructs and registers the build metrics on reg.
// A nil reg gets a fresh private registry.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		reg: reg,
		buildDuration: prom.NewHistogram(prom.HistogramOpts{
			Namespace: "govuksite",
			Name:      "build_duration_seconds",
			Help:      "Time taken to assemble the site configuration",
			Buckets:   prom.DefBuckets,
		}),
		buildOutcome: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "govuksite",
			Name:      "build_outcomes_total",
			Help:      "Site configuration builds by final status",
		}, []string{"outcome"}),
		logoBytes: prom.NewGauge(prom.GaugeOpts{
			Namespace: "govuksite",
			Name:      "logo_bytes",
			Help:      "Size of the inlined header logo markup",
		}),
	}
	reg.MustRegister(pr.buildDuration, pr.buildOutcome, pr.logoBytes)
	return pr
}

func (p *PrometheusRecorder) ObserveBuildDuration(d time.Duration) {
	if p == nil {
		return
	}
	p.buildDuration.Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncBuildOutcome(outcome BuildOutcomeLabel) {
	if p == nil {
		return
	}
	p.buildOutcome.WithLabelValues(string(outcome)).Inc()
}

func (p *PrometheusRecorder) SetLogoBytes(n int) {
	if p == nil {
		return
	}
	p.logoBytes.Set(float64(n))
}

// Registry exposes the underlying registry for gathering.
func (p *PrometheusRecorder) Registry() *prom.Registry { return p.reg }

// WriteTextfile writes the current metric values to path in the Prometheus text format.
func (p *PrometheusRecorder) WriteTextfile(path string) error {
	return prom.WriteToTextfile(path, p.reg)
}

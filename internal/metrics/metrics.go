package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/yuxishi/aws-quota-checker/internal/model"
)

var labels = []string{"check", "scope", "region", "instance"}

// Metrics exposes the latest audit report as Prometheus gauges.
type Metrics struct {
	Current     *prometheus.GaugeVec
	Maximum     *prometheus.GaugeVec
	UsageRatio  *prometheus.GaugeVec
	CheckErrors *prometheus.CounterVec
	LastRun     prometheus.Gauge
}

func New(registry prometheus.Registerer) *Metrics {
	m := &Metrics{
		Current: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "awsquota_current",
				Help: "Current usage of a quota",
			},
			labels,
		),
		Maximum: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "awsquota_maximum",
				Help: "Resolved maximum of a quota, -1 when unknown",
			},
			labels,
		),
		UsageRatio: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "awsquota_usage_ratio",
				Help: "Current usage divided by maximum",
			},
			labels,
		),
		CheckErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "awsquota_check_errors_total",
				Help: "Total number of failed check evaluations",
			},
			[]string{"check", "region"},
		),
		LastRun: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "awsquota_last_run_timestamp_seconds",
				Help: "Unix time of the last audit",
			},
		),
	}

	registry.MustRegister(m.Current, m.Maximum, m.UsageRatio, m.CheckErrors, m.LastRun)
	return m
}

// Observe replaces the gauges with the values of report.
func (m *Metrics) Observe(report *model.Report) {
	m.Current.Reset()
	m.Maximum.Reset()
	m.UsageRatio.Reset()

	for _, r := range report.Results {
		if r.Failed() {
			m.CheckErrors.WithLabelValues(r.Key, r.Region).Inc()
			continue
		}
		lv := []string{r.Key, r.Scope, r.Region, r.InstanceID}
		m.Current.WithLabelValues(lv...).Set(float64(r.Current))
		m.Maximum.WithLabelValues(lv...).Set(float64(r.Maximum))
		if r.UsageFraction != nil {
			m.UsageRatio.WithLabelValues(lv...).Set(*r.UsageFraction)
		}
	}
	m.LastRun.Set(float64(report.GeneratedAt.Unix()))
}

package metrics

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "resortdesk"

// Invite pipeline stages.
const (
	StageBuild   = "build"
	StageEncode  = "encode"
	StagePersist = "persist"
)

// InviteObserver exports calendar invite pipeline metrics to Prometheus.
type InviteObserver struct {
	duration *prometheus.HistogramVec
	failures *prometheus.CounterVec
}

func NewInviteObserver(reg prometheus.Registerer) (*InviteObserver, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	o := &InviteObserver{
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "invite_duration_seconds",
			Help:      "Latency of calendar invite pipeline stages.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"stage"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "invite_failures_total",
			Help:      "Count of calendar invite pipeline failures.",
		}, []string{"stage"}),
	}

	for _, c := range []prometheus.Collector{o.duration, o.failures} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("register invite metric: %w", err)
		}
	}

	return o, nil
}

func (o *InviteObserver) ObserveStage(stage string, d time.Duration, err error) {
	if o == nil {
		return
	}
	o.duration.WithLabelValues(stage).Observe(d.Seconds())
	if err != nil {
		o.failures.WithLabelValues(stage).Inc()
	}
}

func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}

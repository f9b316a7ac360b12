package manager

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"rregexd/internal/loader"
)

var (
	loaderLoadsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "rregexd",
			Subsystem: "loader",
			Name:      "loads_total",
			Help:      "Engine initializations by version and result",
		},
		[]string{"version", "result"},
	)

	loaderStaleTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "rregexd",
			Subsystem: "loader",
			Name:      "stale_completions_total",
			Help:      "Load completions dropped because a newer request superseded them",
		},
	)

	loaderLoading = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "rregexd",
			Subsystem: "loader",
			Name:      "loading",
			Help:      "Engine initializations in progress",
		},
	)
)

func init() {
	prometheus.MustRegister(loaderLoadsTotal, loaderStaleTotal, loaderLoading)
}

// metricsPublisher feeds loader events into prometheus.
type metricsPublisher struct{}

func (metricsPublisher) Publish(e loader.Event) {
	switch e.Name {
	case loader.EventLoadStart:
		loaderLoading.Inc()
	case loader.EventLoadReady:
		loaderLoading.Dec()
		loaderLoadsTotal.WithLabelValues(e.Key, "ready").Inc()
	case loader.EventLoadFailed:
		loaderLoading.Dec()
		loaderLoadsTotal.WithLabelValues(e.Key, "failed").Inc()
	case loader.EventStaleCompletion:
		loaderStaleTotal.Inc()
	}
}

// logPublisher writes loader events to a zerolog logger. Failures log at
// error level; the rest at info, except stale completions at debug.
type logPublisher struct {
	log zerolog.Logger
}

func (p logPublisher) Publish(e loader.Event) {
	var ev *zerolog.Event
	switch e.Name {
	case loader.EventLoadFailed:
		ev = p.log.Error()
	case loader.EventStaleCompletion:
		ev = p.log.Debug()
	default:
		ev = p.log.Info()
	}
	ev = ev.Str("event", e.Name).Str("version", e.Key)
	if len(e.Fields) > 0 {
		ev = ev.Fields(e.Fields)
	}
	ev.Msg("loader")
}

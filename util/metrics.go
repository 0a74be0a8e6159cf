package util

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type metrics struct {
	notificationsCounter prometheus.Counter
	observerFailures     prometheus.Counter
	handRecordsSaved     prometheus.Counter
	sortRuns             *prometheus.CounterVec
}

func (m *metrics) ObserverNotified() {
	m.notificationsCounter.Inc()
}

func (m *metrics) ObserverFailed() {
	m.observerFailures.Inc()
}

func (m *metrics) HandRecordSaved() {
	m.handRecordsSaved.Inc()
}

func (m *metrics) SortRun(strategy string) {
	m.sortRuns.WithLabelValues(strategy).Inc()
}

func (m *metrics) NotificationsCounter() prometheus.Counter {
	return m.notificationsCounter
}

func (m *metrics) ObserverFailuresCounter() prometheus.Counter {
	return m.observerFailures
}

func (m *metrics) HandRecordsSavedCounter() prometheus.Counter {
	return m.handRecordsSaved
}

func (m *metrics) SortRunsCounter(strategy string) prometheus.Counter {
	return m.sortRuns.WithLabelValues(strategy)
}

var Metrics = &metrics{
	notificationsCounter: promauto.NewCounter(prometheus.CounterOpts{
		Name: "observer_notifications_total",
		Help: "Total number of observer notifications delivered",
	}),
	observerFailures: promauto.NewCounter(prometheus.CounterOpts{
		Name: "observer_failures_total",
		Help: "Total number of observers that returned an error when notified",
	}),
	handRecordsSaved: promauto.NewCounter(prometheus.CounterOpts{
		Name: "hand_records_saved_total",
		Help: "Total number of hand records written to a sink",
	}),
	sortRuns: promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sort_runs_total",
		Help: "Total number of sorts run, by strategy",
	}, []string{"strategy"}),
}

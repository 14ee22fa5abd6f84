package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	clientsByStatus = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "democat",
			Name:      "clients",
			Help:      "Clients by derived access status at the last housekeeping run.",
		},
		[]string{"status"},
	)

	clientsExpiringUnrequested = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "democat",
		Name:      "clients_expiring_without_request",
		Help:      "Clients expiring soon that have no pending renewal request.",
	})

	requestDecisions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "democat",
			Name:      "request_decisions_total",
			Help:      "Renewal request decisions, by request type and outcome.",
		},
		[]string{"type", "decision"},
	)

	requestsCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "democat",
			Name:      "requests_created_total",
			Help:      "Renewal requests opened, by request type.",
		},
		[]string{"type"},
	)

	demoCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "democat",
			Name:      "demo_cache_lookups_total",
			Help:      "Demo cache lookups, by result (hit or miss).",
		},
		[]string{"result"},
	)

	activityPruned = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "democat",
		Name:      "activity_pruned_total",
		Help:      "Activity entries deleted by retention housekeeping.",
	})
)

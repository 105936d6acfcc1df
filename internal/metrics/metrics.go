package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ViewsServedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "videoclub_views_served_total",
			Help: "Total number of full videos delivered",
		},
	)

	ViewsDeniedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "videoclub_views_denied_total",
			Help: "Total number of denied video requests",
		},
		[]string{"reason"},
	)

	PackagesCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "videoclub_packages_created_total",
			Help: "Total number of content packages created",
		},
	)

	BroadcastFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "videoclub_broadcast_failures_total",
			Help: "Total number of failed per-chat broadcast deliveries",
		},
	)

	PaymentsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "videoclub_payments_total",
			Help: "Total number of successful premium payments",
		},
	)

	MembershipCheckFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "videoclub_membership_check_failures_total",
			Help: "Total number of membership checks that errored (counted as not subscribed)",
		},
	)
)

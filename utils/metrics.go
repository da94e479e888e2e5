package utils

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	TravelsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "abrc_travels_created_total",
		Help: "The total number of travels posted",
	})
	RideRequestsFiled = promauto.NewCounter(prometheus.CounterOpts{
		Name: "abrc_ride_requests_filed_total",
		Help: "The total number of ride requests persisted",
	})
	RideRequestsRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "abrc_ride_requests_rejected_total",
		Help: "The total number of rejected ride requests by reason",
	}, []string{"reason"})
	NotificationsSent = promauto.NewCounter(prometheus.CounterOpts{
		Name: "abrc_notifications_sent_total",
		Help: "The total number of owner notification mails delivered",
	})
	NotificationsFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "abrc_notifications_failed_total",
		Help: "The total number of owner notification mails that failed to send",
	})
)

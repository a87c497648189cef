package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RentalInquiriesCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rental_inquiries_created_total",
			Help: "Total number of stored rental inquiries by package",
		},
		[]string{"package"},
	)

	RentalInquiryValidationFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rental_inquiry_validation_failures_total",
			Help: "Total number of rejected rental inquiry fields",
		},
		[]string{"field"},
	)

	WebhookSubmissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "webhook_submissions_total",
			Help: "Total number of form submissions forwarded to the webhook by result",
		},
		[]string{"result"},
	)

	WebhookRequestDurationSeconds = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "webhook_request_duration_seconds",
			Help:    "Duration of outbound webhook requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)
)

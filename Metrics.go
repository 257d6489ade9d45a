package main

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	assignmentsCounter = promauto.NewCounter(prometheus.CounterOpts{
		Name: "checklist_assignments_total",
		Help: "Checklist rows assigned to reviewers.",
	})
	evaluationsCounter = promauto.NewCounter(prometheus.CounterOpts{
		Name: "checklist_evaluations_total",
		Help: "Verdicts submitted by reviewers.",
	})
	backendErrorsCounter = promauto.NewCounter(prometheus.CounterOpts{
		Name: "checklist_backend_errors_total",
		Help: "Failed reads and writes of the checklist sheet.",
	})
	webhookFailuresCounter = promauto.NewCounter(prometheus.CounterOpts{
		Name: "checklist_webhook_failures_total",
		Help: "Events that could not be delivered to a webhook.",
	})
)

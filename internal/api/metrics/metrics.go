// Package metrics registers the application-level Prometheus collectors.
// Request-level metrics come from the echoprometheus middleware.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "tours"

var (
	// SignIns counts credential checks by result (success, failure).
	SignIns = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_signins_total",
		Help:      "Sign-in attempts by result.",
	}, []string{"result"})

	// SignUps counts account registrations by result.
	SignUps = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_signups_total",
		Help:      "Sign-up attempts by result.",
	}, []string{"result"})

	// PasswordResets tracks the reset lifecycle (requested, completed).
	PasswordResets = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_password_resets_total",
		Help:      "Password reset lifecycle events by stage.",
	}, []string{"stage"})

	// RateLimitRejections counts requests refused by the IP rate limiter.
	RateLimitRejections = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rate_limit_rejections_total",
		Help:      "Requests rejected by the per-IP rate limiter.",
	})
)

const (
	ResultSuccess = "success"
	ResultFailure = "failure"

	StageRequested = "requested"
	StageCompleted = "completed"
)

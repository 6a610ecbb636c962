package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	signupCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "extracurricular",
		Subsystem: "roster",
		Name:      "signups_total",
		Help:      "Number of successful signups per activity.",
	}, []string{"activity"})

	unregisterCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "extracurricular",
		Subsystem: "roster",
		Name:      "unregistrations_total",
		Help:      "Number of successful unregistrations per activity.",
	}, []string{"activity"})

	rejectionCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "extracurricular",
		Subsystem: "roster",
		Name:      "rejected_operations_total",
		Help:      "Number of rejected roster operations grouped by operation and reason.",
	}, []string{"operation", "reason"})
)

func init() {
	prometheus.MustRegister(signupCounter, unregisterCounter, rejectionCounter)
}

// RecordSignup counts a successful signup for the activity.
func RecordSignup(activity string) {
	signupCounter.WithLabelValues(activity).Inc()
}

// RecordUnregister counts a successful unregistration for the activity.
func RecordUnregister(activity string) {
	unregisterCounter.WithLabelValues(activity).Inc()
}

// RecordRejection counts a rejected operation by reason.
func RecordRejection(operation, reason string) {
	rejectionCounter.WithLabelValues(operation, reason).Inc()
}

package server

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	requestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gasdyn_requests_total",
			Help: "Relation queries served, by endpoint and HTTP status code",
		},
		[]string{"endpoint", "code"},
	)
	errorCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gasdyn_errors_total",
			Help: "Failed relation queries, by endpoint and error class (parameter, domain, numerical)",
		},
		[]string{"endpoint", "class"},
	)
	solveSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gasdyn_solve_seconds",
			Help:    "Time spent evaluating a relation, including any root finding",
			Buckets: prometheus.ExponentialBuckets(1.e-6, 4, 10),
		},
		[]string{"endpoint"},
	)
)

func init() {
	prometheus.MustRegister(requestCounter, errorCounter, solveSeconds)
}

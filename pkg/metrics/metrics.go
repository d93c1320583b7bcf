package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	SectionRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "fitness", Name: "section_requests_total", Help: "Section API requests by entity and operation."},
		[]string{"entity", "op"},
	)
	ValidationFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "fitness", Name: "validation_failures_total", Help: "Rejected writes by entity."},
		[]string{"entity"},
	)
	MediaDeleted = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "fitness", Name: "media_objects_deleted_total", Help: "Locally stored media objects deleted after replacement or document delete."},
	)
	RateLimitAllowed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "fitness", Name: "rate_limit_allowed_total", Help: "Number of allowed requests by limiter type."},
		[]string{"limiter"},
	)
	RateLimitRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "fitness", Name: "rate_limit_rejected_total", Help: "Number of rejected requests by limiter type."},
		[]string{"limiter"},
	)
	CacheHits = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "fitness", Name: "response_cache_hits_total", Help: "Public GET responses served from the Redis cache."},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(SectionRequests)
	reg.MustRegister(ValidationFailures)
	reg.MustRegister(MediaDeleted)
	reg.MustRegister(RateLimitAllowed)
	reg.MustRegister(RateLimitRejected)
	reg.MustRegister(CacheHits)
}

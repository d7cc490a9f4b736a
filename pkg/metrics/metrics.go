package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ActivityRecordFailures counts activity-log writes that were absorbed
// instead of failing the triggering request. The activity feed is
// best-effort, so this counter is the only place those errors surface
// besides the log.
var ActivityRecordFailures = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "pathway",
	Subsystem: "activity",
	Name:      "record_failures_total",
	Help:      "Number of activity log writes dropped after a store error.",
}, []string{"activity_type"})

// HttpRequests counts handled HTTP requests by route and status.
var HttpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "pathway",
	Subsystem: "http",
	Name:      "requests_total",
	Help:      "Number of handled HTTP requests.",
}, []string{"method", "path", "status"})

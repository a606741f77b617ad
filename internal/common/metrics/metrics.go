// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	WorkerJobsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_jobs_completed_total",
			Help: "Total number of jobs completed by worker",
		},
		[]string{"task_type"},
	)

	WorkerJobsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_jobs_failed_total",
			Help: "Total number of jobs failed by worker",
		},
		[]string{"task_type", "error_code"},
	)

	WorkerJobDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "worker_job_duration_seconds",
			Help: "Duration of job processing in seconds",
		},
		[]string{"task_type"},
	)

	WorkerJobsActive = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "worker_jobs_active",
			Help: "Number of jobs currently being handled per worker",
		},
		[]string{"task_type"},
	)

	AnalysesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "planner_analyses_total",
			Help: "Business plan analyses by report status and urgency level",
		},
		[]string{"status", "urgency"},
	)

	StrategicScore = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "planner_strategic_score",
			Help:    "Distribution of computed strategic scores",
			Buckets: prometheus.LinearBuckets(15, 10, 8),
		},
	)

	RecommendationsPerReport = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "planner_recommendations",
			Help:    "Number of recommendations per report",
			Buckets: []float64{0, 1, 2, 3, 4},
		},
	)
)

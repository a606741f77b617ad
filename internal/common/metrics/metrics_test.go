package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestAnalysesTotal_LabelsByStatusAndUrgency(t *testing.T) {
	before := testutil.ToFloat64(AnalysesTotal.WithLabelValues("ok", "Low"))

	AnalysesTotal.WithLabelValues("ok", "Low").Inc()
	AnalysesTotal.WithLabelValues("unavailable", "").Inc()

	assert.Equal(t, before+1, testutil.ToFloat64(AnalysesTotal.WithLabelValues("ok", "Low")))
	assert.GreaterOrEqual(t, testutil.ToFloat64(AnalysesTotal.WithLabelValues("unavailable", "")), 1.0)
}

func TestWorkerJobsActive_TracksInFlight(t *testing.T) {
	gauge := WorkerJobsActive.WithLabelValues("metrics-test")

	gauge.Inc()
	gauge.Inc()
	gauge.Dec()

	assert.Equal(t, 1.0, testutil.ToFloat64(gauge))
}

func TestHistograms_AreRegistered(t *testing.T) {
	StrategicScore.Observe(69)
	RecommendationsPerReport.Observe(2)

	assert.Equal(t, 1, testutil.CollectAndCount(StrategicScore))
	assert.Equal(t, 1, testutil.CollectAndCount(RecommendationsPerReport))
}

package observability

import (
	"context"
	"strings"
	"testing"
	"time"

	"planner-workers/internal/common/logger"

	promclient "github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObservability_RecordsThroughRegistry(t *testing.T) {
	reg := promclient.NewRegistry()
	obs := New("planner-workers-test", reg, logger.NewTestLogger(t))
	defer func() { _ = obs.Shutdown() }()

	ctx := context.Background()
	obs.RecordJobProcessed(ctx, "completed")
	obs.RecordJobDuration(ctx, 12*time.Millisecond, "completed")
	obs.RecordScore(ctx, 69, "Tecnología", "Low")

	families, err := reg.Gather()
	require.NoError(t, err)

	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	joined := strings.Join(names, ",")
	assert.Contains(t, joined, "jobs_processed")
	assert.Contains(t, joined, "jobs_duration")
	assert.Contains(t, joined, "analysis_strategic_score")
}

func TestObservability_ZeroValueIsSafe(t *testing.T) {
	var obs *Observability

	assert.NotPanics(t, func() {
		obs.RecordJobProcessed(context.Background(), "failed")
		obs.RecordScore(context.Background(), 25, "", "Critical")
		assert.NoError(t, obs.Shutdown())
	})

	assert.NotPanics(t, func() {
		(&Observability{}).RecordJobDuration(context.Background(), time.Second, "failed")
	})
}

// internal/engine/roadmap_test.go
package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestRecommendation(title string, p Priority, weeks int) Recommendation {
	return Recommendation{Title: title, Priority: p, TimeframeWeeks: weeks}
}

func TestBuildRoadmap_OrdersByPriorityThenTimeframe(t *testing.T) {
	e := NewDefault()
	recs := []Recommendation{
		createTestRecommendation("content", PriorityMedium, 8),
		createTestRecommendation("restructure", PriorityCritical, 4),
		createTestRecommendation("invest", PriorityHigh, 12),
		createTestRecommendation("measure", PriorityCritical, 2),
		createTestRecommendation("mix", PriorityHigh, 4),
	}

	steps := e.BuildRoadmap(recs)

	require.Len(t, steps, 5)
	var titles, phasesSeen []string
	for _, s := range steps {
		titles = append(titles, s.Recommendation.Title)
		phasesSeen = append(phasesSeen, s.Phase)
	}
	assert.Equal(t, []string{"measure", "restructure", "mix", "invest", "content"}, titles)
	assert.Equal(t, []string{
		"Phase 1: Foundation",
		"Phase 1: Foundation",
		"Phase 2: Growth",
		"Phase 2: Growth",
		"Phase 3: Optimization",
	}, phasesSeen)
	assert.Equal(t, "Days 61-90", steps[4].Period)

	// input untouched
	assert.Equal(t, "content", recs[0].Title)
}

func TestBuildRoadmap_StableForEqualKeys(t *testing.T) {
	e := NewDefault()
	recs := []Recommendation{
		createTestRecommendation("first", PriorityHigh, 4),
		createTestRecommendation("second", PriorityHigh, 4),
	}

	steps := e.BuildRoadmap(recs)

	assert.Equal(t, "first", steps[0].Recommendation.Title)
	assert.Equal(t, "second", steps[1].Recommendation.Title)
}

func TestBuildRoadmap_OverflowStaysInLastPhase(t *testing.T) {
	e := NewDefault()
	recs := make([]Recommendation, 8)
	for i := range recs {
		recs[i] = createTestRecommendation("r", PriorityLow, i)
	}

	steps := e.BuildRoadmap(recs)

	assert.Equal(t, "Phase 3: Optimization", steps[7].Phase)
	assert.Empty(t, e.BuildRoadmap(nil))
}

func TestRankRecommendations_RuleOrder(t *testing.T) {
	e := NewDefault()
	profile := createTestProfile(IndustryEducation, 900000, []string{"Facebook Ads", "Google Ads"}, []string{
		ChallengePoorLeadQuality,
		ChallengeInconsistentContent,
	}, GoalGenerateLeads)
	analysis := e.ComputeAnalysis(profile, Lookup(profile.Industry))
	metrics := e.ComputeMetrics(profile, analysis)

	recs := e.RankRecommendations(profile, analysis, metrics)

	require.Len(t, recs, 2)
	assert.Equal(t, "Improve lead qualification", recs[0].Title)
	assert.Equal(t, PriorityMedium, recs[0].Priority)
	assert.Equal(t, "Systematize content production", recs[1].Title)
	for _, r := range recs {
		assert.NotEmpty(t, r.ActionItems)
		assert.NotEmpty(t, r.Effort)
	}
}

func TestRankRecommendations_CapFromPolicy(t *testing.T) {
	p := DefaultPolicy()
	p.RecommendationCap = 1
	e := New(p)
	profile := createTestProfile(IndustryRetail, 100000, nil, []string{ChallengeCantMeasure}, GoalIncreaseSales)
	analysis := e.ComputeAnalysis(profile, Lookup(profile.Industry))

	recs := e.RankRecommendations(profile, analysis, e.ComputeMetrics(profile, analysis))

	require.Len(t, recs, 1)
}

func TestRankRecommendations_NoBudget(t *testing.T) {
	e := NewDefault()
	profile := createZeroBudgetProfile()
	analysis := e.ComputeAnalysis(profile, Lookup(profile.Industry))

	recs := e.RankRecommendations(profile, analysis, e.ComputeMetrics(profile, analysis))

	require.Len(t, recs, 1)
	assert.Equal(t, TitleDefineBudget, recs[0].Title)
	assert.Equal(t, PriorityCritical, recs[0].Priority)
}

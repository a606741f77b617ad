// internal/engine/engine_test.go
package engine

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Test Helper Functions
// ==========================

func createTestProfile(industry string, budget int64, channels, challenges []string, goal string) BusinessProfile {
	return BusinessProfile{
		BusinessName:      "Acme",
		Industry:          industry,
		MonthlyBudget:     budget,
		PrimaryGoal:       goal,
		TargetAudience:    "Adultos 25-45 en Santiago",
		CurrentChannels:   channels,
		CurrentChallenges: challenges,
		Timeframe:         "3-6 meses",
		Email:             "owner@acme.cl",
	}
}

func createZeroBudgetProfile() BusinessProfile {
	return createTestProfile(IndustryEcommerce, 0, []string{"Google Ads"}, []string{ChallengeCantMeasure}, GoalIncreaseSales)
}

// ==========================
// End-to-End Scenarios
// ==========================

func TestEngine_Analyze_ZeroBudget(t *testing.T) {
	e := NewDefault()

	report := e.Analyze(createZeroBudgetProfile())

	require.Equal(t, StatusOK, report.Status)
	require.NotNil(t, report.Analysis)
	assert.Equal(t, 25, report.Analysis.StrategicScore)
	assert.Equal(t, UrgencyCritical, report.Analysis.UrgencyLevel)
	assert.Equal(t, RiskHigh, report.Analysis.RiskLevel)
	assert.False(t, report.Analysis.HasBudget)

	require.Len(t, report.Recommendations, 1)
	assert.Equal(t, TitleDefineBudget, report.Recommendations[0].Title)

	require.Len(t, report.Allocation, 1)
	assert.Equal(t, "Define budget", report.Allocation[0].Name)
	assert.Equal(t, 100, report.Allocation[0].Percentage)

	require.NotNil(t, report.Metrics)
	m := report.Metrics
	assert.False(t, m.Available)
	assert.Nil(t, m.AdSpend)
	assert.Nil(t, m.Clicks)
	assert.Nil(t, m.ConversionRatePct)
	assert.Nil(t, m.ProjectedLeads)
	assert.Nil(t, m.LeadCost)
	assert.Nil(t, m.BenchmarkLeadCost)
	assert.Nil(t, m.NewCustomers)
	assert.Nil(t, m.ProjectedRevenue)
	assert.Nil(t, m.ProjectedROIPct)
	assert.Nil(t, m.PotentialROIPct)
	assert.Nil(t, m.ROIGapPct)
}

func TestEngine_Analyze_EcommerceTopTier(t *testing.T) {
	e := NewDefault()
	profile := createTestProfile(IndustryEcommerce, 2000000, []string{"Google Ads", "Facebook Ads"}, []string{}, GoalIncreaseSales)

	report := e.Analyze(profile)

	require.Equal(t, StatusOK, report.Status)
	a := report.Analysis
	assert.Equal(t, 1.0, a.DigitalMaturity)
	assert.Equal(t, 1.0, a.ChannelEfficiency)
	assert.Equal(t, 1.0, a.ChallengePenalty)
	assert.Equal(t, 80, a.StrategicScore) // 30 + 25 + 20 + 5
	assert.Equal(t, 100, a.EfficiencyPct)
	assert.Equal(t, 0, a.GrowthPotentialPct)
	assert.Equal(t, UrgencyLow, a.UrgencyLevel)
	assert.Equal(t, "green", a.ScoreColor)
	assert.Equal(t, []string{"Google Ads", "Facebook Ads"}, a.MatchedChannels)
	assert.Equal(t, "Robust budget", a.BudgetCategory)

	m := report.Metrics
	require.True(t, m.Available)
	assert.Equal(t, int64(1400000), *m.AdSpend)
	assert.Equal(t, int64(2800), *m.Clicks)
	assert.Equal(t, 2.5, *m.ConversionRatePct)
	assert.Equal(t, int64(70), *m.ProjectedLeads)
	assert.Equal(t, int64(20000), *m.LeadCost)
	assert.Equal(t, int64(11), *m.NewCustomers)
	assert.Equal(t, int64(715000), *m.ProjectedRevenue)
	assert.Equal(t, int64(-64), *m.ProjectedROIPct)
	assert.Equal(t, int64(-64), *m.PotentialROIPct)
	assert.Equal(t, int64(0), *m.ROIGapPct)

	assert.Equal(t, "Google Shopping", report.Allocation[0].Name)
	assert.Equal(t, int64(700000), report.Allocation[0].Amount)
	assert.Equal(t, 100, report.Allocation.Total())

	assert.Empty(t, report.Recommendations)
	assert.Empty(t, report.Roadmap)
}

func TestEngine_Analyze_PositiveROI(t *testing.T) {
	e := NewDefault()
	profile := createTestProfile(IndustryTechnology, 1000000, []string{"Google Ads", "LinkedIn Ads"}, nil, GoalGenerateLeads)

	report := e.Analyze(profile)

	a := report.Analysis
	assert.Equal(t, 0.75, a.DigitalMaturity)
	assert.Equal(t, 69, a.StrategicScore) // 68.75 rounded once
	assert.Equal(t, 75, a.EfficiencyPct)

	m := report.Metrics
	assert.Equal(t, int64(1400), *m.Clicks)
	assert.Equal(t, 1.5, *m.ConversionRatePct)
	assert.Equal(t, int64(21), *m.ProjectedLeads)
	assert.Equal(t, int64(33333), *m.LeadCost)
	assert.Equal(t, int64(3), *m.NewCustomers)
	assert.Equal(t, int64(3600000), *m.ProjectedRevenue)
	assert.Equal(t, int64(260), *m.ProjectedROIPct)
	assert.Equal(t, int64(380), *m.PotentialROIPct)
	assert.Equal(t, int64(120), *m.ROIGapPct)

	expected := BudgetAllocation{
		{Name: "Google Ads", Percentage: 35, Color: "#0ea5e9", Amount: 350000},
		{Name: "LinkedIn Ads", Percentage: 30, Color: "#22c55e", Amount: 300000},
		{Name: "Contenido/SEO", Percentage: 25, Color: "#f59e0b", Amount: 250000},
		{Name: "Email Marketing", Percentage: 10, Color: "#8b5cf6", Amount: 100000},
	}
	assert.Equal(t, expected, report.Allocation)
}

func TestEngine_Analyze_NegativeROIAndZeroLeads(t *testing.T) {
	e := NewDefault()
	profile := createTestProfile(IndustryRestaurants, 400000, []string{ChannelNoneCurrently}, nil, GoalIncreaseSales)

	report := e.Analyze(profile)

	a := report.Analysis
	assert.Equal(t, 0.0, a.ChannelEfficiency)
	assert.Equal(t, 0, a.EfficiencyPct)
	assert.Equal(t, 48, a.StrategicScore) // 30 + 12.5 + 0 + 5
	assert.Equal(t, UrgencyMedium, a.UrgencyLevel)

	m := report.Metrics
	require.True(t, m.Available)
	require.NotNil(t, m.LeadCost)
	assert.Equal(t, int64(0), *m.ProjectedLeads)
	assert.Equal(t, int64(0), *m.LeadCost)
	assert.Equal(t, int64(0), *m.ProjectedRevenue)
	assert.Equal(t, int64(-100), *m.ProjectedROIPct)
	assert.Equal(t, int64(-82), *m.PotentialROIPct)
	assert.Equal(t, int64(18), *m.ROIGapPct)

	require.Len(t, report.Recommendations, 2)
	assert.Equal(t, "Optimize your channel mix", report.Recommendations[0].Title)
	assert.Contains(t, report.Recommendations[0].Description, "Instagram Ads, Facebook Ads, Google My Business")
	assert.Equal(t, "Consider increasing investment", report.Recommendations[1].Title)
	assert.Contains(t, report.Recommendations[1].Description, "0 leads")
}

func TestEngine_Analyze_Deterministic(t *testing.T) {
	e := NewDefault()
	profile := createTestProfile(IndustryEcommerce, 1200000, []string{"Google Ads", "SEO"}, []string{}, GoalIncreaseSales)

	first, err := json.Marshal(e.Analyze(profile))
	require.NoError(t, err)
	second, err := json.Marshal(e.Analyze(profile))
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))

	report := e.Analyze(profile)
	assert.Equal(t, 64, report.Analysis.StrategicScore) // 30 + 18.75 + 10 + 5 = 63.75
	assert.Equal(t, 38, report.Analysis.EfficiencyPct)
	assert.Equal(t, 1.0, *report.Metrics.ConversionRatePct)
	assert.Equal(t, int64(17), *report.Metrics.ProjectedLeads)
	assert.Equal(t, int64(-84), *report.Metrics.ProjectedROIPct)
}

func TestEngine_Analyze_UnknownIndustryFallsBack(t *testing.T) {
	e := NewDefault()
	channels := []string{"Google Ads", "SEO"}

	unknown := e.Analyze(createTestProfile("Nonexistent Sector", 900000, channels, nil, GoalGenerateLeads))
	fallback := e.Analyze(createTestProfile(DefaultIndustry, 900000, channels, nil, GoalGenerateLeads))

	require.Equal(t, StatusOK, unknown.Status)
	assert.Equal(t, DefaultIndustry, unknown.Benchmark.Industry)
	assert.Equal(t, fallback.Analysis.StrategicScore, unknown.Analysis.StrategicScore)
	assert.Equal(t, fallback.Analysis.EfficiencyPct, unknown.Analysis.EfficiencyPct)
	assert.Equal(t, fallback.Metrics, unknown.Metrics)
	assert.Equal(t, 100, unknown.Allocation.Total())
}

func TestEngine_Analyze_RecoversFromPanic(t *testing.T) {
	var e *Engine

	report := e.Analyze(createTestProfile(IndustryRetail, 500000, nil, nil, ""))

	assert.Equal(t, StatusUnavailable, report.Status)
	assert.Contains(t, report.Error, "analysis unavailable")
	assert.Equal(t, "Acme", report.BusinessName)
	assert.Nil(t, report.Analysis)
}

func TestEngine_MetricsSerializeUnavailableAsNull(t *testing.T) {
	e := NewDefault()
	report := e.Analyze(createZeroBudgetProfile())

	data, err := json.Marshal(report.Metrics)
	require.NoError(t, err)

	assert.Contains(t, string(data), `"projectedRoiPct":null`)
	assert.Contains(t, string(data), `"leadCost":null`)
	assert.NotContains(t, string(data), `"leadCost":0`)
}

// ==========================
// Property Tests
// ==========================

func TestEngine_InvariantsAcrossInputGrid(t *testing.T) {
	e := NewDefault()
	industries := append(Industries(), "Otro", "")
	budgets := []int64{0, 1, 150000, 299999, 300000, 499999, 500000, 799999, 800000, 1499999, 1500000, 5000000, 90000000}
	channelSets := [][]string{
		nil,
		{ChannelNoneCurrently},
		{"Google Ads"},
		{"Google Ads", "Facebook Ads", "Instagram Ads", "LinkedIn Ads", "SEO", "Email Marketing"},
	}
	challengeSets := [][]string{
		nil,
		{ChallengeCantMeasure},
		{ChallengeCantMeasure, ChallengePoorLeadQuality, ChallengeInconsistentContent, ChallengeLimitedBudget, ChallengeUnclearChannels},
	}
	goals := []string{GoalIncreaseSales, GoalBrandAwareness, "otro objetivo"}

	for _, industry := range industries {
		for _, budget := range budgets {
			for _, channels := range channelSets {
				for _, challenges := range challengeSets {
					for _, goal := range goals {
						profile := createTestProfile(industry, budget, channels, challenges, goal)
						report := e.Analyze(profile)

						require.Equal(t, StatusOK, report.Status)
						a := report.Analysis
						if budget > 0 {
							assert.GreaterOrEqual(t, a.StrategicScore, 15)
							assert.LessOrEqual(t, a.StrategicScore, 85)
						}
						assert.GreaterOrEqual(t, a.EfficiencyPct, 0)
						assert.LessOrEqual(t, a.EfficiencyPct, 100)
						assert.GreaterOrEqual(t, a.GrowthPotentialPct, 0)
						assert.LessOrEqual(t, a.GrowthPotentialPct, 100)
						assert.Equal(t, budget > 0, a.HasBudget)
						assert.Equal(t, 100, report.Allocation.Total(), "allocation for %s/%d", industry, budget)
						assert.LessOrEqual(t, len(report.Recommendations), 4)
						assert.Len(t, report.Roadmap, len(report.Recommendations))
					}
				}
			}
		}
	}
}

func TestEngine_RecommendationCap(t *testing.T) {
	e := NewDefault()
	profile := createTestProfile(IndustryTechnology, 100000, nil, []string{
		ChallengeCantMeasure,
		ChallengePoorLeadQuality,
		ChallengeInconsistentContent,
		ChallengeLimitedBudget,
		ChallengeUnclearChannels,
	}, GoalIncreaseSales)

	report := e.Analyze(profile)

	assert.Equal(t, 30, report.Analysis.StrategicScore) // (30 + 7.5 + 0 + 5) * 0.7 = 29.75
	titles := make([]string, 0, len(report.Recommendations))
	for _, r := range report.Recommendations {
		titles = append(titles, r.Title)
	}
	assert.Equal(t, []string{
		"Urgent strategic restructuring",
		"Implement results measurement",
		"Optimize your channel mix",
		"Consider increasing investment",
	}, titles)
}

// internal/engine/recommendations.go
package engine

import (
	"fmt"
	"strings"
)

const TitleDefineBudget = "Define your marketing budget"

// rankRule appends at most one recommendation. Rule order is the ranking.
type rankRule func(e *Engine, in rankInput) (Recommendation, bool)

type rankInput struct {
	profile   BusinessProfile
	analysis  AnalysisResult
	metrics   MarketingMetrics
	benchmark IndustryBenchmark
}

var rankRules = []rankRule{
	ruleRestructure,
	ruleMeasurement,
	ruleChannelMix,
	ruleIncreaseInvestment,
	ruleLeadQualification,
	ruleContentSystem,
}

// RankRecommendations evaluates the rules in priority order and keeps the
// first RecommendationCap that fire. Later rules never reorder earlier ones.
func (e *Engine) RankRecommendations(profile BusinessProfile, analysis AnalysisResult, metrics MarketingMetrics) []Recommendation {
	if !analysis.HasBudget {
		return []Recommendation{defineBudgetRecommendation()}
	}

	in := rankInput{
		profile:   profile,
		analysis:  analysis,
		metrics:   metrics,
		benchmark: analysis.benchmarkFor(profile),
	}

	recs := make([]Recommendation, 0, e.policy.RecommendationCap)
	for _, rule := range rankRules {
		if len(recs) >= e.policy.RecommendationCap {
			break
		}
		if rec, ok := rule(e, in); ok {
			recs = append(recs, rec)
		}
	}
	return recs
}

func defineBudgetRecommendation() Recommendation {
	return Recommendation{
		Title:          TitleDefineBudget,
		Priority:       PriorityCritical,
		Description:    "Every projection depends on a monthly investment figure. Set a realistic budget, even a small one, so channels and results can be planned.",
		Timeframe:      "1 week",
		TimeframeWeeks: 1,
		ExpectedImpact: "Unlocks the full analysis and budget plan",
		Effort:         "Low",
		ActionItems: []string{
			"Review last quarter's marketing spend",
			"Set a fixed monthly amount for the next 3 months",
			"Reserve 10-15% of it for testing new channels",
		},
	}
}

func ruleRestructure(e *Engine, in rankInput) (Recommendation, bool) {
	if in.analysis.StrategicScore >= e.policy.RestructureScoreBelow {
		return Recommendation{}, false
	}
	return Recommendation{
		Title:          "Urgent strategic restructuring",
		Priority:       PriorityCritical,
		Description:    fmt.Sprintf("A strategic score of %d shows the current approach is not producing results. Rebuild the plan around fewer, better-aligned channels.", in.analysis.StrategicScore),
		Timeframe:      "2-4 weeks",
		TimeframeWeeks: 4,
		ExpectedImpact: "Stops budget waste and sets a measurable baseline",
		Effort:         "High",
		ActionItems: []string{
			"Audit every active channel against its cost and results",
			"Pause campaigns without measurable return",
			"Define one primary KPI per channel",
		},
	}, true
}

func ruleMeasurement(_ *Engine, in rankInput) (Recommendation, bool) {
	if !contains(in.profile.CurrentChallenges, ChallengeCantMeasure) {
		return Recommendation{}, false
	}
	return Recommendation{
		Title:          "Implement results measurement",
		Priority:       PriorityCritical,
		Description:    "Without measurement every other decision is a guess. Instrument conversions before scaling investment.",
		Timeframe:      "1-2 weeks",
		TimeframeWeeks: 2,
		ExpectedImpact: "Visibility over cost per lead and ROI for every channel",
		Effort:         "Medium",
		ActionItems: []string{
			"Install Google Analytics 4 with conversion events",
			"Add the Meta pixel and UTM parameters to every campaign",
			"Build a monthly results dashboard",
		},
	}, true
}

func ruleChannelMix(e *Engine, in rankInput) (Recommendation, bool) {
	if in.analysis.ChannelEfficiency >= e.policy.ChannelMixBelow {
		return Recommendation{}, false
	}
	missing := missingChannels(in.benchmark.OptimalChannels, in.analysis.MatchedChannels)
	return Recommendation{
		Title:          "Optimize your channel mix",
		Priority:       PriorityHigh,
		Description:    fmt.Sprintf("The channels that perform best for %s are %s. Shift investment towards them.", in.benchmark.Industry, strings.Join(missing, ", ")),
		Timeframe:      "1 month",
		TimeframeWeeks: 4,
		ExpectedImpact: "Higher conversion from the same budget",
		Effort:         "Medium",
		ActionItems:    channelActions(missing),
	}, true
}

func ruleIncreaseInvestment(e *Engine, in rankInput) (Recommendation, bool) {
	if e.band(in.profile.MonthlyBudget) != bandLow || !contains(e.policy.HighIntentGoals, in.profile.PrimaryGoal) {
		return Recommendation{}, false
	}
	desc := "Your sales goal needs more reach than the current budget can buy."
	if in.metrics.ProjectedLeads != nil {
		desc = fmt.Sprintf("At the current budget the projection is %d leads per month, which limits how fast sales can grow.", *in.metrics.ProjectedLeads)
	}
	return Recommendation{
		Title:          "Consider increasing investment",
		Priority:       PriorityHigh,
		Description:    desc,
		Timeframe:      "1-3 months",
		TimeframeWeeks: 12,
		ExpectedImpact: "More qualified traffic and faster sales growth",
		Effort:         "Low",
		ActionItems: []string{
			"Raise the budget gradually in 20% steps",
			"Reinvest part of the new revenue into the best channel",
			"Review cost per lead every two weeks",
		},
	}, true
}

func ruleLeadQualification(_ *Engine, in rankInput) (Recommendation, bool) {
	if !contains(in.profile.CurrentChallenges, ChallengePoorLeadQuality) {
		return Recommendation{}, false
	}
	return Recommendation{
		Title:          "Improve lead qualification",
		Priority:       PriorityMedium,
		Description:    "Low-quality leads consume sales time. Qualify them before they reach the team.",
		Timeframe:      "2-4 weeks",
		TimeframeWeeks: 4,
		ExpectedImpact: "Higher close rate and lower real cost per customer",
		Effort:         "Medium",
		ActionItems: []string{
			"Add qualifying questions to lead forms",
			"Define a lead scoring model with sales",
			"Exclude non-converting audiences from campaigns",
		},
	}, true
}

func ruleContentSystem(_ *Engine, in rankInput) (Recommendation, bool) {
	if !contains(in.profile.CurrentChallenges, ChallengeInconsistentContent) {
		return Recommendation{}, false
	}
	return Recommendation{
		Title:          "Systematize content production",
		Priority:       PriorityMedium,
		Description:    "Irregular publishing erodes reach. A fixed editorial calendar keeps the audience engaged.",
		Timeframe:      "1-2 months",
		TimeframeWeeks: 8,
		ExpectedImpact: "Steady organic reach and brand recall",
		Effort:         "Medium",
		ActionItems: []string{
			"Plan a monthly editorial calendar",
			"Batch-produce content one week ahead",
			"Reuse each piece across at least two channels",
		},
	}, true
}

func missingChannels(optimal, matched []string) []string {
	out := make([]string, 0, len(optimal))
	for _, o := range optimal {
		if !contains(matched, o) {
			out = append(out, o)
		}
	}
	return out
}

func channelActions(missing []string) []string {
	actions := make([]string, 0, len(missing)+1)
	for _, ch := range missing {
		actions = append(actions, "Launch a test campaign on "+ch)
	}
	return append(actions, "Compare cost per lead across channels after 30 days")
}

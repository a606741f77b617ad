// internal/engine/analysis.go
package engine

import (
	"fmt"
	"math"
)

const (
	colorRed    = "red"
	colorOrange = "orange"
	colorGreen  = "green"
)

// ComputeAnalysis derives the strategic score and its categorical labels.
func (e *Engine) ComputeAnalysis(profile BusinessProfile, benchmark IndustryBenchmark) AnalysisResult {
	if profile.MonthlyBudget <= 0 {
		return e.noBudgetAnalysis()
	}
	p := e.policy

	maturity := e.digitalMaturity(profile.MonthlyBudget)
	channelEff, matched := e.channelEfficiency(profile.CurrentChannels, benchmark.OptimalChannels)
	penalty := e.challengePenalty(profile.CurrentChallenges)
	boost := e.goalBoost(profile.PrimaryGoal)

	raw := (p.ScoreBase + maturity*p.MaturityWeight + channelEff*p.ChannelWeight + boost) * penalty
	score := clamp(int(roundHalfUp(raw)), p.ScoreFloor, p.ScoreCeiling)

	efficiency := clamp(int(roundHalfUp(maturity*channelEff*penalty*100)), 0, 100)
	growth := clamp(p.GrowthCeiling-efficiency, 0, 100)

	urgency := e.classifyUrgency(score)
	category, budgetInsight := e.budgetCategory(profile.MonthlyBudget)

	return AnalysisResult{
		StrategicScore:     score,
		UrgencyLevel:       urgency,
		RiskLevel:          riskFor(urgency),
		ScoreColor:         colorFor(urgency),
		EfficiencyPct:      efficiency,
		GrowthPotentialPct: growth,
		DigitalMaturity:    maturity,
		ChannelEfficiency:  channelEff,
		ChallengePenalty:   penalty,
		MatchedChannels:    matched,
		BudgetCategory:     category,
		BudgetInsight:      budgetInsight,
		InsightText:        insightFor(urgency, score, efficiency, len(matched), benchmark.Industry),
		HasBudget:          true,
		benchmark:          &benchmark,
	}
}

func (e *Engine) noBudgetAnalysis() AnalysisResult {
	category, budgetInsight := e.budgetCategory(0)
	return AnalysisResult{
		StrategicScore:     e.policy.NoBudgetScore,
		UrgencyLevel:       UrgencyCritical,
		RiskLevel:          RiskHigh,
		ScoreColor:         colorRed,
		EfficiencyPct:      0,
		GrowthPotentialPct: clamp(e.policy.GrowthCeiling, 0, 100),
		MatchedChannels:    []string{},
		BudgetCategory:     category,
		BudgetInsight:      budgetInsight,
		InsightText:        "Without a defined monthly budget no projection can be made. Define an investment amount to unlock the full analysis.",
		HasBudget:          false,
	}
}

// digitalMaturity is a step function of the budget, non-decreasing across tiers.
func (e *Engine) digitalMaturity(budget int64) float64 {
	for _, tier := range e.policy.MaturityTiers {
		if budget < tier.Below {
			return clampFloat(tier.Factor, 0.01, 1)
		}
	}
	return clampFloat(e.policy.MaturityTopFactor, 0.01, 1)
}

// channelEfficiency counts distinct optimal channels in use, normalised by the
// target count and capped at 1. Matches are returned in benchmark order.
func (e *Engine) channelEfficiency(current, optimal []string) (float64, []string) {
	inUse := make(map[string]struct{}, len(current))
	for _, c := range current {
		n := normalize(c)
		if n == "" || n == normalize(ChannelNoneCurrently) {
			continue
		}
		inUse[n] = struct{}{}
	}

	matched := make([]string, 0, len(optimal))
	for _, o := range optimal {
		if _, ok := inUse[normalize(o)]; ok {
			matched = append(matched, o)
		}
	}

	eff := float64(len(matched)) / float64(e.policy.OptimalChannelTarget)
	return clampFloat(eff, 0, 1), matched
}

func (e *Engine) challengePenalty(challenges []string) float64 {
	p := e.policy
	penalty := 1.0
	if containsAny(challenges, p.CriticalChallenges) {
		penalty -= p.CriticalChallengePenalty
	}
	if countDistinct(challenges) > p.ChallengeOverloadThreshold {
		penalty -= p.ChallengeOverloadPenalty
	}
	return clampFloat(penalty, p.PenaltyFloor, 1)
}

func (e *Engine) goalBoost(goal string) float64 {
	if contains(e.policy.HighIntentGoals, goal) {
		return e.policy.GoalBoost
	}
	return 0
}

func (e *Engine) classifyUrgency(score int) UrgencyLevel {
	switch {
	case score < e.policy.HighUrgencyBelow:
		return UrgencyHigh
	case score < e.policy.MediumUrgencyBelow:
		return UrgencyMedium
	default:
		return UrgencyLow
	}
}

func riskFor(u UrgencyLevel) RiskLevel {
	switch u {
	case UrgencyCritical, UrgencyHigh:
		return RiskHigh
	case UrgencyMedium:
		return RiskMedium
	default:
		return RiskLow
	}
}

func colorFor(u UrgencyLevel) string {
	switch u {
	case UrgencyCritical, UrgencyHigh:
		return colorRed
	case UrgencyMedium:
		return colorOrange
	default:
		return colorGreen
	}
}

func (e *Engine) budgetCategory(budget int64) (string, string) {
	switch {
	case budget <= 0:
		return "Undefined budget", "No monthly budget was provided, so channel investment cannot be planned yet."
	case budget < e.policy.LowBudgetBelow:
		return "Limited budget", "Your budget is below the industry average. Focus on organic and low-cost channels first."
	case budget < e.policy.MediumBudgetBelow:
		return "Moderate budget", "You have a healthy budget to test different channels. Consider a mixed strategy."
	default:
		return "Robust budget", "Your budget supports an integrated multi-channel strategy with premium tooling."
	}
}

func insightFor(u UrgencyLevel, score, efficiency, matches int, industry string) string {
	switch u {
	case UrgencyHigh:
		return fmt.Sprintf("Strategic score %d/100: your marketing needs immediate attention. Only %d of the channels proven for %s are active and execution efficiency is %d%%.",
			score, matches, industry, efficiency)
	case UrgencyMedium:
		return fmt.Sprintf("Strategic score %d/100: a solid base with clear room to grow. You use %d optimal channel(s) for %s at %d%% efficiency.",
			score, matches, industry, efficiency)
	default:
		return fmt.Sprintf("Strategic score %d/100: a strong position. %d optimal channel(s) for %s are active at %d%% efficiency; scale what already works.",
			score, matches, industry, efficiency)
	}
}

// roundHalfUp rounds .5 towards positive infinity. The epsilon absorbs
// binary representation error such as 58.99999999999999.
func roundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5 + 1e-9)
}

func round1(x float64) float64 {
	return roundHalfUp(x*10) / 10
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func contains(list []string, value string) bool {
	v := normalize(value)
	for _, item := range list {
		if normalize(item) == v {
			return true
		}
	}
	return false
}

func containsAny(values, targets []string) bool {
	for _, v := range values {
		if contains(targets, v) {
			return true
		}
	}
	return false
}

func countDistinct(values []string) int {
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		if n := normalize(v); n != "" {
			seen[n] = struct{}{}
		}
	}
	return len(seen)
}

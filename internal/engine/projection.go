// internal/engine/projection.go
package engine

import "math"

type funnel struct {
	adSpend   float64
	clicks    int64
	convRate  float64
	leads     int64
	leadCost  int64
	customers int64
	revenue   int64
	roiPct    int64
}

// ComputeMetrics projects the monthly funnel. Without a budget every field is
// left nil rather than zero.
func (e *Engine) ComputeMetrics(profile BusinessProfile, analysis AnalysisResult) MarketingMetrics {
	if !analysis.HasBudget || profile.MonthlyBudget <= 0 {
		return MarketingMetrics{Available: false}
	}

	benchmark := analysis.benchmarkFor(profile)
	projected := e.projectFunnel(profile.MonthlyBudget, analysis.EfficiencyPct, benchmark)
	potential := e.projectFunnel(profile.MonthlyBudget, 100, benchmark)

	adSpend := saturateInt64(roundHalfUp(projected.adSpend))
	gap := potential.roiPct - projected.roiPct

	return MarketingMetrics{
		Available:         true,
		AdSpend:           &adSpend,
		Clicks:            &projected.clicks,
		ConversionRatePct: &projected.convRate,
		ProjectedLeads:    &projected.leads,
		LeadCost:          &projected.leadCost,
		BenchmarkLeadCost: &benchmark.BaseCostPerLead,
		NewCustomers:      &projected.customers,
		ProjectedRevenue:  &projected.revenue,
		ProjectedROIPct:   &projected.roiPct,
		PotentialROIPct:   &potential.roiPct,
		ROIGapPct:         &gap,
	}
}

func (e *Engine) projectFunnel(budget int64, efficiencyPct int, benchmark IndustryBenchmark) funnel {
	p := e.policy
	var f funnel

	f.adSpend = float64(budget) * p.AdSpendRatio
	f.clicks = saturateInt64(math.Floor(f.adSpend / float64(p.CostPerClick)))

	eff := clampFloat(float64(efficiencyPct)/100, 0, 1)
	f.convRate = round1(benchmark.BaseConversionRate * eff)

	f.leads = saturateInt64(roundHalfUp(float64(f.clicks) * f.convRate / 100))
	if f.leads > 0 {
		f.leadCost = saturateInt64(roundHalfUp(f.adSpend / float64(f.leads)))
	}

	f.customers = saturateInt64(roundHalfUp(float64(f.leads) * p.CloseRate))
	revenue := float64(f.customers) * float64(benchmark.AvgTicketValue)
	f.revenue = saturateInt64(revenue)

	if budget > 0 {
		f.roiPct = saturateInt64(roundHalfUp((revenue - float64(budget)) / float64(budget) * 100))
	}
	return f
}

// saturateInt64 converts x, pinning it to the int64 range instead of wrapping.
func saturateInt64(x float64) int64 {
	switch {
	case math.IsNaN(x):
		return 0
	case x >= math.MaxInt64:
		return math.MaxInt64
	case x <= math.MinInt64:
		return math.MinInt64
	default:
		return int64(x)
	}
}

// internal/engine/models.go
package engine

// BusinessProfile is the questionnaire submission. TargetAudience, Timeframe
// and Email are carried for display only and never enter a computation.
type BusinessProfile struct {
	BusinessName      string   `json:"businessName"`
	Industry          string   `json:"industry"`
	MonthlyBudget     int64    `json:"monthlyBudget"`
	PrimaryGoal       string   `json:"primaryGoal"`
	TargetAudience    string   `json:"targetAudience"`
	CurrentChannels   []string `json:"currentChannels"`
	CurrentChallenges []string `json:"currentChallenges"`
	Timeframe         string   `json:"timeframe"`
	Email             string   `json:"email"`
}

type CompetitionLevel string

const (
	CompetitionLow      CompetitionLevel = "Low"
	CompetitionMedium   CompetitionLevel = "Medium"
	CompetitionHigh     CompetitionLevel = "High"
	CompetitionVeryHigh CompetitionLevel = "VeryHigh"
)

type IndustryBenchmark struct {
	Industry           string           `json:"industry"`
	BaseConversionRate float64          `json:"baseConversionRate"`
	AvgTicketValue     int64            `json:"avgTicketValue"`
	BaseCostPerClick   int64            `json:"baseCostPerClick"`
	BaseCostPerLead    int64            `json:"baseCostPerLead"`
	CompetitionLevel   CompetitionLevel `json:"competitionLevel"`
	OptimalChannels    []string         `json:"optimalChannels"`
}

type UrgencyLevel string

const (
	UrgencyCritical UrgencyLevel = "Critical"
	UrgencyHigh     UrgencyLevel = "High"
	UrgencyMedium   UrgencyLevel = "Medium"
	UrgencyLow      UrgencyLevel = "Low"
)

type RiskLevel string

const (
	RiskHigh   RiskLevel = "High"
	RiskMedium RiskLevel = "Medium"
	RiskLow    RiskLevel = "Low"
)

type AnalysisResult struct {
	StrategicScore     int          `json:"strategicScore"`
	UrgencyLevel       UrgencyLevel `json:"urgencyLevel"`
	RiskLevel          RiskLevel    `json:"riskLevel"`
	ScoreColor         string       `json:"scoreColor"`
	EfficiencyPct      int          `json:"efficiencyPct"`
	GrowthPotentialPct int          `json:"growthPotentialPct"`
	DigitalMaturity    float64      `json:"digitalMaturity"`
	ChannelEfficiency  float64      `json:"channelEfficiency"`
	ChallengePenalty   float64      `json:"challengePenalty"`
	MatchedChannels    []string     `json:"matchedChannels"`
	BudgetCategory     string       `json:"budgetCategory"`
	BudgetInsight      string       `json:"budgetInsight"`
	InsightText        string       `json:"insightText"`
	HasBudget          bool         `json:"hasBudget"`

	// benchmark is the row the score was computed against; later stages
	// project from the same row.
	benchmark *IndustryBenchmark
}

func (a AnalysisResult) benchmarkFor(profile BusinessProfile) IndustryBenchmark {
	if a.benchmark != nil {
		return *a.benchmark
	}
	return Lookup(profile.Industry)
}

// MarketingMetrics uses pointers so that "not computable" (nil, JSON null)
// stays distinct from a computed zero.
type MarketingMetrics struct {
	Available         bool     `json:"available"`
	AdSpend           *int64   `json:"adSpend"`
	Clicks            *int64   `json:"clicks"`
	ConversionRatePct *float64 `json:"conversionRatePct"`
	ProjectedLeads    *int64   `json:"projectedLeads"`
	LeadCost          *int64   `json:"leadCost"`
	BenchmarkLeadCost *int64   `json:"benchmarkLeadCost"`
	NewCustomers      *int64   `json:"newCustomers"`
	ProjectedRevenue  *int64   `json:"projectedRevenue"`
	ProjectedROIPct   *int64   `json:"projectedRoiPct"`
	PotentialROIPct   *int64   `json:"potentialRoiPct"`
	ROIGapPct         *int64   `json:"roiGapPct"`
}

type AllocationEntry struct {
	Name       string `json:"name"`
	Percentage int    `json:"percentage"`
	Color      string `json:"color"`
	Amount     int64  `json:"amount"`
}

type BudgetAllocation []AllocationEntry

// Total returns the sum of all percentages.
func (a BudgetAllocation) Total() int {
	total := 0
	for _, e := range a {
		total += e.Percentage
	}
	return total
}

type Priority string

const (
	PriorityCritical Priority = "Critical"
	PriorityHigh     Priority = "High"
	PriorityMedium   Priority = "Medium"
	PriorityLow      Priority = "Low"
)

type Recommendation struct {
	Title          string   `json:"title"`
	Priority       Priority `json:"priority"`
	Description    string   `json:"description"`
	Timeframe      string   `json:"timeframe"`
	TimeframeWeeks int      `json:"timeframeWeeks"`
	ExpectedImpact string   `json:"expectedImpact"`
	Effort         string   `json:"effort"`
	ActionItems    []string `json:"actionItems"`
}

type RoadmapStep struct {
	Phase          string         `json:"phase"`
	Period         string         `json:"period"`
	Recommendation Recommendation `json:"recommendation"`
}

type ReportStatus string

const (
	StatusOK          ReportStatus = "ok"
	StatusUnavailable ReportStatus = "unavailable"
)

type Report struct {
	Status          ReportStatus       `json:"status"`
	Error           string             `json:"error,omitempty"`
	BusinessName    string             `json:"businessName"`
	Benchmark       *IndustryBenchmark `json:"benchmark,omitempty"`
	Analysis        *AnalysisResult    `json:"analysis,omitempty"`
	Metrics         *MarketingMetrics  `json:"metrics,omitempty"`
	Allocation      BudgetAllocation   `json:"allocation,omitempty"`
	Recommendations []Recommendation   `json:"recommendations,omitempty"`
	Roadmap         []RoadmapStep      `json:"roadmap,omitempty"`
}

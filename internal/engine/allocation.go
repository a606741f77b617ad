// internal/engine/allocation.go
package engine

type budgetBand int

const (
	bandLow budgetBand = iota
	bandMedium
	bandHigh
)

func (b budgetBand) String() string {
	switch b {
	case bandLow:
		return "low"
	case bandMedium:
		return "medium"
	default:
		return "high"
	}
}

type allocationRow struct {
	name string
	pct  int
}

// allocationRule matches an industry, optionally restricted to some budget
// bands and to one goal. Rules are evaluated top to bottom.
type allocationRule struct {
	industry string
	bands    []budgetBand
	goal     string
	rows     []allocationRow
}

var palette = []string{"#0ea5e9", "#22c55e", "#f59e0b", "#8b5cf6", "#ef4444"}

const undefinedBudgetColor = "#94a3b8"

var allocationRules = []allocationRule{
	{
		industry: IndustryEcommerce,
		bands:    []budgetBand{bandLow},
		rows: []allocationRow{
			{"Meta Ads", 40},
			{"Email Marketing", 30},
			{"Contenido/SEO", 30},
		},
	},
	{
		industry: IndustryEcommerce,
		goal:     GoalIncreaseSales,
		rows: []allocationRow{
			{"Google Shopping", 35},
			{"Meta Ads", 30},
			{"Email Marketing", 20},
			{"Retargeting", 15},
		},
	},
	{
		industry: IndustryEcommerce,
		rows: []allocationRow{
			{"Meta Ads", 35},
			{"Google Ads", 25},
			{"Contenido/SEO", 20},
			{"Email Marketing", 20},
		},
	},
	{
		industry: IndustryProfessional,
		bands:    []budgetBand{bandLow},
		rows: []allocationRow{
			{"Contenido/SEO", 45},
			{"LinkedIn orgánico", 35},
			{"Email Marketing", 20},
		},
	},
	{
		industry: IndustryProfessional,
		bands:    []budgetBand{bandMedium},
		rows: []allocationRow{
			{"Google Ads", 40},
			{"LinkedIn Ads", 25},
			{"Contenido/SEO", 20},
			{"Email Marketing", 15},
		},
	},
	{
		industry: IndustryProfessional,
		bands:    []budgetBand{bandHigh},
		rows: []allocationRow{
			{"Google Ads", 35},
			{"LinkedIn Ads", 30},
			{"Contenido/SEO", 15},
			{"Email Marketing", 10},
			{"Herramientas/CRM", 10},
		},
	},
	{
		industry: IndustryRestaurants,
		rows: []allocationRow{
			{"Instagram Ads", 40},
			{"Facebook Ads", 25},
			{"Google My Business", 20},
			{"Apps de delivery", 15},
		},
	},
	{
		industry: IndustryTechnology,
		bands:    []budgetBand{bandMedium, bandHigh},
		rows: []allocationRow{
			{"Google Ads", 35},
			{"LinkedIn Ads", 30},
			{"Contenido/SEO", 25},
			{"Email Marketing", 10},
		},
	},
}

var genericAllocations = map[budgetBand][]allocationRow{
	bandLow: {
		{"Contenido/SEO", 40},
		{"Email Marketing", 25},
		{"Redes Sociales", 20},
		{"Herramientas", 15},
	},
	bandMedium: {
		{"Google Ads", 35},
		{"Contenido/SEO", 25},
		{"Redes Sociales", 25},
		{"Email Marketing", 15},
	},
	bandHigh: {
		{"Publicidad Digital", 40},
		{"Contenido/SEO", 20},
		{"Redes Sociales", 20},
		{"Email Marketing", 10},
		{"Herramientas/Software", 10},
	},
}

// AllocateBudget splits the monthly budget across channels. Every returned
// allocation sums to exactly 100.
func (e *Engine) AllocateBudget(profile BusinessProfile) BudgetAllocation {
	if profile.MonthlyBudget <= 0 {
		return BudgetAllocation{{Name: "Define budget", Percentage: 100, Color: undefinedBudgetColor}}
	}

	band := e.band(profile.MonthlyBudget)
	rows := genericAllocations[band]
	industry, _ := canonicalIndustry(profile.Industry)
	for _, rule := range allocationRules {
		if rule.matches(industry, band, profile.PrimaryGoal) {
			rows = rule.rows
			break
		}
	}

	out := make(BudgetAllocation, 0, len(rows))
	for i, r := range rows {
		out = append(out, AllocationEntry{
			Name:       r.name,
			Percentage: r.pct,
			Color:      palette[i%len(palette)],
			Amount:     saturateInt64(roundHalfUp(float64(profile.MonthlyBudget) * float64(r.pct) / 100)),
		})
	}
	return out
}

func (e *Engine) band(budget int64) budgetBand {
	switch {
	case budget < e.policy.LowBudgetBelow:
		return bandLow
	case budget < e.policy.MediumBudgetBelow:
		return bandMedium
	default:
		return bandHigh
	}
}

func (r allocationRule) matches(industry string, band budgetBand, goal string) bool {
	if industry == "" || r.industry != industry {
		return false
	}
	if r.goal != "" && normalize(r.goal) != normalize(goal) {
		return false
	}
	if len(r.bands) == 0 {
		return true
	}
	for _, b := range r.bands {
		if b == band {
			return true
		}
	}
	return false
}

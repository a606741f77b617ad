// internal/engine/policy.go
package engine

// Wizard values that change the engine's behaviour. Anything else is accepted
// and simply does not trigger the related rule.
const (
	GoalIncreaseSales   = "Aumentar ventas"
	GoalGenerateLeads   = "Generar más leads"
	GoalBrandAwareness  = "Mejorar visibilidad de marca"
	GoalRetainCustomers = "Fidelizar clientes"

	ChallengeCantMeasure         = "Dificultad para medir resultados"
	ChallengePoorLeadQuality     = "Leads de baja calidad"
	ChallengeInconsistentContent = "Contenido inconsistente"
	ChallengeLimitedBudget       = "Presupuesto limitado"
	ChallengeUnclearChannels     = "No sé qué canales usar"

	ChannelNoneCurrently = "Ninguno actualmente"
)

// MaturityTier maps budgets strictly below Below to Factor.
type MaturityTier struct {
	Below  int64   `json:"below" mapstructure:"below"`
	Factor float64 `json:"factor" mapstructure:"factor"`
}

// Policy holds every tunable constant of the scoring model. Zero fields are
// replaced by DefaultPolicy values when an Engine is built, except GoalBoost
// and the two challenge penalties: for those zero switches the rule off and
// only a negative value falls back. Start from DefaultPolicy to override a
// single constant.
type Policy struct {
	// projection
	AdSpendRatio float64
	CostPerClick int64
	CloseRate    float64

	// maturity, ascending by Below
	MaturityTiers     []MaturityTier
	MaturityTopFactor float64

	OptimalChannelTarget int

	CriticalChallenges         []string
	CriticalChallengePenalty   float64
	ChallengeOverloadThreshold int
	ChallengeOverloadPenalty   float64
	PenaltyFloor               float64

	HighIntentGoals []string
	GoalBoost       float64

	ScoreBase      float64
	MaturityWeight float64
	ChannelWeight  float64
	ScoreFloor     int
	ScoreCeiling   int
	NoBudgetScore  int

	GrowthCeiling int

	HighUrgencyBelow   int
	MediumUrgencyBelow int

	LowBudgetBelow    int64
	MediumBudgetBelow int64

	RecommendationCap     int
	RestructureScoreBelow int
	ChannelMixBelow       float64
}

func DefaultPolicy() Policy {
	return Policy{
		AdSpendRatio: 0.70,
		CostPerClick: 500,
		CloseRate:    0.15,

		MaturityTiers: []MaturityTier{
			{Below: 300000, Factor: 0.30},
			{Below: 800000, Factor: 0.50},
			{Below: 1500000, Factor: 0.75},
		},
		MaturityTopFactor: 1.0,

		OptimalChannelTarget: 2,

		CriticalChallenges:         []string{ChallengeCantMeasure, ChallengePoorLeadQuality},
		CriticalChallengePenalty:   0.20,
		ChallengeOverloadThreshold: 4,
		ChallengeOverloadPenalty:   0.10,
		PenaltyFloor:               0.50,

		HighIntentGoals: []string{GoalIncreaseSales},
		GoalBoost:       5,

		ScoreBase:      30,
		MaturityWeight: 25,
		ChannelWeight:  20,
		ScoreFloor:     15,
		ScoreCeiling:   85,
		NoBudgetScore:  25,

		GrowthCeiling: 70,

		HighUrgencyBelow:   40,
		MediumUrgencyBelow: 60,

		LowBudgetBelow:    500000,
		MediumBudgetBelow: 1500000,

		RecommendationCap:     4,
		RestructureScoreBelow: 40,
		ChannelMixBelow:       0.5,
	}
}

func (p Policy) withDefaults() Policy {
	d := DefaultPolicy()
	if p.AdSpendRatio <= 0 || p.AdSpendRatio > 1 {
		p.AdSpendRatio = d.AdSpendRatio
	}
	if p.CostPerClick <= 0 {
		p.CostPerClick = d.CostPerClick
	}
	if p.CloseRate <= 0 || p.CloseRate > 1 {
		p.CloseRate = d.CloseRate
	}
	if len(p.MaturityTiers) == 0 || !MonotonicTiers(p.MaturityTiers) {
		p.MaturityTiers = d.MaturityTiers
	}
	if p.MaturityTopFactor <= 0 || p.MaturityTopFactor < p.MaturityTiers[len(p.MaturityTiers)-1].Factor {
		p.MaturityTopFactor = d.MaturityTopFactor
	}
	if p.OptimalChannelTarget <= 0 {
		p.OptimalChannelTarget = d.OptimalChannelTarget
	}
	if p.CriticalChallenges == nil {
		p.CriticalChallenges = d.CriticalChallenges
	}
	if p.CriticalChallengePenalty < 0 {
		p.CriticalChallengePenalty = d.CriticalChallengePenalty
	}
	if p.ChallengeOverloadThreshold <= 0 {
		p.ChallengeOverloadThreshold = d.ChallengeOverloadThreshold
	}
	if p.ChallengeOverloadPenalty < 0 {
		p.ChallengeOverloadPenalty = d.ChallengeOverloadPenalty
	}
	if p.PenaltyFloor <= 0 || p.PenaltyFloor > 1 {
		p.PenaltyFloor = d.PenaltyFloor
	}
	if p.HighIntentGoals == nil {
		p.HighIntentGoals = d.HighIntentGoals
	}
	if p.GoalBoost < 0 {
		p.GoalBoost = d.GoalBoost
	}
	if p.ScoreBase <= 0 {
		p.ScoreBase = d.ScoreBase
	}
	if p.MaturityWeight <= 0 {
		p.MaturityWeight = d.MaturityWeight
	}
	if p.ChannelWeight <= 0 {
		p.ChannelWeight = d.ChannelWeight
	}
	if p.ScoreFloor <= 0 {
		p.ScoreFloor = d.ScoreFloor
	}
	if p.ScoreCeiling <= p.ScoreFloor {
		p.ScoreCeiling = d.ScoreCeiling
	}
	if p.NoBudgetScore <= 0 {
		p.NoBudgetScore = d.NoBudgetScore
	}
	if p.GrowthCeiling <= 0 {
		p.GrowthCeiling = d.GrowthCeiling
	}
	if p.HighUrgencyBelow <= 0 {
		p.HighUrgencyBelow = d.HighUrgencyBelow
	}
	if p.MediumUrgencyBelow <= p.HighUrgencyBelow {
		p.MediumUrgencyBelow = d.MediumUrgencyBelow
	}
	if p.LowBudgetBelow <= 0 {
		p.LowBudgetBelow = d.LowBudgetBelow
	}
	if p.MediumBudgetBelow <= p.LowBudgetBelow {
		p.MediumBudgetBelow = d.MediumBudgetBelow
	}
	if p.RecommendationCap <= 0 {
		p.RecommendationCap = d.RecommendationCap
	}
	if p.RestructureScoreBelow <= 0 {
		p.RestructureScoreBelow = d.RestructureScoreBelow
	}
	if p.ChannelMixBelow <= 0 {
		p.ChannelMixBelow = d.ChannelMixBelow
	}
	return p.clone()
}

// MonotonicTiers reports whether tiers ascend by Below with non-decreasing
// factors, which keeps digital maturity non-decreasing in the budget.
func MonotonicTiers(tiers []MaturityTier) bool {
	for i := 1; i < len(tiers); i++ {
		if tiers[i].Below < tiers[i-1].Below || tiers[i].Factor < tiers[i-1].Factor {
			return false
		}
	}
	return true
}

// clone copies the slices so the result shares no backing array with p.
func (p Policy) clone() Policy {
	p.MaturityTiers = append([]MaturityTier(nil), p.MaturityTiers...)
	p.CriticalChallenges = cloneStrings(p.CriticalChallenges)
	p.HighIntentGoals = cloneStrings(p.HighIntentGoals)
	return p
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	return append(make([]string, 0, len(s)), s...)
}

// internal/common/config/config.go
package config

import "planner-workers/internal/engine"

// Config is the main application configuration struct.
type Config struct {
	App     AppConfig               `mapstructure:"app"`
	Camunda CamundaConfig           `mapstructure:"camunda"`
	Workers map[string]WorkerConfig `mapstructure:"workers"`
	Logging LoggingConfig           `mapstructure:"logging"`
	Server  ServerConfig            `mapstructure:"server"`
	Engine  EngineConfig            `mapstructure:"engine"`
}

// --- Core App/Infrastructure Config ---
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type CamundaConfig struct {
	BrokerAddress  string `mapstructure:"broker_address"`
	MaxJobsActive  int    `mapstructure:"max_jobs_active"`
	Timeout        int    `mapstructure:"timeout"`         // milliseconds
	RequestTimeout int    `mapstructure:"request_timeout"` // milliseconds
	ConnectRetries int    `mapstructure:"connect_retries"`
}

// WorkerConfig holds the core settings applicable to every worker.
type WorkerConfig struct {
	Enabled       bool `mapstructure:"enabled"`
	MaxJobsActive int  `mapstructure:"max_jobs_active"`
	Timeout       int  `mapstructure:"timeout"` // milliseconds
	MaxRetries    int  `mapstructure:"max_retries"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}

// ServerConfig is the health and metrics listener.
type ServerConfig struct {
	Port            int `mapstructure:"port"`
	ShutdownTimeout int `mapstructure:"shutdown_timeout"` // milliseconds
}

// EngineConfig mirrors engine.Policy. Anything left at zero keeps the
// engine default. The boost and penalties are pointers so an explicit 0
// switches the rule off.
type EngineConfig struct {
	Projection struct {
		AdSpendRatio float64 `mapstructure:"ad_spend_ratio"`
		CostPerClick int64   `mapstructure:"cost_per_click"`
		CloseRate    float64 `mapstructure:"close_rate"`
	} `mapstructure:"projection"`

	Maturity struct {
		Tiers     []engine.MaturityTier `mapstructure:"tiers"`
		TopFactor float64               `mapstructure:"top_factor"`
	} `mapstructure:"maturity"`

	Channels struct {
		OptimalTarget int     `mapstructure:"optimal_target"`
		MixBelow      float64 `mapstructure:"mix_below"`
	} `mapstructure:"channels"`

	Challenges struct {
		Critical          []string `mapstructure:"critical"`
		CriticalPenalty   *float64 `mapstructure:"critical_penalty"`
		OverloadThreshold int      `mapstructure:"overload_threshold"`
		OverloadPenalty   *float64 `mapstructure:"overload_penalty"`
		PenaltyFloor      float64  `mapstructure:"penalty_floor"`
	} `mapstructure:"challenges"`

	Goals struct {
		HighIntent []string `mapstructure:"high_intent"`
		Boost      *float64 `mapstructure:"boost"`
	} `mapstructure:"goals"`

	Score struct {
		Base           float64 `mapstructure:"base"`
		MaturityWeight float64 `mapstructure:"maturity_weight"`
		ChannelWeight  float64 `mapstructure:"channel_weight"`
		Floor          int     `mapstructure:"floor"`
		Ceiling        int     `mapstructure:"ceiling"`
		NoBudget       int     `mapstructure:"no_budget"`
		GrowthCeiling  int     `mapstructure:"growth_ceiling"`
	} `mapstructure:"score"`

	Urgency struct {
		HighBelow   int `mapstructure:"high_below"`
		MediumBelow int `mapstructure:"medium_below"`
	} `mapstructure:"urgency"`

	Budget struct {
		LowBelow    int64 `mapstructure:"low_below"`
		MediumBelow int64 `mapstructure:"medium_below"`
	} `mapstructure:"budget"`

	Recommendations struct {
		Cap                   int `mapstructure:"cap"`
		RestructureScoreBelow int `mapstructure:"restructure_score_below"`
	} `mapstructure:"recommendations"`
}

// Policy maps the section onto the engine's policy. engine.New fills the
// zero fields; unset pointers take the DefaultPolicy value.
func (c *EngineConfig) Policy() engine.Policy {
	d := engine.DefaultPolicy()
	return engine.Policy{
		AdSpendRatio: c.Projection.AdSpendRatio,
		CostPerClick: c.Projection.CostPerClick,
		CloseRate:    c.Projection.CloseRate,

		MaturityTiers:     c.Maturity.Tiers,
		MaturityTopFactor: c.Maturity.TopFactor,

		OptimalChannelTarget: c.Channels.OptimalTarget,
		ChannelMixBelow:      c.Channels.MixBelow,

		CriticalChallenges:         c.Challenges.Critical,
		CriticalChallengePenalty:   valueOr(c.Challenges.CriticalPenalty, d.CriticalChallengePenalty),
		ChallengeOverloadThreshold: c.Challenges.OverloadThreshold,
		ChallengeOverloadPenalty:   valueOr(c.Challenges.OverloadPenalty, d.ChallengeOverloadPenalty),
		PenaltyFloor:               c.Challenges.PenaltyFloor,

		HighIntentGoals: c.Goals.HighIntent,
		GoalBoost:       valueOr(c.Goals.Boost, d.GoalBoost),

		ScoreBase:      c.Score.Base,
		MaturityWeight: c.Score.MaturityWeight,
		ChannelWeight:  c.Score.ChannelWeight,
		ScoreFloor:     c.Score.Floor,
		ScoreCeiling:   c.Score.Ceiling,
		NoBudgetScore:  c.Score.NoBudget,
		GrowthCeiling:  c.Score.GrowthCeiling,

		HighUrgencyBelow:   c.Urgency.HighBelow,
		MediumUrgencyBelow: c.Urgency.MediumBelow,

		LowBudgetBelow:    c.Budget.LowBelow,
		MediumBudgetBelow: c.Budget.MediumBelow,

		RecommendationCap:     c.Recommendations.Cap,
		RestructureScoreBelow: c.Recommendations.RestructureScoreBelow,
	}
}

func valueOr(v *float64, fallback float64) float64 {
	if v == nil {
		return fallback
	}
	return *v
}

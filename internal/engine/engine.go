// internal/engine/engine.go
package engine

import "fmt"

// Engine is immutable after New and safe for concurrent use.
type Engine struct {
	policy Policy
}

func New(policy Policy) *Engine {
	return &Engine{policy: policy.withDefaults()}
}

func NewDefault() *Engine {
	return New(DefaultPolicy())
}

// Policy returns a copy of the effective policy.
func (e *Engine) Policy() Policy {
	return e.policy.clone()
}

// Analyze runs the whole pipeline. A panic inside any stage is converted into
// an unavailable report instead of reaching the caller.
func (e *Engine) Analyze(profile BusinessProfile) (report Report) {
	defer func() {
		if r := recover(); r != nil {
			report = Report{
				Status:       StatusUnavailable,
				Error:        fmt.Sprintf("analysis unavailable: %v", r),
				BusinessName: profile.BusinessName,
			}
		}
	}()

	benchmark := Lookup(profile.Industry)
	analysis := e.ComputeAnalysis(profile, benchmark)
	metrics := e.ComputeMetrics(profile, analysis)
	allocation := e.AllocateBudget(profile)
	recs := e.RankRecommendations(profile, analysis, metrics)

	return Report{
		Status:          StatusOK,
		BusinessName:    profile.BusinessName,
		Benchmark:       &benchmark,
		Analysis:        &analysis,
		Metrics:         &metrics,
		Allocation:      allocation,
		Recommendations: recs,
		Roadmap:         e.BuildRoadmap(recs),
	}
}

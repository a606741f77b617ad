// internal/engine/roadmap.go
package engine

import "sort"

var priorityRank = map[Priority]int{
	PriorityCritical: 0,
	PriorityHigh:     1,
	PriorityMedium:   2,
	PriorityLow:      3,
}

type phase struct {
	name   string
	period string
}

var phases = []phase{
	{"Phase 1: Foundation", "First 30 days"},
	{"Phase 2: Growth", "Days 31-60"},
	{"Phase 3: Optimization", "Days 61-90"},
}

const stepsPerPhase = 2

// BuildRoadmap orders recommendations into a 90-day plan: by priority, then
// shorter timeframe first, two steps per phase. recs is left untouched.
func (e *Engine) BuildRoadmap(recs []Recommendation) []RoadmapStep {
	ordered := append([]Recommendation(nil), recs...)
	sort.SliceStable(ordered, func(i, j int) bool {
		pi, pj := rankOf(ordered[i].Priority), rankOf(ordered[j].Priority)
		if pi != pj {
			return pi < pj
		}
		return ordered[i].TimeframeWeeks < ordered[j].TimeframeWeeks
	})

	steps := make([]RoadmapStep, 0, len(ordered))
	for i, rec := range ordered {
		idx := i / stepsPerPhase
		if idx >= len(phases) {
			idx = len(phases) - 1
		}
		steps = append(steps, RoadmapStep{
			Phase:          phases[idx].name,
			Period:         phases[idx].period,
			Recommendation: rec,
		})
	}
	return steps
}

func rankOf(p Priority) int {
	if r, ok := priorityRank[p]; ok {
		return r
	}
	return len(priorityRank)
}

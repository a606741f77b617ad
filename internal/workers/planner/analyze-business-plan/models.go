// internal/workers/planner/analyze-business-plan/models.go
package analyzebusinessplan

import (
	"encoding/json"

	"planner-workers/internal/engine"
)

// Input keeps the profile raw so it can be schema-checked before decoding.
type Input struct {
	Profile json.RawMessage `json:"profile"`
}

type Output struct {
	ReportID string        `json:"reportId"`
	Report   engine.Report `json:"report"`
}

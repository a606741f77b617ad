// internal/workers/planner/analyze-business-plan/activity.go
package analyzebusinessplan

import (
	"fmt"

	apperrors "planner-workers/internal/common/errors"
	"planner-workers/internal/common/validation"
	"planner-workers/pkg/registry"
)

// ProcessID is the BPMN process that calls this worker.
const ProcessID = "business-plan-analysis"

// Activity describes the worker for the activity registry.
func Activity(cfg *Config) (registry.Activity, error) {
	profileSchema, err := validation.BusinessProfileSchema()
	if err != nil {
		return registry.Activity{}, err
	}

	return registry.Activity{
		ID:                   TaskType,
		DisplayName:          "Analyze Business Plan",
		Description:          "Scores a business profile against its industry benchmark and returns metrics, budget allocation, recommendations and a 90-day roadmap",
		Category:             "planner",
		Version:              "1.0.0",
		TaskType:             TaskType,
		ImplementationStatus: registry.StatusCompleted,
		InputSchema: map[string]interface{}{
			"type":       "object",
			"required":   []string{"profile"},
			"properties": map[string]interface{}{"profile": profileSchema},
		},
		OutputSchema: map[string]interface{}{
			"type":     "object",
			"required": []string{"reportId", "report"},
			"properties": map[string]interface{}{
				"reportId": map[string]interface{}{"type": "string", "format": "uuid"},
				"report": map[string]interface{}{
					"type":     "object",
					"required": []string{"status", "businessName"},
					"properties": map[string]interface{}{
						"status":          map[string]interface{}{"type": "string", "enum": []string{"ok", "unavailable"}},
						"businessName":    map[string]interface{}{"type": "string"},
						"error":           map[string]interface{}{"type": "string"},
						"benchmark":       map[string]interface{}{"type": "object"},
						"analysis":        map[string]interface{}{"type": "object"},
						"metrics":         map[string]interface{}{"type": "object"},
						"allocation":      map[string]interface{}{"type": "array"},
						"recommendations": map[string]interface{}{"type": "array"},
						"roadmap":         map[string]interface{}{"type": "array"},
					},
				},
			},
		},
		ErrorCodes: []string{
			string(apperrors.ErrCodeProfileParse),
			string(apperrors.ErrCodeProfileValidationFailed),
			string(apperrors.ErrCodeJobCompletionFailed),
			string(apperrors.ErrCodeInternal),
		},
		Timeout:   fmt.Sprint(cfg.Timeout),
		Retries:   apperrors.GetRetryCount(apperrors.ErrCodeJobCompletionFailed),
		Workflows: []string{ProcessID},
		Tags:      []string{"scoring", "recommendations", "budget"},
	}, nil
}

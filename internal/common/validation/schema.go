package validation

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schemas/business_profile.json
var businessProfileSchema []byte

type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// ProfileValidator checks raw profile JSON against the embedded schema. The
// compiled schema is read-only, so one validator can serve every job.
type ProfileValidator struct {
	schema *gojsonschema.Schema
}

func NewProfileValidator() (*ProfileValidator, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(businessProfileSchema))
	if err != nil {
		return nil, fmt.Errorf("compile business profile schema: %w", err)
	}
	return &ProfileValidator{schema: schema}, nil
}

// Validate reports every violation in raw. An empty document is reported as
// a missing profile rather than a decode error.
func (v *ProfileValidator) Validate(raw []byte) (*ValidationResult, error) {
	if len(strings.TrimSpace(string(raw))) == 0 || strings.TrimSpace(string(raw)) == "null" {
		return &ValidationResult{
			Valid: false,
			Errors: []ValidationError{{
				Field:   "profile",
				Message: "profile is required",
				Code:    "REQUIRED",
			}},
		}, nil
	}

	result, err := v.schema.Validate(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return nil, fmt.Errorf("validate profile: %w", err)
	}

	out := &ValidationResult{Valid: result.Valid()}
	for _, desc := range result.Errors() {
		out.Errors = append(out.Errors, ValidationError{
			Field:   fieldOf(desc),
			Message: desc.Description(),
			Code:    strings.ToUpper(desc.Type()),
		})
	}
	return out, nil
}

// fieldOf names the offending property. Root-level required errors carry the
// property in their details instead of the field path.
func fieldOf(desc gojsonschema.ResultError) string {
	field := desc.Field()
	if field == "(root)" {
		if prop, ok := desc.Details()["property"].(string); ok {
			return prop
		}
	}
	return field
}

// BusinessProfileSchema returns a fresh decoded copy of the embedded schema.
func BusinessProfileSchema() (map[string]interface{}, error) {
	var schema map[string]interface{}
	if err := json.Unmarshal(businessProfileSchema, &schema); err != nil {
		return nil, fmt.Errorf("decode business profile schema: %w", err)
	}
	return schema, nil
}

func (vr *ValidationResult) GetErrorMessages() []string {
	messages := make([]string, len(vr.Errors))
	for i, err := range vr.Errors {
		messages[i] = fmt.Sprintf("%s: %s", err.Field, err.Message)
	}
	return messages
}

func (vr *ValidationResult) HasErrors(field string) bool {
	for _, err := range vr.Errors {
		if err.Field == field || strings.HasPrefix(err.Field, field+".") {
			return true
		}
	}
	return false
}

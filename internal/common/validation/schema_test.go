package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validProfile = `{
	"businessName": "Acme",
	"industry": "E-commerce",
	"monthlyBudget": 2000000,
	"primaryGoal": "Aumentar ventas",
	"targetAudience": "Adultos 25-45",
	"currentChannels": ["Google Ads", "Facebook Ads"],
	"currentChallenges": [],
	"timeframe": "3-6 meses",
	"email": "owner@acme.cl"
}`

func newTestValidator(t *testing.T) *ProfileValidator {
	t.Helper()
	v, err := NewProfileValidator()
	require.NoError(t, err)
	return v
}

func TestProfileValidator_Valid(t *testing.T) {
	v := newTestValidator(t)

	tests := []struct {
		name string
		doc  string
	}{
		{"complete profile", validProfile},
		{"zero budget", `{"businessName":"Acme","industry":"Retail","monthlyBudget":0}`},
		{"empty email", `{"businessName":"Acme","industry":"Retail","monthlyBudget":10,"email":""}`},
		{"unknown industry", `{"businessName":"Acme","industry":"Nonexistent Sector","monthlyBudget":10}`},
		{"extra fields", `{"businessName":"Acme","industry":"Retail","monthlyBudget":10,"phone":"+56 9"}`},
		{"budget at ceiling", `{"businessName":"Acme","industry":"Retail","monthlyBudget":100000000000}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := v.Validate([]byte(tt.doc))
			require.NoError(t, err)
			assert.True(t, result.Valid, "%v", result.GetErrorMessages())
			assert.Empty(t, result.Errors)
		})
	}
}

func TestProfileValidator_Invalid(t *testing.T) {
	v := newTestValidator(t)

	tests := []struct {
		name  string
		doc   string
		field string
	}{
		{"missing industry", `{"businessName":"Acme","monthlyBudget":10}`, "industry"},
		{"missing budget", `{"businessName":"Acme","industry":"Retail"}`, "monthlyBudget"},
		{"negative budget", `{"businessName":"Acme","industry":"Retail","monthlyBudget":-1}`, "monthlyBudget"},
		{"budget above ceiling", `{"businessName":"Acme","industry":"Retail","monthlyBudget":100000000001}`, "monthlyBudget"},
		{"fractional budget", `{"businessName":"Acme","industry":"Retail","monthlyBudget":12.5}`, "monthlyBudget"},
		{"budget as string", `{"businessName":"Acme","industry":"Retail","monthlyBudget":"1000"}`, "monthlyBudget"},
		{"bad email", `{"businessName":"Acme","industry":"Retail","monthlyBudget":10,"email":"not-an-email"}`, "email"},
		{"channels not strings", `{"businessName":"Acme","industry":"Retail","monthlyBudget":10,"currentChannels":[1]}`, "currentChannels"},
		{"empty name", `{"businessName":"","industry":"Retail","monthlyBudget":10}`, "businessName"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := v.Validate([]byte(tt.doc))
			require.NoError(t, err)
			assert.False(t, result.Valid)
			assert.True(t, result.HasErrors(tt.field), "errors: %v", result.GetErrorMessages())
		})
	}
}

func TestProfileValidator_MissingProfile(t *testing.T) {
	v := newTestValidator(t)

	for _, doc := range []string{"", "  ", "null"} {
		result, err := v.Validate([]byte(doc))
		require.NoError(t, err)
		assert.False(t, result.Valid)
		require.Len(t, result.Errors, 1)
		assert.Equal(t, "profile", result.Errors[0].Field)
		assert.Equal(t, "REQUIRED", result.Errors[0].Code)
	}
}

func TestProfileValidator_MalformedJSON(t *testing.T) {
	v := newTestValidator(t)

	_, err := v.Validate([]byte(`{"businessName":`))

	assert.Error(t, err)
}

func TestBusinessProfileSchema(t *testing.T) {
	schema, err := BusinessProfileSchema()
	require.NoError(t, err)

	assert.Equal(t, "object", schema["type"])
	assert.ElementsMatch(t, []interface{}{"businessName", "industry", "monthlyBudget"}, schema["required"])

	schema["type"] = "mutated"
	again, err := BusinessProfileSchema()
	require.NoError(t, err)
	assert.Equal(t, "object", again["type"])
}

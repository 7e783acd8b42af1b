package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViolation_JSONMarshaling(t *testing.T) {
	itemID := "exp-1"
	violation := Violation{
		Type:     "required",
		Severity: SeverityWarning,
		Details:  "company is required",
		Section:  "experience",
		Field:    "company",
		ItemID:   &itemID,
	}

	jsonBytes, err := json.MarshalIndent(violation, "", "  ")
	require.NoError(t, err)
	assert.Contains(t, string(jsonBytes), `"type": "required"`)
	assert.Contains(t, string(jsonBytes), `"section": "experience"`)
	assert.Contains(t, string(jsonBytes), `"item_id": "exp-1"`)
}

func TestViolation_ItemIDOmitted(t *testing.T) {
	violation := Violation{Type: "required", Section: "header", Field: "full_name"}

	jsonBytes, err := json.Marshal(violation)
	require.NoError(t, err)
	assert.NotContains(t, string(jsonBytes), "item_id")
}

func TestViolations_Count(t *testing.T) {
	var nilViolations *Violations
	assert.Equal(t, 0, nilViolations.Count())

	v := &Violations{Violations: []Violation{{Type: "required"}, {Type: "email"}}}
	assert.Equal(t, 2, v.Count())
}

package schemas

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllSchemaFiles_ValidJSON(t *testing.T) {
	schemaFiles := []string{
		"resume_document.schema.json",
	}

	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			data, err := os.ReadFile(schemaFile)
			require.NoError(t, err, "should be able to read schema file")

			var schemaObj map[string]interface{}
			require.NoError(t, json.Unmarshal(data, &schemaObj), "schema file should be valid JSON: %s", schemaFile)

			_, hasType := schemaObj["type"]
			_, hasSchema := schemaObj["$schema"]
			assert.True(t, hasType && hasSchema, "schema should declare type and $schema")
		})
	}
}

func TestResumeDocument_Embedded(t *testing.T) {
	data, err := os.ReadFile("resume_document.schema.json")
	require.NoError(t, err)

	assert.Equal(t, string(data), ResumeDocument)
}

func TestResumeDocument_CoversEverySection(t *testing.T) {
	var schemaObj struct {
		Properties map[string]json.RawMessage `json:"properties"`
	}
	require.NoError(t, json.Unmarshal([]byte(ResumeDocument), &schemaObj))

	for _, key := range []string{"header", "summary", "skills", "experience", "education", "publications", "projects", "awards"} {
		assert.Contains(t, schemaObj.Properties, key)
	}
}

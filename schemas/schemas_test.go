package schemas

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/resume-layout/internal/layout"
	"github.com/jonathan/resume-layout/internal/schemas"
	"github.com/jonathan/resume-layout/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xeipuuv/gojsonschema"
)

var schemaFiles = []string{
	"document.schema.json",
	"layout_configuration.schema.json",
	"layout_result.schema.json",
}

func TestAllSchemaFiles_ValidJSON(t *testing.T) {
	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			data, err := os.ReadFile(schemaFile)
			require.NoError(t, err, "should be able to read schema file")

			var schemaObj map[string]interface{}
			require.NoError(t, json.Unmarshal(data, &schemaObj), "schema file should be valid JSON: %s", schemaFile)

			assert.Equal(t, "http://json-schema.org/draft-07/schema#", schemaObj["$schema"])
			assert.Equal(t, "object", schemaObj["type"])
		})
	}
}

func TestAllSchemaFiles_Compile(t *testing.T) {
	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			abs, err := filepath.Abs(schemaFile)
			require.NoError(t, err)

			_, err = gojsonschema.NewSchema(gojsonschema.NewReferenceLoader("file://" + abs))
			assert.NoError(t, err)
		})
	}
}

func TestDocumentSchema_Fixtures(t *testing.T) {
	tests := []struct {
		name      string
		jsonFile  string
		wantError bool
	}{
		{name: "valid document", jsonFile: "../testdata/valid/document.json"},
		{name: "unknown section kind", jsonFile: "../testdata/invalid/document_unknown_kind.json", wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := schemas.ValidateJSON("document.schema.json", tt.jsonFile)
			if tt.wantError {
				var validationErr *schemas.ValidationError
				require.ErrorAs(t, err, &validationErr)
				assert.NotEmpty(t, validationErr.Errors)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfigurationSchema_Default(t *testing.T) {
	data, err := json.Marshal(types.DefaultLayoutConfiguration())
	require.NoError(t, err)

	assert.NoError(t, schemas.ValidateBytes("layout_configuration.schema.json", data))
}

func TestLayoutResultSchema_EngineOutput(t *testing.T) {
	raw, err := os.ReadFile("../testdata/valid/document.json")
	require.NoError(t, err)

	var doc types.Document
	require.NoError(t, json.Unmarshal(raw, &doc))

	engine, err := layout.New()
	require.NoError(t, err)

	result, err := engine.Layout(doc, types.DefaultLayoutConfiguration())
	require.NoError(t, err)

	data, err := json.Marshal(result)
	require.NoError(t, err)
	assert.NoError(t, schemas.ValidateBytes("layout_result.schema.json", data))
}

func TestLayoutResultSchema_EmptyDocument(t *testing.T) {
	engine, err := layout.New()
	require.NoError(t, err)

	result, err := engine.Layout(types.Document{}, types.DefaultLayoutConfiguration())
	require.NoError(t, err)

	data, err := json.Marshal(result)
	require.NoError(t, err)
	assert.NoError(t, schemas.ValidateBytes("layout_result.schema.json", data))
}

func TestLayoutResultSchema_RejectsUnknownElementType(t *testing.T) {
	bad := `{
		"elements": [{"type": "table", "text": "x", "x": 0, "y": 0, "width": 10, "height": 10, "font_size": 10}],
		"metrics": {
			"total_height": 10, "page_content_height": 700, "fits_one_page": true,
			"compression_level": 0, "font_size": 10, "line_height": 1.2,
			"spacing_multiplier": 1, "passes": 1
		},
		"configuration": {}
	}`

	err := schemas.ValidateBytes("layout_result.schema.json", []byte(bad))
	var validationErr *schemas.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

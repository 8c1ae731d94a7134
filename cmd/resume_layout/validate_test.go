package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/resume-layout/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDocumentCommand(t *testing.T) {
	stdout, _, err := execute(t, "validate-document", "--in", fixture(t, "valid", "document.json"))
	require.NoError(t, err)
	assert.Contains(t, stdout, "Document is valid: 5 section(s), 7 bullet(s)")
}

func TestValidateDocumentCommand_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		message string
	}{
		{name: "unknown kind", file: "document_unknown_kind.json", message: "does not match schema"},
		{name: "untitled empty section", file: "document_untitled_empty.json", message: "document is invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, "validate-document", "--in", fixture(t, "invalid", tt.file))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestValidateDocumentCommand_MissingInput(t *testing.T) {
	_, _, err := execute(t, "validate-document")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `required flag(s) "in" not set`)
}

func TestValidateLayoutCommand_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	layoutFile := filepath.Join(dir, "layout.json")
	violationsFile := filepath.Join(dir, "violations.json")

	_, _, err := execute(t, "layout", "--in", fixture(t, "valid", "document.json"), "--out", layoutFile)
	require.NoError(t, err)

	stdout, _, err := execute(t, "validate-layout", "--in", layoutFile, "--out", violationsFile)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Validation passed")

	data, err := os.ReadFile(violationsFile)
	require.NoError(t, err)
	var violations types.Violations
	require.NoError(t, json.Unmarshal(data, &violations))
	assert.Empty(t, violations.Violations)
}

func TestValidateLayoutCommand_FindsViolations(t *testing.T) {
	dir := t.TempDir()
	layoutFile := filepath.Join(dir, "layout.json")
	violationsFile := filepath.Join(dir, "violations.json")

	_, _, err := execute(t, "layout", "--in", overflowingDocument(t), "--out", layoutFile)
	require.NoError(t, err)

	stdout, _, err := execute(t, "validate-layout", "--in", layoutFile, "--out", violationsFile, "--verbose")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation found")
	assert.Contains(t, stdout, "page_overflow")

	data, err := os.ReadFile(violationsFile)
	require.NoError(t, err)
	var violations types.Violations
	require.NoError(t, json.Unmarshal(data, &violations))
	require.NotEmpty(t, violations.Violations)
	assert.Equal(t, types.ViolationPageOverflow, violations.Violations[0].Type)
}

func TestValidateLayoutCommand_NotFound(t *testing.T) {
	_, _, err := execute(t, "validate-layout", "--in", "/nonexistent/layout.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "layout file not found")
}

func TestValidateLayoutCommand_SchemaMismatch(t *testing.T) {
	bad := writeTemp(t, "layout.json", `{"elements": [], "metrics": {}}`)

	_, _, err := execute(t, "validate-layout", "--in", bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not match schema")
}

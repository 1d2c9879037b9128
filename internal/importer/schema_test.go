package importer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeImportFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadIdeaImport_JSONWithComments(t *testing.T) {
	path := writeImportFile(t, "idea.json", `{
  // exported from the planning board
  "name": "Fleet Dashboard",
  "documents": ["Proposal", "Demo",],
  "sections": [
    {"title": "Overview", "body": "Live vehicle map", "comments": 1},
  ],
}`)

	schema, err := LoadIdeaImport(path)
	require.NoError(t, err)
	assert.Equal(t, "Fleet Dashboard", schema.Name)
	assert.Equal(t, []string{"Proposal", "Demo"}, schema.Documents)
	require.Len(t, schema.Sections, 1)
	assert.Equal(t, "Live vehicle map", schema.Sections[0].Body)
	assert.Equal(t, 1, schema.Sections[0].Comments)
}

func TestLoadIdeaImport_YAML(t *testing.T) {
	path := writeImportFile(t, "idea.yml", `name: Fleet Dashboard
status: partial
sections:
  - id: overview
    title: Overview
    status: approved
    body: |
      ## Overview
      Live vehicle map.
`)

	schema, err := LoadIdeaImport(path)
	require.NoError(t, err)
	assert.Equal(t, "partial", schema.Status)
	require.Len(t, schema.Sections, 1)
	assert.Equal(t, "overview", schema.Sections[0].ID)
	assert.Equal(t, "## Overview\nLive vehicle map.\n", schema.Sections[0].Body)
	assert.Empty(t, ValidateIdeaImport(schema))
}

func TestLoadIdeaImport_Malformed(t *testing.T) {
	path := writeImportFile(t, "idea.json", `{"name": `)

	_, err := LoadIdeaImport(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing import file")
}

func TestLoadIdeaImport_MissingFile(t *testing.T) {
	_, err := LoadIdeaImport(filepath.Join(t.TempDir(), "nope.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

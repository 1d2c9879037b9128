package importer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// IdeaImport is the top-level structure of an idea import file.
type IdeaImport struct {
	Name        string          `json:"name" yaml:"name"`
	Status      string          `json:"status,omitempty" yaml:"status,omitempty"`
	Description string          `json:"description,omitempty" yaml:"description,omitempty"`
	Documents   []string        `json:"documents,omitempty" yaml:"documents,omitempty"`
	Sections    []SectionImport `json:"sections" yaml:"sections"`
}

// SectionImport defines one document section. An empty ID is derived from
// the title.
type SectionImport struct {
	ID       string `json:"id,omitempty" yaml:"id,omitempty"`
	Title    string `json:"title" yaml:"title"`
	Status   string `json:"status,omitempty" yaml:"status,omitempty"`
	Body     string `json:"body,omitempty" yaml:"body,omitempty"`
	Comments int    `json:"comments,omitempty" yaml:"comments,omitempty"`
}

// LoadIdeaImport reads an import file. Files ending in .yaml or .yml are
// parsed as YAML; anything else as JSON, where comments and trailing commas
// are tolerated.
func LoadIdeaImport(path string) (*IdeaImport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseIdeaImport(data, filepath.Ext(path))
}

// ParseIdeaImport decodes data according to the file extension ext.
func ParseIdeaImport(data []byte, ext string) (*IdeaImport, error) {
	var schema IdeaImport
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &schema); err != nil {
			return nil, fmt.Errorf("parsing import file: %w", err)
		}
	default:
		if err := json.Unmarshal(jsonc.ToJSON(data), &schema); err != nil {
			return nil, fmt.Errorf("parsing import file: %w", err)
		}
	}
	return &schema, nil
}

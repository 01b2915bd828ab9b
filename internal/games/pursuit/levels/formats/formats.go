// Package formats provides pluggable level file format parsers.
package formats

import (
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Level is a parsed level file: its map rows plus descriptive data.
type Level struct {
	ID       string
	Name     string
	Rows     []string
	Metadata map[string]string
}

// YAMLLevel represents the YAML structure for a level file.
type YAMLLevel struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	Layout   []string          `yaml:"layout"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// ParseYAML parses a YAML level file.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if yl.ID == "" {
		return Level{}, fmt.Errorf("yaml level has no id")
	}

	name := yl.Name
	if name == "" {
		name = yl.ID
	}
	return Level{
		ID:       yl.ID,
		Name:     name,
		Rows:     yl.Layout,
		Metadata: yl.Metadata,
	}, nil
}

// ParseText parses a raw text map. The ID and name come from the file name.
func ParseText(path string, data []byte) Level {
	id := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return Level{
		ID:   id,
		Name: id,
		Rows: Lines(data),
	}
}

// Lines splits text on "\n", "\r\n" or "\r". A single trailing line break
// does not produce an empty last row. Empty input yields no rows.
func Lines(data []byte) []string {
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return []string{}
	}
	return strings.Split(text, "\n")
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".txt", ".map", ".yaml", ".yml"}
}

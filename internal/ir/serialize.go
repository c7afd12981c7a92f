package ir

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ToJSON serializes a node tree to formatted JSON.
func ToJSON(root *Node) ([]byte, error) {
	return json.MarshalIndent(root, "", "  ")
}

// FromJSON deserializes a node tree from JSON.
func FromJSON(data []byte) (*Node, error) {
	root := &Node{}
	if err := json.Unmarshal(data, root); err != nil {
		return nil, fmt.Errorf("ir: invalid JSON: %w", err)
	}
	return root, nil
}

// FromYAML deserializes a node tree from YAML.
func FromYAML(data []byte) (*Node, error) {
	root := &Node{}
	if err := yaml.Unmarshal(data, root); err != nil {
		return nil, fmt.Errorf("ir: invalid YAML: %w", err)
	}
	return root, nil
}

// Decode picks JSON or YAML from the file name's extension. Unknown
// extensions are sniffed: a leading '{' means JSON.
func Decode(name string, data []byte) (*Node, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json":
		return FromJSON(data)
	case ".yaml", ".yml":
		return FromYAML(data)
	}
	if strings.HasPrefix(strings.TrimSpace(string(data)), "{") {
		return FromJSON(data)
	}
	return FromYAML(data)
}

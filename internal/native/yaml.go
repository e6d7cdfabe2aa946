// SPDX-License-Identifier: Apache-2.0

package native

import (
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"
)

// YAMLDecoder decodes native results stored as YAML.
// Multi-document streams (separated by '---') yield one result per document.
type YAMLDecoder struct{}

func NewYAMLDecoder() *YAMLDecoder {
	return &YAMLDecoder{}
}

func (d *YAMLDecoder) Name() string {
	return "yaml"
}

func (d *YAMLDecoder) CanHandle(source Source) bool {
	switch strings.ToLower(source.Format) {
	case "yaml", "yml":
		return true
	case "":
	default:
		return false
	}
	content := strings.TrimSpace(string(source.Content))
	if strings.HasPrefix(content, "---") {
		return true
	}
	// Plain YAML: key: value at the start
	return len(content) > 0 && strings.Contains(strings.SplitN(content, "\n", 2)[0], ":")
}

func (d *YAMLDecoder) Decode(_ context.Context, source Source) ([]Document, error) {
	parts := strings.Split("\n"+string(source.Content), "\n---")
	var docs []Document

	for i, part := range parts {
		if strings.TrimSpace(part) == "" {
			continue
		}
		var raw interface{}
		if err := yaml.Unmarshal([]byte(part), &raw); err != nil {
			return nil, fmt.Errorf("failed to unmarshal YAML document %d: %w", i, err)
		}
		partDocs, err := documents(raw)
		if err != nil {
			return nil, fmt.Errorf("YAML document %d: %w", i, err)
		}
		docs = append(docs, partDocs...)
	}
	return docs, nil
}

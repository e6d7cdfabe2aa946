// SPDX-License-Identifier: Apache-2.0

package native

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/docscan/recognizer-mcp/internal/recognizer"
)

var ErrRecognizerTypeMismatch = errors.New("settings belong to a different recognizer")

// EncodeSettings renders cfg in the shape the native engine reads its
// recognizer settings from.
func EncodeSettings(cfg recognizer.Configuration) ([]byte, error) {
	out, err := wire.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s settings: %w", cfg.RecognizerType(), err)
	}
	return out, nil
}

type collectionSettings struct {
	RecognizerArray      []recognizer.Configuration `json:"recognizerArray"`
	AllowMultipleResults bool                       `json:"allowMultipleResults"`
	// The misspelling is part of the engine's settings contract.
	MillisecondsBeforeTimeout int64 `json:"milisecondsBeforeTimeout"`
}

// EncodeCollection renders a whole scan session's settings.
func EncodeCollection(c *recognizer.Collection) ([]byte, error) {
	out, err := wire.Marshal(collectionSettings{
		RecognizerArray:           c.Recognizers,
		AllowMultipleResults:      c.AllowMultipleResults,
		MillisecondsBeforeTimeout: c.Timeout.Milliseconds(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal recognizer collection: %w", err)
	}
	return out, nil
}

// ApplySettings overlays a YAML or JSON document onto cfg. Keys the document
// omits keep their current values. A document naming another recognizer type
// is rejected before cfg is touched.
func ApplySettings(cfg recognizer.Configuration, content []byte) error {
	var header struct {
		Type string `yaml:"recognizerType"`
	}
	if err := yaml.Unmarshal(content, &header); err != nil {
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	if header.Type != "" && header.Type != cfg.RecognizerType() {
		return fmt.Errorf("%w: got %q, want %q", ErrRecognizerTypeMismatch, header.Type, cfg.RecognizerType())
	}

	if err := yaml.Unmarshal(content, cfg); err != nil {
		return fmt.Errorf("failed to apply %s settings: %w", cfg.RecognizerType(), err)
	}
	return nil
}

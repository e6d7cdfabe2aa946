// SPDX-License-Identifier: Apache-2.0

package native

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

// wire keeps integer precision by decoding numbers as json.Number.
var wire = jsoniter.Config{
	EscapeHTML:             true,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
	UseNumber:              true,
}.Froze()

// JSONDecoder decodes native results the engine bridge serialized as JSON.
// The content is either one result object or an array with one object per
// recognizer.
type JSONDecoder struct{}

func NewJSONDecoder() *JSONDecoder {
	return &JSONDecoder{}
}

func (d *JSONDecoder) Name() string {
	return "json"
}

func (d *JSONDecoder) CanHandle(source Source) bool {
	if strings.EqualFold(source.Format, "json") {
		return true
	}
	if source.Format != "" {
		return false
	}
	content := bytes.TrimSpace(source.Content)
	return bytes.HasPrefix(content, []byte("{")) || bytes.HasPrefix(content, []byte("["))
}

func (d *JSONDecoder) Decode(_ context.Context, source Source) ([]Document, error) {
	var raw interface{}
	if err := wire.Unmarshal(source.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to unmarshal JSON: %w", err)
	}
	return documents(raw)
}

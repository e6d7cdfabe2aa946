// SPDX-License-Identifier: Apache-2.0

package tool

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// MetadataRecognizerSettings describes the recognizer_settings tool.
var MetadataRecognizerSettings = &mcp.Tool{
	Name: "recognizer_settings",
	Description: "Return the settings a recognizer hands to the recognition engine, starting from its " +
		"defaults. Overrides are a YAML or JSON object using the engine's setting names " +
		"(for example extractAddress: false). Extraction toggles are hints: the engine may skip " +
		"the work, and the corresponding result field is then null.",
	InputSchema: map[string]interface{}{
		"type":     "object",
		"required": []string{"recognizer_type"},
		"properties": map[string]interface{}{
			"recognizer_type": map[string]interface{}{
				"type":        "string",
				"description": "Type of the recognizer, e.g. GermanyIdBackRecognizer.",
			},
			"overrides": map[string]interface{}{
				"type":        "string",
				"description": "Optional YAML or JSON object with settings to change.",
			},
		},
	},
}

// InputRecognizerSettings is the input for the RecognizerSettings tool.
type InputRecognizerSettings struct {
	RecognizerType string `json:"recognizer_type"`
	Overrides      string `json:"overrides"`
}

// OutputRecognizerSettings is the output for the RecognizerSettings tool.
type OutputRecognizerSettings struct {
	RecognizerType string `json:"recognizer_type"`
	// Settings is the JSON document the engine reads.
	Settings string `json:"settings"`
}

func (h *Handlers) RecognizerSettings(_ context.Context, _ *mcp.CallToolRequest, input InputRecognizerSettings) (*mcp.CallToolResult, OutputRecognizerSettings, error) {
	if input.RecognizerType == "" {
		return nil, OutputRecognizerSettings{}, fmt.Errorf("recognizer_type is required")
	}

	settings, err := h.bridge.Settings(input.RecognizerType, []byte(input.Overrides))
	if err != nil {
		return nil, OutputRecognizerSettings{}, err
	}
	return nil, OutputRecognizerSettings{
		RecognizerType: input.RecognizerType,
		Settings:       string(settings),
	}, nil
}

// MetadataListRecognizers describes the list_recognizers tool.
var MetadataListRecognizers = &mcp.Tool{
	Name:        "list_recognizers",
	Description: "List the recognizer types whose results and settings this server understands.",
	InputSchema: map[string]interface{}{
		"type":       "object",
		"properties": map[string]interface{}{},
	},
}

type InputListRecognizers struct{}

type OutputListRecognizers struct {
	Recognizers []string `json:"recognizers"`
}

func (h *Handlers) ListRecognizers(_ context.Context, _ *mcp.CallToolRequest, _ InputListRecognizers) (*mcp.CallToolResult, OutputListRecognizers, error) {
	return nil, OutputListRecognizers{Recognizers: h.bridge.RecognizerTypes()}, nil
}

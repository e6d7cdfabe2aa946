// SPDX-License-Identifier: Apache-2.0

package tool

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/docscan/recognizer-mcp/internal/bridge"
	"github.com/docscan/recognizer-mcp/internal/native"
	"github.com/docscan/recognizer-mcp/internal/recognizer"
	"github.com/docscan/recognizer-mcp/internal/recognizer/germanyid"
	"github.com/docscan/recognizer-mcp/internal/report"
)

// MetadataMapRecognizerResult describes the map_recognizer_result tool.
var MetadataMapRecognizerResult = &mcp.Tool{
	Name: "map_recognizer_result",
	Description: "Convert the raw result a document recognition engine produced into the typed result " +
		"of the recognizer that was configured for the scan. " +
		"Every result carries a result_state (empty, uncertain, valid, stageValid); fields of a result " +
		"that is not valid may be null or unreliable. Fields the engine did not report are null.",
	InputSchema: map[string]interface{}{
		"type":     "object",
		"required": []string{"recognizer_type", "native_result"},
		"properties": map[string]interface{}{
			"recognizer_type": map[string]interface{}{
				"type":        "string",
				"description": "Type of the recognizer that produced the result, e.g. GermanyIdBackRecognizer. Use list_recognizers for the supported types.",
			},
			"native_result": map[string]interface{}{
				"type":        "string",
				"description": "Raw engine result: one object, a list of objects, or a multi-document YAML stream.",
			},
			"format": map[string]interface{}{
				"type":        "string",
				"description": "Format hint for native_result. If omitted, auto-detection is used.",
				"enum":        []string{"json", "yaml"},
			},
		},
	},
}

// InputMapRecognizerResult is the input for the MapRecognizerResult tool.
type InputMapRecognizerResult struct {
	RecognizerType string `json:"recognizer_type"`
	NativeResult   string `json:"native_result"`
	Format         string `json:"format"`
}

// MappedResult is one typed result in wire field names.
type MappedResult struct {
	RecognizerType string                 `json:"recognizer_type"`
	ResultState    string                 `json:"result_state"`
	Fields         map[string]interface{} `json:"fields"`
}

// OutputMapRecognizerResult is the output for the MapRecognizerResult tool.
type OutputMapRecognizerResult struct {
	// SessionID identifies this mapping in server logs.
	SessionID      string `json:"session_id"`
	RecognizerType string `json:"recognizer_type"`

	// ResultState is the state of the first result, or empty when the
	// engine reported none.
	ResultState string `json:"result_state"`

	Decoder string         `json:"decoder"`
	Results []MappedResult `json:"results"`
}

// DefaultRegistry registers every recognizer the server supports.
func DefaultRegistry() *recognizer.Registry {
	return recognizer.NewRegistry(
		germanyid.NewBack,
	)
}

// Handlers serves the recognizer tools from a shared bridge.
type Handlers struct {
	bridge *bridge.Bridge
}

func NewHandlers(b *bridge.Bridge) *Handlers {
	return &Handlers{bridge: b}
}

// Register adds every recognizer tool to server.
func (h *Handlers) Register(server *mcp.Server) {
	mcp.AddTool(server, MetadataMapRecognizerResult, h.MapRecognizerResult)
	mcp.AddTool(server, MetadataRecognizerSettings, h.RecognizerSettings)
	mcp.AddTool(server, MetadataListRecognizers, h.ListRecognizers)
}

// MapRecognizerResult maps the engine output and returns both the typed
// fields and a Markdown summary.
func (h *Handlers) MapRecognizerResult(ctx context.Context, _ *mcp.CallToolRequest, input InputMapRecognizerResult) (*mcp.CallToolResult, OutputMapRecognizerResult, error) {
	if input.RecognizerType == "" {
		return nil, OutputMapRecognizerResult{}, fmt.Errorf("recognizer_type is required")
	}
	if input.NativeResult == "" {
		return nil, OutputMapRecognizerResult{}, fmt.Errorf("native_result is required")
	}

	run, err := h.bridge.Run(ctx, bridge.Request{
		RecognizerTypes: []string{input.RecognizerType},
		Source: native.Source{
			Content: []byte(input.NativeResult),
			Format:  input.Format,
			ID:      "native_result",
		},
	})
	if err != nil {
		return nil, OutputMapRecognizerResult{}, err
	}

	out := OutputMapRecognizerResult{
		SessionID:      run.SessionID,
		RecognizerType: input.RecognizerType,
		ResultState:    recognizer.StateEmpty.String(),
		Decoder:        run.DecoderUsed,
		Results:        make([]MappedResult, 0, len(run.Results)),
	}
	if len(run.Results) > 0 {
		out.ResultState = run.Results[0].State().String()
	}
	for _, res := range run.Results {
		fields, err := report.Fields(res)
		if err != nil {
			return nil, OutputMapRecognizerResult{}, err
		}
		out.Results = append(out.Results, MappedResult{
			RecognizerType: res.RecognizerType(),
			ResultState:    res.State().String(),
			Fields:         fields,
		})
	}

	summary, err := report.Markdown(run.Results)
	if err != nil {
		return nil, OutputMapRecognizerResult{}, err
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: summary}},
	}, out, nil
}

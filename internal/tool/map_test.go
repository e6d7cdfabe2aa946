// SPDX-License-Identifier: Apache-2.0

package tool

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docscan/recognizer-mcp/internal/bridge"
	"github.com/docscan/recognizer-mcp/internal/native"
)

func newTestHandlers() *Handlers {
	return NewHandlers(bridge.New(DefaultRegistry(), native.DefaultCodec(), bridge.WithSchemaValidation()))
}

func TestMapRecognizerResult(t *testing.T) {
	ctx := context.Background()
	req := &mcp.CallToolRequest{}
	h := newTestHandlers()

	tests := []struct {
		name           string
		input          InputMapRecognizerResult
		wantErr        bool
		errContains    string
		validateOutput func(t *testing.T, output OutputMapRecognizerResult)
	}{
		{
			name:        "missing recognizer type returns error",
			input:       InputMapRecognizerResult{NativeResult: `{"resultState": 3}`},
			wantErr:     true,
			errContains: "recognizer_type is required",
		},
		{
			name:        "empty native result returns error",
			input:       InputMapRecognizerResult{RecognizerType: "GermanyIdBackRecognizer"},
			wantErr:     true,
			errContains: "native_result is required",
		},
		{
			name: "json result is mapped",
			input: InputMapRecognizerResult{
				RecognizerType: "GermanyIdBackRecognizer",
				NativeResult:   `{"resultState": 3, "primaryId": "MUSTERMANN", "secondaryId": "ERIKA", "dateOfExpiry": {"day": 31, "month": 10, "year": 2030}, "mrzVerified": true}`,
				Format:         "json",
			},
			validateOutput: func(t *testing.T, output OutputMapRecognizerResult) {
				assert.NotEmpty(t, output.SessionID)
				assert.Equal(t, "GermanyIdBackRecognizer", output.RecognizerType)
				assert.Equal(t, "valid", output.ResultState)
				assert.Equal(t, "json", output.Decoder)
				require.Len(t, output.Results, 1)

				res := output.Results[0]
				assert.Equal(t, "GermanyIdBackRecognizer", res.RecognizerType)
				assert.Equal(t, "valid", res.ResultState)
				assert.Equal(t, "MUSTERMANN", res.Fields["primaryId"])
				assert.Equal(t, true, res.Fields["mrzVerified"])
				assert.Nil(t, res.Fields["dateOfBirth"], "absent date must stay null")
				assert.NotNil(t, res.Fields["dateOfExpiry"])
			},
		},
		{
			name: "auto-detection without format hint",
			input: InputMapRecognizerResult{
				RecognizerType: "GermanyIdBackRecognizer",
				NativeResult:   "resultState: uncertain\naddressCity: KÖLN\n",
				// No Format field, auto-detection should kick in
			},
			validateOutput: func(t *testing.T, output OutputMapRecognizerResult) {
				assert.Equal(t, "yaml", output.Decoder)
				require.Len(t, output.Results, 1)
				assert.Equal(t, "uncertain", output.Results[0].ResultState)
				assert.Equal(t, "KÖLN", output.Results[0].Fields["addressCity"])
			},
		},
		{
			name: "list result reports the first state at top level",
			input: InputMapRecognizerResult{
				RecognizerType: "GermanyIdBackRecognizer",
				NativeResult:   `[{"resultState": 2, "primaryId": "GABLER"}, {"resultState": 3}]`,
			},
			validateOutput: func(t *testing.T, output OutputMapRecognizerResult) {
				assert.Equal(t, "GermanyIdBackRecognizer", output.RecognizerType)
				assert.Equal(t, "uncertain", output.ResultState)
				require.Len(t, output.Results, 2)
				assert.Equal(t, "valid", output.Results[1].ResultState)
			},
		},
		{
			name: "unknown recognizer returns error",
			input: InputMapRecognizerResult{
				RecognizerType: "GermanyIdFrontRecognizer",
				NativeResult:   `{"resultState": 3}`,
			},
			wantErr:     true,
			errContains: "unknown recognizer type",
		},
		{
			name: "schema violation returns error",
			input: InputMapRecognizerResult{
				RecognizerType: "GermanyIdBackRecognizer",
				NativeResult:   `{"primaryId": "MUSTERMANN"}`,
			},
			wantErr:     true,
			errContains: "does not match recognizer schema",
		},
		{
			name: "unsupported format returns error",
			input: InputMapRecognizerResult{
				RecognizerType: "GermanyIdBackRecognizer",
				NativeResult:   "some binary or unsupported content",
				Format:         "protobuf",
			},
			wantErr:     true,
			errContains: "unsupported native format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, output, err := h.MapRecognizerResult(ctx, req, tt.input)

			if tt.wantErr {
				require.Error(t, err)
				if tt.errContains != "" {
					assert.Contains(t, err.Error(), tt.errContains)
				}
				return
			}

			require.NoError(t, err)
			require.NotNil(t, result)
			require.Len(t, result.Content, 1)
			text, ok := result.Content[0].(*mcp.TextContent)
			require.True(t, ok)
			assert.Contains(t, text.Text, "## GermanyIdBackRecognizer")
			if tt.validateOutput != nil {
				tt.validateOutput(t, output)
			}
		})
	}
}

func TestRecognizerSettings(t *testing.T) {
	ctx := context.Background()
	h := newTestHandlers()

	t.Run("defaults", func(t *testing.T) {
		_, output, err := h.RecognizerSettings(ctx, &mcp.CallToolRequest{}, InputRecognizerSettings{RecognizerType: "GermanyIdBackRecognizer"})
		require.NoError(t, err)

		var settings map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(output.Settings), &settings))
		assert.Equal(t, "GermanyIdBackRecognizer", settings["recognizerType"])
		assert.Equal(t, true, settings["extractAddress"])
		assert.Equal(t, false, settings["returnFullDocumentImage"])
	})

	t.Run("overrides", func(t *testing.T) {
		_, output, err := h.RecognizerSettings(ctx, &mcp.CallToolRequest{}, InputRecognizerSettings{
			RecognizerType: "GermanyIdBackRecognizer",
			Overrides:      "returnFullDocumentImage: true\nfullDocumentImageExtensionFactors:\n  leftFactor: 0.25\n",
		})
		require.NoError(t, err)

		var settings map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(output.Settings), &settings))
		assert.Equal(t, true, settings["returnFullDocumentImage"])
		factors := settings["fullDocumentImageExtensionFactors"].(map[string]interface{})
		assert.Equal(t, 0.25, factors["leftFactor"])
	})

	t.Run("missing type", func(t *testing.T) {
		_, _, err := h.RecognizerSettings(ctx, &mcp.CallToolRequest{}, InputRecognizerSettings{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "recognizer_type is required")
	})

	t.Run("type mismatch", func(t *testing.T) {
		_, _, err := h.RecognizerSettings(ctx, &mcp.CallToolRequest{}, InputRecognizerSettings{
			RecognizerType: "GermanyIdBackRecognizer",
			Overrides:      "recognizerType: MrtdRecognizer\n",
		})
		require.ErrorIs(t, err, native.ErrRecognizerTypeMismatch)
	})
}

func TestListRecognizers(t *testing.T) {
	_, output, err := newTestHandlers().ListRecognizers(context.Background(), &mcp.CallToolRequest{}, InputListRecognizers{})
	require.NoError(t, err)
	assert.Equal(t, []string{"GermanyIdBackRecognizer"}, output.Recognizers)
}

func TestRegister(t *testing.T) {
	server := mcp.NewServer(&mcp.Implementation{Name: "test", Version: "0"}, nil)
	assert.NotPanics(t, func() { newTestHandlers().Register(server) })
}

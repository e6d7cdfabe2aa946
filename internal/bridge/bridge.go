// SPDX-License-Identifier: Apache-2.0

package bridge

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/docscan/recognizer-mcp/internal/log"
	"github.com/docscan/recognizer-mcp/internal/native"
	"github.com/docscan/recognizer-mcp/internal/recognizer"
)

var ErrNoRecognizer = errors.New("at least one recognizer type is required")

// Bridge turns raw native engine output into typed recognizer results.
type Bridge struct {
	registry  *recognizer.Registry
	codec     *native.Codec
	validator *native.Validator
}

type Option func(*Bridge)

// WithSchemaValidation checks every native result against its recognizer's
// CUE schema before mapping.
func WithSchemaValidation() Option {
	return func(b *Bridge) {
		b.validator = native.NewValidator()
	}
}

func New(registry *recognizer.Registry, codec *native.Codec, opts ...Option) *Bridge {
	b := &Bridge{registry: registry, codec: codec}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Request names the recognizers of a scan session and the engine output.
// With a single recognizer type every native result is mapped by it;
// otherwise result i belongs to RecognizerTypes[i].
type Request struct {
	RecognizerTypes []string
	Source          native.Source
}

// RunResult is the output of a successful run.
type RunResult struct {
	SessionID   string
	Results     []recognizer.Result
	DecoderUsed string
}

func (b *Bridge) Run(ctx context.Context, req Request) (RunResult, error) {
	if len(req.RecognizerTypes) == 0 {
		return RunResult{}, ErrNoRecognizer
	}
	sessionID := uuid.NewString()

	decoded, err := b.codec.Decode(ctx, req.Source)
	if err != nil {
		return RunResult{}, err
	}

	collection, err := b.collection(req.RecognizerTypes, len(decoded.Records))
	if err != nil {
		return RunResult{}, err
	}

	if b.validator != nil {
		for i, cfg := range collection.Recognizers {
			if i >= len(decoded.Documents) {
				break
			}
			if err := b.validator.Validate(cfg, decoded.Documents[i]); err != nil {
				log.Warn(log.Fields{
					"session_id":      sessionID,
					"source_id":       req.Source.ID,
					"recognizer_type": cfg.RecognizerType(),
					"result_index":    i,
				}, "native result rejected by schema")
				return RunResult{}, fmt.Errorf("result %d: %w", i, err)
			}
		}
	}

	results, err := collection.MapResults(decoded.Records)
	if err != nil {
		return RunResult{}, err
	}

	for i, res := range results {
		log.Debug(log.Fields{
			"session_id":      sessionID,
			"source_id":       req.Source.ID,
			"decoder":         decoded.DecoderUsed,
			"recognizer_type": res.RecognizerType(),
			"result_index":    i,
			"result_state":    res.State().String(),
		}, "mapped native result")
	}

	return RunResult{
		SessionID:   sessionID,
		Results:     results,
		DecoderUsed: decoded.DecoderUsed,
	}, nil
}

// collection builds default configurations for the session. A single type
// is repeated for every native result.
func (b *Bridge) collection(types []string, resultCount int) (*recognizer.Collection, error) {
	if len(types) == 1 && resultCount > 1 {
		repeated := make([]string, resultCount)
		for i := range repeated {
			repeated[i] = types[0]
		}
		types = repeated
	}

	cfgs := make([]recognizer.Configuration, len(types))
	for i, t := range types {
		cfg, err := b.registry.New(t)
		if err != nil {
			return nil, err
		}
		cfgs[i] = cfg
	}

	c := recognizer.NewCollection(cfgs...)
	c.AllowMultipleResults = len(cfgs) > 1
	return c, nil
}

// RecognizerTypes returns the types the bridge can map.
func (b *Bridge) RecognizerTypes() []string {
	return b.registry.Types()
}

// Settings returns the native settings of recognizerType after applying the
// optional overrides document.
func (b *Bridge) Settings(recognizerType string, overrides []byte) ([]byte, error) {
	cfg, err := b.registry.New(recognizerType)
	if err != nil {
		return nil, err
	}
	if len(overrides) > 0 {
		if err := native.ApplySettings(cfg, overrides); err != nil {
			return nil, err
		}
	}
	return native.EncodeSettings(cfg)
}

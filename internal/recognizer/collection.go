// SPDX-License-Identifier: Apache-2.0

package recognizer

import (
	"errors"
	"fmt"
	"sort"
	"time"
)

var (
	ErrUnknownRecognizer   = errors.New("unknown recognizer type")
	ErrResultCountMismatch = errors.New("native result count does not match recognizer count")
)

// DefaultTimeout is how long the native engine scans before giving up.
const DefaultTimeout = 10 * time.Second

// Factory builds a configuration with default settings.
type Factory func() Configuration

// Registry routes native records to the recognizer that produced them using
// the recognizer type tag.
type Registry struct {
	factories map[string]Factory
}

// NewRegistry creates a Registry with the provided factories registered.
// Each factory is keyed by the type of the configuration it builds.
func NewRegistry(factories ...Factory) *Registry {
	r := &Registry{factories: make(map[string]Factory, len(factories))}
	for _, f := range factories {
		r.Register(f)
	}
	return r
}

// Register adds f, replacing any factory for the same recognizer type.
func (r *Registry) Register(f Factory) {
	r.factories[f().RecognizerType()] = f
}

// New returns a default configuration for recognizerType.
func (r *Registry) New(recognizerType string) (Configuration, error) {
	f, ok := r.factories[recognizerType]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRecognizer, recognizerType)
	}
	return f(), nil
}

// Types returns the registered recognizer types in sorted order.
func (r *Registry) Types() []string {
	types := make([]string, 0, len(r.factories))
	for t := range r.factories {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// MapResult wraps record with a default configuration of recognizerType.
// Settings never influence mapping, so a fresh configuration is sufficient.
func (r *Registry) MapResult(recognizerType string, record Record) (Result, error) {
	cfg, err := r.New(recognizerType)
	if err != nil {
		return nil, err
	}
	return cfg.MapResult(record), nil
}

// Collection is the ordered set of recognizers handed to the native engine
// for a single scan session.
type Collection struct {
	Recognizers          []Configuration
	AllowMultipleResults bool
	Timeout              time.Duration
}

func NewCollection(recognizers ...Configuration) *Collection {
	return &Collection{
		Recognizers: recognizers,
		Timeout:     DefaultTimeout,
	}
}

// MapResults wraps the engine's results, where records[i] belongs to
// Recognizers[i].
func (c *Collection) MapResults(records []Record) ([]Result, error) {
	if len(records) != len(c.Recognizers) {
		return nil, fmt.Errorf("%w: got %d results for %d recognizers", ErrResultCountMismatch, len(records), len(c.Recognizers))
	}
	results := make([]Result, len(records))
	for i, rec := range records {
		results[i] = c.Recognizers[i].MapResult(rec)
	}
	return results, nil
}

// RecognizerTypes returns the type tag of each recognizer in order.
func (c *Collection) RecognizerTypes() []string {
	types := make([]string, len(c.Recognizers))
	for i, cfg := range c.Recognizers {
		types[i] = cfg.RecognizerType()
	}
	return types
}

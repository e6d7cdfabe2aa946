// SPDX-License-Identifier: Apache-2.0

package native

import (
	"context"
	"errors"
	"fmt"

	"github.com/docscan/recognizer-mcp/internal/recognizer"
)

var ErrUnsupportedFormat = errors.New("unsupported native format")

// Document is one native result as decoded from the wire, before it is
// converted into a recognizer.Record.
type Document map[string]interface{}

// Source describes raw native engine output.
type Source struct {
	// Content is the raw document content.
	Content []byte
	Format  string
	ID      string
}

type Decoder interface {
	CanHandle(source Source) bool
	Decode(ctx context.Context, source Source) ([]Document, error)
	Name() string
}

// Codec selects a Decoder for a Source and converts the decoded documents
// into records.
type Codec struct {
	decoders []Decoder
}

// NewCodec creates a Codec trying decoders in order.
func NewCodec(decoders ...Decoder) *Codec {
	return &Codec{decoders: decoders}
}

// DefaultCodec knows JSON and YAML. JSON is tried first because every JSON
// document is also valid YAML.
func DefaultCodec() *Codec {
	return NewCodec(NewJSONDecoder(), NewYAMLDecoder())
}

// DecodeResult is the output of a successful decode.
type DecodeResult struct {
	Documents   []Document
	Records     []recognizer.Record
	DecoderUsed string
}

func (c *Codec) Decode(ctx context.Context, source Source) (DecodeResult, error) {
	decoder, err := c.selectDecoder(source)
	if err != nil {
		return DecodeResult{}, err
	}

	docs, err := decoder.Decode(ctx, source)
	if err != nil {
		return DecodeResult{}, fmt.Errorf("decoder %q failed: %w", decoder.Name(), err)
	}

	records := make([]recognizer.Record, len(docs))
	for i, doc := range docs {
		records[i] = ToRecord(doc)
	}
	return DecodeResult{
		Documents:   docs,
		Records:     records,
		DecoderUsed: decoder.Name(),
	}, nil
}

// selectDecoder returns the first registered decoder that can handle the given source.
func (c *Codec) selectDecoder(source Source) (Decoder, error) {
	for _, d := range c.decoders {
		if d.CanHandle(source) {
			return d, nil
		}
	}
	return nil, fmt.Errorf("%w: no decoder found for source %q (format hint: %q)", ErrUnsupportedFormat, source.ID, source.Format)
}

// RegisteredDecoders returns the names of all currently registered decoders.
func (c *Codec) RegisteredDecoders() []string {
	names := make([]string, len(c.decoders))
	for i, d := range c.decoders {
		names[i] = d.Name()
	}
	return names
}

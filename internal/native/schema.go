// SPDX-License-Identifier: Apache-2.0

package native

import (
	"errors"
	"fmt"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"

	"github.com/docscan/recognizer-mcp/internal/recognizer"
)

var ErrSchemaViolation = errors.New("native result does not match recognizer schema")

// Validator checks decoded documents against the CUE schema a recognizer
// publishes. Recognizers without a schema accept anything.
type Validator struct {
	mu      sync.Mutex
	ctx     *cue.Context
	schemas map[string]cue.Value
}

func NewValidator() *Validator {
	return &Validator{
		ctx:     cuecontext.New(),
		schemas: make(map[string]cue.Value),
	}
}

func (v *Validator) Validate(cfg recognizer.Configuration, doc Document) error {
	provider, ok := cfg.(recognizer.SchemaProvider)
	if !ok {
		return nil
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	schema, err := v.schema(cfg.RecognizerType(), provider.RecordSchema())
	if err != nil {
		return err
	}

	data := v.ctx.Encode(map[string]interface{}(doc))
	if err := data.Err(); err != nil {
		return fmt.Errorf("failed to encode native result: %w", err)
	}

	if err := schema.Unify(data).Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("%w: %s", ErrSchemaViolation, cueerrors.Details(err, nil))
	}
	return nil
}

// schema compiles src once per recognizer type. Callers hold v.mu.
func (v *Validator) schema(recognizerType, src string) (cue.Value, error) {
	if s, ok := v.schemas[recognizerType]; ok {
		return s, nil
	}
	file := v.ctx.CompileString(src, cue.Filename(recognizerType+".cue"))
	if err := file.Err(); err != nil {
		return cue.Value{}, fmt.Errorf("failed to compile schema for %s: %w", recognizerType, err)
	}
	s := file.LookupPath(cue.ParsePath("#Record"))
	if !s.Exists() {
		return cue.Value{}, fmt.Errorf("schema for %s does not define #Record", recognizerType)
	}
	v.schemas[recognizerType] = s
	return s, nil
}

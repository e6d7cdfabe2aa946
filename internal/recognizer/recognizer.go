// SPDX-License-Identifier: Apache-2.0

package recognizer

import (
	"fmt"
	"strings"
)

// ResultState is the completeness status the native engine reports for a scan.
// Callers must check it before trusting any other result field.
type ResultState int

const (
	StateEmpty ResultState = iota + 1
	StateUncertain
	StateValid
	// StateStageValid is reported by multi-side recognizers after one side.
	StateStageValid
)

var resultStateNames = map[ResultState]string{
	StateEmpty:      "empty",
	StateUncertain:  "uncertain",
	StateValid:      "valid",
	StateStageValid: "stageValid",
}

func (s ResultState) String() string {
	if name, ok := resultStateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("ResultState(%d)", int(s))
}

func (s ResultState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *ResultState) UnmarshalText(text []byte) error {
	state, ok := ParseResultState(string(text))
	if !ok {
		return fmt.Errorf("unknown result state %q", text)
	}
	*s = state
	return nil
}

// ParseResultState accepts the names produced by String, case-insensitively.
func ParseResultState(name string) (ResultState, bool) {
	for state, n := range resultStateNames {
		if strings.EqualFold(n, name) {
			return state, true
		}
	}
	return 0, false
}

// Date is a calendar date as reported by the native engine. No calendar
// validation is applied.
type Date struct {
	Day   int `json:"day" yaml:"day"`
	Month int `json:"month" yaml:"month"`
	Year  int `json:"year" yaml:"year"`
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Image is an opaque image handle produced by the native engine, usually a
// base64 encoded bitmap. It is passed through untouched.
type Image string

// ImageExtensionFactors extends the cropped document image by a fraction of
// its size on each side. The zero value means no extension.
type ImageExtensionFactors struct {
	UpFactor    float64 `json:"upFactor" yaml:"upFactor"`
	DownFactor  float64 `json:"downFactor" yaml:"downFactor"`
	LeftFactor  float64 `json:"leftFactor" yaml:"leftFactor"`
	RightFactor float64 `json:"rightFactor" yaml:"rightFactor"`
}

// Base carries the recognizer type identity. It is embedded by every
// concrete configuration and must not change after construction.
type Base struct {
	Type string `json:"recognizerType" yaml:"recognizerType"`
}

func (b Base) RecognizerType() string {
	return b.Type
}

// ResultBase holds the state shared by every recognizer result.
type ResultBase struct {
	ResultState ResultState `json:"resultState" yaml:"resultState"`
}

func (r ResultBase) State() ResultState {
	return r.ResultState
}

// Result is the typed output of a recognizer.
type Result interface {
	State() ResultState
	RecognizerType() string
}

// Configuration is a recognizer's settings plus the mapping from a native
// record to its typed result. MapResult never fails: fields the record does
// not carry come back as nil.
type Configuration interface {
	RecognizerType() string
	MapResult(record Record) Result
}

// SchemaProvider is implemented by configurations that publish a CUE schema
// describing the native record they expect. The schema defines #Record.
type SchemaProvider interface {
	RecordSchema() string
}

// SPDX-License-Identifier: Apache-2.0

package report

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	jsoniter "github.com/json-iterator/go"

	"github.com/docscan/recognizer-mcp/internal/recognizer"
)

// maxValueLen bounds table cells; image handles are often megabytes.
const maxValueLen = 64

var codec = jsoniter.ConfigCompatibleWithStandardLibrary

// Fields flattens a result into its wire field names.
func Fields(res recognizer.Result) (map[string]interface{}, error) {
	raw, err := codec.Marshal(res)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s result: %w", res.RecognizerType(), err)
	}
	var fields map[string]interface{}
	if err := codec.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("failed to unmarshal %s result: %w", res.RecognizerType(), err)
	}
	return fields, nil
}

// Markdown renders results as one section per result, each with a
// field/value table sorted by field name.
func Markdown(results []recognizer.Result) (string, error) {
	var b strings.Builder
	for i, res := range results {
		fields, err := Fields(res)
		if err != nil {
			return "", err
		}
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "## %s (%s)\n\n", res.RecognizerType(), res.State())
		if res.State() != recognizer.StateValid {
			b.WriteString("> Result is not valid; fields may be missing or unreliable.\n\n")
		}
		b.WriteString("| Field | Value |\n|---|---|\n")

		keys := make([]string, 0, len(fields))
		for k := range fields {
			if k != "resultState" {
				keys = append(keys, k)
			}
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(&b, "| %s | %s |\n", k, cell(fields[k]))
		}
	}
	return b.String(), nil
}

func cell(v interface{}) string {
	switch x := v.(type) {
	case nil:
		return "_null_"
	case map[string]interface{}:
		if d, ok := asDate(x); ok {
			return d.String()
		}
	case string:
		return escape(abbreviate(x))
	}
	return escape(abbreviate(fmt.Sprint(v)))
}

func asDate(m map[string]interface{}) (recognizer.Date, bool) {
	day, ok1 := m["day"].(float64)
	month, ok2 := m["month"].(float64)
	year, ok3 := m["year"].(float64)
	if !ok1 || !ok2 || !ok3 {
		return recognizer.Date{}, false
	}
	return recognizer.Date{Day: int(day), Month: int(month), Year: int(year)}, true
}

func abbreviate(s string) string {
	if len(s) <= maxValueLen {
		return s
	}
	cut := maxValueLen
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return fmt.Sprintf("%s… (%d bytes)", s[:cut], len(s))
}

func escape(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", "<br>")
}

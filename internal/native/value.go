// SPDX-License-Identifier: Apache-2.0

package native

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/docscan/recognizer-mcp/internal/recognizer"
)

// ToRecord converts a decoded document into a record. Strings, booleans,
// integral numbers, nulls and {day, month, year} objects keep their value.
// Any other shape (lists, other objects, fractional numbers) is stored as
// null, so fields no recognizer reads never fail a decode. Type errors on
// known fields are reported by the Validator.
func ToRecord(doc Document) recognizer.Record {
	rec := make(recognizer.Record, len(doc))
	for key, raw := range doc {
		rec[key] = toValue(raw)
	}
	return rec
}

func toValue(raw interface{}) recognizer.Value {
	switch x := raw.(type) {
	case string:
		return recognizer.StringValue(x)
	case bool:
		return recognizer.BoolValue(x)
	case map[string]interface{}:
		if d, ok := toDate(x); ok {
			return recognizer.DateValue(d)
		}
		return recognizer.Null()
	}
	if n, ok := toInt(raw); ok {
		return recognizer.NumberValue(n)
	}
	return recognizer.Null()
}

// toDate reports ok=false unless day, month and year are all integral.
func toDate(m map[string]interface{}) (recognizer.Date, bool) {
	var parts [3]int
	for i, key := range []string{"day", "month", "year"} {
		n, ok := toInt(m[key])
		if !ok {
			return recognizer.Date{}, false
		}
		parts[i] = int(n)
	}
	return recognizer.Date{Day: parts[0], Month: parts[1], Year: parts[2]}, true
}

// toInt reports ok=false when raw is not an integral number in int64 range.
func toInt(raw interface{}) (int64, bool) {
	switch x := raw.(type) {
	case int:
		return int64(x), true
	case int64:
		return x, true
	case uint64:
		if x > math.MaxInt64 {
			return 0, false
		}
		return int64(x), true
	case float64:
		if x != math.Trunc(x) || math.Abs(x) > math.MaxInt64 {
			return 0, false
		}
		return int64(x), true
	case json.Number:
		n, err := x.Int64()
		if err != nil {
			return 0, false
		}
		return n, true
	}
	return 0, false
}

// normalize rewrites decoder specific shapes into the small set ToRecord and
// the schema validator understand: string keyed maps, int64 and float64.
func normalize(raw interface{}) interface{} {
	switch x := raw.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(x))
		for k, v := range x {
			out[k] = normalize(v)
		}
		return out
	case map[interface{}]interface{}:
		out := make(map[string]interface{}, len(x))
		for k, v := range x {
			out[fmt.Sprint(k)] = normalize(v)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(x))
		for i, v := range x {
			out[i] = normalize(v)
		}
		return out
	case json.Number:
		if n, err := x.Int64(); err == nil {
			return n
		}
		if f, err := x.Float64(); err == nil {
			return f
		}
		return x.String()
	case uint64:
		if x <= math.MaxInt64 {
			return int64(x)
		}
		return float64(x)
	case int:
		return int64(x)
	}
	return raw
}

// documents splits a normalized top-level value into result documents. A
// list holds one document per recognizer.
func documents(raw interface{}) ([]Document, error) {
	switch x := normalize(raw).(type) {
	case map[string]interface{}:
		return []Document{x}, nil
	case []interface{}:
		docs := make([]Document, 0, len(x))
		for i, item := range x {
			m, ok := item.(map[string]interface{})
			if !ok {
				return nil, fmt.Errorf("result %d is %T, want an object", i, item)
			}
			docs = append(docs, m)
		}
		return docs, nil
	case nil:
		return nil, nil
	default:
		return nil, fmt.Errorf("native result is %T, want an object or a list of objects", x)
	}
}

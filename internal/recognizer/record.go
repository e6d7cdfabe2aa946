// SPDX-License-Identifier: Apache-2.0

package recognizer

// Kind identifies which variant a Value holds.
type Kind uint8

const (
	KindNull Kind = iota
	KindString
	KindBool
	KindNumber
	KindDate
	KindImage
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindDate:
		return "date"
	case KindImage:
		return "image"
	default:
		return "null"
	}
}

// Value is one field of a native record.
type Value struct {
	kind  Kind
	str   string
	flag  bool
	num   int64
	date  Date
	image Image
}

func Null() Value { return Value{} }

func StringValue(s string) Value { return Value{kind: KindString, str: s} }

func BoolValue(b bool) Value { return Value{kind: KindBool, flag: b} }

func NumberValue(n int64) Value { return Value{kind: KindNumber, num: n} }

func DateValue(d Date) Value { return Value{kind: KindDate, date: d} }

func ImageValue(img Image) Value { return Value{kind: KindImage, image: img} }

func (v Value) Kind() Kind { return v.kind }

func (v Value) IsNull() bool { return v.kind == KindNull }

// Record is the native result record handed over by the engine, keyed by the
// engine's field names. The engine guarantees the field set; Record accessors
// treat missing and null fields alike.
type Record map[string]Value

func (r Record) Get(key string) (Value, bool) {
	v, ok := r[key]
	return v, ok
}

// String returns the field as a fresh pointer, or nil when it is absent,
// null or not a string.
func (r Record) String(key string) *string {
	v, ok := r[key]
	if !ok || v.kind != KindString {
		return nil
	}
	s := v.str
	return &s
}

// Bool returns false for absent or non-boolean fields.
func (r Record) Bool(key string) bool {
	v, ok := r[key]
	return ok && v.kind == KindBool && v.flag
}

func (r Record) Number(key string) (int64, bool) {
	v, ok := r[key]
	if !ok || v.kind != KindNumber {
		return 0, false
	}
	return v.num, true
}

// Date returns a fresh copy of the date triplet, or nil.
func (r Record) Date(key string) *Date {
	v, ok := r[key]
	if !ok || v.kind != KindDate {
		return nil
	}
	d := v.date
	return &d
}

// Image accepts both image values and plain strings, since wire formats carry
// image handles as strings.
func (r Record) Image(key string) *Image {
	v, ok := r[key]
	if !ok {
		return nil
	}
	var img Image
	switch v.kind {
	case KindImage:
		img = v.image
	case KindString:
		img = Image(v.str)
	default:
		return nil
	}
	return &img
}

// ResultState reads the "resultState" field, given either as the engine's
// numeric code or as a state name. Anything else is reported as empty.
func (r Record) ResultState() ResultState {
	v, ok := r["resultState"]
	if !ok {
		return StateEmpty
	}
	switch v.kind {
	case KindNumber:
		state := ResultState(v.num)
		if _, known := resultStateNames[state]; known {
			return state
		}
	case KindString:
		if state, known := ParseResultState(v.str); known {
			return state
		}
	}
	return StateEmpty
}

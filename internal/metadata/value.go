// Package metadata models caller-supplied transaction metadata as a closed set
// of JSON value variants with a single canonical byte serialization.
package metadata

// Kind identifies the variant held by a Value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

var kindNames = [...]string{
	KindNull:   "null",
	KindBool:   "bool",
	KindNumber: "number",
	KindString: "string",
	KindArray:  "array",
	KindObject: "object",
}

// String returns the JSON name of the kind.
func (kind Kind) String() string {
	if kind < 0 || int(kind) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[kind]
}

// Value is a tagged union over the JSON value variants. The zero Value is null.
type Value struct {
	kind    Kind
	boolean bool
	number  float64
	text    string
	items   []Value
	object  *Object
}

// Null returns the null value.
func Null() Value {
	return Value{}
}

// Bool wraps a boolean.
func Bool(boolean bool) Value {
	return Value{kind: KindBool, boolean: boolean}
}

// Number wraps a float64. Non-finite numbers are accepted here and rejected by Canonical.
func Number(number float64) Value {
	return Value{kind: KindNumber, number: number}
}

// String wraps a string.
func String(text string) Value {
	return Value{kind: KindString, text: text}
}

// Array wraps the given items, copying the slice.
func Array(items ...Value) Value {
	return Value{kind: KindArray, items: append([]Value(nil), items...)}
}

// ObjectValue wraps an object. A nil object yields null.
func ObjectValue(object *Object) Value {
	if object == nil {
		return Null()
	}
	return Value{kind: KindObject, object: object}
}

// Kind reports the variant held by the value.
func (value Value) Kind() Kind {
	return value.kind
}

// AsBool returns the boolean and whether the value is a boolean.
func (value Value) AsBool() (bool, bool) {
	return value.boolean, value.kind == KindBool
}

// AsNumber returns the number and whether the value is a number.
func (value Value) AsNumber() (float64, bool) {
	return value.number, value.kind == KindNumber
}

// AsString returns the string and whether the value is a string.
func (value Value) AsString() (string, bool) {
	return value.text, value.kind == KindString
}

// AsArray returns a copy of the items and whether the value is an array.
func (value Value) AsArray() ([]Value, bool) {
	if value.kind != KindArray {
		return nil, false
	}
	return append([]Value(nil), value.items...), true
}

// AsObject returns the object and whether the value is an object.
func (value Value) AsObject() (*Object, bool) {
	return value.object, value.kind == KindObject
}

// MarshalJSON renders the canonical serialization.
func (value Value) MarshalJSON() ([]byte, error) {
	return Canonical(value)
}

// UnmarshalJSON decodes JSON while preserving object key order.
func (value *Value) UnmarshalJSON(data []byte) error {
	parsed, parseError := Parse(data)
	if parseError != nil {
		return parseError
	}
	*value = parsed
	return nil
}

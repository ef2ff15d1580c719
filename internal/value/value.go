// Package value provides a loosely typed document tree (null, bool, number,
// string, array, object) used to read manifests without binding them to Go
// structs up front. Object members keep their document order.
package value

import "strconv"

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

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Member is a single key/value entry of an object.
type Member struct {
	Key   string
	Value *Value
}

// Value is an immutable node of the document tree. A nil *Value reads as null.
type Value struct {
	kind    Kind
	b       bool
	n       float64
	s       string
	items   []*Value
	members []Member
	line    int
}

// Null returns a null value.
func Null() *Value { return &Value{kind: KindNull} }

// Bool returns a boolean value.
func Bool(b bool) *Value { return &Value{kind: KindBool, b: b} }

// Number returns a numeric value.
func Number(n float64) *Value { return &Value{kind: KindNumber, n: n} }

// String returns a string value.
func String(s string) *Value { return &Value{kind: KindString, s: s} }

// Array returns an array holding items in order.
func Array(items ...*Value) *Value {
	return &Value{kind: KindArray, items: append([]*Value(nil), items...)}
}

// Object returns an object holding members in order.
func Object(members ...Member) *Value {
	return &Value{kind: KindObject, members: append([]Member(nil), members...)}
}

// Field is shorthand for building an object member.
func Field(key string, v *Value) Member {
	return Member{Key: key, Value: v}
}

// Kind reports the variant of v.
func (v *Value) Kind() Kind {
	if v == nil {
		return KindNull
	}
	return v.kind
}

// IsNull reports whether v is nil or an explicit null.
func (v *Value) IsNull() bool {
	return v.Kind() == KindNull
}

// Line returns the 1-based source line of v, or 0 when v was not parsed from text.
func (v *Value) Line() int {
	if v == nil {
		return 0
	}
	return v.line
}

// AsBool returns the boolean held by v.
func (v *Value) AsBool() (bool, bool) {
	if v.Kind() != KindBool {
		return false, false
	}
	return v.b, true
}

// AsNumber returns the number held by v.
func (v *Value) AsNumber() (float64, bool) {
	if v.Kind() != KindNumber {
		return 0, false
	}
	return v.n, true
}

// AsString returns the string held by v.
func (v *Value) AsString() (string, bool) {
	if v.Kind() != KindString {
		return "", false
	}
	return v.s, true
}

// Items returns the elements of an array, or nil for any other kind.
func (v *Value) Items() []*Value {
	if v.Kind() != KindArray {
		return nil
	}
	return append([]*Value(nil), v.items...)
}

// Members returns the members of an object in document order, or nil for any other kind.
func (v *Value) Members() []Member {
	if v.Kind() != KindObject {
		return nil
	}
	return append([]Member(nil), v.members...)
}

// Len returns the number of array elements or object members.
func (v *Value) Len() int {
	switch v.Kind() {
	case KindArray:
		return len(v.items)
	case KindObject:
		return len(v.members)
	default:
		return 0
	}
}

// Get returns the first member of an object with the given key.
func (v *Value) Get(key string) (*Value, bool) {
	if v.Kind() != KindObject {
		return nil, false
	}
	for _, m := range v.members {
		if m.Key == key {
			return m.Value, true
		}
	}
	return nil, false
}

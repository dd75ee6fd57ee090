package types

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strconv"
)

// Kind identifies which of the five SQLite storage classes a Value holds.
type Kind int

const (
	KindNull Kind = iota
	KindInt
	KindFloat
	KindText
	KindBlob
)

// String returns the storage class name.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindInt:
		return "integer"
	case KindFloat:
		return "float"
	case KindText:
		return "text"
	case KindBlob:
		return "blob"
	default:
		return "unknown"
	}
}

// Value is a tagged variant over {null, integer, float, text, blob}.
// A row cell is always one of the five cases; consumers switch on Kind
// rather than type-asserting an any.
type Value struct {
	kind  Kind
	num   int64
	fnum  float64
	text  string
	bytes []byte
}

// Null returns the null Value. The zero Value is also null.
func Null() Value { return Value{} }

// Int returns an integer Value.
func Int(v int64) Value { return Value{kind: KindInt, num: v} }

// Float returns a float Value.
func Float(v float64) Value { return Value{kind: KindFloat, fnum: v} }

// Text returns a text Value.
func Text(v string) Value { return Value{kind: KindText, text: v} }

// Blob returns a blob Value. The slice is held, not copied.
func Blob(v []byte) Value { return Value{kind: KindBlob, bytes: v} }

// Kind returns the storage class of the value.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether the value is null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Int returns the integer payload, or 0 if the value is not an integer.
func (v Value) Int() int64 { return v.num }

// Float returns the float payload, or 0 if the value is not a float.
func (v Value) Float() float64 { return v.fnum }

// Text returns the text payload, or "" if the value is not text.
func (v Value) Text() string { return v.text }

// Blob returns the blob payload, or nil if the value is not a blob.
func (v Value) Blob() []byte { return v.bytes }

// String renders the value for human-readable output. Null renders as
// "NULL" and blobs as their base64 encoding.
func (v Value) String() string {
	switch v.kind {
	case KindNull:
		return "NULL"
	case KindInt:
		return strconv.FormatInt(v.num, 10)
	case KindFloat:
		return strconv.FormatFloat(v.fnum, 'g', -1, 64)
	case KindText:
		return v.text
	case KindBlob:
		return base64.StdEncoding.EncodeToString(v.bytes)
	default:
		return fmt.Sprintf("unknown(%d)", int(v.kind))
	}
}

// MarshalJSON emits the natural JSON form: null, number, string, or a
// base64 string for blobs.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindNull:
		return []byte("null"), nil
	case KindInt:
		return []byte(strconv.FormatInt(v.num, 10)), nil
	case KindFloat:
		return json.Marshal(v.fnum)
	case KindText:
		return json.Marshal(v.text)
	case KindBlob:
		return json.Marshal(base64.StdEncoding.EncodeToString(v.bytes))
	default:
		return nil, fmt.Errorf("marshaling value: unknown kind %d", int(v.kind))
	}
}

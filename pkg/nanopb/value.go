// Copyright 2022 Matrix Origin
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package nanopb

import "strconv"

// Kind tags the closed set of value shapes a field can hold.
type Kind int

const (
	KindAbsent Kind = iota
	KindScalar
	KindText
	KindBytes
	KindNested
	KindRepeated
)

func (k Kind) String() string {
	switch k {
	case KindAbsent:
		return "absent"
	case KindScalar:
		return "scalar"
	case KindText:
		return "text"
	case KindBytes:
		return "bytes"
	case KindNested:
		return "nested"
	case KindRepeated:
		return "repeated"
	}
	return "unknown"
}

// Value is an immutable tagged variant over the field shapes.  The
// zero Value is Absent.
type Value struct {
	kind   Kind
	scalar string
	text   string
	raw    []byte
	msg    Message
	elems  []Value
}

// Absent marks a logically unset field.  The printer emits nothing
// for it.
func Absent() Value {
	return Value{kind: KindAbsent}
}

func scalarValue(text string) Value {
	return Value{kind: KindScalar, scalar: text}
}

func Bool(v bool) Value {
	return scalarValue(strconv.FormatBool(v))
}

func Int32(v int32) Value {
	return scalarValue(strconv.FormatInt(int64(v), 10))
}

func Int64(v int64) Value {
	return scalarValue(strconv.FormatInt(v, 10))
}

func Uint32(v uint32) Value {
	return scalarValue(strconv.FormatUint(uint64(v), 10))
}

func Uint64(v uint64) Value {
	return scalarValue(strconv.FormatUint(v, 10))
}

func Float32(v float32) Value {
	return scalarValue(strconv.FormatFloat(float64(v), 'g', -1, 32))
}

func Float64(v float64) Value {
	return scalarValue(strconv.FormatFloat(v, 'g', -1, 64))
}

// Enum wraps an enum ordinal.  Nano enums are plain ints on the wire
// and print as their number.
func Enum(v int32) Value {
	return scalarValue(strconv.FormatInt(int64(v), 10))
}

func Text(v string) Value {
	return Value{kind: KindText, text: v}
}

// Bytes wraps a byte sequence.  A nil slice is still a present bytes
// value and renders as an empty quoted pair, unlike Absent.
func Bytes(v []byte) Value {
	return Value{kind: KindBytes, raw: v}
}

// Nested wraps a sub-message.  Nested(nil) collapses to Absent.
func Nested(m Message) Value {
	if m == nil {
		return Absent()
	}
	return Value{kind: KindNested, msg: m}
}

// Repeated wraps a list of element values.  Elements must not
// themselves be repeated; repeated-of-repeated is not a declarable
// shape.
func Repeated(elems ...Value) Value {
	return Value{kind: KindRepeated, elems: elems}
}

func (v Value) Kind() Kind {
	return v.kind
}

// ScalarText returns the scalar's natural textual representation.
func (v Value) ScalarText() string {
	return v.scalar
}

func (v Value) Text() string {
	return v.text
}

func (v Value) Bytes() []byte {
	return v.raw
}

func (v Value) Message() Message {
	return v.msg
}

func (v Value) Elems() []Value {
	return v.elems
}

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

// Package nanopb models nano-style protobuf messages as static field
// descriptors instead of runtime reflection.  A message declares, in
// wire order, what fields it has and how to read them; the printer in
// pkg/textprint consumes that declaration.
package nanopb

// Message is a structured record exposing named, typed fields.
// ProtoFields must return the descriptors in declaration order; the
// order determines the rendered output order.
type Message interface {
	ProtoFields() []FieldDesc
}

// FieldDesc is the static descriptor of one field.  Name carries the
// camelCase wire name (e.g. "phoneNumber").  A nil Get marks the
// descriptor as not part of the public data contract.
type FieldDesc struct {
	Name string
	Kind Kind
	Get  func() (Value, error)
}

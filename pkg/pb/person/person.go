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

// Package person holds the address-book sample messages used by the
// tests and by cmd/proto-dump.  The types are hand-maintained in the
// shape protoc-gen-gogo would emit, with nanopb descriptors declared
// alongside.
package person

import (
	"github.com/gogo/protobuf/proto"

	"github.com/matrixorigin/nanotext/pkg/nanopb"
	"github.com/matrixorigin/nanotext/pkg/textprint"
)

var (
	_ proto.Message  = (*PhoneNumber)(nil)
	_ proto.Message  = (*Person)(nil)
	_ proto.Message  = (*AddressBook)(nil)
	_ nanopb.Message = (*PhoneNumber)(nil)
	_ nanopb.Message = (*Person)(nil)
	_ nanopb.Message = (*AddressBook)(nil)
)

type PhoneType int32

const (
	PhoneTypeMobile PhoneType = 0
	PhoneTypeHome   PhoneType = 1
	PhoneTypeWork   PhoneType = 2
)

type PhoneNumber struct {
	Number string
	Type   PhoneType
}

func (m *PhoneNumber) Reset()         { *m = PhoneNumber{} }
func (m *PhoneNumber) String() string { return textprint.Print(m) }
func (*PhoneNumber) ProtoMessage()    {}

func (m *PhoneNumber) ProtoFields() []nanopb.FieldDesc {
	return []nanopb.FieldDesc{
		{Name: "number", Kind: nanopb.KindText, Get: func() (nanopb.Value, error) {
			return nanopb.Text(m.Number), nil
		}},
		{Name: "type", Kind: nanopb.KindScalar, Get: func() (nanopb.Value, error) {
			return nanopb.Enum(int32(m.Type)), nil
		}},
	}
}

type Person struct {
	Name   string
	Id     int32
	Email  *string
	Phones []*PhoneNumber
	Key    []byte

	// wire-level bookkeeping, never printed
	cachedSize int32
}

func (m *Person) Reset()         { *m = Person{} }
func (m *Person) String() string { return textprint.Print(m) }
func (*Person) ProtoMessage()    {}

func (m *Person) ProtoFields() []nanopb.FieldDesc {
	return []nanopb.FieldDesc{
		{Name: "name", Kind: nanopb.KindText, Get: func() (nanopb.Value, error) {
			return nanopb.Text(m.Name), nil
		}},
		{Name: "id", Kind: nanopb.KindScalar, Get: func() (nanopb.Value, error) {
			return nanopb.Int32(m.Id), nil
		}},
		{Name: "email", Kind: nanopb.KindText, Get: func() (nanopb.Value, error) {
			if m.Email == nil {
				return nanopb.Absent(), nil
			}
			return nanopb.Text(*m.Email), nil
		}},
		{Name: "phones", Kind: nanopb.KindRepeated, Get: func() (nanopb.Value, error) {
			elems := make([]nanopb.Value, 0, len(m.Phones))
			for _, phone := range m.Phones {
				if phone == nil {
					elems = append(elems, nanopb.Absent())
					continue
				}
				elems = append(elems, nanopb.Nested(phone))
			}
			return nanopb.Repeated(elems...), nil
		}},
		{Name: "key", Kind: nanopb.KindBytes, Get: func() (nanopb.Value, error) {
			if m.Key == nil {
				return nanopb.Absent(), nil
			}
			return nanopb.Bytes(m.Key), nil
		}},
		{Name: "cachedSize_", Kind: nanopb.KindScalar, Get: func() (nanopb.Value, error) {
			return nanopb.Int32(m.cachedSize), nil
		}},
	}
}

type AddressBook struct {
	Owner   *Person
	People  []*Person
	Tags    []string
	HomeUrl string
}

func (m *AddressBook) Reset()         { *m = AddressBook{} }
func (m *AddressBook) String() string { return textprint.Print(m) }
func (*AddressBook) ProtoMessage()    {}

func (m *AddressBook) ProtoFields() []nanopb.FieldDesc {
	return []nanopb.FieldDesc{
		{Name: "owner", Kind: nanopb.KindNested, Get: func() (nanopb.Value, error) {
			if m.Owner == nil {
				return nanopb.Absent(), nil
			}
			return nanopb.Nested(m.Owner), nil
		}},
		{Name: "people", Kind: nanopb.KindRepeated, Get: func() (nanopb.Value, error) {
			elems := make([]nanopb.Value, 0, len(m.People))
			for _, p := range m.People {
				if p == nil {
					elems = append(elems, nanopb.Absent())
					continue
				}
				elems = append(elems, nanopb.Nested(p))
			}
			return nanopb.Repeated(elems...), nil
		}},
		{Name: "tags", Kind: nanopb.KindRepeated, Get: func() (nanopb.Value, error) {
			elems := make([]nanopb.Value, 0, len(m.Tags))
			for _, tag := range m.Tags {
				elems = append(elems, nanopb.Text(tag))
			}
			return nanopb.Repeated(elems...), nil
		}},
		{Name: "homeUrl", Kind: nanopb.KindText, Get: func() (nanopb.Value, error) {
			if m.HomeUrl == "" {
				return nanopb.Absent(), nil
			}
			return nanopb.Text(m.HomeUrl), nil
		}},
	}
}

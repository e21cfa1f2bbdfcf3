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

package textprint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matrixorigin/nanotext/pkg/common/moerr"
)

// wirePhone mimics what protoc-gen-gogo emits, including the
// bookkeeping fields the printer must skip.
type wirePhone struct {
	Number string
	Type   int32
}

func (m *wirePhone) Reset()         { *m = wirePhone{} }
func (m *wirePhone) String() string { return PrintReflect(m) }
func (*wirePhone) ProtoMessage()    {}

type wirePerson struct {
	Name   string
	Id     int32
	Active bool
	Phone  *wirePhone
	Tags   []string
	Key    []byte
	Size_  int32

	XXX_unrecognized []byte
	xxxHidden        int32
}

func (m *wirePerson) Reset()         { *m = wirePerson{} }
func (m *wirePerson) String() string { return PrintReflect(m) }
func (*wirePerson) ProtoMessage()    {}

func TestFormatReflect(t *testing.T) {
	msg := &wirePerson{
		Name:   "carol",
		Id:     3,
		Active: true,
		Phone:  &wirePhone{Number: "555-0100", Type: 2},
		Tags:   []string{"a", "b"},
		Key:    []byte{0x41, 0x09},
		Size_:  99,

		XXX_unrecognized: []byte{1, 2},
		xxxHidden:        5,
	}
	want := "name: \"carol\"\n" +
		"id: 3\n" +
		"active: true\n" +
		"phone <\n" +
		"  number: \"555-0100\"\n" +
		"  type: 2\n" +
		">\n" +
		"tags: \"a\"\n" +
		"tags: \"b\"\n" +
		"key: \"A\\011\"\n"
	text, err := FormatReflect(msg)
	require.NoError(t, err)
	assert.Equal(t, want, text)
	assert.Equal(t, want, msg.String())
}

func TestFormatReflectAbsent(t *testing.T) {
	// nil pointers, nil slices and nil byte sequences emit nothing
	text, err := FormatReflect(&wirePerson{Name: "d"})
	require.NoError(t, err)
	assert.Equal(t, "name: \"d\"\nid: 0\nactive: false\n", text)
}

func TestFormatReflectNil(t *testing.T) {
	text, err := FormatReflect(nil)
	require.NoError(t, err)
	assert.Equal(t, "", text)

	var typedNil *wirePerson
	text, err = FormatReflect(typedNil)
	require.NoError(t, err)
	assert.Equal(t, "", text)
}

type wireBad struct {
	Lookup map[string]int
}

func (m *wireBad) Reset()         { *m = wireBad{} }
func (m *wireBad) String() string { return PrintReflect(m) }
func (*wireBad) ProtoMessage()    {}

func TestPrintReflectUnsupportedKind(t *testing.T) {
	msg := &wireBad{Lookup: map[string]int{"x": 1}}
	_, err := FormatReflect(msg)
	require.Error(t, err)
	assert.True(t, moerr.IsMoErrCode(err, moerr.ErrInvalidInput))
	assert.Contains(t, PrintReflect(msg), "Error printing proto: ")
}

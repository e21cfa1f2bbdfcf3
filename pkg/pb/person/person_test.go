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

package person

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matrixorigin/nanotext/pkg/textprint"
)

func TestPersonString(t *testing.T) {
	email := "alice@example.com"
	p := &Person{
		Name:  "alice",
		Id:    1,
		Email: &email,
		Phones: []*PhoneNumber{
			{Number: "555-0100", Type: PhoneTypeWork},
			{Number: "555-0101", Type: PhoneTypeHome},
		},
		Key: []byte("k1"),

		cachedSize: 32,
	}
	want := "name: \"alice\"\n" +
		"id: 1\n" +
		"email: \"alice@example.com\"\n" +
		"phones <\n" +
		"  number: \"555-0100\"\n" +
		"  type: 2\n" +
		">\n" +
		"phones <\n" +
		"  number: \"555-0101\"\n" +
		"  type: 1\n" +
		">\n" +
		"key: \"k1\"\n"
	assert.Equal(t, want, p.String())
}

func TestPersonUnsetFields(t *testing.T) {
	p := &Person{Name: "bob", Id: 2}
	assert.Equal(t, "name: \"bob\"\nid: 2\n", p.String())
}

func TestAddressBookString(t *testing.T) {
	book := &AddressBook{
		Owner:   &Person{Name: "carol", Id: 3},
		People:  []*Person{{Name: "dave", Id: 4}, nil, {Name: "eve", Id: 5}},
		Tags:    []string{"work", "home"},
		HomeUrl: "http://" + strings.Repeat("x", 300),
	}
	text := book.String()
	assert.True(t, strings.HasPrefix(text, "owner <\n  name: \"carol\"\n  id: 3\n>\n"))
	// nil element in a repeated field emits nothing
	assert.Equal(t, 2, strings.Count(text, "people <\n"))
	assert.Contains(t, text, "tags: \"work\"\ntags: \"home\"\n")
	// urls are exempt from the length cap
	assert.Contains(t, text, "home_url: \"http://"+strings.Repeat("x", 300)+"\"\n")
}

func TestReflectMatchesDescriptors(t *testing.T) {
	email := "f@example.com"
	book := &AddressBook{
		Owner: &Person{
			Name:  "frank",
			Id:    6,
			Email: &email,
			Phones: []*PhoneNumber{
				{Number: "555-0199", Type: PhoneTypeMobile},
			},
			Key: []byte{0x00, 0x41},
		},
		People:  []*Person{{Name: "grace", Id: 7, Email: &email, Key: []byte("g")}},
		Tags:    []string{"t"},
		HomeUrl: "http://example.com",
	}
	fromDesc, err := textprint.Format(book)
	require.NoError(t, err)
	fromReflect, err := textprint.FormatReflect(book)
	require.NoError(t, err)
	assert.Equal(t, fromDesc, fromReflect)
}

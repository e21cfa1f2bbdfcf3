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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type emptyMessage struct{}

func (m *emptyMessage) ProtoFields() []FieldDesc { return nil }

func TestScalarText(t *testing.T) {
	tests := []struct {
		v    Value
		want string
	}{
		{Bool(true), "true"},
		{Bool(false), "false"},
		{Int32(-7), "-7"},
		{Int64(1 << 40), "1099511627776"},
		{Uint32(7), "7"},
		{Uint64(18446744073709551615), "18446744073709551615"},
		{Float32(1.5), "1.5"},
		{Float64(-0.25), "-0.25"},
		{Enum(3), "3"},
	}
	for _, tt := range tests {
		assert.Equal(t, KindScalar, tt.v.Kind())
		assert.Equal(t, tt.want, tt.v.ScalarText())
	}
}

func TestValueKinds(t *testing.T) {
	assert.Equal(t, KindAbsent, Absent().Kind())
	assert.Equal(t, KindAbsent, Value{}.Kind())
	assert.Equal(t, KindText, Text("x").Kind())
	assert.Equal(t, KindBytes, Bytes(nil).Kind())
	assert.Equal(t, KindBytes, Bytes([]byte("x")).Kind())
	assert.Equal(t, KindNested, Nested(&emptyMessage{}).Kind())
	assert.Equal(t, KindAbsent, Nested(nil).Kind())
	assert.Equal(t, KindRepeated, Repeated(Int32(1), Int32(2)).Kind())
	assert.Len(t, Repeated(Int32(1), Int32(2)).Elems(), 2)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "absent", KindAbsent.String())
	assert.Equal(t, "repeated", KindRepeated.String())
	assert.Equal(t, "unknown", Kind(99).String())
}

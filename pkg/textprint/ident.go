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
	"strings"
	"unicode"
)

// deCamel converts an identifier of the format "fieldName" into
// "field_name".  The first rune is lowercased unconditionally, every
// later uppercase rune becomes '_' plus its lowercase form, and
// everything else passes through.  The transform is not invertible
// for identifiers with adjacent uppercase letters ("ABC" becomes
// "a_b_c").
func deCamel(identifier string) string {
	var out strings.Builder
	out.Grow(len(identifier))
	for i, r := range identifier {
		switch {
		case i == 0:
			out.WriteRune(unicode.ToLower(r))
		case unicode.IsUpper(r):
			out.WriteByte('_')
			out.WriteRune(unicode.ToLower(r))
		default:
			out.WriteRune(r)
		}
	}
	return out.String()
}

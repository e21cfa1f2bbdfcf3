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
	"fmt"
	"strings"
)

// sanitizeString shortens and escapes a string leaf.  Strings longer
// than MaxStringLen runes are cut and marked, unless they carry one
// of the no-truncate prefixes (URLs by default, which become useless
// when cut).
func (p *Printer) sanitizeString(s string) string {
	if !p.hasNoTruncatePrefix(s) {
		if runes := []rune(s); len(runes) > p.cfg.MaxStringLen {
			s = string(runes[:p.cfg.MaxStringLen]) + p.cfg.TruncationMarker
		}
	}
	return escapeString(s)
}

func (p *Printer) hasNoTruncatePrefix(s string) bool {
	for _, prefix := range p.cfg.NoTruncatePrefixes {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}

// escapeString escapes everything except for low ASCII code points.
// Both quote characters are escaped so the result can sit between
// double quotes without further care.
func escapeString(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= ' ' && r <= '~' && r != '"' && r != '\'' {
			b.WriteRune(r)
		} else {
			fmt.Fprintf(&b, "\\u%04x", r)
		}
	}
	return b.String()
}

// quoteBytes renders a byte sequence as a double-quoted string:
// printable ASCII stays literal, backslash and double quote get a
// backslash, everything else becomes a 3-digit octal escape.  A nil
// slice yields an empty quoted pair.
func quoteBytes(bytes []byte) string {
	if bytes == nil {
		return `""`
	}
	var b strings.Builder
	b.Grow(len(bytes) + 2)
	b.WriteByte('"')
	for _, ch := range bytes {
		switch {
		case ch == '\\' || ch == '"':
			b.WriteByte('\\')
			b.WriteByte(ch)
		case ch >= 32 && ch < 127:
			b.WriteByte(ch)
		default:
			fmt.Fprintf(&b, "\\%03o", ch)
		}
	}
	b.WriteByte('"')
	return b.String()
}

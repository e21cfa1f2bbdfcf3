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

// Package textprint renders nanopb messages as indented, mostly
// TextFormat-compatible debug text.  Output is one-directional: the
// text is for human inspection and is not guaranteed to parse back.
package textprint

import (
	"context"
	"strings"

	"github.com/matrixorigin/nanotext/pkg/common/moerr"
	"github.com/matrixorigin/nanotext/pkg/nanopb"
)

const errorPrefix = "Error printing proto: "

// Printer renders messages under one Config. A Printer holds no
// per-call state, so one instance may be used from many goroutines.
// The package-level Print/Format functions use the default Config.
type Printer struct {
	cfg Config
}

func NewPrinter(cfg Config) *Printer {
	cfg.fillDefaults()
	return &Printer{cfg: cfg}
}

var defaultPrinter = NewPrinter(Config{})

// Print renders msg with the default Config.  A nil message yields
// "".  On a field access failure the returned string is the single
// line "Error printing proto: <cause>"; callers that need to branch
// on failure should use Format instead.
func Print(msg nanopb.Message) string {
	return defaultPrinter.Print(msg)
}

// Format renders msg with the default Config, surfacing failures as
// an error instead of collapsing them into the output string.
func Format(msg nanopb.Message) (string, error) {
	return defaultPrinter.Format(msg)
}

func (p *Printer) Print(msg nanopb.Message) string {
	text, err := p.Format(msg)
	if err != nil {
		return errorText(err)
	}
	return text
}

func errorText(err error) string {
	return errorPrefix + err.Error()
}

// Format returns either the complete rendered text or an error, never
// a partially rendered buffer.
func (p *Printer) Format(msg nanopb.Message) (string, error) {
	if msg == nil {
		return "", nil
	}
	var buf strings.Builder
	// The root message renders its children bare, without the
	// "name <" / ">" wrapper a nested message gets.
	if err := p.renderFields(&buf, msg, 0); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// printableFields filters the descriptor list down to the data fields
// intended for output: the descriptor must carry an accessor, and the
// name must not begin or end with an underscore (the naming convention
// for internal bookkeeping fields such as "cachedSize_").
func printableFields(msg nanopb.Message) []nanopb.FieldDesc {
	all := msg.ProtoFields()
	fields := make([]nanopb.FieldDesc, 0, len(all))
	for _, f := range all {
		if f.Get == nil {
			continue
		}
		if strings.HasPrefix(f.Name, "_") || strings.HasSuffix(f.Name, "_") {
			continue
		}
		fields = append(fields, f)
	}
	return fields
}

func (p *Printer) renderFields(buf *strings.Builder, msg nanopb.Message, depth int) error {
	for _, f := range printableFields(msg) {
		v, err := f.Get()
		if err != nil {
			return moerr.NewFieldAccess(context.TODO(), f.Name, err)
		}
		if err := p.render(buf, f.Name, v, depth); err != nil {
			return err
		}
	}
	return nil
}

// render emits the lines for a single field value.  Repeated values
// re-enter render once per element under the same identifier; nested
// messages recurse one indent level deeper.  Depth is passed by value,
// so sibling fields always render at the depth render was called
// with.
func (p *Printer) render(buf *strings.Builder, name string, v nanopb.Value, depth int) error {
	switch v.Kind() {
	case nanopb.KindAbsent:
		// unset field, no output
	case nanopb.KindNested:
		msg := v.Message()
		if msg == nil {
			return nil
		}
		p.writeIndent(buf, depth)
		buf.WriteString(deCamel(name))
		buf.WriteString(" <\n")
		if err := p.renderFields(buf, msg, depth+1); err != nil {
			return err
		}
		p.writeIndent(buf, depth)
		buf.WriteString(">\n")
	case nanopb.KindRepeated:
		for _, elem := range v.Elems() {
			if err := p.render(buf, name, elem, depth); err != nil {
				return err
			}
		}
	case nanopb.KindText:
		p.writeLeaf(buf, name, `"`+p.sanitizeString(v.Text())+`"`, depth)
	case nanopb.KindBytes:
		p.writeLeaf(buf, name, quoteBytes(v.Bytes()), depth)
	case nanopb.KindScalar:
		p.writeLeaf(buf, name, v.ScalarText(), depth)
	default:
		return moerr.NewInternalError(context.TODO(), "unexpected value kind %v for field %s", v.Kind(), name)
	}
	return nil
}

func (p *Printer) writeLeaf(buf *strings.Builder, name, text string, depth int) {
	p.writeIndent(buf, depth)
	buf.WriteString(deCamel(name))
	buf.WriteString(": ")
	buf.WriteString(text)
	buf.WriteByte('\n')
}

func (p *Printer) writeIndent(buf *strings.Builder, depth int) {
	for i := 0; i < depth; i++ {
		buf.WriteString(p.cfg.Indent)
	}
}

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
	"context"
	"fmt"
	"reflect"
	"strings"

	"github.com/gogo/protobuf/proto"

	"github.com/matrixorigin/nanotext/pkg/common/moerr"
)

// FormatReflect renders a generated protobuf struct without a nanopb
// descriptor, walking its exported fields with reflection the way the
// original nano printer did.  Generated bookkeeping fields (XXX_* and
// trailing-underscore names such as Size_) are skipped, []byte is a
// leaf, other slices are repeated, nil pointers are absent.
func FormatReflect(msg proto.Message) (string, error) {
	return defaultPrinter.FormatReflect(msg)
}

// PrintReflect is to FormatReflect what Print is to Format.
func PrintReflect(msg proto.Message) string {
	return defaultPrinter.PrintReflect(msg)
}

func (p *Printer) PrintReflect(msg proto.Message) string {
	text, err := p.FormatReflect(msg)
	if err != nil {
		return errorText(err)
	}
	return text
}

func (p *Printer) FormatReflect(msg proto.Message) (string, error) {
	if msg == nil {
		return "", nil
	}
	v := reflect.ValueOf(msg)
	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return "", nil
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return "", moerr.NewInvalidInput(context.TODO(), "message must be a struct, got %s", v.Kind())
	}
	var buf strings.Builder
	if err := p.renderStruct(&buf, v, 0); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (p *Printer) renderStruct(buf *strings.Builder, v reflect.Value, depth int) error {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.PkgPath != "" {
			// unexported, not part of the data contract
			continue
		}
		name := field.Name
		if strings.HasPrefix(name, "XXX_") ||
			strings.HasPrefix(name, "_") || strings.HasSuffix(name, "_") {
			continue
		}
		fv := v.Field(i)
		if !fv.CanInterface() {
			return moerr.NewFieldAccess(context.TODO(), name,
				fmt.Errorf("value of %s is not readable", t.Name()))
		}
		if err := p.renderReflected(buf, name, fv, depth); err != nil {
			return err
		}
	}
	return nil
}

func (p *Printer) renderReflected(buf *strings.Builder, name string, fv reflect.Value, depth int) error {
	switch fv.Kind() {
	case reflect.Ptr, reflect.Interface:
		if fv.IsNil() {
			return nil
		}
		return p.renderReflected(buf, name, fv.Elem(), depth)
	case reflect.Struct:
		p.writeIndent(buf, depth)
		buf.WriteString(deCamel(name))
		buf.WriteString(" <\n")
		if err := p.renderStruct(buf, fv, depth+1); err != nil {
			return err
		}
		p.writeIndent(buf, depth)
		buf.WriteString(">\n")
	case reflect.Slice, reflect.Array:
		// bytes is special: array-like, but a leaf
		if fv.Type().Elem().Kind() == reflect.Uint8 {
			if fv.Kind() == reflect.Slice && fv.IsNil() {
				return nil
			}
			p.writeLeaf(buf, name, quoteBytes(toByteSlice(fv)), depth)
			return nil
		}
		for i := 0; i < fv.Len(); i++ {
			if err := p.renderReflected(buf, name, fv.Index(i), depth); err != nil {
				return err
			}
		}
	case reflect.String:
		p.writeLeaf(buf, name, `"`+p.sanitizeString(fv.String())+`"`, depth)
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		p.writeLeaf(buf, name, fmt.Sprintf("%v", fv.Interface()), depth)
	default:
		return moerr.NewInvalidInput(context.TODO(),
			"field %s has unsupported kind %s", name, fv.Kind())
	}
	return nil
}

func toByteSlice(fv reflect.Value) []byte {
	if fv.Kind() == reflect.Slice {
		return fv.Bytes()
	}
	out := make([]byte, fv.Len())
	for i := range out {
		out[i] = byte(fv.Index(i).Uint())
	}
	return out
}

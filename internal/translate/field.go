// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 D-os Project Authors

package translate

import (
	"strings"
	"unicode"

	"github.com/D-os/hidl2aidl/internal/aidl/replaced"
	"github.com/D-os/hidl2aidl/internal/diag"
	"github.com/D-os/hidl2aidl/internal/formatter"
	"github.com/D-os/hidl2aidl/internal/hidl"
	"github.com/D-os/hidl2aidl/internal/merge"
)

// emitter carries the per-run state of one translation pass.
type emitter struct {
	backend  Backend
	inSet    map[hidl.NamedType]bool
	registry *replaced.Registry
	sink     *diag.Sink
}

// writeField emits the conversion of one merged field, dispatching on
// its classified kind. Every field yields either a real conversion or
// exactly one build-breaking marker.
func (e *emitter) writeField(w *formatter.Writer, parent *merge.Compound, f merge.Field) {
	desc := hidl.Classify(f.Field.Type)
	switch desc.Class {
	case hidl.ClassRecord, hidl.ClassUnion:
		e.writeNamedField(w, parent, f, desc.Named)
	case hidl.ClassSequence, hidl.ClassFixedArray:
		e.writeContainerField(w, parent, f, desc)
	case hidl.ClassScalar, hidl.ClassEnum, hidl.ClassString:
		e.writeSimpleField(w, parent, f)
	default:
		e.sink.Notef("An unhandled type was found in translation: %s", f.Field.Type.String())
		w.Printf("#error FIXME Unhandled type: %s\n", f.Field.Type.String())
	}
}

// writeNamedField converts a field of compound type, either through a
// nested translate call (type in the conversion set), a registered
// replacement snippet, or an unknown-type marker.
func (e *emitter) writeNamedField(w *formatter.Writer, parent *merge.Compound,
	f merge.Field, t hidl.NamedType) {
	if !e.inSet[t] {
		entry, ok := e.registry.Lookup(t.FQName())
		if !ok {
			e.sink.Notef("An unknown named type was found in translation: %s", t.FQName())
			w.Printf("#error FIXME Unknown type: %s\n", t.FQName())
			return
		}
		if entry.Notes != "" {
			e.sink.Notef("%s", entry.Notes)
		}
		if entry.Snippet != "" {
			w.Printf("%s\n", strings.TrimRight(entry.Snippet, "\n"))
		} else {
			w.Printf("// FIXME Field %s is of replaced type %s and must be converted manually.\n",
				f.Field.Name, t.FQName())
		}
		return
	}

	b := e.backend
	if parent.Type.Style == hidl.StyleStruct {
		if b.Managed() {
			w.Printf("out.%s = h2aTranslate(in.%s);\n", f.Field.Name, f.FullName)
		} else {
			w.Printf("if (!translate(in.%s, &out->%s)) return false;\n", f.FullName, f.Field.Name)
		}
		return
	}
	// Safe-union parent: get-by-tag access on the input, set-by-tag on
	// the output.
	if b.Managed() {
		w.Printf("out.set%s(h2aTranslate(in.%s()));\n", capitalize(f.Field.Name), f.FullName)
	} else {
		w.Printf("{\n")
		w.Printf("%s %s;\n", b.TypeRef(t), f.Field.Name)
		w.Printf("if (!translate(in.%s(), &%s)) return false;\n", f.FullName, f.Field.Name)
		w.Printf("out->set<%s::%s>(%s);\n", b.TypeRef(parent.Type), f.FullName, f.Field.Name)
		w.Printf("}\n")
	}
}

// writeContainerField converts a sequence or fixed-array field with a
// per-element loop. Nested containers and containers of non-enum named
// types have no safe conversion and produce a marker.
func (e *emitter) writeContainerField(w *formatter.Writer, parent *merge.Compound,
	f merge.Field, desc hidl.Descriptor) {
	elem := desc.Elem
	elemDesc := hidl.Classify(elem)
	switch elemDesc.Class {
	case hidl.ClassSequence, hidl.ClassFixedArray:
		e.sink.Notef("Nested arrays and vectors are not supported: field %s of %s.",
			f.Field.Name, parent.Type.FQName())
		w.Printf("#error Nested arrays and vectors are currently not supported. Needs implementation for field: %s\n",
			f.Field.Name)
		return
	case hidl.ClassRecord, hidl.ClassUnion, hidl.ClassInterface:
		e.sink.Notef("Arrays of named non-enum types are not supported: field %s of %s.",
			f.Field.Name, parent.Type.FQName())
		w.Printf("#error Arrays of NamedTypes are currently not supported. Needs implementation for field: %s\n",
			f.Field.Name)
		return
	}

	b := e.backend
	inputAccess := "in." + f.FullName
	if b.Managed() {
		sizeAccess, elemAccess := ".length", "[i]"
		if desc.Class == hidl.ClassSequence {
			sizeAccess, elemAccess = ".size()", ".get(i)"
		}
		w.Printf("if (%s != null) {\n", inputAccess)
		w.Indent(func() {
			w.Printf("out.%s = new %s[%s%s];\n", f.Field.Name, b.ElementType(elem), inputAccess, sizeAccess)
			w.Printf("for (int i = 0; i < %s%s; i++) {\n", inputAccess, sizeAccess)
			w.Indent(func() {
				writeScalarChecks(w, elem, inputAccess+elemAccess, b)
				w.Printf("out.%s[i] = %s%s;\n", f.Field.Name, inputAccess, elemAccess)
			})
			w.Printf("}\n")
		})
		w.Printf("}\n")
		return
	}

	size := inputAccess + ".size()"
	if desc.Class == hidl.ClassFixedArray {
		size = "sizeof(" + inputAccess + ")/sizeof(" + inputAccess + "[0])"
	}
	elementAccess := inputAccess + "[i]"
	w.Printf("{\n")
	w.Indent(func() {
		w.Printf("size_t size = %s;\n", size)
		w.Printf("for (size_t i = 0; i < size; i++) {\n")
		w.Indent(func() {
			writeScalarChecks(w, elem, elementAccess, b)
			if elemDesc.Class == hidl.ClassString && b.StringWrapNote() != "" {
				w.Printf("%s\n", b.StringWrapNote())
			}
			w.Printf("out->%s.push_back(%s);\n", f.Field.Name, b.WrapSource(elementAccess, elem))
		})
		w.Printf("}\n")
	})
	w.Printf("}\n")
}

// writeSimpleField converts a scalar, enum, or string field.
func (e *emitter) writeSimpleField(w *formatter.Writer, parent *merge.Compound, f merge.Field) {
	b := e.backend
	t := f.Field.Type
	inputAccess := "in." + f.FullName
	structStyle := parent.Type.Style == hidl.StyleStruct
	if !structStyle {
		inputAccess += "()"
	}
	writeScalarChecks(w, t, inputAccess, b)
	if hidl.Classify(t).Class == hidl.ClassString && b.StringWrapNote() != "" {
		w.Printf("%s\n", b.StringWrapNote())
	}
	switch {
	case b.Managed() && structStyle:
		w.Printf("out.%s = %s;\n", f.Field.Name, inputAccess)
	case b.Managed():
		w.Printf("out.set%s(%s);\n", capitalize(f.FullName), inputAccess)
	case structStyle:
		w.Printf("out->%s = %s;\n", f.Field.Name, b.WrapSource(inputAccess, t))
	default:
		w.Printf("*out = %s;\n", b.WrapSource(inputAccess, t))
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

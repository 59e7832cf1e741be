// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 D-os Project Authors

package translate

import (
	"fmt"
	"sort"
	"strings"

	"github.com/D-os/hidl2aidl/internal/aidl"
	"github.com/D-os/hidl2aidl/internal/aidl/replaced"
	"github.com/D-os/hidl2aidl/internal/diag"
	"github.com/D-os/hidl2aidl/internal/formatter"
	"github.com/D-os/hidl2aidl/internal/hidl"
	"github.com/D-os/hidl2aidl/internal/merge"
)

const fileHeader = "// FIXME: license file, or use the -l option to generate the files with the header.\n\n"

// Translation emits the translate declaration and implementation
// artifacts of one package for every requested backend. namedTypes is
// the full conversion set in schema order; processed holds the
// reconciled field sets of its compound types.
func Translation(pkg hidl.FQName, namedTypes []hidl.NamedType,
	processed map[*hidl.CompoundType]*merge.Compound,
	backends []Backend, registry *replaced.Registry,
	sink *diag.Sink, arts Artifacts) {
	if len(processed) == 0 {
		return
	}
	inSet := make(map[hidl.NamedType]bool, len(namedTypes))
	for _, t := range namedTypes {
		inSet[t] = true
	}
	for _, b := range backends {
		e := &emitter{backend: b, inSet: inSet, registry: registry, sink: sink}
		if !b.Managed() {
			arts.Add("include/"+b.HeaderFile(pkg), e.translateHeader(namedTypes, processed))
		}
		arts.Add(b.SourceFile(pkg), e.translateSource(pkg, namedTypes, processed))
	}
}

// signature renders the translate-function declaration for one type.
func signature(b Backend, t hidl.NamedType) string {
	if b.Managed() {
		return fmt.Sprintf("static public %s h2aTranslate(%s in)", b.TypeRef(t), b.LegacyRef(t))
	}
	return fmt.Sprintf("__attribute__((warn_unused_result)) bool translate(const %s& in, %s* out)",
		b.LegacyRef(t), b.TypeRef(t))
}

// translateHeader emits the declaration artifact: the minimal include
// set plus one declaration per convertible compound type.
func (e *emitter) translateHeader(namedTypes []hidl.NamedType,
	processed map[*hidl.CompoundType]*merge.Compound) string {
	w := formatter.New()
	w.Printf(fileHeader)
	w.Printf("#pragma once\n\n")

	includes := make(map[string]bool)
	for _, t := range namedTypes {
		if !isProcessed(t, processed) && !hidl.IsEnum(t) {
			continue
		}
		includes[e.backend.CanonicalInclude(t)] = true
		includes[e.backend.LegacyInclude(t)] = true
	}
	sorted := make([]string, 0, len(includes))
	for inc := range includes {
		sorted = append(sorted, inc)
	}
	sort.Strings(sorted)
	w.Printf("%s\n\n", strings.Join(sorted, ""))

	w.Printf("namespace android::h2a {\n\n")
	for _, t := range namedTypes {
		if !isProcessed(t, processed) {
			continue
		}
		w.Printf("%s;\n", signature(e.backend, t))
	}
	w.Printf("\n}  // namespace android::h2a\n")
	return w.String()
}

// translateSource emits the implementation artifact: enum equivalence
// asserts, then one function per convertible compound type, fields in
// merge order.
func (e *emitter) translateSource(pkg hidl.FQName, namedTypes []hidl.NamedType,
	processed map[*hidl.CompoundType]*merge.Compound) string {
	b := e.backend
	w := formatter.New()
	w.Printf(fileHeader)
	if b.Managed() {
		w.Printf("package %s;\n\n", aidl.Package(pkg))
		w.Printf("public class Translate {\n")
	} else {
		w.Printf("#include \"%s\"\n\n", b.HeaderFile(namedTypes[0].FQName()))
		w.Printf("namespace android::h2a {\n\n")
		e.writeStaticAsserts(w, namedTypes)
	}

	for _, t := range namedTypes {
		compound, ok := t.(*hidl.CompoundType)
		if !ok {
			continue
		}
		p, ok := processed[compound]
		if !ok {
			continue
		}
		if compound.Style == hidl.StyleUnion {
			// No discriminator means no safe default field; leave a
			// stub for a human to complete. The managed runtime never
			// supported plain unions, so nothing is emitted there.
			if !b.Managed() {
				w.Printf("// FIXME not enough information to safely convert. Remove this function or fill it out using the custom discriminators.\n")
				w.Printf("// %s\n\n", signature(b, t))
			}
			continue
		}

		w.Printf("%s {\n", signature(b, t))
		w.Indent(func() {
			if b.Managed() {
				w.Printf("%s out = new %s();\n", b.TypeRef(t), b.TypeRef(t))
			}
			if compound.Style == hidl.StyleSafeUnion {
				e.writeDiscriminatorSwitch(w, p)
			} else {
				for _, field := range p.Fields {
					e.writeField(w, p, field)
				}
			}
			if b.Managed() {
				w.Printf("return out;\n")
			} else {
				w.Printf("return true;\n")
			}
		})
		w.Printf("}\n\n")
	}

	if b.Managed() {
		w.Printf("}\n")
	} else {
		w.Printf("}  // namespace android::h2a\n")
	}
	return w.String()
}

// writeDiscriminatorSwitch dispatches over the legacy discriminator tag:
// one case per merged field, plus a default that fails on discriminator
// values introduced by an unhandled evolution.
func (e *emitter) writeDiscriminatorSwitch(w *formatter.Writer, p *merge.Compound) {
	b := e.backend
	w.Printf("switch (in.getDiscriminator()) {\n")
	w.Indent(func() {
		for _, field := range p.Fields {
			if b.Managed() {
				w.Printf("case %s.hidl_discriminator.%s:\n", b.LegacyRef(p.Type), field.Field.Name)
			} else {
				w.Printf("case %s::hidl_discriminator::%s:\n", b.LegacyRef(p.Type), field.Field.Name)
			}
			w.Indent(func() {
				e.writeField(w, p, field)
				w.Printf("break;\n")
			})
		}
		w.Printf("default:\n")
		w.Indent(func() {
			if b.Managed() {
				w.Printf("throw new RuntimeException(\"Unknown discriminator value: \" + Integer.toString(in.getDiscriminator()));\n")
			} else {
				w.Printf("return false;\n")
			}
		})
	})
	w.Printf("}\n")
}

// writeStaticAsserts pins every enumerator of every enum in the package
// to the same backing value in both dialects. Mismatches break the
// generated code at compile time rather than corrupting data at runtime.
func (e *emitter) writeStaticAsserts(w *formatter.Writer, namedTypes []hidl.NamedType) {
	b := e.backend
	for _, t := range namedTypes {
		enum, ok := t.(*hidl.EnumType)
		if !ok {
			continue
		}
		for _, value := range enum.Values {
			w.Printf("static_assert(%s::%s == static_cast<%s>(%s::%s));\n",
				b.TypeRef(enum), value.Name, b.TypeRef(enum), b.LegacyRef(enum), value.Name)
		}
		w.Printf("\n")
	}
}

func isProcessed(t hidl.NamedType, processed map[*hidl.CompoundType]*merge.Compound) bool {
	compound, ok := t.(*hidl.CompoundType)
	if !ok {
		return false
	}
	_, ok = processed[compound]
	return ok
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 D-os Project Authors

package aidl

import (
	"embed"
	"sort"
	"strings"
	"text/template"

	"github.com/D-os/hidl2aidl/internal/diag"
	"github.com/D-os/hidl2aidl/internal/formatter"
	"github.com/D-os/hidl2aidl/internal/hidl"
	"github.com/D-os/hidl2aidl/internal/merge"
)

//go:embed definition.aidl.tmpl
var tmplFS embed.FS

var fileTmpl = template.Must(template.ParseFS(tmplFS, "definition.aidl.tmpl"))

type fileData struct {
	Package string
	Imports []string
	Body    string
}

// Definition emits the canonical-dialect definition of one named type
// and returns the artifact path and content. Unconvertible constructs
// (typedefs, plain unions) produce a commented stub plus a note instead
// of a definition.
func Definition(t hidl.NamedType, processed map[*hidl.CompoundType]*merge.Compound,
	sink *diag.Sink) (string, string) {
	body := formatter.New()
	var imports []string

	switch v := t.(type) {
	case *hidl.TypedefType:
		writeTypedefStub(body, v, sink)
	case *hidl.EnumType:
		writeEnumDefinition(body, v)
	case *hidl.CompoundType:
		imports = writeCompoundDefinition(body, v, processed[v], sink)
	default:
		body.Printf("// FIXME Unhandled named type %s\n", t.FQName())
		sink.Notef("An unhandled named type could not be defined: %s", t.FQName())
	}

	var out strings.Builder
	err := fileTmpl.Execute(&out, fileData{
		Package: Package(t.FQName()),
		Imports: imports,
		Body:    body.String(),
	})
	if err != nil {
		// The template is static and the data is plain strings.
		panic(err)
	}
	return PackagePath(t.FQName()) + "/" + Name(t.FQName()) + ".aidl", out.String()
}

func writeDocComment(w *formatter.Writer, doc string) {
	if doc == "" {
		return
	}
	w.Printf("/**\n")
	for _, line := range strings.Split(strings.TrimRight(doc, "\n"), "\n") {
		w.Printf(" * %s\n", line)
	}
	w.Printf(" */\n")
}

// writeConversionNotes reproduces the legacy definition, commented out.
func writeConversionNotes(w *formatter.Writer, t hidl.NamedType) {
	w.Printf("// This is the legacy definition of %s\n", t.FQName())
	w.PushLinePrefix("// ")
	hidl.WriteLegacyDefinition(w, t)
	w.PopLinePrefix()
	w.Printf("\n")
}

func writeTypedefStub(w *formatter.Writer, t *hidl.TypedefType, sink *diag.Sink) {
	w.Printf("// Cannot convert typedef %s %s since the canonical dialect does not support typedefs.\n",
		t.Target.String(), t.FQName())
	writeConversionNotes(w, t)
	sink.Notef("Cannot convert typedef %s. Please manually inline the target type.", t.FQName())
}

func writeEnumDefinition(w *formatter.Writer, t *hidl.EnumType) {
	writeDocComment(w, t.DocComment())
	w.Printf("@Backing(type=\"%s\")\n", ScalarType(t.Storage))
	w.Printf("enum %s {\n", Name(t.FQName()))
	w.Indent(func() {
		for _, value := range t.Values {
			writeDocComment(w, value.Doc)
			if value.Value != "" {
				w.Printf("%s = %s,\n", value.Name, value.Value)
			} else {
				w.Printf("%s,\n", value.Name)
			}
		}
	})
	w.Printf("}\n")
}

func writeCompoundDefinition(w *formatter.Writer, t *hidl.CompoundType,
	p *merge.Compound, sink *diag.Sink) []string {
	if t.Style == hidl.StyleUnion {
		w.Printf("parcelable %s {}\n", Name(t.FQName()))
		w.Printf("// Cannot convert union %s: a union without a discriminator has no safe conversion.\n",
			t.FQName())
		writeConversionNotes(w, t)
		sink.Notef("Cannot convert union %s since it carries no discriminator.", t.FQName())
		return nil
	}

	fields := t.Fields
	if p != nil {
		// Use the reconciled field set so fields from older revisions
		// survive in the canonical definition.
		fields = nil
		for _, f := range p.Fields {
			fields = append(fields, f.Field)
		}
	}

	writeDocComment(w, t.DocComment())
	keyword := "parcelable"
	if t.Style == hidl.StyleSafeUnion {
		keyword = "union"
	}
	w.Printf("%s %s {\n", keyword, Name(t.FQName()))
	w.Indent(func() {
		for _, f := range fields {
			writeDocComment(w, f.Doc)
			w.Printf("%s %s;\n", TypeName(f.Type, t.FQName()), f.Name)
		}
	})
	w.Printf("}\n")

	return fieldImports(t, fields)
}

// fieldImports collects canonical imports for named types referenced
// from another canonical package, deduplicated and sorted.
func fieldImports(t *hidl.CompoundType, fields []*hidl.Field) []string {
	seen := make(map[string]bool)
	for _, f := range fields {
		ref := referencedNamedType(f.Type)
		if ref == nil {
			continue
		}
		if Package(ref.FQName()) == Package(t.FQName()) {
			continue
		}
		seen[FQ(ref.FQName())] = true
	}
	if len(seen) == 0 {
		return nil
	}
	imports := make([]string, 0, len(seen))
	for imp := range seen {
		imports = append(imports, imp)
	}
	sort.Strings(imports)
	return imports
}

func referencedNamedType(t hidl.Type) hidl.NamedType {
	switch v := hidl.ResolveAlias(t).(type) {
	case *hidl.VecType:
		return referencedNamedType(v.Elem)
	case *hidl.ArrayType:
		return referencedNamedType(v.Elem)
	case hidl.NamedType:
		return v
	}
	return nil
}

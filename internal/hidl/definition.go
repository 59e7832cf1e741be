// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 D-os Project Authors

package hidl

import (
	"github.com/D-os/hidl2aidl/internal/formatter"
)

// WriteLegacyDefinition renders the legacy IDL spelling of a named type.
// The converter reproduces it, commented out, wherever a construct could
// not be converted so a human can finish the job by hand.
func WriteLegacyDefinition(w *formatter.Writer, t NamedType) {
	switch v := t.(type) {
	case *TypedefType:
		w.Printf("typedef %s %s;\n", v.Target.String(), v.FQ.DefinedName())
	case *EnumType:
		w.Printf("enum %s : %s {\n", v.FQ.DefinedName(), v.Storage)
		w.Indent(func() {
			for _, val := range v.Values {
				if val.Value != "" {
					w.Printf("%s = %s,\n", val.Name, val.Value)
				} else {
					w.Printf("%s,\n", val.Name)
				}
			}
		})
		w.Printf("};\n")
	case *CompoundType:
		w.Printf("%s %s {\n", v.Style, v.FQ.DefinedName())
		w.Indent(func() {
			for _, sub := range v.SubTypes {
				WriteLegacyDefinition(w, sub)
			}
			for _, f := range v.Fields {
				w.Printf("%s %s;\n", f.Type.String(), f.Name)
			}
		})
		w.Printf("};\n")
	case *InterfaceType:
		w.Printf("interface %s {\n", v.FQ.DefinedName())
		w.Indent(func() {
			for _, sub := range v.Types {
				WriteLegacyDefinition(w, sub)
			}
		})
		w.Printf("};\n")
	}
}

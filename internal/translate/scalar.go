// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 D-os Project Authors

package translate

import (
	"math"

	"github.com/D-os/hidl2aidl/internal/formatter"
	"github.com/D-os/hidl2aidl/internal/hidl"
)

// signedMax maps the legacy scalar kinds that narrow into a signed
// canonical type to the maximum value the canonical type can represent.
// int16 is special: the canonical 16-bit character type is unsigned, so
// only negative values are rejected.
var signedMax = map[hidl.ScalarKind]uint64{
	hidl.ScalarUint8:  math.MaxInt8,
	hidl.ScalarInt16:  math.MaxInt32,
	hidl.ScalarUint32: math.MaxInt32,
	hidl.ScalarUint64: math.MaxInt64,
}

// writeScalarChecks emits the runtime narrowing guard for one scalar
// access. Out-of-range values make the generated conversion report
// failure instead of silently truncating. Enums never narrow; their
// value equivalence is asserted at generation time instead.
func writeScalarChecks(w *formatter.Writer, t hidl.Type, inputAccess string, b Backend) {
	if hidl.IsEnum(t) {
		return
	}
	kind, ok := hidl.ResolveToScalar(t)
	if !ok {
		return
	}
	limit, ok := signedMax[kind]
	if !ok {
		return
	}
	w.Printf("// FIXME This requires conversion between signed and unsigned. Change this if it doesn't suit your needs.\n")
	if kind == hidl.ScalarInt16 {
		w.Printf("if (%s < 0) {\n", inputAccess)
	} else {
		affix := ""
		if kind == hidl.ScalarUint64 {
			affix = "L"
		}
		w.Printf("if (%s > %d%s || %s < 0) {\n", inputAccess, limit, affix, inputAccess)
	}
	w.Indent(func() {
		if b.Managed() {
			w.Printf("throw new RuntimeException(\"Unsafe conversion between signed and unsigned scalars for field: %s\");\n",
				inputAccess)
		} else {
			w.Printf("return false;\n")
		}
	})
	w.Printf("}\n")
}

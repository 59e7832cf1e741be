// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 D-os Project Authors

package aidl

import (
	"github.com/D-os/hidl2aidl/internal/hidl"
)

var scalarTypes = map[hidl.ScalarKind]string{
	hidl.ScalarBool:   "boolean",
	hidl.ScalarInt8:   "byte",
	hidl.ScalarUint8:  "byte",
	hidl.ScalarInt16:  "char",
	hidl.ScalarUint16: "char",
	hidl.ScalarInt32:  "int",
	hidl.ScalarUint32: "int",
	hidl.ScalarInt64:  "long",
	hidl.ScalarUint64: "long",
	hidl.ScalarFloat:  "float",
	hidl.ScalarDouble: "double",
}

// ScalarType returns the canonical spelling of a legacy scalar kind.
func ScalarType(k hidl.ScalarKind) string {
	return scalarTypes[k]
}

// TypeName returns the canonical spelling of a legacy type as referenced
// from relativeTo's package: same-package named types by bare name,
// foreign ones fully qualified. The mapping is total; it never fails.
func TypeName(t hidl.Type, relativeTo hidl.FQName) string {
	switch v := hidl.ResolveAlias(t).(type) {
	case *hidl.ScalarType:
		return scalarTypes[v.Kind]
	case *hidl.StringType:
		return "String"
	case *hidl.VecType:
		return TypeName(v.Elem, relativeTo) + "[]"
	case *hidl.ArrayType:
		return TypeName(v.Elem, relativeTo) + "[]"
	case hidl.NamedType:
		if Package(v.FQName()) == Package(relativeTo) {
			return Name(v.FQName())
		}
		return FQ(v.FQName())
	default:
		return t.String()
	}
}

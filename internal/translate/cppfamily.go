// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 D-os Project Authors

package translate

import (
	"fmt"
	"strings"

	"github.com/D-os/hidl2aidl/internal/aidl"
	"github.com/D-os/hidl2aidl/internal/hidl"
)

// CPPFamily implements the Backend behavior shared by the native and NDK
// bindings, which differ only in namespace prefix, include layout, and
// string wrapping.
type CPPFamily struct {
	// Prefix is prepended to canonical namespace references
	// ("aidl::" for the NDK binding).
	Prefix string
}

// Managed reports false: cpp-family conversions use an out parameter and
// a bool result.
func (CPPFamily) Managed() bool { return false }

// TypeRef renders the canonical type as a namespace-qualified C++ name.
func (c CPPFamily) TypeRef(t hidl.NamedType) string {
	fq := t.FQName()
	pkg := strings.ReplaceAll(aidl.Package(fq), ".", "::")
	return c.Prefix + pkg + "::" + aidl.Name(fq)
}

// LegacyRef renders the legacy type as a fully-qualified C++ name,
// version namespace included.
func (CPPFamily) LegacyRef(t hidl.NamedType) string {
	fq := t.FQName()
	pkg := strings.ReplaceAll(fq.Package, ".", "::")
	return fmt.Sprintf("::%s::V%d_%d::%s",
		pkg, fq.Version.Major, fq.Version.Minor, strings.Join(fq.Parts(), "::"))
}

var cppScalarTypes = map[string]string{
	"boolean": "bool",
	"byte":    "int8_t",
	"char":    "char16_t",
	"int":     "int32_t",
	"long":    "int64_t",
	"float":   "float",
	"double":  "double",
}

// WrapSource casts scalars and enums to the exact canonical C++ type.
// String wrapping is backend-specific and layered on top.
func (c CPPFamily) WrapSource(payload string, t hidl.Type) string {
	resolved := hidl.ResolveAlias(t)
	if enum, ok := resolved.(*hidl.EnumType); ok {
		return fmt.Sprintf("static_cast<%s>(%s)", c.TypeRef(enum), payload)
	}
	if scalar, ok := resolved.(*hidl.ScalarType); ok {
		if cppType, ok := cppScalarTypes[aidl.ScalarType(scalar.Kind)]; ok {
			return fmt.Sprintf("static_cast<%s>(%s)", cppType, payload)
		}
	}
	return payload
}

// ElementType returns the canonical C++ storage type of a container
// element.
func (c CPPFamily) ElementType(t hidl.Type) string {
	resolved := hidl.ResolveAlias(t)
	if enum, ok := resolved.(*hidl.EnumType); ok {
		return c.TypeRef(enum)
	}
	if scalar, ok := resolved.(*hidl.ScalarType); ok {
		if cppType, ok := cppScalarTypes[aidl.ScalarType(scalar.Kind)]; ok {
			return cppType
		}
	}
	return "std::string"
}

// LegacyInclude returns the header declaring the legacy type: the
// enclosing interface header for interface-scoped types, the package
// types header otherwise.
func (CPPFamily) LegacyInclude(t hidl.NamedType) string {
	fq := t.FQName()
	pkgPath := strings.ReplaceAll(fq.Package, ".", "/")
	file := "types"
	if parts := fq.Parts(); len(parts) > 1 && strings.HasPrefix(parts[0], "I") {
		file = parts[0]
	}
	return fmt.Sprintf("#include \"%s/%s/%s.h\"\n", pkgPath, fq.Version, file)
}

// CanonicalIncludePath builds the canonical header include with an
// optional directory prefix ("aidl/" for the NDK binding).
func CanonicalIncludePath(t hidl.NamedType, prefix string) string {
	fq := t.FQName()
	return fmt.Sprintf("#include \"%s%s/%s.h\"\n", prefix, aidl.PackagePath(fq), aidl.Name(fq))
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 D-os Project Authors

// Package javabinding is the managed-runtime binding backend:
// object-returning, exception-based, no header artifact.
package javabinding

import (
	"fmt"
	"strings"

	"github.com/D-os/hidl2aidl/internal/aidl"
	"github.com/D-os/hidl2aidl/internal/hidl"
	"github.com/D-os/hidl2aidl/internal/translate"
)

func init() {
	// Auto-register on import
	translate.Register(New())
}

// Backend implements the managed-runtime binding.
type Backend struct{}

// New creates the managed-runtime binding backend.
func New() *Backend {
	return &Backend{}
}

// Name returns the backend's identifier.
func (b *Backend) Name() string {
	return "java"
}

// Managed reports true: conversions return the canonical object and
// signal failure by throwing.
func (b *Backend) Managed() bool {
	return true
}

// HeaderFile returns "": the managed binding has no header artifact.
func (b *Backend) HeaderFile(hidl.FQName) string {
	return ""
}

// SourceFile returns the translate implementation path.
func (b *Backend) SourceFile(fq hidl.FQName) string {
	return aidl.PackagePath(fq) + "/Translate.java"
}

// TypeRef renders the canonical type as a dotted name.
func (b *Backend) TypeRef(t hidl.NamedType) string {
	fq := t.FQName()
	return aidl.Package(fq) + "." + aidl.Name(fq)
}

// LegacyRef renders the legacy type under its version package
// (pkg.V1_2.Outer.Inner).
func (b *Backend) LegacyRef(t hidl.NamedType) string {
	fq := t.FQName()
	return fmt.Sprintf("%s.V%d_%d.%s", fq.Package, fq.Version.Major, fq.Version.Minor,
		strings.Join(fq.Parts(), "."))
}

// WrapSource returns payload unchanged: the managed runtime boxes
// values itself.
func (b *Backend) WrapSource(payload string, _ hidl.Type) string {
	return payload
}

// StringWrapNote returns "": managed strings copy as-is.
func (b *Backend) StringWrapNote() string {
	return ""
}

var javaScalarTypes = map[hidl.ScalarKind]string{
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

// ElementType renders the storage type of a container element.
func (b *Backend) ElementType(t hidl.Type) string {
	switch v := hidl.ResolveAlias(t).(type) {
	case *hidl.ScalarType:
		return javaScalarTypes[v.Kind]
	case *hidl.EnumType:
		return javaScalarTypes[v.Storage]
	default:
		return "String"
	}
}

// LegacyInclude returns "": the managed binding uses no includes.
func (b *Backend) LegacyInclude(hidl.NamedType) string {
	return ""
}

// CanonicalInclude returns "": the managed binding uses no includes.
func (b *Backend) CanonicalInclude(hidl.NamedType) string {
	return ""
}

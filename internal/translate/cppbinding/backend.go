// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 D-os Project Authors

// Package cppbinding is the native C++ binding backend. Its string type
// differs structurally from the legacy one, so string fields wrap into
// String16.
package cppbinding

import (
	"github.com/D-os/hidl2aidl/internal/aidl"
	"github.com/D-os/hidl2aidl/internal/hidl"
	"github.com/D-os/hidl2aidl/internal/translate"
)

func init() {
	// Auto-register on import
	translate.Register(New())
}

// Backend implements the native binding.
type Backend struct {
	translate.CPPFamily
}

// New creates the native binding backend.
func New() *Backend {
	return &Backend{}
}

// Name returns the backend's identifier.
func (b *Backend) Name() string {
	return "cpp"
}

// HeaderFile returns the translate declaration path.
func (b *Backend) HeaderFile(fq hidl.FQName) string {
	return aidl.PackagePath(fq) + "/translate-cpp.h"
}

// SourceFile returns the translate implementation path.
func (b *Backend) SourceFile(fq hidl.FQName) string {
	return aidl.PackagePath(fq) + "/translate-cpp.cpp"
}

// WrapSource wraps strings into String16 and casts scalars and enums.
func (b *Backend) WrapSource(payload string, t hidl.Type) string {
	if _, ok := hidl.ResolveAlias(t).(*hidl.StringType); ok {
		return "String16(" + payload + ".c_str())"
	}
	return b.CPPFamily.WrapSource(payload, t)
}

// StringWrapNote documents the accepted lossy edge of String16 wrapping.
func (b *Backend) StringWrapNote() string {
	return "// NOTE: Non-UTF-8 input silently becomes an empty string."
}

// CanonicalInclude returns the canonical binding header.
func (b *Backend) CanonicalInclude(t hidl.NamedType) string {
	return translate.CanonicalIncludePath(t, "")
}

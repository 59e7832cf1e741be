// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 D-os Project Authors

// Package ndkbinding is the NDK binding backend. Its string type is
// source-compatible with the legacy one, so strings copy as-is; the
// canonical namespace carries an aidl:: prefix.
package ndkbinding

import (
	"github.com/D-os/hidl2aidl/internal/aidl"
	"github.com/D-os/hidl2aidl/internal/hidl"
	"github.com/D-os/hidl2aidl/internal/translate"
)

func init() {
	// Auto-register on import
	translate.Register(New())
}

// Backend implements the NDK binding.
type Backend struct {
	translate.CPPFamily
}

// New creates the NDK binding backend.
func New() *Backend {
	return &Backend{CPPFamily: translate.CPPFamily{Prefix: "aidl::"}}
}

// Name returns the backend's identifier.
func (b *Backend) Name() string {
	return "ndk"
}

// HeaderFile returns the translate declaration path.
func (b *Backend) HeaderFile(fq hidl.FQName) string {
	return aidl.PackagePath(fq) + "/translate-ndk.h"
}

// SourceFile returns the translate implementation path.
func (b *Backend) SourceFile(fq hidl.FQName) string {
	return aidl.PackagePath(fq) + "/translate-ndk.cpp"
}

// StringWrapNote returns "": NDK strings copy without wrapping.
func (b *Backend) StringWrapNote() string {
	return ""
}

// CanonicalInclude returns the canonical binding header under aidl/.
func (b *Backend) CanonicalInclude(t hidl.NamedType) string {
	return translate.CanonicalIncludePath(t, "aidl/")
}

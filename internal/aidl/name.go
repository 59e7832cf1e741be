// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 D-os Project Authors

// Package aidl maps legacy qualified names and types into the canonical
// dialect, and emits canonical type definitions.
package aidl

import (
	"strconv"
	"strings"

	"github.com/D-os/hidl2aidl/internal/hidl"
)

// Name returns the canonical type name. Nested scopes concatenate:
// pkg@1.0::IBar.Baz -> IBarBaz.
func Name(fq hidl.FQName) string {
	return strings.Join(fq.Parts(), "")
}

// Package returns the canonical package. Major version 1 maps onto the
// bare package; greater majors append the major number so otherwise
// identical majors coexist as distinct packages:
// pkg@1.x -> pkg, pkg@2.x -> pkg2.
func Package(fq hidl.FQName) string {
	if fq.Version.Major <= 1 {
		return fq.Package
	}
	return fq.Package + strconv.Itoa(fq.Version.Major)
}

// PackagePath is Package with '.' replaced by '/'.
func PackagePath(fq hidl.FQName) string {
	return strings.ReplaceAll(Package(fq), ".", "/")
}

// FQ returns the canonical fully-qualified name: Package + "." + Name.
func FQ(fq hidl.FQName) string {
	return Package(fq) + "." + Name(fq)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 D-os Project Authors

// Package translate generates the runtime conversion functions that
// turn a legacy compound value into its canonical equivalent. One shared
// emitter consumes the reconciled field set; the output-language
// differences (accessor syntax, string wrapping, includes) live behind
// the Backend interface.
package translate

import (
	"fmt"
	"sort"

	"github.com/D-os/hidl2aidl/internal/hidl"
)

// Backend is one output-language variant of the generated conversion.
type Backend interface {
	// Name returns the backend's identifier (e.g., "cpp", "ndk").
	Name() string

	// Managed reports whether the backend targets an exception-based,
	// object-returning runtime. Managed backends have no header
	// artifact and no out parameter.
	Managed() bool

	// HeaderFile returns the path of the translate declaration artifact,
	// or "" when the backend has none.
	HeaderFile(fq hidl.FQName) string

	// SourceFile returns the path of the translate implementation
	// artifact.
	SourceFile(fq hidl.FQName) string

	// TypeRef renders a canonical type reference in backend syntax.
	TypeRef(t hidl.NamedType) string

	// LegacyRef renders a legacy type reference in backend syntax.
	LegacyRef(t hidl.NamedType) string

	// WrapSource wraps a source-value expression with whatever cast or
	// string conversion the backend needs for an assignment of type t.
	WrapSource(payload string, t hidl.Type) string

	// StringWrapNote returns a comment emitted alongside string
	// conversions whose representation differs structurally, or "".
	StringWrapNote() string

	// ElementType renders the storage type used when allocating a
	// container of t.
	ElementType(t hidl.Type) string

	// LegacyInclude returns the include line pulling in the legacy
	// definition of t, or "" when the backend does not use includes.
	LegacyInclude(t hidl.NamedType) string

	// CanonicalInclude returns the include line pulling in the
	// canonical definition of t, or "".
	CanonicalInclude(t hidl.NamedType) string
}

var backends = make(map[string]Backend)

// Register adds a backend to the registry.
func Register(b Backend) {
	backends[b.Name()] = b
}

// Get retrieves a backend by name.
func Get(name string) (Backend, error) {
	b, ok := backends[name]
	if !ok {
		return nil, fmt.Errorf("unknown backend: %s", name)
	}
	return b, nil
}

// Available returns all registered backend names, sorted.
func Available() []string {
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

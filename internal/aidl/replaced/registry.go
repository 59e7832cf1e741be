// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 D-os Project Authors

// Package replaced is the lookup from a legacy qualified type name to
// its hand-supplied canonical replacement. Absence of an entry means "no
// canonical equivalent exists"; an entry without a snippet replaces the
// type name only and leaves per-field conversion to a human.
package replaced

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/D-os/hidl2aidl/internal/hidl"
)

// Entry describes one replaced legacy type.
type Entry struct {
	// Aidl is the canonical fully-qualified replacement type.
	Aidl string `yaml:"aidl"`
	// Notes is appended to the conversion log whenever the type is
	// encountered.
	Notes string `yaml:"notes,omitempty"`
	// Snippet is a literal per-field conversion body inlined into the
	// translate function in place of the generated statement. Empty
	// means no automatic conversion exists.
	Snippet string `yaml:"snippet,omitempty"`
}

// Registry maps legacy fully-qualified names to replacement entries.
// It is populated once per run and read-only afterwards.
type Registry struct {
	entries map[string]Entry
}

// New returns a registry holding the built-in replacements.
func New() *Registry {
	return &Registry{entries: map[string]Entry{
		"android.hidl.safe_union@1.0::Monostate": {
			Aidl:    "boolean",
			Notes:   "Monostate replaced by a boolean with a meaningless value.",
			Snippet: "// Nothing to translate for Monostate.",
		},
	}}
}

// Load reads additional entries from a YAML file, overriding built-ins
// on conflict. The file is a map from legacy fully-qualified name to
// Entry.
func Load(path string) (*Registry, error) {
	r := New()
	data, err := os.ReadFile(path) //nolint:gosec // path comes from the tool config
	if err != nil {
		return nil, err
	}
	loaded := make(map[string]Entry)
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return nil, fmt.Errorf("replaced-type config %s: %w", path, err)
	}
	for name, entry := range loaded {
		if _, err := hidl.ParseFQName(name); err != nil {
			return nil, fmt.Errorf("replaced-type config %s: %w", path, err)
		}
		r.entries[name] = entry
	}
	return r, nil
}

// Lookup returns the replacement for a legacy type, if one is registered.
func (r *Registry) Lookup(fq hidl.FQName) (Entry, bool) {
	e, ok := r.entries[fq.String()]
	return e, ok
}

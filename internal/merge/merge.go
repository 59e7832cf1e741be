// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 D-os Project Authors

// Package merge reconciles every reachable minor-version revision of a
// compound type into one ordered field set.
//
// Legacy packages chain their version history by self-reference: a
// revision of a type declares a field whose type is the previous
// revision of the same type. Merging walks that chain, splicing the
// older fields in at the position of the self-referential field, and
// resolves duplicate field names with a newest-wins rule.
package merge

import (
	"github.com/D-os/hidl2aidl/internal/diag"
	"github.com/D-os/hidl2aidl/internal/hidl"
)

// Field is one merged field together with its provenance.
type Field struct {
	Field *hidl.Field
	// FullName is the access path of the field on the legacy input
	// value, e.g. "v1_0.sensorHandle" for a field spliced in from an
	// older revision.
	FullName string
	// Version is the revision that declared the winning occurrence.
	Version hidl.Version
}

// Compound is the reconciled view of a compound type: at most one field
// per final name, plus the set of nested types discovered along the way.
type Compound struct {
	Type     *hidl.CompoundType
	Fields   []Field
	SubTypes []hidl.NamedType
}

// Process merges compound with every older revision of itself reachable
// through self-reference. Collisions are resolved newest-wins and every
// collision is reported to sink with both contending revisions.
func Process(compound *hidl.CompoundType, sink *diag.Sink) *Compound {
	out := &Compound{Type: compound}
	visited := make(map[hidl.FQName]bool)
	process(compound, out, "", visited, sink)
	return out
}

func process(compound *hidl.CompoundType, out *Compound, fieldNamePrefix string,
	visited map[hidl.FQName]bool, sink *diag.Sink) {
	if visited[compound.FQName()] {
		// The original tooling only guarded against direct
		// self-reference; an indirect cycle through a third type would
		// recurse forever. Report and stop instead.
		sink.Notef("Cyclic version reference involving %s was ignored.", compound.FQName())
		return
	}
	visited[compound.FQName()] = true

	for _, sub := range compound.SubTypes {
		addSubType(out, sub)
	}

	version := compound.FQName().Version
	for _, field := range compound.Fields {
		if older, ok := olderRevisionOf(compound, field.Type); ok {
			process(older, out, fieldNamePrefix+field.Name+".", visited, sink)
			continue
		}
		idx := indexOfField(out.Fields, field.Name)
		if idx < 0 {
			out.Fields = append(out.Fields, Field{
				Field:    field,
				FullName: fieldNamePrefix + field.Name,
				Version:  version,
			})
			continue
		}
		existing := &out.Fields[idx]
		// Newest wins; a same-version tie is unexpected and resolves in
		// favor of the new occurrence.
		if !existing.Version.Newer(version) {
			sink.Notef("Found conflicting field name %q in different versions of %s. "+
				"Keeping %s from %s and discarding %s from %s.",
				field.Name, compound.FQName().DefinedName(),
				field.Type.String(), version,
				existing.Field.Type.String(), existing.Version)
			existing.Field = field
			existing.FullName = fieldNamePrefix + field.Name
			existing.Version = version
		} else {
			sink.Notef("Found conflicting field name %q in different versions of %s. "+
				"Keeping %s from %s and discarding %s from %s.",
				field.Name, compound.FQName().DefinedName(),
				existing.Field.Type.String(), existing.Version,
				field.Type.String(), version)
		}
	}
}

// olderRevisionOf reports whether fieldType is a previous revision of
// compound itself, the pattern used to chain version history.
func olderRevisionOf(compound *hidl.CompoundType, fieldType hidl.Type) (*hidl.CompoundType, bool) {
	ref, ok := hidl.ResolveAlias(fieldType).(*hidl.CompoundType)
	if !ok {
		return nil, false
	}
	if ref.FQName().Package != compound.FQName().Package ||
		ref.FQName().Name != compound.FQName().Name ||
		ref.FQName() == compound.FQName() {
		return nil, false
	}
	return ref, true
}

func addSubType(out *Compound, sub hidl.NamedType) {
	for _, existing := range out.SubTypes {
		if existing.FQName() == sub.FQName() {
			return
		}
	}
	out.SubTypes = append(out.SubTypes, sub)
}

func indexOfField(fields []Field, name string) int {
	for i := range fields {
		if fields[i].Field.Name == name {
			return i
		}
	}
	return -1
}

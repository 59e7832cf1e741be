// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 D-os Project Authors

// Package hidl models the legacy IDL schema objects handed to the
// conversion engine: qualified names, package versions, and the type
// system (scalars, enums, strings, containers, compound types).
package hidl

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Version is a (major, minor) package revision tag.
type Version struct {
	Major int
	Minor int
}

// Newer reports whether v is strictly newer than o.
// Ordering is by major version, then minor version.
func (v Version) Newer(o Version) bool {
	if v.Major != o.Major {
		return v.Major > o.Major
	}
	return v.Minor > o.Minor
}

// UpRev returns the next minor revision.
func (v Version) UpRev() Version {
	return Version{Major: v.Major, Minor: v.Minor + 1}
}

// DownRev returns the previous minor revision. Callers must not down-rev
// below minor 0.
func (v Version) DownRev() Version {
	return Version{Major: v.Major, Minor: v.Minor - 1}
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// ParseVersion parses a "major.minor" revision string.
func ParseVersion(s string) (Version, error) {
	major, minor, ok := strings.Cut(s, ".")
	if !ok {
		return Version{}, fmt.Errorf("invalid version %q: expected major.minor", s)
	}
	ma, err := strconv.Atoi(major)
	if err != nil {
		return Version{}, fmt.Errorf("invalid major version in %q", s)
	}
	mi, err := strconv.Atoi(minor)
	if err != nil {
		return Version{}, fmt.Errorf("invalid minor version in %q", s)
	}
	return Version{Major: ma, Minor: mi}, nil
}

// FQName is a fully-qualified legacy IDL name:
// package@major.minor::Outer.Inner. Name is empty for a name that refers
// to a package revision rather than a type.
type FQName struct {
	Package string
	Version Version
	Name    string
}

var fqNamePattern = regexp.MustCompile(
	`^([a-zA-Z_][a-zA-Z0-9_]*(?:\.[a-zA-Z_][a-zA-Z0-9_]*)*)@(\d+)\.(\d+)(?:::([a-zA-Z_][a-zA-Z0-9_]*(?:\.[a-zA-Z_][a-zA-Z0-9_]*)*))?$`)

// ParseFQName parses "package@major.minor(::Type(.Nested)*)?".
func ParseFQName(s string) (FQName, error) {
	m := fqNamePattern.FindStringSubmatch(s)
	if m == nil {
		return FQName{}, fmt.Errorf("invalid fully-qualified name %q", s)
	}
	major, _ := strconv.Atoi(m[2])
	minor, _ := strconv.Atoi(m[3])
	return FQName{
		Package: m[1],
		Version: Version{Major: major, Minor: minor},
		Name:    m[4],
	}, nil
}

func (f FQName) String() string {
	s := f.Package + "@" + f.Version.String()
	if f.Name != "" {
		s += "::" + f.Name
	}
	return s
}

// PackageAndVersion strips the type name.
func (f FQName) PackageAndVersion() FQName {
	f.Name = ""
	return f
}

// WithVersion returns the same name at a different revision.
func (f FQName) WithVersion(v Version) FQName {
	f.Version = v
	return f
}

// WithName returns the same package revision naming a different type.
func (f FQName) WithName(name string) FQName {
	f.Name = name
	return f
}

// Parts returns the nested-scope chain of the type name, outermost first.
func (f FQName) Parts() []string {
	if f.Name == "" {
		return nil
	}
	return strings.Split(f.Name, ".")
}

// DefinedName returns the innermost name component.
func (f FQName) DefinedName() string {
	parts := f.Parts()
	if len(parts) == 0 {
		return ""
	}
	return parts[len(parts)-1]
}

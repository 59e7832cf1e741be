// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 D-os Project Authors

// Package hidlyaml is the schema front end: it locates package revisions
// on disk and parses their YAML descriptions into hidl schema objects.
//
// A package revision lives in <root>/<package path>/<major>.<minor>/ and
// holds one or more YAML files, each declaring named types:
//
//	package: android.hardware.foo
//	version: "1.1"
//	types:
//	  - name: SensorInfo
//	    kind: struct
//	    fields:
//	      - name: prev
//	        type: "@1.0::SensorInfo"
//	      - name: handle
//	        type: int32_t
package hidlyaml

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/D-os/hidl2aidl/internal/hidl"
)

type fileDoc struct {
	Package  string    `yaml:"package"`
	Version  string    `yaml:"version"`
	Comments []string  `yaml:"comments,omitempty"`
	Types    []typeDoc `yaml:"types"`
}

type typeDoc struct {
	Name    string     `yaml:"name"`
	Kind    string     `yaml:"kind"`
	Doc     string     `yaml:"doc,omitempty"`
	Backing string     `yaml:"backing,omitempty"`
	Values  []valueDoc `yaml:"values,omitempty"`
	Fields  []fieldDoc `yaml:"fields,omitempty"`
	Target  string     `yaml:"target,omitempty"`
	Types   []typeDoc  `yaml:"types,omitempty"`
}

type valueDoc struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value,omitempty"`
	Doc   string `yaml:"doc,omitempty"`
}

type fieldDoc struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
	Doc  string `yaml:"doc,omitempty"`
}

// fixup defers reference resolution until every shell of the package
// revision exists, so forward and self references resolve.
type fixup func() error

func (c *Coordinator) parsePackage(fq hidl.FQName) (*hidl.Package, error) {
	dir := c.versionDir(fq)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrPackageNotFound, fq.PackageAndVersion())
	}
	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml") {
			files = append(files, name)
		}
	}
	sort.Strings(files)
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: %s has no schema files", ErrPackageNotFound, fq.PackageAndVersion())
	}

	pkg := &hidl.Package{FQ: fq.PackageAndVersion()}
	var fixups []fixup
	for _, file := range files {
		data, err := os.ReadFile(filepath.Join(dir, file)) //nolint:gosec // rooted at the schema dir
		if err != nil {
			return nil, err
		}
		var doc fileDoc
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", file, err)
		}
		if doc.Package != pkg.FQ.Package || doc.Version != pkg.FQ.Version.String() {
			return nil, fmt.Errorf("parsing %s: declares %s@%s, expected %s",
				file, doc.Package, doc.Version, pkg.FQ.PackageAndVersion())
		}
		pkg.UnplacedComments = append(pkg.UnplacedComments, doc.Comments...)
		for _, td := range doc.Types {
			t, fx, err := c.buildShell(pkg, pkg.FQ.WithName(td.Name), td)
			if err != nil {
				return nil, fmt.Errorf("parsing %s: %w", file, err)
			}
			pkg.Types = append(pkg.Types, t)
			fixups = append(fixups, fx...)
		}
	}

	// Register before resolving so self references across versions and
	// packages find the shells.
	c.pkgs[pkg.FQ.String()] = pkg
	for _, fx := range fixups {
		if err := fx(); err != nil {
			return nil, fmt.Errorf("resolving %s: %w", pkg.FQ.PackageAndVersion(), err)
		}
	}
	return pkg, nil
}

func (c *Coordinator) buildShell(pkg *hidl.Package, fq hidl.FQName, d typeDoc) (hidl.NamedType, []fixup, error) {
	switch d.Kind {
	case "enum":
		backing, ok := hidl.ParseScalarKind(d.Backing)
		if !ok {
			return nil, nil, fmt.Errorf("enum %s: unknown backing scalar %q", fq, d.Backing)
		}
		values := make([]hidl.EnumValue, 0, len(d.Values))
		for _, v := range d.Values {
			values = append(values, hidl.EnumValue{Name: v.Name, Value: v.Value, Doc: v.Doc})
		}
		return hidl.NewEnumType(fq, d.Doc, backing, values), nil, nil

	case "typedef":
		td := hidl.NewTypedefType(fq, d.Doc, nil)
		target := d.Target
		fx := func() error {
			t, err := c.parseType(pkg, target)
			if err != nil {
				return fmt.Errorf("typedef %s: %w", fq, err)
			}
			td.Target = t
			return nil
		}
		return td, []fixup{fx}, nil

	case "struct", "union", "safe_union":
		style := hidl.StyleStruct
		switch d.Kind {
		case "union":
			style = hidl.StyleUnion
		case "safe_union":
			style = hidl.StyleSafeUnion
		}
		compound := hidl.NewCompoundType(fq, d.Doc, style)
		var fixups []fixup
		for _, sub := range d.Types {
			t, fx, err := c.buildShell(pkg, fq.WithName(fq.Name+"."+sub.Name), sub)
			if err != nil {
				return nil, nil, err
			}
			compound.SubTypes = append(compound.SubTypes, t)
			fixups = append(fixups, fx...)
		}
		for _, fd := range d.Fields {
			fd := fd
			field := &hidl.Field{Name: fd.Name, Doc: fd.Doc}
			compound.Fields = append(compound.Fields, field)
			fixups = append(fixups, func() error {
				t, err := c.parseType(pkg, fd.Type)
				if err != nil {
					return fmt.Errorf("field %s.%s: %w", fq, fd.Name, err)
				}
				field.Type = t
				return nil
			})
		}
		return compound, fixups, nil

	case "interface":
		iface := hidl.NewInterfaceType(fq, d.Doc, nil)
		var fixups []fixup
		for _, sub := range d.Types {
			t, fx, err := c.buildShell(pkg, fq.WithName(fq.Name+"."+sub.Name), sub)
			if err != nil {
				return nil, nil, err
			}
			iface.Types = append(iface.Types, t)
			fixups = append(fixups, fx...)
		}
		return iface, fixups, nil

	default:
		return nil, nil, fmt.Errorf("type %s: unknown kind %q", fq, d.Kind)
	}
}

var arrayPattern = regexp.MustCompile(`^(.+)\[(\d+)\]$`)

// parseType resolves one type expression against a package revision.
// Named references may be package-local ("SensorInfo", "IBar.Baz"),
// version-qualified ("@1.0::SensorInfo"), or fully qualified
// ("android.hardware.bar@1.0::Config").
func (c *Coordinator) parseType(pkg *hidl.Package, expr string) (hidl.Type, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, fmt.Errorf("empty type expression")
	}
	if kind, ok := hidl.ParseScalarKind(expr); ok {
		return &hidl.ScalarType{Kind: kind}, nil
	}
	if expr == "string" {
		return &hidl.StringType{}, nil
	}
	if strings.HasPrefix(expr, "vec<") && strings.HasSuffix(expr, ">") {
		elem, err := c.parseType(pkg, expr[len("vec<"):len(expr)-1])
		if err != nil {
			return nil, err
		}
		return &hidl.VecType{Elem: elem}, nil
	}
	if m := arrayPattern.FindStringSubmatch(expr); m != nil {
		elem, err := c.parseType(pkg, m[1])
		if err != nil {
			return nil, err
		}
		size, err := strconv.Atoi(m[2])
		if err != nil {
			return nil, fmt.Errorf("invalid array size in %q", expr)
		}
		return &hidl.ArrayType{Elem: elem, Size: size}, nil
	}

	if qualifier, name, ok := strings.Cut(expr, "::"); ok {
		target := pkg.FQ
		if strings.HasPrefix(qualifier, "@") {
			version, err := hidl.ParseVersion(qualifier[1:])
			if err != nil {
				return nil, fmt.Errorf("reference %q: %w", expr, err)
			}
			target = target.WithVersion(version)
		} else {
			fq, err := hidl.ParseFQName(expr)
			if err != nil {
				return nil, fmt.Errorf("reference %q: %w", expr, err)
			}
			target = fq.PackageAndVersion()
		}
		refPkg, err := c.Load(target)
		if err != nil {
			return nil, fmt.Errorf("reference %q: %w", expr, err)
		}
		if t := refPkg.LookupType(name); t != nil {
			return t, nil
		}
		return nil, fmt.Errorf("reference %q: type not found in %s", expr, target)
	}

	if t := pkg.LookupType(expr); t != nil {
		return t, nil
	}
	return nil, fmt.Errorf("unknown type %q", expr)
}

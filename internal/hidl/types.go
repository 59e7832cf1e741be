// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 D-os Project Authors

package hidl

import (
	"fmt"
	"strings"
)

// ScalarKind identifies a fixed-width numeric type of the legacy dialect.
type ScalarKind int

const (
	ScalarBool ScalarKind = iota
	ScalarInt8
	ScalarUint8
	ScalarInt16
	ScalarUint16
	ScalarInt32
	ScalarUint32
	ScalarInt64
	ScalarUint64
	ScalarFloat
	ScalarDouble
)

var scalarNames = map[ScalarKind]string{
	ScalarBool:   "bool",
	ScalarInt8:   "int8_t",
	ScalarUint8:  "uint8_t",
	ScalarInt16:  "int16_t",
	ScalarUint16: "uint16_t",
	ScalarInt32:  "int32_t",
	ScalarUint32: "uint32_t",
	ScalarInt64:  "int64_t",
	ScalarUint64: "uint64_t",
	ScalarFloat:  "float",
	ScalarDouble: "double",
}

func (k ScalarKind) String() string {
	return scalarNames[k]
}

// Signed reports whether the scalar is a signed integer.
func (k ScalarKind) Signed() bool {
	switch k {
	case ScalarInt8, ScalarInt16, ScalarInt32, ScalarInt64:
		return true
	}
	return false
}

// Bits returns the width of the scalar in bits.
func (k ScalarKind) Bits() int {
	switch k {
	case ScalarBool, ScalarInt8, ScalarUint8:
		return 8
	case ScalarInt16, ScalarUint16:
		return 16
	case ScalarInt32, ScalarUint32, ScalarFloat:
		return 32
	default:
		return 64
	}
}

// ParseScalarKind resolves a legacy scalar spelling.
func ParseScalarKind(s string) (ScalarKind, bool) {
	for k, name := range scalarNames {
		if name == s {
			return k, true
		}
	}
	return 0, false
}

// Type is a legacy IDL type expression.
type Type interface {
	// String returns the legacy spelling of the type, used in diagnostics.
	String() string
}

// ScalarType is a fixed-width numeric type.
type ScalarType struct {
	Kind ScalarKind
}

func (t *ScalarType) String() string { return t.Kind.String() }

// StringType is the legacy UTF-8 string type.
type StringType struct{}

func (t *StringType) String() string { return "string" }

// VecType is a growable sequence.
type VecType struct {
	Elem Type
}

func (t *VecType) String() string { return "vec<" + t.Elem.String() + ">" }

// ArrayType is a fixed-length array.
type ArrayType struct {
	Elem Type
	Size int
}

func (t *ArrayType) String() string { return fmt.Sprintf("%s[%d]", t.Elem.String(), t.Size) }

// NamedType is a user-defined type with a qualified name.
type NamedType interface {
	Type
	FQName() FQName
	DocComment() string
}

// named carries the identity shared by all user-defined types.
type named struct {
	FQ  FQName
	Doc string
}

func (n *named) FQName() FQName     { return n.FQ }
func (n *named) DocComment() string { return n.Doc }
func (n *named) String() string     { return n.FQ.String() }

// EnumValue is a single enumerator. Value is the source expression text;
// empty means auto-numbered.
type EnumValue struct {
	Name  string
	Value string
	Doc   string
}

// EnumType is an enumeration backed by a scalar storage type.
type EnumType struct {
	named
	Storage ScalarKind
	Values  []EnumValue
}

// NewEnumType constructs an enum.
func NewEnumType(fq FQName, doc string, storage ScalarKind, values []EnumValue) *EnumType {
	return &EnumType{named: named{FQ: fq, Doc: doc}, Storage: storage, Values: values}
}

// Field is one member of a compound type.
type Field struct {
	Name string
	Type Type
	Doc  string
}

// CompoundStyle distinguishes the three compound layouts.
type CompoundStyle int

const (
	// StyleStruct is a plain record with direct member access.
	StyleStruct CompoundStyle = iota
	// StyleUnion is a non-discriminated union. It carries no tag, so no
	// safe automatic conversion exists.
	StyleUnion
	// StyleSafeUnion is a discriminated union accessed through per-field
	// getters and setters plus a queryable discriminator.
	StyleSafeUnion
)

func (s CompoundStyle) String() string {
	switch s {
	case StyleUnion:
		return "union"
	case StyleSafeUnion:
		return "safe_union"
	default:
		return "struct"
	}
}

// CompoundType is a struct, union, or safe union.
type CompoundType struct {
	named
	Style    CompoundStyle
	Fields   []*Field
	SubTypes []NamedType
}

// NewCompoundType constructs a compound type shell; fields and subtypes
// are attached by the front end once references resolve.
func NewCompoundType(fq FQName, doc string, style CompoundStyle) *CompoundType {
	return &CompoundType{named: named{FQ: fq, Doc: doc}, Style: style}
}

// TypedefType aliases another type. The canonical dialect has no
// equivalent; aliases resolve transparently in field positions.
type TypedefType struct {
	named
	Target Type
}

// NewTypedefType constructs a typedef.
func NewTypedefType(fq FQName, doc string, target Type) *TypedefType {
	return &TypedefType{named: named{FQ: fq, Doc: doc}, Target: target}
}

// InterfaceType is a legacy interface. Methods are outside the scope of
// the converter; interfaces matter only as scopes declaring nested types.
type InterfaceType struct {
	named
	Types []NamedType
}

// NewInterfaceType constructs an interface scope.
func NewInterfaceType(fq FQName, doc string, types []NamedType) *InterfaceType {
	return &InterfaceType{named: named{FQ: fq, Doc: doc}, Types: types}
}

// Package is one parsed package revision.
type Package struct {
	FQ               FQName
	Types            []NamedType
	UnplacedComments []string
}

// LookupType finds a named type by its dotted name chain, walking nested
// scopes. Returns nil if not found.
func (p *Package) LookupType(name string) NamedType {
	parts := strings.Split(name, ".")
	scope := p.Types
	for i, part := range parts {
		var found NamedType
		for _, t := range scope {
			if t.FQName().DefinedName() == part {
				found = t
				break
			}
		}
		if found == nil {
			return nil
		}
		if i == len(parts)-1 {
			return found
		}
		switch s := found.(type) {
		case *InterfaceType:
			scope = s.Types
		case *CompoundType:
			scope = s.SubTypes
		default:
			return nil
		}
	}
	return nil
}

// AllTypes flattens the package's types, including types nested under
// interfaces and compound types, in declaration order.
func (p *Package) AllTypes() []NamedType {
	var out []NamedType
	var walk func(types []NamedType)
	walk = func(types []NamedType) {
		for _, t := range types {
			out = append(out, t)
			switch s := t.(type) {
			case *InterfaceType:
				walk(s.Types)
			case *CompoundType:
				walk(s.SubTypes)
			}
		}
	}
	walk(p.Types)
	return out
}

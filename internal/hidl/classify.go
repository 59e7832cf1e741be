// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 D-os Project Authors

package hidl

// Class is the conversion-relevant kind of a field type.
type Class int

const (
	ClassScalar Class = iota
	ClassEnum
	ClassString
	ClassSequence
	ClassFixedArray
	ClassRecord
	ClassUnion
	ClassInterface
	ClassTypedef
)

func (c Class) String() string {
	switch c {
	case ClassScalar:
		return "scalar"
	case ClassEnum:
		return "enum"
	case ClassString:
		return "string"
	case ClassSequence:
		return "sequence"
	case ClassFixedArray:
		return "fixed array"
	case ClassRecord:
		return "record"
	case ClassUnion:
		return "union"
	case ClassInterface:
		return "interface"
	default:
		return "typedef"
	}
}

// Descriptor is the classification of one type expression.
type Descriptor struct {
	Class Class
	// Scalar is the numeric kind for ClassScalar, or the backing kind
	// for ClassEnum.
	Scalar ScalarKind
	// Elem is the element type for ClassSequence and ClassFixedArray.
	Elem Type
	// Length is the element count for ClassFixedArray.
	Length int
	// Named is set for ClassEnum, ClassRecord, ClassUnion and
	// ClassInterface.
	Named NamedType
	// SafeUnion reports whether a ClassUnion carries a discriminator.
	SafeUnion bool
}

// Classify answers the kind of a type. Typedef aliases resolve
// transparently: the descriptor describes the underlying type. A typedef
// is only reported as ClassTypedef when it is the value passed in, via
// ClassifyTopLevel.
func Classify(t Type) Descriptor {
	switch v := ResolveAlias(t).(type) {
	case *ScalarType:
		return Descriptor{Class: ClassScalar, Scalar: v.Kind}
	case *StringType:
		return Descriptor{Class: ClassString}
	case *VecType:
		return Descriptor{Class: ClassSequence, Elem: v.Elem}
	case *ArrayType:
		return Descriptor{Class: ClassFixedArray, Elem: v.Elem, Length: v.Size}
	case *EnumType:
		return Descriptor{Class: ClassEnum, Scalar: v.Storage, Named: v}
	case *InterfaceType:
		return Descriptor{Class: ClassInterface, Named: v}
	case *CompoundType:
		if v.Style == StyleStruct {
			return Descriptor{Class: ClassRecord, Named: v}
		}
		return Descriptor{Class: ClassUnion, Named: v, SafeUnion: v.Style == StyleSafeUnion}
	default:
		return Descriptor{Class: ClassTypedef}
	}
}

// ClassifyTopLevel is Classify without alias resolution: a typedef at
// top level classifies as ClassTypedef, since typedefs themselves have no
// canonical equivalent.
func ClassifyTopLevel(t Type) Descriptor {
	if td, ok := t.(*TypedefType); ok {
		return Descriptor{Class: ClassTypedef, Named: td}
	}
	return Classify(t)
}

// ResolveAlias unwraps typedef chains to the underlying type.
func ResolveAlias(t Type) Type {
	for {
		td, ok := t.(*TypedefType)
		if !ok {
			return t
		}
		t = td.Target
	}
}

// ResolveToScalar returns the scalar kind a type reduces to: the kind
// itself for scalars, the backing kind for enums. The second result is
// false for everything else.
func ResolveToScalar(t Type) (ScalarKind, bool) {
	switch v := ResolveAlias(t).(type) {
	case *ScalarType:
		return v.Kind, true
	case *EnumType:
		return v.Storage, true
	}
	return 0, false
}

// IsEnum reports whether the type resolves to an enumeration.
func IsEnum(t Type) bool {
	_, ok := ResolveAlias(t).(*EnumType)
	return ok
}

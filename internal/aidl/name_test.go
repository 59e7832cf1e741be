// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 D-os Project Authors

package aidl

import (
	"testing"

	"github.com/D-os/hidl2aidl/internal/hidl"
)

func TestPackage(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"major one maps to bare package", "android.hardware.foo@1.0", "android.hardware.foo"},
		{"minor never shows", "android.hardware.foo@1.7", "android.hardware.foo"},
		{"major two gets a suffix", "android.hardware.foo@2.0", "android.hardware.foo2"},
		{"major four gets a suffix", "android.hardware.foo@4.2", "android.hardware.foo4"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fq, err := hidl.ParseFQName(tt.input)
			if err != nil {
				t.Fatal(err)
			}
			if got := Package(fq); got != tt.want {
				t.Errorf("Package(%s) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"top-level type", "a.b@1.0::SensorInfo", "SensorInfo"},
		{"interface-scoped type", "a.b@1.0::IBar.Baz", "IBarBaz"},
		{"deeply nested type", "a.b@1.0::IBar.Baz.Qux", "IBarBazQux"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fq, err := hidl.ParseFQName(tt.input)
			if err != nil {
				t.Fatal(err)
			}
			if got := Name(fq); got != tt.want {
				t.Errorf("Name(%s) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFQ(t *testing.T) {
	fq, err := hidl.ParseFQName("android.hardware.foo@2.1::IBar.Baz")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := FQ(fq), "android.hardware.foo2.IBarBaz"; got != want {
		t.Errorf("FQ() = %q, want %q", got, want)
	}
	if got, want := PackagePath(fq), "android/hardware/foo2"; got != want {
		t.Errorf("PackagePath() = %q, want %q", got, want)
	}
}

func TestTypeName(t *testing.T) {
	local := hidl.FQName{Package: "a.b", Version: hidl.Version{Major: 1, Minor: 0}, Name: "Info"}
	foreignEnum := hidl.NewEnumType(
		hidl.FQName{Package: "a.c", Version: hidl.Version{Major: 1, Minor: 0}, Name: "Mode"},
		"", hidl.ScalarUint32, nil)
	localEnum := hidl.NewEnumType(local.WithName("Flag"), "", hidl.ScalarUint8, nil)

	tests := []struct {
		name string
		t    hidl.Type
		want string
	}{
		{"bool", &hidl.ScalarType{Kind: hidl.ScalarBool}, "boolean"},
		{"uint8 widens to byte", &hidl.ScalarType{Kind: hidl.ScalarUint8}, "byte"},
		// The canonical 16-bit type is the unsigned character type, for
		// both signednesses of the legacy 16-bit scalars.
		{"int16 maps to char", &hidl.ScalarType{Kind: hidl.ScalarInt16}, "char"},
		{"uint16 maps to char", &hidl.ScalarType{Kind: hidl.ScalarUint16}, "char"},
		{"uint64 maps to long", &hidl.ScalarType{Kind: hidl.ScalarUint64}, "long"},
		{"string", &hidl.StringType{}, "String"},
		{"vec", &hidl.VecType{Elem: &hidl.ScalarType{Kind: hidl.ScalarFloat}}, "float[]"},
		{"array", &hidl.ArrayType{Elem: &hidl.ScalarType{Kind: hidl.ScalarUint8}, Size: 6}, "byte[]"},
		{"same-package named type", localEnum, "Flag"},
		{"foreign named type", foreignEnum, "a.c.Mode"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TypeName(tt.t, local); got != tt.want {
				t.Errorf("TypeName(%s) = %q, want %q", tt.t, got, tt.want)
			}
		})
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 D-os Project Authors

package aidl

import (
	"strings"
	"testing"

	"github.com/D-os/hidl2aidl/internal/diag"
	"github.com/D-os/hidl2aidl/internal/hidl"
	"github.com/D-os/hidl2aidl/internal/merge"
)

func defFQ(name string) hidl.FQName {
	return hidl.FQName{
		Package: "android.hardware.foo",
		Version: hidl.Version{Major: 1, Minor: 0},
		Name:    name,
	}
}

func TestDefinition_Enum(t *testing.T) {
	enum := hidl.NewEnumType(defFQ("Mode"), "Operating mode.", hidl.ScalarInt32, []hidl.EnumValue{
		{Name: "OFF", Value: "0"},
		{Name: "ON"},
	})

	sink := diag.NewSink()
	path, content := Definition(enum, nil, sink)

	if want := "android/hardware/foo/Mode.aidl"; path != want {
		t.Errorf("path = %q, want %q", path, want)
	}
	wantCode := []string{
		"package android.hardware.foo;",
		`@Backing(type="int")`,
		"enum Mode {",
		"OFF = 0,",
		"ON,",
		"Operating mode.",
	}
	for _, want := range wantCode {
		if !strings.Contains(content, want) {
			t.Errorf("definition missing %q:\n%s", want, content)
		}
	}
	if !sink.Empty() {
		t.Errorf("unexpected notes: %v", sink.Notes())
	}
}

func TestDefinition_StructUsesReconciledFields(t *testing.T) {
	older := hidl.NewCompoundType(
		defFQ("SensorInfo").WithVersion(hidl.Version{Major: 1, Minor: 0}), "", hidl.StyleStruct)
	older.Fields = []*hidl.Field{
		{Name: "handle", Type: &hidl.ScalarType{Kind: hidl.ScalarInt32}},
	}
	newer := hidl.NewCompoundType(
		defFQ("SensorInfo").WithVersion(hidl.Version{Major: 1, Minor: 1}), "", hidl.StyleStruct)
	newer.Fields = []*hidl.Field{
		{Name: "prev", Type: older},
		{Name: "resolution", Type: &hidl.ScalarType{Kind: hidl.ScalarFloat}},
		{Name: "vendorId", Type: &hidl.ScalarType{Kind: hidl.ScalarInt16}},
	}

	sink := diag.NewSink()
	processed := map[*hidl.CompoundType]*merge.Compound{
		newer: merge.Process(newer, sink),
	}
	_, content := Definition(newer, processed, sink)

	wantCode := []string{
		"parcelable SensorInfo {",
		"int handle;",
		"float resolution;",
		// The declared 16-bit target matches the unsigned type the
		// generated conversion guards for.
		"char vendorId;",
	}
	for _, want := range wantCode {
		if !strings.Contains(content, want) {
			t.Errorf("definition missing %q:\n%s", want, content)
		}
	}
	// The version-chain member itself must not survive reconciliation.
	if strings.Contains(content, "prev;") {
		t.Errorf("definition kept the version-chain field:\n%s", content)
	}
}

func TestDefinition_SafeUnion(t *testing.T) {
	su := hidl.NewCompoundType(defFQ("OperationMode"), "", hidl.StyleSafeUnion)
	su.Fields = []*hidl.Field{
		{Name: "noTimestamp", Type: &hidl.ScalarType{Kind: hidl.ScalarBool}},
		{Name: "timestampNs", Type: &hidl.ScalarType{Kind: hidl.ScalarInt64}},
	}

	sink := diag.NewSink()
	processed := map[*hidl.CompoundType]*merge.Compound{su: merge.Process(su, sink)}
	_, content := Definition(su, processed, sink)

	wantCode := []string{
		"union OperationMode {",
		"boolean noTimestamp;",
		"long timestampNs;",
	}
	for _, want := range wantCode {
		if !strings.Contains(content, want) {
			t.Errorf("definition missing %q:\n%s", want, content)
		}
	}
}

func TestDefinition_PlainUnionStub(t *testing.T) {
	u := hidl.NewCompoundType(defFQ("Raw"), "", hidl.StyleUnion)
	u.Fields = []*hidl.Field{
		{Name: "word", Type: &hidl.ScalarType{Kind: hidl.ScalarUint32}},
	}

	sink := diag.NewSink()
	processed := map[*hidl.CompoundType]*merge.Compound{u: merge.Process(u, sink)}
	_, content := Definition(u, processed, sink)

	wantCode := []string{
		"parcelable Raw {}",
		"// Cannot convert union",
		"// This is the legacy definition of android.hardware.foo@1.0::Raw",
		"// union Raw {",
		"    // uint32_t word;",
	}
	for _, want := range wantCode {
		if !strings.Contains(content, want) {
			t.Errorf("stub missing %q:\n%s", want, content)
		}
	}
	notes := sink.Notes()
	if len(notes) != 1 || !strings.Contains(notes[0], "Cannot convert union") {
		t.Errorf("expected one union note, got %v", notes)
	}
}

func TestDefinition_TypedefStub(t *testing.T) {
	td := hidl.NewTypedefType(defFQ("SensorHandle"), "",
		&hidl.ScalarType{Kind: hidl.ScalarInt32})

	sink := diag.NewSink()
	_, content := Definition(td, nil, sink)

	wantCode := []string{
		"// Cannot convert typedef int32_t android.hardware.foo@1.0::SensorHandle",
		"// typedef int32_t SensorHandle;",
	}
	for _, want := range wantCode {
		if !strings.Contains(content, want) {
			t.Errorf("stub missing %q:\n%s", want, content)
		}
	}
	if sink.Empty() {
		t.Error("expected a typedef note")
	}
}

func TestDefinition_ImportsForeignTypes(t *testing.T) {
	foreign := hidl.NewEnumType(hidl.FQName{
		Package: "android.hardware.bar",
		Version: hidl.Version{Major: 2, Minor: 0},
		Name:    "Config",
	}, "", hidl.ScalarInt32, nil)

	s := hidl.NewCompoundType(defFQ("Info"), "", hidl.StyleStruct)
	s.Fields = []*hidl.Field{
		{Name: "config", Type: foreign},
		{Name: "configs", Type: &hidl.VecType{Elem: foreign}},
	}

	sink := diag.NewSink()
	processed := map[*hidl.CompoundType]*merge.Compound{s: merge.Process(s, sink)}
	_, content := Definition(s, processed, sink)

	if !strings.Contains(content, "import android.hardware.bar2.Config;") {
		t.Errorf("definition missing foreign import:\n%s", content)
	}
	// One import per foreign type, no matter how many fields use it.
	if strings.Count(content, "import android.hardware.bar2.Config;") != 1 {
		t.Errorf("duplicate imports:\n%s", content)
	}
	if !strings.Contains(content, "android.hardware.bar2.Config config;") {
		t.Errorf("foreign field not fully qualified:\n%s", content)
	}
}

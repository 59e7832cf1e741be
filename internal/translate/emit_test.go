// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 D-os Project Authors

package translate_test

import (
	"strings"
	"testing"

	"github.com/D-os/hidl2aidl/internal/aidl/replaced"
	"github.com/D-os/hidl2aidl/internal/diag"
	"github.com/D-os/hidl2aidl/internal/hidl"
	"github.com/D-os/hidl2aidl/internal/merge"
	"github.com/D-os/hidl2aidl/internal/translate"

	_ "github.com/D-os/hidl2aidl/internal/translate/cppbinding"
	_ "github.com/D-os/hidl2aidl/internal/translate/javabinding"
	_ "github.com/D-os/hidl2aidl/internal/translate/ndkbinding"
)

func fooFQ(minor int, name string) hidl.FQName {
	return hidl.FQName{
		Package: "android.hardware.foo",
		Version: hidl.Version{Major: 1, Minor: minor},
		Name:    name,
	}
}

func backend(t *testing.T, name string) translate.Backend {
	t.Helper()
	b, err := translate.Get(name)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

// run emits the translation of the given types for one backend and
// returns the artifacts and the collected notes.
func run(t *testing.T, backendName string, types []hidl.NamedType,
	registry *replaced.Registry) (translate.Artifacts, *diag.Sink) {
	t.Helper()
	if registry == nil {
		registry = replaced.New()
	}
	sink := diag.NewSink()
	processed := make(map[*hidl.CompoundType]*merge.Compound)
	for _, typ := range types {
		if compound, ok := typ.(*hidl.CompoundType); ok {
			processed[compound] = merge.Process(compound, sink)
		}
	}
	arts := translate.Artifacts{}
	pkg := fooFQ(1, "").PackageAndVersion()
	translate.Translation(pkg, types, processed, []translate.Backend{backend(t, backendName)},
		registry, sink, arts)
	return arts, sink
}

func TestAvailable(t *testing.T) {
	got := translate.Available()
	want := []string{"cpp", "java", "ndk"}
	if len(got) != len(want) {
		t.Fatalf("Available() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Available() = %v, want %v", got, want)
		}
	}

	if _, err := translate.Get("swift"); err == nil ||
		!strings.Contains(err.Error(), "unknown backend") {
		t.Errorf("Get(swift) error = %v", err)
	}
}

func TestTranslation_StructAcrossRevisions(t *testing.T) {
	older := hidl.NewCompoundType(fooFQ(0, "SensorInfo"), "", hidl.StyleStruct)
	older.Fields = []*hidl.Field{
		{Name: "handle", Type: &hidl.ScalarType{Kind: hidl.ScalarInt32}},
	}
	newer := hidl.NewCompoundType(fooFQ(1, "SensorInfo"), "", hidl.StyleStruct)
	newer.Fields = []*hidl.Field{
		{Name: "prev", Type: older},
		{Name: "name", Type: &hidl.StringType{}},
	}

	arts, sink := run(t, "cpp", []hidl.NamedType{newer}, nil)

	header := arts["include/android/hardware/foo/translate-cpp.h"]
	wantHeader := []string{
		"#pragma once",
		`#include "android/hardware/foo/SensorInfo.h"`,
		`#include "android/hardware/foo/1.1/types.h"`,
		"namespace android::h2a {",
		"__attribute__((warn_unused_result)) bool translate(const ::android::hardware::foo::V1_1::SensorInfo& in, android::hardware::foo::SensorInfo* out);",
	}
	for _, want := range wantHeader {
		if !strings.Contains(header, want) {
			t.Errorf("header missing %q:\n%s", want, header)
		}
	}

	source := arts["android/hardware/foo/translate-cpp.cpp"]
	wantSource := []string{
		`#include "android/hardware/foo/translate-cpp.h"`,
		"out->handle = static_cast<int32_t>(in.prev.handle);",
		"// NOTE: Non-UTF-8 input silently becomes an empty string.",
		"out->name = String16(in.name.c_str());",
		"return true;",
	}
	for _, want := range wantSource {
		if !strings.Contains(source, want) {
			t.Errorf("source missing %q:\n%s", want, source)
		}
	}
	if !sink.Empty() {
		t.Errorf("unexpected notes: %v", sink.Notes())
	}
}

func TestTranslation_NarrowingGuards(t *testing.T) {
	s := hidl.NewCompoundType(fooFQ(0, "Limits"), "", hidl.StyleStruct)
	s.Fields = []*hidl.Field{
		{Name: "fits", Type: &hidl.ScalarType{Kind: hidl.ScalarInt32}},
		{Name: "mask", Type: &hidl.ScalarType{Kind: hidl.ScalarUint32}},
		{Name: "big", Type: &hidl.ScalarType{Kind: hidl.ScalarUint64}},
		{Name: "small", Type: &hidl.ScalarType{Kind: hidl.ScalarUint8}},
		{Name: "ch", Type: &hidl.ScalarType{Kind: hidl.ScalarInt16}},
	}

	arts, _ := run(t, "cpp", []hidl.NamedType{s}, nil)
	source := arts["android/hardware/foo/translate-cpp.cpp"]

	wantCode := []string{
		"// FIXME This requires conversion between signed and unsigned.",
		"if (in.mask > 2147483647 || in.mask < 0) {",
		"if (in.big > 9223372036854775807L || in.big < 0) {",
		"if (in.small > 127 || in.small < 0) {",
		// The canonical 16-bit type is unsigned, so int16 only rejects
		// negative input.
		"if (in.ch < 0) {",
		"return false;",
	}
	for _, want := range wantCode {
		if !strings.Contains(source, want) {
			t.Errorf("source missing %q:\n%s", want, source)
		}
	}
	// int32 copies into int without narrowing.
	if strings.Contains(source, "in.fits >") || strings.Contains(source, "in.fits <") {
		t.Errorf("unexpected guard for a lossless field:\n%s", source)
	}
}

func TestTranslation_ManagedBackend(t *testing.T) {
	older := hidl.NewCompoundType(fooFQ(0, "SensorInfo"), "", hidl.StyleStruct)
	older.Fields = []*hidl.Field{
		{Name: "mask", Type: &hidl.ScalarType{Kind: hidl.ScalarUint32}},
	}
	newer := hidl.NewCompoundType(fooFQ(1, "SensorInfo"), "", hidl.StyleStruct)
	newer.Fields = []*hidl.Field{
		{Name: "prev", Type: older},
		{Name: "name", Type: &hidl.StringType{}},
	}

	arts, _ := run(t, "java", []hidl.NamedType{newer}, nil)

	if _, ok := arts["include/"]; ok {
		t.Error("managed backend emitted a header artifact")
	}
	source := arts["android/hardware/foo/Translate.java"]
	wantCode := []string{
		"package android.hardware.foo;",
		"public class Translate {",
		"static public android.hardware.foo.SensorInfo h2aTranslate(android.hardware.foo.V1_1.SensorInfo in) {",
		"android.hardware.foo.SensorInfo out = new android.hardware.foo.SensorInfo();",
		"if (in.prev.mask > 2147483647 || in.prev.mask < 0) {",
		`throw new RuntimeException("Unsafe conversion between signed and unsigned scalars for field: in.prev.mask");`,
		"out.mask = in.prev.mask;",
		"out.name = in.name;",
		"return out;",
	}
	for _, want := range wantCode {
		if !strings.Contains(source, want) {
			t.Errorf("source missing %q:\n%s", want, source)
		}
	}
}

func TestTranslation_SafeUnionDiscriminator(t *testing.T) {
	su := hidl.NewCompoundType(fooFQ(0, "OperationMode"), "", hidl.StyleSafeUnion)
	su.Fields = []*hidl.Field{
		{Name: "noTimestamp", Type: &hidl.ScalarType{Kind: hidl.ScalarBool}},
		{Name: "timestampNs", Type: &hidl.ScalarType{Kind: hidl.ScalarInt64}},
	}

	arts, _ := run(t, "cpp", []hidl.NamedType{su}, nil)
	source := arts["android/hardware/foo/translate-cpp.cpp"]
	wantCode := []string{
		"switch (in.getDiscriminator()) {",
		"case ::android::hardware::foo::V1_0::OperationMode::hidl_discriminator::noTimestamp:",
		"case ::android::hardware::foo::V1_0::OperationMode::hidl_discriminator::timestampNs:",
		"*out = static_cast<bool>(in.noTimestamp());",
		"*out = static_cast<int64_t>(in.timestampNs());",
		"break;",
		"default:",
		"return false;",
	}
	for _, want := range wantCode {
		if !strings.Contains(source, want) {
			t.Errorf("source missing %q:\n%s", want, source)
		}
	}

	arts, _ = run(t, "java", []hidl.NamedType{su}, nil)
	source = arts["android/hardware/foo/Translate.java"]
	wantJava := []string{
		"case android.hardware.foo.V1_0.OperationMode.hidl_discriminator.noTimestamp:",
		"out.setNoTimestamp(in.noTimestamp());",
		`throw new RuntimeException("Unknown discriminator value: " + Integer.toString(in.getDiscriminator()));`,
	}
	for _, want := range wantJava {
		if !strings.Contains(source, want) {
			t.Errorf("managed source missing %q:\n%s", want, source)
		}
	}
}

func TestTranslation_PlainUnionStub(t *testing.T) {
	u := hidl.NewCompoundType(fooFQ(0, "Raw"), "", hidl.StyleUnion)
	u.Fields = []*hidl.Field{
		{Name: "word", Type: &hidl.ScalarType{Kind: hidl.ScalarUint32}},
	}

	arts, _ := run(t, "cpp", []hidl.NamedType{u}, nil)
	source := arts["android/hardware/foo/translate-cpp.cpp"]
	if !strings.Contains(source, "// FIXME not enough information to safely convert.") {
		t.Errorf("missing plain-union stub:\n%s", source)
	}
	if strings.Contains(source, "bool translate(const ::android::hardware::foo::V1_0::Raw& in") &&
		!strings.Contains(source, "// __attribute__") {
		t.Errorf("plain union got an uncommented translate function:\n%s", source)
	}

	arts, _ = run(t, "java", []hidl.NamedType{u}, nil)
	if strings.Contains(arts["android/hardware/foo/Translate.java"], "Raw") {
		t.Error("managed backend emitted code for a plain union")
	}
}

func TestTranslation_UnknownNamedType(t *testing.T) {
	foreign := hidl.NewCompoundType(hidl.FQName{
		Package: "android.hardware.bar",
		Version: hidl.Version{Major: 1, Minor: 0},
		Name:    "Config",
	}, "", hidl.StyleStruct)

	s := hidl.NewCompoundType(fooFQ(0, "Info"), "", hidl.StyleStruct)
	s.Fields = []*hidl.Field{
		{Name: "config", Type: foreign},
	}

	arts, sink := run(t, "cpp", []hidl.NamedType{s}, nil)
	source := arts["android/hardware/foo/translate-cpp.cpp"]

	marker := "#error FIXME Unknown type: android.hardware.bar@1.0::Config"
	if got := strings.Count(source, marker); got != 1 {
		t.Errorf("unknown-type marker appears %d times, want exactly once:\n%s", got, source)
	}
	var found int
	for _, note := range sink.Notes() {
		if strings.Contains(note, "An unknown named type was found in translation") {
			found++
		}
	}
	if found != 1 {
		t.Errorf("unknown-type note recorded %d times, want once: %v", found, sink.Notes())
	}
}

func TestTranslation_ReplacedTypeSnippet(t *testing.T) {
	mono := hidl.NewCompoundType(hidl.FQName{
		Package: "android.hidl.safe_union",
		Version: hidl.Version{Major: 1, Minor: 0},
		Name:    "Monostate",
	}, "", hidl.StyleStruct)

	su := hidl.NewCompoundType(fooFQ(0, "OperationMode"), "", hidl.StyleSafeUnion)
	su.Fields = []*hidl.Field{
		{Name: "noInit", Type: mono},
		{Name: "timestampNs", Type: &hidl.ScalarType{Kind: hidl.ScalarInt64}},
	}

	arts, sink := run(t, "cpp", []hidl.NamedType{su}, nil)
	source := arts["android/hardware/foo/translate-cpp.cpp"]

	if !strings.Contains(source, "// Nothing to translate for Monostate.") {
		t.Errorf("replaced-type snippet not inlined:\n%s", source)
	}
	if strings.Contains(source, "#error FIXME Unknown type") {
		t.Errorf("replaced type still produced an unknown-type marker:\n%s", source)
	}
	var found bool
	for _, note := range sink.Notes() {
		if strings.Contains(note, "Monostate replaced by a boolean") {
			found = true
		}
	}
	if !found {
		t.Errorf("replaced-type note missing: %v", sink.Notes())
	}
}

func TestTranslation_Containers(t *testing.T) {
	s := hidl.NewCompoundType(fooFQ(0, "Batch"), "", hidl.StyleStruct)
	s.Fields = []*hidl.Field{
		{Name: "samples", Type: &hidl.VecType{Elem: &hidl.ScalarType{Kind: hidl.ScalarFloat}}},
		{Name: "uuid", Type: &hidl.ArrayType{Elem: &hidl.ScalarType{Kind: hidl.ScalarUint8}, Size: 16}},
		{Name: "matrix", Type: &hidl.VecType{Elem: &hidl.VecType{Elem: &hidl.ScalarType{Kind: hidl.ScalarFloat}}}},
	}

	arts, sink := run(t, "cpp", []hidl.NamedType{s}, nil)
	source := arts["android/hardware/foo/translate-cpp.cpp"]
	wantCode := []string{
		"size_t size = in.samples.size();",
		"for (size_t i = 0; i < size; i++) {",
		"out->samples.push_back(static_cast<float>(in.samples[i]));",
		"size_t size = sizeof(in.uuid)/sizeof(in.uuid[0]);",
		"if (in.uuid[i] > 127 || in.uuid[i] < 0) {",
		"#error Nested arrays and vectors are currently not supported.",
	}
	for _, want := range wantCode {
		if !strings.Contains(source, want) {
			t.Errorf("source missing %q:\n%s", want, source)
		}
	}
	var nested bool
	for _, note := range sink.Notes() {
		if strings.Contains(note, "Nested arrays and vectors are not supported") {
			nested = true
		}
	}
	if !nested {
		t.Errorf("nested-container note missing: %v", sink.Notes())
	}

	arts, _ = run(t, "java", []hidl.NamedType{s}, nil)
	source = arts["android/hardware/foo/Translate.java"]
	wantJava := []string{
		"if (in.samples != null) {",
		"out.samples = new float[in.samples.size()];",
		"for (int i = 0; i < in.samples.size(); i++) {",
		"out.samples[i] = in.samples.get(i);",
		"out.uuid = new byte[in.uuid.length];",
	}
	for _, want := range wantJava {
		if !strings.Contains(source, want) {
			t.Errorf("managed source missing %q:\n%s", want, source)
		}
	}
}

func TestTranslation_EnumStaticAsserts(t *testing.T) {
	enum := hidl.NewEnumType(fooFQ(0, "Mode"), "", hidl.ScalarInt32, []hidl.EnumValue{
		{Name: "OFF", Value: "0"},
		{Name: "ON", Value: "1"},
	})
	s := hidl.NewCompoundType(fooFQ(0, "Info"), "", hidl.StyleStruct)
	s.Fields = []*hidl.Field{{Name: "mode", Type: enum}}

	arts, sink := run(t, "ndk", []hidl.NamedType{enum, s}, nil)
	source := arts["android/hardware/foo/translate-ndk.cpp"]
	wantCode := []string{
		"static_assert(aidl::android::hardware::foo::Mode::OFF == static_cast<aidl::android::hardware::foo::Mode>(::android::hardware::foo::V1_0::Mode::OFF));",
		"static_assert(aidl::android::hardware::foo::Mode::ON == static_cast<aidl::android::hardware::foo::Mode>(::android::hardware::foo::V1_0::Mode::ON));",
		// Enum equivalence is pinned at compile time, so the field copies
		// with a cast and no runtime guard.
		"out->mode = static_cast<aidl::android::hardware::foo::Mode>(in.mode);",
	}
	for _, want := range wantCode {
		if !strings.Contains(source, want) {
			t.Errorf("source missing %q:\n%s", want, source)
		}
	}

	header := arts["include/android/hardware/foo/translate-ndk.h"]
	if !strings.Contains(header, `#include "aidl/android/hardware/foo/Mode.h"`) {
		t.Errorf("ndk header missing prefixed canonical include:\n%s", header)
	}
	if !sink.Empty() {
		t.Errorf("unexpected notes: %v", sink.Notes())
	}
}

func TestTranslation_NestedTranslateCalls(t *testing.T) {
	inner := hidl.NewCompoundType(fooFQ(0, "Inner"), "", hidl.StyleStruct)
	inner.Fields = []*hidl.Field{
		{Name: "value", Type: &hidl.ScalarType{Kind: hidl.ScalarInt32}},
	}
	outer := hidl.NewCompoundType(fooFQ(0, "Outer"), "", hidl.StyleStruct)
	outer.Fields = []*hidl.Field{{Name: "inner", Type: inner}}

	arts, _ := run(t, "cpp", []hidl.NamedType{inner, outer}, nil)
	source := arts["android/hardware/foo/translate-cpp.cpp"]
	if !strings.Contains(source, "if (!translate(in.inner, &out->inner)) return false;") {
		t.Errorf("missing nested translate call:\n%s", source)
	}

	arts, _ = run(t, "java", []hidl.NamedType{inner, outer}, nil)
	source = arts["android/hardware/foo/Translate.java"]
	if !strings.Contains(source, "out.inner = h2aTranslate(in.inner);") {
		t.Errorf("missing nested managed translate call:\n%s", source)
	}
}

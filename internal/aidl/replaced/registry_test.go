// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 D-os Project Authors

package replaced

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/D-os/hidl2aidl/internal/hidl"
)

func TestRegistry_Builtins(t *testing.T) {
	r := New()
	fq, err := hidl.ParseFQName("android.hidl.safe_union@1.0::Monostate")
	require.NoError(t, err)

	entry, ok := r.Lookup(fq)
	require.True(t, ok)
	assert.Equal(t, "boolean", entry.Aidl)
	assert.NotEmpty(t, entry.Snippet)

	other, err := hidl.ParseFQName("android.hardware.foo@1.0::Unknown")
	require.NoError(t, err)
	_, ok = r.Lookup(other)
	assert.False(t, ok)
}

func TestRegistry_Load(t *testing.T) {
	path := filepath.Join(t.TempDir(), "replaced.yaml")
	content := `android.hardware.graphics.common@1.0::PixelFormat:
  aidl: android.hardware.graphics.common.PixelFormat
  notes: PixelFormat moved to a stable canonical package.
android.hidl.safe_union@1.0::Monostate:
  aidl: int
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	r, err := Load(path)
	require.NoError(t, err)

	fq, err := hidl.ParseFQName("android.hardware.graphics.common@1.0::PixelFormat")
	require.NoError(t, err)
	entry, ok := r.Lookup(fq)
	require.True(t, ok)
	assert.Equal(t, "android.hardware.graphics.common.PixelFormat", entry.Aidl)
	assert.Contains(t, entry.Notes, "stable canonical package")

	// A file entry overrides the built-in.
	mono, err := hidl.ParseFQName("android.hidl.safe_union@1.0::Monostate")
	require.NoError(t, err)
	entry, ok = r.Lookup(mono)
	require.True(t, ok)
	assert.Equal(t, "int", entry.Aidl)
}

func TestRegistry_LoadRejectsBadNames(t *testing.T) {
	path := filepath.Join(t.TempDir(), "replaced.yaml")
	content := `not-a-qualified-name:
  aidl: int
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 D-os Project Authors

package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRootCmd(t *testing.T) {
	root := NewRootCmd()
	assert.Equal(t, "hidl2aidl", root.Use)
	require.NotNil(t, root.PersistentPreRunE)

	var names []string
	for _, cmd := range root.Commands() {
		names = append(names, cmd.Name())
	}
	for _, want := range []string{"convert", "describe", "backends", "version"} {
		assert.Contains(t, names, want)
	}
}

func TestConvertCmd_Flags(t *testing.T) {
	root := NewRootCmd()
	convert, _, err := root.Find([]string{"convert"})
	require.NoError(t, err)

	for _, flag := range []string{"output", "backends", "replaced-types", "force"} {
		assert.NotNil(t, convert.Flags().Lookup(flag), "missing flag %s", flag)
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 D-os Project Authors

// Package commands contains all CLI command definitions.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/D-os/hidl2aidl/internal/cmdctx"
)

// NewRootCmd creates and returns the root command for the CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "hidl2aidl",
		Short:             "Convert legacy HIDL packages to AIDL",
		PersistentPreRunE: cmdctx.PreRunLoad,
	}

	rootCmd.AddCommand(newConvertCmd())
	rootCmd.AddCommand(newDescribeCmd())
	rootCmd.AddCommand(newBackendsCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

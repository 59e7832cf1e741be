// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 D-os Project Authors

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/D-os/hidl2aidl/internal/translate"
)

func newBackendsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "backends",
		Short: "List the available output backends",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range translate.Available() {
				b, err := translate.Get(name)
				if err != nil {
					return err
				}
				kind := "native"
				if b.Managed() {
					kind = "managed"
				}
				fmt.Printf("%s\t%s\n", name, kind)
			}
			return nil
		},
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 D-os Project Authors

package commands

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"github.com/D-os/hidl2aidl/internal/cmdctx"
	"github.com/D-os/hidl2aidl/internal/hidl"
	"github.com/D-os/hidl2aidl/internal/hidl/hidlyaml"
	"github.com/D-os/hidl2aidl/internal/merge"
	"github.com/D-os/hidl2aidl/internal/prompts"
)

func newDescribeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "describe [FQNAME]",
		Short: "Show the reconciled model of a package",
		Long:  `Display the conversion set of a package revision after version reconciliation, without emitting any files. If no package is given, an interactive selection prompt is shown.`,
		Example: `  # Interactive selection
  hidl2aidl describe

  # Show the reconciled model
  hidl2aidl describe android.hardware.sensors@1.0`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := cmdctx.RequireFromCommand(cmd)
			if err != nil {
				return err
			}

			var fqname string
			if len(args) > 0 {
				fqname = args[0]
			} else {
				fqname, err = selectPackageToDescribe(ctx.Coordinator)
				if err != nil {
					return err
				}
			}
			return runDescribe(ctx, fqname)
		},
	}
}

func selectPackageToDescribe(coordinator *hidlyaml.Coordinator) (string, error) {
	packages, err := coordinator.DiscoverPackages()
	if err != nil {
		return "", fmt.Errorf("failed to scan schema root: %w", err)
	}
	if len(packages) == 0 {
		return "", fmt.Errorf("no packages found under the schema root")
	}

	options := make([]huh.Option[string], 0, len(packages))
	for _, fq := range packages {
		options = append(options, huh.NewOption(fq.String(), fq.String()))
	}

	var selected string
	if err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Select package to describe").
				Options(options...).
				Filtering(true).
				Value(&selected).
				Height(10),
		),
	).WithTheme(prompts.Theme()).Run(); err != nil {
		return "", err
	}

	return selected, nil
}

func runDescribe(ctx *cmdctx.Context, fqname string) error {
	fq, err := hidl.ParseFQName(fqname)
	if err != nil {
		return err
	}
	if !ctx.Coordinator.PackageExists(fq.PackageAndVersion()) {
		return fmt.Errorf("%w: %s under %s", hidlyaml.ErrPackageNotFound, fq.PackageAndVersion(), ctx.Config.Root)
	}

	set, _, err := ctx.Coordinator.ConversionSet(fq)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", fq, err)
	}

	cs := spew.ConfigState{
		Indent:                  "  ",
		DisablePointerAddresses: true,
		DisableCapacities:       true,
	}
	for _, t := range set {
		fmt.Printf("%s (%s)\n", t.FQName(), hidl.ClassifyTopLevel(t).Class)
		if compound, ok := t.(*hidl.CompoundType); ok {
			reconciled := merge.Process(compound, ctx.Sink)
			for _, f := range reconciled.Fields {
				fmt.Printf("  %s %s  (from %s)\n", f.Field.Type, f.FullName, f.Version)
			}
		} else {
			cs.Dump(t)
		}
		fmt.Println()
	}
	return nil
}

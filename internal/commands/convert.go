// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 D-os Project Authors

package commands

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/D-os/hidl2aidl/internal/aidl"
	"github.com/D-os/hidl2aidl/internal/aidl/replaced"
	"github.com/D-os/hidl2aidl/internal/cmdctx"
	"github.com/D-os/hidl2aidl/internal/hidl"
	"github.com/D-os/hidl2aidl/internal/hidl/hidlyaml"
	"github.com/D-os/hidl2aidl/internal/merge"
	"github.com/D-os/hidl2aidl/internal/prompts"
	"github.com/D-os/hidl2aidl/internal/translate"

	// Import backends to auto-register
	_ "github.com/D-os/hidl2aidl/internal/translate/cppbinding"
	_ "github.com/D-os/hidl2aidl/internal/translate/javabinding"
	_ "github.com/D-os/hidl2aidl/internal/translate/ndkbinding"
)

type convertOptions struct {
	output        string
	backends      string
	replacedTypes string
	force         bool
}

func newConvertCmd() *cobra.Command {
	opts := &convertOptions{}

	cmd := &cobra.Command{
		Use:   "convert [FQNAME]",
		Short: "Convert a legacy package to the canonical dialect",
		Long: fmt.Sprintf(`Convert every type of a legacy package revision to the canonical
dialect, emitting type definitions and per-backend translation source.

Available backends: %s`, strings.Join(translate.Available(), ", ")),
		Example: `  # Interactive mode
  hidl2aidl convert

  # Convert a package revision
  hidl2aidl convert android.hardware.sensors@1.0

  # Convert even though a newer minor revision exists
  hidl2aidl convert android.hardware.sensors@1.0 --force

  # Restrict the emitted backends
  hidl2aidl convert android.hardware.sensors@1.0 --backends cpp,ndk`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output directory (defaults to the configured one)")
	cmd.Flags().StringVar(&opts.backends, "backends", "", fmt.Sprintf("Backends to emit, comma-separated (%s)", strings.Join(translate.Available(), ", ")))
	cmd.Flags().StringVar(&opts.replacedTypes, "replaced-types", "", "YAML file with additional replaced-type entries")
	cmd.Flags().BoolVarP(&opts.force, "force", "f", false, "Convert even if a newer minor revision exists")

	return cmd
}

func runConvert(cmd *cobra.Command, args []string, opts *convertOptions) error {
	ctx, err := cmdctx.RequireFromCommand(cmd)
	if err != nil {
		return err
	}

	var backendNames []string
	if opts.backends != "" {
		for _, n := range strings.Split(opts.backends, ",") {
			if n = strings.TrimSpace(n); n != "" {
				backendNames = append(backendNames, n)
			}
		}
	} else {
		backendNames = ctx.Config.Backends
	}

	var fqname string
	if len(args) > 0 {
		fqname = args[0]
	} else {
		packages, err := ctx.Coordinator.DiscoverPackages()
		if err != nil {
			return fmt.Errorf("failed to scan schema root: %w", err)
		}
		if err := prompts.RunConvertForm(&fqname, &backendNames, packages, translate.Available()); err != nil {
			return err
		}
	}
	if len(backendNames) == 0 {
		backendNames = translate.Available()
	}

	fq, err := hidl.ParseFQName(fqname)
	if err != nil {
		return err
	}
	if fq.Name != "" {
		return fmt.Errorf("only whole packages can be converted, try %q instead", fq.PackageAndVersion())
	}

	backends := make([]translate.Backend, 0, len(backendNames))
	for _, name := range backendNames {
		b, err := translate.Get(name)
		if err != nil {
			return fmt.Errorf("%w. Available backends: %s", err, strings.Join(translate.Available(), ", "))
		}
		backends = append(backends, b)
	}

	if !ctx.Coordinator.PackageExists(fq) {
		return fmt.Errorf("%w: %s under %s", hidlyaml.ErrPackageNotFound, fq, ctx.Config.Root)
	}
	if highest := ctx.Coordinator.HighestExistingVersion(fq); highest.Version != fq.Version && !opts.force {
		return fmt.Errorf("%w: %s. Pass --force to convert %s anyway",
			hidlyaml.ErrNewerVersionExists, highest, fq)
	}

	registry := replaced.New()
	registryPath := opts.replacedTypes
	if registryPath == "" {
		registryPath = ctx.Config.ReplacedTypes
	}
	if registryPath != "" {
		registry, err = replaced.Load(registryPath)
		if err != nil {
			return fmt.Errorf("failed to load replaced types: %w", err)
		}
	}

	set, comments, err := ctx.Coordinator.ConversionSet(fq)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", fq, err)
	}
	sink := ctx.Sink
	for _, comment := range comments {
		sink.Notef("The following comment has no place in the converted package:\n%s", comment)
	}

	processed := make(map[*hidl.CompoundType]*merge.Compound)
	for _, t := range set {
		if compound, ok := t.(*hidl.CompoundType); ok {
			processed[compound] = merge.Process(compound, sink)
		}
	}

	arts := translate.Artifacts{}
	for _, t := range set {
		path, content := aidl.Definition(t, processed, sink)
		arts.Add(path, content)
	}
	translate.Translation(fq, set, processed, backends, registry, sink, arts)

	// Always written, so a clean run leaves an explicitly empty log.
	header := fmt.Sprintf("Notes relating to the conversion of %s follow:", fq.PackageAndVersion())
	arts.Add(aidl.PackagePath(fq)+"/conversion.log", sink.Render(header))

	output := opts.output
	if output == "" {
		output = ctx.Config.Output
	}
	if err := arts.Flush(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	for _, path := range arts.Paths() {
		fmt.Printf("  %s\n", filepath.Join(output, path))
	}
	prompts.PrintResult([]prompts.ResultField{
		{Label: "Package", Value: fq.PackageAndVersion().String()},
		{Label: "Canonical package", Value: aidl.Package(fq)},
		{Label: "Backends", Value: strings.Join(backendNames, ", ")},
		{Label: "Output", Value: output},
	}, fmt.Sprintf("Converted %d file(s)", len(arts)))

	return nil
}

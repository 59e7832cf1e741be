// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 D-os Project Authors

// Package prompts contains the interactive forms of the CLI.
package prompts

import (
	"errors"

	"github.com/charmbracelet/huh"

	"github.com/D-os/hidl2aidl/internal/hidl"
)

// RunConvertForm runs the interactive form for a conversion: pick the
// package revision to convert and the backends to emit. Values already
// set are kept as defaults.
func RunConvertForm(fqname *string, backendNames *[]string,
	packages []hidl.FQName, available []string) error {
	if len(packages) == 0 {
		return errors.New("no packages found under the schema root")
	}

	packageOptions := make([]huh.Option[string], 0, len(packages))
	for _, fq := range packages {
		packageOptions = append(packageOptions, huh.NewOption(fq.String(), fq.String()))
	}
	backendOptions := make([]huh.Option[string], 0, len(available))
	for _, name := range available {
		backendOptions = append(backendOptions, huh.NewOption(name, name).Selected(true))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Package to convert").
				Options(packageOptions...).
				Value(fqname),
			huh.NewMultiSelect[string]().
				Title("Backends").
				Options(backendOptions...).
				Validate(func(selected []string) error {
					if len(selected) == 0 {
						return errors.New("select at least one backend")
					}
					return nil
				}).
				Value(backendNames),
		),
	).WithTheme(Theme()).Run()
}

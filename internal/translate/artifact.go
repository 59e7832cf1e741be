// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 D-os Project Authors

package translate

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// Artifacts accumulates generated files by relative path. Emission is
// in-memory so tests never touch disk; the CLI flushes at the end of a
// successful run.
type Artifacts map[string]string

// Add records one generated file.
func (a Artifacts) Add(path, content string) {
	a[path] = content
}

// Paths returns every artifact path, sorted.
func (a Artifacts) Paths() []string {
	paths := make([]string, 0, len(a))
	for p := range a {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Flush writes every artifact under root.
func (a Artifacts) Flush(root string) error {
	for _, p := range a.Paths() {
		full := filepath.Join(root, filepath.FromSlash(p))
		if err := os.MkdirAll(filepath.Dir(full), 0o750); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
		if err := os.WriteFile(full, []byte(a[p]), 0o600); err != nil {
			return fmt.Errorf("failed to write %s: %w", p, err)
		}
	}
	return nil
}

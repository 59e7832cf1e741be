// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 D-os Project Authors

// Package cmdctx carries the per-run state of a conversion through the
// command tree: configuration, the schema coordinator, and the
// diagnostics sink. Threading the state explicitly keeps repeated runs
// within one process independent.
package cmdctx

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/D-os/hidl2aidl/internal/config"
	"github.com/D-os/hidl2aidl/internal/diag"
	"github.com/D-os/hidl2aidl/internal/hidl/hidlyaml"
)

// ConfigFileName is the name of the optional tool configuration file.
const ConfigFileName = "hidl2aidl.yaml"

// contextKey is used to store Context in context.Context.
type contextKey struct{}

// Context holds the resolved configuration and the run collaborators.
type Context struct {
	Config      *config.Config
	Coordinator *hidlyaml.Coordinator
	Sink        *diag.Sink
}

// Load resolves the tool configuration from the working directory (the
// defaults when no config file exists) and returns a context.Context
// with the run Context stored in it.
func Load(ctx context.Context) (context.Context, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}

	cfg := config.Default()
	configPath := filepath.Join(cwd, ConfigFileName)
	if _, statErr := os.Stat(configPath); statErr == nil {
		cfg, err = config.Load(configPath)
		if err != nil {
			return nil, fmt.Errorf("invalid configuration: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("invalid configuration: %w", err)
		}
	}

	runCtx := &Context{
		Config:      cfg,
		Coordinator: hidlyaml.NewCoordinator(cfg.Root),
		Sink:        diag.NewSink(),
	}
	return context.WithValue(ctx, contextKey{}, runCtx), nil
}

// From extracts the run Context from a context.Context.
// Returns nil if no Context is stored.
func From(ctx context.Context) *Context {
	if runCtx, ok := ctx.Value(contextKey{}).(*Context); ok {
		return runCtx
	}
	return nil
}

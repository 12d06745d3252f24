/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/semver/pkg/logging"
)

const (
	name           = "semvctl"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Run assembles the root command and executes it with the given arguments.
// It is called by main.main() with os.Args.
func Run(ctx context.Context, args []string) error {
	logging.SetDefaultStructuredLogger(name, version)

	root := &cli.Command{
		Name:                  name,
		Usage:                 "Strict semantic version parsing and comparison",
		Version:               fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		EnableShellCompletion: true,
		Commands: []*cli.Command{
			parseCmd(),
			compareCmd(),
			sortCmd(),
		},
	}

	return root.Run(ctx, args)
}

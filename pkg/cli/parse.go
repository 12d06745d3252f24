/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/semver/pkg/semver"
	"github.com/NVIDIA/semver/pkg/serializer"
)

// parseResult is the serialized output of the parse command.
type parseResult struct {
	Input   string         `json:"input" yaml:"input"`
	Version semver.Version `json:"version" yaml:"version"`

	// Canonical is the normalized string form reconstructed from the
	// parsed fields.
	Canonical string `json:"canonical" yaml:"canonical"`
}

func parseCmd() *cli.Command {
	return &cli.Command{
		Name:                  "parse",
		EnableShellCompletion: true,
		Usage:                 "Validate a version string and decompose it into its fields",
		ArgsUsage:             "VERSION",
		Description: `Parse a semantic version string against the strict grammar:

  major.minor.patch[-prerelease][+build]

All three core components are required, numeric components must not carry
leading zeros, and prerelease/build identifiers are limited to digits,
letters and dashes. Inputs that do not match fail with a non-zero exit
status; there is no partial or best-effort parse.

# Examples

Decompose a release candidate:
  semvctl parse 1.2.3-rc.1+build.5

Emit JSON for programmatic consumption:
  semvctl parse 1.2.3 --format json

Write the result to a file:
  semvctl parse 1.2.3 -o parsed.yaml`,
		Flags: []cli.Flag{
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			if cmd.Args().Len() != 1 {
				return fmt.Errorf("parse requires exactly one VERSION argument, got %d", cmd.Args().Len())
			}
			input := cmd.Args().First()

			v, err := semver.Parse(input)
			if err != nil {
				slog.Debug("parse rejected", "input", input)
				return err
			}

			out := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer func() {
				if cerr := out.Close(); cerr != nil {
					slog.Warn("failed to close output", "error", cerr)
				}
			}()

			return out.Serialize(ctx, parseResult{
				Input:     input,
				Version:   v,
				Canonical: v.String(),
			})
		},
	}
}

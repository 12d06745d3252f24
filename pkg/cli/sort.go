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

// sortResult is the serialized output of the sort command.
type sortResult struct {
	// Versions holds the canonical string forms in ascending precedence
	// order.
	Versions []string `json:"versions" yaml:"versions"`
}

func sortCmd() *cli.Command {
	return &cli.Command{
		Name:                  "sort",
		EnableShellCompletion: true,
		Usage:                 "Sort version strings in ascending precedence order",
		ArgsUsage:             "VERSION...",
		Description: `Sort one or more semantic version strings by precedence.

Versions with equal precedence (for example versions differing only in
build metadata) keep their input order. Any argument that fails to parse
aborts the command with a non-zero exit status.

# Examples

Order a prerelease chain:
  semvctl sort 1.0.0 1.0.0-rc.1 1.0.0-alpha 1.0.0-beta.11 1.0.0-beta.2`,
		Flags: []cli.Flag{
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			if cmd.Args().Len() == 0 {
				return fmt.Errorf("sort requires at least one VERSION argument")
			}

			versions := make([]semver.Version, 0, cmd.Args().Len())
			for _, arg := range cmd.Args().Slice() {
				v, err := semver.Parse(arg)
				if err != nil {
					return err
				}
				versions = append(versions, v)
			}

			semver.Sort(versions)

			result := sortResult{Versions: make([]string, 0, len(versions))}
			for _, v := range versions {
				result.Versions = append(result.Versions, v.String())
			}

			slog.Debug("sorted versions", "count", len(result.Versions))

			out := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer func() {
				if cerr := out.Close(); cerr != nil {
					slog.Warn("failed to close output", "error", cerr)
				}
			}()

			return out.Serialize(ctx, result)
		},
	}
}

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

// compareResult is the serialized output of the compare command.
//
// Precedence follows the semver ordering law (build metadata ignored,
// alphanumeric prerelease identifiers case-insensitive); Equal is strict
// identity over all fields. The two can disagree for inputs differing only
// in build metadata or identifier case.
type compareResult struct {
	A semver.Version `json:"a" yaml:"a"`
	B semver.Version `json:"b" yaml:"b"`

	// Precedence is -1, 0 or 1 for a < b, a = b and a > b respectively.
	Precedence int `json:"precedence" yaml:"precedence"`

	// Relation is the precedence rendered as "<", "=" or ">".
	Relation string `json:"relation" yaml:"relation"`

	// Equal reports strict equality, including build metadata and case.
	Equal bool `json:"equal" yaml:"equal"`
}

func compareCmd() *cli.Command {
	return &cli.Command{
		Name:                  "compare",
		EnableShellCompletion: true,
		Usage:                 "Compare the precedence and strict equality of two versions",
		ArgsUsage:             "VERSION_A VERSION_B",
		Description: `Compare two semantic version strings.

Precedence follows the semver ordering rules: the numeric core decides
first, then prerelease identifiers (a release outranks its prereleases,
numeric identifiers compare numerically and rank below alphanumeric ones,
alphanumeric identifiers compare case-insensitively). Build metadata is
never consulted for precedence.

Strict equality is reported separately and requires all fields to match
exactly, including build metadata and letter case. The two relations can
disagree: "1.0.0+a" and "1.0.0+b" have equal precedence but are not equal.

# Examples

Compare two releases:
  semvctl compare 1.2.3 1.2.4

See the precedence/equality split on build metadata:
  semvctl compare 1.0.0+build1 1.0.0+build2 --format table`,
		Flags: []cli.Flag{
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			if cmd.Args().Len() != 2 {
				return fmt.Errorf("compare requires exactly two VERSION arguments, got %d", cmd.Args().Len())
			}

			a, err := semver.Parse(cmd.Args().Get(0))
			if err != nil {
				return fmt.Errorf("first operand: %w", err)
			}
			b, err := semver.Parse(cmd.Args().Get(1))
			if err != nil {
				return fmt.Errorf("second operand: %w", err)
			}

			precedence := a.Compare(b)
			result := compareResult{
				A:          a,
				B:          b,
				Precedence: precedence,
				Relation:   relationSymbol(precedence),
				Equal:      a.Equals(b),
			}

			slog.Debug("compared versions",
				"a", a.String(),
				"b", b.String(),
				"relation", result.Relation,
				"equal", result.Equal,
			)

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

func relationSymbol(precedence int) string {
	switch {
	case precedence < 0:
		return "<"
	case precedence > 0:
		return ">"
	default:
		return "="
	}
}

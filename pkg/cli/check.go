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

	"github.com/NVIDIA/fast-version/pkg/check"
	"github.com/NVIDIA/fast-version/pkg/requirement"
	"github.com/NVIDIA/fast-version/pkg/serializer"
	"github.com/NVIDIA/fast-version/pkg/version"
)

func checkCmd() *cli.Command {
	return &cli.Command{
		Name:                  "check",
		EnableShellCompletion: true,
		Usage:                 "Evaluate versions against a requirement",
		ArgsUsage:             "[major.minor.patch ...]",
		Description: `Check whether each version is valid in a numeric domain and fits a
requirement. The request is read from a CheckRequest document, built from
flags, or both; flags override the document.

A requirement is either one pure clause or a lower and an upper clause.
Clauses are written kind(fields):

  strict(1.1.1)
  greater-or-equal-major(5)
  lesser-or-equal-minor(2.9)

# Examples

Composite range in i32:
  fvctl check -d i32 --lower 'greater-or-equal-major(5)' --upper 'lesser-major(10)' 7.0.0 10.0.0

Strict pin from a document on stdin:
  fvctl check -f - < request.yaml

Fail when any version does not fit (useful for CI/CD):
  fvctl check -f request.yaml --fail-on-mismatch`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "request",
				Aliases: []string{"f"},
				Usage:   "Path/URL to a CheckRequest document, or - for stdin",
			},
			&cli.StringFlag{
				Name:    "domain",
				Aliases: []string{"d"},
				Usage:   "Numeric domain: i8, i16, i32, i64, isize, u8, u16, u32, u64, usize",
				Sources: cli.EnvVars("FVCTL_DOMAIN"),
			},
			&cli.StringFlag{
				Name:    "backend",
				Aliases: []string{"b"},
				Usage:   "Validity backend: default, scalar, lanes",
				Sources: cli.EnvVars("FVCTL_BACKEND"),
			},
			&cli.StringFlag{
				Name:  "pure",
				Usage: "Single clause requirement, e.g. strict(1.1.1)",
			},
			&cli.StringFlag{
				Name:  "lower",
				Usage: "Lower clause of a composite requirement, e.g. greater-or-equal-major(5)",
			},
			&cli.StringFlag{
				Name:  "upper",
				Usage: "Upper clause of a composite requirement, e.g. lesser-major(10)",
			},
			&cli.BoolFlag{
				Name:  "fail-on-mismatch",
				Usage: "Exit with non-zero status if any version is invalid or does not fit",
			},
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			ctx, cancel := commandContext(ctx, cmd)
			defer cancel()

			req, err := buildCheckRequest(ctx, cmd)
			if err != nil {
				return err
			}

			res, err := check.Evaluate(ctx, req)
			if err != nil {
				return err
			}

			if err := writeOutput(ctx, cmd, res); err != nil {
				return err
			}

			slog.Debug("check complete",
				"domain", res.Domain,
				"total", res.Summary.Total,
				"fits", res.Summary.Fits)

			if cmd.Bool("fail-on-mismatch") && res.Summary.Fits != res.Summary.Total {
				return fmt.Errorf("%d of %d versions do not fit the requirement",
					res.Summary.Total-res.Summary.Fits, res.Summary.Total)
			}
			return nil
		},
	}
}

// buildCheckRequest loads --request, if any, and applies the flags and
// positional versions on top.
func buildCheckRequest(ctx context.Context, cmd *cli.Command) (*check.Request, error) {
	req := &check.Request{}
	if path := cmd.String("request"); path != "" {
		loaded, err := serializer.FromFile[check.Request](ctx, path)
		if err != nil {
			return nil, fmt.Errorf("failed to load check request: %w", err)
		}
		req = loaded
	}

	if cmd.IsSet("domain") {
		d, err := version.ParseDomain(cmd.String("domain"))
		if err != nil {
			return nil, err
		}
		req.Domain = d
	}

	if cmd.IsSet("backend") {
		b, err := check.ParseBackend(cmd.String("backend"))
		if err != nil {
			return nil, err
		}
		req.Backend = b
	}

	spec, ok, err := requirementFromFlags(cmd)
	if err != nil {
		return nil, err
	}
	if ok {
		req.Requirement = spec
	}

	for _, arg := range cmd.Args().Slice() {
		d, err := version.ParseText(arg)
		if err != nil {
			return nil, err
		}
		req.Versions = append(req.Versions, d)
	}

	return req, nil
}

// requirementFromFlags builds a spec from --pure, --lower and --upper. It
// reports false when none is set.
func requirementFromFlags(cmd *cli.Command) (requirement.SpecDocument, bool, error) {
	var spec requirement.SpecDocument
	set := false

	for _, f := range []struct {
		name string
		dst  **requirement.ClauseDocument
	}{
		{"pure", &spec.Pure},
		{"lower", &spec.Lower},
		{"upper", &spec.Upper},
	} {
		text := cmd.String(f.name)
		if text == "" {
			continue
		}
		d, err := requirement.ParseClauseText(text)
		if err != nil {
			return requirement.SpecDocument{}, false, fmt.Errorf("--%s: %w", f.name, err)
		}
		*f.dst = &d
		set = true
	}

	return spec, set, nil
}
